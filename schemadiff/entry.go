package schemadiff

import (
	"fmt"
	"strings"
)

// Kind classifies a diff entry.
type Kind int

const (
	// MissingInSecond: the reference exists only in the first schema.
	MissingInSecond Kind = iota
	// MissingInFirst: the reference exists only in the second schema.
	MissingInFirst
	// TypeConflict: both schemas have the reference with different types.
	TypeConflict
	// EnumMismatch: exactly one side declares an enum.
	EnumMismatch
	// EnumValues: both sides declare enums with different value sets.
	EnumValues
)

func (k Kind) String() string {
	switch k {
	case MissingInSecond:
		return "missing-in-second"
	case MissingInFirst:
		return "missing-in-first"
	case TypeConflict:
		return "type-conflict"
	case EnumMismatch:
		return "enum-mismatch"
	case EnumValues:
		return "enum-values"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one detected divergence between two schemas.
type Entry struct {
	Ref  string `json:"ref"`
	Kind Kind   `json:"kind"`
	// Left and Right are the rendered types for TypeConflict entries.
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// String renders the entry as a human-readable line.
func (e Entry) String() string {
	switch e.Kind {
	case MissingInSecond:
		return fmt.Sprintf("missing dataRef %s in second schema", e.Ref)
	case MissingInFirst:
		return fmt.Sprintf("missing dataRef %s in first schema", e.Ref)
	case TypeConflict:
		return fmt.Sprintf("%s has conflicting types: %s and %s", e.Ref, e.Left, e.Right)
	case EnumMismatch:
		return fmt.Sprintf("%s has conflicting types. One is an Enum and one is not", e.Ref)
	case EnumValues:
		return fmt.Sprintf("%s differing enums", e.Ref)
	default:
		return fmt.Sprintf("%s: %s", e.Ref, e.Kind)
	}
}

// Detail is the part of the message after the reference, used by tabular
// renderings that print the reference in its own column.
func (e Entry) Detail() string {
	switch e.Kind {
	case MissingInSecond:
		return "missing in second schema"
	case MissingInFirst:
		return "missing in first schema"
	case TypeConflict:
		return fmt.Sprintf("conflicting types: %s and %s", e.Left, e.Right)
	case EnumMismatch:
		return "one is an enum and one is not"
	case EnumValues:
		return "differing enums"
	default:
		return e.Kind.String()
	}
}

// Join renders entries one per line.
func Join(entries []Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
