// Package schemadiff reports structural and enum differences between two
// schemas, keyed by reference path.
package schemadiff

import (
	"fmt"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"github.com/speakeasy-api/schemadiff/schema"
)

// Input names used in InputError.
const (
	InputFirst  = "schema1"
	InputSecond = "schema2"
)

// InputError reports which of the two inputs failed to parse.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// RefMap maps reference paths to subschemas in first-visit order.
type RefMap = sequencedmap.Map[string, *schema.Schema]

// Diff parses two schema texts and returns their diff entries joined by
// newlines. An empty string means no differences.
func Diff(text1, text2 string, opts ...schema.Options) (string, error) {
	s1, s2, err := ParsePair(text1, text2)
	if err != nil {
		return "", err
	}
	return Join(DiffSchemas(s1, s2, opts...)), nil
}

// ParsePair parses both inputs, wrapping failures in an InputError for the
// offending side. The first input is reported when both are invalid.
func ParsePair(text1, text2 string) (*schema.Schema, *schema.Schema, error) {
	s1, err := schema.Parse(text1)
	if err != nil {
		return nil, nil, &InputError{Input: InputFirst, Err: err}
	}
	s2, err := schema.Parse(text2)
	if err != nil {
		return nil, nil, &InputError{Input: InputSecond, Err: err}
	}
	return s1, s2, nil
}

// BuildRefMap walks s, oneOf alternatives included, recording every node by
// its reference path. A path visited twice keeps its first position and its
// last node.
func BuildRefMap(s *schema.Schema, opts ...schema.Options) *RefMap {
	opt := schema.FirstOptions(opts)
	refs := sequencedmap.New[string, *schema.Schema]()
	schema.Walk(s, func(v schema.Visit) bool {
		refs.Set(v.Ref, v.Schema)
		return true
	}, opt.WalkOptions())
	return refs
}

// DiffSchemas compares two parsed schemas.
//
// References are checked in the first schema's traversal order followed by
// references only the second schema has. For each reference, in order:
// presence on one side only, type (serialised form) and then enum presence
// and enum value sets. A type conflict does not stop the enum checks.
func DiffSchemas(s1, s2 *schema.Schema, opts ...schema.Options) []Entry {
	opt := schema.FirstOptions(opts)
	logger := opt.NewLogger()

	map1 := BuildRefMap(s1, opt)
	map2 := BuildRefMap(s2, opt)

	keys := make([]string, 0, map1.Len()+map2.Len())
	for ref := range map1.All() {
		keys = append(keys, ref)
	}
	for ref := range map2.All() {
		keys = append(keys, ref)
	}
	keys = schema.UniqStrings(keys)

	logger.With(map[string]any{
		"refs1": map1.Len(),
		"refs2": map2.Len(),
	}).Debugf("Comparing schemas")

	var entries []Entry
	emit := func(e Entry) {
		logger.With(map[string]any{"ref": e.Ref, "kind": e.Kind}).Debugf("%s", e)
		entries = append(entries, e)
	}

	for _, ref := range keys {
		a, _ := map1.Get(ref)
		b, _ := map2.Get(ref)
		switch {
		case a == nil:
			emit(Entry{Ref: ref, Kind: MissingInFirst})
			continue
		case b == nil:
			emit(Entry{Ref: ref, Kind: MissingInSecond})
			continue
		}

		if !schema.SameType(a, b) {
			emit(Entry{
				Ref:   ref,
				Kind:  TypeConflict,
				Left:  schema.DisplayValue(a.Type),
				Right: schema.DisplayValue(b.Type),
			})
		}

		if a.HasEnum() != b.HasEnum() {
			emit(Entry{Ref: ref, Kind: EnumMismatch})
			continue
		}
		if a.HasEnum() && !schema.ValueSetEqual(a.Enum, b.Enum) {
			emit(Entry{Ref: ref, Kind: EnumValues})
		}
	}
	return entries
}
