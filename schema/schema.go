// Package schema holds the JSON Schema node model shared by the differ and the
// merger: parsing from JSON text, serialisation, deep cloning, enum value
// helpers, reference paths and the tree walker.
package schema

import (
	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Keyword names the engine interprets. Everything else is carried in Keywords.
const (
	KeywordType       = "type"
	KeywordProperties = "properties"
	KeywordItems      = "items"
	KeywordOneOf      = "oneOf"
	KeywordEnum       = "enum"
	KeywordEnumMeta   = "$enumMeta"
)

// Type names used for traversal decisions.
const (
	TypeObject = "object"
	TypeArray  = "array"
)

// structuralKeywords is the emission order for interpreted keywords that were
// not present in the parsed input.
var structuralKeywords = []string{
	KeywordType,
	KeywordProperties,
	KeywordItems,
	KeywordOneOf,
	KeywordEnum,
	KeywordEnumMeta,
}

// Properties is the ordered property mapping of an object schema.
type Properties = sequencedmap.Map[string, *Schema]

// Schema is one node of a draft-07 style schema tree.
//
// A nil field means the keyword is absent. Keywords that are not interpreted,
// or interpreted keywords holding null or a value of the wrong shape, are kept
// verbatim in Keywords so nothing is lost on a round trip.
type Schema struct {
	Type       *yaml.Node
	Properties *Properties
	Items      *Schema
	OneOf      []*Schema
	Enum       []*yaml.Node
	EnumMeta   *sequencedmap.Map[string, *yaml.Node]
	Keywords   *sequencedmap.Map[string, *yaml.Node]

	// order is the keyword order seen when parsing.
	order []string
	// raw holds a non-object schema value such as true, emitted while the
	// schema has no keywords.
	raw *yaml.Node
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{}
}

// HasType reports whether the type keyword is present.
func (s *Schema) HasType() bool {
	return s != nil && s.Type != nil
}

// HasProperties reports whether the properties keyword is present.
func (s *Schema) HasProperties() bool {
	return s != nil && s.Properties != nil
}

// HasItems reports whether the items keyword is present.
func (s *Schema) HasItems() bool {
	return s != nil && s.Items != nil
}

// HasOneOf reports whether the oneOf keyword is present.
func (s *Schema) HasOneOf() bool {
	return s != nil && s.OneOf != nil
}

// HasEnum reports whether the enum keyword is present. An empty enum array
// counts as present.
func (s *Schema) HasEnum() bool {
	return s != nil && s.Enum != nil
}

// IsPlaceholder reports whether s declares none of items, properties, type or
// enum.
func (s *Schema) IsPlaceholder() bool {
	return !s.HasItems() && !s.HasProperties() && !s.HasType() && !s.HasEnum()
}

// TypeName returns the type keyword when it is a single string, or "".
func (s *Schema) TypeName() string {
	if s == nil || s.Type == nil {
		return ""
	}
	if s.Type.Kind != yaml.ScalarNode || s.Type.Tag != "!!str" {
		return ""
	}
	return s.Type.Value
}

// SameType reports whether a and b declare the same type keyword, compared by
// serialised form. Two absent types are the same.
func SameType(a, b *Schema) bool {
	ta, tb := a.typeNode(), b.typeNode()
	if ta == nil || tb == nil {
		return ta == nil && tb == nil
	}
	ja, errA := MarshalValueIndent(ta, "")
	jb, errB := MarshalValueIndent(tb, "")
	if errA != nil || errB != nil {
		return false
	}
	return string(ja) == string(jb)
}

func (s *Schema) typeNode() *yaml.Node {
	if s == nil {
		return nil
	}
	return s.Type
}

// IsObject reports whether s is declared as type "object".
func (s *Schema) IsObject() bool {
	return s.TypeName() == TypeObject
}

// IsArray reports whether s is declared as type "array".
func (s *Schema) IsArray() bool {
	return s.TypeName() == TypeArray
}

// Property returns the named property schema.
func (s *Schema) Property(name string) (*Schema, bool) {
	if s == nil || s.Properties == nil {
		return nil, false
	}
	return s.Properties.Get(name)
}

// SetProperty sets a property, creating the properties mapping when absent.
func (s *Schema) SetProperty(name string, child *Schema) {
	if s.Properties == nil {
		s.Properties = sequencedmap.New[string, *Schema]()
		s.clearKeyword(KeywordProperties)
	}
	s.Properties.Set(name, child)
}

// SetType sets the type keyword to a string.
func (s *Schema) SetType(name string) {
	s.Type = StringValue(name)
	s.clearKeyword(KeywordType)
}

// Keyword returns an uninterpreted keyword value.
func (s *Schema) Keyword(name string) (*yaml.Node, bool) {
	if s == nil || s.Keywords == nil {
		return nil, false
	}
	return s.Keywords.Get(name)
}

// SetKeyword stores an uninterpreted keyword value verbatim.
func (s *Schema) SetKeyword(name string, value *yaml.Node) {
	if s.Keywords == nil {
		s.Keywords = sequencedmap.New[string, *yaml.Node]()
	}
	s.Keywords.Set(name, value)
}

// clearKeyword drops a verbatim copy of an interpreted keyword once the typed
// field takes over, so serialisation never emits the key twice.
func (s *Schema) clearKeyword(name string) {
	if s.Keywords == nil {
		return
	}
	if _, ok := s.Keywords.Get(name); ok {
		s.Keywords.Delete(name)
	}
}

// present reports whether keyword name has a value on s, typed or verbatim.
func (s *Schema) present(name string) bool {
	switch name {
	case KeywordType:
		if s.Type != nil {
			return true
		}
	case KeywordProperties:
		if s.Properties != nil {
			return true
		}
	case KeywordItems:
		if s.Items != nil {
			return true
		}
	case KeywordOneOf:
		if s.OneOf != nil {
			return true
		}
	case KeywordEnum:
		if s.Enum != nil {
			return true
		}
	case KeywordEnumMeta:
		if s.EnumMeta != nil {
			return true
		}
	}
	_, ok := s.Keyword(name)
	return ok
}

// keywordOrder returns the keys to serialise: parsed order first, then
// interpreted keywords added later, then other added keywords.
func (s *Schema) keywordOrder() []string {
	seen := make(map[string]struct{}, len(s.order)+len(structuralKeywords))
	keys := make([]string, 0, len(s.order)+len(structuralKeywords))
	add := func(k string) {
		if _, ok := seen[k]; ok {
			return
		}
		if !s.present(k) {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for _, k := range s.order {
		add(k)
	}
	for _, k := range structuralKeywords {
		add(k)
	}
	if s.Keywords != nil {
		for k := range s.Keywords.All() {
			add(k)
		}
	}
	return keys
}

// rememberOrder appends keys that are not yet part of the recorded order.
func (s *Schema) rememberOrder(keys ...string) {
	for _, k := range keys {
		found := false
		for _, existing := range s.order {
			if existing == k {
				found = true
				break
			}
		}
		if !found {
			s.order = append(s.order, k)
		}
	}
}
