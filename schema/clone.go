package schema

import (
	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Clone returns a deep copy of s. The copy shares nothing with s, so either
// can be mutated freely.
func Clone(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	c := &Schema{
		Type:     cloneNode(s.Type),
		Items:    Clone(s.Items),
		Enum:     cloneNodes(s.Enum),
		EnumMeta: cloneNodeMap(s.EnumMeta),
		Keywords: cloneNodeMap(s.Keywords),
		order:    append([]string(nil), s.order...),
		raw:      cloneNode(s.raw),
	}
	if s.Properties != nil {
		c.Properties = sequencedmap.New[string, *Schema]()
		for name, child := range s.Properties.All() {
			c.Properties.Set(name, Clone(child))
		}
	}
	if s.OneOf != nil {
		c.OneOf = make([]*Schema, len(s.OneOf))
		for i, alt := range s.OneOf {
			c.OneOf[i] = Clone(alt)
		}
	}
	return c
}

func cloneNodeMap(m *sequencedmap.Map[string, *yaml.Node]) *sequencedmap.Map[string, *yaml.Node] {
	if m == nil {
		return nil
	}
	c := sequencedmap.New[string, *yaml.Node]()
	for k, v := range m.All() {
		c.Set(k, cloneNode(v))
	}
	return c
}

// Overlay copies every keyword present on src onto dst, src winning on
// conflicts and keywords only on dst kept. Values are deep copied.
func Overlay(dst, src *Schema) {
	if dst == nil || src == nil {
		return
	}
	if src.Type != nil {
		dst.Type = cloneNode(src.Type)
		dst.clearKeyword(KeywordType)
	}
	if src.Properties != nil {
		dst.Properties = Clone(&Schema{Properties: src.Properties}).Properties
		dst.clearKeyword(KeywordProperties)
	}
	if src.Items != nil {
		dst.Items = Clone(src.Items)
		dst.clearKeyword(KeywordItems)
	}
	if src.OneOf != nil {
		dst.OneOf = Clone(&Schema{OneOf: src.OneOf}).OneOf
		dst.clearKeyword(KeywordOneOf)
	}
	if src.Enum != nil {
		dst.Enum = cloneNodes(src.Enum)
		dst.clearKeyword(KeywordEnum)
	}
	if src.EnumMeta != nil {
		dst.EnumMeta = cloneNodeMap(src.EnumMeta)
		dst.clearKeyword(KeywordEnumMeta)
	}
	if src.Keywords != nil {
		for k, v := range src.Keywords.All() {
			dst.setVerbatim(k, cloneNode(v))
		}
	}
	dst.rememberOrder(src.keywordOrder()...)
	if src.raw != nil && len(dst.keywordOrder()) == 0 {
		dst.raw = cloneNode(src.raw)
	}
}

// setVerbatim stores a keyword value verbatim, dropping the typed field of the
// same name so the verbatim value is the one serialised.
func (s *Schema) setVerbatim(k string, v *yaml.Node) {
	switch k {
	case KeywordType:
		s.Type = nil
	case KeywordProperties:
		s.Properties = nil
	case KeywordItems:
		s.Items = nil
	case KeywordOneOf:
		s.OneOf = nil
	case KeywordEnum:
		s.Enum = nil
	case KeywordEnumMeta:
		s.EnumMeta = nil
	}
	s.SetKeyword(k, v)
}

// OverlayEnumMeta copies src's enum metadata entries onto dst's, creating
// dst's mapping when needed.
func OverlayEnumMeta(dst, src *Schema) {
	if dst == nil || src == nil || src.EnumMeta == nil {
		return
	}
	if dst.EnumMeta == nil {
		dst.EnumMeta = sequencedmap.New[string, *yaml.Node]()
		dst.clearKeyword(KeywordEnumMeta)
	}
	for k, v := range src.EnumMeta.All() {
		dst.EnumMeta.Set(k, cloneNode(v))
	}
}
