package schema

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "key_order", input: `{"type":"object","title":"T","properties":{"b":{"type":"string"},"a":{"enum":[1,2]}}}`},
		{name: "unknown_keywords", input: `{"$schema":"http://json-schema.org/draft-07/schema#","x-tag":{"nested":[true,null]},"type":"string"}`},
		{name: "number_text", input: `{"enum":[1.50,2e3,-0]}`},
		{name: "boolean_schema", input: `true`},
		{name: "boolean_property", input: `{"type":"object","properties":{"any":true}}`},
		{name: "wrong_shape_properties", input: `{"type":"object","properties":[]}`},
		{name: "null_type", input: `{"type":null}`},
		{name: "html_chars", input: `{"description":"<a> & b"}`},
		{name: "enum_meta", input: `{"enum":["a"],"$enumMeta":{"a":{"description":"A"}}}`},
		{name: "one_of", input: `{"type":"object","oneOf":[{"type":"object"},{"required":["x"]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.input, s.String()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseInterpretsKeywords(t *testing.T) {
	s := MustParse(`{
	  "type": "object",
	  "properties": {
	    "tags": {"type": "array", "items": {"type": "string", "enum": ["a", "b"]}},
	    "gone": null
	  },
	  "required": ["tags"]
	}`)

	if !s.IsObject() {
		t.Fatalf("expected object, got %q", s.TypeName())
	}
	if got := s.Properties.Len(); got != 2 {
		t.Fatalf("expected 2 properties, got %d", got)
	}
	tags, ok := s.Property("tags")
	if !ok || !tags.IsArray() || !tags.HasItems() {
		t.Fatalf("expected tags to be an array with items, got %s", tags)
	}
	if got := len(tags.Items.Enum); got != 2 {
		t.Errorf("expected 2 enum values on tags items, got %d", got)
	}
	if gone, ok := s.Property("gone"); !ok || gone != nil {
		t.Errorf("expected a present but nil property for null, got %v, %v", gone, ok)
	}
	if _, ok := s.Keyword("required"); !ok {
		t.Error("expected required to be carried as a keyword")
	}
}

func TestParseWrongShapeIsNotInterpreted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(*Schema) bool
	}{
		{name: "properties_array", input: `{"properties":[]}`, check: func(s *Schema) bool { return !s.HasProperties() }},
		{name: "items_array", input: `{"items":[{"type":"string"}]}`, check: func(s *Schema) bool { return !s.HasItems() }},
		{name: "enum_object", input: `{"enum":{"a":1}}`, check: func(s *Schema) bool { return !s.HasEnum() }},
		{name: "one_of_object", input: `{"oneOf":{}}`, check: func(s *Schema) bool { return !s.HasOneOf() }},
		{name: "null_type", input: `{"type":null}`, check: func(s *Schema) bool { return !s.HasType() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustParse(tt.input)
			if !tt.check(s) {
				t.Errorf("keyword was interpreted for %s", tt.input)
			}
			if s.Keywords == nil || s.Keywords.Len() != 1 {
				t.Errorf("expected the keyword kept verbatim for %s", tt.input)
			}
		})
	}
}

func TestParseEmptyEnumIsPresent(t *testing.T) {
	s := MustParse(`{"enum":[]}`)
	if !s.HasEnum() {
		t.Error("an empty enum array should count as present")
	}
	if s.IsPlaceholder() {
		t.Error("a schema with an empty enum is not a placeholder")
	}
}

func TestParseNull(t *testing.T) {
	s, err := Parse(`null`)
	if err != nil {
		t.Fatalf("Parse(null): %v", err)
	}
	if s != nil {
		t.Errorf("expected nil schema for null, got %s", s)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantErr  error
	}{
		{name: "empty", input: "", wantErr: ErrEmptyInput},
		{name: "blank", input: " \n\t ", wantErr: ErrEmptyInput},
		{name: "missing_value", input: "{\n  \"a\": }", wantLine: 2},
		{name: "truncated", input: `{"a": 1`, wantLine: 1, wantErr: io.ErrUnexpectedEOF},
		{name: "trailing_data", input: `{} {}`, wantLine: 1},
		{name: "not_json", input: `type: object`, wantLine: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected an error for %q", tt.input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error wrapping %v, got %v", tt.wantErr, err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d (%v)", tt.wantLine, perr.Line, err)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	got, err := Compact("{\n  \"a\": [1, 2]\n}")
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"a":[1,2]}` {
		t.Errorf("Compact = %q", got)
	}

	if _, err := Compact(`{`); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}
