package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMarshalIndent(t *testing.T) {
	s := MustParse(`{"type":"object","properties":{"a":{"type":"string"}}}`)

	got, err := MarshalIndent(s, "  ")
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "type": "object",
  "properties": {
    "a": {
      "type": "string"
    }
  }
}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("MarshalIndent mismatch (-want +got):\n%s", diff)
	}

	compact, err := MarshalIndent(s, "")
	if err != nil {
		t.Fatal(err)
	}
	if string(compact) != `{"type":"object","properties":{"a":{"type":"string"}}}` {
		t.Errorf("expected compact output for an empty indent, got %s", compact)
	}
}

func TestNodeOrderForBuiltSchemas(t *testing.T) {
	s := New()
	s.SetKeyword("title", StringValue("T"))
	s.SetProperty("a", MustParse(`{"type":"string"}`))
	s.SetType("object")

	want := `{"type":"object","properties":{"a":{"type":"string"}},"title":"T"}`
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("built schema mismatch (-want +got):\n%s", diff)
	}
}

func TestNilSchemaEncodesNull(t *testing.T) {
	var s *Schema
	if got := s.String(); got != "null" {
		t.Errorf("nil schema encoded as %q", got)
	}
}

func TestToYAML(t *testing.T) {
	s := MustParse(`{"type":"object","properties":{"a":{"type":"string"}}}`)

	got, err := ToYAML(s)
	if err != nil {
		t.Fatal(err)
	}
	want := "type: object\nproperties:\n  a:\n    type: string\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToYAML mismatch (-want +got):\n%s", diff)
	}
}
