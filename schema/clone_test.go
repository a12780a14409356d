package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCloneIsDeep(t *testing.T) {
	orig := MustParse(`{"type":"object","properties":{"a":{"type":"string","enum":["x"]},"b":{"type":"array","items":{"type":"integer"}}},"title":"T"}`)
	before := orig.String()

	c := Clone(orig)
	if diff := cmp.Diff(before, c.String()); diff != "" {
		t.Fatalf("clone differs (-want +got):\n%s", diff)
	}

	a, _ := c.Property("a")
	a.Enum[0].Value = "changed"
	a.SetType("number")
	b, _ := c.Property("b")
	b.Items.SetType("string")
	c.SetProperty("new", New())
	title, _ := c.Keyword("title")
	title.Value = "changed"

	if diff := cmp.Diff(before, orig.String()); diff != "" {
		t.Errorf("original changed through clone (-want +got):\n%s", diff)
	}
}

func TestCloneNil(t *testing.T) {
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name string
		dst  string
		src  string
		want string
	}{
		{
			name: "adds_keywords",
			dst:  `{"description":"x"}`,
			src:  `{"type":"string","enum":["a"]}`,
			want: `{"description":"x","type":"string","enum":["a"]}`,
		},
		{
			name: "source_wins",
			dst:  `{"description":"x","format":"date"}`,
			src:  `{"description":"y","type":"string"}`,
			want: `{"description":"y","format":"date","type":"string"}`,
		},
		{
			name: "verbatim_replaces_typed",
			dst:  `{"description":"x"}`,
			src:  `{"properties":[],"type":"object"}`,
			want: `{"description":"x","properties":[],"type":"object"}`,
		},
		{
			name: "boolean_source_onto_empty",
			dst:  `{}`,
			src:  `true`,
			want: `true`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := MustParse(tt.dst)
			src := MustParse(tt.src)
			srcBefore := src.String()

			Overlay(dst, src)
			if diff := cmp.Diff(tt.want, dst.String()); diff != "" {
				t.Errorf("Overlay mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(srcBefore, src.String()); diff != "" {
				t.Errorf("source modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOverlayEnumMeta(t *testing.T) {
	dst := MustParse(`{"enum":["a","b"],"$enumMeta":{"a":{"description":"old"}}}`)
	src := MustParse(`{"enum":["b"],"$enumMeta":{"a":{"description":"new"},"b":{"description":"B"}}}`)

	OverlayEnumMeta(dst, src)
	want := `{"enum":["a","b"],"$enumMeta":{"a":{"description":"new"},"b":{"description":"B"}}}`
	if diff := cmp.Diff(want, dst.String()); diff != "" {
		t.Errorf("OverlayEnumMeta mismatch (-want +got):\n%s", diff)
	}

	plain := MustParse(`{"enum":["a"]}`)
	OverlayEnumMeta(plain, src)
	if plain.EnumMeta == nil || plain.EnumMeta.Len() != 2 {
		t.Errorf("expected enum metadata to be created, got %s", plain)
	}
}
