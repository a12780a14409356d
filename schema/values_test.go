package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func mustValues(t *testing.T, text string) []*yaml.Node {
	t.Helper()
	n, err := ParseValue(text)
	if err != nil {
		t.Fatalf("ParseValue(%s): %v", text, err)
	}
	if n.Kind != yaml.SequenceNode {
		t.Fatalf("ParseValue(%s): expected an array", text)
	}
	return n.Content
}

func displayAll(values []*yaml.Node) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = DisplayValue(v)
	}
	return out
}

func TestSortedUniq(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "numbers", input: `[3, 1, 2, 1]`, want: []string{"1", "2", "3"}},
		{name: "strings", input: `["b", "a", "b"]`, want: []string{"a", "b"}},
		{name: "mixed_kinds", input: `[3, "a", 1, true, null, "a"]`, want: []string{"null", "true", "1", "3", "a"}},
		{name: "numeric_equality", input: `[1, 1.0, 2]`, want: []string{"1", "2"}},
		{name: "booleans", input: `[true, false, true]`, want: []string{"false", "true"}},
		{name: "empty", input: `[]`, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := displayAll(SortedUniq(mustValues(t, tt.input)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SortedUniq mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSortedUniqDoesNotModifyInput(t *testing.T) {
	in := mustValues(t, `[2, 1]`)
	SortedUniq(in)
	if diff := cmp.Diff([]string{"2", "1"}, displayAll(in)); diff != "" {
		t.Errorf("input was reordered (-want +got):\n%s", diff)
	}
}

func TestUnionValues(t *testing.T) {
	a := mustValues(t, `[1, 3]`)
	b := mustValues(t, `[2, 3]`)

	got := UnionValues(a, b)
	if diff := cmp.Diff([]string{"1", "2", "3"}, displayAll(got)); diff != "" {
		t.Errorf("UnionValues mismatch (-want +got):\n%s", diff)
	}

	for _, n := range got {
		n.Value = "changed"
	}
	if diff := cmp.Diff([]string{"1", "3"}, displayAll(a)); diff != "" {
		t.Errorf("first input aliased by result (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2", "3"}, displayAll(b)); diff != "" {
		t.Errorf("second input aliased by result (-want +got):\n%s", diff)
	}
}

func TestUniq(t *testing.T) {
	got := displayAll(Uniq(mustValues(t, `["b", "a", "b", 1, 1.0]`)))
	if diff := cmp.Diff([]string{"b", "a", "1"}, got); diff != "" {
		t.Errorf("Uniq mismatch (-want +got):\n%s", diff)
	}
}

func TestUniqStrings(t *testing.T) {
	got := UniqStrings([]string{"", "a", "b", "a", ""})
	if diff := cmp.Diff([]string{"", "a", "b"}, got); diff != "" {
		t.Errorf("UniqStrings mismatch (-want +got):\n%s", diff)
	}
}

func TestValueSetEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "reordered", a: `[1, 2]`, b: `[2, 1]`, want: true},
		{name: "duplicates", a: `[1, 2, 2]`, b: `[2, 1]`, want: true},
		{name: "superset", a: `[1]`, b: `[1, 2]`, want: false},
		{name: "both_empty", a: `[]`, b: `[]`, want: true},
		{name: "string_vs_number", a: `["1"]`, b: `[1]`, want: false},
		{name: "objects_by_content", a: `[{"b":1,"a":2}]`, b: `[{"a":2,"b":1}]`, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueSetEqual(mustValues(t, tt.a), mustValues(t, tt.b)); got != tt.want {
				t.Errorf("ValueSetEqual(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCanonicalValue(t *testing.T) {
	vals := mustValues(t, `[1, 1.0, 1e0, "1", true, null, {"b":1,"a":[2]}]`)
	got := make([]string, len(vals))
	for i, v := range vals {
		got[i] = CanonicalValue(v)
	}
	want := []string{"n:1", "n:1", "n:1", `s:"1"`, "b:true", "null", `{"a":[n:2],"b":n:1}`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CanonicalValue mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "string", input: `"string"`, want: "string"},
		{name: "number", input: `1.5`, want: "1.5"},
		{name: "type_list", input: `["string", "null"]`, want: "string,null"},
		{name: "null_element", input: `[1, null]`, want: "1,"},
		{name: "nested", input: `[[1, 2], 3]`, want: "1,2,3"},
		{name: "object", input: `{"a": 1}`, want: "[object Object]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseValue(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := DisplayValue(n); got != tt.want {
				t.Errorf("DisplayValue(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if got := DisplayValue(nil); got != "undefined" {
		t.Errorf("DisplayValue(nil) = %q, want %q", got, "undefined")
	}
}
