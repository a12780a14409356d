package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJoinPaths(t *testing.T) {
	tests := []struct {
		name     string
		segments []any
		want     string
	}{
		{name: "root", segments: nil, want: ""},
		{name: "empty_segment", segments: []any{"a", "", "b"}, want: "a/b"},
		{name: "slash_runs", segments: []any{"/a//b/"}, want: "a/b"},
		{name: "single", segments: []any{"a"}, want: "a"},
		{name: "from_root", segments: []any{"", "a"}, want: "a"},
		{name: "items_marker", segments: []any{"list", ItemsSegment, "name"}, want: "list/*/name"},
		{name: "numeric_index", segments: []any{"tuple", 0}, want: "tuple/0"},
		{name: "only_slashes", segments: []any{"/", "/"}, want: ""},
		{name: "nil_segment", segments: []any{"a", nil, "b"}, want: "a/b"},
		{name: "single_leading_only", segments: []any{"a/"}, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinPaths(tt.segments...); got != tt.want {
				t.Errorf("JoinPaths(%q) = %q, want %q", tt.segments, got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	if got := SplitPath(""); got != nil {
		t.Errorf("SplitPath(\"\") = %q, want nil", got)
	}
	if diff := cmp.Diff([]string{"a", "*", "b"}, SplitPath("a/*/b")); diff != "" {
		t.Errorf("SplitPath mismatch (-want +got):\n%s", diff)
	}
}
