package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// ItemsSegment is the reference path segment for array items.
const ItemsSegment = "*"

var slashRunRe = regexp.MustCompile(`/{2,}`)

// JoinPaths joins segments into a canonical reference path: segments are
// joined with "/", runs of "/" collapse to one, and a single leading and a
// single trailing "/" are dropped. Segments are not escaped, so a property
// name containing "/" yields an ambiguous path.
//
//	JoinPaths("a", "", "b") == "a/b"
//	JoinPaths("/a//b/") == "a/b"
//	JoinPaths() == ""
func JoinPaths(segments ...any) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		switch v := seg.(type) {
		case string:
			parts[i] = v
		case nil:
			parts[i] = ""
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	p := slashRunRe.ReplaceAllString(strings.Join(parts, "/"), "/")
	p = strings.TrimPrefix(p, "/")
	p = strings.TrimSuffix(p, "/")
	return p
}

// SplitPath splits a reference path into its segments. The root path has no
// segments.
func SplitPath(ref string) []string {
	if ref == "" {
		return nil
	}
	return strings.Split(ref, "/")
}
