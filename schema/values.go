package schema

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML tags of scalar JSON values.
const (
	tagString = "!!str"
	tagInt    = "!!int"
	tagFloat  = "!!float"
	tagBool   = "!!bool"
	tagNull   = "!!null"
)

// StringValue creates a string scalar node.
func StringValue(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagString, Value: s, Style: yaml.DoubleQuotedStyle}
}

// NumberValue creates a numeric scalar node from its JSON text.
func NumberValue(text string) *yaml.Node {
	tag := tagInt
	if strings.ContainsAny(text, ".eE") {
		tag = tagFloat
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}

// IntValue creates an integer scalar node.
func IntValue(n int64) *yaml.Node {
	return NumberValue(strconv.FormatInt(n, 10))
}

// BoolValue creates a boolean scalar node.
func BoolValue(b bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagBool, Value: strconv.FormatBool(b)}
}

// NullValue creates a null scalar node.
func NullValue() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagNull, Value: "null"}
}

// IsNull reports whether n is absent or a JSON null.
func IsNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == tagNull)
}

// valueRank orders JSON kinds: null < bool < number < string < array < object.
func valueRank(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case tagNull:
			return 0
		case tagBool:
			return 1
		case tagInt, tagFloat:
			return 2
		default:
			return 3
		}
	case yaml.SequenceNode:
		return 4
	case yaml.MappingNode:
		return 5
	default:
		return 6
	}
}

func numberOf(n *yaml.Node) float64 {
	f, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// CanonicalValue returns a string that is equal for equal JSON values.
// Numbers compare by value, so 1 and 1.0 share a canonical form; mapping keys
// are sorted.
func CanonicalValue(n *yaml.Node) string {
	if n == nil {
		return "null"
	}
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case tagNull:
			return "null"
		case tagBool:
			return "b:" + n.Value
		case tagInt, tagFloat:
			f := numberOf(n)
			if math.IsNaN(f) {
				return "n:" + n.Value
			}
			return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
		default:
			return "s:" + strconv.Quote(n.Value)
		}
	case yaml.SequenceNode:
		var b strings.Builder
		b.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(CanonicalValue(c))
		}
		b.WriteByte(']')
		return b.String()
	case yaml.MappingNode:
		pairs := make([]struct{ key, val string }, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			pairs = append(pairs, struct{ key, val string }{
				key: strconv.Quote(n.Content[i].Value),
				val: CanonicalValue(n.Content[i+1]),
			})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
		var b strings.Builder
		b.WriteByte('{')
		for i, p := range pairs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(p.key)
			b.WriteByte(':')
			b.WriteString(p.val)
		}
		b.WriteByte('}')
		return b.String()
	case yaml.DocumentNode:
		if len(n.Content) == 1 {
			return CanonicalValue(n.Content[0])
		}
	}
	return fmt.Sprintf("kind%d", n.Kind)
}

// CompareValues orders two JSON values: by kind first, then numbers by value,
// booleans false before true, strings bytewise and composites by canonical form.
func CompareValues(a, b *yaml.Node) int {
	ra, rb := valueRank(a), valueRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch ra {
	case 0:
		return 0
	case 1, 3:
		return strings.Compare(a.Value, b.Value)
	case 2:
		fa, fb := numberOf(a), numberOf(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		case fa == fb:
			return 0
		}
		return strings.Compare(a.Value, b.Value)
	default:
		return strings.Compare(CanonicalValue(a), CanonicalValue(b))
	}
}

// SortedUniq returns the values sorted by CompareValues with duplicates
// removed. The input slice is not modified.
func SortedUniq(values []*yaml.Node) []*yaml.Node {
	sorted := make([]*yaml.Node, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareValues(sorted[i], sorted[j]) < 0
	})

	out := make([]*yaml.Node, 0, len(sorted))
	last := ""
	for i, v := range sorted {
		c := CanonicalValue(v)
		if i > 0 && c == last {
			continue
		}
		out = append(out, v)
		last = c
	}
	return out
}

// UnionValues returns the sorted, duplicate-free union of a and b as fresh
// nodes.
func UnionValues(a, b []*yaml.Node) []*yaml.Node {
	all := make([]*yaml.Node, 0, len(a)+len(b))
	all = append(all, cloneNodes(a)...)
	all = append(all, cloneNodes(b)...)
	return SortedUniq(all)
}

// Uniq filters values down to their first occurrence, keeping order.
func Uniq(values []*yaml.Node) []*yaml.Node {
	seen := make(map[string]struct{}, len(values))
	out := make([]*yaml.Node, 0, len(values))
	for _, v := range values {
		c := CanonicalValue(v)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, v)
	}
	return out
}

// UniqStrings filters strings down to their first occurrence, keeping order.
func UniqStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ValueSetEqual reports whether two value lists hold the same distinct values.
func ValueSetEqual(a, b []*yaml.Node) bool {
	ua, ub := SortedUniq(a), SortedUniq(b)
	if len(ua) != len(ub) {
		return false
	}
	for i := range ua {
		if CanonicalValue(ua[i]) != CanonicalValue(ub[i]) {
			return false
		}
	}
	return true
}

// DisplayValue renders n the way a JavaScript template literal would:
// absent is "undefined", arrays are comma joined and objects are
// "[object Object]".
func DisplayValue(n *yaml.Node) string {
	if n == nil {
		return "undefined"
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value
	case yaml.SequenceNode:
		parts := make([]string, len(n.Content))
		for i, c := range n.Content {
			if IsNull(c) {
				continue
			}
			parts[i] = DisplayValue(c)
		}
		return strings.Join(parts, ",")
	case yaml.MappingNode:
		return "[object Object]"
	case yaml.DocumentNode:
		if len(n.Content) == 1 {
			return DisplayValue(n.Content[0])
		}
	}
	return ""
}

// cloneNode deep copies a yaml node.
func cloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Content != nil {
		c.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			c.Content[i] = cloneNode(child)
		}
	}
	return &c
}

func cloneNodes(nodes []*yaml.Node) []*yaml.Node {
	if nodes == nil {
		return nil
	}
	out := make([]*yaml.Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}
