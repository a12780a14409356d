package schema

// Visit is what the walker reports for every subschema node.
type Visit struct {
	// Ref is the canonical reference path of the node; "" for the root.
	Ref string
	// EntityType and RelationType are passed through unchanged from
	// WalkOptions to every node of the traversal.
	EntityType   string
	RelationType string
	Schema       *Schema
}

// WalkFunc is called for every node. Returning false skips the node's
// descendants.
type WalkFunc func(v Visit) bool

// WalkOptions configures a traversal.
type WalkOptions struct {
	EntityType   string
	RelationType string

	// SkipOneOf disables descending into oneOf alternatives, leaving only the
	// properties/items structure the merger follows.
	SkipOneOf bool
}

// Walk visits s and its descendants depth first. A nil schema is not
// visited. Children are visited when fn returns true:
//
//   - type "object" with properties: every property in mapping order, at
//     JoinPaths(ref, name)
//   - otherwise type "array" with items: the item schema, at JoinPaths(ref, "*")
//   - otherwise type "object" with oneOf: every alternative at ref itself
//
// There is no cycle detection; the tree must be acyclic.
func Walk(s *Schema, fn WalkFunc, opts ...WalkOptions) {
	var opt WalkOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	walk(s, "", fn, opt)
}

func walk(s *Schema, ref string, fn WalkFunc, opt WalkOptions) {
	if s == nil {
		return
	}
	descend := fn(Visit{
		Ref:          ref,
		EntityType:   opt.EntityType,
		RelationType: opt.RelationType,
		Schema:       s,
	})
	if !descend {
		return
	}

	switch {
	case s.IsObject() && s.HasProperties():
		for name, child := range s.Properties.All() {
			walk(child, JoinPaths(ref, name), fn, opt)
		}
	case s.IsArray() && s.HasItems():
		walk(s.Items, JoinPaths(ref, ItemsSegment), fn, opt)
	case s.IsObject() && s.HasOneOf() && !opt.SkipOneOf:
		for _, alt := range s.OneOf {
			walk(alt, JoinPaths(ref), fn, opt)
		}
	}
}

// Refs returns every reference path of s in traversal order, duplicates
// included.
func Refs(s *Schema, opts ...WalkOptions) []string {
	var refs []string
	Walk(s, func(v Visit) bool {
		refs = append(refs, v.Ref)
		return true
	}, opts...)
	return refs
}
