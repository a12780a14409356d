// Package schemamerge deep-combines two schemas into one, reconciling types,
// enums and nested object/array structure.
package schemamerge

import (
	"fmt"

	"github.com/speakeasy-api/schemadiff/schema"
	"github.com/speakeasy-api/schemadiff/schemadiff"
)

// Divergence is a node where both schemas declare different types. The
// merge keeps the first schema's node unchanged there.
type Divergence struct {
	Ref   string `json:"ref"`
	Left  string `json:"left"`
	Right string `json:"right"`
}

func (d Divergence) String() string {
	return fmt.Sprintf("%s kept type %s, ignored %s", d.Ref, d.Left, d.Right)
}

// Result is the outcome of a merge.
type Result struct {
	// Schema is a new tree: a clone of the first schema with the second
	// reconciled into it.
	Schema *schema.Schema
	// Divergences lists nodes left unmerged because of type conflicts, in
	// the order they were reached.
	Divergences []Divergence
}

// Merge parses two schema texts and merges the second into a clone of the
// first. Parse failures are reported as *schemadiff.InputError.
func Merge(text1, text2 string, opts ...schema.Options) (*Result, error) {
	s1, s2, err := schemadiff.ParsePair(text1, text2)
	if err != nil {
		return nil, err
	}
	return MergeSchemas(s1, s2, opts...), nil
}

// MergeSchemas merges b into a deep clone of a. Neither input is modified and
// the result shares no nodes with either.
func MergeSchemas(a, b *schema.Schema, opts ...schema.Options) *Result {
	opt := schema.FirstOptions(opts)
	m := &merger{logger: opt.NewLogger()}

	merged := schema.Clone(a)
	m.reconcile(merged, b, "")

	m.logger.With(map[string]any{
		"divergences": len(m.divergences),
	}).Debugf("Merged schemas")

	return &Result{Schema: merged, Divergences: m.divergences}
}

type merger struct {
	logger      schema.Logger
	divergences []Divergence
}

// reconcile merges b into a in place. ref is only used for reporting; the
// recursion itself follows the properties/items structure on both sides.
func (m *merger) reconcile(a, b *schema.Schema, ref string) {
	if a == nil || b == nil {
		return
	}
	log := m.logger.With(map[string]any{"ref": ref})

	if a.IsPlaceholder() {
		log.Debugf("Adopting %s for placeholder", schema.Summary(b))
		schema.Overlay(a, b)
		return
	}

	if a.HasType() && b.HasType() && !schema.SameType(a, b) {
		d := Divergence{
			Ref:   ref,
			Left:  schema.DisplayValue(a.Type),
			Right: schema.DisplayValue(b.Type),
		}
		log.Infof("Type conflict, keeping %s over %s", d.Left, d.Right)
		m.divergences = append(m.divergences, d)
		return
	}

	if a.HasEnum() && b.HasEnum() {
		a.Enum = schema.UnionValues(a.Enum, b.Enum)
		schema.OverlayEnumMeta(a, b)
		log.Debugf("Merged enums into %d values", len(a.Enum))
		return
	}

	switch {
	case b.IsObject() && b.HasProperties():
		for name, child := range b.Properties.All() {
			if existing, ok := a.Property(name); ok && existing != nil {
				m.reconcile(existing, child, schema.JoinPaths(ref, name))
				continue
			}
			log.Debugf("Adding property %s", name)
			a.SetProperty(name, schema.Clone(child))
		}
	case b.IsArray() && b.HasItems():
		m.reconcile(a.Items, b.Items, schema.JoinPaths(ref, schema.ItemsSegment))
	}
}
