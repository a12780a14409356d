// Package playground is the backend of the two-pane schema comparison editor:
// it parses both panes, reports per-pane failures and runs diff, merge and
// format over them.
package playground

import (
	"fmt"

	"github.com/speakeasy-api/schemadiff/pkg/schemafmt"
	"github.com/speakeasy-api/schemadiff/schema"
	"github.com/speakeasy-api/schemadiff/schemadiff"
	"github.com/speakeasy-api/schemadiff/schemamerge"
)

// Panes holds the text of the two input editors.
type Panes struct {
	Schema1 string `json:"schema1"`
	Schema2 string `json:"schema2"`
}

// Result is what the output pane shows after an action, plus the share
// state to put in the location hash.
type Result struct {
	Output      string                   `json:"output"`
	Entries     []schemadiff.Entry       `json:"entries,omitempty"`
	Divergences []schemamerge.Divergence `json:"divergences,omitempty"`
	State       string                   `json:"state"`
}

// outputIndent is the indent of merged schemas in the output pane.
const outputIndent = "  "

// ParsePanes parses both panes independently so a failure on one side does
// not hide a failure on the other. The error is a *PaneErrors.
func ParsePanes(p Panes) (*schema.Schema, *schema.Schema, error) {
	var errs []*schemadiff.InputError

	s1, err := schema.Parse(p.Schema1)
	if err != nil {
		errs = append(errs, &schemadiff.InputError{Input: schemadiff.InputFirst, Err: err})
	}
	s2, err := schema.Parse(p.Schema2)
	if err != nil {
		errs = append(errs, &schemadiff.InputError{Input: schemadiff.InputSecond, Err: err})
	}

	if len(errs) > 0 {
		return nil, nil, &PaneErrors{Errs: errs}
	}
	return s1, s2, nil
}

// DiffPanes compares the panes. The output is one entry per line, empty when
// the schemas agree.
func DiffPanes(p Panes, opts ...schema.Options) (*Result, error) {
	s1, s2, err := ParsePanes(p)
	if err != nil {
		return nil, err
	}
	state, err := EncodeState(p)
	if err != nil {
		return nil, err
	}

	entries := schemadiff.DiffSchemas(s1, s2, opts...)
	return &Result{
		Output:  schemadiff.Join(entries),
		Entries: entries,
		State:   state,
	}, nil
}

// MergePanes merges the second pane into the first and renders the result
// as indented JSON.
func MergePanes(p Panes, opts ...schema.Options) (*Result, error) {
	s1, s2, err := ParsePanes(p)
	if err != nil {
		return nil, err
	}
	state, err := EncodeState(p)
	if err != nil {
		return nil, err
	}

	res := schemamerge.MergeSchemas(s1, s2, opts...)
	out, err := schema.MarshalIndent(res.Schema, outputIndent)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged schema: %w", err)
	}
	return &Result{
		Output:      string(out),
		Divergences: res.Divergences,
		State:       state,
	}, nil
}

// FormatPanes pretty-prints both panes. Either pane failing to parse fails
// the whole call, leaving the editor contents alone.
func FormatPanes(p Panes, cfg schemafmt.Cfg) (Panes, error) {
	var errs []*schemadiff.InputError

	f1, err := schemafmt.Format(p.Schema1, cfg)
	if err != nil {
		errs = append(errs, formatError(schemadiff.InputFirst, err))
	}
	f2, err := schemafmt.Format(p.Schema2, cfg)
	if err != nil {
		errs = append(errs, formatError(schemadiff.InputSecond, err))
	}

	if len(errs) > 0 {
		return p, &PaneErrors{Errs: errs}
	}
	return Panes{Schema1: f1, Schema2: f2}, nil
}

func formatError(input string, err error) *schemadiff.InputError {
	return &schemadiff.InputError{Input: input, Err: err}
}

// LoadState decodes a share string and pretty-prints each pane that holds
// valid JSON. Panes that do not parse are returned as they were shared.
func LoadState(state string) (Panes, error) {
	p, err := DecodeState(state)
	if err != nil {
		return Panes{}, err
	}
	cfg := schemafmt.Cfg{Indent: schemafmt.DefaultIndent}
	if f, err := schemafmt.Format(p.Schema1, cfg); err == nil {
		p.Schema1 = f
	}
	if f, err := schemafmt.Format(p.Schema2, cfg); err == nil {
		p.Schema2 = f
	}
	return p, nil
}
