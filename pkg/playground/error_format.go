package playground

import (
	"errors"
	"fmt"
	"strings"

	"github.com/speakeasy-api/schemadiff/schema"
	"github.com/speakeasy-api/schemadiff/schemadiff"
)

// PaneErrors collects the parse failures of one or both input panes.
type PaneErrors struct {
	Errs []*schemadiff.InputError
}

func (e *PaneErrors) Error() string {
	return FormatInputErrors(e.Errs)
}

func (e *PaneErrors) Unwrap() []error {
	out := make([]error, len(e.Errs))
	for i, err := range e.Errs {
		out[i] = err
	}
	return out
}

// Has reports whether the named pane failed.
func (e *PaneErrors) Has(input string) bool {
	for _, err := range e.Errs {
		if err.Input == input {
			return true
		}
	}
	return false
}

// Headline is the short message shown under a failing pane.
func Headline(input string) string {
	return "Error processing " + input
}

// FormatInputErrors turns pane parse failures into a user-facing message.
func FormatInputErrors(errs []*schemadiff.InputError) string {
	if len(errs) == 0 {
		return "Processing failed, but no additional details were provided."
	}

	var b strings.Builder
	for i, err := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Headline(err.Input))
		b.WriteByte('\n')

		loc, details := describe(err.Err)
		if loc != "" {
			fmt.Fprintf(&b, "  Location: %s\n", loc)
		}
		if hint := hintFor(err.Err); hint != "" {
			fmt.Fprintf(&b, "  How to fix: %s\n", hint)
		}
		if details != "" {
			fmt.Fprintf(&b, "  Details: %s\n", details)
		}
	}
	return b.String()
}

func describe(err error) (loc, details string) {
	var perr *schema.ParseError
	if !errors.As(err, &perr) {
		return "", strings.TrimSpace(err.Error())
	}
	if perr.Line > 0 {
		loc = fmt.Sprintf("line %d, column %d", perr.Line, perr.Column)
	}
	return loc, strings.TrimSpace(perr.Err.Error())
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, schema.ErrEmptyInput):
		return "Paste a JSON schema into the pane."
	case strings.Contains(err.Error(), "trailing data"):
		return "The pane must hold a single JSON value; remove anything after it."
	case strings.Contains(err.Error(), "unexpected EOF"):
		return "Check for an unclosed brace or bracket."
	}
	return ""
}
