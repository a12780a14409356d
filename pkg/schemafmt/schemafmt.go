// Package schemafmt pretty-prints JSON schema text while keeping key order.
package schemafmt

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/schemadiff/schema"
)

// DefaultIndent is the number of spaces per level when Cfg.Indent is zero.
const DefaultIndent = 2

// maxIndent bounds Cfg.Indent.
const maxIndent = 16

type Cfg struct {
	// Indent is the number of spaces per nesting level.
	Indent int
	// Tabs indents with one tab per level instead of spaces.
	Tabs bool
	// Compact removes all insignificant whitespace.
	Compact bool
}

// ValidateConfig checks cfg and fills in defaults.
func ValidateConfig(cfg Cfg) (Cfg, error) {
	if cfg.Indent < 0 || cfg.Indent > maxIndent {
		return cfg, fmt.Errorf("invalid indent %d; must be between 0 and %d", cfg.Indent, maxIndent)
	}
	if cfg.Compact && cfg.Tabs {
		return cfg, fmt.Errorf("compact and tabs are mutually exclusive")
	}
	if cfg.Indent == 0 {
		cfg.Indent = DefaultIndent
	}
	return cfg, nil
}

func (c Cfg) indent() string {
	switch {
	case c.Compact:
		return ""
	case c.Tabs:
		return "\t"
	}
	return strings.Repeat(" ", c.Indent)
}

// Format re-indents JSON text. The input must hold exactly one JSON value;
// object key order and number spelling are kept as written.
func Format(text string, cfg Cfg) (string, error) {
	cfg, err := ValidateConfig(cfg)
	if err != nil {
		return "", err
	}

	node, err := schema.ParseValue(text)
	if err != nil {
		return "", fmt.Errorf("could not parse JSON: %w", err)
	}

	out, err := schema.MarshalValueIndent(node, cfg.indent())
	if err != nil {
		return "", fmt.Errorf("could not format JSON: %w", err)
	}
	return string(out), nil
}
