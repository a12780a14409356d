package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// ErrEmptyInput is returned when the input text holds no JSON value.
var ErrEmptyInput = errors.New("empty input")

// ParseError reports input text that is not a single valid JSON document.
type ParseError struct {
	Line   int   // 1-based, 0 when unknown
	Column int   // 1-based, 0 when unknown
	Offset int64 // byte offset into the input
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid JSON at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses JSON text into a schema tree. Object key order is kept.
func Parse(text string) (*Schema, error) {
	node, err := ParseValue(text)
	if err != nil {
		return nil, err
	}
	return FromNode(node), nil
}

// ParseValue parses JSON text into a yaml node tree without interpreting it.
// Strings become !!str scalars, integers !!int, other numbers !!float.
func ParseValue(text string) (*yaml.Node, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	node, err := decodeValue(dec)
	if err != nil {
		return nil, newParseError(text, dec.InputOffset(), err)
	}
	end := dec.InputOffset()
	if _, err := dec.Token(); err != io.EOF {
		rest := text[end:]
		end += int64(len(rest) - len(strings.TrimLeft(rest, " \t\r\n")))
		return nil, newParseError(text, end, errTrailingData)
	}
	return node, nil
}

var errTrailingData = errors.New("trailing data after JSON value")

func newParseError(text string, offset int64, err error) *ParseError {
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		offset = syntax.Offset
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	line, col := position(text, offset)
	return &ParseError{Line: line, Column: col, Offset: offset, Err: err}
}

func position(text string, offset int64) (int, int) {
	if offset < 0 || offset > int64(len(text)) {
		return 0, 0
	}
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := int(offset) - strings.LastIndexByte(before, '\n')
	return line, col
}

func decodeValue(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				m.Content = append(m.Content, StringValue(key), val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return m, nil
		case '[':
			seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				seq.Content = append(seq.Content, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return seq, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return StringValue(t), nil
	case json.Number:
		return NumberValue(t.String()), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return NullValue(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// FromNode interprets a yaml node tree as a schema. A JSON null yields nil.
// Any other non-object value (a boolean schema, say) yields a schema with no
// keywords that serialises back to the original value.
func FromNode(n *yaml.Node) *Schema {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if IsNull(n) {
		return nil
	}
	s := New()
	if n.Kind != yaml.MappingNode {
		s.raw = n
		return s
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		s.rememberOrder(key)
		if !s.assign(key, val) {
			s.SetKeyword(key, val)
		}
	}
	return s
}

// assign stores an interpreted keyword, reporting false when the value does
// not have the shape the engine understands.
func (s *Schema) assign(key string, val *yaml.Node) bool {
	if IsNull(val) {
		return false
	}
	switch key {
	case KeywordType:
		s.Type = val
		return true
	case KeywordProperties:
		if val.Kind != yaml.MappingNode {
			return false
		}
		props := sequencedmap.New[string, *Schema]()
		for i := 0; i+1 < len(val.Content); i += 2 {
			props.Set(val.Content[i].Value, FromNode(val.Content[i+1]))
		}
		s.Properties = props
		return true
	case KeywordItems:
		if val.Kind != yaml.MappingNode {
			return false
		}
		s.Items = FromNode(val)
		return true
	case KeywordOneOf:
		if val.Kind != yaml.SequenceNode {
			return false
		}
		alts := make([]*Schema, 0, len(val.Content))
		for _, c := range val.Content {
			alts = append(alts, FromNode(c))
		}
		s.OneOf = alts
		return true
	case KeywordEnum:
		if val.Kind != yaml.SequenceNode {
			return false
		}
		s.Enum = append([]*yaml.Node{}, val.Content...)
		return true
	case KeywordEnumMeta:
		if val.Kind != yaml.MappingNode {
			return false
		}
		meta := sequencedmap.New[string, *yaml.Node]()
		for i := 0; i+1 < len(val.Content); i += 2 {
			meta.Set(val.Content[i].Value, val.Content[i+1])
		}
		s.EnumMeta = meta
		return true
	}
	return false
}

// MustParse is Parse for tests and literals; it panics on error.
func MustParse(text string) *Schema {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// Compact removes insignificant whitespace from JSON text.
func Compact(text string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(text)); err != nil {
		return "", newParseError(text, 0, err)
	}
	return buf.String(), nil
}
