package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node converts the schema back into a yaml node tree, keeping keyword and
// property order. A nil schema becomes a JSON null.
func (s *Schema) Node() *yaml.Node {
	if s == nil {
		return NullValue()
	}
	keys := s.keywordOrder()
	if len(keys) == 0 && s.raw != nil {
		return s.raw
	}

	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range keys {
		m.Content = append(m.Content, StringValue(k), s.keywordNode(k))
	}
	return m
}

func (s *Schema) keywordNode(k string) *yaml.Node {
	switch k {
	case KeywordType:
		if s.Type != nil {
			return s.Type
		}
	case KeywordProperties:
		if s.Properties != nil {
			props := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for name, child := range s.Properties.All() {
				props.Content = append(props.Content, StringValue(name), child.Node())
			}
			return props
		}
	case KeywordItems:
		if s.Items != nil {
			return s.Items.Node()
		}
	case KeywordOneOf:
		if s.OneOf != nil {
			seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, alt := range s.OneOf {
				seq.Content = append(seq.Content, alt.Node())
			}
			return seq
		}
	case KeywordEnum:
		if s.Enum != nil {
			return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: s.Enum}
		}
	case KeywordEnumMeta:
		if s.EnumMeta != nil {
			meta := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for value, desc := range s.EnumMeta.All() {
				meta.Content = append(meta.Content, StringValue(value), desc)
			}
			return meta
		}
	}
	v, _ := s.Keyword(k)
	return v
}

// MarshalJSON encodes the schema as compact JSON in keyword order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, s.Node()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent encodes the schema as JSON using indent per nesting level.
func MarshalIndent(s *Schema, indent string) ([]byte, error) {
	return MarshalValueIndent(s.Node(), indent)
}

// MarshalValueIndent encodes a JSON-shaped yaml node tree. An empty indent
// produces compact output.
func MarshalValueIndent(n *yaml.Node, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	if indent == "" {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", indent); err != nil {
		return nil, fmt.Errorf("failed to indent JSON: %w", err)
	}
	return out.Bytes(), nil
}

// String returns the compact JSON form, or an error marker.
func (s *Schema) String() string {
	b, err := s.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid schema: %v>", err)
	}
	return string(b)
}

// MarshalYAML lets yaml.v3 encode a schema in keyword order.
func (s *Schema) MarshalYAML() (any, error) {
	return plainStyle(s.Node()), nil
}

// ToYAML encodes the schema as a YAML document.
func ToYAML(s *Schema) (string, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(plainStyle(s.Node())); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return b.String(), nil
}

// plainStyle copies a tree with the JSON quoting styles removed so yaml.v3
// picks its own, which reads better in block YAML.
func plainStyle(n *yaml.Node) *yaml.Node {
	c := cloneNode(n)
	var walk func(*yaml.Node)
	walk = func(n *yaml.Node) {
		n.Style = 0
		for _, child := range n.Content {
			walk(child)
		}
	}
	walk(c)
	return c
}

func writeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return fmt.Errorf("document node with %d values", len(n.Content))
		}
		return writeJSON(buf, n.Content[0])
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, n.Content[i].Value); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		switch n.Tag {
		case tagNull:
			buf.WriteString("null")
		case tagBool, tagInt, tagFloat:
			buf.WriteString(n.Value)
		default:
			return writeString(buf, n.Value)
		}
		return nil
	case yaml.AliasNode:
		return writeJSON(buf, n.Alias)
	}
	return fmt.Errorf("unsupported node kind %d", n.Kind)
}

func writeString(buf *bytes.Buffer, s string) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(b.Bytes(), []byte("\n")))
	return nil
}
