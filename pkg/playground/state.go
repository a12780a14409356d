package playground

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var whitespaceRunRe = regexp.MustCompile(`\s{2,}`)

// sharedState is the document carried in a share link.
type sharedState struct {
	Schema1 string `json:"schema1"`
	Schema2 string `json:"schema2"`
}

// EncodeState packs both panes into a URL-fragment-safe string. Whitespace
// runs in the serialized state collapse to one space, which leaves the JSON
// texts themselves intact. Links made by the browser editor decode with
// DecodeState and the other way around.
func EncodeState(p Panes) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(sharedState{Schema1: p.Schema1, Schema2: p.Schema2}); err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}

	s := strings.TrimSuffix(buf.String(), "\n")
	s = whitespaceRunRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\r\n", "")

	return base64.StdEncoding.EncodeToString([]byte(escapeComponent(s))), nil
}

// DecodeState unpacks a share string into its panes. A leading "#" is
// ignored so a raw location hash can be passed in.
func DecodeState(state string) (Panes, error) {
	state = strings.TrimPrefix(strings.TrimSpace(state), "#")
	if state == "" {
		return Panes{}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		return Panes{}, fmt.Errorf("failed to decode state: %w", err)
	}
	text, err := url.PathUnescape(string(raw))
	if err != nil {
		return Panes{}, fmt.Errorf("failed to decode state: %w", err)
	}

	var st sharedState
	if err := json.Unmarshal([]byte(text), &st); err != nil {
		return Panes{}, fmt.Errorf("failed to decode state: %w", err)
	}
	return Panes{Schema1: st.Schema1, Schema2: st.Schema2}, nil
}

// escapeComponent percent-encodes everything except the characters a
// browser's encodeURIComponent leaves alone.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
