package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	lineSeparator      = 0x2028
	paragraphSeparator = 0x2029
)

// ToStringSafe encodes v as JSON that can be embedded verbatim inside an HTML
// script element. Every rewrite it applies is a valid JSON escape, so
// decoding the result yields the same value as decoding plain JSON.
func ToStringSafe(v any) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return "", encodingError(err)
	}

	return EscapeScript(strings.TrimSuffix(buf.String(), "\n")), nil
}

// EscapeScript neutralizes the sequences that would end a script element or
// open an HTML comment, plus the JavaScript line terminators U+2028/U+2029.
func EscapeScript(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		switch {
		case hasPrefixFold(s[i:], "</script"):
			b.WriteString(`<\/`)
			i += len("</")
		case strings.HasPrefix(s[i:], "<!--"):
			b.WriteString("\\u003c!--")
			i += len("<!--")
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == lineSeparator || r == paragraphSeparator {
				fmt.Fprintf(&b, "\\u%04x", r)
			} else {
				b.WriteString(s[i : i+size])
			}

			i += size
		}
	}

	return b.String()
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
