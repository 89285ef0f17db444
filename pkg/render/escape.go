package render

import "strings"

// Escaping is contextual and fixed. Text content escapes the three
// characters that can change document structure; attribute values
// additionally escape both quote characters. Nothing else is touched,
// and there is no double-escape detection: escaping "&amp;" yields
// "&amp;amp;". Raw nodes bypass this file entirely.

const (
	textSpecials = "&<>"
	attrSpecials = "&<>\"'"
)

// writeEscapedText appends s to buf with text-content escaping.
// The common case of no special characters appends s verbatim.
func writeEscapedText(buf *Buffer, s string) {
	if !strings.ContainsAny(s, textSpecials) {
		buf.WriteString(s)
		return
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteByte(s[i])
		}
	}
}

// writeEscapedAttr appends s to buf with attribute-value escaping.
func writeEscapedAttr(buf *Buffer, s string) {
	if !strings.ContainsAny(s, attrSpecials) {
		buf.WriteString(s)
		return
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteByte(s[i])
		}
	}
}

// escapeText returns s with text-content escaping applied. When s has
// no special characters it is returned as-is, unallocated.
func escapeText(s string) string {
	if !strings.ContainsAny(s, textSpecials) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// escapeAttr returns s with attribute-value escaping applied.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, attrSpecials) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
