package ast

import (
	"bytes"
	"fmt"
)

// htmlEscaper substitutes the four HTML-special characters and passes
// everything else through. Indexing by byte is safe for both modes:
// the escaped characters are ASCII, so multi-byte sequences are never
// split.
var htmlEscaper = [256][]byte{
	'&': []byte("&amp;"),
	'<': []byte("&lt;"),
	'>': []byte("&gt;"),
	'"': []byte("&quot;"),
}

// htmlEscapeTo writes d to buf, escaping &, <, > and ".
func htmlEscapeTo(buf *bytes.Buffer, d []byte) {
	var start int
	for i := 0; i < len(d); i++ {
		if esc := htmlEscaper[d[i]]; esc != nil {
			buf.Write(d[start:i])
			buf.Write(esc)
			start = i + 1
		}
	}
	buf.Write(d[start:])
}

// HTMLEscape escapes &, <, > and " in s.
func HTMLEscape(s string) string {
	var buf bytes.Buffer
	htmlEscapeTo(&buf, []byte(s))
	return buf.String()
}

// HTMLEscapeBytes escapes &, <, > and " in d.
func HTMLEscapeBytes(d []byte) []byte {
	var buf bytes.Buffer
	htmlEscapeTo(&buf, d)
	return buf.Bytes()
}

// urlSafe marks the bytes that survive URL escaping untouched: digits,
// ASCII letters and the unreserved punctuation set.
var urlSafe = func() [256]bool {
	var t [256]bool
	for c := byte('0'); c <= '9'; c++ {
		t[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = true
		t[c+'a'-'A'] = true
	}
	for _, c := range []byte("-_.+!*(),%#@?=;:/,+$") {
		t[c] = true
	}
	return t
}()

// urlEscapeTo percent-encodes every byte of d outside the safe set,
// then escapes literal ampersands in the output to &amp; so the result
// stays valid inside a double-quoted attribute. The order matters: the
// ampersand pass must not see ampersands that are about to be
// percent-encoded, and & itself is in the safe set, so it reaches the
// second step unencoded.
func urlEscapeTo(buf *bytes.Buffer, d []byte) {
	for _, c := range d {
		switch {
		case c == '&':
			buf.WriteString("&amp;")
		case urlSafe[c]:
			buf.WriteByte(c)
		default:
			fmt.Fprintf(buf, "%%%02X", c)
		}
	}
}

// URLEscape percent-encodes s for use as an href/src attribute value.
func URLEscape(s string) string {
	var buf bytes.Buffer
	urlEscapeTo(&buf, []byte(s))
	return buf.String()
}

// URLEscapeBytes percent-encodes d for use as an href/src attribute value.
func URLEscapeBytes(d []byte) []byte {
	var buf bytes.Buffer
	urlEscapeTo(&buf, d)
	return buf.Bytes()
}
