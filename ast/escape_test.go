package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTMLEscape(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"plain text", "plain text"},
		{`a & b < c > d "e"`, "a &amp; b &lt; c &gt; d &quot;e&quot;"},
		{"'single quotes pass'", "'single quotes pass'"},
		{"&&&", "&amp;&amp;&amp;"},
		{"héllo — ünïcode", "héllo — ünïcode"},
		{"<script>alert(\"x\")</script>", "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, HTMLEscape(tt.in), "input %q", tt.in)
		require.Equal(t, tt.want, string(HTMLEscapeBytes([]byte(tt.in))), "bytes input %q", tt.in)
	}
}

func TestURLEscape(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"http://example.com/path", "http://example.com/path"},
		{"/a b", "/a%20b"},
		{"/path?q=1&r=2", "/path?q=1&amp;r=2"},
		{"ü", "%C3%BC"},
		{"~tilde", "%7Etilde"},
		{"100%25", "100%25"},
		{"a+b,(c)!*", "a+b,(c)!*"},
		{"#frag@x;:/=", "#frag@x;:/="},
		{"back\\slash", "back%5Cslash"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, URLEscape(tt.in), "input %q", tt.in)
		require.Equal(t, tt.want, string(URLEscapeBytes([]byte(tt.in))), "bytes input %q", tt.in)
	}
}

// Percent escapes come out uppercase; a lowercase %c3%bc is a
// different string to a strict comparer.
func TestURLEscapeUppercaseHex(t *testing.T) {
	require.Equal(t, "%0A", URLEscape("\n"))
	require.Equal(t, "%C3%9F", URLEscape("ß"))
}
