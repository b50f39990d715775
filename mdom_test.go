package mdom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insomnimus/mdom/ast"
	"github.com/insomnimus/mdom/engine"
)

var sampleDocs = []string{
	"# Title\n\nHello *world*.\n",
	"> quote\n\n---\n",
	"- [x] done\n- [ ] open\n",
	"| a | b |\n|:--|--:|\n| 1 | 2 |\n",
	"```go\nfmt.Println(\"hi\")\n```\n",
	"a ~~b~~ `c < d` **e**\n",
	`![alt *text*](/img.png "pic")` + "\n",
	"one\\\ntwo\nthree\n",
}

func TestParseRendersHTML(t *testing.T) {
	root, warnings, err := ParseString("Hello, world\n")
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, ast.KindDocument, root.Kind())

	got, err := ast.RenderHTML(root)
	require.NoError(t, err)
	require.Equal(t, "<p>Hello, world</p>\n", got)
}

// The streaming path and the build-then-render path must produce the
// same markup for the same input.
func TestStreamingMatchesTree(t *testing.T) {
	for _, doc := range sampleDocs {
		streamed, err := ToHTML(doc)
		require.NoError(t, err, "input %q", doc)

		root, warnings, err := ParseString(doc)
		require.NoError(t, err, "input %q", doc)
		require.Empty(t, warnings)
		treed, err := ast.RenderHTML(root)
		require.NoError(t, err)

		require.Equal(t, treed, streamed, "input %q", doc)
	}
}

func TestStringAndBytesAgree(t *testing.T) {
	for _, doc := range sampleDocs {
		s, err := ToHTML(doc)
		require.NoError(t, err)
		b, err := ToHTMLBytes([]byte(doc))
		require.NoError(t, err)
		require.Equal(t, s, string(b), "input %q", doc)
	}
}

func TestWithEngine(t *testing.T) {
	doc := "# Title\n\nplain text\n"
	want := "<h1>Title</h1>\n<p>plain text</p>\n"

	got, err := ToHTML(doc, WithEngine(engine.NewGomarkdown()))
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = ToHTML(doc, WithEngine(engine.NewGoldmark()))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// Well formed input produces balanced events, so strict mode changes
// nothing.
func TestStrictNesting(t *testing.T) {
	for _, doc := range sampleDocs {
		loose, err := ToHTML(doc)
		require.NoError(t, err)
		strict, err := ToHTML(doc, StrictNesting())
		require.NoError(t, err)
		require.Equal(t, loose, strict)
	}
}

func TestParseBytes(t *testing.T) {
	root, _, err := Parse([]byte("*x*\n"))
	require.NoError(t, err)
	require.Equal(t, ast.ModeBytes, root.Mode())

	got, err := ast.RenderHTMLBytes(root)
	require.NoError(t, err)
	require.Equal(t, "<p><em>x</em></p>\n", string(got))

	_, err = ast.RenderHTML(root)
	require.ErrorIs(t, err, ast.ErrModeMismatch)
}
