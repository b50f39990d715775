package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGomarkdownBasics(t *testing.T) {
	e := NewGomarkdown()
	tests := []struct {
		name, in, want string
	}{
		{
			"heading and paragraph",
			"## Head\n\nplain *em* **strong**\n",
			"<h2>Head</h2>\n<p>plain <em>em</em> <strong>strong</strong></p>\n",
		},
		{
			"blockquote",
			"> q\n",
			"<blockquote>\n<p>q</p>\n</blockquote>\n",
		},
		{
			"rule",
			"---\n",
			"<hr>\n",
		},
		{
			"tight list",
			"- a\n- b\n",
			"<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			"strikethrough",
			"a ~~b~~ c\n",
			"<p>a <del>b</del> c</p>\n",
		},
		{
			"code span",
			"`a < b`\n",
			"<p><code>a &lt; b</code></p>\n",
		},
		{
			"fenced code",
			"```go\ncode\n```\n",
			"<pre><code class=\"language-go\">code\n</code></pre>\n",
		},
		{
			"link",
			"[x](/url)\n",
			`<p><a href="/url">x</a></p>` + "\n",
		},
		{
			"image",
			"![alt](/a.png)\n",
			`<p><img src="/a.png" alt="alt"></p>` + "\n",
		},
		{
			"soft break",
			"one\ntwo\n",
			"<p>one\ntwo</p>\n",
		},
		{
			"hard break",
			"one\\\ntwo\n",
			"<p>one<br>\ntwo</p>\n",
		},
		{
			"inline math",
			"$a+b$\n",
			"<p><x-equation>a+b</x-equation></p>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, buildHTML(t, e, tt.in))
		})
	}
}

func TestGomarkdownTable(t *testing.T) {
	src := "| a | b |\n|---|--:|\n| 1 | 2 |\n"
	want := "<table>\n<thead>\n<tr>\n" +
		"<th>a</th>\n" + `<th align="right">b</th>` + "\n" +
		"</tr>\n</thead>\n<tbody>\n<tr>\n" +
		"<td>1</td>\n" + `<td align="right">2</td>` + "\n" +
		"</tr>\n</tbody>\n</table>\n"
	require.Equal(t, want, buildHTML(t, NewGomarkdown(), src))
}

// Both engines feed the same event vocabulary; on shared constructs
// their rendered output is identical.
func TestEnginesAgree(t *testing.T) {
	docs := []string{
		"# Title\n\nHello *world*.\n",
		"> quoted\n\n---\n",
		"- a\n- b\n",
		"`code` and **bold**\n",
		"[x](/url)\n",
	}
	gm := NewGomarkdown()
	gold := NewGoldmark()
	for _, doc := range docs {
		require.Equal(t, buildHTML(t, gold, doc), buildHTML(t, gm, doc), "input %q", doc)
	}
}
