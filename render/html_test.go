package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insomnimus/mdom/ast"
	"github.com/insomnimus/mdom/dom"
)

// event scripts double as input for both the streaming renderer and
// the tree builder, so the two paths can be compared directly.
type event struct {
	op   string // eb, lb, es, ls, tx
	kind ast.Kind
	d    *ast.Details
	text string
}

func feed(t *testing.T, events []event, mode ast.Mode, h interface {
	EnterBlock(ast.Kind, *ast.Details) error
	LeaveBlock(ast.Kind) error
	EnterSpan(ast.Kind, *ast.Details) error
	LeaveSpan(ast.Kind) error
	Text(ast.Kind, ast.Raw) error
}) {
	t.Helper()
	for _, e := range events {
		var err error
		switch e.op {
		case "eb":
			err = h.EnterBlock(e.kind, e.d)
		case "lb":
			err = h.LeaveBlock(e.kind)
		case "es":
			err = h.EnterSpan(e.kind, e.d)
		case "ls":
			err = h.LeaveSpan(e.kind)
		case "tx":
			err = h.Text(e.kind, ast.RawIn(mode, []byte(e.text)))
		}
		require.NoError(t, err, "%s %s", e.op, e.kind)
	}
}

// sampleEvents builds the script in the given mode: attribute
// fragments carry mode-tagged payloads just like the text events.
func sampleEvents(mode ast.Mode) []event {
	part := func(s string) ast.AttributeSpec {
		return ast.Part(ast.KindNormalText, ast.RawIn(mode, []byte(s)))
	}
	return []event{
		{op: "eb", kind: ast.KindDocument},
		{op: "eb", kind: ast.KindHeading, d: &ast.Details{Level: 2}},
		{op: "tx", kind: ast.KindNormalText, text: "Title & <more>"},
		{op: "lb", kind: ast.KindHeading},
		{op: "eb", kind: ast.KindParagraph},
		{op: "es", kind: ast.KindStrong},
		{op: "tx", kind: ast.KindNormalText, text: "bold"},
		{op: "ls", kind: ast.KindStrong},
		{op: "tx", kind: ast.KindSoftLineBreak, text: "\n"},
		{op: "es", kind: ast.KindImage, d: &ast.Details{
			Href:  part("/pic.png"),
			Title: part("t"),
		}},
		{op: "es", kind: ast.KindEmphasis},
		{op: "tx", kind: ast.KindNormalText, text: "alt text"},
		{op: "ls", kind: ast.KindEmphasis},
		{op: "tx", kind: ast.KindLineBreak, text: "\n"},
		{op: "tx", kind: ast.KindNormalText, text: "more"},
		{op: "ls", kind: ast.KindImage},
		{op: "lb", kind: ast.KindParagraph},
		{op: "eb", kind: ast.KindHorizontalRule},
		{op: "lb", kind: ast.KindHorizontalRule},
		{op: "lb", kind: ast.KindDocument},
	}
}

func TestStreamRendersSample(t *testing.T) {
	r := NewHTML(ast.ModeString)
	feed(t, sampleEvents(ast.ModeString), ast.ModeString, r)
	got, err := r.Result()
	require.NoError(t, err)

	want := "<h2>Title &amp; &lt;more&gt;</h2>\n" +
		"<p><strong>bold</strong>\n" +
		`<img src="/pic.png" alt="alt text more" title="t">` +
		"</p>\n<hr>\n"
	require.Equal(t, want, got)
}

// The streaming output and the build-then-render output must agree
// byte for byte on the same event stream.
func TestStreamMatchesTree(t *testing.T) {
	r := NewHTML(ast.ModeString)
	feed(t, sampleEvents(ast.ModeString), ast.ModeString, r)
	streamed, err := r.Result()
	require.NoError(t, err)

	b := dom.New(ast.ModeString)
	feed(t, sampleEvents(ast.ModeString), ast.ModeString, b)
	root, err := b.Finish()
	require.NoError(t, err)
	treed, err := ast.RenderHTML(root)
	require.NoError(t, err)

	require.Equal(t, treed, streamed)
}

func TestStreamBytesMode(t *testing.T) {
	r := NewHTML(ast.ModeBytes)
	feed(t, sampleEvents(ast.ModeBytes), ast.ModeBytes, r)
	got, err := r.ResultBytes()
	require.NoError(t, err)

	rs := NewHTML(ast.ModeString)
	feed(t, sampleEvents(ast.ModeString), ast.ModeString, rs)
	want, err := rs.Result()
	require.NoError(t, err)
	require.Equal(t, want, string(got))

	_, err = r.Result()
	require.ErrorIs(t, err, ast.ErrModeMismatch)
}

func TestStreamUnbalanced(t *testing.T) {
	r := NewHTML(ast.ModeString)
	require.ErrorIs(t, r.LeaveBlock(ast.KindParagraph), ErrUnbalanced)

	require.NoError(t, r.EnterBlock(ast.KindDocument, nil))
	_, err := r.Result()
	require.ErrorIs(t, err, ErrUnbalanced)
}

func TestStreamStrictNesting(t *testing.T) {
	r := NewHTML(ast.ModeString, StrictNesting())
	require.NoError(t, r.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, r.EnterBlock(ast.KindParagraph, nil))
	require.ErrorIs(t, r.LeaveBlock(ast.KindQuote), ErrUnbalanced)
}

func TestStreamKindValidation(t *testing.T) {
	r := NewHTML(ast.ModeString)
	require.Error(t, r.EnterBlock(ast.KindEmphasis, nil))
	require.Error(t, r.EnterSpan(ast.KindParagraph, nil))
	require.Error(t, r.Text(ast.KindParagraph, ast.Str("x")))
}

func TestStreamReset(t *testing.T) {
	r := NewHTML(ast.ModeString)
	require.NoError(t, r.EnterBlock(ast.KindDocument, nil))
	r.Reset()

	require.NoError(t, r.EnterBlock(ast.KindParagraph, nil))
	require.NoError(t, r.Text(ast.KindNormalText, ast.Str("x")))
	require.NoError(t, r.LeaveBlock(ast.KindParagraph))
	got, err := r.Result()
	require.NoError(t, err)
	require.Equal(t, "<p>x</p>\n", got)
}
