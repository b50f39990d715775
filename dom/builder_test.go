package dom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insomnimus/mdom/ast"
)

func TestBuildSimpleDocument(t *testing.T) {
	b := New(ast.ModeString)
	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.EnterBlock(ast.KindParagraph, nil))
	require.NoError(t, b.EnterSpan(ast.KindEmphasis, nil))
	require.NoError(t, b.Text(ast.KindNormalText, ast.Str("hi")))
	require.NoError(t, b.LeaveSpan(ast.KindEmphasis))
	require.NoError(t, b.LeaveBlock(ast.KindParagraph))
	require.NoError(t, b.LeaveBlock(ast.KindDocument))

	root, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, ast.KindDocument, root.Kind())

	doc := root.(ast.Container)
	require.Len(t, doc.Children(), 1)
	p := doc.Children()[0].(ast.Container)
	require.Equal(t, ast.KindParagraph, p.Kind())
	require.Same(t, root, p.Parent())

	got, err := ast.RenderHTML(root)
	require.NoError(t, err)
	require.Equal(t, "<p><em>hi</em></p>\n", got)
	require.Empty(t, b.Warnings())
}

func TestBuilderEventValidation(t *testing.T) {
	b := New(ast.ModeString)
	require.Error(t, b.EnterBlock(ast.KindEmphasis, nil))
	require.Error(t, b.EnterSpan(ast.KindParagraph, nil))

	// Spans and text need an open block.
	require.ErrorIs(t, b.EnterSpan(ast.KindEmphasis, nil), ErrUnbalanced)
	require.ErrorIs(t, b.Text(ast.KindNormalText, ast.Str("x")), ErrUnbalanced)
	require.ErrorIs(t, b.LeaveBlock(ast.KindParagraph), ErrUnbalanced)
}

func TestBuilderEnterAfterDocumentClosed(t *testing.T) {
	b := New(ast.ModeString)
	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.LeaveBlock(ast.KindDocument))
	// The tree is complete; a second root-level block has nowhere to go.
	require.ErrorIs(t, b.EnterBlock(ast.KindParagraph, nil), ErrUnbalanced)
}

func TestBuilderUnbalancedFinish(t *testing.T) {
	b := New(ast.ModeString)
	_, err := b.Finish()
	require.ErrorIs(t, err, ErrNoDocument)

	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.EnterBlock(ast.KindParagraph, nil))
	_, err = b.Finish()
	require.ErrorIs(t, err, ErrUnbalanced)
}

func TestBuilderLeafChildren(t *testing.T) {
	b := New(ast.ModeString)
	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.EnterBlock(ast.KindHorizontalRule, nil))
	require.ErrorIs(t, b.Text(ast.KindNormalText, ast.Str("x")), ast.ErrLeafChildren)
}

func TestBuilderMismatchedLeave(t *testing.T) {
	b := New(ast.ModeString)
	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.EnterBlock(ast.KindParagraph, nil))
	// The engine closes the wrong kind; the builder trusts the nesting
	// and records a warning.
	require.NoError(t, b.LeaveBlock(ast.KindQuote))
	require.NoError(t, b.LeaveBlock(ast.KindDocument))

	root, err := b.Finish()
	require.NoError(t, err)
	require.NotNil(t, root)
	require.Len(t, b.Warnings(), 1)
	require.Contains(t, b.Warnings()[0].String(), "quote")
}

func TestBuilderStrictNesting(t *testing.T) {
	b := New(ast.ModeString, StrictNesting())
	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.EnterBlock(ast.KindParagraph, nil))
	require.ErrorIs(t, b.LeaveBlock(ast.KindQuote), ErrUnbalanced)
}

func TestBuilderReuseAfterFinish(t *testing.T) {
	b := New(ast.ModeString)
	for i := 0; i < 2; i++ {
		require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
		require.NoError(t, b.LeaveBlock(ast.KindDocument))
		root, err := b.Finish()
		require.NoError(t, err)
		require.Equal(t, ast.KindDocument, root.Kind())
	}
}

func TestBuilderReset(t *testing.T) {
	b := New(ast.ModeString)
	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.EnterBlock(ast.KindParagraph, nil))
	require.NoError(t, b.LeaveBlock(ast.KindQuote)) // records a warning
	b.Reset()
	require.Empty(t, b.Warnings())
	_, err := b.Finish()
	require.ErrorIs(t, err, ErrNoDocument)
}

func TestBuilderBytesMode(t *testing.T) {
	b := New(ast.ModeBytes)
	require.NoError(t, b.EnterBlock(ast.KindDocument, nil))
	require.NoError(t, b.EnterBlock(ast.KindParagraph, nil))

	// Payloads must carry the builder's mode.
	require.ErrorIs(t, b.Text(ast.KindNormalText, ast.Str("x")), ast.ErrModeMismatch)
	require.NoError(t, b.Text(ast.KindNormalText, ast.Bytes([]byte("ok"))))
	require.NoError(t, b.LeaveBlock(ast.KindParagraph))
	require.NoError(t, b.LeaveBlock(ast.KindDocument))

	root, err := b.Finish()
	require.NoError(t, err)
	got, err := ast.RenderHTMLBytes(root)
	require.NoError(t, err)
	require.Equal(t, "<p>ok</p>\n", string(got))
}
