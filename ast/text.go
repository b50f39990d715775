package ast

import (
	"bytes"

	"github.com/insomnimus/mdom/entity"
)

// EntityLookup resolves an HTML entity reference (including the
// leading & and trailing ;) to its decoded text. Tests or alternative
// renderers may swap it out.
var EntityLookup = entity.Lookup

// NormalText is plain document text, escaped on render.
type NormalText struct{ text }

func NewNormalText(raw Raw, mode Mode) (*NormalText, error) {
	t, err := newText(KindNormalText, raw, mode)
	if err != nil {
		return nil, err
	}
	return &NormalText{t}, nil
}

func (n *NormalText) Render(w *Writer, ctx Context) { w.Escape(n.raw, ctx) }

// NullChar renders the Unicode replacement character no matter what
// payload it was built with.
type NullChar struct{ text }

func NewNullChar(raw Raw, mode Mode) (*NullChar, error) {
	t, err := newText(KindNullChar, raw, mode)
	if err != nil {
		return nil, err
	}
	return &NullChar{t}, nil
}

func (n *NullChar) Render(w *Writer, ctx Context) { w.Literal("�") }

// LineBreak is a hard break: a br tag, or a single space inside alt text.
type LineBreak struct{ text }

func NewLineBreak(raw Raw, mode Mode) (*LineBreak, error) {
	t, err := newText(KindLineBreak, raw, mode)
	if err != nil {
		return nil, err
	}
	return &LineBreak{t}, nil
}

func (n *LineBreak) Render(w *Writer, ctx Context) {
	if ctx.ImageNestingLevel == 0 {
		w.Literal("<br>\n")
	} else {
		w.Literal(" ")
	}
}

// SoftLineBreak is a soft break: a newline, or a single space inside
// alt text.
type SoftLineBreak struct{ text }

func NewSoftLineBreak(raw Raw, mode Mode) (*SoftLineBreak, error) {
	t, err := newText(KindSoftLineBreak, raw, mode)
	if err != nil {
		return nil, err
	}
	return &SoftLineBreak{t}, nil
}

func (n *SoftLineBreak) Render(w *Writer, ctx Context) {
	if ctx.ImageNestingLevel == 0 {
		w.Literal("\n")
	} else {
		w.Literal(" ")
	}
}

// HTMLEntity holds an entity reference like &amp; or &hearts;. On
// render it is decoded through EntityLookup, NUL bytes are replaced
// with U+FFFD, and the result goes through the usual escaping. An
// unknown entity renders as its literal reference text.
type HTMLEntity struct{ text }

func NewHTMLEntity(raw Raw, mode Mode) (*HTMLEntity, error) {
	t, err := newText(KindHTMLEntity, raw, mode)
	if err != nil {
		return nil, err
	}
	return &HTMLEntity{t}, nil
}

func (n *HTMLEntity) Render(w *Writer, ctx Context) {
	decoded := n.raw.Value()
	if s, ok := EntityLookup(n.raw.String()); ok {
		decoded = []byte(s)
	}
	decoded = bytes.ReplaceAll(decoded, []byte{0}, []byte("�"))
	w.Escape(RawIn(n.mode, decoded), ctx)
}

// CodeText is the literal content of a code block or code span.
type CodeText struct{ text }

func NewCodeText(raw Raw, mode Mode) (*CodeText, error) {
	t, err := newText(KindCodeText, raw, mode)
	if err != nil {
		return nil, err
	}
	return &CodeText{t}, nil
}

func (n *CodeText) Render(w *Writer, ctx Context) { w.Escape(n.raw, ctx) }

// HTMLText is already-serialized markup and renders verbatim.
type HTMLText struct{ text }

func NewHTMLText(raw Raw, mode Mode) (*HTMLText, error) {
	t, err := newText(KindHTMLText, raw, mode)
	if err != nil {
		return nil, err
	}
	return &HTMLText{t}, nil
}

func (n *HTMLText) Render(w *Writer, ctx Context) { w.LiteralBytes(n.raw.Value()) }

// MathText is the literal content of a math span.
type MathText struct{ text }

func NewMathText(raw Raw, mode Mode) (*MathText, error) {
	t, err := newText(KindMathText, raw, mode)
	if err != nil {
		return nil, err
	}
	return &MathText{t}, nil
}

func (n *MathText) Render(w *Writer, ctx Context) { w.Escape(n.raw, ctx) }

// textFactory adapts the typed text constructors to the registry shape.
func textFactory(kind Kind) Factory {
	return func(d *Details, mode Mode) (Node, error) {
		switch kind {
		case KindNormalText:
			return NewNormalText(d.Text, mode)
		case KindNullChar:
			return NewNullChar(d.Text, mode)
		case KindLineBreak:
			return NewLineBreak(d.Text, mode)
		case KindSoftLineBreak:
			return NewSoftLineBreak(d.Text, mode)
		case KindHTMLEntity:
			return NewHTMLEntity(d.Text, mode)
		case KindCodeText:
			return NewCodeText(d.Text, mode)
		case KindHTMLText:
			return NewHTMLText(d.Text, mode)
		default:
			return NewMathText(d.Text, mode)
		}
	}
}
