package ast

import "bytes"

// Context is the transient state passed down through a render pass.
// It flows parent to child and is never stored on the tree.
type Context struct {
	// URLEscape selects percent-escaping instead of HTML-escaping for
	// text fragments. Only attribute rendering (href, src) sets it.
	URLEscape bool
	// ImageNestingLevel counts the enclosing Image spans. Above zero,
	// spans suppress their tags so alt text flattens to plain text.
	ImageNestingLevel int
}

// Writer accumulates rendered output. The mode is fixed at creation
// and decides which of String or Bytes the caller may take out; the
// byte-oriented escaping routines behave identically under both.
type Writer struct {
	buf  bytes.Buffer
	mode Mode
}

func NewWriter(mode Mode) *Writer { return &Writer{mode: mode} }

func (w *Writer) Mode() Mode { return w.mode }

// Literal writes s verbatim.
func (w *Writer) Literal(s string) { w.buf.WriteString(s) }

// LiteralBytes writes d verbatim.
func (w *Writer) LiteralBytes(d []byte) { w.buf.Write(d) }

// Escape writes raw with the escaping the context calls for:
// percent-escaping inside URL attributes, HTML-escaping otherwise.
func (w *Writer) Escape(raw Raw, ctx Context) {
	if ctx.URLEscape {
		urlEscapeTo(&w.buf, raw.Value())
	} else {
		htmlEscapeTo(&w.buf, raw.Value())
	}
}

func (w *Writer) String() string { return w.buf.String() }
func (w *Writer) Bytes() []byte  { return w.buf.Bytes() }
func (w *Writer) Reset()         { w.buf.Reset() }
