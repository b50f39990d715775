package ast

// The span kinds share one rule: inside an image's alt text (nesting
// level above zero) they render no tags, only their children's text.

// Emphasis is an em span.
type Emphasis struct{ container }

func NewEmphasis(mode Mode) *Emphasis {
	n := &Emphasis{container{base: base{kind: KindEmphasis, mode: mode}}}
	n.self = n
	return n
}

func (n *Emphasis) Open(w *Writer, ctx Context)  { spanTag(w, ctx, "<em>") }
func (n *Emphasis) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</em>") }

// Strong is a strong emphasis span.
type Strong struct{ container }

func NewStrong(mode Mode) *Strong {
	n := &Strong{container{base: base{kind: KindStrong, mode: mode}}}
	n.self = n
	return n
}

func (n *Strong) Open(w *Writer, ctx Context)  { spanTag(w, ctx, "<strong>") }
func (n *Strong) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</strong>") }

// Underline is a u span.
type Underline struct{ container }

func NewUnderline(mode Mode) *Underline {
	n := &Underline{container{base: base{kind: KindUnderline, mode: mode}}}
	n.self = n
	return n
}

func (n *Underline) Open(w *Writer, ctx Context)  { spanTag(w, ctx, "<u>") }
func (n *Underline) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</u>") }

// Link is a hyperlink. The href renders percent-escaped, the title
// HTML-escaped.
type Link struct {
	container
	Href  Attribute
	Title Attribute
}

func NewLink(mode Mode, href, title AttributeSpec) (*Link, error) {
	hrefAttr, err := makeAttribute(href, mode)
	if err != nil {
		return nil, err
	}
	titleAttr, err := makeAttribute(title, mode)
	if err != nil {
		return nil, err
	}
	n := &Link{
		container: container{base: base{kind: KindLink, mode: mode}},
		Href:      hrefAttr,
		Title:     titleAttr,
	}
	n.self = n
	return n, nil
}

func (n *Link) Open(w *Writer, ctx Context) {
	if ctx.ImageNestingLevel > 0 {
		return
	}
	w.Literal(`<a href="`)
	n.Href.render(w, Context{URLEscape: true})
	if n.Title != nil {
		w.Literal(`" title="`)
		n.Title.render(w, Context{})
	}
	w.Literal(`">`)
}

func (n *Link) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</a>") }

// Image is an inline image. Its children are the alt text: the img tag
// itself is emitted only by the outermost image, and everything inside
// renders tagless so the alt attribute stays plain text.
type Image struct {
	container
	Src   Attribute
	Title Attribute
}

func NewImage(mode Mode, src, title AttributeSpec) (*Image, error) {
	srcAttr, err := makeAttribute(src, mode)
	if err != nil {
		return nil, err
	}
	titleAttr, err := makeAttribute(title, mode)
	if err != nil {
		return nil, err
	}
	n := &Image{
		container: container{base: base{kind: KindImage, mode: mode}},
		Src:       srcAttr,
		Title:     titleAttr,
	}
	n.self = n
	return n, nil
}

// Open compares against the level Image's renderSubtree already
// incremented, so 1 means this image is the outermost one.
func (n *Image) Open(w *Writer, ctx Context) {
	if ctx.ImageNestingLevel != 1 {
		return
	}
	w.Literal(`<img src="`)
	n.Src.render(w, Context{URLEscape: true})
	w.Literal(`" alt="`)
}

func (n *Image) Close(w *Writer, ctx Context) {
	if ctx.ImageNestingLevel != 1 {
		return
	}
	if n.Title != nil {
		w.Literal(`" title="`)
		n.Title.render(w, Context{})
	}
	w.Literal(`">`)
}

func (n *Image) renderSubtree(w *Writer, ctx Context) {
	ctx.ImageNestingLevel++
	n.Open(w, ctx)
	for _, child := range n.children {
		Render(w, child, ctx)
	}
	n.Close(w, ctx)
}

// CodeSpan is an inline code span.
type CodeSpan struct{ container }

func NewCodeSpan(mode Mode) *CodeSpan {
	n := &CodeSpan{container{base: base{kind: KindCode, mode: mode}}}
	n.self = n
	return n
}

func (n *CodeSpan) Open(w *Writer, ctx Context)  { spanTag(w, ctx, "<code>") }
func (n *CodeSpan) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</code>") }

// Strikethrough is a del span.
type Strikethrough struct{ container }

func NewStrikethrough(mode Mode) *Strikethrough {
	n := &Strikethrough{container{base: base{kind: KindStrikethrough, mode: mode}}}
	n.self = n
	return n
}

func (n *Strikethrough) Open(w *Writer, ctx Context)  { spanTag(w, ctx, "<del>") }
func (n *Strikethrough) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</del>") }

// InlineMath is a LaTeX math span.
type InlineMath struct{ container }

func NewInlineMath(mode Mode) *InlineMath {
	n := &InlineMath{container{base: base{kind: KindInlineMath, mode: mode}}}
	n.self = n
	return n
}

func (n *InlineMath) Open(w *Writer, ctx Context)  { spanTag(w, ctx, "<x-equation>") }
func (n *InlineMath) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</x-equation>") }

// DisplayMath is a display-style LaTeX math span.
type DisplayMath struct{ container }

func NewDisplayMath(mode Mode) *DisplayMath {
	n := &DisplayMath{container{base: base{kind: KindDisplayMath, mode: mode}}}
	n.self = n
	return n
}

func (n *DisplayMath) Open(w *Writer, ctx Context)  { spanTag(w, ctx, `<x-equation type="display">`) }
func (n *DisplayMath) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</x-equation>") }

// WikiLink is a wiki-style link span with a target attribute.
type WikiLink struct {
	container
	Target Attribute
}

func NewWikiLink(mode Mode, target AttributeSpec) (*WikiLink, error) {
	targetAttr, err := makeAttribute(target, mode)
	if err != nil {
		return nil, err
	}
	n := &WikiLink{
		container: container{base: base{kind: KindWikiLink, mode: mode}},
		Target:    targetAttr,
	}
	n.self = n
	return n, nil
}

func (n *WikiLink) Open(w *Writer, ctx Context) {
	if ctx.ImageNestingLevel > 0 {
		return
	}
	w.Literal(`<x-wikilink data-target="`)
	n.Target.render(w, Context{})
	w.Literal(`">`)
}

func (n *WikiLink) Close(w *Writer, ctx Context) { spanTag(w, ctx, "</x-wikilink>") }

// spanTag writes tag unless the context is inside an image's alt text.
func spanTag(w *Writer, ctx Context, tag string) {
	if ctx.ImageNestingLevel == 0 {
		w.Literal(tag)
	}
}
