package engine

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/insomnimus/mdom/ast"
)

// Goldmark drives github.com/yuin/goldmark with the GFM extensions and
// replays its syntax tree as parse events.
type Goldmark struct {
	md  goldmark.Markdown
	log zerolog.Logger
}

// GoldmarkOption configures a Goldmark engine.
type GoldmarkOption func(*Goldmark)

// GoldmarkWithLogger attaches a logger; the default discards everything.
func GoldmarkWithLogger(log zerolog.Logger) GoldmarkOption {
	return func(e *Goldmark) { e.log = log }
}

// NewGoldmark returns a ready engine. The underlying parser is built
// once and reused; goldmark parsers are safe for concurrent use.
func NewGoldmark(opts ...GoldmarkOption) *Goldmark {
	e := &Goldmark{
		md: goldmark.New(goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		)),
		log: zerolog.Nop(),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Parse implements Engine.
func (e *Goldmark) Parse(doc ast.Raw, h Handler) error {
	src := doc.Value()
	root := e.md.Parser().Parse(text.NewReader(src))
	w := &goldmarkWalker{mode: doc.Mode(), src: src, h: h, log: e.log}
	return gast.Walk(root, w.visit)
}

type goldmarkWalker struct {
	mode ast.Mode
	src  []byte
	h    Handler
	log  zerolog.Logger

	// bodyOpen tracks whether a synthetic tbody wrapper is pending a
	// close; goldmark tables have no body node of their own.
	bodyOpen bool
}

func (w *goldmarkWalker) raw(b []byte) ast.Raw { return ast.RawIn(w.mode, b) }

func (w *goldmarkWalker) visit(node gast.Node, entering bool) (gast.WalkStatus, error) {
	switch n := node.(type) {
	case *gast.Document:
		return w.block(entering, ast.KindDocument, nil)

	case *gast.Heading:
		return w.block(entering, ast.KindHeading, &ast.Details{Level: n.Level})

	case *gast.Blockquote:
		return w.block(entering, ast.KindQuote, nil)

	case *gast.Paragraph:
		return w.block(entering, ast.KindParagraph, nil)

	case *gast.TextBlock:
		// The loose content of a tight list item; it has no tag of
		// its own, so the children pass straight through.
		return gast.WalkContinue, nil

	case *gast.List:
		kind, d := goldmarkListDetails(n)
		return w.block(entering, kind, d)

	case *gast.ListItem:
		return w.block(entering, ast.KindListItem, listItemDetails(n))

	case *east.TaskCheckBox:
		// Folded into the item details by listItemDetails.
		return gast.WalkSkipChildren, nil

	case *gast.ThematicBreak:
		if !entering {
			return gast.WalkContinue, nil
		}
		if err := w.h.EnterBlock(ast.KindHorizontalRule, nil); err != nil {
			return gast.WalkStop, err
		}
		return gast.WalkContinue, w.h.LeaveBlock(ast.KindHorizontalRule)

	case *gast.FencedCodeBlock:
		if !entering {
			return gast.WalkContinue, nil
		}
		return gast.WalkSkipChildren, w.fencedCode(n)

	case *gast.CodeBlock:
		if !entering {
			return gast.WalkContinue, nil
		}
		return gast.WalkSkipChildren, w.indentedCode(n)

	case *gast.HTMLBlock:
		if !entering {
			return gast.WalkContinue, nil
		}
		return gast.WalkSkipChildren, w.htmlBlock(n)

	case *east.Table:
		return w.table(n, entering)
	case *east.TableHeader:
		return w.tableHeader(n, entering)
	case *east.TableRow:
		return w.block(entering, ast.KindTableRow, nil)
	case *east.TableCell:
		kind := ast.KindTableCell
		if _, ok := n.Parent().(*east.TableHeader); ok {
			kind = ast.KindTableHeaderCell
		}
		return w.block(entering, kind, &ast.Details{Align: goldmarkAlign(n.Alignment)})

	case *gast.Emphasis:
		kind := ast.KindEmphasis
		if n.Level == 2 {
			kind = ast.KindStrong
		}
		return w.span(entering, kind, nil)

	case *east.Strikethrough:
		return w.span(entering, ast.KindStrikethrough, nil)

	case *gast.Link:
		return w.span(entering, ast.KindLink, w.linkDetails(n.Destination, n.Title))

	case *gast.Image:
		return w.span(entering, ast.KindImage, w.linkDetails(n.Destination, n.Title))

	case *gast.AutoLink:
		if !entering {
			return gast.WalkContinue, nil
		}
		return gast.WalkContinue, w.autoLink(n)

	case *gast.CodeSpan:
		if entering {
			if err := w.h.EnterSpan(ast.KindCode, nil); err != nil {
				return gast.WalkStop, err
			}
			return gast.WalkSkipChildren, w.h.Text(ast.KindCodeText, w.raw(codeSpanValue(n, w.src)))
		}
		return gast.WalkContinue, w.h.LeaveSpan(ast.KindCode)

	case *gast.RawHTML:
		if !entering {
			return gast.WalkContinue, nil
		}
		return gast.WalkSkipChildren, w.segments(ast.KindHTMLText, n.Segments)

	case *gast.Text:
		if !entering {
			return gast.WalkContinue, nil
		}
		return gast.WalkContinue, w.text(n)

	case *gast.String:
		if !entering {
			return gast.WalkContinue, nil
		}
		kind := ast.KindNormalText
		if n.IsRaw() {
			kind = ast.KindHTMLText
		}
		return gast.WalkContinue, w.h.Text(kind, w.raw(n.Value))

	default:
		if entering {
			w.log.Debug().Str("node", fmt.Sprintf("%T", node)).Msg("goldmark: skipping unmapped node")
		}
		return gast.WalkContinue, nil
	}
}

func (w *goldmarkWalker) block(entering bool, kind ast.Kind, d *ast.Details) (gast.WalkStatus, error) {
	if entering {
		return gast.WalkContinue, w.h.EnterBlock(kind, d)
	}
	return gast.WalkContinue, w.h.LeaveBlock(kind)
}

func (w *goldmarkWalker) span(entering bool, kind ast.Kind, d *ast.Details) (gast.WalkStatus, error) {
	if entering {
		return gast.WalkContinue, w.h.EnterSpan(kind, d)
	}
	return gast.WalkContinue, w.h.LeaveSpan(kind)
}

func (w *goldmarkWalker) linkDetails(dest, title []byte) *ast.Details {
	d := &ast.Details{Href: ast.Part(ast.KindNormalText, w.raw(dest))}
	if len(title) > 0 {
		d.Title = ast.Part(ast.KindNormalText, w.raw(title))
	}
	return d
}

func (w *goldmarkWalker) autoLink(n *gast.AutoLink) error {
	label := n.Label(w.src)
	url := n.URL(w.src)
	if n.AutoLinkType == gast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		url = append([]byte("mailto:"), url...)
	}
	d := &ast.Details{Href: ast.Part(ast.KindNormalText, w.raw(url))}
	if err := w.h.EnterSpan(ast.KindLink, d); err != nil {
		return err
	}
	if err := w.h.Text(ast.KindNormalText, w.raw(label)); err != nil {
		return err
	}
	return w.h.LeaveSpan(ast.KindLink)
}

func (w *goldmarkWalker) fencedCode(n *gast.FencedCodeBlock) error {
	d := &ast.Details{FenceChar: '`'}
	if n.Info != nil {
		info := n.Info.Segment.Value(w.src)
		if len(info) > 0 {
			d.Info = ast.Part(ast.KindNormalText, w.raw(info))
		}
	}
	if lang := n.Language(w.src); len(lang) > 0 {
		d.Lang = ast.Part(ast.KindNormalText, w.raw(lang))
	}
	return w.codeLines(d, n.Lines())
}

func (w *goldmarkWalker) indentedCode(n *gast.CodeBlock) error {
	return w.codeLines(&ast.Details{}, n.Lines())
}

func (w *goldmarkWalker) codeLines(d *ast.Details, lines *text.Segments) error {
	if err := w.h.EnterBlock(ast.KindCodeBlock, d); err != nil {
		return err
	}
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if err := w.h.Text(ast.KindCodeText, w.raw(seg.Value(w.src))); err != nil {
			return err
		}
	}
	return w.h.LeaveBlock(ast.KindCodeBlock)
}

func (w *goldmarkWalker) htmlBlock(n *gast.HTMLBlock) error {
	if err := w.h.EnterBlock(ast.KindRawHTMLBlock, nil); err != nil {
		return err
	}
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if err := w.h.Text(ast.KindHTMLText, w.raw(seg.Value(w.src))); err != nil {
			return err
		}
	}
	if n.HasClosure() {
		if err := w.h.Text(ast.KindHTMLText, w.raw(n.ClosureLine.Value(w.src))); err != nil {
			return err
		}
	}
	return w.h.LeaveBlock(ast.KindRawHTMLBlock)
}

// table synthesizes the head and body wrappers: goldmark hangs the
// header row and the body rows directly off the table node.
func (w *goldmarkWalker) table(n *east.Table, entering bool) (gast.WalkStatus, error) {
	if !entering {
		if w.bodyOpen {
			w.bodyOpen = false
			if err := w.h.LeaveBlock(ast.KindTableBody); err != nil {
				return gast.WalkStop, err
			}
		}
		return gast.WalkContinue, w.h.LeaveBlock(ast.KindTable)
	}
	d := &ast.Details{ColCount: len(n.Alignments)}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*east.TableHeader); ok {
			d.HeadRowCount++
		} else {
			d.BodyRowCount++
		}
	}
	return gast.WalkContinue, w.h.EnterBlock(ast.KindTable, d)
}

func (w *goldmarkWalker) tableHeader(n *east.TableHeader, entering bool) (gast.WalkStatus, error) {
	if entering {
		if err := w.h.EnterBlock(ast.KindTableHead, nil); err != nil {
			return gast.WalkStop, err
		}
		return gast.WalkContinue, w.h.EnterBlock(ast.KindTableRow, nil)
	}
	if err := w.h.LeaveBlock(ast.KindTableRow); err != nil {
		return gast.WalkStop, err
	}
	if err := w.h.LeaveBlock(ast.KindTableHead); err != nil {
		return gast.WalkStop, err
	}
	if n.NextSibling() != nil {
		w.bodyOpen = true
		return gast.WalkContinue, w.h.EnterBlock(ast.KindTableBody, nil)
	}
	return gast.WalkContinue, nil
}

func (w *goldmarkWalker) text(n *gast.Text) error {
	value := n.Segment.Value(w.src)
	if len(value) > 0 {
		if err := w.h.Text(ast.KindNormalText, w.raw(value)); err != nil {
			return err
		}
	}
	switch {
	case n.HardLineBreak():
		return w.h.Text(ast.KindLineBreak, w.raw([]byte("\n")))
	case n.SoftLineBreak():
		return w.h.Text(ast.KindSoftLineBreak, w.raw([]byte("\n")))
	}
	return nil
}

// segments concatenates a segment list into one text event.
func (w *goldmarkWalker) segments(kind ast.Kind, segs *text.Segments) error {
	var buf []byte
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		buf = append(buf, seg.Value(w.src)...)
	}
	return w.h.Text(kind, w.raw(buf))
}

// codeSpanValue joins the text children of a code span, flattening
// interior line endings to spaces the way the GFM spec prescribes.
func codeSpanValue(n *gast.CodeSpan, src []byte) []byte {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*gast.Text)
		if !ok {
			continue
		}
		value := t.Segment.Value(src)
		if t.SoftLineBreak() || t.HardLineBreak() {
			value = append(append([]byte{}, value...), ' ')
		}
		buf = append(buf, value...)
	}
	return buf
}

func goldmarkListDetails(n *gast.List) (ast.Kind, *ast.Details) {
	if n.IsOrdered() {
		return ast.KindOrderedList, &ast.Details{
			Start:         n.Start,
			IsTight:       n.IsTight,
			MarkDelimiter: n.Marker,
		}
	}
	return ast.KindUnorderedList, &ast.Details{IsTight: n.IsTight, Mark: n.Marker}
}

// listItemDetails folds a leading task checkbox into the item.
func listItemDetails(n *gast.ListItem) *ast.Details {
	fc := n.FirstChild()
	if fc == nil {
		return nil
	}
	cb, ok := fc.FirstChild().(*east.TaskCheckBox)
	if !ok {
		return nil
	}
	d := &ast.Details{IsTask: true, TaskMark: ' '}
	if cb.IsChecked {
		d.TaskMark = 'x'
	}
	return d
}

func goldmarkAlign(a east.Alignment) ast.Align {
	switch a {
	case east.AlignLeft:
		return ast.AlignLeft
	case east.AlignCenter:
		return ast.AlignCenter
	case east.AlignRight:
		return ast.AlignRight
	default:
		return ast.AlignDefault
	}
}
