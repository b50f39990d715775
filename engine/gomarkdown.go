package engine

import (
	"bytes"
	"fmt"

	mdast "github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	"github.com/rs/zerolog"

	"github.com/insomnimus/mdom/ast"
)

// gomarkdownExts is the extension set matching the event vocabulary:
// tables, fenced code, strikethrough, autolinks and LaTeX math.
const gomarkdownExts = parser.NoIntraEmphasis |
	parser.Tables |
	parser.FencedCode |
	parser.Autolink |
	parser.Strikethrough |
	parser.SpaceHeadings |
	parser.BackslashLineBreak |
	parser.MathJax

// Gomarkdown drives github.com/gomarkdown/markdown and replays its
// syntax tree as parse events.
type Gomarkdown struct {
	exts parser.Extensions
	log  zerolog.Logger
}

// GomarkdownOption configures a Gomarkdown engine.
type GomarkdownOption func(*Gomarkdown)

// GomarkdownWithLogger attaches a logger; the default discards everything.
func GomarkdownWithLogger(log zerolog.Logger) GomarkdownOption {
	return func(e *Gomarkdown) { e.log = log }
}

// NewGomarkdown returns a ready engine.
func NewGomarkdown(opts ...GomarkdownOption) *Gomarkdown {
	e := &Gomarkdown{exts: gomarkdownExts, log: zerolog.Nop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Parse implements Engine. A fresh parser is built per call because
// gomarkdown parsers are single-use.
func (e *Gomarkdown) Parse(doc ast.Raw, h Handler) error {
	p := parser.NewWithExtensions(e.exts)
	root := p.Parse(doc.Value())
	w := &gomarkdownWalker{mode: doc.Mode(), h: h, log: e.log}
	mdast.WalkFunc(root, w.visit)
	return w.err
}

type gomarkdownWalker struct {
	mode ast.Mode
	h    Handler
	log  zerolog.Logger
	err  error
}

func (w *gomarkdownWalker) visit(node mdast.Node, entering bool) mdast.WalkStatus {
	status, err := w.dispatch(node, entering)
	if err != nil {
		w.err = err
		return mdast.Terminate
	}
	return status
}

func (w *gomarkdownWalker) raw(b []byte) ast.Raw { return ast.RawIn(w.mode, b) }

func (w *gomarkdownWalker) dispatch(node mdast.Node, entering bool) (mdast.WalkStatus, error) {
	switch n := node.(type) {
	case *mdast.Document:
		return w.block(entering, ast.KindDocument, nil)

	case *mdast.BlockQuote:
		return w.block(entering, ast.KindQuote, nil)

	case *mdast.Heading:
		return w.block(entering, ast.KindHeading, &ast.Details{Level: n.Level})

	case *mdast.Paragraph:
		if inTightList(n) {
			return mdast.GoToNext, nil
		}
		return w.block(entering, ast.KindParagraph, nil)

	case *mdast.List:
		kind, d := listDetails(n.ListFlags, n.Tight, n.BulletChar, n.Delimiter, n.Start)
		return w.block(entering, kind, d)

	case *mdast.ListItem:
		// gomarkdown has no task list support, so items are plain.
		return w.block(entering, ast.KindListItem, nil)

	case *mdast.HorizontalRule:
		if err := w.h.EnterBlock(ast.KindHorizontalRule, nil); err != nil {
			return 0, err
		}
		return mdast.GoToNext, w.h.LeaveBlock(ast.KindHorizontalRule)

	case *mdast.CodeBlock:
		return mdast.GoToNext, w.codeBlock(n)

	case *mdast.HTMLBlock:
		return mdast.GoToNext, w.htmlBlock(n)

	case *mdast.Table:
		return w.table(n, entering)
	case *mdast.TableHeader:
		return w.block(entering, ast.KindTableHead, nil)
	case *mdast.TableBody:
		return w.block(entering, ast.KindTableBody, nil)
	case *mdast.TableRow:
		return w.block(entering, ast.KindTableRow, nil)
	case *mdast.TableCell:
		kind := ast.KindTableCell
		if n.IsHeader {
			kind = ast.KindTableHeaderCell
		}
		return w.block(entering, kind, &ast.Details{Align: cellAlign(n.Align)})

	case *mdast.Emph:
		return w.span(entering, ast.KindEmphasis, nil)
	case *mdast.Strong:
		return w.span(entering, ast.KindStrong, nil)
	case *mdast.Del:
		return w.span(entering, ast.KindStrikethrough, nil)

	case *mdast.Link:
		d := &ast.Details{Href: w.attrSpec(n.Destination)}
		if len(n.Title) > 0 {
			d.Title = w.attrSpec(n.Title)
		}
		return w.span(entering, ast.KindLink, d)

	case *mdast.Image:
		d := &ast.Details{Href: w.attrSpec(n.Destination)}
		if len(n.Title) > 0 {
			d.Title = w.attrSpec(n.Title)
		}
		return w.span(entering, ast.KindImage, d)

	case *mdast.Code:
		if err := w.h.EnterSpan(ast.KindCode, nil); err != nil {
			return 0, err
		}
		if err := w.h.Text(ast.KindCodeText, w.raw(n.Literal)); err != nil {
			return 0, err
		}
		return mdast.GoToNext, w.h.LeaveSpan(ast.KindCode)

	case *mdast.Math:
		return mdast.GoToNext, w.math(ast.KindInlineMath, n.Literal)
	case *mdast.MathBlock:
		if !entering {
			return mdast.GoToNext, nil
		}
		return mdast.SkipChildren, w.math(ast.KindDisplayMath, n.Literal)

	case *mdast.HTMLSpan:
		return mdast.GoToNext, w.h.Text(ast.KindHTMLText, w.raw(n.Literal))

	case *mdast.Text:
		return mdast.GoToNext, w.text(n.Literal)

	case *mdast.Hardbreak:
		return mdast.GoToNext, w.h.Text(ast.KindLineBreak, w.raw([]byte("\n")))
	case *mdast.Softbreak:
		return mdast.GoToNext, w.h.Text(ast.KindSoftLineBreak, w.raw([]byte("\n")))

	default:
		if entering {
			w.log.Debug().Str("node", fmt.Sprintf("%T", node)).Msg("gomarkdown: skipping unmapped node")
		}
		return mdast.GoToNext, nil
	}
}

func (w *gomarkdownWalker) block(entering bool, kind ast.Kind, d *ast.Details) (mdast.WalkStatus, error) {
	if entering {
		return mdast.GoToNext, w.h.EnterBlock(kind, d)
	}
	return mdast.GoToNext, w.h.LeaveBlock(kind)
}

func (w *gomarkdownWalker) span(entering bool, kind ast.Kind, d *ast.Details) (mdast.WalkStatus, error) {
	if entering {
		return mdast.GoToNext, w.h.EnterSpan(kind, d)
	}
	return mdast.GoToNext, w.h.LeaveSpan(kind)
}

func (w *gomarkdownWalker) codeBlock(n *mdast.CodeBlock) error {
	d := &ast.Details{}
	if n.IsFenced {
		d.FenceChar = '`'
		if len(n.Info) > 0 {
			d.Info = ast.Part(ast.KindNormalText, w.raw(n.Info))
			lang := n.Info
			if i := bytes.IndexAny(lang, "\t "); i >= 0 {
				lang = lang[:i]
			}
			d.Lang = ast.Part(ast.KindNormalText, w.raw(lang))
		}
	}
	if err := w.h.EnterBlock(ast.KindCodeBlock, d); err != nil {
		return err
	}
	if err := w.h.Text(ast.KindCodeText, w.raw(n.Literal)); err != nil {
		return err
	}
	return w.h.LeaveBlock(ast.KindCodeBlock)
}

func (w *gomarkdownWalker) htmlBlock(n *mdast.HTMLBlock) error {
	if err := w.h.EnterBlock(ast.KindRawHTMLBlock, nil); err != nil {
		return err
	}
	lit := n.Literal
	if len(lit) == 0 || lit[len(lit)-1] != '\n' {
		lit = append(append([]byte{}, lit...), '\n')
	}
	if err := w.h.Text(ast.KindHTMLText, w.raw(lit)); err != nil {
		return err
	}
	return w.h.LeaveBlock(ast.KindRawHTMLBlock)
}

func (w *gomarkdownWalker) table(n *mdast.Table, entering bool) (mdast.WalkStatus, error) {
	if !entering {
		return mdast.GoToNext, w.h.LeaveBlock(ast.KindTable)
	}
	d := &ast.Details{}
	for _, child := range n.GetChildren() {
		switch part := child.(type) {
		case *mdast.TableHeader:
			d.HeadRowCount = len(part.GetChildren())
			if d.HeadRowCount > 0 {
				d.ColCount = len(part.GetChildren()[0].GetChildren())
			}
		case *mdast.TableBody:
			d.BodyRowCount = len(part.GetChildren())
		}
	}
	return mdast.GoToNext, w.h.EnterBlock(ast.KindTable, d)
}

func (w *gomarkdownWalker) math(kind ast.Kind, literal []byte) error {
	if err := w.h.EnterSpan(kind, nil); err != nil {
		return err
	}
	if err := w.h.Text(ast.KindMathText, w.raw(literal)); err != nil {
		return err
	}
	return w.h.LeaveSpan(kind)
}

// text splits a literal on newlines, emitting soft break events
// between the lines the way the event vocabulary expects.
func (w *gomarkdownWalker) text(literal []byte) error {
	lines := bytes.Split(literal, []byte("\n"))
	for i, line := range lines {
		if i > 0 {
			if err := w.h.Text(ast.KindSoftLineBreak, w.raw([]byte("\n"))); err != nil {
				return err
			}
		}
		if len(line) == 0 {
			continue
		}
		if err := w.h.Text(ast.KindNormalText, w.raw(line)); err != nil {
			return err
		}
	}
	return nil
}

func (w *gomarkdownWalker) attrSpec(b []byte) ast.AttributeSpec {
	return ast.Part(ast.KindNormalText, w.raw(b))
}

// inTightList reports whether a paragraph sits directly in a tight
// list item; those render without p tags.
func inTightList(para *mdast.Paragraph) bool {
	item := para.GetParent()
	if _, ok := item.(*mdast.ListItem); !ok {
		return false
	}
	list, ok := item.GetParent().(*mdast.List)
	return ok && list.Tight
}

func listDetails(flags mdast.ListType, tight bool, bullet, delim byte, start int) (ast.Kind, *ast.Details) {
	if flags&mdast.ListTypeOrdered != 0 {
		if start == 0 {
			start = 1
		}
		if delim == 0 {
			delim = '.'
		}
		return ast.KindOrderedList, &ast.Details{Start: start, IsTight: tight, MarkDelimiter: delim}
	}
	if bullet == 0 {
		bullet = '-'
	}
	return ast.KindUnorderedList, &ast.Details{IsTight: tight, Mark: bullet}
}

func cellAlign(a mdast.CellAlignFlags) ast.Align {
	switch a {
	case mdast.TableAlignmentCenter:
		return ast.AlignCenter
	case mdast.TableAlignmentLeft:
		return ast.AlignLeft
	case mdast.TableAlignmentRight:
		return ast.AlignRight
	default:
		return ast.AlignDefault
	}
}

