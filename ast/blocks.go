package ast

import (
	"fmt"
	"strconv"
)

// Document is the root block. It emits no markup of its own.
type Document struct{ container }

func NewDocument(mode Mode) *Document {
	n := &Document{container{base: base{kind: KindDocument, mode: mode}}}
	n.self = n
	return n
}

// Quote is a block quote.
type Quote struct{ container }

func NewQuote(mode Mode) *Quote {
	n := &Quote{container{base: base{kind: KindQuote, mode: mode}}}
	n.self = n
	return n
}

func (n *Quote) Open(w *Writer, ctx Context)  { w.Literal("<blockquote>\n") }
func (n *Quote) Close(w *Writer, ctx Context) { w.Literal("</blockquote>\n") }

// UnorderedList is a bullet list.
type UnorderedList struct {
	container
	IsTight bool
	Mark    byte
}

func NewUnorderedList(mode Mode, isTight bool, mark byte) *UnorderedList {
	n := &UnorderedList{
		container: container{base: base{kind: KindUnorderedList, mode: mode}},
		IsTight:   isTight,
		Mark:      mark,
	}
	n.self = n
	return n
}

func (n *UnorderedList) Open(w *Writer, ctx Context)  { w.Literal("<ul>\n") }
func (n *UnorderedList) Close(w *Writer, ctx Context) { w.Literal("</ul>\n") }

// OrderedList is a numbered list. The start attribute is emitted only
// when the list does not start at 1.
type OrderedList struct {
	container
	Start         int
	IsTight       bool
	MarkDelimiter byte
}

func NewOrderedList(mode Mode, start int, isTight bool, markDelimiter byte) *OrderedList {
	n := &OrderedList{
		container:     container{base: base{kind: KindOrderedList, mode: mode}},
		Start:         start,
		IsTight:       isTight,
		MarkDelimiter: markDelimiter,
	}
	n.self = n
	return n
}

func (n *OrderedList) Open(w *Writer, ctx Context) {
	if n.Start == 1 {
		w.Literal("<ol>\n")
	} else {
		w.Literal(`<ol start="` + strconv.Itoa(n.Start) + "\">\n")
	}
}

func (n *OrderedList) Close(w *Writer, ctx Context) { w.Literal("</ol>\n") }

// ListItem is one item of either list kind. Task items render a
// checkbox, checked when the task mark is x or X.
type ListItem struct {
	container
	IsTask         bool
	TaskMark       byte
	TaskMarkOffset int
}

func NewListItem(mode Mode, isTask bool, taskMark byte, taskMarkOffset int) *ListItem {
	n := &ListItem{
		container:      container{base: base{kind: KindListItem, mode: mode}},
		IsTask:         isTask,
		TaskMark:       taskMark,
		TaskMarkOffset: taskMarkOffset,
	}
	n.self = n
	return n
}

func (n *ListItem) Open(w *Writer, ctx Context) {
	switch {
	case !n.IsTask:
		w.Literal("<li>")
	case n.TaskMark == 'x' || n.TaskMark == 'X':
		w.Literal(`<li class="task-list-item"><input type="checkbox" class="task-list-item-checkbox" disabled checked>`)
	default:
		w.Literal(`<li class="task-list-item"><input type="checkbox" class="task-list-item-checkbox" disabled>`)
	}
}

func (n *ListItem) Close(w *Writer, ctx Context) { w.Literal("</li>\n") }

// HorizontalRule is the only block leaf.
type HorizontalRule struct{ base }

func NewHorizontalRule(mode Mode) *HorizontalRule {
	return &HorizontalRule{base{kind: KindHorizontalRule, mode: mode}}
}

func (n *HorizontalRule) Render(w *Writer, ctx Context) { w.Literal("<hr>\n") }

// Heading is an ATX or setext heading, level 1 through 6.
type Heading struct {
	container
	Level int
}

func NewHeading(mode Mode, level int) (*Heading, error) {
	if level < 1 || level > 6 {
		return nil, fmt.Errorf("heading level %d: %w", level, ErrBadDetails)
	}
	n := &Heading{
		container: container{base: base{kind: KindHeading, mode: mode}},
		Level:     level,
	}
	n.self = n
	return n, nil
}

func (n *Heading) Open(w *Writer, ctx Context) {
	w.Literal("<h" + strconv.Itoa(n.Level) + ">")
}

func (n *Heading) Close(w *Writer, ctx Context) {
	w.Literal("</h" + strconv.Itoa(n.Level) + ">\n")
}

// CodeBlock is a fenced or indented code block. A nil lang renders no
// class attribute at all; an empty-but-present one renders
// class="language-".
type CodeBlock struct {
	container
	FenceChar byte
	Info      Attribute
	Lang      Attribute
}

func NewCodeBlock(mode Mode, fenceChar byte, info, lang AttributeSpec) (*CodeBlock, error) {
	infoAttr, err := makeAttribute(info, mode)
	if err != nil {
		return nil, err
	}
	langAttr, err := makeAttribute(lang, mode)
	if err != nil {
		return nil, err
	}
	n := &CodeBlock{
		container: container{base: base{kind: KindCodeBlock, mode: mode}},
		FenceChar: fenceChar,
		Info:      infoAttr,
		Lang:      langAttr,
	}
	n.self = n
	return n, nil
}

func (n *CodeBlock) Open(w *Writer, ctx Context) {
	if n.Lang == nil {
		w.Literal("<pre><code>")
		return
	}
	w.Literal(`<pre><code class="language-`)
	n.Lang.render(w, ctx)
	w.Literal(`">`)
}

func (n *CodeBlock) Close(w *Writer, ctx Context) { w.Literal("</code></pre>\n") }

// RawHTMLBlock wraps verbatim HTML text nodes. No markup of its own.
type RawHTMLBlock struct{ container }

func NewRawHTMLBlock(mode Mode) *RawHTMLBlock {
	n := &RawHTMLBlock{container{base: base{kind: KindRawHTMLBlock, mode: mode}}}
	n.self = n
	return n
}

// Paragraph is a plain paragraph.
type Paragraph struct{ container }

func NewParagraph(mode Mode) *Paragraph {
	n := &Paragraph{container{base: base{kind: KindParagraph, mode: mode}}}
	n.self = n
	return n
}

func (n *Paragraph) Open(w *Writer, ctx Context)  { w.Literal("<p>") }
func (n *Paragraph) Close(w *Writer, ctx Context) { w.Literal("</p>\n") }

// Table is a GFM table.
type Table struct {
	container
	ColCount     int
	HeadRowCount int
	BodyRowCount int
}

func NewTable(mode Mode, colCount, headRowCount, bodyRowCount int) *Table {
	n := &Table{
		container:    container{base: base{kind: KindTable, mode: mode}},
		ColCount:     colCount,
		HeadRowCount: headRowCount,
		BodyRowCount: bodyRowCount,
	}
	n.self = n
	return n
}

func (n *Table) Open(w *Writer, ctx Context)  { w.Literal("<table>\n") }
func (n *Table) Close(w *Writer, ctx Context) { w.Literal("</table>\n") }

// TableHead wraps the header rows of a table.
type TableHead struct{ container }

func NewTableHead(mode Mode) *TableHead {
	n := &TableHead{container{base: base{kind: KindTableHead, mode: mode}}}
	n.self = n
	return n
}

func (n *TableHead) Open(w *Writer, ctx Context)  { w.Literal("<thead>\n") }
func (n *TableHead) Close(w *Writer, ctx Context) { w.Literal("</thead>\n") }

// TableBody wraps the body rows of a table.
type TableBody struct{ container }

func NewTableBody(mode Mode) *TableBody {
	n := &TableBody{container{base: base{kind: KindTableBody, mode: mode}}}
	n.self = n
	return n
}

func (n *TableBody) Open(w *Writer, ctx Context)  { w.Literal("<tbody>\n") }
func (n *TableBody) Close(w *Writer, ctx Context) { w.Literal("</tbody>\n") }

// TableRow is one row in the head or body.
type TableRow struct{ container }

func NewTableRow(mode Mode) *TableRow {
	n := &TableRow{container{base: base{kind: KindTableRow, mode: mode}}}
	n.self = n
	return n
}

func (n *TableRow) Open(w *Writer, ctx Context)  { w.Literal("<tr>\n") }
func (n *TableRow) Close(w *Writer, ctx Context) { w.Literal("</tr>\n") }

// TableHeaderCell is a th cell with optional alignment.
type TableHeaderCell struct {
	container
	Align Align
}

func NewTableHeaderCell(mode Mode, align Align) *TableHeaderCell {
	n := &TableHeaderCell{
		container: container{base: base{kind: KindTableHeaderCell, mode: mode}},
		Align:     align,
	}
	n.self = n
	return n
}

func (n *TableHeaderCell) Open(w *Writer, ctx Context)  { openCell(w, "th", n.Align) }
func (n *TableHeaderCell) Close(w *Writer, ctx Context) { w.Literal("</th>\n") }

// TableCell is a td cell with optional alignment.
type TableCell struct {
	container
	Align Align
}

func NewTableCell(mode Mode, align Align) *TableCell {
	n := &TableCell{
		container: container{base: base{kind: KindTableCell, mode: mode}},
		Align:     align,
	}
	n.self = n
	return n
}

func (n *TableCell) Open(w *Writer, ctx Context)  { openCell(w, "td", n.Align) }
func (n *TableCell) Close(w *Writer, ctx Context) { w.Literal("</td>\n") }

func openCell(w *Writer, tag string, align Align) {
	switch align {
	case AlignLeft:
		w.Literal("<" + tag + ` align="left">`)
	case AlignCenter:
		w.Literal("<" + tag + ` align="center">`)
	case AlignRight:
		w.Literal("<" + tag + ` align="right">`)
	default:
		w.Literal("<" + tag + ">")
	}
}
