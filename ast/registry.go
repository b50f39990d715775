package ast

import "fmt"

// Factory builds the concrete node for one kind. Details may be nil
// for kinds that take none.
type Factory func(d *Details, mode Mode) (Node, error)

// registry maps each kind to its factory. It is written during
// initialization (package init or program setup before any tree is
// built) and read-only afterwards; it is not synchronized.
var registry = map[Kind]Factory{}

// Register installs the factory for a kind, replacing any previous
// one. Registering a different implementation under an existing tag is
// the supported way to substitute the behavior of a single kind.
func Register(kind Kind, f Factory) {
	registry[kind] = f
}

// New constructs the node registered for kind.
func New(kind Kind, d *Details, mode Mode) (Node, error) {
	f, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownKind)
	}
	if d == nil {
		d = &Details{}
	}
	return f(d, mode)
}

func init() {
	// blocks
	Register(KindDocument, func(d *Details, m Mode) (Node, error) { return NewDocument(m), nil })
	Register(KindQuote, func(d *Details, m Mode) (Node, error) { return NewQuote(m), nil })
	Register(KindUnorderedList, func(d *Details, m Mode) (Node, error) {
		return NewUnorderedList(m, d.IsTight, d.Mark), nil
	})
	Register(KindOrderedList, func(d *Details, m Mode) (Node, error) {
		return NewOrderedList(m, d.Start, d.IsTight, d.MarkDelimiter), nil
	})
	Register(KindListItem, func(d *Details, m Mode) (Node, error) {
		return NewListItem(m, d.IsTask, d.TaskMark, d.TaskMarkOffset), nil
	})
	Register(KindHorizontalRule, func(d *Details, m Mode) (Node, error) { return NewHorizontalRule(m), nil })
	Register(KindHeading, func(d *Details, m Mode) (Node, error) { return NewHeading(m, d.Level) })
	Register(KindCodeBlock, func(d *Details, m Mode) (Node, error) {
		return NewCodeBlock(m, d.FenceChar, d.Info, d.Lang)
	})
	Register(KindRawHTMLBlock, func(d *Details, m Mode) (Node, error) { return NewRawHTMLBlock(m), nil })
	Register(KindParagraph, func(d *Details, m Mode) (Node, error) { return NewParagraph(m), nil })
	Register(KindTable, func(d *Details, m Mode) (Node, error) {
		return NewTable(m, d.ColCount, d.HeadRowCount, d.BodyRowCount), nil
	})
	Register(KindTableHead, func(d *Details, m Mode) (Node, error) { return NewTableHead(m), nil })
	Register(KindTableBody, func(d *Details, m Mode) (Node, error) { return NewTableBody(m), nil })
	Register(KindTableRow, func(d *Details, m Mode) (Node, error) { return NewTableRow(m), nil })
	Register(KindTableHeaderCell, func(d *Details, m Mode) (Node, error) {
		return NewTableHeaderCell(m, d.Align), nil
	})
	Register(KindTableCell, func(d *Details, m Mode) (Node, error) { return NewTableCell(m, d.Align), nil })

	// spans
	Register(KindEmphasis, func(d *Details, m Mode) (Node, error) { return NewEmphasis(m), nil })
	Register(KindStrong, func(d *Details, m Mode) (Node, error) { return NewStrong(m), nil })
	Register(KindUnderline, func(d *Details, m Mode) (Node, error) { return NewUnderline(m), nil })
	Register(KindLink, func(d *Details, m Mode) (Node, error) { return NewLink(m, d.Href, d.Title) })
	Register(KindImage, func(d *Details, m Mode) (Node, error) { return NewImage(m, d.Href, d.Title) })
	Register(KindCode, func(d *Details, m Mode) (Node, error) { return NewCodeSpan(m), nil })
	Register(KindStrikethrough, func(d *Details, m Mode) (Node, error) { return NewStrikethrough(m), nil })
	Register(KindInlineMath, func(d *Details, m Mode) (Node, error) { return NewInlineMath(m), nil })
	Register(KindDisplayMath, func(d *Details, m Mode) (Node, error) { return NewDisplayMath(m), nil })
	Register(KindWikiLink, func(d *Details, m Mode) (Node, error) { return NewWikiLink(m, d.Target) })

	// text
	Register(KindNormalText, textFactory(KindNormalText))
	Register(KindNullChar, textFactory(KindNullChar))
	Register(KindLineBreak, textFactory(KindLineBreak))
	Register(KindSoftLineBreak, textFactory(KindSoftLineBreak))
	Register(KindHTMLEntity, textFactory(KindHTMLEntity))
	Register(KindCodeText, textFactory(KindCodeText))
	Register(KindHTMLText, textFactory(KindHTMLText))
	Register(KindMathText, textFactory(KindMathText))
}
