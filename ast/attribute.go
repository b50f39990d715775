package ast

import "fmt"

// AttributePart is one fragment of a rich-text attribute as the parse
// engine delivers it: a text kind plus the raw text.
type AttributePart struct {
	Kind Kind
	Text Raw
}

// AttributeSpec is the flat form of a rich-text attribute value. A nil
// spec means the attribute is absent; a non-nil empty spec means it is
// present and empty. The two render differently, so the distinction is
// kept all the way through.
type AttributeSpec []AttributePart

// Part is a convenience for building one-fragment specs.
func Part(kind Kind, text Raw) AttributeSpec {
	return AttributeSpec{{Kind: kind, Text: text}}
}

// Attribute is the tree form of a rich-text attribute: a detached
// sequence of text nodes with no parent. Nil means absent.
type Attribute []Node

// makeAttribute converts a spec into real text nodes in the given mode.
func makeAttribute(spec AttributeSpec, mode Mode) (Attribute, error) {
	if spec == nil {
		return nil, nil
	}
	attr := make(Attribute, 0, len(spec))
	for _, p := range spec {
		if !p.Kind.IsText() {
			return nil, fmt.Errorf("attribute fragment of kind %s: %w", p.Kind, ErrBadDetails)
		}
		n, err := New(p.Kind, &Details{Text: p.Text}, mode)
		if err != nil {
			return nil, err
		}
		attr = append(attr, n)
	}
	return attr, nil
}

// render writes the attribute's fragments, or nothing when absent.
func (a Attribute) render(w *Writer, ctx Context) {
	for _, n := range a {
		Render(w, n, ctx)
	}
}

// RenderHTML renders the attribute on its own, mainly for callers
// inspecting link targets or code block languages.
func (a Attribute) RenderHTML(urlEscape bool) string {
	w := NewWriter(ModeString)
	a.render(w, Context{URLEscape: urlEscape})
	return w.String()
}

// Details carries the per-kind construction attributes the parse
// engine supplies. Each kind reads only its own fields; the factory
// for a kind rejects payloads of the wrong shape. Zero values stand
// for absent scalars, nil specs for absent attributes.
type Details struct {
	// Heading
	Level int

	// UnorderedList, OrderedList
	IsTight       bool
	Mark          byte // bullet character
	Start         int  // ordered list start index
	MarkDelimiter byte // ordered list number delimiter

	// ListItem
	IsTask         bool
	TaskMark       byte // 'x', 'X' or ' '
	TaskMarkOffset int

	// CodeBlock
	FenceChar byte // 0 for indented code blocks
	Info      AttributeSpec
	Lang      AttributeSpec

	// Table
	ColCount     int
	HeadRowCount int
	BodyRowCount int

	// TableHeaderCell, TableCell
	Align Align

	// Link, Image
	Href  AttributeSpec // src for images
	Title AttributeSpec

	// WikiLink
	Target AttributeSpec

	// Text kinds
	Text Raw
}
