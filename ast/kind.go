package ast

// Kind identifies the Markdown element a node represents.
// The set is closed: it mirrors the block, span and text vocabulary
// of the parse engine event stream.
type Kind uint8

const (
	kindInvalid Kind = iota

	// blocks
	KindDocument
	KindQuote
	KindUnorderedList
	KindOrderedList
	KindListItem
	KindHorizontalRule
	KindHeading
	KindCodeBlock
	KindRawHTMLBlock
	KindParagraph
	KindTable
	KindTableHead
	KindTableBody
	KindTableRow
	KindTableHeaderCell
	KindTableCell

	// spans
	KindEmphasis
	KindStrong
	KindUnderline
	KindLink
	KindImage
	KindCode
	KindStrikethrough
	KindInlineMath
	KindDisplayMath
	KindWikiLink

	// text
	KindNormalText
	KindNullChar
	KindLineBreak
	KindSoftLineBreak
	KindHTMLEntity
	KindCodeText
	KindHTMLText
	KindMathText

	kindMax
)

func (k Kind) IsBlock() bool { return k >= KindDocument && k <= KindTableCell }
func (k Kind) IsSpan() bool  { return k >= KindEmphasis && k <= KindWikiLink }
func (k Kind) IsText() bool  { return k >= KindNormalText && k <= KindMathText }

var kindNames = [...]string{
	kindInvalid:         "invalid",
	KindDocument:        "document",
	KindQuote:           "quote",
	KindUnorderedList:   "unordered_list",
	KindOrderedList:     "ordered_list",
	KindListItem:        "list_item",
	KindHorizontalRule:  "horizontal_rule",
	KindHeading:         "heading",
	KindCodeBlock:       "code_block",
	KindRawHTMLBlock:    "raw_html_block",
	KindParagraph:       "paragraph",
	KindTable:           "table",
	KindTableHead:       "table_head",
	KindTableBody:       "table_body",
	KindTableRow:        "table_row",
	KindTableHeaderCell: "table_header_cell",
	KindTableCell:       "table_cell",
	KindEmphasis:        "emphasis",
	KindStrong:          "strong",
	KindUnderline:       "underline",
	KindLink:            "link",
	KindImage:           "image",
	KindCode:            "code",
	KindStrikethrough:   "strikethrough",
	KindInlineMath:      "inline_math",
	KindDisplayMath:     "display_math",
	KindWikiLink:        "wikilink",
	KindNormalText:      "normal_text",
	KindNullChar:        "null_char",
	KindLineBreak:       "line_break",
	KindSoftLineBreak:   "soft_line_break",
	KindHTMLEntity:      "html_entity",
	KindCodeText:        "code_text",
	KindHTMLText:        "html_text",
	KindMathText:        "math_text",
}

func (k Kind) String() string {
	if k >= kindMax {
		return "invalid"
	}
	return kindNames[k]
}

// Mode is the encoding of a tree: string or bytes.
// Every node in a tree shares one mode, fixed when the tree is created.
type Mode uint8

const (
	ModeString Mode = iota
	ModeBytes
)

func (m Mode) String() string {
	if m == ModeBytes {
		return "bytes"
	}
	return "string"
}

// Align is the column alignment of a table cell.
type Align uint8

const (
	AlignDefault Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "default"
	}
}
