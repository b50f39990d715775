// Package engine adapts real Markdown parsers to the five-callback
// event contract the tree builder and the streaming renderer consume.
//
// The parsing itself is foreign work: an Engine's job is only to walk
// the foreign syntax tree and replay it, synchronously and in document
// order, as enter/leave/text events with the fixed per-kind details
// vocabulary.
package engine

import "github.com/insomnimus/mdom/ast"

// Handler receives the parse events. dom.Builder and render.HTML both
// satisfy it.
type Handler interface {
	EnterBlock(kind ast.Kind, d *ast.Details) error
	LeaveBlock(kind ast.Kind) error
	EnterSpan(kind ast.Kind, d *ast.Details) error
	LeaveSpan(kind ast.Kind) error
	Text(kind ast.Kind, text ast.Raw) error
}

// Engine parses one document and replays it into h. The payload mode
// of every emitted text and attribute fragment matches doc's mode.
// One call is one unbroken synchronous event sequence.
type Engine interface {
	Parse(doc ast.Raw, h Handler) error
}
