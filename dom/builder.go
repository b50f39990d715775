// Package dom builds a document tree from the parse engine's event
// stream: enter/leave block, enter/leave span, text, in strict
// document order.
package dom

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/insomnimus/mdom/ast"
)

var (
	// ErrUnbalanced means leave events did not match enter events: a
	// leave with nothing open, a Finish with nodes still open, or (in
	// strict mode) a leave naming the wrong kind.
	ErrUnbalanced = errors.New("dom: unbalanced event stream")
	// ErrNoDocument means Finish was called before any event arrived.
	ErrNoDocument = errors.New("dom: no document built")
)

// Builder consumes parse events and grows the tree. One builder serves
// one parse at a time: it is reusable after Finish or Reset but has no
// internal locking.
type Builder struct {
	mode     ast.Mode
	root     ast.Node
	stack    []ast.Node
	strict   bool
	log      zerolog.Logger
	warnings []*Warning
}

// Option configures a Builder.
type Option func(*Builder)

// StrictNesting makes leave events fail when their kind does not match
// the node being closed, instead of recording a warning and trusting
// the engine.
func StrictNesting() Option {
	return func(b *Builder) { b.strict = true }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// New returns a builder for trees in the given mode.
func New(mode ast.Mode, opts ...Option) *Builder {
	b := &Builder{mode: mode, log: zerolog.Nop()}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Mode returns the encoding the builder constructs nodes in.
func (b *Builder) Mode() ast.Mode { return b.mode }

// EnterBlock opens a block. The first block of a document becomes the
// root.
func (b *Builder) EnterBlock(kind ast.Kind, d *ast.Details) error {
	if !kind.IsBlock() {
		return fmt.Errorf("dom: enter_block with %s", kind)
	}
	return b.enter(kind, d)
}

// LeaveBlock closes the innermost open node.
func (b *Builder) LeaveBlock(kind ast.Kind) error { return b.leave(kind) }

// EnterSpan opens a span inside the currently open block or span.
func (b *Builder) EnterSpan(kind ast.Kind, d *ast.Details) error {
	if !kind.IsSpan() {
		return fmt.Errorf("dom: enter_span with %s", kind)
	}
	if len(b.stack) == 0 {
		return fmt.Errorf("dom: span %s outside any block: %w", kind, ErrUnbalanced)
	}
	return b.enter(kind, d)
}

// LeaveSpan closes the innermost open node.
func (b *Builder) LeaveSpan(kind ast.Kind) error { return b.leave(kind) }

// Text appends a text leaf to the currently open node.
func (b *Builder) Text(kind ast.Kind, text ast.Raw) error {
	if !kind.IsText() {
		return fmt.Errorf("dom: text event with %s", kind)
	}
	if len(b.stack) == 0 {
		return fmt.Errorf("dom: text outside any block: %w", ErrUnbalanced)
	}
	n, err := ast.New(kind, &ast.Details{Text: text}, b.mode)
	if err != nil {
		return err
	}
	return b.appendToCurrent(n)
}

func (b *Builder) enter(kind ast.Kind, d *ast.Details) error {
	n, err := ast.New(kind, d, b.mode)
	if err != nil {
		return err
	}
	if b.root == nil {
		b.root = n
	} else {
		if len(b.stack) == 0 {
			return fmt.Errorf("dom: enter %s after the document closed: %w", kind, ErrUnbalanced)
		}
		if err := b.appendToCurrent(n); err != nil {
			return err
		}
	}
	b.stack = append(b.stack, n)
	b.log.Debug().Stringer("kind", kind).Int("depth", len(b.stack)).Msg("enter")
	return nil
}

func (b *Builder) leave(kind ast.Kind) error {
	if len(b.stack) == 0 {
		return fmt.Errorf("dom: leave %s with nothing open: %w", kind, ErrUnbalanced)
	}
	top := b.stack[len(b.stack)-1]
	if top.Kind() != kind {
		if b.strict {
			return fmt.Errorf("dom: leave %s but %s is open: %w", kind, top.Kind(), ErrUnbalanced)
		}
		b.warn("leave %s closes %s", kind, top.Kind())
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

func (b *Builder) appendToCurrent(n ast.Node) error {
	top := b.stack[len(b.stack)-1]
	c, ok := top.(ast.Container)
	if !ok {
		return fmt.Errorf("dom: append %s to %s: %w", n.Kind(), top.Kind(), ast.ErrLeafChildren)
	}
	return c.Append(n)
}

// Finish returns the completed tree. It fails unless every entered
// node has been left. The builder is reset for the next document.
func (b *Builder) Finish() (ast.Node, error) {
	if b.root == nil {
		return nil, ErrNoDocument
	}
	if len(b.stack) != 0 {
		open := b.stack[len(b.stack)-1].Kind()
		b.root, b.stack = nil, nil
		return nil, fmt.Errorf("dom: %s still open at end of document: %w", open, ErrUnbalanced)
	}
	root := b.root
	b.root, b.stack = nil, nil
	return root, nil
}

// Reset discards any partially built tree and recorded warnings.
// Finish resets the tree state itself but keeps the warnings around
// so callers can inspect them afterwards.
func (b *Builder) Reset() {
	b.root = nil
	b.stack = nil
	b.warnings = nil
}
