// Package render turns parse events straight into HTML, without
// building a tree first. The output is byte for byte what rendering
// the equivalent tree produces: both paths draw their markup from the
// same node types.
package render

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/insomnimus/mdom/ast"
)

var (
	// ErrUnbalanced means a leave event arrived with nothing open, or
	// (in strict mode) named a kind other than the open node.
	ErrUnbalanced = errors.New("render: unbalanced event stream")
)

// HTML is a streaming renderer. It implements the parse event handler
// contract: feed it events and take the markup out with Result or
// ResultBytes. One renderer serves one parse at a time.
type HTML struct {
	mode    ast.Mode
	w       *ast.Writer
	stack   []ast.Node
	nesting int
	strict  bool
	log     zerolog.Logger
}

// Option configures an HTML renderer.
type Option func(*HTML)

// StrictNesting makes leave events fail when their kind does not match
// the node being closed, instead of logging and trusting the engine.
func StrictNesting() Option {
	return func(r *HTML) { r.strict = true }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(r *HTML) { r.log = log }
}

// NewHTML returns a renderer emitting output in the given mode.
func NewHTML(mode ast.Mode, opts ...Option) *HTML {
	r := &HTML{mode: mode, w: ast.NewWriter(mode), log: zerolog.Nop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Mode returns the encoding the renderer was created with.
func (r *HTML) Mode() ast.Mode { return r.mode }

func (r *HTML) ctx() ast.Context {
	return ast.Context{ImageNestingLevel: r.nesting}
}

// EnterBlock opens a block element.
func (r *HTML) EnterBlock(kind ast.Kind, d *ast.Details) error {
	if !kind.IsBlock() {
		return fmt.Errorf("render: enter block with non-block kind %s", kind)
	}
	return r.enter(kind, d)
}

// LeaveBlock closes the innermost open element.
func (r *HTML) LeaveBlock(kind ast.Kind) error { return r.leave(kind) }

// EnterSpan opens an inline element.
func (r *HTML) EnterSpan(kind ast.Kind, d *ast.Details) error {
	if !kind.IsSpan() {
		return fmt.Errorf("render: enter span with non-span kind %s", kind)
	}
	return r.enter(kind, d)
}

// LeaveSpan closes the innermost open element.
func (r *HTML) LeaveSpan(kind ast.Kind) error { return r.leave(kind) }

// Text renders a text fragment in place.
func (r *HTML) Text(kind ast.Kind, text ast.Raw) error {
	if !kind.IsText() {
		return fmt.Errorf("render: text event with non-text kind %s", kind)
	}
	n, err := ast.New(kind, &ast.Details{Text: text}, r.mode)
	if err != nil {
		return err
	}
	n.(ast.Leaf).Render(r.w, r.ctx())
	return nil
}

func (r *HTML) enter(kind ast.Kind, d *ast.Details) error {
	n, err := ast.New(kind, d, r.mode)
	if err != nil {
		return err
	}
	if kind == ast.KindImage {
		r.nesting++
	}
	switch el := n.(type) {
	case ast.Container:
		el.Open(r.w, r.ctx())
	case ast.Leaf:
		// Childless elements, like the horizontal rule, arrive as an
		// enter/leave pair but render whole.
		el.Render(r.w, r.ctx())
	}
	r.stack = append(r.stack, n)
	return nil
}

func (r *HTML) leave(kind ast.Kind) error {
	if len(r.stack) == 0 {
		return fmt.Errorf("%w: leave %s with nothing open", ErrUnbalanced, kind)
	}
	n := r.stack[len(r.stack)-1]
	if n.Kind() != kind {
		if r.strict {
			return fmt.Errorf("%w: leave %s while %s is open", ErrUnbalanced, kind, n.Kind())
		}
		r.log.Warn().
			Stringer("got", kind).
			Stringer("open", n.Kind()).
			Msg("leave event does not match the open element")
	}
	r.stack = r.stack[:len(r.stack)-1]
	if c, ok := n.(ast.Container); ok {
		c.Close(r.w, r.ctx())
	}
	if n.Kind() == ast.KindImage {
		r.nesting--
	}
	return nil
}

// Result returns the markup rendered so far. It errors when elements
// are still open or when the renderer is in bytes mode.
func (r *HTML) Result() (string, error) {
	if err := r.finish(); err != nil {
		return "", err
	}
	if r.mode != ast.ModeString {
		return "", ast.ErrModeMismatch
	}
	return r.w.String(), nil
}

// ResultBytes is Result for renderers in bytes mode.
func (r *HTML) ResultBytes() ([]byte, error) {
	if err := r.finish(); err != nil {
		return nil, err
	}
	if r.mode != ast.ModeBytes {
		return nil, ast.ErrModeMismatch
	}
	return r.w.Bytes(), nil
}

func (r *HTML) finish() error {
	if len(r.stack) != 0 {
		return fmt.Errorf("%w: %d elements still open", ErrUnbalanced, len(r.stack))
	}
	return nil
}

// Reset clears the output and the open element stack so the renderer
// can serve another parse.
func (r *HTML) Reset() {
	r.w.Reset()
	r.stack = r.stack[:0]
	r.nesting = 0
}
