package ast

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind means no factory is registered for the requested kind.
	ErrUnknownKind = errors.New("ast: unknown node kind")
	// ErrModeMismatch means a node's encoding disagrees with its new parent
	// or with the payload it is being constructed from.
	ErrModeMismatch = errors.New("ast: encoding mode mismatch")
	// ErrLeafChildren means a child was appended to a kind that cannot have any.
	ErrLeafChildren = errors.New("ast: node kind cannot have children")
	// ErrBadDetails means the details for a kind had the wrong shape.
	ErrBadDetails = errors.New("ast: malformed details for node kind")
)

// Node is a single element of the document tree.
type Node interface {
	Kind() Kind
	Mode() Mode
	// Parent returns the enclosing node, or nil for the root and for
	// detached attribute fragments. The reference is non-owning.
	Parent() Node
	// SetParent is called by the container an Append or Insert moves
	// the node into. Callers building trees by hand rarely need it.
	SetParent(Node)
}

// Container is a node that owns an ordered sequence of children and
// renders as open ++ children ++ close.
type Container interface {
	Node
	Children() []Node
	// Append adds child at the end, reassigning its parent. It fails if
	// the child's mode disagrees with the container's.
	Append(child Node) error
	// Insert adds child at index i, reassigning its parent.
	Insert(i int, child Node) error
	// Open writes the opening fragment for this node.
	Open(w *Writer, ctx Context)
	// Close writes the closing fragment for this node.
	Close(w *Writer, ctx Context)
}

// Leaf is a node without children that renders as a single fragment.
type Leaf interface {
	Node
	Render(w *Writer, ctx Context)
}

// subtreeRenderer replaces the default container traversal for one
// subtree. Image uses it to bump the nesting level its children see.
type subtreeRenderer interface {
	renderSubtree(w *Writer, ctx Context)
}

// base carries the state every node shares.
type base struct {
	kind   Kind
	mode   Mode
	parent Node
}

func (n *base) Kind() Kind      { return n.kind }
func (n *base) Mode() Mode      { return n.mode }
func (n *base) Parent() Node    { return n.parent }
func (n *base) SetParent(p Node) { n.parent = p }

// container carries the state of every node that has children. The
// self field points back at the outer node so that children get the
// concrete node, not the embedded struct, as their parent.
type container struct {
	base
	self     Node
	children []Node
}

func (c *container) Children() []Node { return c.children }

func (c *container) Append(child Node) error {
	if child.Mode() != c.mode {
		return fmt.Errorf("append %s to %s: %w", child.Kind(), c.kind, ErrModeMismatch)
	}
	child.SetParent(c.self)
	c.children = append(c.children, child)
	return nil
}

func (c *container) Insert(i int, child Node) error {
	if child.Mode() != c.mode {
		return fmt.Errorf("insert %s into %s: %w", child.Kind(), c.kind, ErrModeMismatch)
	}
	if i < 0 || i > len(c.children) {
		return fmt.Errorf("insert into %s: index %d out of range", c.kind, i)
	}
	child.SetParent(c.self)
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = child
	return nil
}

// Open and Close are the defaults for containers whose kind emits no
// markup of its own (Document, RawHTMLBlock).
func (c *container) Open(w *Writer, ctx Context)  {}
func (c *container) Close(w *Writer, ctx Context) {}

// text carries the state of every leaf holding literal content.
type text struct {
	base
	raw Raw
}

// Text returns the node's unprocessed payload.
func (t *text) Text() Raw { return t.raw }

func newText(kind Kind, raw Raw, mode Mode) (text, error) {
	if raw.Mode() != mode {
		return text{}, fmt.Errorf("%s payload is %s but tree is %s: %w",
			kind, raw.Mode(), mode, ErrModeMismatch)
	}
	return text{base: base{kind: kind, mode: mode}, raw: raw}, nil
}

// Render renders n and its children into w.
func Render(w *Writer, n Node, ctx Context) {
	if sr, ok := n.(subtreeRenderer); ok {
		sr.renderSubtree(w, ctx)
		return
	}
	switch t := n.(type) {
	case Container:
		t.Open(w, ctx)
		for _, child := range t.Children() {
			Render(w, child, ctx)
		}
		t.Close(w, ctx)
	case Leaf:
		t.Render(w, ctx)
	}
}

// RenderHTML renders a string-mode tree to HTML.
func RenderHTML(n Node) (string, error) {
	if n.Mode() != ModeString {
		return "", fmt.Errorf("render string output from %s tree: %w", n.Mode(), ErrModeMismatch)
	}
	w := NewWriter(ModeString)
	Render(w, n, Context{})
	return w.String(), nil
}

// RenderHTMLBytes renders a bytes-mode tree to HTML.
func RenderHTMLBytes(n Node) ([]byte, error) {
	if n.Mode() != ModeBytes {
		return nil, fmt.Errorf("render bytes output from %s tree: %w", n.Mode(), ErrModeMismatch)
	}
	w := NewWriter(ModeBytes)
	Render(w, n, Context{})
	return w.Bytes(), nil
}
