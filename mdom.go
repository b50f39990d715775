// Package mdom turns Markdown into a document tree or straight into
// HTML. A parse engine emits enter/leave/text events; the dom package
// grows a tree from them and the render package streams them to
// markup without one.
package mdom

import (
	"github.com/rs/zerolog"

	"github.com/insomnimus/mdom/ast"
	"github.com/insomnimus/mdom/dom"
	"github.com/insomnimus/mdom/engine"
	"github.com/insomnimus/mdom/render"
)

type config struct {
	engine engine.Engine
	log    zerolog.Logger
	strict bool
}

// Option configures a parse or render call.
type Option func(*config)

// WithEngine selects the parse engine. The default is goldmark.
func WithEngine(e engine.Engine) Option {
	return func(c *config) { c.engine = e }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// StrictNesting makes mismatched leave events fail the parse instead
// of being logged and tolerated.
func StrictNesting() Option {
	return func(c *config) { c.strict = true }
}

func newConfig(opts []Option) config {
	c := config{log: zerolog.Nop()}
	for _, o := range opts {
		o(&c)
	}
	if c.engine == nil {
		c.engine = engine.NewGoldmark(engine.GoldmarkWithLogger(c.log))
	}
	return c
}

// Parse builds a document tree in bytes mode.
func Parse(src []byte, opts ...Option) (ast.Node, []*dom.Warning, error) {
	return parse(ast.Bytes(src), opts)
}

// ParseString builds a document tree in string mode.
func ParseString(src string, opts ...Option) (ast.Node, []*dom.Warning, error) {
	return parse(ast.Str(src), opts)
}

func parse(src ast.Raw, opts []Option) (ast.Node, []*dom.Warning, error) {
	c := newConfig(opts)
	bopts := []dom.Option{dom.WithLogger(c.log)}
	if c.strict {
		bopts = append(bopts, dom.StrictNesting())
	}
	b := dom.New(src.Mode(), bopts...)
	if err := c.engine.Parse(src, b); err != nil {
		return nil, b.Warnings(), err
	}
	root, err := b.Finish()
	return root, b.Warnings(), err
}

// ToHTML renders Markdown to HTML without building a tree.
func ToHTML(src string, opts ...Option) (string, error) {
	r, err := renderStream(ast.Str(src), opts)
	if err != nil {
		return "", err
	}
	return r.Result()
}

// ToHTMLBytes is ToHTML for byte input and output.
func ToHTMLBytes(src []byte, opts ...Option) ([]byte, error) {
	r, err := renderStream(ast.Bytes(src), opts)
	if err != nil {
		return nil, err
	}
	return r.ResultBytes()
}

func renderStream(src ast.Raw, opts []Option) (*render.HTML, error) {
	c := newConfig(opts)
	ropts := []render.Option{render.WithLogger(c.log)}
	if c.strict {
		ropts = append(ropts, render.StrictNesting())
	}
	r := render.NewHTML(src.Mode(), ropts...)
	if err := c.engine.Parse(src, r); err != nil {
		return nil, err
	}
	return r, nil
}
