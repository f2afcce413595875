// Package transform converts the concrete syntax tree of a YAML stream into
// the position-annotated tree of package ast.
//
// The conversion is a single synchronous recursive walk. Each Transform call
// owns its Context, so independent calls may run in parallel.
package transform

import (
	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
	"github.com/robinvdvleuten/yamlunist/locate"
	"golang.org/x/exp/slices"
)

// Locator maps a byte offset to a 1-based line and column.
type Locator interface {
	Locate(offset int) (line, column int)
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(offset int) (line, column int)

func (f LocatorFunc) Locate(offset int) (line, column int) { return f(offset) }

// Option configures a transformation.
type Option func(*Context)

// WithCommentAttachment enables or disables the pass that attaches the
// comments property attachment left unclaimed as leading, trailing or end
// comments of nearby nodes. It is enabled by default. When disabled those
// comments are only reachable through Root.Comments.
func WithCommentAttachment(enabled bool) Option {
	return func(c *Context) { c.attach = enabled }
}

// Context carries the source text and the comment list through one
// transformation.
type Context struct {
	text     string
	locator  Locator
	comments []*ast.Comment
	names    *names
	attach   bool
}

// NewContext creates a context for text. A nil locator falls back to a
// byte-column locate.Index over text.
func NewContext(text string, locator Locator, opts ...Option) *Context {
	if locator == nil {
		locator = locate.New(text)
	}
	c := &Context{text: text, locator: locator, names: newNames(), attach: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Text returns the source text.
func (c *Context) Text() string { return c.text }

// Comments returns every comment seen so far in source order.
func (c *Context) Comments() []*ast.Comment { return c.comments }

// Point converts an offset into a point.
func (c *Context) Point(offset int) ast.Point {
	line, column := c.locator.Locate(offset)
	return ast.Point{Offset: offset, Line: line, Column: column}
}

// Position converts a CST range into a position.
func (c *Context) Position(r cst.Range) ast.Position {
	return c.Span(r.Start, r.End)
}

// Span converts the byte range [start, end) into a position.
func (c *Context) Span(start, end int) ast.Position {
	return ast.Position{Start: c.Point(start), End: c.Point(end)}
}

// pushComment records a comment in the flat list, keeping it in source
// order. Property comments are reported after the children of their node,
// so appending alone is not enough.
func (c *Context) pushComment(comment *ast.Comment) {
	c.comments = insertComment(c.comments, comment)
}

func insertComment[S ~[]*ast.Comment](list S, comment *ast.Comment) S {
	i, _ := slices.BinarySearchFunc(list, comment.Pos.Start.Offset, func(e *ast.Comment, offset int) int {
		if e.Pos.Start.Offset <= offset {
			return -1
		}
		return 1
	})
	return slices.Insert(list, i, comment)
}

// Transform converts a CST stream into a Root. text must be the source the
// stream was parsed from. A nil locator uses byte columns.
//
// The error is a *ContractError or an *UnknownKindError; no partial tree is
// returned.
func Transform(stream cst.Stream, text string, locator Locator, opts ...Option) (*ast.Root, error) {
	c := NewContext(text, locator, opts...)

	documents := make([]*ast.Document, 0, len(stream))
	for _, n := range stream {
		if n == nil {
			continue
		}
		if n.Type != cst.Document {
			return nil, contractf(n, "stream entry is not a %s", cst.Document)
		}
		doc, err := transformAs[*ast.Document](c, n)
		if err != nil {
			return nil, err
		}
		documents = append(documents, doc)
	}

	root := ast.NewRoot(c.Span(0, len(text)), documents, c.comments)
	if c.attach {
		attachComments(root, text)
	}
	return root, nil
}
