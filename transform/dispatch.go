package transform

import (
	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
)

// Transform converts one CST node and everything below it. A nil node yields
// a nil result. Comments are returned as they are; every other node comes
// back with its tag, anchor and property comments attached.
//
// Comments returned by Transform are not yet recorded in the context; the
// caller decides where they go.
func (c *Context) Transform(n *cst.Node) (ast.Node, error) {
	if n == nil {
		return nil, nil
	}
	node, err := c.transformNode(n)
	if err != nil {
		return nil, err
	}
	if n.Type == cst.Comment {
		return node, nil
	}
	if err := c.attachProperties(n, node); err != nil {
		return nil, err
	}
	return node, nil
}

func (c *Context) transformNode(n *cst.Node) (ast.Node, error) {
	switch n.Type {
	case cst.Alias:
		return wrap(c.transformAlias(n))
	case cst.BlockFolded:
		return wrap(c.transformBlockFolded(n))
	case cst.BlockLiteral:
		return wrap(c.transformBlockLiteral(n))
	case cst.Comment:
		return wrap(c.transformComment(n))
	case cst.Directive:
		return wrap(c.transformDirective(n))
	case cst.Document:
		return wrap(c.transformDocument(n))
	case cst.FlowMap:
		return wrap(c.transformFlowMap(n))
	case cst.FlowSeq:
		return wrap(c.transformFlowSeq(n))
	case cst.Map:
		return wrap(c.transformMap(n))
	case cst.MapKey:
		return wrap(c.transformMapKey(n))
	case cst.MapValue:
		return wrap(c.transformMapValue(n))
	case cst.Plain:
		return wrap(c.transformPlain(n))
	case cst.QuoteDouble:
		return wrap(c.transformQuoteDouble(n))
	case cst.QuoteSingle:
		return wrap(c.transformQuoteSingle(n))
	case cst.Seq:
		return wrap(c.transformSeq(n))
	case cst.SeqItem:
		return wrap(c.transformSeqItem(n))
	default:
		return nil, &UnknownKindError{Kind: n.Type, Offset: offsetOf(n)}
	}
}

// wrap turns a concrete result into an interface result without producing a
// non-nil interface around a nil pointer.
func wrap[T ast.Node](node T, err error) (ast.Node, error) {
	if err != nil {
		return nil, err
	}
	return node, nil
}

// transformAs transforms n and asserts the result type. A nil n yields the
// zero T.
func transformAs[T ast.Node](c *Context, n *cst.Node) (T, error) {
	var zero T
	node, err := c.Transform(n)
	if err != nil || node == nil {
		return zero, err
	}
	typed, ok := node.(T)
	if !ok {
		return zero, contractf(n, "unexpected %s", node.Type())
	}
	return typed, nil
}
