package transform

import (
	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
)

// transformDocument splits a document into its head (directives and the
// "---" marker) and its body (content and the "..." marker). The parser's
// value range covers only the content, so both markers are found by
// scanning the text around it.
func (c *Context) transformDocument(n *cst.Node) (*ast.Document, error) {
	if n.ValueRange == nil {
		return nil, contractf(n, "document without value range")
	}

	head, err := c.transformDocumentHead(n)
	if err != nil {
		return nil, err
	}
	body, trailing, err := c.transformDocumentBody(n)
	if err != nil {
		return nil, err
	}

	doc := ast.NewDocument(head, body)
	if trailing != nil {
		doc.AddTrailingComments(trailing)
	}
	return doc, nil
}

func (c *Context) transformDocumentHead(n *cst.Node) (*ast.DocumentHead, error) {
	var (
		directives []*ast.Directive
		pending    []*ast.Comment
	)
	for _, d := range n.Directives {
		node, err := c.Transform(d)
		if err != nil {
			return nil, err
		}
		switch v := node.(type) {
		case nil:
		case *ast.Comment:
			pending = append(pending, v)
		case *ast.Directive:
			// Comments between directives are left to the attachment pass.
			for _, comment := range pending {
				c.pushComment(comment)
			}
			pending = pending[:0]
			directives = append(directives, v)
		default:
			return nil, contractf(d, "unexpected %s among directives", node.Type())
		}
	}

	vr := n.ValueRange
	markerStart, hasMarker := scanDirectivesEnd(c.text, vr.Start)

	start, end := vr.Start, vr.Start
	switch {
	case len(directives) > 0:
		start = directives[0].Pos.Start.Offset
	case hasMarker:
		start = markerStart
	}
	if hasMarker {
		end = markerStart + 3
	}
	if start > end {
		start = end
	}

	head := ast.NewDocumentHead(c.Span(start, end), directives...)
	// The comments after the last directive close the head.
	for _, comment := range pending {
		c.pushComment(comment)
		if c.attach {
			head.AddEndComments(comment)
		}
	}
	return head, nil
}

func (c *Context) transformDocumentBody(n *cst.Node) (*ast.DocumentBody, *ast.Comment, error) {
	var content ast.Node
	for _, item := range n.Contents {
		node, err := c.Transform(item)
		if err != nil {
			return nil, nil, err
		}
		switch v := node.(type) {
		case nil:
		case *ast.Comment:
			c.pushComment(v)
		default:
			if content != nil {
				return nil, nil, contractf(item, "document has more than one root node (%s and %s)",
					content.Type(), node.Type())
			}
			content = node
		}
	}

	vr := n.ValueRange
	start, end := vr.Start, vr.Start
	if content != nil {
		start = content.Position().Start.Offset
		end = content.Position().End.Offset
	}

	var trailing *ast.Comment
	if markerEnd, comment, ok := scanDocumentEnd(c.text, vr.End); ok {
		end = markerEnd
		if comment != nil {
			trailing = c.commentAt(*comment)
		}
	}
	if start > end {
		start = end
	}

	return ast.NewDocumentBody(c.Span(start, end), content), trailing, nil
}

// commentAt returns the recorded comment starting at r, recording a new one
// when the parser did not report it.
func (c *Context) commentAt(r cst.Range) *ast.Comment {
	for _, comment := range c.comments {
		if comment.Pos.Start.Offset == r.Start {
			return comment
		}
	}
	comment := ast.NewComment(c.Position(r), c.text[r.Start+1:r.End])
	c.pushComment(comment)
	return comment
}
