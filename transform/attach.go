package transform

import (
	"math"

	"github.com/robinvdvleuten/yamlunist/ast"
)

// attachComments finds an owner for every comment property attachment left
// unclaimed. In order of preference a comment becomes:
//
//  1. a trailing comment of the innermost node ending before it on the same
//     line;
//  2. a leading comment of the outermost node starting right after it, when
//     only white space and comments lie in between and the comment is not
//     indented deeper than the node;
//  3. an end comment of the innermost collection that contains it or ended
//     before it at a lower indentation;
//  4. an end comment of the document head or body. A comment before the
//     "---" marker of a document without directives closes the head even
//     though it lies before the head's start.
//
// Comments are visited in source order, so every list stays sorted.
func attachComments(root *ast.Root, text string) {
	claimed := make(map[*ast.Comment]bool, len(root.Comments))
	ast.Inspect(root, func(n ast.Node) bool {
		for _, c := range ast.Comments(n) {
			claimed[c] = true
		}
		return true
	})

	candidates := map[*ast.Document][]ast.Node{}
	for _, comment := range root.Comments {
		if claimed[comment] {
			continue
		}
		doc := documentOf(root, comment)
		if doc == nil {
			continue
		}
		nodes, ok := candidates[doc]
		if !ok {
			nodes = preorder(doc)
			candidates[doc] = nodes
		}

		if owner := trailingOwner(nodes, comment); owner != nil {
			owner.AddTrailingComments(comment)
		} else if owner := leadingOwner(nodes, comment, text); owner != nil {
			owner.AddLeadingComments(comment)
		} else if owner := endOwner(nodes, comment); owner != nil {
			owner.AddEndComments(comment)
		} else if comment.Pos.Start.Offset < doc.Body.Pos.Start.Offset {
			doc.Head.AddEndComments(comment)
		} else {
			doc.Body.AddEndComments(comment)
		}
		claimed[comment] = true
	}
}

// documentOf returns the last document starting at or before the comment,
// or the first document when the comment precedes them all.
func documentOf(root *ast.Root, comment *ast.Comment) *ast.Document {
	if len(root.Documents) == 0 {
		return nil
	}
	doc := root.Documents[0]
	for _, d := range root.Documents[1:] {
		if d.Pos.Start.Offset > comment.Pos.Start.Offset {
			break
		}
		doc = d
	}
	return doc
}

// preorder lists the nodes below doc, parents before children.
func preorder(doc *ast.Document) []ast.Node {
	var nodes []ast.Node
	ast.Inspect(doc, func(n ast.Node) bool {
		if n != ast.Node(doc) {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

func trailingOwner(nodes []ast.Node, comment *ast.Comment) ast.TrailingCommentable {
	var owner ast.TrailingCommentable
	best := -1
	for _, n := range nodes {
		t, ok := n.(ast.TrailingCommentable)
		if !ok {
			continue
		}
		p := n.Position()
		if p.IsEmpty() || p.End.Offset > comment.Pos.Start.Offset {
			continue
		}
		// The node's last byte has to sit on the comment's line.
		if p.End.Line != comment.Pos.Start.Line || p.End.Column == 1 {
			continue
		}
		// Later nodes in pre-order are deeper, so ties go to them.
		if p.End.Offset >= best {
			owner, best = t, p.End.Offset
		}
	}
	return owner
}

func leadingOwner(nodes []ast.Node, comment *ast.Comment, text string) ast.LeadingCommentable {
	var owner ast.LeadingCommentable
	best := math.MaxInt
	for _, n := range nodes {
		l, ok := n.(ast.LeadingCommentable)
		if !ok {
			continue
		}
		start := n.Position().Start.Offset
		// Strictly smaller keeps the outermost node on ties.
		if start >= comment.Pos.End.Offset && start < best {
			owner, best = l, start
		}
	}
	if owner == nil {
		return nil
	}
	if !onlyTrivia(text, comment.Pos.End.Offset, best) {
		return nil
	}
	if comment.Pos.Start.Column > owner.Position().Start.Column {
		return nil
	}
	return owner
}

func endOwner(nodes []ast.Node, comment *ast.Comment) ast.EndCommentable {
	var owner ast.EndCommentable
	best := -1
	for _, n := range nodes {
		e, ok := n.(ast.EndCommentable)
		if !ok {
			continue
		}
		p := n.Position()
		if p.Start.Offset >= comment.Pos.Start.Offset {
			continue
		}
		contains := p.End.Offset >= comment.Pos.End.Offset
		before := p.End.Offset <= comment.Pos.Start.Offset && p.Start.Column < comment.Pos.Start.Column
		if !contains && !before {
			continue
		}
		if p.Start.Offset >= best {
			owner, best = e, p.Start.Offset
		}
	}
	return owner
}
