package loader

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/yamlunist/ast"
)

// InvariantError reports a node of a loaded tree that breaks one of the
// guarantees of the transform.
type InvariantError struct {
	Node    ast.Node
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Node.Type(), e.Node.Position().Start, e.Message)
}

// GetPosition returns the position of the offending node.
func (e *InvariantError) GetPosition() ast.Position { return e.Node.Position() }

// Verify checks the tree of r against its source:
//   - positions are ordered, inside the source and agree with the index;
//   - every node except the root has an owner;
//   - every comment is attached at most once and listed in Root.Comments,
//     which is in source order;
//   - document heads end before their bodies start.
//
// The errors are sorted by source offset.
func (r *Result) Verify() []error {
	var errs []*InvariantError
	fail := func(n ast.Node, format string, args ...any) {
		errs = append(errs, &InvariantError{Node: n, Message: fmt.Sprintf(format, args...)})
	}

	checkPoint := func(n ast.Node, which string, p ast.Point) {
		if p.Offset < 0 || p.Offset > len(r.Source) {
			fail(n, "%s offset %d outside source of %d bytes", which, p.Offset, len(r.Source))
			return
		}
		if r.Index == nil {
			return
		}
		if line, column := r.Index.Locate(p.Offset); line != p.Line || column != p.Column {
			fail(n, "%s offset %d is at %d:%d, not %s", which, p.Offset, line, column, p)
		}
	}

	attached := map[*ast.Comment]int{}
	ast.InspectAll(r.Root, func(n ast.Node) bool {
		pos := n.Position()
		checkPoint(n, "start", pos.Start)
		checkPoint(n, "end", pos.End)
		if pos.Start.Offset > pos.End.Offset {
			fail(n, "starts after it ends")
		}
		if n != ast.Node(r.Root) && r.Parents.Parent(n) == nil {
			fail(n, "has no owner")
		}
		for _, c := range ast.Comments(n) {
			attached[c]++
		}
		if doc, ok := n.(*ast.Document); ok && doc.Head.Pos.End.Offset > doc.Body.Pos.Start.Offset {
			fail(n, "head ends at %s after body starts at %s", doc.Head.Pos.End, doc.Body.Pos.Start)
		}
		return true
	})

	listed := map[*ast.Comment]bool{}
	for i, c := range r.Root.Comments {
		listed[c] = true
		if i > 0 && r.Root.Comments[i-1].Pos.Start.Offset > c.Pos.Start.Offset {
			fail(c, "comment list out of source order")
		}
	}
	for c, n := range attached {
		if n > 1 {
			fail(c, "attached %d times", n)
		}
		if !listed[c] {
			fail(c, "attached but missing from the root comment list")
		}
	}

	slices.SortStableFunc(errs, func(a, b *InvariantError) int {
		return a.Node.Position().Start.Offset - b.Node.Position().Start.Offset
	})
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}
