package transform

import (
	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
)

// attachProperties classifies the markers the parser recorded in front of
// n's value and attaches them to node:
//
//	!!str # middle
//	&anchor
//	value
//
// Comments between a tag or anchor and the value become middle comments, a
// comment inside a block scalar header becomes a trailing comment, and every
// comment is recorded in the context once. Finally the node's start moves
// back to its first tag or anchor.
func (c *Context) attachProperties(n *cst.Node, node ast.Node) error {
	var (
		tagRange, anchorRange *cst.Range
		comments              []cst.Range
	)
	start := node.Position().Start.Offset
	newStart := -1

	for i := range n.Props {
		prop := &n.Props[i]
		if prop.Start < 0 || prop.Start >= len(c.text) || prop.End > len(c.text) || prop.Start > prop.End {
			return contractf(n, "property %s outside source", prop)
		}
		switch ch := c.text[prop.Start]; ch {
		case '!', '&':
			limit := start
			if newStart != -1 {
				limit = newStart
			}
			if prop.Start < limit {
				newStart = prop.Start
			}
			if ch == '!' {
				if tagRange != nil {
					return contractf(n, "more than one tag (%s and %s)", tagRange, prop)
				}
				tagRange = prop
			} else {
				if anchorRange != nil {
					return contractf(n, "more than one anchor (%s and %s)", anchorRange, prop)
				}
				anchorRange = prop
			}
		case '#':
			comments = append(comments, *prop)
		default:
			return contractf(n, "unexpected leading character %q", ch)
		}
	}

	content, isContent := node.(ast.ContentNode)
	pos := node.Position()
	for _, r := range comments {
		comment := ast.NewComment(c.Position(r), c.text[r.Start+1:r.End])
		switch {
		case isContent && newStart != -1 && newStart <= r.Start && start >= r.End:
			props := content.Props()
			props.MiddleComments = append(props.MiddleComments, comment)
		case isBlockScalar(node) && pos.Start.Offset < r.Start && pos.End.Offset > r.End:
			node.(ast.TrailingCommentable).AddTrailingComments(comment)
		}
		c.pushComment(comment)
	}

	if tagRange != nil {
		if !isContent {
			return contractf(n, "%s cannot carry a tag", node.Type())
		}
		tag, err := c.tag(n, *tagRange)
		if err != nil {
			return err
		}
		content.Props().Tag = tag
	}

	if anchorRange != nil {
		if !isContent {
			return contractf(n, "%s cannot carry an anchor", node.Type())
		}
		name := n.Anchor
		if name == "" {
			parsed, ok := cst.ParseAnchor(anchorRange.Text(c.text))
			if !ok {
				return contractf(n, "malformed anchor %q", anchorRange.Text(c.text))
			}
			name = parsed
		}
		content.Props().Anchor = ast.NewAnchor(c.Position(*anchorRange), c.names.intern(name))
	}

	if isContent && newStart != -1 {
		pos.Start = c.Point(newStart)
		content.SetPosition(pos)
	}
	return nil
}

func (c *Context) tag(n *cst.Node, r cst.Range) (ast.Tag, error) {
	var tag cst.Tag
	if n.Tag != nil {
		tag = *n.Tag
	} else {
		parsed, ok := cst.ParseTag(r.Text(c.text))
		if !ok {
			return nil, contractf(n, "malformed tag %q", r.Text(c.text))
		}
		tag = parsed
	}

	pos := c.Position(r)
	switch {
	case tag.IsVerbatim():
		return ast.NewVerbatimTag(pos, tag.Verbatim), nil
	case tag.IsNonSpecific():
		return ast.NewNonSpecificTag(pos), nil
	default:
		return ast.NewShorthandTag(pos, c.names.intern(tag.Handle), c.names.intern(tag.Suffix)), nil
	}
}

func isBlockScalar(node ast.Node) bool {
	switch node.(type) {
	case *ast.BlockLiteral, *ast.BlockFolded:
		return true
	}
	return false
}
