package transform

import (
	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
)

// transformPair handles the "? key", ": value" and "- value" entries. The
// entry starts at its indicator; an entry without a value still covers the
// indicator itself.
func (c *Context) transformPair(n *cst.Node) (ast.Position, ast.Node, error) {
	r, err := c.valueRange(n)
	if err != nil {
		return ast.Position{}, nil, err
	}
	if n.Node != nil && n.Node.Type == cst.Comment {
		return ast.Position{}, nil, contractf(n, "%s value is a comment", n.Type)
	}
	value, err := c.Transform(n.Node)
	if err != nil {
		return ast.Position{}, nil, err
	}
	if value == nil {
		return c.Span(r.Start, r.Start+1), nil, nil
	}
	return ast.Position{Start: c.Point(r.Start), End: value.Position().End}, value, nil
}

func (c *Context) transformSeqItem(n *cst.Node) (*ast.SequenceItem, error) {
	pos, value, err := c.transformPair(n)
	if err != nil {
		return nil, err
	}
	return ast.NewSequenceItem(pos, value), nil
}

func (c *Context) transformMapKey(n *cst.Node) (*ast.MappingKey, error) {
	pos, value, err := c.transformPair(n)
	if err != nil {
		return nil, err
	}
	return ast.NewMappingKey(pos, value), nil
}

func (c *Context) transformMapValue(n *cst.Node) (*ast.MappingValue, error) {
	pos, value, err := c.transformPair(n)
	if err != nil {
		return nil, err
	}
	return ast.NewMappingValue(pos, value), nil
}

func (c *Context) transformSeq(n *cst.Node) (*ast.Sequence, error) {
	var items []*ast.SequenceItem
	for _, item := range n.Items {
		node, err := c.Transform(item)
		if err != nil {
			return nil, err
		}
		switch v := node.(type) {
		case nil:
		case *ast.Comment:
			c.pushComment(v)
		case *ast.SequenceItem:
			items = append(items, v)
		default:
			return nil, contractf(item, "unexpected %s in sequence", node.Type())
		}
	}

	pos, err := c.collectionPosition(n, len(items), func(i int) ast.Node { return items[i] })
	if err != nil {
		return nil, err
	}
	return ast.NewSequence(pos, items...), nil
}

// transformMap groups the flat entry list of a block mapping into pairs. An
// explicit "? key" waits for the ": value" that follows it; any other node
// is an implicit key.
func (c *Context) transformMap(n *cst.Node) (*ast.Mapping, error) {
	var (
		items []*ast.MappingItem
		key   *ast.MappingKey
	)
	flush := func() {
		if key != nil {
			items = append(items, pairItem(ast.NewMappingItem, key, nil))
			key = nil
		}
	}

	for _, item := range n.Items {
		node, err := c.Transform(item)
		if err != nil {
			return nil, err
		}
		switch v := node.(type) {
		case nil:
		case *ast.Comment:
			c.pushComment(v)
		case *ast.MappingKey:
			flush()
			key = v
		case *ast.MappingValue:
			items = append(items, pairItem(ast.NewMappingItem, key, v))
			key = nil
		default:
			flush()
			key = ast.NewMappingKey(v.Position(), v)
		}
	}
	flush()

	pos, err := c.collectionPosition(n, len(items), func(i int) ast.Node { return items[i] })
	if err != nil {
		return nil, err
	}
	return ast.NewMapping(pos, items...), nil
}

// pairItem builds a mapping item spanning the halves that are present.
func pairItem[T any](build func(ast.Position, *ast.MappingKey, *ast.MappingValue) T, key *ast.MappingKey, value *ast.MappingValue) T {
	var pos ast.Position
	switch {
	case key != nil && value != nil:
		pos = ast.Position{Start: key.Pos.Start, End: value.Pos.End}
	case key != nil:
		pos = key.Pos
	case value != nil:
		pos = value.Pos
	}
	return build(pos, key, value)
}

// collectionPosition spans the first to the last item, or the value range
// when there are none.
func (c *Context) collectionPosition(n *cst.Node, count int, item func(int) ast.Node) (ast.Position, error) {
	if count > 0 {
		return ast.Position{
			Start: item(0).Position().Start,
			End:   item(count - 1).Position().End,
		}, nil
	}
	r, err := c.valueRange(n)
	if err != nil {
		return ast.Position{}, err
	}
	return c.Position(r), nil
}

// flowEntry is one comma separated entry of a flow collection.
type flowEntry struct {
	explicit int // offset of "?", or -1
	colon    int // offset of ":", or -1
	nodes    []ast.Node
	first    int // offset of the first part
}

func (e *flowEntry) empty() bool {
	return e.explicit < 0 && e.colon < 0 && len(e.nodes) == 0
}

// flowEntries checks the brackets of a flow collection and splits its items
// at the commas. Comments are recorded and dropped.
func (c *Context) flowEntries(n *cst.Node, open, shut byte) (ast.Position, []*flowEntry, error) {
	items := n.Entries
	if len(items) == 0 || !items[0].IsChar(open) {
		return ast.Position{}, nil, contractf(n, "flow collection does not start with %q", open)
	}
	if len(items) < 2 || !items[len(items)-1].IsChar(shut) {
		return ast.Position{}, nil, contractf(n, "flow collection is not closed with %q", shut)
	}
	pos := c.Span(items[0].Offset, items[len(items)-1].Offset+1)

	var entries []*flowEntry
	cur := &flowEntry{explicit: -1, colon: -1}
	flush := func() {
		if !cur.empty() {
			entries = append(entries, cur)
		}
		cur = &flowEntry{explicit: -1, colon: -1}
	}
	mark := func(start int) {
		if cur.empty() {
			cur.first = start
		}
	}

	for _, item := range items[1 : len(items)-1] {
		if item.Node != nil {
			node, err := c.Transform(item.Node)
			if err != nil {
				return ast.Position{}, nil, err
			}
			switch v := node.(type) {
			case nil:
			case *ast.Comment:
				c.pushComment(v)
			default:
				mark(v.Position().Start.Offset)
				cur.nodes = append(cur.nodes, v)
			}
			continue
		}
		switch {
		case item.IsChar(','):
			flush()
		case item.IsChar('?'):
			mark(item.Offset)
			cur.explicit = item.Offset
		case item.IsChar(':'):
			mark(item.Offset)
			cur.colon = item.Offset
		default:
			return ast.Position{}, nil, contractf(n, "unexpected %q in flow collection", item.Char)
		}
	}
	flush()
	return pos, entries, nil
}

// flowPair turns an entry into the key and value of a pair.
func (c *Context) flowPair(n *cst.Node, e *flowEntry) (*ast.MappingKey, *ast.MappingValue, error) {
	var keyNode, valueNode ast.Node
	for _, node := range e.nodes {
		before := e.colon < 0 || node.Position().Start.Offset < e.colon
		switch {
		case before && keyNode == nil:
			keyNode = node
		case !before && valueNode == nil:
			valueNode = node
		default:
			return nil, nil, contractf(n, "flow entry at offset %d holds more than one key or value", e.first)
		}
	}

	var key *ast.MappingKey
	if e.explicit >= 0 || keyNode != nil {
		start := e.explicit
		if start < 0 {
			start = keyNode.Position().Start.Offset
		}
		pos := c.Span(start, start+1)
		if keyNode != nil {
			pos.End = keyNode.Position().End
		}
		key = ast.NewMappingKey(pos, keyNode)
	}

	var value *ast.MappingValue
	if e.colon >= 0 {
		pos := c.Span(e.colon, e.colon+1)
		if valueNode != nil {
			pos.End = valueNode.Position().End
		}
		value = ast.NewMappingValue(pos, valueNode)
	}
	return key, value, nil
}

func (c *Context) transformFlowMap(n *cst.Node) (*ast.FlowMapping, error) {
	pos, entries, err := c.flowEntries(n, '{', '}')
	if err != nil {
		return nil, err
	}
	items := make([]*ast.FlowMappingItem, 0, len(entries))
	for _, e := range entries {
		key, value, err := c.flowPair(n, e)
		if err != nil {
			return nil, err
		}
		items = append(items, pairItem(ast.NewFlowMappingItem, key, value))
	}
	return ast.NewFlowMapping(pos, items...), nil
}

// transformFlowSeq keeps single nodes as they are and turns "key: value"
// entries into pairs.
func (c *Context) transformFlowSeq(n *cst.Node) (*ast.FlowSequence, error) {
	pos, entries, err := c.flowEntries(n, '[', ']')
	if err != nil {
		return nil, err
	}
	items := make([]ast.Node, 0, len(entries))
	for _, e := range entries {
		if e.explicit < 0 && e.colon < 0 {
			if len(e.nodes) != 1 {
				return nil, contractf(n, "flow entry at offset %d holds %d nodes", e.first, len(e.nodes))
			}
			items = append(items, e.nodes[0])
			continue
		}
		key, value, err := c.flowPair(n, e)
		if err != nil {
			return nil, err
		}
		items = append(items, pairItem(ast.NewFlowMappingItem, key, value))
	}
	return ast.NewFlowSequence(pos, items...), nil
}
