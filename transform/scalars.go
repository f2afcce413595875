package transform

import (
	"strings"

	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
)

// valueRange returns n's value range clamped to the text, failing when the
// parser did not record one.
func (c *Context) valueRange(n *cst.Node) (cst.Range, error) {
	if n.ValueRange == nil {
		return cst.Range{}, contractf(n, "missing value range")
	}
	r := *n.ValueRange
	if r.Start < 0 || r.End > len(c.text) || r.Start > r.End {
		return cst.Range{}, contractf(n, "value range %s outside source of %d bytes", r, len(c.text))
	}
	return r, nil
}

func (c *Context) transformAlias(n *cst.Node) (*ast.Alias, error) {
	r, err := c.valueRange(n)
	if err != nil {
		return nil, err
	}
	if r.Len() == 0 || c.text[r.Start] != '*' {
		return nil, contractf(n, "alias does not start with %q", '*')
	}
	return ast.NewAlias(c.Position(r), c.names.intern(c.text[r.Start+1:r.End])), nil
}

func (c *Context) transformComment(n *cst.Node) (*ast.Comment, error) {
	r := n.Range
	if r == nil {
		r = n.ValueRange
	}
	if r == nil {
		return nil, contractf(n, "missing range")
	}
	if r.Start < 0 || r.End > len(c.text) || r.Start >= r.End || c.text[r.Start] != '#' {
		return nil, contractf(n, "comment range %s does not start with %q", r, '#')
	}
	return ast.NewComment(c.Position(*r), c.text[r.Start+1:r.End]), nil
}

func (c *Context) transformDirective(n *cst.Node) (*ast.Directive, error) {
	r, err := c.valueRange(n)
	if err != nil {
		return nil, err
	}
	start := r.Start
	if n.Range != nil && n.Range.Start < start {
		start = n.Range.Start
	}

	name, params := n.Name, n.Parameters
	if name == "" {
		raw := strings.TrimPrefix(c.text[start:r.End], "%")
		fields := strings.Fields(raw)
		for i, f := range fields {
			if strings.HasPrefix(f, "#") {
				fields = fields[:i]
				break
			}
		}
		if len(fields) == 0 {
			return nil, contractf(n, "directive without name")
		}
		name, params = fields[0], fields[1:]
	}
	return ast.NewDirective(c.Span(start, r.End), c.names.intern(name), params...), nil
}

func (c *Context) transformPlain(n *cst.Node) (*ast.Plain, error) {
	r, err := c.valueRange(n)
	if err != nil {
		return nil, err
	}
	end := r.End
	for end > r.Start && isWhite(c.text[end-1]) {
		end--
	}
	return ast.NewPlain(c.Span(r.Start, end), foldFlow(c.text[r.Start:end], 0)), nil
}

func (c *Context) transformQuoteSingle(n *cst.Node) (*ast.QuoteSingle, error) {
	r, inner, err := c.quoted(n, '\'')
	if err != nil {
		return nil, err
	}
	return ast.NewQuoteSingle(c.Position(r), foldFlow(inner, '\'')), nil
}

func (c *Context) transformQuoteDouble(n *cst.Node) (*ast.QuoteDouble, error) {
	r, inner, err := c.quoted(n, '"')
	if err != nil {
		return nil, err
	}
	return ast.NewQuoteDouble(c.Position(r), foldFlow(inner, '"')), nil
}

// quoted returns the range of a quoted scalar and the text between its
// quotes.
func (c *Context) quoted(n *cst.Node, quote byte) (cst.Range, string, error) {
	r, err := c.valueRange(n)
	if err != nil {
		return r, "", err
	}
	raw := c.text[r.Start:r.End]
	if len(raw) < 2 || raw[0] != quote || raw[len(raw)-1] != quote {
		return r, "", contractf(n, "scalar %q is not enclosed in %c quotes", raw, quote)
	}
	return r, raw[1 : len(raw)-1], nil
}

func (c *Context) transformBlockLiteral(n *cst.Node) (*ast.BlockLiteral, error) {
	b, err := c.blockValue(n, false)
	if err != nil {
		return nil, err
	}
	return &ast.BlockLiteral{BlockValue: b}, nil
}

func (c *Context) transformBlockFolded(n *cst.Node) (*ast.BlockFolded, error) {
	b, err := c.blockValue(n, true)
	if err != nil {
		return nil, err
	}
	return &ast.BlockFolded{BlockValue: b}, nil
}

// blockValue decodes a block scalar. Its position runs from the "|" or ">"
// indicator to the end of the content.
func (c *Context) blockValue(n *cst.Node, folded bool) (ast.BlockValue, error) {
	var b ast.BlockValue
	r, err := c.valueRange(n)
	if err != nil {
		return b, err
	}
	if n.Header == nil {
		return b, contractf(n, "block scalar without header")
	}
	header := *n.Header
	if header.Start < 0 || header.End > len(c.text) || header.Start >= header.End {
		return b, contractf(n, "header %s outside source", header)
	}

	h, ok := parseBlockHeader(c.text[header.Start:header.End])
	if !ok {
		return b, contractf(n, "malformed block scalar header %q", c.text[header.Start:header.End])
	}
	switch n.Chomping {
	case cst.ChompKeep:
		h.chomping = ast.ChompKeep
	case cst.ChompStrip:
		h.chomping = ast.ChompStrip
	case cst.ChompClip:
		h.chomping = ast.ChompClip
	}

	contentStart := min(nextLine(c.text, header.End), r.End)
	contentStart = max(contentStart, header.End)
	end := max(r.End, header.End)

	indent := -1
	switch {
	case n.BlockIndent != nil:
		indent = *n.BlockIndent
	case h.indent != nil:
		indent = lineIndent(c.text, header.Start) + *h.indent
	}

	b.Pos = c.Span(header.Start, end)
	b.Chomping = h.chomping
	b.Indent = h.indent
	b.Value = decodeBlock(c.text[contentStart:end], indent, folded, h.chomping)
	return b, nil
}

type blockHeader struct {
	chomping ast.Chomping
	indent   *int
}

// parseBlockHeader reads the indicators of "|", ">", "|+", ">2-" and the
// like. Text after the indicators is ignored.
func parseBlockHeader(s string) (blockHeader, bool) {
	h := blockHeader{chomping: ast.ChompClip}
	if s == "" || (s[0] != '|' && s[0] != '>') {
		return h, false
	}
	for i := 1; i < len(s); i++ {
		switch ch := s[i]; {
		case ch == '+' && h.chomping == ast.ChompClip:
			h.chomping = ast.ChompKeep
		case ch == '-' && h.chomping == ast.ChompClip:
			h.chomping = ast.ChompStrip
		case ch >= '1' && ch <= '9' && h.indent == nil:
			n := int(ch - '0')
			h.indent = &n
		default:
			return h, true
		}
	}
	return h, true
}
