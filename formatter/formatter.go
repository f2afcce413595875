// Package formatter renders a YAML syntax tree as an indented outline, one
// node per line, for debugging transforms:
//
//	root              1:1-2:1
//	  document        1:1-1:11
//	    documentHead  1:1-1:1
//	    documentBody  1:1-1:11
//	      mapping     1:1-1:11
//	        ...
//
// It is not a YAML printer; use the source text for that.
package formatter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/output"
)

const (
	// DefaultIndentation is the number of spaces per nesting level.
	DefaultIndentation = 2

	// DefaultValueWidth is the display width values are truncated to.
	DefaultValueWidth = 60

	// MinimumSpacing is the minimum number of spaces between a node type and
	// its position.
	MinimumSpacing = 2
)

// Formatter prints outlines of syntax trees.
type Formatter struct {
	// Indentation is the number of spaces per nesting level.
	Indentation int

	// ValueWidth is the display width scalar values are truncated to. Zero
	// disables truncation.
	ValueWidth int

	// ShowPositions controls whether line:column ranges are printed.
	// Default: true
	ShowPositions bool

	// ShowComments controls whether comments are printed under their owners.
	// Default: true
	ShowComments bool

	// StringEscapeStyle controls how scalar values are printed.
	StringEscapeStyle StringEscapeStyle

	// Styles colors the output. Nil prints plain text.
	Styles *output.Styles
}

// Option is a functional option for configuring a Formatter.
type Option func(*Formatter)

// WithIndentation sets the number of spaces per nesting level.
func WithIndentation(n int) Option {
	return func(f *Formatter) {
		f.Indentation = n
	}
}

// WithValueWidth sets the display width values are truncated to.
func WithValueWidth(width int) Option {
	return func(f *Formatter) {
		f.ValueWidth = width
	}
}

// WithPositions enables or disables printing of positions.
func WithPositions(show bool) Option {
	return func(f *Formatter) {
		f.ShowPositions = show
	}
}

// WithComments enables or disables printing of comments.
func WithComments(show bool) Option {
	return func(f *Formatter) {
		f.ShowComments = show
	}
}

// WithEscapeStyle sets how scalar values are printed.
func WithEscapeStyle(style StringEscapeStyle) Option {
	return func(f *Formatter) {
		f.StringEscapeStyle = style
	}
}

// WithStyles colors the output.
func WithStyles(styles *output.Styles) Option {
	return func(f *Formatter) {
		f.Styles = styles
	}
}

// New creates a new Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		Indentation:       DefaultIndentation,
		ValueWidth:        DefaultValueWidth,
		ShowPositions:     true,
		ShowComments:      true,
		StringEscapeStyle: EscapeStyleCStyle,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// line is one row of the outline before alignment.
type line struct {
	depth  int
	label  string // node type, or a comment role
	kind   string // how the label is styled
	pos    string
	detail string
}

// printer collects the lines of one Format call.
type printer struct {
	*Formatter
	source []byte
	lines  []line
}

// Format writes the outline of root to w. source is the text the tree was
// built from; it is only needed for EscapeStyleOriginal and may be nil
// otherwise.
func (f *Formatter) Format(ctx context.Context, root *ast.Root, source []byte, w io.Writer) error {
	if root == nil {
		return nil
	}
	p := &printer{Formatter: f, source: source}

	p.add(0, string(root.Type()), "type", root.Pos, "")
	parents := ast.DefineParents(root)
	for _, doc := range root.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.node(doc, 1)
	}
	if f.ShowComments {
		// Comments no node claimed are printed at the end of the stream.
		for _, c := range root.Comments {
			if parents.Parent(c) == ast.Node(root) {
				p.comment(1, "comment", c)
			}
		}
	}

	return p.flush(w)
}

func (p *printer) add(depth int, label, kind string, pos ast.Position, detail string) {
	l := line{depth: depth, label: label, kind: kind, detail: detail}
	if p.ShowPositions {
		l.pos = fmt.Sprintf("%s-%s", pos.Start, pos.End)
	}
	p.lines = append(p.lines, l)
}

func (p *printer) comment(depth int, role string, c *ast.Comment) {
	p.add(depth, role, "comment", c.Pos, "#"+p.truncate(c.Value))
}

func (p *printer) node(n ast.Node, depth int) {
	if n == nil {
		p.lines = append(p.lines, line{depth: depth, label: "null", kind: "dim"})
		return
	}

	p.add(depth, string(n.Type()), "type", n.Position(), p.detail(n))

	if p.ShowComments {
		if l, ok := n.(ast.LeadingCommentable); ok {
			for _, c := range l.GetLeadingComments() {
				p.comment(depth+1, "leading", c)
			}
		}
		if cn, ok := n.(ast.ContentNode); ok {
			for _, c := range cn.Props().MiddleComments {
				p.comment(depth+1, "middle", c)
			}
		}
		if t, ok := n.(ast.TrailingCommentable); ok {
			for _, c := range t.GetTrailingComments() {
				p.comment(depth+1, "trailing", c)
			}
		}
	}

	if c, ok := n.(ast.Container); ok {
		for _, child := range c.Children() {
			p.node(child, depth+1)
		}
	}

	if p.ShowComments {
		if e, ok := n.(ast.EndCommentable); ok {
			for _, c := range e.GetEndComments() {
				p.comment(depth+1, "end", c)
			}
		}
	}
}

// detail renders the value and properties of n.
func (p *printer) detail(n ast.Node) string {
	var parts []string
	if cn, ok := n.(ast.ContentNode); ok {
		props := cn.Props()
		if props.Tag != nil {
			parts = append(parts, p.style("property", tagString(props.Tag)))
		}
		if props.Anchor != nil {
			parts = append(parts, p.style("property", "&"+props.Anchor.Value))
		}
	}

	switch v := n.(type) {
	case *ast.Alias:
		parts = append(parts, p.style("value", "*"+v.Value))
	case *ast.Plain:
		parts = append(parts, p.scalar(v, v.Value))
	case *ast.QuoteSingle:
		parts = append(parts, p.scalar(v, v.Value))
	case *ast.QuoteDouble:
		parts = append(parts, p.scalar(v, v.Value))
	case *ast.BlockLiteral:
		parts = append(parts, blockHeader(v.BlockValue), p.scalar(v, v.Value))
	case *ast.BlockFolded:
		parts = append(parts, blockHeader(v.BlockValue), p.scalar(v, v.Value))
	case *ast.Directive:
		parts = append(parts, p.style("value", strings.Join(append([]string{"%" + v.Name}, v.Parameters...), " ")))
	}
	return strings.Join(parts, " ")
}

// scalar quotes value, or prints the raw source covered by n (properties
// included) for EscapeStyleOriginal when the source is known.
func (p *printer) scalar(n ast.Node, value string) string {
	span := n.Position().Span()
	if p.StringEscapeStyle == EscapeStyleOriginal && span.End <= len(p.source) {
		return p.style("value", p.truncate(escapeLineBreaks(span.Text(p.source))))
	}
	return p.style("value", `"`+p.truncate(p.escapeString(value))+`"`)
}

func blockHeader(b ast.BlockValue) string {
	if b.Indent != nil {
		return fmt.Sprintf("chomping=%s indent=%d", b.Chomping, *b.Indent)
	}
	return fmt.Sprintf("chomping=%s", b.Chomping)
}

func tagString(t ast.Tag) string {
	switch t := t.(type) {
	case *ast.VerbatimTag:
		return "!<" + t.Value + ">"
	case *ast.ShorthandTag:
		return t.Handle + t.Suffix
	default:
		return "!"
	}
}

// truncate shortens s to the configured display width.
func (p *printer) truncate(s string) string {
	if p.ValueWidth <= 0 {
		return s
	}
	return runewidth.Truncate(s, p.ValueWidth, "…")
}

func (p *printer) style(kind, s string) string {
	if p.Styles == nil {
		return s
	}
	switch kind {
	case "type":
		return p.Styles.NodeType(s)
	case "value":
		return p.Styles.Value(s)
	case "property":
		return p.Styles.Property(s)
	case "comment":
		return p.Styles.Comment(s)
	case "dim":
		return p.Styles.Dim(s)
	}
	return s
}

// flush aligns the positions of all lines in one column and writes them.
func (p *printer) flush(w io.Writer) error {
	width := 0
	for _, l := range p.lines {
		width = max(width, l.depth*p.Indentation+runewidth.StringWidth(l.label))
	}

	var buf strings.Builder
	for _, l := range p.lines {
		indent := strings.Repeat(" ", l.depth*p.Indentation)
		buf.WriteString(indent)
		buf.WriteString(p.style(l.kind, l.label))

		if l.pos != "" || l.detail != "" {
			pad := width - len(indent) - runewidth.StringWidth(l.label) + MinimumSpacing
			buf.WriteString(strings.Repeat(" ", pad))
		}
		if l.pos != "" {
			buf.WriteString(p.style("dim", l.pos))
			if l.detail != "" {
				buf.WriteByte(' ')
			}
		}
		if l.kind == "comment" {
			buf.WriteString(p.style("comment", l.detail))
		} else {
			buf.WriteString(l.detail)
		}
		buf.WriteByte('\n')
	}

	_, err := io.WriteString(w, buf.String())
	return err
}
