package ast

// Trivia covers everything that carries no value: comments and the node
// properties (tags and anchors). They keep their own positions so the source
// layout can be reconstructed.

// Comment represents a "#" comment. Value excludes the leading "#".
type Comment struct {
	Pos   Position `json:"position"`
	Value string   `json:"value"`
}

func (c *Comment) Type() NodeType     { return TypeComment }
func (c *Comment) Position() Position { return c.Pos }

// Anchor represents a "&name" node property.
type Anchor struct {
	Pos   Position `json:"position"`
	Value string   `json:"value"`
}

func (a *Anchor) Type() NodeType     { return TypeAnchor }
func (a *Anchor) Position() Position { return a.Pos }

// Tag is implemented by the three tag forms.
type Tag interface {
	Node
	tag()
}

// VerbatimTag represents "!<uri>".
type VerbatimTag struct {
	Pos   Position `json:"position"`
	Value string   `json:"value"`
}

func (t *VerbatimTag) Type() NodeType     { return TypeVerbatimTag }
func (t *VerbatimTag) Position() Position { return t.Pos }
func (t *VerbatimTag) tag()               {}

// ShorthandTag represents "!suffix", "!!suffix" or "!handle!suffix".
type ShorthandTag struct {
	Pos    Position `json:"position"`
	Handle string   `json:"handle"`
	Suffix string   `json:"suffix"`
}

func (t *ShorthandTag) Type() NodeType     { return TypeShorthandTag }
func (t *ShorthandTag) Position() Position { return t.Pos }
func (t *ShorthandTag) tag()               {}

// NonSpecificTag represents a lone "!".
type NonSpecificTag struct {
	Pos Position `json:"position"`
}

func (t *NonSpecificTag) Type() NodeType     { return TypeNonSpecificTag }
func (t *NonSpecificTag) Position() Position { return t.Pos }
func (t *NonSpecificTag) tag()               {}

// CommentList is a list of comments in source order. It encodes to an
// empty JSON array rather than null when empty.
type CommentList []*Comment

// Content holds the properties shared by all value nodes.
type Content struct {
	Tag    Tag     `json:"tag"`
	Anchor *Anchor `json:"anchor"`
	// MiddleComments are comments between the properties and the value:
	//
	//	!!str # here
	//	&anchor # and here
	//	value
	MiddleComments CommentList `json:"middleComments"`
}

// Props returns the content properties for modification.
func (c *Content) Props() *Content { return c }

type leadingComments struct {
	LeadingComments CommentList `json:"leadingComments"`
}

func (l *leadingComments) AddLeadingComments(c ...*Comment) {
	l.LeadingComments = append(l.LeadingComments, c...)
}

func (l *leadingComments) GetLeadingComments() []*Comment { return l.LeadingComments }

type trailingComments struct {
	TrailingComments CommentList `json:"trailingComments"`
}

func (t *trailingComments) AddTrailingComments(c ...*Comment) {
	t.TrailingComments = append(t.TrailingComments, c...)
}

func (t *trailingComments) GetTrailingComments() []*Comment { return t.TrailingComments }

type endComments struct {
	EndComments CommentList `json:"endComments"`
}

func (e *endComments) AddEndComments(c ...*Comment) {
	e.EndComments = append(e.EndComments, c...)
}

func (e *endComments) GetEndComments() []*Comment { return e.EndComments }

// Properties returns the trivia owned by n (tag, anchor and every attached
// comment) in source order of their lists. It does not include children.
func Properties(n Node) []Node {
	var props []Node
	if cn, ok := n.(ContentNode); ok {
		c := cn.Props()
		if c.Tag != nil {
			props = append(props, c.Tag)
		}
		if c.Anchor != nil {
			props = append(props, c.Anchor)
		}
	}
	for _, c := range Comments(n) {
		props = append(props, c)
	}
	return props
}

// Comments returns every comment attached to n: leading, middle, trailing
// and end comments, in that order.
func Comments(n Node) []*Comment {
	var comments []*Comment
	if l, ok := n.(LeadingCommentable); ok {
		comments = append(comments, l.GetLeadingComments()...)
	}
	if cn, ok := n.(ContentNode); ok {
		comments = append(comments, cn.Props().MiddleComments...)
	}
	if t, ok := n.(TrailingCommentable); ok {
		comments = append(comments, t.GetTrailingComments()...)
	}
	if e, ok := n.(EndCommentable); ok {
		comments = append(comments, e.GetEndComments()...)
	}
	return comments
}
