// Package ast declares the types used to represent YAML syntax trees.
//
// The tree follows the unist convention: every node carries a type
// discriminator and a position with start and end points, and container
// nodes expose their children in source order. Trees are normally produced
// by the transform package from a concrete syntax tree, but they can also be
// constructed programmatically with the New* builders.
//
// Nodes that carry no semantic value (comments, document markers, tags and
// anchors) keep their own positions so that tooling such as formatters and
// linters can reproduce the source layout.
package ast

// NodeType is the discriminator of a node.
type NodeType string

const (
	TypeAlias           NodeType = "alias"
	TypeAnchor          NodeType = "anchor"
	TypeComment         NodeType = "comment"
	TypeVerbatimTag     NodeType = "verbatimTag"
	TypeShorthandTag    NodeType = "shorthandTag"
	TypeNonSpecificTag  NodeType = "nonSpecificTag"
	TypeBlockLiteral    NodeType = "blockLiteral"
	TypeBlockFolded     NodeType = "blockFolded"
	TypePlain           NodeType = "plain"
	TypeQuoteSingle     NodeType = "quoteSingle"
	TypeQuoteDouble     NodeType = "quoteDouble"
	TypeMapping         NodeType = "mapping"
	TypeMappingItem     NodeType = "mappingItem"
	TypeMappingKey      NodeType = "mappingKey"
	TypeMappingValue    NodeType = "mappingValue"
	TypeSequence        NodeType = "sequence"
	TypeSequenceItem    NodeType = "sequenceItem"
	TypeFlowMapping     NodeType = "flowMapping"
	TypeFlowMappingItem NodeType = "flowMappingItem"
	TypeFlowSequence    NodeType = "flowSequence"
	TypeDirective       NodeType = "directive"
	TypeDocumentHead    NodeType = "documentHead"
	TypeDocumentBody    NodeType = "documentBody"
	TypeDocument        NodeType = "document"
	TypeRoot            NodeType = "root"
)

// Node is the interface implemented by all tree nodes.
//
// A nil Node stands for an absent value, for example the value of "key:"
// or of an empty sequence entry "-".
type Node interface {
	Type() NodeType
	Position() Position
}

// Container is implemented by nodes that own child nodes.
// Children are returned in source order and may contain nil entries for
// absent values.
type Container interface {
	Node
	Children() []Node
}

// ContentNode is implemented by value nodes that can carry a tag, an anchor
// and comments between those properties and the value.
type ContentNode interface {
	Node
	Props() *Content
	SetPosition(Position)
}

// LeadingCommentable is implemented by nodes that accept comments on the
// lines before them.
type LeadingCommentable interface {
	Node
	AddLeadingComments(...*Comment)
	GetLeadingComments() []*Comment
}

// TrailingCommentable is implemented by nodes that accept comments on the
// same line after them.
type TrailingCommentable interface {
	Node
	AddTrailingComments(...*Comment)
	GetTrailingComments() []*Comment
}

// EndCommentable is implemented by nodes that accept comments after their
// last child. A document head is the exception: the comments above its
// "---" marker are end comments too, so they may start before the head.
type EndCommentable interface {
	Node
	AddEndComments(...*Comment)
	GetEndComments() []*Comment
}

// Root is the top-level node of a YAML stream.
type Root struct {
	Pos       Position    `json:"position"`
	Documents []*Document `json:"-"`
	// Comments lists every comment of the stream in source order, whether or
	// not it is also attached to a node.
	Comments CommentList `json:"comments"`
}

func (r *Root) Type() NodeType     { return TypeRoot }
func (r *Root) Position() Position { return r.Pos }

func (r *Root) Children() []Node {
	nodes := make([]Node, len(r.Documents))
	for i, d := range r.Documents {
		nodes[i] = d
	}
	return nodes
}
