// Package cst describes the concrete syntax tree consumed by the transform
// package.
//
// The tree is produced by an external YAML parser that records every byte
// of the source: comments, document markers, properties and scalar styles.
// Nodes only carry byte ranges into the source text plus the few values the
// parser already decoded (tags, anchors, directive names). Trees can be built
// in Go or decoded from a YAML or JSON dump with Decode.
package cst

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Kind is the type tag of a CST node.
type Kind string

const (
	Alias        Kind = "ALIAS"
	BlockFolded  Kind = "BLOCK_FOLDED"
	BlockLiteral Kind = "BLOCK_LITERAL"
	Comment      Kind = "COMMENT"
	Directive    Kind = "DIRECTIVE"
	Document     Kind = "DOCUMENT"
	FlowMap      Kind = "FLOW_MAP"
	FlowSeq      Kind = "FLOW_SEQ"
	Map          Kind = "MAP"
	MapKey       Kind = "MAP_KEY"
	MapValue     Kind = "MAP_VALUE"
	Plain        Kind = "PLAIN"
	QuoteDouble  Kind = "QUOTE_DOUBLE"
	QuoteSingle  Kind = "QUOTE_SINGLE"
	Seq          Kind = "SEQ"
	SeqItem      Kind = "SEQ_ITEM"
)

// Kinds lists every kind the transform understands.
var Kinds = []Kind{
	Alias, BlockFolded, BlockLiteral, Comment, Directive, Document, FlowMap, FlowSeq,
	Map, MapKey, MapValue, Plain, QuoteDouble, QuoteSingle, Seq, SeqItem,
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool { return slices.Contains(Kinds, k) }

func (k Kind) String() string { return string(k) }

// Range is a half-open byte range [Start, End) in the source text.
type Range struct {
	Start int `yaml:"start" json:"start"`
	End   int `yaml:"end" json:"end"`
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Len returns the number of bytes covered by r.
func (r Range) Len() int { return r.End - r.Start }

// Text returns the part of text covered by r, clamped to the text bounds.
func (r Range) Text(text string) string {
	start, end := max(r.Start, 0), min(r.End, len(text))
	if start >= end {
		return ""
	}
	return text[start:end]
}

// Chomping values of block scalars as the parser records them.
const (
	ChompClip  = "CLIP"
	ChompKeep  = "KEEP"
	ChompStrip = "STRIP"
)

// Node is a CST node. Which fields are set depends on Type:
//
//   - every kind except DOCUMENT may carry Props, the ranges of the tag,
//     anchor and comment markers that precede the value;
//   - ALIAS, PLAIN, QUOTE_* and COMMENT use ValueRange for their text;
//   - BLOCK_* add Header (the indicator line), Chomping and BlockIndent;
//   - DIRECTIVE sets Name and Parameters;
//   - MAP and SEQ list their entries in Items, FLOW_* in Entries;
//   - MAP_KEY, MAP_VALUE and SEQ_ITEM wrap Node, and ValueRange starts at
//     the "?", ":" or "-" indicator;
//   - DOCUMENT lists Directives and Contents, and ValueRange covers the
//     content between the markers.
type Node struct {
	Type       Kind    `yaml:"type" json:"type"`
	Range      *Range  `yaml:"range,omitempty" json:"range,omitempty"`
	ValueRange *Range  `yaml:"valueRange,omitempty" json:"valueRange,omitempty"`
	Props      []Range `yaml:"props,omitempty" json:"props,omitempty"`

	// Tag and Anchor are the parsed properties. When they are missing the
	// transform parses them from the marker text.
	Tag    *Tag   `yaml:"tag,omitempty" json:"tag,omitempty"`
	Anchor string `yaml:"anchor,omitempty" json:"anchor,omitempty"`

	Header      *Range `yaml:"header,omitempty" json:"header,omitempty"`
	Chomping    string `yaml:"chomping,omitempty" json:"chomping,omitempty"`
	BlockIndent *int   `yaml:"blockIndent,omitempty" json:"blockIndent,omitempty"`

	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Parameters []string `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	Items   []*Node    `yaml:"items,omitempty" json:"items,omitempty"`
	Entries []FlowItem `yaml:"entries,omitempty" json:"entries,omitempty"`
	Node    *Node      `yaml:"node,omitempty" json:"node,omitempty"`

	Directives []*Node `yaml:"directives,omitempty" json:"directives,omitempty"`
	Contents   []*Node `yaml:"contents,omitempty" json:"contents,omitempty"`
}

// FlowItem is an entry of a flow collection: either a punctuation character
// ("{", "}", "[", "]", ",", "?" or ":") at Offset, or a Node.
type FlowItem struct {
	Char   string `yaml:"char,omitempty" json:"char,omitempty"`
	Offset int    `yaml:"offset,omitempty" json:"offset,omitempty"`
	Node   *Node  `yaml:"node,omitempty" json:"node,omitempty"`
}

// IsChar reports whether the item is the punctuation character c.
func (f FlowItem) IsChar(c byte) bool {
	return f.Node == nil && len(f.Char) == 1 && f.Char[0] == c
}

// Stream is the parse result of a YAML stream: one DOCUMENT node per
// document.
type Stream []*Node

// Children returns the nested nodes of n in source order.
func (n *Node) Children() []*Node {
	switch n.Type {
	case Document:
		return append(append([]*Node(nil), n.Directives...), n.Contents...)
	case MapKey, MapValue, SeqItem:
		if n.Node == nil {
			return nil
		}
		return []*Node{n.Node}
	case FlowMap, FlowSeq:
		var out []*Node
		for _, e := range n.Entries {
			if e.Node != nil {
				out = append(out, e.Node)
			}
		}
		return out
	}
	return n.Items
}

// Walk calls f for n and every nested node in source order, stopping early
// when f returns false for a node.
func Walk(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, f)
	}
}

// String renders a one-line summary used in debug output.
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(string(n.Type))
	if n.ValueRange != nil {
		b.WriteString(n.ValueRange.String())
	}
	if len(n.Props) > 0 {
		fmt.Fprintf(&b, " props=%v", n.Props)
	}
	return b.String()
}
