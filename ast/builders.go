package ast

// Constructors for building YAML syntax trees from code. The transform
// package uses them for every node it creates; tests and tools can use them
// to assemble expected trees.
//
// Constructors only assign fields. Positions are not validated and comment
// lists start empty.

// NewComment creates a comment. The value excludes the leading "#".
//
// Example:
//
//	c := ast.NewComment(pos, " note")
func NewComment(pos Position, value string) *Comment {
	return &Comment{Pos: pos, Value: value}
}

// NewAnchor creates an anchor property. The value excludes the leading "&".
func NewAnchor(pos Position, value string) *Anchor {
	return &Anchor{Pos: pos, Value: value}
}

// NewVerbatimTag creates a "!<uri>" tag holding uri.
func NewVerbatimTag(pos Position, uri string) *VerbatimTag {
	return &VerbatimTag{Pos: pos, Value: uri}
}

// NewShorthandTag creates a tag such as "!!str" (handle "!!", suffix "str").
func NewShorthandTag(pos Position, handle, suffix string) *ShorthandTag {
	return &ShorthandTag{Pos: pos, Handle: handle, Suffix: suffix}
}

// NewNonSpecificTag creates a lone "!" tag.
func NewNonSpecificTag(pos Position) *NonSpecificTag {
	return &NonSpecificTag{Pos: pos}
}

// NewAlias creates a "*name" alias. The name excludes the "*".
func NewAlias(pos Position, name string) *Alias {
	return &Alias{Pos: pos, Value: name}
}

// NewPlain creates a plain scalar with an already folded value.
func NewPlain(pos Position, value string) *Plain {
	return &Plain{Pos: pos, Value: value}
}

// NewQuoteSingle creates a single-quoted scalar with an unescaped value.
func NewQuoteSingle(pos Position, value string) *QuoteSingle {
	return &QuoteSingle{Pos: pos, Value: value}
}

// NewQuoteDouble creates a double-quoted scalar with an unescaped value.
func NewQuoteDouble(pos Position, value string) *QuoteDouble {
	return &QuoteDouble{Pos: pos, Value: value}
}

// NewBlockLiteral creates a "|" block scalar. Pass a nil indent when the
// header has no indentation indicator.
//
// Example:
//
//	lit := ast.NewBlockLiteral(pos, ast.ChompKeep, nil, "line\n\n")
func NewBlockLiteral(pos Position, chomping Chomping, indent *int, value string) *BlockLiteral {
	return &BlockLiteral{BlockValue{Pos: pos, Chomping: chomping, Indent: indent, Value: value}}
}

// NewBlockFolded creates a ">" block scalar.
func NewBlockFolded(pos Position, chomping Chomping, indent *int, value string) *BlockFolded {
	return &BlockFolded{BlockValue{Pos: pos, Chomping: chomping, Indent: indent, Value: value}}
}

// NewMapping creates a block mapping.
func NewMapping(pos Position, items ...*MappingItem) *Mapping {
	return &Mapping{Pos: pos, Items: items}
}

// NewMappingItem creates a key/value pair. Either half may be nil.
func NewMappingItem(pos Position, key *MappingKey, value *MappingValue) *MappingItem {
	return &MappingItem{Pos: pos, Key: key, Value: value}
}

// NewMappingKey wraps a key node, which may be nil.
func NewMappingKey(pos Position, value Node) *MappingKey {
	return &MappingKey{Pos: pos, Value: value}
}

// NewMappingValue wraps a value node, which may be nil.
func NewMappingValue(pos Position, value Node) *MappingValue {
	return &MappingValue{Pos: pos, Value: value}
}

// NewSequence creates a block sequence.
func NewSequence(pos Position, items ...*SequenceItem) *Sequence {
	return &Sequence{Pos: pos, Items: items}
}

// NewSequenceItem creates a "- value" entry. value may be nil.
func NewSequenceItem(pos Position, value Node) *SequenceItem {
	return &SequenceItem{Pos: pos, Value: value}
}

// NewFlowMapping creates a "{ ... }" collection.
func NewFlowMapping(pos Position, items ...*FlowMappingItem) *FlowMapping {
	return &FlowMapping{Pos: pos, Items: items}
}

// NewFlowMappingItem creates a pair inside a flow collection.
func NewFlowMappingItem(pos Position, key *MappingKey, value *MappingValue) *FlowMappingItem {
	return &FlowMappingItem{Pos: pos, Key: key, Value: value}
}

// NewFlowSequence creates a "[ ... ]" collection. Items must be content
// nodes or *FlowMappingItem.
func NewFlowSequence(pos Position, items ...Node) *FlowSequence {
	return &FlowSequence{Pos: pos, Items: items}
}

// NewDirective creates a "%NAME params..." directive.
//
// Example:
//
//	d := ast.NewDirective(pos, "TAG", "!e!", "tag:example.com,2000:")
func NewDirective(pos Position, name string, params ...string) *Directive {
	return &Directive{Pos: pos, Name: name, Parameters: params}
}

// NewDocumentHead creates a document head.
func NewDocumentHead(pos Position, directives ...*Directive) *DocumentHead {
	return &DocumentHead{Pos: pos, Directives: directives}
}

// NewDocumentBody creates a document body. content is nil for an empty
// document.
func NewDocumentBody(pos Position, content Node) *DocumentBody {
	return &DocumentBody{Pos: pos, Content: content}
}

// NewDocument creates a document spanning from the head start to the body
// end.
func NewDocument(head *DocumentHead, body *DocumentBody) *Document {
	return &Document{
		Pos:  Position{Start: head.Pos.Start, End: body.Pos.End},
		Head: head,
		Body: body,
	}
}

// NewRoot creates the root of a stream. comments is the complete comment
// list in source order.
func NewRoot(pos Position, documents []*Document, comments []*Comment) *Root {
	return &Root{Pos: pos, Documents: documents, Comments: comments}
}
