package ast

import "encoding/json"

// JSON encoding follows the unist layout: every node is an object with a
// "type" discriminator and a "position", containers add a "children" array
// and the node specific fields sit next to them. Absent children encode as
// null. Parent links are never encoded.

// MarshalJSON encodes a nil list as an empty array.
func (l CommentList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]*Comment(l))
}

type header struct {
	Type NodeType `json:"type"`
}

type containerHeader struct {
	Type     NodeType `json:"type"`
	Children []Node   `json:"children"`
}

func (c *Comment) MarshalJSON() ([]byte, error) {
	type fields Comment
	return json.Marshal(struct {
		header
		*fields
	}{header{c.Type()}, (*fields)(c)})
}

func (a *Anchor) MarshalJSON() ([]byte, error) {
	type fields Anchor
	return json.Marshal(struct {
		header
		*fields
	}{header{a.Type()}, (*fields)(a)})
}

func (t *VerbatimTag) MarshalJSON() ([]byte, error) {
	type fields VerbatimTag
	return json.Marshal(struct {
		header
		*fields
	}{header{t.Type()}, (*fields)(t)})
}

func (t *ShorthandTag) MarshalJSON() ([]byte, error) {
	type fields ShorthandTag
	return json.Marshal(struct {
		header
		*fields
	}{header{t.Type()}, (*fields)(t)})
}

func (t *NonSpecificTag) MarshalJSON() ([]byte, error) {
	type fields NonSpecificTag
	return json.Marshal(struct {
		header
		*fields
	}{header{t.Type()}, (*fields)(t)})
}

func (n *Alias) MarshalJSON() ([]byte, error) {
	type fields Alias
	return json.Marshal(struct {
		header
		*fields
	}{header{n.Type()}, (*fields)(n)})
}

func (n *BlockLiteral) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		*BlockValue
	}{header{n.Type()}, &n.BlockValue})
}

func (n *BlockFolded) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		header
		*BlockValue
	}{header{n.Type()}, &n.BlockValue})
}

func (n *Plain) MarshalJSON() ([]byte, error) {
	type fields Plain
	return json.Marshal(struct {
		header
		*fields
	}{header{n.Type()}, (*fields)(n)})
}

func (n *QuoteSingle) MarshalJSON() ([]byte, error) {
	type fields QuoteSingle
	return json.Marshal(struct {
		header
		*fields
	}{header{n.Type()}, (*fields)(n)})
}

func (n *QuoteDouble) MarshalJSON() ([]byte, error) {
	type fields QuoteDouble
	return json.Marshal(struct {
		header
		*fields
	}{header{n.Type()}, (*fields)(n)})
}

func (n *Mapping) MarshalJSON() ([]byte, error) {
	type fields Mapping
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *MappingItem) MarshalJSON() ([]byte, error) {
	type fields MappingItem
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *MappingKey) MarshalJSON() ([]byte, error) {
	type fields MappingKey
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *MappingValue) MarshalJSON() ([]byte, error) {
	type fields MappingValue
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *Sequence) MarshalJSON() ([]byte, error) {
	type fields Sequence
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *SequenceItem) MarshalJSON() ([]byte, error) {
	type fields SequenceItem
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *FlowMapping) MarshalJSON() ([]byte, error) {
	type fields FlowMapping
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *FlowMappingItem) MarshalJSON() ([]byte, error) {
	type fields FlowMappingItem
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *FlowSequence) MarshalJSON() ([]byte, error) {
	type fields FlowSequence
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *Directive) MarshalJSON() ([]byte, error) {
	type fields Directive
	params := n.Parameters
	if params == nil {
		params = []string{}
	}
	return json.Marshal(struct {
		header
		*fields
		Parameters []string `json:"parameters"`
	}{header{n.Type()}, (*fields)(n), params})
}

func (n *DocumentHead) MarshalJSON() ([]byte, error) {
	type fields DocumentHead
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *DocumentBody) MarshalJSON() ([]byte, error) {
	type fields DocumentBody
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (n *Document) MarshalJSON() ([]byte, error) {
	type fields Document
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{n.Type(), n.Children()}, (*fields)(n)})
}

func (r *Root) MarshalJSON() ([]byte, error) {
	type fields Root
	return json.Marshal(struct {
		containerHeader
		*fields
	}{containerHeader{r.Type(), r.Children()}, (*fields)(r)})
}
