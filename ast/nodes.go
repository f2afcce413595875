package ast

// Alias represents a "*name" reference to an anchored node.
type Alias struct {
	Pos   Position `json:"position"`
	Value string   `json:"value"` // Anchor name without the "*"

	Content
	leadingComments
	trailingComments
}

func (n *Alias) Type() NodeType         { return TypeAlias }
func (n *Alias) Position() Position     { return n.Pos }
func (n *Alias) SetPosition(p Position) { n.Pos = p }

// Chomping is the block scalar chomping indicator.
type Chomping string

const (
	ChompClip  Chomping = "clip"  // no indicator: single final line break
	ChompKeep  Chomping = "keep"  // "+": keep all trailing line breaks
	ChompStrip Chomping = "strip" // "-": no final line break
)

// BlockValue holds the fields shared by literal and folded block scalars.
type BlockValue struct {
	Pos      Position `json:"position"`
	Chomping Chomping `json:"chomping"`
	// Indent is the explicit indentation indicator, or nil when the
	// indentation was detected from the content.
	Indent *int   `json:"indent"`
	Value  string `json:"value"`

	Content
	leadingComments
	// TrailingComments holds comments inside the scalar's range, which can
	// only appear on the header line:
	//
	//	key: | # here
	//	  text
	trailingComments
}

// BlockLiteral represents a "|" block scalar.
type BlockLiteral struct {
	BlockValue
}

func (n *BlockLiteral) Type() NodeType         { return TypeBlockLiteral }
func (n *BlockLiteral) Position() Position     { return n.Pos }
func (n *BlockLiteral) SetPosition(p Position) { n.Pos = p }

// BlockFolded represents a ">" block scalar.
type BlockFolded struct {
	BlockValue
}

func (n *BlockFolded) Type() NodeType         { return TypeBlockFolded }
func (n *BlockFolded) Position() Position     { return n.Pos }
func (n *BlockFolded) SetPosition(p Position) { n.Pos = p }

// Plain represents an unquoted flow scalar.
type Plain struct {
	Pos   Position `json:"position"`
	Value string   `json:"value"`

	Content
	leadingComments
	trailingComments
}

func (n *Plain) Type() NodeType         { return TypePlain }
func (n *Plain) Position() Position     { return n.Pos }
func (n *Plain) SetPosition(p Position) { n.Pos = p }

// QuoteSingle represents a single-quoted scalar. Value is unescaped.
type QuoteSingle struct {
	Pos   Position `json:"position"`
	Value string   `json:"value"`

	Content
	leadingComments
	trailingComments
}

func (n *QuoteSingle) Type() NodeType         { return TypeQuoteSingle }
func (n *QuoteSingle) Position() Position     { return n.Pos }
func (n *QuoteSingle) SetPosition(p Position) { n.Pos = p }

// QuoteDouble represents a double-quoted scalar. Value is unescaped.
type QuoteDouble struct {
	Pos   Position `json:"position"`
	Value string   `json:"value"`

	Content
	leadingComments
	trailingComments
}

func (n *QuoteDouble) Type() NodeType         { return TypeQuoteDouble }
func (n *QuoteDouble) Position() Position     { return n.Pos }
func (n *QuoteDouble) SetPosition(p Position) { n.Pos = p }

// Mapping represents a block mapping.
type Mapping struct {
	Pos   Position       `json:"position"`
	Items []*MappingItem `json:"-"`

	Content
	leadingComments
	endComments
}

func (n *Mapping) Type() NodeType         { return TypeMapping }
func (n *Mapping) Position() Position     { return n.Pos }
func (n *Mapping) SetPosition(p Position) { n.Pos = p }

func (n *Mapping) Children() []Node {
	nodes := make([]Node, len(n.Items))
	for i, item := range n.Items {
		nodes[i] = item
	}
	return nodes
}

// MappingItem groups one key and its value. Either may be nil:
// "? key" has no value and ": value" has no key.
type MappingItem struct {
	Pos   Position      `json:"position"`
	Key   *MappingKey   `json:"-"`
	Value *MappingValue `json:"-"`

	leadingComments
}

func (n *MappingItem) Type() NodeType     { return TypeMappingItem }
func (n *MappingItem) Position() Position { return n.Pos }
func (n *MappingItem) Children() []Node   { return pairChildren(n.Key, n.Value) }

// MappingKey represents the key half of a mapping entry. For an explicit
// key ("? key") the position starts at the indicator.
type MappingKey struct {
	Pos   Position `json:"position"`
	Value Node     `json:"-"`

	trailingComments
	endComments
}

func (n *MappingKey) Type() NodeType     { return TypeMappingKey }
func (n *MappingKey) Position() Position { return n.Pos }
func (n *MappingKey) Children() []Node   { return []Node{n.Value} }

// MappingValue represents the value half of a mapping entry, starting at
// the ":" indicator.
type MappingValue struct {
	Pos   Position `json:"position"`
	Value Node     `json:"-"`

	trailingComments
	endComments
}

func (n *MappingValue) Type() NodeType     { return TypeMappingValue }
func (n *MappingValue) Position() Position { return n.Pos }
func (n *MappingValue) Children() []Node   { return []Node{n.Value} }

// Sequence represents a block sequence.
type Sequence struct {
	Pos   Position        `json:"position"`
	Items []*SequenceItem `json:"-"`

	Content
	leadingComments
	endComments
}

func (n *Sequence) Type() NodeType         { return TypeSequence }
func (n *Sequence) Position() Position     { return n.Pos }
func (n *Sequence) SetPosition(p Position) { n.Pos = p }

func (n *Sequence) Children() []Node {
	nodes := make([]Node, len(n.Items))
	for i, item := range n.Items {
		nodes[i] = item
	}
	return nodes
}

// SequenceItem represents one "- value" entry. An entry without a value
// still spans the "-" indicator.
type SequenceItem struct {
	Pos   Position `json:"position"`
	Value Node     `json:"-"`

	leadingComments
	trailingComments
	endComments
}

func (n *SequenceItem) Type() NodeType     { return TypeSequenceItem }
func (n *SequenceItem) Position() Position { return n.Pos }
func (n *SequenceItem) Children() []Node   { return []Node{n.Value} }

// FlowMapping represents a "{ ... }" collection.
type FlowMapping struct {
	Pos   Position           `json:"position"`
	Items []*FlowMappingItem `json:"-"`

	Content
	leadingComments
	trailingComments
	endComments
}

func (n *FlowMapping) Type() NodeType         { return TypeFlowMapping }
func (n *FlowMapping) Position() Position     { return n.Pos }
func (n *FlowMapping) SetPosition(p Position) { n.Pos = p }

func (n *FlowMapping) Children() []Node {
	nodes := make([]Node, len(n.Items))
	for i, item := range n.Items {
		nodes[i] = item
	}
	return nodes
}

// FlowMappingItem is a key/value pair inside a flow collection. It is used
// for every entry of a flow mapping and for "key: value" entries of a flow
// sequence.
type FlowMappingItem struct {
	Pos   Position      `json:"position"`
	Key   *MappingKey   `json:"-"`
	Value *MappingValue `json:"-"`

	leadingComments
}

func (n *FlowMappingItem) Type() NodeType     { return TypeFlowMappingItem }
func (n *FlowMappingItem) Position() Position { return n.Pos }
func (n *FlowMappingItem) Children() []Node   { return pairChildren(n.Key, n.Value) }

// FlowSequence represents a "[ ... ]" collection. Items are content nodes
// or *FlowMappingItem for single-pair entries.
type FlowSequence struct {
	Pos   Position `json:"position"`
	Items []Node   `json:"-"`

	Content
	leadingComments
	trailingComments
	endComments
}

func (n *FlowSequence) Type() NodeType         { return TypeFlowSequence }
func (n *FlowSequence) Position() Position     { return n.Pos }
func (n *FlowSequence) SetPosition(p Position) { n.Pos = p }
func (n *FlowSequence) Children() []Node       { return append([]Node(nil), n.Items...) }

// Directive represents a "%NAME parameters..." line.
type Directive struct {
	Pos        Position `json:"position"`
	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`

	leadingComments
	trailingComments
}

func (n *Directive) Type() NodeType     { return TypeDirective }
func (n *Directive) Position() Position { return n.Pos }

// DocumentHead holds the directives and the "---" marker of a document.
// Its position is empty when the document has neither.
type DocumentHead struct {
	Pos        Position     `json:"position"`
	Directives []*Directive `json:"-"`

	trailingComments
	endComments
}

func (n *DocumentHead) Type() NodeType     { return TypeDocumentHead }
func (n *DocumentHead) Position() Position { return n.Pos }

func (n *DocumentHead) Children() []Node {
	nodes := make([]Node, len(n.Directives))
	for i, d := range n.Directives {
		nodes[i] = d
	}
	return nodes
}

// DocumentBody holds the content of a document and the "..." marker.
type DocumentBody struct {
	Pos     Position `json:"position"`
	Content Node     `json:"-"` // nil for an empty document

	endComments
}

func (n *DocumentBody) Type() NodeType     { return TypeDocumentBody }
func (n *DocumentBody) Position() Position { return n.Pos }

func (n *DocumentBody) Children() []Node {
	if n.Content == nil {
		return []Node{}
	}
	return []Node{n.Content}
}

// Document represents one document of a YAML stream.
type Document struct {
	Pos  Position      `json:"position"`
	Head *DocumentHead `json:"-"`
	Body *DocumentBody `json:"-"`

	// TrailingComments holds a comment on the same line after "...".
	trailingComments
}

func (n *Document) Type() NodeType     { return TypeDocument }
func (n *Document) Position() Position { return n.Pos }
func (n *Document) Children() []Node   { return []Node{n.Head, n.Body} }

// pairChildren keeps absent halves as nil entries so both positions of the
// pair are always present.
func pairChildren(key *MappingKey, value *MappingValue) []Node {
	nodes := make([]Node, 2)
	if key != nil {
		nodes[0] = key
	}
	if value != nil {
		nodes[1] = value
	}
	return nodes
}
