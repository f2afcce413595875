package ast

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func pos(start, end int) Position {
	return Position{
		Start: Point{Offset: start, Line: 1, Column: start + 1},
		End:   Point{Offset: end, Line: 1, Column: end + 1},
	}
}

// sampleTree builds the tree for "key: !!str &a value # c\n- \n".
func sampleTree() (*Root, *Plain, *Comment) {
	value := NewPlain(pos(16, 21), "value")
	value.Tag = NewShorthandTag(pos(5, 10), "!!", "str")
	value.Anchor = NewAnchor(pos(11, 13), "a")
	value.Pos.Start = value.Tag.Position().Start

	comment := NewComment(pos(22, 25), " c")
	mv := NewMappingValue(pos(3, 21), value)
	mv.AddTrailingComments(comment)

	key := NewPlain(pos(0, 3), "key")
	item := NewMappingItem(pos(0, 21), NewMappingKey(pos(0, 3), key), mv)
	mapping := NewMapping(pos(0, 21), item)

	head := NewDocumentHead(pos(0, 0))
	body := NewDocumentBody(pos(0, 21), mapping)
	doc := NewDocument(head, body)
	return NewRoot(pos(0, 26), []*Document{doc}, []*Comment{comment}), value, comment
}

func TestNodeTypes(t *testing.T) {
	tests := []struct {
		node Node
		want NodeType
	}{
		{&Alias{}, TypeAlias},
		{&Anchor{}, TypeAnchor},
		{&Comment{}, TypeComment},
		{&VerbatimTag{}, TypeVerbatimTag},
		{&ShorthandTag{}, TypeShorthandTag},
		{&NonSpecificTag{}, TypeNonSpecificTag},
		{&BlockLiteral{}, TypeBlockLiteral},
		{&BlockFolded{}, TypeBlockFolded},
		{&Plain{}, TypePlain},
		{&QuoteSingle{}, TypeQuoteSingle},
		{&QuoteDouble{}, TypeQuoteDouble},
		{&Mapping{}, TypeMapping},
		{&MappingItem{}, TypeMappingItem},
		{&MappingKey{}, TypeMappingKey},
		{&MappingValue{}, TypeMappingValue},
		{&Sequence{}, TypeSequence},
		{&SequenceItem{}, TypeSequenceItem},
		{&FlowMapping{}, TypeFlowMapping},
		{&FlowMappingItem{}, TypeFlowMappingItem},
		{&FlowSequence{}, TypeFlowSequence},
		{&Directive{}, TypeDirective},
		{&DocumentHead{}, TypeDocumentHead},
		{&DocumentBody{}, TypeDocumentBody},
		{&Document{}, TypeDocument},
		{&Root{}, TypeRoot},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Type())
		})
	}
}

func TestCapabilities(t *testing.T) {
	t.Run("ContentNodes", func(t *testing.T) {
		for _, n := range []Node{&Alias{}, &BlockLiteral{}, &BlockFolded{}, &Plain{}, &QuoteSingle{},
			&QuoteDouble{}, &Mapping{}, &Sequence{}, &FlowMapping{}, &FlowSequence{}} {
			_, ok := n.(ContentNode)
			assert.True(t, ok, "%s should be a content node", n.Type())
		}
		for _, n := range []Node{&MappingItem{}, &SequenceItem{}, &Directive{}, &Document{}, &Comment{}} {
			_, ok := n.(ContentNode)
			assert.False(t, ok, "%s should not be a content node", n.Type())
		}
	})

	t.Run("EndComments", func(t *testing.T) {
		for _, n := range []Node{&Mapping{}, &Sequence{}, &SequenceItem{}, &MappingKey{}, &MappingValue{},
			&FlowMapping{}, &FlowSequence{}, &DocumentHead{}, &DocumentBody{}} {
			_, ok := n.(EndCommentable)
			assert.True(t, ok, "%s should accept end comments", n.Type())
		}
		_, ok := Node(&Plain{}).(EndCommentable)
		assert.False(t, ok)
	})

	t.Run("TrailingComments", func(t *testing.T) {
		_, ok := Node(&Mapping{}).(TrailingCommentable)
		assert.False(t, ok, "block mappings end on a later line than their comments")
		_, ok = Node(&FlowSequence{}).(TrailingCommentable)
		assert.True(t, ok)
	})
}

func TestChildren(t *testing.T) {
	t.Run("MappingItemKeepsAbsentHalves", func(t *testing.T) {
		item := NewMappingItem(pos(0, 1), nil, NewMappingValue(pos(0, 1), nil))
		children := item.Children()
		assert.Equal(t, 2, len(children))
		assert.True(t, children[0] == nil, "absent key should be a nil interface")
		assert.Equal(t, TypeMappingValue, children[1].Type())
	})

	t.Run("EmptyDocumentBody", func(t *testing.T) {
		body := NewDocumentBody(pos(3, 3), nil)
		assert.Equal(t, 0, len(body.Children()))
	})

	t.Run("DocumentSpansHeadAndBody", func(t *testing.T) {
		doc := NewDocument(NewDocumentHead(pos(0, 3)), NewDocumentBody(pos(4, 11), nil))
		assert.Equal(t, 0, doc.Pos.Start.Offset)
		assert.Equal(t, 11, doc.Pos.End.Offset)
	})
}

func TestPropertiesAndComments(t *testing.T) {
	_, value, _ := sampleTree()
	middle := NewComment(pos(14, 15), "m")
	value.MiddleComments = append(value.MiddleComments, middle)
	leading := NewComment(pos(0, 1), "l")
	value.AddLeadingComments(leading)

	props := Properties(value)
	assert.Equal(t, 4, len(props))
	assert.Equal(t, TypeShorthandTag, props[0].Type())
	assert.Equal(t, TypeAnchor, props[1].Type())
	assert.Equal(t, []*Comment{leading, middle}, Comments(value))
}

func TestMarshalJSON(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		data, err := json.Marshal(NewPlain(pos(0, 3), "foo"))
		assert.NoError(t, err)
		assert.Equal(t, `{"type":"plain","position":{"start":{"offset":0,"line":1,"column":1},"end":{"offset":3,"line":1,"column":4}},"value":"foo","tag":null,"anchor":null,"middleComments":[],"leadingComments":[],"trailingComments":[]}`, string(data))
	})

	t.Run("SequenceItemWithoutValue", func(t *testing.T) {
		data, err := json.Marshal(NewSequenceItem(pos(0, 1), nil))
		assert.NoError(t, err)
		var got map[string]any
		assert.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "sequenceItem", got["type"])
		assert.Equal[any](t, []any{nil}, got["children"])
	})

	t.Run("Tags", func(t *testing.T) {
		tests := []struct {
			name string
			tag  Tag
			want string
		}{
			{"Verbatim", NewVerbatimTag(pos(0, 1), "tag:yaml.org,2002:str"), `{"type":"verbatimTag","position":{"start":{"offset":0,"line":1,"column":1},"end":{"offset":1,"line":1,"column":2}},"value":"tag:yaml.org,2002:str"}`},
			{"Shorthand", NewShorthandTag(pos(0, 1), "!!", "str"), `{"type":"shorthandTag","position":{"start":{"offset":0,"line":1,"column":1},"end":{"offset":1,"line":1,"column":2}},"handle":"!!","suffix":"str"}`},
			{"NonSpecific", NewNonSpecificTag(pos(0, 1)), `{"type":"nonSpecificTag","position":{"start":{"offset":0,"line":1,"column":1},"end":{"offset":1,"line":1,"column":2}}}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := json.Marshal(tt.tag)
				assert.NoError(t, err)
				assert.Equal(t, tt.want, string(data))
			})
		}
	})

	t.Run("Tree", func(t *testing.T) {
		root, _, _ := sampleTree()
		data, err := json.Marshal(root)
		assert.NoError(t, err)

		var got struct {
			Type     string `json:"type"`
			Comments []struct {
				Value string `json:"value"`
			} `json:"comments"`
			Children []struct {
				Type     string            `json:"type"`
				Children []json.RawMessage `json:"children"`
			} `json:"children"`
		}
		assert.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "root", got.Type)
		assert.Equal(t, 1, len(got.Comments))
		assert.Equal(t, " c", got.Comments[0].Value)
		assert.Equal(t, 1, len(got.Children))
		assert.Equal(t, "document", got.Children[0].Type)
		assert.Equal(t, 2, len(got.Children[0].Children))
	})
}

func TestInspect(t *testing.T) {
	root, _, _ := sampleTree()

	t.Run("Children", func(t *testing.T) {
		var types []NodeType
		Inspect(root, func(n Node) bool {
			types = append(types, n.Type())
			return true
		})
		assert.Equal(t, []NodeType{
			TypeRoot, TypeDocument, TypeDocumentHead, TypeDocumentBody, TypeMapping,
			TypeMappingItem, TypeMappingKey, TypePlain, TypeMappingValue, TypePlain,
		}, types)
	})

	t.Run("SkipSubtree", func(t *testing.T) {
		count := 0
		Inspect(root, func(n Node) bool {
			count++
			return n.Type() != TypeMapping
		})
		assert.Equal(t, 5, count)
	})

	t.Run("WithProperties", func(t *testing.T) {
		var types []NodeType
		InspectAll(root, func(n Node) bool {
			types = append(types, n.Type())
			return true
		})
		assert.Equal(t, 13, len(types))
		assert.Equal(t, TypeComment, types[9])
	})
}

func TestDefineParents(t *testing.T) {
	root, value, comment := sampleTree()
	parents := DefineParents(root)

	assert.True(t, parents.Parent(root) == nil, "root has no parent")
	mv := root.Documents[0].Body.Content.(*Mapping).Items[0].Value
	assert.Equal(t, Node(mv), parents.Parent(value))
	assert.Equal(t, Node(mv), parents.Parent(comment))
	assert.Equal(t, Node(value), parents.Parent(value.Tag))

	ancestors := parents.Ancestors(value)
	assert.Equal(t, 6, len(ancestors))
	assert.Equal(t, Node(root), ancestors[len(ancestors)-1])

	t.Run("UnattachedComments", func(t *testing.T) {
		loose := NewComment(pos(30, 31), "x")
		root.Comments = append(root.Comments, loose)
		parents := DefineParents(root)
		assert.Equal(t, Node(root), parents.Parent(loose))
	})
}
