package cst

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

const dumpYAML = `
# key: !x [1]
- type: DOCUMENT
  valueRange: {start: 0, end: 11}
  contents:
    - type: MAP
      valueRange: {start: 0, end: 11}
      items:
        - type: PLAIN
          valueRange: {start: 0, end: 3}
        - type: MAP_VALUE
          valueRange: {start: 3, end: 11}
          node:
            type: FLOW_SEQ
            valueRange: {start: 8, end: 11}
            props:
              - {start: 5, end: 7}
            tag: {handle: "!", suffix: "x"}
            entries:
              - {char: "[", offset: 8}
              - node: {type: PLAIN, valueRange: {start: 9, end: 10}}
              - {char: "]", offset: 10}
`

func TestDecode(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		stream, err := Decode([]byte(dumpYAML))
		assert.NoError(t, err)
		assert.Equal(t, 1, len(stream))

		doc := stream[0]
		assert.Equal(t, Document, doc.Type)
		assert.Equal(t, &Range{Start: 0, End: 11}, doc.ValueRange)

		mapping := doc.Contents[0]
		assert.Equal(t, Map, mapping.Type)
		assert.Equal(t, 2, len(mapping.Items))

		flow := mapping.Items[1].Node
		assert.Equal(t, FlowSeq, flow.Type)
		assert.Equal(t, []Range{{Start: 5, End: 7}}, flow.Props)
		assert.Equal(t, &Tag{Handle: "!", Suffix: "x"}, flow.Tag)
		assert.Equal(t, 3, len(flow.Entries))
		assert.True(t, flow.Entries[0].IsChar('['))
		assert.Equal(t, Plain, flow.Entries[1].Node.Type)
		assert.Equal(t, 10, flow.Entries[2].Offset)
	})

	t.Run("JSON", func(t *testing.T) {
		stream, err := Decode([]byte(`[{"type":"DOCUMENT","valueRange":{"start":0,"end":3},"contents":[{"type":"PLAIN","valueRange":{"start":0,"end":3}}]}]`))
		assert.NoError(t, err)
		assert.Equal(t, Plain, stream[0].Contents[0].Type)
	})

	t.Run("SingleDocument", func(t *testing.T) {
		stream, err := Decode([]byte("type: DOCUMENT\nvalueRange: {start: 0, end: 0}\n"))
		assert.NoError(t, err)
		assert.Equal(t, 1, len(stream))
	})

	t.Run("UnknownKindIsKept", func(t *testing.T) {
		stream, err := Decode([]byte("- type: DOCUMENT\n  contents:\n    - type: SPARKLE\n"))
		assert.NoError(t, err)
		assert.Equal(t, Kind("SPARKLE"), stream[0].Contents[0].Type)
		assert.False(t, stream[0].Contents[0].Type.Valid())
	})

	errorTests := []struct {
		name  string
		input string
	}{
		{"Empty", "[]"},
		{"NotADocument", "- type: PLAIN\n"},
		{"UnknownField", "- type: DOCUMENT\n  colour: red\n"},
		{"Garbage", "- [unterminated"},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	stream, err := Decode([]byte(dumpYAML))
	assert.NoError(t, err)
	data, err := Encode(stream)
	assert.NoError(t, err)
	again, err := Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, stream, again)
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		raw  string
		want Tag
	}{
		{"!", Tag{Handle: "!"}},
		{"!local", Tag{Handle: "!", Suffix: "local"}},
		{"!!str", Tag{Handle: "!!", Suffix: "str"}},
		{"!e!tag%21", Tag{Handle: "!e!", Suffix: "tag%21"}},
		{"!<tag:yaml.org,2002:str>", Tag{Verbatim: "tag:yaml.org,2002:str"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseTag(tt.raw)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("NotATag", func(t *testing.T) {
		_, ok := ParseTag("&anchor")
		assert.False(t, ok)
	})

	t.Run("Shapes", func(t *testing.T) {
		bang, _ := ParseTag("!")
		assert.True(t, bang.IsNonSpecific())
		verbatim, _ := ParseTag("!<x>")
		assert.True(t, verbatim.IsVerbatim())
		assert.False(t, verbatim.IsNonSpecific())
	})
}

func TestParseAnchor(t *testing.T) {
	name, ok := ParseAnchor("&base")
	assert.True(t, ok)
	assert.Equal(t, "base", name)

	_, ok = ParseAnchor("*base")
	assert.False(t, ok)
}

func TestRangeText(t *testing.T) {
	text := "hello"
	assert.Equal(t, "ell", Range{Start: 1, End: 4}.Text(text))
	assert.Equal(t, "lo", Range{Start: 3, End: 99}.Text(text))
	assert.Equal(t, "", Range{Start: 4, End: 2}.Text(text))
}

func TestWalk(t *testing.T) {
	stream, err := Decode([]byte(dumpYAML))
	assert.NoError(t, err)

	var kinds []Kind
	Walk(stream[0], func(n *Node) bool {
		kinds = append(kinds, n.Type)
		return true
	})
	assert.Equal(t, []Kind{Document, Map, Plain, MapValue, FlowSeq, Plain}, kinds)
}

func TestCheck(t *testing.T) {
	text := "a: ![x]"

	t.Run("Valid", func(t *testing.T) {
		stream, err := Decode([]byte(dumpYAML))
		assert.NoError(t, err)
		assert.Equal(t, 0, len(Check(stream, "key: !x [1]")))
	})

	t.Run("Problems", func(t *testing.T) {
		stream := Stream{{
			Type:       Document,
			ValueRange: &Range{Start: 0, End: 40},
			Contents: []*Node{{
				Type:       "BOGUS",
				ValueRange: &Range{Start: 3, End: 4},
				Props:      []Range{{Start: 0, End: 1}},
			}},
		}}
		problems := Check(stream, text)
		assert.Equal(t, 3, len(problems))
		assert.Equal(t, 0, problems[0].GetOffset())
		assert.Contains(t, problems[0].Error(), "outside source")
		assert.Contains(t, problems[1].Error(), "unknown node kind")
		assert.Contains(t, problems[2].Error(), `starts with 'a'`)
	})
}
