package transform

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
)

func TestAttachLeadingComment(t *testing.T) {
	text := "# lead\nkey: v\n"
	root := run(t, text, document(rng(0, 14),
		comment(0, 6),
		&cst.Node{Type: cst.Map, ValueRange: rng(7, 13), Items: []*cst.Node{
			plain(7, 10),
			{Type: cst.MapValue, ValueRange: rng(10, 13), Node: plain(12, 13)},
		}},
	))

	mapping := content(t, root, 0).(*ast.Mapping)
	// The outermost node starting after the comment takes it.
	assert.Equal(t, 1, len(mapping.LeadingComments))
	assert.Equal(t, " lead", mapping.LeadingComments[0].Value)
	assert.Equal(t, 0, len(mapping.Items[0].LeadingComments))
	assert.Equal(t, span(text, 7, 13), root.Documents[0].Body.Pos)
}

func TestAttachEndComment(t *testing.T) {
	text := "a:\n  - x\n  # end\nb: 1\n"
	root := run(t, text, document(rng(0, 22),
		&cst.Node{Type: cst.Map, ValueRange: rng(0, 21), Items: []*cst.Node{
			plain(0, 1),
			{Type: cst.MapValue, ValueRange: rng(1, 8), Node: &cst.Node{
				Type: cst.Seq, ValueRange: rng(5, 16), Items: []*cst.Node{
					{Type: cst.SeqItem, ValueRange: rng(5, 8), Node: plain(7, 8)},
					comment(11, 16),
				},
			}},
			plain(17, 18),
			{Type: cst.MapValue, ValueRange: rng(18, 21), Node: plain(20, 21)},
		}},
	))

	mapping := content(t, root, 0).(*ast.Mapping)
	assert.Equal(t, 2, len(mapping.Items))

	// Indented deeper than "b", so it closes the value of "a".
	first := mapping.Items[0].Value
	assert.Equal(t, 1, len(first.EndComments))
	assert.Equal(t, " end", first.EndComments[0].Value)
	assert.Equal(t, 0, len(mapping.Items[1].LeadingComments))
}

func TestAttachTrailingComment(t *testing.T) {
	text := "[a] # c"
	root := run(t, text, document(rng(0, 7),
		&cst.Node{Type: cst.FlowSeq, ValueRange: rng(0, 3), Entries: []cst.FlowItem{
			char("[", 0), entry(plain(1, 2)), char("]", 2),
		}},
		comment(4, 7),
	))

	flow := content(t, root, 0).(*ast.FlowSequence)
	assert.Equal(t, 1, len(flow.TrailingComments))
	assert.Equal(t, 0, len(flow.Items[0].(*ast.Plain).TrailingComments))
}

func TestAttachDocumentFallback(t *testing.T) {
	t.Run("Body", func(t *testing.T) {
		text := "foo\n# tail\n"
		root := run(t, text, document(rng(0, 11), plain(0, 3), comment(4, 10)))

		body := root.Documents[0].Body
		assert.Equal(t, 1, len(body.EndComments))
		assert.Equal(t, " tail", body.EndComments[0].Value)
	})

	t.Run("Head", func(t *testing.T) {
		text := "# c\n---\nfoo\n"
		root := run(t, text, document(rng(8, 12), comment(0, 3), plain(8, 11)))

		doc := root.Documents[0]
		assert.Equal(t, span(text, 4, 7), doc.Head.Pos)
		assert.Equal(t, 1, len(doc.Head.EndComments))
		assert.Equal(t, 0, len(doc.Body.EndComments))
		// The head keeps the span of its marker; the comment lies before it.
		assert.Equal(t, span(text, 0, 3), doc.Head.EndComments[0].Pos)
		assert.True(t, doc.Head.EndComments[0].Pos.End.Offset <= doc.Head.Pos.Start.Offset)
	})

	t.Run("OnlyComment", func(t *testing.T) {
		text := "# only\n"
		root := run(t, text, document(rng(0, 7), comment(0, 6)))

		doc := root.Documents[0]
		assert.Zero(t, doc.Body.Content)
		assert.Equal(t, 1, len(doc.Body.EndComments))
	})
}

func TestAttachHeadComments(t *testing.T) {
	text := "%YAML 1.2\n# a\n%TAG ! !x\n# b\n---\n"
	root := run(t, text, &cst.Node{
		Type:       cst.Document,
		ValueRange: rng(32, 32),
		Directives: []*cst.Node{
			{Type: cst.Directive, ValueRange: rng(0, 9)},
			comment(10, 13),
			{Type: cst.Directive, ValueRange: rng(14, 23)},
			comment(24, 27),
		},
	})

	head := root.Documents[0].Head
	assert.Equal(t, 2, len(head.Directives))
	assert.Equal(t, 2, len(root.Comments))
	// "# b" closes the head during the transform, "# a" leads "%TAG".
	assert.Equal(t, 1, len(head.EndComments))
	assert.Equal(t, " b", head.EndComments[0].Value)
	assert.Equal(t, 1, len(head.Directives[1].LeadingComments))
	assert.Equal(t, " a", head.Directives[1].LeadingComments[0].Value)
}

func TestAttachDisabled(t *testing.T) {
	text := "foo\n# tail\n"
	stream := cst.Stream{document(rng(0, 11), plain(0, 3), comment(4, 10))}

	root, err := Transform(stream, text, nil, WithCommentAttachment(false))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(root.Comments))
	assert.Equal(t, 0, len(root.Documents[0].Body.EndComments))
}

func TestAttachDisabledDirectiveComments(t *testing.T) {
	text := "%YAML 1.2\n# after\n---\n"
	stream := cst.Stream{{
		Type:       cst.Document,
		ValueRange: rng(22, 22),
		Directives: []*cst.Node{
			{Type: cst.Directive, ValueRange: rng(0, 9)},
			comment(10, 17),
		},
	}}

	t.Run("Enabled", func(t *testing.T) {
		root, err := Transform(stream, text, nil)
		assert.NoError(t, err)
		head := root.Documents[0].Head
		assert.Equal(t, 1, len(head.EndComments))
		assert.Equal(t, " after", head.EndComments[0].Value)
		assert.Equal(t, 1, len(root.Comments))
	})

	t.Run("Disabled", func(t *testing.T) {
		root, err := Transform(stream, text, nil, WithCommentAttachment(false))
		assert.NoError(t, err)
		assert.Equal(t, 0, len(root.Documents[0].Head.EndComments))
		assert.Equal(t, 1, len(root.Comments))
		assert.Equal(t, " after", root.Comments[0].Value)
	})
}

func TestDocumentOf(t *testing.T) {
	text := "a\n---\nb\n# c\n"
	root := run(t, text,
		document(rng(0, 2), plain(0, 1)),
		document(rng(6, 12), plain(6, 7), comment(8, 11)),
	)

	assert.Equal(t, 0, len(root.Documents[0].Body.EndComments))
	assert.Equal(t, 1, len(root.Documents[1].Body.EndComments))
	assert.Equal(t, root.Documents[1], documentOf(root, root.Comments[0]))
}
