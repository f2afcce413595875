package loader

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/yamlunist/ast"
)

func TestVerify(t *testing.T) {
	load := func(t *testing.T) (*Result, *ast.MappingItem) {
		t.Helper()
		result, err := New().Load(context.Background(), filepath.Join("testdata", "mapping.yaml"))
		assert.NoError(t, err)
		return result, result.Root.Documents[0].Body.Content.(*ast.Mapping).Items[0]
	}

	tests := []struct {
		name     string
		breakIt  func(r *Result, item *ast.MappingItem)
		expected []string
	}{
		{
			name:    "Valid",
			breakIt: func(*Result, *ast.MappingItem) {},
		},
		{
			name: "CommentAttachedTwice",
			breakIt: func(r *Result, item *ast.MappingItem) {
				item.Key.AddTrailingComments(r.Root.Comments[0])
			},
			expected: []string{"comment 1:12: attached 2 times"},
		},
		{
			name: "CommentNotListed",
			breakIt: func(r *Result, _ *ast.MappingItem) {
				r.Root.Comments = nil
			},
			expected: []string{"comment 1:12: attached but missing from the root comment list"},
		},
		{
			name: "CommentsOutOfOrder",
			breakIt: func(r *Result, _ *ast.MappingItem) {
				r.Root.Comments = append(r.Root.Comments, ast.NewComment(ast.Position{
					Start: ast.Point{Offset: 0, Line: 1, Column: 1},
					End:   ast.Point{Offset: 1, Line: 1, Column: 2},
				}, ""))
			},
			expected: []string{"comment 1:1: comment list out of source order"},
		},
		{
			name: "PointDisagreesWithIndex",
			breakIt: func(_ *Result, item *ast.MappingItem) {
				item.Value.Value.(*ast.Plain).Pos.End.Column = 99
			},
			expected: []string{"plain 1:6: end offset 10 is at 1:11, not 1:99"},
		},
		{
			name: "HeadAfterBody",
			breakIt: func(r *Result, _ *ast.MappingItem) {
				r.Root.Documents[0].Head.Pos.End = ast.Point{Offset: 5, Line: 1, Column: 6}
			},
			expected: []string{"document 1:1: head ends at 1:6 after body starts at 1:1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, item := load(t)
			tt.breakIt(result, item)

			var got []string
			for _, err := range result.Verify() {
				got = append(got, err.Error())
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInvariantErrorPosition(t *testing.T) {
	pos := ast.Position{Start: ast.Point{Offset: 3, Line: 2, Column: 1}}
	err := &InvariantError{Node: ast.NewPlain(pos, "x"), Message: "broken"}
	assert.Equal(t, pos, err.GetPosition())
	assert.Equal(t, "plain 2:1: broken", err.Error())
}
