// Package locate maps byte offsets of a source text to line and column
// numbers.
package locate

import (
	"sort"
	"unicode/utf8"
)

// Index holds the line starts of a text. It is safe for concurrent use once
// built.
type Index struct {
	text        string
	lineStarts  []int
	runeColumns bool
}

// Option configures an Index.
type Option func(*Index)

// WithRuneColumns counts columns in runes instead of bytes, for display to
// humans. The default byte columns match the offsets a parser reports.
func WithRuneColumns() Option {
	return func(i *Index) { i.runeColumns = true }
}

// New indexes text. Lines are separated by "\n"; a "\r" before it belongs
// to the line it ends.
func New(text string, opts ...Option) *Index {
	idx := &Index{text: text, lineStarts: []int{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			idx.lineStarts = append(idx.lineStarts, i+1)
		}
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Lines returns the number of lines. An empty text has one line.
func (i *Index) Lines() int { return len(i.lineStarts) }

// Locate returns the 1-based line and column of offset. Offsets outside the
// text are clamped to it, so len(text) addresses the position after the
// last byte.
func (i *Index) Locate(offset int) (line, column int) {
	offset = max(0, min(offset, len(i.text)))
	// Largest line start <= offset.
	n := sort.Search(len(i.lineStarts), func(k int) bool { return i.lineStarts[k] > offset }) - 1
	start := i.lineStarts[n]
	if i.runeColumns {
		return n + 1, utf8.RuneCountInString(i.text[start:offset]) + 1
	}
	return n + 1, offset - start + 1
}

// Offset is the inverse of Locate. The second result is false when line or
// column does not address a position inside the text.
func (i *Index) Offset(line, column int) (int, bool) {
	if line < 1 || line > len(i.lineStarts) || column < 1 {
		return 0, false
	}
	start := i.lineStarts[line-1]
	end := len(i.text)
	if line < len(i.lineStarts) {
		end = i.lineStarts[line] - 1
	}
	if !i.runeColumns {
		offset := start + column - 1
		if offset > end {
			return 0, false
		}
		return offset, true
	}
	offset := start
	for col := 1; col < column; col++ {
		if offset >= end {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(i.text[offset:])
		offset += size
	}
	return offset, true
}

// Line returns the text of a 1-based line without its line break, or ""
// when the line does not exist.
func (i *Index) Line(line int) string {
	if line < 1 || line > len(i.lineStarts) {
		return ""
	}
	start := i.lineStarts[line-1]
	end := len(i.text)
	if line < len(i.lineStarts) {
		end = i.lineStarts[line] - 1
	}
	if end > start && i.text[end-1] == '\r' {
		end--
	}
	return i.text[start:end]
}
