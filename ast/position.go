package ast

import "fmt"

// Point represents a single location in the source text.
type Point struct {
	Offset int `json:"offset"` // Byte offset (0-indexed)
	Line   int `json:"line"`   // Line number (1-indexed)
	Column int `json:"column"` // Column number (1-indexed)
}

// Position represents the range a node occupies in the source text.
// Start is inclusive, End is exclusive.
type Position struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Span represents a raw byte range in the source text.
type Span struct {
	Start int // Starting byte offset (inclusive)
	End   int // Ending byte offset (exclusive)
}

// IsZero returns true if this is an uninitialized span.
func (s Span) IsZero() bool {
	return s.Start == 0 && s.End == 0
}

// Text extracts the source text for this span.
// Returns empty string if span is invalid or zero.
func (s Span) Text(source []byte) string {
	if s.IsZero() || s.Start < 0 || s.End <= s.Start || s.End > len(source) {
		return ""
	}
	return string(source[s.Start:s.End])
}

// Span returns the byte range covered by the position.
func (p Position) Span() Span {
	return Span{Start: p.Start.Offset, End: p.End.Offset}
}

// IsEmpty reports whether the position covers zero bytes.
func (p Position) IsEmpty() bool {
	return p.Start.Offset == p.End.Offset
}

// Contains reports whether other lies completely inside p.
func (p Position) Contains(other Position) bool {
	return p.Start.Offset <= other.Start.Offset && other.End.Offset <= p.End.Offset
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// GoString returns a Go-syntax representation of the point.
func (p Point) GoString() string {
	return fmt.Sprintf("Point{Offset: %d, Line: %d, Column: %d}", p.Offset, p.Line, p.Column)
}

// String returns the position as "line:col-line:col".
func (p Position) String() string {
	return fmt.Sprintf("%s-%s", p.Start, p.End)
}
