// Package errors provides error formatting for transformation failures.
// It separates error formatting from domain logic, allowing errors to be
// rendered in multiple formats (text, JSON) for different consumers.
//
// The package defines a Formatter interface and provides two implementations:
//   - TextFormatter: a message followed by a source excerpt with a caret
//   - JSONFormatter: structured JSON for tools and editors
//
// Errors are located through one of two optional methods: GetOffset() int,
// a byte offset into the source, or GetPosition() ast.Position.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
	"github.com/robinvdvleuten/yamlunist/locate"
	"github.com/robinvdvleuten/yamlunist/transform"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

type offsetter interface{ GetOffset() int }

type positioner interface{ GetPosition() ast.Position }

// locationOf finds the 1-based line and column of err in source. ok is
// false when err carries no usable location.
func locationOf(err error, idx *locate.Index) (offset, line, column int, ok bool) {
	var p positioner
	if stderrors.As(err, &p) {
		pos := p.GetPosition()
		return pos.Start.Offset, pos.Start.Line, pos.Start.Column, pos.Start.Line > 0
	}
	var o offsetter
	if idx != nil && stderrors.As(err, &o) && o.GetOffset() >= 0 {
		offset = o.GetOffset()
		line, column = idx.Locate(offset)
		return offset, line, column, true
	}
	return 0, 0, 0, false
}

// TextFormatter formats errors for command-line output.
type TextFormatter struct {
	filename string
	source   string
	index    *locate.Index
	context  int
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithSource sets the source text the error offsets point into.
func WithSource(source []byte) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.source = string(source)
		tf.index = locate.New(tf.source)
	}
}

// WithFilename sets the name printed in front of located messages.
func WithFilename(name string) TextFormatterOption {
	return func(tf *TextFormatter) { tf.filename = name }
}

// WithContextLines sets how many source lines are shown before the
// offending line. The default is 2.
func WithContextLines(n int) TextFormatterOption {
	return func(tf *TextFormatter) { tf.context = max(n, 0) }
}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter(opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{context: 2}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format renders err as "file:line:col: message", followed by the
// surrounding source lines when the source is known.
func (tf *TextFormatter) Format(err error) string {
	_, line, column, ok := locationOf(err, tf.index)
	if !ok {
		if tf.filename != "" {
			return fmt.Sprintf("%s: %s", tf.filename, err.Error())
		}
		return err.Error()
	}

	var buf strings.Builder
	if tf.filename != "" {
		fmt.Fprintf(&buf, "%s:", tf.filename)
	}
	fmt.Fprintf(&buf, "%d:%d: %s", line, column, err.Error())
	if tf.index == nil {
		return buf.String()
	}

	buf.WriteString("\n\n")
	tf.writeExcerpt(&buf, line, column)
	return buf.String()
}

// writeExcerpt writes the lines around line with a caret under column.
func (tf *TextFormatter) writeExcerpt(buf *strings.Builder, line, column int) {
	first := max(line-tf.context, 1)
	last := min(line+1, tf.index.Lines())
	for n := first; n <= last; n++ {
		text := tf.index.Line(n)
		if n > line && text == "" {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(text)
		buf.WriteByte('\n')

		if n != line {
			continue
		}
		// The caret sits under the display column, not the byte column.
		offset, ok := tf.index.Offset(line, 1)
		if !ok {
			continue
		}
		prefix := tf.source[offset:min(offset+column-1, offset+len(text))]
		buf.WriteString("   ")
		buf.WriteString(strings.Repeat(" ", runewidth.StringWidth(prefix)))
		buf.WriteString("^\n")
	}
}

// FormatAll formats multiple errors, separating them with blank lines.
func (tf *TextFormatter) FormatAll(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, strings.TrimRight(tf.Format(err), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct {
	filename string
	index    *locate.Index
}

// NewJSONFormatter creates a new JSON formatter. source may be nil, in
// which case offsets are not resolved to lines.
func NewJSONFormatter(filename string, source []byte) *JSONFormatter {
	jf := &JSONFormatter{filename: filename}
	if source != nil {
		jf.index = locate.New(string(source))
	}
	return jf
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string         `json:"type"`
	Message  string         `json:"message"`
	Position *PositionJSON  `json:"position,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
}

// PositionJSON represents a file position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename,omitempty"`
	Offset   int    `json:"offset"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Details: map[string]any{},
	}

	if offset, line, column, ok := locationOf(err, jf.index); ok {
		errJSON.Position = &PositionJSON{
			Filename: jf.filename,
			Offset:   offset,
			Line:     line,
			Column:   column,
		}
	}

	var (
		contract *transform.ContractError
		unknown  *transform.UnknownKindError
		problem  cst.Problem
	)
	switch {
	case stderrors.As(err, &contract):
		errJSON.Details["kind"] = string(contract.Kind)
	case stderrors.As(err, &unknown):
		errJSON.Details["kind"] = string(unknown.Kind)
	case stderrors.As(err, &problem):
		errJSON.Details["kind"] = string(problem.Kind)
	}
	if len(errJSON.Details) == 0 {
		errJSON.Details = nil
	}
	return errJSON
}
