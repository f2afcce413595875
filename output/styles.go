// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for the CLI. Styling degrades to
// plain text when the writer is not a color terminal.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Plain returns Styles that never emit escape sequences, for files and
// pipes.
func Plain(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii)),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// NodeType returns a styled node type name (blue + bold).
func (s *Styles) NodeType(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("4")).
		Bold().
		String()
}

// Value returns a styled scalar value (green).
func (s *Styles) Value(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Property returns a styled tag or anchor (magenta).
func (s *Styles) Property(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Comment returns a styled comment (faint + italic).
func (s *Styles) Comment(text string) string {
	return s.output.String(text).
		Faint().
		Italic().
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
