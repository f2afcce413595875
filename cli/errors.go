package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/yamlunist/errors"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	formatter *errors.TextFormatter
}

// NewErrorRenderer creates a renderer with source content for context.
// source may be nil, in which case only messages are rendered.
func NewErrorRenderer(filename string, source []byte) *ErrorRenderer {
	opts := []errors.TextFormatterOption{errors.WithFilename(filename)}
	if source != nil {
		opts = append(opts, errors.WithSource(source))
	}
	return &ErrorRenderer{formatter: errors.NewTextFormatter(opts...)}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	message, excerpt, found := strings.Cut(r.formatter.Format(err), "\n\n")

	var buf strings.Builder
	buf.WriteString(errorStyle.Render(message))
	if !found {
		return buf.String()
	}
	buf.WriteString("\n\n")

	for _, line := range strings.SplitAfter(excerpt, "\n") {
		text := strings.TrimSuffix(line, "\n")
		if text == "" {
			continue
		}
		if strings.TrimSpace(text) == "^" {
			buf.WriteString(strings.TrimSuffix(text, "^"))
			buf.WriteString(errCaretStyle.Render("^"))
		} else {
			buf.WriteString("   ")
			buf.WriteString(errContextStyle.Render(strings.TrimPrefix(text, "   ")))
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}

// RenderAll formats multiple errors, separating them with blank lines.
func (r *ErrorRenderer) RenderAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(strings.TrimRight(r.Render(err), "\n"))

		if i < len(errs)-1 {
			buf.WriteString("\n\n")
		}
	}

	return buf.String()
}
