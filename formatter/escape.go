package formatter

import (
	"strings"
)

// StringEscapeStyle controls how scalar values are printed in the outline.
type StringEscapeStyle int

const (
	// EscapeStyleNone outputs values without escape sequences.
	// Newlines and tabs become their literal characters (multi-line output).
	EscapeStyleNone StringEscapeStyle = iota
	// EscapeStyleCStyle outputs values with C-style escape sequences.
	// Newlines become \n, tabs become \t, quotes become \", backslashes become \\.
	EscapeStyleCStyle
	// EscapeStyleOriginal prints the source text of the scalar, quotes and
	// escapes as written, instead of the decoded value.
	// Falls back to CStyle if the source is unavailable.
	EscapeStyleOriginal
)

// escapeString escapes a decoded value using the formatter's escape style.
func (p *printer) escapeString(s string) string {
	switch p.StringEscapeStyle {
	case EscapeStyleNone:
		return s
	default:
		return escapeCStyle(s)
	}
}

var lineBreaks = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// escapeLineBreaks keeps raw source text on one line without touching its
// own quoting.
func escapeLineBreaks(s string) string {
	return lineBreaks.Replace(s)
}

// escapeCStyle escapes special characters using C-style escape sequences.
func escapeCStyle(s string) string {
	// Quick check if escaping is needed
	needsEscape := false
	for _, c := range s {
		if c == '"' || c == '\\' || c == '\n' || c == '\t' || c == '\r' {
			needsEscape = true
			break
		}
	}

	if !needsEscape {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 10)

	for _, c := range s {
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '\r':
			buf.WriteString(`\r`)
		default:
			buf.WriteRune(c)
		}
	}

	return buf.String()
}
