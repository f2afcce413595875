package transform

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/robinvdvleuten/yamlunist/ast"
)

// foldFlow decodes the text of a flow scalar. Line breaks fold into a
// single space, or into n-1 newlines for n consecutive breaks, and the white
// space around them is dropped. quote selects the escape rule: '\'' for
// doubled single quotes, '"' for backslash escapes, 0 for plain scalars.
func foldFlow(s string, quote byte) string {
	if quote == 0 && strings.IndexAny(s, "\r\n") < 0 {
		return s
	}
	out := make([]byte, 0, len(s))
	// keep protects escaped white space from the trimming before a fold.
	keep := 0
	for i := 0; i < len(s); {
		ch := s[i]
		switch {
		case ch == '\'' && quote == '\'' && i+1 < len(s) && s[i+1] == '\'':
			out = append(out, '\'')
			i += 2
			keep = len(out)
		case ch == '\\' && quote == '"':
			out, i = unescape(out, s, i)
			keep = len(out)
		case isBreak(ch):
			for len(out) > keep && isBlank(out[len(out)-1]) {
				out = out[:len(out)-1]
			}
			out, i = fold(out, s, i)
		default:
			out = append(out, ch)
			i++
		}
	}
	return string(out)
}

// fold consumes the line breaks starting at s[i] together with the
// indentation of the following lines.
func fold(out []byte, s string, i int) ([]byte, int) {
	breaks := 0
	for i < len(s) && isBreak(s[i]) {
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		i++
		breaks++
		for i < len(s) && isBlank(s[i]) {
			i++
		}
	}
	if breaks == 1 {
		return append(out, ' '), i
	}
	for ; breaks > 1; breaks-- {
		out = append(out, '\n')
	}
	return out, i
}

var simpleEscapes = map[byte]string{
	'0':  "\x00",
	'a':  "\a",
	'b':  "\b",
	't':  "\t",
	'\t': "\t",
	'n':  "\n",
	'v':  "\v",
	'f':  "\f",
	'r':  "\r",
	'e':  "\x1b",
	' ':  " ",
	'"':  "\"",
	'/':  "/",
	'\\': "\\",
	'N':  "\u0085",
	'_':  "\u00a0",
	'L':  "\u2028",
	'P':  "\u2029",
}

var hexEscapes = map[byte]int{'x': 2, 'u': 4, 'U': 8}

// unescape decodes the escape sequence at s[i], which holds a backslash.
// Unknown or truncated sequences are kept as written.
func unescape(out []byte, s string, i int) ([]byte, int) {
	if i+1 >= len(s) {
		return append(out, '\\'), i + 1
	}
	e := s[i+1]
	if isBreak(e) {
		// An escaped line break joins the lines without a space.
		i += 2
		if e == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		for i < len(s) && isBlank(s[i]) {
			i++
		}
		return out, i
	}
	if r, ok := simpleEscapes[e]; ok {
		return append(out, r...), i + 2
	}
	if n, ok := hexEscapes[e]; ok && i+2+n <= len(s) {
		if v, err := strconv.ParseUint(s[i+2:i+2+n], 16, 32); err == nil && utf8.ValidRune(rune(v)) {
			return utf8.AppendRune(out, rune(v)), i + 2 + n
		}
	}
	return append(out, '\\', e), i + 2
}

// decodeBlock decodes the content lines of a block scalar. indent is the
// column width of the content indentation, or -1 to detect it from the first
// non-empty line.
func decodeBlock(raw string, indent int, folded bool, chomping ast.Chomping) string {
	lines := strings.Split(raw, "\n")
	endsWithBreak := strings.HasSuffix(raw, "\n")
	if endsWithBreak {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if indent < 0 {
		indent = 0
		for _, line := range lines {
			if strings.TrimLeft(line, " ") != "" {
				indent = len(line) - len(strings.TrimLeft(line, " "))
				break
			}
		}
	}

	// Strip the indentation. Lines that hold nothing beyond it are empty.
	content := make([]string, len(lines))
	empty := make([]bool, len(lines))
	for i, line := range lines {
		if len(line) <= indent && strings.TrimLeft(line, " \t") == "" {
			empty[i] = true
			continue
		}
		n := 0
		for n < indent && n < len(line) && line[n] == ' ' {
			n++
		}
		content[i] = line[n:]
	}

	last := len(lines) - 1
	for last >= 0 && empty[last] {
		last--
	}
	trailing := len(lines) - 1 - last

	var b strings.Builder
	if last >= 0 {
		pending := 0
		prevMore := false
		for i := 0; i <= last; i++ {
			if empty[i] {
				pending++
				continue
			}
			line := content[i]
			more := line != "" && isBlank(line[0])
			switch {
			case b.Len() == 0 && i == pending:
				// Leading empty lines are kept as they are.
				b.WriteString(strings.Repeat("\n", pending))
			case !folded || more || prevMore:
				b.WriteString(strings.Repeat("\n", pending+1))
			case pending == 0:
				b.WriteByte(' ')
			default:
				b.WriteString(strings.Repeat("\n", pending))
			}
			b.WriteString(line)
			pending = 0
			prevMore = more
		}
	}

	// Line breaks after the last content line.
	breaks := trailing
	if endsWithBreak {
		breaks++
	}
	if last < 0 {
		breaks = max(breaks-1, 0)
	}

	switch chomping {
	case ast.ChompStrip:
	case ast.ChompKeep:
		b.WriteString(strings.Repeat("\n", breaks))
	default:
		if last >= 0 && breaks > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
