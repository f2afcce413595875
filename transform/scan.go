package transform

import "github.com/robinvdvleuten/yamlunist/cst"

// Document markers are found by scanning the raw text next to the value
// range the parser reports for a document.

// scanDirectivesEnd looks for a "---" marker that ends text[:end], allowing
// trailing white space. The marker must start a line. It returns the
// marker's offset.
func scanDirectivesEnd(text string, end int) (int, bool) {
	i := min(end, len(text))
	for i > 0 && isWhite(text[i-1]) {
		i--
	}
	if i < 3 || text[i-3:i] != "---" {
		return 0, false
	}
	start := i - 3
	if start > 0 && !isBreak(text[start-1]) {
		return 0, false
	}
	return start, true
}

// scanDocumentEnd looks for a "..." marker at text[start:]. The marker must
// be followed by the end of the text, white space or a line break. When a
// comment follows the marker on the same line its range is returned too.
func scanDocumentEnd(text string, start int) (end int, comment *cst.Range, ok bool) {
	if start < 0 || start+3 > len(text) || text[start:start+3] != "..." {
		return 0, nil, false
	}
	end = start + 3
	if end < len(text) && !isWhite(text[end]) {
		return 0, nil, false
	}

	i := end
	for i < len(text) && isBlank(text[i]) {
		i++
	}
	if i < len(text) && text[i] == '#' && i > end {
		j := i
		for j < len(text) && !isBreak(text[j]) {
			j++
		}
		comment = &cst.Range{Start: i, End: j}
	}
	return end, comment, true
}

// lineEnd returns the offset of the line break ending the line that holds
// offset, or len(text).
func lineEnd(text string, offset int) int {
	for offset < len(text) && !isBreak(text[offset]) {
		offset++
	}
	return offset
}

// nextLine returns the offset of the line after the one holding offset, or
// len(text).
func nextLine(text string, offset int) int {
	i := lineEnd(text, offset)
	if i < len(text) && text[i] == '\r' {
		i++
	}
	if i < len(text) && text[i] == '\n' {
		i++
	}
	return i
}

// lineIndent returns the number of leading spaces of the line that holds
// offset.
func lineIndent(text string, offset int) int {
	start := min(offset, len(text))
	for start > 0 && !isBreak(text[start-1]) {
		start--
	}
	n := 0
	for start+n < len(text) && text[start+n] == ' ' {
		n++
	}
	return n
}

// onlyTrivia reports whether text[start:end] holds nothing but white space
// and comments.
func onlyTrivia(text string, start, end int) bool {
	end = min(end, len(text))
	for i := max(start, 0); i < end; i++ {
		switch {
		case isWhite(text[i]):
		case text[i] == '#':
			i = lineEnd(text, i) - 1
		default:
			return false
		}
	}
	return true
}

func isBlank(b byte) bool { return b == ' ' || b == '\t' }
func isBreak(b byte) bool { return b == '\n' || b == '\r' }
func isWhite(b byte) bool { return isBlank(b) || isBreak(b) }
