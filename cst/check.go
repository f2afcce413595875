package cst

import "fmt"

// Problem is an inconsistency between a CST and its source text.
type Problem struct {
	Offset  int
	Kind    Kind
	Message string
}

func (p Problem) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", p.Kind, p.Offset, p.Message)
}

// GetOffset returns the source offset the problem refers to.
func (p Problem) GetOffset() int { return p.Offset }

// Check reports every range that falls outside text or is inverted, every
// unknown kind and every property marker that does not start with one of
// "!", "&" or "#". A stream that passes Check can still violate the
// structural rules the transform enforces.
func Check(stream Stream, text string) []Problem {
	var problems []Problem
	report := func(n *Node, offset int, format string, args ...any) {
		problems = append(problems, Problem{Offset: offset, Kind: n.Type, Message: fmt.Sprintf(format, args...)})
	}
	checkRange := func(n *Node, name string, r *Range) {
		if r == nil {
			return
		}
		if r.Start < 0 || r.End > len(text) || r.Start > r.End {
			report(n, r.Start, "%s %s outside source of %d bytes", name, r, len(text))
		}
	}

	for _, doc := range stream {
		Walk(doc, func(n *Node) bool {
			if !n.Type.Valid() {
				report(n, offsetOf(n), "unknown node kind")
			}
			checkRange(n, "range", n.Range)
			checkRange(n, "valueRange", n.ValueRange)
			checkRange(n, "header", n.Header)
			for i := range n.Props {
				p := &n.Props[i]
				checkRange(n, "prop", p)
				if p.Start >= 0 && p.Start < len(text) {
					switch text[p.Start] {
					case '!', '&', '#':
					default:
						report(n, p.Start, "prop %s starts with %q", p, text[p.Start])
					}
				}
			}
			for _, e := range n.Entries {
				if e.Node == nil && (e.Offset < 0 || e.Offset >= len(text) || text[e.Offset:e.Offset+1] != e.Char) {
					report(n, e.Offset, "flow character %q not found at offset %d", e.Char, e.Offset)
				}
			}
			return true
		})
	}
	return problems
}

func offsetOf(n *Node) int {
	switch {
	case n.ValueRange != nil:
		return n.ValueRange.Start
	case len(n.Props) > 0:
		return n.Props[0].Start
	case n.Range != nil:
		return n.Range.Start
	}
	return -1
}
