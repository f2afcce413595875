package telemetry

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/yamlunist/output"
)

// slowOperation marks timings that are highlighted in reports.
const slowOperation = 100 * time.Millisecond

// formatTimingTree outputs the timing tree in a hierarchical format, with
// the durations aligned:
//
//	transform doc.yaml  12ms
//	├─ read source       0ms
//	├─ decode cst        9ms
//	└─ transform         3ms
func formatTimingTree(w io.Writer, root *timerNode, styles *output.Styles) {
	type line struct {
		prefix string
		name   string
		d      time.Duration
	}

	lines := []line{{name: root.name, d: root.duration()}}
	var collect func(n *timerNode, prefix string)
	collect = func(n *timerNode, prefix string) {
		for i, child := range n.children {
			branch, extension := "├─ ", "│  "
			if i == len(n.children)-1 {
				branch, extension = "└─ ", "   "
			}
			lines = append(lines, line{prefix: prefix + branch, name: child.name, d: child.duration()})
			collect(child, prefix+extension)
		}
	}
	collect(root, "")

	// Tree glyphs are one column wide; names may hold wide runes.
	columns := func(l line) int {
		return utf8.RuneCountInString(l.prefix) + runewidth.StringWidth(l.name)
	}
	width := 0
	for _, l := range lines {
		width = max(width, columns(l))
	}

	for i, l := range lines {
		pad := strings.Repeat(" ", width-columns(l)+2)
		timing := formatDuration(l.d)
		if styles == nil {
			_, _ = fmt.Fprintf(w, "%s%s%s%s\n", l.prefix, l.name, pad, timing)
			continue
		}

		name := l.name
		if i == 0 {
			name = styles.Keyword(name)
		}
		if l.d >= slowOperation {
			timing = styles.Warning(timing)
		} else {
			timing = styles.Dim(timing)
		}
		_, _ = fmt.Fprintf(w, "%s%s%s%s\n", styles.Dim(l.prefix), name, pad, timing)
	}
}

// formatDuration shows milliseconds below one second and seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
