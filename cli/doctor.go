package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/yamlunist/cst"
)

// DoctorCmd provides doctor utilities for debugging CST dumps.
type DoctorCmd struct {
	CST CSTCmd `cmd:"" help:"Show the nodes of a CST dump."`
}

// CSTCmd prints a CST dump as an indented node list.
type CSTCmd struct {
	File   FileOrStdin `help:"CST dump filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Source string      `help:"YAML source the dump was made from; shows the text of each node." type:"existingfile"`
}

// Run executes the cst command.
func (cmd *CSTCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	return cmd.run(ctx.Stdout)
}

func (cmd *CSTCmd) run(stdout io.Writer) error {
	dump, err := cmd.File.GetSourceContent()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	stream, err := cst.Decode(dump)
	if err != nil {
		return err
	}

	var source string
	if cmd.Source != "" {
		data, err := os.ReadFile(cmd.Source)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", cmd.Source, err)
		}
		source = string(data)
	}

	count := 0
	for _, doc := range stream {
		cst.Walk(doc, func(*cst.Node) bool {
			count++
			return true
		})
		printCSTNode(stdout, doc, 0, source)
	}

	_, _ = fmt.Fprintf(stdout, "\n%d nodes in %d documents\n", count, len(stream))
	return nil
}

// Format: TYPE[start,end) props=[...]    "text"
func printCSTNode(w io.Writer, n *cst.Node, depth int, source string) {
	if n == nil {
		_, _ = fmt.Fprintf(w, "%s<nil>\n", strings.Repeat("  ", depth))
		return
	}

	line := strings.Repeat("  ", depth) + n.String()
	if source != "" {
		r := n.ValueRange
		if r == nil {
			r = n.Range
		}
		if r != nil && n.Type != cst.Document && len(n.Children()) == 0 {
			line += fmt.Sprintf("    %q", r.Text(source))
		}
	}
	_, _ = fmt.Fprintln(w, line)

	for _, child := range n.Children() {
		printCSTNode(w, child, depth+1, source)
	}
}
