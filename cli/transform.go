package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/goccy/go-yaml"

	"github.com/robinvdvleuten/yamlunist/ast"
)

// ErrWatchStdin is returned when --watch is combined with stdin input.
var ErrWatchStdin = errors.New("--watch needs a file, not stdin")

type TransformCmd struct {
	File   FileOrStdin `help:"YAML source filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	CST    string      `help:"CST dump of the source (default: <file>.cst.yaml, then <file>.cst.json)." type:"path"`
	Format string      `help:"Output format: json, yaml or repr." enum:"json,yaml,repr" default:"json" short:"f"`
	Output string      `help:"Write the tree to this file instead of stdout." short:"o" type:"path"`
	Force  bool        `help:"Overwrite the output file without confirmation."`
	Watch  bool        `help:"Transform again whenever the source or its CST dump changes." short:"w"`
}

func (cmd *TransformCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	if cmd.Output != "" && !cmd.Force {
		if _, err := os.Stat(cmd.Output); err == nil {
			confirmed, err := promptYesNo(fmt.Sprintf("File %q exists. Overwrite it?", cmd.Output))
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !confirmed {
				return fmt.Errorf("not overwriting %s (use --force)", cmd.Output)
			}
		}
	}

	if !cmd.Watch {
		return cmd.run(context.Background(), ctx.Stdout, ctx.Stderr, globals)
	}
	if cmd.File.IsStdin() {
		return ErrWatchStdin
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watch(runCtx, ctx.Stderr,
		watchDirs(cmd.File.Filename, cmd.CST),
		watchedFiles(cmd.File.Filename, cmd.CST),
		func() error { return cmd.run(runCtx, ctx.Stdout, ctx.Stderr, globals) },
	)
}

func (cmd *TransformCmd) run(runCtx context.Context, stdout, stderr io.Writer, globals *Globals) error {
	runCtx, report := globals.startTelemetry(runCtx, stderr, "transform", cmd.File.Filename)
	defer report()

	result, err := cmd.File.Load(runCtx, globals.loader(stderr, cmd.CST), cmd.CST)
	if err != nil {
		source, _ := cmd.File.GetSourceContent()
		renderer := NewErrorRenderer(cmd.File.Filename, source)
		_, _ = fmt.Fprintln(stderr, renderer.Render(err))
		_, _ = fmt.Fprintln(stderr)
		printError(stderr, "transform failed")
		return NewCommandError(ExitFailure)
	}

	data, err := encodeTree(result.Root, cmd.Format)
	if err != nil {
		return err
	}

	if cmd.Output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(cmd.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Output, err)
	}
	printSuccess(stderr, fmt.Sprintf("Wrote %s", pathStyle.Render(cmd.Output)))
	return nil
}

// encodeTree serializes root as unist JSON, as YAML converted from that
// JSON, or as a Go value dump.
func encodeTree(root *ast.Root, format string) ([]byte, error) {
	switch format {
	case "yaml":
		data, err := json.Marshal(root)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tree: %w", err)
		}
		out, err := yaml.JSONToYAML(data)
		if err != nil {
			return nil, fmt.Errorf("failed to convert tree to yaml: %w", err)
		}
		return out, nil

	case "repr":
		return []byte(repr.String(root, repr.Indent("  "), repr.OmitEmpty(true)) + "\n"), nil

	default:
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode tree: %w", err)
		}
		return append(data, '\n'), nil
	}
}
