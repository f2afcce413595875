package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/yamlunist/formatter"
	"github.com/robinvdvleuten/yamlunist/output"
)

type InspectCmd struct {
	File        FileOrStdin `help:"YAML source filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	CST         string      `help:"CST dump of the source (default: <file>.cst.yaml, then <file>.cst.json)." type:"path"`
	NoPositions bool        `help:"Hide line:column ranges."`
	NoComments  bool        `help:"Hide comments."`
	Raw         bool        `help:"Print scalars as written in the source instead of their decoded values."`
	Width       int         `help:"Truncate values to this display width (0 disables)." default:"60"`
	Watch       bool        `help:"Print the outline again whenever the source or its CST dump changes." short:"w"`
}

func (cmd *InspectCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
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

func (cmd *InspectCmd) run(runCtx context.Context, stdout, stderr io.Writer, globals *Globals) error {
	runCtx, report := globals.startTelemetry(runCtx, stderr, "inspect", cmd.File.Filename)
	defer report()

	result, err := cmd.File.Load(runCtx, globals.loader(stderr, cmd.CST), cmd.CST)
	if err != nil {
		source, _ := cmd.File.GetSourceContent()
		_, _ = fmt.Fprintln(stderr, NewErrorRenderer(cmd.File.Filename, source).Render(err))
		_, _ = fmt.Fprintln(stderr)
		printError(stderr, "transform failed")
		return NewCommandError(ExitFailure)
	}

	opts := []formatter.Option{
		formatter.WithStyles(output.NewStyles(stdout)),
		formatter.WithPositions(!cmd.NoPositions),
		formatter.WithComments(!cmd.NoComments),
		formatter.WithValueWidth(cmd.Width),
	}
	if cmd.Raw {
		opts = append(opts, formatter.WithEscapeStyle(formatter.EscapeStyleOriginal))
	}

	return formatter.New(opts...).Format(runCtx, result.Root, result.Source, stdout)
}
