package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/robinvdvleuten/yamlunist/loader"
	"github.com/robinvdvleuten/yamlunist/output"
	"github.com/robinvdvleuten/yamlunist/telemetry"
	"github.com/robinvdvleuten/yamlunist/transform"
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry   bool `help:"Show timing telemetry for operations."`
	Verbose     bool `help:"Log load progress to stderr." short:"v"`
	RuneColumns bool `help:"Count columns in characters instead of bytes."`
	NoAttach    bool `help:"Keep comments in the stream list only, without attaching them to nodes."`
}

type Commands struct {
	Globals

	Transform TransformCmd `cmd:"" help:"Transform a YAML file and its CST dump into a unist syntax tree."`
	Inspect   InspectCmd   `cmd:"" help:"Print the syntax tree of a YAML file as an outline."`
	Check     CheckCmd     `cmd:"" help:"Check a CST dump and the tree built from it."`
	Doctor    DoctorCmd    `cmd:"" help:"Doctor utilities for debugging CST dumps."`
}

// logger returns the logger for --verbose, or one that discards.
func (g *Globals) logger(w io.Writer) *slog.Logger {
	if !g.Verbose {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loader builds a loader from the global flags. cstPath may be empty.
func (g *Globals) loader(w io.Writer, cstPath string) *loader.Loader {
	opts := []loader.Option{
		loader.WithLogger(g.logger(w)),
		loader.WithTransformOptions(transform.WithCommentAttachment(!g.NoAttach)),
	}
	if cstPath != "" {
		opts = append(opts, loader.WithCSTPath(cstPath))
	}
	if g.RuneColumns {
		opts = append(opts, loader.WithRuneColumns())
	}
	return loader.New(opts...)
}

// startTelemetry installs a timing collector when --telemetry is set. The
// returned func ends the root timer and prints the report to stderr; it is
// safe to call more than once.
func (g *Globals) startTelemetry(runCtx context.Context, stderr io.Writer, command, file string) (context.Context, func()) {
	if !g.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)
	timer := collector.Start(fmt.Sprintf("%s %s", command, filepath.Base(file)))
	runCtx = telemetry.WithRootTimer(runCtx, timer)

	var once sync.Once
	return runCtx, func() {
		once.Do(func() {
			timer.End()
			_, _ = fmt.Fprintln(stderr)
			collector.Report(stderr, output.NewStyles(stderr))
		})
	}
}
