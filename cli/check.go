package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/yamlunist/cst"
	"github.com/robinvdvleuten/yamlunist/errors"
)

type CheckCmd struct {
	File   FileOrStdin `help:"YAML source filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	CST    string      `help:"CST dump of the source (default: <file>.cst.yaml, then <file>.cst.json)." type:"path"`
	Errors string      `help:"Report format for findings: text or json (json goes to stdout)." enum:"text,json" default:"text"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	result := cmd.check(context.Background(), ctx.Stdout, ctx.Stderr, globals)
	if result.Err != nil {
		return result.Err
	}
	if code := result.ExitCode(); code != ExitOK {
		return NewCommandError(code)
	}
	return nil
}

// check validates the dump against the source, transforms it and verifies
// the resulting tree. Findings are printed to stderr.
func (cmd *CheckCmd) check(runCtx context.Context, stdout, stderr io.Writer, globals *Globals) CheckResult {
	runCtx, report := globals.startTelemetry(runCtx, stderr, "check", cmd.File.Filename)
	defer report()

	source, err := cmd.File.GetSourceContent()
	if err != nil {
		return checkFailed(fmt.Errorf("failed to read file for error context: %w", err))
	}
	renderer := NewErrorRenderer(cmd.File.Filename, source)
	fail := func(stage CheckStage, errs []error, summary string) CheckResult {
		if cmd.Errors == "json" {
			_, _ = fmt.Fprintln(stdout, errors.NewJSONFormatter(cmd.File.Filename, source).FormatAll(errs))
		} else {
			_, _ = fmt.Fprintln(stderr, renderer.RenderAll(errs))
			_, _ = fmt.Fprintln(stderr)
		}
		printError(stderr, summary)
		report()
		return checkFindings(stage, len(errs))
	}

	ldr := globals.loader(stderr, cmd.CST)
	dump, err := cmd.File.ReadDump(ldr, cmd.CST)
	if err != nil {
		return checkFailed(err)
	}

	stream, err := cst.Decode(dump)
	if err != nil {
		return fail(StageDecode, []error{err}, "invalid CST dump")
	}
	if problems := cst.Check(stream, string(source)); len(problems) > 0 {
		errs := make([]error, len(problems))
		for i, p := range problems {
			errs[i] = p
		}
		return fail(StageCST, errs, fmt.Sprintf("%d problem(s) found in CST dump", len(problems)))
	}

	result, err := ldr.LoadBytes(runCtx, cmd.File.Filename, source, dump)
	if err != nil {
		return fail(StageTransform, []error{err}, "transform failed")
	}
	if errs := result.Verify(); len(errs) > 0 {
		return fail(StageVerify, errs, fmt.Sprintf("%d tree invariant(s) violated", len(errs)))
	}

	printSuccess(stdout, fmt.Sprintf("Check passed: %d document(s), %d comment(s)",
		len(result.Root.Documents), len(result.Root.Comments)))
	return checkPassed()
}
