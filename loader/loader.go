// Package loader reads a YAML source together with the CST dump a parser
// produced for it, and turns both into an AST.
//
// A dump is looked up next to the source: for "config.yaml" the loader tries
// "config.yaml.cst.yaml" and then "config.yaml.cst.json", unless a path is
// given explicitly.
//
// Example usage:
//
//	ldr := loader.New(loader.WithRuneColumns())
//	result, err := ldr.Load(ctx, "config.yaml")
//	if err != nil {
//		return err
//	}
//	fmt.Println(len(result.Root.Documents))
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/cst"
	"github.com/robinvdvleuten/yamlunist/locate"
	"github.com/robinvdvleuten/yamlunist/telemetry"
	"github.com/robinvdvleuten/yamlunist/transform"
)

// ErrNoDump is returned by Load when no CST dump is found for a source.
var ErrNoDump = errors.New("no cst dump found")

// DumpSuffixes lists the suffixes tried, in order, to find the CST dump of a
// source file.
var DumpSuffixes = []string{".cst.yaml", ".cst.json"}

// Loader loads YAML sources and their CST dumps.
//
// Configure the loader using functional options passed to New:
//
//	loader := New(WithLogger(logger), WithCSTPath("doc.cst.json"))
type Loader struct {
	logger      *slog.Logger
	cstPath     string
	runeColumns bool
	options     []transform.Option
}

// Option configures how files are loaded.
type Option func(*Loader)

// WithLogger sets the logger for load progress. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithCSTPath reads the CST dump from path instead of looking it up next to
// the source.
func WithCSTPath(path string) Option {
	return func(l *Loader) {
		l.cstPath = path
	}
}

// WithRuneColumns reports columns in runes instead of bytes.
func WithRuneColumns() Option {
	return func(l *Loader) {
		l.runeColumns = true
	}
}

// WithTransformOptions passes options on to transform.Transform.
func WithTransformOptions(opts ...transform.Option) Option {
	return func(l *Loader) {
		l.options = append(l.options, opts...)
	}
}

// New creates a new Loader with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Result is a loaded document stream.
type Result struct {
	Filename string
	Source   []byte
	Stream   cst.Stream
	Root     *ast.Root
	Parents  ast.Parents
	Index    *locate.Index
}

// Load reads filename and its CST dump and transforms them.
func (l *Loader) Load(ctx context.Context, filename string) (*Result, error) {
	timer := telemetry.StartTimer(ctx, "load "+filename)
	defer timer.End()
	ctx = telemetry.WithRootTimer(ctx, timer)

	readTimer := telemetry.StartTimer(ctx, "read source")
	source, err := os.ReadFile(filename)
	if err != nil {
		readTimer.End()
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	dumpPath, dump, err := l.ReadDump(filename)
	readTimer.End()
	if err != nil {
		return nil, err
	}
	l.logger.Debug("read source", "file", filename, "bytes", len(source), "cst", dumpPath)

	return l.LoadBytes(ctx, filename, source, dump)
}

// ReadDump returns the path and contents of the CST dump for filename.
func (l *Loader) ReadDump(filename string) (string, []byte, error) {
	if l.cstPath != "" {
		data, err := os.ReadFile(l.cstPath)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read %s: %w", l.cstPath, err)
		}
		return l.cstPath, data, nil
	}

	for _, suffix := range DumpSuffixes {
		path := filename + suffix
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return path, data, nil
	}
	return "", nil, fmt.Errorf("%s: %w (tried %s%s and %s%s)", filename, ErrNoDump,
		filename, DumpSuffixes[0], filename, DumpSuffixes[1])
}

// LoadBytes decodes dump and transforms it against source. name is only
// used for messages.
func (l *Loader) LoadBytes(ctx context.Context, name string, source, dump []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decodeTimer := telemetry.StartTimer(ctx, "decode cst")
	stream, err := cst.Decode(dump)
	decodeTimer.End()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	l.logger.Debug("decoded cst", "file", name, "documents", len(stream))

	text := string(source)
	var opts []locate.Option
	if l.runeColumns {
		opts = append(opts, locate.WithRuneColumns())
	}
	index := locate.New(text, opts...)

	transformTimer := telemetry.StartTimer(ctx, "transform")
	root, err := transform.Transform(stream, text, index, l.options...)
	transformTimer.End()
	if err != nil {
		// Transform errors carry a source offset; the caller knows the file.
		return nil, err
	}

	parentsTimer := telemetry.StartTimer(ctx, "define parents")
	parents := ast.DefineParents(root)
	parentsTimer.End()

	l.logger.Debug("transformed", "file", name, "documents", len(root.Documents), "comments", len(root.Comments))

	return &Result{
		Filename: name,
		Source:   source,
		Stream:   stream,
		Root:     root,
		Parents:  parents,
		Index:    index,
	}, nil
}
