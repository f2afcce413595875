package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/yamlunist/ast"
	"github.com/robinvdvleuten/yamlunist/loader"
)

func fileInput(name string) FileOrStdin {
	return FileOrStdin{Filename: filepath.Join("testdata", name)}
}

func TestTransformCmd(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		cmd := &TransformCmd{File: fileInput("mapping.yaml"), Format: "json"}
		var stdout, stderr bytes.Buffer
		err := cmd.run(context.Background(), &stdout, &stderr, &Globals{})
		assert.NoError(t, err)
		assert.Contains(t, stdout.String(), `"type": "root"`)
		assert.Contains(t, stdout.String(), `"value": "value"`)
		assert.Contains(t, stdout.String(), `"value": " c"`)
		assert.Equal(t, "", stderr.String())
	})

	t.Run("JSONDumpFallback", func(t *testing.T) {
		cmd := &TransformCmd{File: fileInput("list.yaml"), Format: "json"}
		var stdout, stderr bytes.Buffer
		err := cmd.run(context.Background(), &stdout, &stderr, &Globals{})
		assert.NoError(t, err)
		assert.Contains(t, stdout.String(), `"type": "sequence"`)
	})

	t.Run("OutputFile", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "tree.json")
		cmd := &TransformCmd{File: fileInput("mapping.yaml"), Format: "json", Output: out}
		var stdout, stderr bytes.Buffer
		err := cmd.run(context.Background(), &stdout, &stderr, &Globals{})
		assert.NoError(t, err)
		assert.Equal(t, "", stdout.String())
		assert.Contains(t, stderr.String(), "Wrote")

		data, err := os.ReadFile(out)
		assert.NoError(t, err)
		assert.Contains(t, string(data), `"type": "document"`)
	})

	t.Run("ContractError", func(t *testing.T) {
		cmd := &TransformCmd{File: fileInput("broken.yaml"), Format: "json"}
		var stdout, stderr bytes.Buffer
		err := cmd.run(context.Background(), &stdout, &stderr, &Globals{})

		var cmdErr *CommandError
		assert.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 1, cmdErr.ExitCode())
		assert.Equal(t, "", stdout.String())
		assert.Contains(t, stderr.String(), filepath.Join("testdata", "broken.yaml")+":1:4: FLOW_SEQ at offset 3")
		assert.Contains(t, stderr.String(), "transform failed")
	})

	t.Run("Stdin", func(t *testing.T) {
		source, err := os.ReadFile(filepath.Join("testdata", "mapping.yaml"))
		assert.NoError(t, err)
		cmd := &TransformCmd{
			File:   FileOrStdin{Filename: "<stdin>", Contents: source},
			CST:    filepath.Join("testdata", "mapping.yaml.cst.yaml"),
			Format: "json",
		}
		var stdout, stderr bytes.Buffer
		err = cmd.run(context.Background(), &stdout, &stderr, &Globals{})
		assert.NoError(t, err)
		assert.Contains(t, stdout.String(), `"value": "key"`)
	})

	t.Run("Telemetry", func(t *testing.T) {
		cmd := &TransformCmd{File: fileInput("mapping.yaml"), Format: "json"}
		var stdout, stderr bytes.Buffer
		err := cmd.run(context.Background(), &stdout, &stderr, &Globals{Telemetry: true})
		assert.NoError(t, err)
		assert.Contains(t, stderr.String(), "transform mapping.yaml")
		assert.Contains(t, stderr.String(), "decode cst")
	})

	t.Run("Verbose", func(t *testing.T) {
		cmd := &TransformCmd{File: fileInput("mapping.yaml"), Format: "json"}
		var stdout, stderr bytes.Buffer
		err := cmd.run(context.Background(), &stdout, &stderr, &Globals{Verbose: true})
		assert.NoError(t, err)
		assert.Contains(t, stderr.String(), `msg=transformed`)
	})
}

func TestEncodeTree(t *testing.T) {
	root := ast.NewRoot(ast.Position{
		Start: ast.Point{Line: 1, Column: 1, Offset: 0},
		End:   ast.Point{Line: 1, Column: 1, Offset: 0},
	}, nil, nil)

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"type": "root"`},
		{"yaml", "type: root"},
		{"repr", "ast.Root{"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := encodeTree(root, tt.format)
			assert.NoError(t, err)
			assert.Contains(t, string(data), tt.want)
			assert.True(t, strings.HasSuffix(string(data), "\n"))
		})
	}
}

func TestFileOrStdinLoad(t *testing.T) {
	ldr := loader.New()

	t.Run("StdinNeedsCST", func(t *testing.T) {
		f := FileOrStdin{Filename: "<stdin>", Contents: []byte("a: 1\n")}
		_, err := f.Load(context.Background(), ldr, "")
		assert.IsError(t, err, ErrStdinNeedsCST)
	})

	t.Run("FileLooksUpDump", func(t *testing.T) {
		f := fileInput("mapping.yaml")
		result, err := f.Load(context.Background(), ldr, "")
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result.Root.Documents))
	})

	t.Run("FileWithoutDump", func(t *testing.T) {
		f := fileInput("outside.yaml")
		_, err := f.ReadDump(loader.New(loader.WithCSTPath(filepath.Join("testdata", "missing.cst.yaml"))), "")
		assert.Error(t, err)
	})
}

func TestCheckCmd(t *testing.T) {
	t.Run("Passes", func(t *testing.T) {
		cmd := &CheckCmd{File: fileInput("mapping.yaml")}
		var stdout, stderr bytes.Buffer
		result := cmd.check(context.Background(), &stdout, &stderr, &Globals{})
		assert.Equal(t, ExitOK, result.ExitCode())
		assert.Equal(t, CheckResult{}, result)
		assert.Contains(t, stdout.String(), "Check passed: 1 document(s), 1 comment(s)")
	})

	t.Run("DumpOutsideSource", func(t *testing.T) {
		cmd := &CheckCmd{File: fileInput("outside.yaml")}
		var stdout, stderr bytes.Buffer
		result := cmd.check(context.Background(), &stdout, &stderr, &Globals{})
		assert.Equal(t, ExitFailure, result.ExitCode())
		assert.Equal(t, CheckResult{Stage: StageCST, Findings: 1}, result)
		assert.Contains(t, stderr.String(), "valueRange [0,40) outside source of 5 bytes")
		assert.Contains(t, stderr.String(), "1 problem(s) found in CST dump")
		assert.Equal(t, "", stdout.String())
	})

	t.Run("JSONReport", func(t *testing.T) {
		cmd := &CheckCmd{File: fileInput("outside.yaml"), Errors: "json"}
		var stdout, stderr bytes.Buffer
		result := cmd.check(context.Background(), &stdout, &stderr, &Globals{})
		assert.Equal(t, ExitFailure, result.ExitCode())

		var report []map[string]any
		assert.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		assert.Equal(t, 1, len(report))
		assert.Equal(t, "cst.Problem", report[0]["type"])
		assert.Equal[any](t, map[string]any{"kind": "PLAIN"}, report[0]["details"])
		assert.Contains(t, stderr.String(), "1 problem(s) found in CST dump")
	})

	t.Run("TransformFails", func(t *testing.T) {
		cmd := &CheckCmd{File: fileInput("broken.yaml")}
		var stdout, stderr bytes.Buffer
		result := cmd.check(context.Background(), &stdout, &stderr, &Globals{})
		assert.Equal(t, ExitFailure, result.ExitCode())
		assert.Equal(t, CheckResult{Stage: StageTransform, Findings: 1}, result)
		assert.Contains(t, stderr.String(), "transform failed")
	})

	t.Run("MissingDump", func(t *testing.T) {
		cmd := &CheckCmd{File: fileInput("mapping.yaml"), CST: filepath.Join("testdata", "missing.cst.yaml")}
		var stdout, stderr bytes.Buffer
		result := cmd.check(context.Background(), &stdout, &stderr, &Globals{})
		assert.Equal(t, ExitFailure, result.ExitCode())
		assert.Error(t, result.Err)
		assert.Equal(t, 0, result.Findings)
	})
}

func TestCSTCmd(t *testing.T) {
	t.Run("WithSource", func(t *testing.T) {
		cmd := &CSTCmd{
			File:   fileInput("mapping.yaml.cst.yaml"),
			Source: filepath.Join("testdata", "mapping.yaml"),
		}
		var stdout bytes.Buffer
		assert.NoError(t, cmd.run(&stdout))

		want := "DOCUMENT[0,15)\n" +
			"  MAP[0,14)\n" +
			"    PLAIN[0,3)    \"key\"\n" +
			"    MAP_VALUE[3,10)\n" +
			"      PLAIN[5,10)    \"value\"\n" +
			"    COMMENT    \"# c\"\n" +
			"\n6 nodes in 1 documents\n"
		assert.Equal(t, want, stdout.String())
	})

	t.Run("WithoutSource", func(t *testing.T) {
		cmd := &CSTCmd{File: fileInput("list.yaml.cst.json")}
		var stdout bytes.Buffer
		assert.NoError(t, cmd.run(&stdout))
		assert.Contains(t, stdout.String(), "    SEQ_ITEM[4,7)\n      PLAIN[6,7)\n")
		assert.Contains(t, stdout.String(), "7 nodes in 1 documents")
	})

	t.Run("InvalidDump", func(t *testing.T) {
		cmd := &CSTCmd{File: fileInput("mapping.yaml")}
		var stdout bytes.Buffer
		assert.Error(t, cmd.run(&stdout))
	})
}

func TestWatchedFiles(t *testing.T) {
	tests := []struct {
		name    string
		cstPath string
		file    string
		want    bool
	}{
		{"Source", "", "dir/a.yaml", true},
		{"UncleanSource", "", "dir/./a.yaml", true},
		{"YAMLDump", "", "dir/a.yaml.cst.yaml", true},
		{"JSONDump", "", "dir/a.yaml.cst.json", true},
		{"Unrelated", "", "dir/b.yaml", false},
		{"ExplicitDump", "dumps/a.json", "dumps/a.json", true},
		{"SuffixIgnoredWithExplicitDump", "dumps/a.json", "dir/a.yaml.cst.yaml", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := watchedFiles("dir/a.yaml", tt.cstPath)
			assert.Equal(t, tt.want, match(tt.file))
		})
	}

	assert.Equal(t, []string{"dir", "dumps"}, watchDirs("dir/a.yaml", "dumps/a.json"))
	assert.Equal(t, []string{"dir"}, watchDirs("dir/a.yaml", ""))
}

func TestCommandsParse(t *testing.T) {
	var cmds Commands
	parser, err := kong.New(&cmds, kong.Name("yamlunist"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	assert.NoError(t, err)

	source := filepath.Join("testdata", "mapping.yaml")
	ctx, err := parser.Parse([]string{"--telemetry", "transform", "-f", "yaml", source})
	assert.NoError(t, err)
	assert.Equal(t, "transform <file>", ctx.Command())
	assert.True(t, cmds.Telemetry)
	assert.Equal(t, "yaml", cmds.Transform.Format)
	assert.Equal(t, source, cmds.Transform.File.Filename)

	_, err = parser.Parse([]string{"transform", "-f", "toml", source})
	assert.Error(t, err)

	ctx, err = parser.Parse([]string{"doctor", "cst", source + ".cst.yaml"})
	assert.NoError(t, err)
	assert.Equal(t, "doctor cst <file>", ctx.Command())
}
