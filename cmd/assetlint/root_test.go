// cmd/assetlint/root_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: temp directories, cobra command tree
// PURPOSE: Test the CLI commands end to end through NewRootCmd

package assetlint

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/arthur-debert/assetlint/pkg/scanner"
	"github.com/arthur-debert/assetlint/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = `
[[rules]]
category = "Script"
extension = '\.cs$'
name = '^[A-Z]+[A-Za-z]+$'

[[rules]]
category = "Texture"
extension = '\.png$'
name = '^[A-Z]+(_?[A-Za-z0-9]+)+$'
`

func exampleProject(t *testing.T, config string) string {
	t.Helper()
	root := testutil.Tree(t, "Player.cs", "player2.cs", "enemy.PNG", "Enemy_Idle.png", "readme.meta")
	if config != "" {
		testutil.CreateFile(t, root, ".assetlint.toml", config)
	}
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCheckCmd(t *testing.T) {
	testutil.Isolate(t)

	t.Run("reports the case-sensitive mismatch", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)

		out, err := execute(t, "check", root, "--no-progress")

		assert.True(t, errors.IsErrorCode(err, errors.ErrMismatchesFound))
		assert.Contains(t, out, "Naming scan of "+root)
		assert.Contains(t, out, "player2.cs")
		assert.Contains(t, out, "Script")
		assert.NotContains(t, out, "enemy.PNG")
		assert.NotContains(t, out, "Enemy_Idle.png")
		assert.NotContains(t, out, "readme.meta")
	})

	t.Run("ignore extension case from env", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)
		t.Setenv("ASSETLINT_IGNORE_EXTENSION_CASE", "true")

		out, err := execute(t, "check", root, "--no-progress")

		assert.True(t, errors.IsErrorCode(err, errors.ErrMismatchesFound))
		assert.Contains(t, out, "player2.cs")
		assert.Contains(t, out, "enemy.PNG")
	})

	t.Run("exit zero", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)

		_, err := execute(t, "check", root, "--no-progress", "--exit-zero")

		assert.NoError(t, err)
	})

	t.Run("clean tree", func(t *testing.T) {
		root := testutil.Tree(t, "Player.cs")

		out, err := execute(t, "check", root, "--no-progress", "--no-user-config")

		require.NoError(t, err)
		assert.Contains(t, out, "No naming mismatches found.")
	})

	t.Run("json output", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)

		out, err := execute(t, "check", root, "--no-progress", "--format", "json")
		assert.True(t, errors.IsErrorCode(err, errors.ErrMismatchesFound))

		var decoded struct {
			State         string `json:"state"`
			MismatchCount int    `json:"mismatch_count"`
			Mismatches    []struct {
				RelPath  string `json:"rel_path"`
				Category string `json:"category"`
			} `json:"mismatches"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "completed", decoded.State)
		assert.Equal(t, 1, decoded.MismatchCount)
		require.Len(t, decoded.Mismatches, 1)
		assert.Equal(t, "player2.cs", decoded.Mismatches[0].RelPath)
	})

	t.Run("checkstyle output", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)

		out, err := execute(t, "check", root, "--no-progress", "--format", "checkstyle", "--exit-zero")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "<?xml"))
		assert.Contains(t, out, `source="assetlint.script"`)
		assert.Contains(t, out, filepath.Join(root, "player2.cs"))
	})

	t.Run("pagination", func(t *testing.T) {
		root := testutil.Tree(t, "a.cs", "b.cs", "c.cs")

		out, err := execute(t, "check", root, "--no-progress", "--no-user-config", "--page-size", "2", "--page", "2")
		assert.True(t, errors.IsErrorCode(err, errors.ErrMismatchesFound))
		assert.Contains(t, out, "c.cs")
		assert.NotContains(t, out, "a.cs")
		assert.Contains(t, out, "page 2 / 2")

		out, _ = execute(t, "check", root, "--no-progress", "--no-user-config", "--page-size", "2", "--all")
		assert.Contains(t, out, "a.cs")
		assert.Contains(t, out, "c.cs")
		assert.NotContains(t, out, "page ")

		_, err = execute(t, "check", root, "--no-progress", "--no-user-config", "--page-size", "2", "--page", "3")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("page size from config", func(t *testing.T) {
		root := testutil.Tree(t, "a.cs", "b.cs")
		testutil.CreateFile(t, root, "assetlint.toml", "page_size = 1\n")

		out, _ := execute(t, "check", root, "--no-progress", "--no-user-config")
		assert.Contains(t, out, "page 1 / 2")
	})

	t.Run("exclude flag", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)
		testutil.CreateFile(t, root, filepath.Join("Temp", "junk.cs"), "x")

		out, _ := execute(t, "check", root, "--no-progress", "--exclude", "Temp")
		assert.NotContains(t, out, "junk.cs")
	})

	t.Run("invalid arguments", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)

		_, err := execute(t, "check", root, "--format", "sarif")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		_, err = execute(t, "check", root, "--page", "0")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		_, err = execute(t, "check", root, "--page-size", "0")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

		_, err = execute(t, "check", filepath.Join(root, "missing"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

		_, err = execute(t, "check", filepath.Join(root, "Player.cs"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("cancelled scan prints partial result", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		cmd := NewRootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs([]string{"--no-color", "check", root, "--no-progress"})
		err := cmd.ExecuteContext(ctx)

		assert.True(t, errors.IsErrorCode(err, errors.ErrScanCancelled))
		assert.Contains(t, out.String(), "Scan was cancelled")
	})
}

func TestRulesCmd(t *testing.T) {
	testutil.Isolate(t)

	t.Run("raw markdown", func(t *testing.T) {
		root := exampleProject(t, exampleConfig)

		out, err := execute(t, "rules", root, "--raw")

		require.NoError(t, err)
		assert.Contains(t, out, "| Script |")
		assert.Contains(t, out, "| Texture |")
		assert.NotContains(t, out, "Material")
	})

	t.Run("rendered", func(t *testing.T) {
		out, err := execute(t, "rules", t.TempDir(), "--no-user-config")

		require.NoError(t, err)
		assert.Contains(t, out, "Material")
	})

	t.Run("broken config", func(t *testing.T) {
		root := testutil.Tree(t)
		testutil.CreateFile(t, root, ".assetlint.toml", "dialect = \"pcre\"\n")

		_, err := execute(t, "rules", root)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestGenConfigCmd(t *testing.T) {
	testutil.Isolate(t)

	t.Run("stdout", func(t *testing.T) {
		out, err := execute(t, "gen-config")

		require.NoError(t, err)
		assert.Contains(t, out, "# assetlint configuration")
		assert.Contains(t, out, "[[rules]]")
	})

	t.Run("write yaml then refuse overwrite", func(t *testing.T) {
		dir := t.TempDir()

		out, err := execute(t, "gen-config", dir, "-w", "--format", "yaml")
		require.NoError(t, err)
		target := filepath.Join(dir, ".assetlint.yaml")
		assert.Contains(t, out, target)
		assert.FileExists(t, target)

		_, err = execute(t, "gen-config", dir, "-w", "--format", "yaml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})

	t.Run("generated config drives check", func(t *testing.T) {
		dir := exampleProject(t, "")
		_, err := execute(t, "gen-config", dir, "-w")
		require.NoError(t, err)

		out, err := execute(t, "check", dir, "--no-progress", "--no-user-config")
		assert.True(t, errors.IsErrorCode(err, errors.ErrMismatchesFound))
		assert.Contains(t, out, "player2.cs")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "gen-config", "--format", "ini")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestMiscCmds(t *testing.T) {
	testutil.Isolate(t)

	t.Run("version", func(t *testing.T) {
		out, err := execute(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "assetlint dev")
	})

	t.Run("completion", func(t *testing.T) {
		for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
			out, err := execute(t, "completion", shell)
			require.NoError(t, err, shell)
			assert.Contains(t, out, "assetlint", shell)
		}

		_, err := execute(t, "completion", "tcsh")
		assert.Error(t, err)
	})

	t.Run("unknown shell", func(t *testing.T) {
		err := GenCompletion(NewRootCmd(), "tcsh", &bytes.Buffer{})
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("man page", func(t *testing.T) {
		out, err := execute(t, "man")
		require.NoError(t, err)
		assert.Contains(t, out, ".TH")
		assert.Contains(t, out, "ASSETLINT")
	})

	t.Run("help topics", func(t *testing.T) {
		out, err := execute(t, "help", "topics")
		require.NoError(t, err)
		for _, name := range []string{"config", "formats", "patterns", "--exclude"} {
			assert.Contains(t, out, name)
		}

		out, err = execute(t, "help", "patterns")
		require.NoError(t, err)
		assert.Contains(t, out, "Dialects")

		out, err = execute(t, "help", "--", "--exclude")
		require.NoError(t, err)
		assert.Contains(t, out, "exclude_dirs")
	})

	t.Run("no command", func(t *testing.T) {
		_, err := execute(t)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}

func TestProgressBar(t *testing.T) {
	fs := testutil.MemoryTree(t, "/proj", "Player.cs")

	rs, err := rules.New(rules.DefaultRules(), rules.Options{})
	require.NoError(t, err)
	s := scanner.NewSession(scanner.WithFS(fs))
	require.NoError(t, s.Start(context.Background(), "/proj", rs))

	var out bytes.Buffer
	progress := newProgressBar(&out, time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- progress(context.Background(), s) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("progress did not return after the scan finished")
	}
	assert.Equal(t, scanner.Completed, s.State())
}
