// pkg/scanner/session_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero in-memory filesystem, OS temp dirs for linked roots
// PURPOSE: Test scan lifecycle, results, progress and cancellation

package scanner_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/filesystem"
	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/arthur-debert/assetlint/pkg/scanner"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/proj"

func exampleRules(t *testing.T, ignoreCase bool) *rules.RuleSet {
	t.Helper()
	rs, err := rules.New([]rules.NamingRule{
		{Category: "Script", ExtensionPattern: `.cs$`, NamePattern: `^[A-Z]+[A-Za-z]+$`},
		{Category: "Texture", ExtensionPattern: `.png$`, NamePattern: `^[A-Z]+(_?[A-Za-z0-9]+)+$`},
	}, rules.Options{IgnoreExtensionCase: ignoreCase})
	require.NoError(t, err)
	return rs
}

func newTree(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(root, 0755))
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0644))
	}
	return fs
}

func newSession(fs afero.Fs, opts ...scanner.Option) *scanner.Session {
	opts = append([]scanner.Option{
		scanner.WithFS(filesystem.NewAferoFS(fs)),
		scanner.WithLogger(zerolog.Nop()),
	}, opts...)
	return scanner.NewSession(opts...)
}

func runScan(t *testing.T, s *scanner.Session, dir string, rs *rules.RuleSet) scanner.State {
	t.Helper()
	require.NoError(t, s.Start(context.Background(), dir, rs))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	state, err := s.Wait(ctx)
	require.NoError(t, err)
	return state
}

func exampleTree(t *testing.T) afero.Fs {
	return newTree(t, "Player.cs", "player2.cs", "enemy.PNG", "Enemy_Idle.png", "readme.meta")
}

func TestSession_ExampleTree(t *testing.T) {
	t.Run("case_sensitive_extensions", func(t *testing.T) {
		s := newSession(exampleTree(t))
		state := runScan(t, s, root, exampleRules(t, false))

		assert.Equal(t, scanner.Completed, state)
		assert.Equal(t, []string{filepath.Join(root, "player2.cs")}, s.Paths())
		assert.Equal(t, scanner.Progress{Total: 5, Processed: 5, TotalKnown: true}, s.Progress())

		m, ok := s.Mismatch(0)
		require.True(t, ok)
		assert.Equal(t, "player2.cs", m.RelPath)
		assert.Equal(t, "Script", m.Category)
		assert.Empty(t, s.Skipped())
	})

	t.Run("ignore_extension_case", func(t *testing.T) {
		s := newSession(exampleTree(t))
		state := runScan(t, s, root, exampleRules(t, true))

		assert.Equal(t, scanner.Completed, state)
		// lexical walk order puts upper case names first
		assert.Equal(t, []string{
			filepath.Join(root, "enemy.PNG"),
			filepath.Join(root, "player2.cs"),
		}, s.Paths())

		m, ok := s.Mismatch(0)
		require.True(t, ok)
		assert.Equal(t, "Texture", m.Category)
	})
}

func TestSession_NestedTree(t *testing.T) {
	fs := newTree(t,
		"Assets/Scripts/Player.cs",
		"Assets/Scripts/helper.cs",
		"Assets/Textures/grass.png",
		"Assets/Textures/grass.png.meta",
		"Library/cache.cs",
		"README.md",
	)

	t.Run("relative_and_joined_paths", func(t *testing.T) {
		s := newSession(fs)
		runScan(t, s, root, exampleRules(t, false))

		got := s.Mismatches()
		require.Len(t, got, 3)
		assert.Equal(t, filepath.Join("Assets", "Scripts", "helper.cs"), got[0].RelPath)
		assert.Equal(t, filepath.Join(root, "Assets", "Scripts", "helper.cs"), got[0].Path)
		assert.Equal(t, filepath.Join("Assets", "Textures", "grass.png"), got[1].RelPath)
		assert.Equal(t, filepath.Join("Library", "cache.cs"), got[2].RelPath)
		assert.Equal(t, 6, s.Progress().Total)
	})

	t.Run("excluded_directories_are_pruned", func(t *testing.T) {
		s := newSession(fs, scanner.WithExcludeDirs([]string{"Library", ""}))
		runScan(t, s, root, exampleRules(t, false))

		assert.Equal(t, 2, s.MismatchCount())
		assert.Equal(t, 5, s.Progress().Total)
		for _, p := range s.Paths() {
			assert.NotContains(t, p, "Library")
		}
	})

	t.Run("root_is_never_pruned", func(t *testing.T) {
		s := newSession(fs, scanner.WithExcludeDirs([]string{"proj"}))
		runScan(t, s, root, exampleRules(t, false))
		assert.Equal(t, 6, s.Progress().Total)
	})
}

func TestSession_EmptyRuleSet(t *testing.T) {
	s := newSession(newTree(t, "a.cs", "b.png", "sub/c.txt"))
	rs, err := rules.New(nil, rules.Options{})
	require.NoError(t, err)

	state := runScan(t, s, root, rs)

	assert.Equal(t, scanner.Completed, state)
	assert.Zero(t, s.MismatchCount())
	p := s.Progress()
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, p.Total, p.Processed)
}

func TestSession_EmptyDirectory(t *testing.T) {
	s := newSession(newTree(t))
	state := runScan(t, s, root, exampleRules(t, false))

	assert.Equal(t, scanner.Completed, state)
	assert.Equal(t, scanner.Progress{TotalKnown: true}, s.Progress())
	assert.Equal(t, float64(100), s.Progress().Percent())
}

func TestSession_StartErrors(t *testing.T) {
	fs := newTree(t, "file.cs")
	rs := exampleRules(t, false)

	tests := []struct {
		name string
		root string
		rs   *rules.RuleSet
		code errors.ErrorCode
	}{
		{name: "nil_rule_set", root: root, rs: nil, code: errors.ErrConfigValid},
		{name: "empty_root", root: "", rs: rs, code: errors.ErrConfigValid},
		{name: "blank_root", root: "   ", rs: rs, code: errors.ErrConfigValid},
		{name: "missing_root", root: "/nope", rs: rs, code: errors.ErrNotFound},
		{name: "root_is_file", root: filepath.Join(root, "file.cs"), rs: rs, code: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(fs)
			err := s.Start(context.Background(), tt.root, tt.rs)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
			assert.Equal(t, scanner.Idle, s.State())
			assert.Empty(t, s.ID())
		})
	}
}

func TestSession_RejectsConcurrentScan(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	var once sync.Once

	s := newSession(newTree(t, "a.cs", "b.cs"), scanner.WithProcessHook(func(string) {
		once.Do(func() { close(entered) })
		<-release
	}))
	rs := exampleRules(t, false)

	require.NoError(t, s.Start(context.Background(), root, rs))
	<-entered
	assert.Equal(t, scanner.Running, s.State())

	err := s.Start(context.Background(), root, rs)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScanInProgress))

	err = s.Clear()
	assert.True(t, errors.IsErrorCode(err, errors.ErrScanInProgress))

	close(release)
	state, err := s.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scanner.Completed, state)
	assert.Equal(t, 2, s.MismatchCount())
}

func TestSession_Cancel(t *testing.T) {
	files := []string{"a.cs", "b.cs", "c.cs", "d.cs", "e.cs"}

	t.Run("cancel_stops_at_file_boundary", func(t *testing.T) {
		var s *scanner.Session
		seen := 0
		s = newSession(newTree(t, files...), scanner.WithProcessHook(func(string) {
			seen++
			if seen == 3 {
				s.Cancel()
				s.Cancel()
			}
		}))

		state := runScan(t, s, root, exampleRules(t, false))

		assert.Equal(t, scanner.Cancelled, state)
		p := s.Progress()
		assert.Equal(t, 5, p.Total)
		assert.Equal(t, 2, p.Processed)
		assert.LessOrEqual(t, p.Processed, p.Total)
		assert.Equal(t, []string{
			filepath.Join(root, "a.cs"),
			filepath.Join(root, "b.cs"),
		}, s.Paths())
	})

	t.Run("parent_context_cancels", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		seen := 0
		s := newSession(newTree(t, files...), scanner.WithProcessHook(func(string) {
			seen++
			if seen == 2 {
				cancel()
			}
		}))

		require.NoError(t, s.Start(ctx, root, exampleRules(t, false)))
		state, err := s.Wait(context.Background())
		require.NoError(t, err)

		assert.Equal(t, scanner.Cancelled, state)
		assert.Equal(t, 1, s.Progress().Processed)
		assert.Equal(t, 1, s.MismatchCount())
	})

	t.Run("cancel_before_enumeration", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := newSession(newTree(t, files...))
		require.NoError(t, s.Start(ctx, root, exampleRules(t, false)))
		state, err := s.Wait(context.Background())
		require.NoError(t, err)

		assert.Equal(t, scanner.Cancelled, state)
		assert.Zero(t, s.Progress().Processed)
		assert.Zero(t, s.MismatchCount())
	})

	t.Run("cancel_when_idle_is_noop", func(t *testing.T) {
		s := newSession(newTree(t))
		s.Cancel()
		assert.Equal(t, scanner.Idle, s.State())
	})

	t.Run("cancel_after_completion_is_noop", func(t *testing.T) {
		s := newSession(newTree(t, files...))
		runScan(t, s, root, exampleRules(t, false))
		s.Cancel()
		assert.Equal(t, scanner.Completed, s.State())
		assert.Equal(t, 5, s.MismatchCount())
	})
}

func TestSession_ProgressIsMonotonic(t *testing.T) {
	var s *scanner.Session
	var snapshots []scanner.Progress
	s = newSession(newTree(t, "A.cs", "b.cs", "C.cs", "d.cs", "sub/E.cs", "sub/f.cs"),
		scanner.WithProcessHook(func(string) {
			snapshots = append(snapshots, s.Progress())
		}))

	runScan(t, s, root, exampleRules(t, false))

	require.Len(t, snapshots, 6)
	for i, p := range snapshots {
		assert.True(t, p.TotalKnown)
		assert.Equal(t, 6, p.Total)
		assert.Equal(t, i, p.Processed)
	}
	assert.Equal(t, 6, s.Progress().Processed)
}

func TestSession_VanishedFileIsSkipped(t *testing.T) {
	fs := newTree(t, "Gone.cs", "gone.cs", "kept.cs")
	s := newSession(fs, scanner.WithProcessHook(func(path string) {
		if filepath.Base(path) == "gone.cs" {
			_ = fs.Remove(path)
		}
	}))

	state := runScan(t, s, root, exampleRules(t, false))

	assert.Equal(t, scanner.Completed, state)
	assert.Equal(t, []string{filepath.Join(root, "kept.cs")}, s.Paths())

	skipped := s.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, filepath.Join(root, "gone.cs"), skipped[0].Path)
	assert.True(t, errors.IsErrorCode(skipped[0].Err, errors.ErrFileAccess))

	p := s.Progress()
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, 3, p.Processed)
}

// lockedFs fails to open one directory, like a permission error would
type lockedFs struct {
	afero.Fs
	locked string
}

func (l *lockedFs) Open(name string) (afero.File, error) {
	if filepath.Clean(name) == l.locked {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return l.Fs.Open(name)
}

func TestSession_UnreadableDirectoryIsSkipped(t *testing.T) {
	base := newTree(t, "locked/bad.cs", "open/bad.cs")
	fs := &lockedFs{Fs: base, locked: filepath.Join(root, "locked")}

	s := newSession(fs)
	state := runScan(t, s, root, exampleRules(t, false))

	assert.Equal(t, scanner.Completed, state)
	assert.Equal(t, []string{filepath.Join(root, "open", "bad.cs")}, s.Paths())

	skipped := s.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, filepath.Join(root, "locked"), skipped[0].Path)
	assert.True(t, errors.IsErrorCode(skipped[0].Err, errors.ErrFileAccess))
	assert.Equal(t, 1, s.Progress().Total)
}

func TestSession_LinkedRoot(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "Scripts"), 0755))
	for _, name := range []string{"Player.cs", "player2.cs", "Scripts/helper.cs"} {
		require.NoError(t, os.WriteFile(filepath.Join(target, name), []byte("x"), 0644))
	}
	linked := filepath.Join(dir, "Assets")
	require.NoError(t, os.Symlink(target, linked))

	scan := func(t *testing.T, at string) *scanner.Session {
		s := scanner.NewSession(scanner.WithLogger(zerolog.Nop()))
		state := runScan(t, s, at, exampleRules(t, false))
		require.Equal(t, scanner.Completed, state)
		return s
	}

	direct := scan(t, target)
	viaLink := scan(t, linked)

	assert.Equal(t, scanner.Progress{Total: 3, Processed: 3, TotalKnown: true}, viaLink.Progress())
	assert.Equal(t, direct.Progress(), viaLink.Progress())
	assert.Empty(t, viaLink.Skipped())

	assert.Equal(t, linked, viaLink.Root())
	assert.Equal(t, []string{
		filepath.Join(linked, "Scripts", "helper.cs"),
		filepath.Join(linked, "player2.cs"),
	}, viaLink.Paths())

	rel := make([]string, 0, 2)
	for _, m := range viaLink.Mismatches() {
		rel = append(rel, m.RelPath)
	}
	assert.Equal(t, []string{filepath.Join("Scripts", "helper.cs"), "player2.cs"}, rel)
}

func TestSession_PatternTimeoutIsSkipped(t *testing.T) {
	slow := strings.Repeat("a", 40) + "!.cs"
	fs := newTree(t, "aaaa.cs", slow, "bad.cs")
	rs, err := rules.New([]rules.NamingRule{
		{Category: "Script", ExtensionPattern: `\.cs$`, NamePattern: `^(a+)+$`},
	}, rules.Options{Dialect: rules.DialectDotNet})
	require.NoError(t, err)

	s := newSession(fs)
	state := runScan(t, s, root, rs)

	assert.Equal(t, scanner.Completed, state)
	assert.Equal(t, []string{filepath.Join(root, "bad.cs")}, s.Paths())

	skipped := s.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, filepath.Join(root, slow), skipped[0].Path)
	assert.True(t, errors.IsErrorCode(skipped[0].Err, errors.ErrPatternTimeout))
	assert.Equal(t, 3, s.Progress().Processed)
}

func TestSession_RescanIsIdempotent(t *testing.T) {
	s := newSession(exampleTree(t))
	rs := exampleRules(t, true)

	runScan(t, s, root, rs)
	firstID := s.ID()
	first := s.Mismatches()

	runScan(t, s, root, rs)

	assert.Equal(t, first, s.Mismatches())
	assert.NotEqual(t, firstID, s.ID())
	assert.Equal(t, root, s.Root())
}

func TestSession_Clear(t *testing.T) {
	s := newSession(exampleTree(t))
	runScan(t, s, root, exampleRules(t, false))
	require.Equal(t, 1, s.MismatchCount())

	require.NoError(t, s.Clear())

	assert.Equal(t, scanner.Idle, s.State())
	assert.Zero(t, s.MismatchCount())
	assert.Empty(t, s.ID())
	assert.Empty(t, s.Root())
	assert.Zero(t, s.Elapsed())
	assert.Equal(t, scanner.Progress{}, s.Progress())
}

func TestSession_IdleSession(t *testing.T) {
	s := newSession(newTree(t))

	select {
	case <-s.Done():
	default:
		t.Fatal("Done() should be closed for an idle session")
	}

	state, err := s.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scanner.Idle, state)

	_, ok := s.Mismatch(0)
	assert.False(t, ok)
	assert.Zero(t, s.PageCount(10))
}

func TestSession_WaitHonoursContext(t *testing.T) {
	release := make(chan struct{})
	s := newSession(newTree(t, "a.cs"), scanner.WithProcessHook(func(string) { <-release }))
	require.NoError(t, s.Start(context.Background(), root, exampleRules(t, false)))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	state, err := s.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, scanner.Running, state)
	assert.Greater(t, s.Elapsed(), time.Duration(0))

	close(release)
	state, err = s.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scanner.Completed, state)
}

func TestSession_Pagination(t *testing.T) {
	s := newSession(newTree(t, "a.cs", "b.cs", "c.cs", "d.cs", "e.cs"))
	runScan(t, s, root, exampleRules(t, false))
	require.Equal(t, 5, s.MismatchCount())

	assert.Equal(t, 3, s.PageCount(2))
	assert.Equal(t, 1, s.PageCount(5))
	assert.Equal(t, 5, s.PageCount(1))
	assert.Zero(t, s.PageCount(0))

	page := s.Page(1, 2)
	require.Len(t, page, 2)
	assert.Equal(t, "c.cs", page[0].RelPath)
	assert.Equal(t, "d.cs", page[1].RelPath)

	last := s.Page(2, 2)
	require.Len(t, last, 1)
	assert.Equal(t, "e.cs", last[0].RelPath)

	assert.Nil(t, s.Page(3, 2))
	assert.Nil(t, s.Page(-1, 2))
	assert.Nil(t, s.Page(0, 0))
}

func TestState_String(t *testing.T) {
	for state, want := range map[scanner.State]string{
		scanner.Idle:      "idle",
		scanner.Running:   "running",
		scanner.Completed: "completed",
		scanner.Cancelled: "cancelled",
	} {
		assert.Equal(t, want, state.String())
	}
	assert.True(t, strings.HasPrefix(scanner.State(42).String(), "state("))
	assert.True(t, scanner.Cancelled.Terminal())
	assert.False(t, scanner.Running.Terminal())
}
