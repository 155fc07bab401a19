package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/assetlint/pkg/filesystem"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// Tree creates a temp directory holding the given slash-separated relative
// paths as small files and returns its path.
func Tree(t *testing.T, files ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, f := range files {
		CreateFile(t, root, filepath.FromSlash(f), "x")
	}
	return root
}

// MemoryTree returns an in-memory filesystem holding the given relative paths
// under root.
func MemoryTree(t *testing.T, root string, files ...string) filesystem.FS {
	t.Helper()

	fs := filesystem.NewMemory()
	if err := fs.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", root, err)
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create parent directories for %s: %v", path, err)
		}
		if err := fs.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", path, err)
		}
	}
	return fs
}
