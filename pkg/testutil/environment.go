// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolate tests from the user's config, state and environment

package testutil

import (
	"os"
	"testing"
)

// ConfigEnvVars are the environment variables read by the config loader
var ConfigEnvVars = []string{
	"ASSETLINT_DIALECT",
	"ASSETLINT_IGNORE_EXTENSION_CASE",
	"ASSETLINT_PAGE_SIZE",
	"ASSETLINT_EXCLUDE_DIRS",
}

// Env describes an isolated test environment
type Env struct {
	// ConfigDir holds the user config.toml
	ConfigDir string
	// StateDir receives the log file
	StateDir string
}

// Isolate redirects the user config and state directories to fresh temp
// dirs and unsets every config environment variable for the test.
func Isolate(t *testing.T) *Env {
	t.Helper()

	env := &Env{
		ConfigDir: t.TempDir(),
		StateDir:  t.TempDir(),
	}
	t.Setenv("ASSETLINT_CONFIG_DIR", env.ConfigDir)
	t.Setenv("ASSETLINT_STATE_DIR", env.StateDir)

	for _, key := range ConfigEnvVars {
		// Setenv registers the restore; the variable must be absent, not empty
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
	return env
}
