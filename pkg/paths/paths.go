package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/assetlint/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for assetlint
	EnvConfigDir = "ASSETLINT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for assetlint
	EnvStateDir = "ASSETLINT_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "assetlint"

	// UserConfigFile is the name of the user configuration file
	UserConfigFile = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "assetlint.log"
)

// ProjectConfigFiles lists the project configuration file names, in lookup order.
var ProjectConfigFiles = []string{
	".assetlint.toml",
	"assetlint.toml",
	".assetlint.yaml",
	".assetlint.yml",
}

// ConfigDir returns the config directory for assetlint.
// XDG_CONFIG_HOME is read at call time; xdg caches it at init.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the state directory for assetlint
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserConfigPath returns the path of the user configuration file.
// The file is optional.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ProjectConfigPath returns the first project configuration file found in dir.
func ProjectConfigPath(dir string) (string, bool) {
	for _, name := range ProjectConfigFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ResolveRoot expands ~ and cleans a scan root. The result stays relative if
// the input was relative, so reported paths keep the shape the user typed.
func ResolveRoot(root string) (string, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return "", errors.New(errors.ErrConfigValid, "target directory is empty")
	}
	return filepath.Clean(ExpandHome(root)), nil
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
