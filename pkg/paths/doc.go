// Package paths provides centralized path handling for assetlint.
//
// It follows the XDG Base Directory specification for the two locations the
// tool persists anything to:
//
//   - Config: $XDG_CONFIG_HOME/assetlint (user rule configuration)
//   - State: $XDG_STATE_HOME/assetlint (log file)
//
// # Environment Variables
//
//   - ASSETLINT_CONFIG_DIR: Override the config directory
//   - ASSETLINT_STATE_DIR: Override the state directory
//
// Project-level configuration lives next to the assets being checked, in one
// of the files listed in ProjectConfigFiles.
package paths
