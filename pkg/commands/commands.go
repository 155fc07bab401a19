// Package commands provides the command implementations behind the assetlint
// CLI, independent of cobra.
//
// Each command is implemented in its own subdirectory:
//   - check/     - Check: load config, scan a tree, collect the result
//   - listrules/ - ListRules: the effective rule set as markdown
//   - genconfig/ - GenConfig: print or write the default configuration
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"context"

	"github.com/arthur-debert/assetlint/pkg/commands/check"
	"github.com/arthur-debert/assetlint/pkg/commands/genconfig"
	"github.com/arthur-debert/assetlint/pkg/commands/listrules"
)

// Check scans a directory with the configuration that applies to it.
type CheckOptions = check.CheckOptions
type CheckResult = check.CheckResult
type ProgressFunc = check.ProgressFunc

func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	return check.Check(ctx, opts)
}

// ListRules returns the effective rule set.
type ListRulesOptions = listrules.ListRulesOptions
type ListRulesResult = listrules.ListRulesResult

func ListRules(opts ListRulesOptions) (*ListRulesResult, error) {
	return listrules.ListRules(opts)
}

// GenConfig outputs or writes the default configuration.
type GenConfigOptions = genconfig.GenConfigOptions
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
