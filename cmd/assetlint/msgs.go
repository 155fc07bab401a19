package assetlint

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Check project files against naming conventions"
	MsgCheckShort      = "Scan a directory for naming mismatches"
	MsgRulesShort      = "Show the effective naming rules"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgGenConfigLong   = "Output the default configuration to stdout or, with -w, write it as the project config of a directory.\n\nAn existing config file is never overwritten."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Status messages
	MsgVersionFormat  = "assetlint %s (commit %s, built %s)\n"
	MsgConfigWritten  = "Wrote %s\n"
	MsgScanningFormat = "Scanning %s"
	MsgEnumerating    = "Discovering files (%d found)"
	MsgProcessing     = "Checking names"

	// Error messages
	MsgErrCheck        = "check failed: %w"
	MsgErrListRules    = "failed to list rules: %w"
	MsgErrGenConfig    = "failed to generate config: %w"
	MsgErrScanStopped  = "scan of %s was cancelled after %d of %d files"
	MsgErrMismatches   = "%d naming mismatch(es) found"
	MsgErrNoCommand    = "no command specified"
	MsgErrWriteReport  = "failed to write report: %w"
	MsgErrUnknownShell = "unsupported shell %q"
	MsgErrDetailFormat = "  %s: %v\n"
	MsgHintConfig      = "Run 'assetlint rules --raw' to see the effective rules and where they were loaded from."

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor    = "Disable colored output"
	MsgFlagConfig     = "Configuration file to apply on top of the project config (TOML or YAML)"
	MsgFlagFormat     = "Output format: text, json or checkstyle"
	MsgFlagPage       = "Page of mismatches to show, starting at 1"
	MsgFlagPageSize   = "Mismatches per page (default from page_size)"
	MsgFlagAll        = "Show all mismatches without pagination"
	MsgFlagNoProgress = "Do not draw a progress bar"
	MsgFlagExitZero   = "Exit with status 0 even when mismatches were found"
	MsgFlagExclude    = "Directory name to skip (repeatable)"
	MsgFlagRaw        = "Print raw markdown"
	MsgFlagWrite      = "Write config to a file instead of stdout"
	MsgFlagConfigFmt  = "Config format: toml or yaml"
	MsgFlagNoUserCfg  = "Ignore the user configuration file"
	MsgFlagManSection = "Man page section"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate = strings.TrimSpace(msgUsageTemplateRaw)
)
