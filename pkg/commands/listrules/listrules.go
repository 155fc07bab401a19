package listrules

import (
	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/report"
	"github.com/arthur-debert/assetlint/pkg/rules"
)

// ListRulesOptions holds options for the rules command
type ListRulesOptions struct {
	// Root is searched for a project config; empty skips that layer
	Root           string
	ConfigFile     string
	SkipUserConfig bool
}

// ListRulesResult is the effective rule set in markdown form
type ListRulesResult struct {
	Config   *config.Config
	Rules    []rules.NamingRule
	Markdown string
}

// ListRules loads and compiles the effective rules for Root
func ListRules(opts ListRulesOptions) (*ListRulesResult, error) {
	logger := logging.GetLogger("commands.listrules")

	cfg, err := config.Load(config.LoadOptions{
		Root:           opts.Root,
		ConfigFile:     opts.ConfigFile,
		SkipUserConfig: opts.SkipUserConfig,
	})
	if err != nil {
		return nil, err
	}

	// Compile so broken patterns are reported here rather than at scan time
	rs, err := cfg.RuleSet()
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("ruleCount", rs.Len()).Msg("Listing rules")
	return &ListRulesResult{
		Config:   cfg,
		Rules:    rs.Rules(),
		Markdown: report.RulesMarkdown(rs.Rules(), rs.Options(), cfg.Sources),
	}, nil
}
