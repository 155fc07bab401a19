package rules

import (
	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/knadh/koanf/v2"
)

// RulesKey is the configuration key holding the rule list
const RulesKey = "rules"

// LoadRules reads the rule list stored under RulesKey. It returns nil, nil
// when the key is absent so callers can fall back to DefaultRules. An empty
// list is returned as a non-nil empty slice: it is a deliberate choice to
// check nothing.
func LoadRules(k *koanf.Koanf) ([]NamingRule, error) {
	logger := logging.GetLogger("rules.config")

	if !k.Exists(RulesKey) {
		logger.Debug().Msg("No rules configured")
		return nil, nil
	}

	rules := []NamingRule{}
	if err := k.UnmarshalWithConf(RulesKey, &rules, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode rules")
	}

	logger.Debug().Int("ruleCount", len(rules)).Msg("Loaded rules from configuration")
	return rules, nil
}
