package config

import (
	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/go-playground/validator/v10"
)

// Config is the effective assetlint configuration
type Config struct {
	Dialect             string   `koanf:"dialect" toml:"dialect" yaml:"dialect" json:"dialect" validate:"oneof=re2 dotnet"`
	IgnoreExtensionCase bool     `koanf:"ignore_extension_case" toml:"ignore_extension_case" yaml:"ignore_extension_case" json:"ignore_extension_case"`
	PageSize            int      `koanf:"page_size" toml:"page_size" yaml:"page_size" json:"page_size" validate:"gte=1"`
	ExcludeDirs         []string `koanf:"exclude_dirs" toml:"exclude_dirs" yaml:"exclude_dirs" json:"exclude_dirs"`

	Rules []rules.NamingRule `koanf:"-" toml:"rules" yaml:"rules" json:"rules" validate:"dive"`

	// Sources lists the layers that contributed, lowest precedence first
	Sources []string `koanf:"-" toml:"-" yaml:"-" json:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints. Patterns are only compiled by RuleSet.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}
	return nil
}

// RuleOptions returns the rule compilation options carried by c
func (c *Config) RuleOptions() rules.Options {
	return rules.Options{
		Dialect:             rules.Dialect(c.Dialect),
		IgnoreExtensionCase: c.IgnoreExtensionCase,
	}
}

// RuleSet validates c and compiles its rules
func (c *Config) RuleSet() (*rules.RuleSet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return rules.New(c.Rules, c.RuleOptions())
}
