package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/paths"
	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. ASSETLINT_PAGE_SIZE
const EnvPrefix = "ASSETLINT_"

// SourceDefaults and SourceEnv name the non-file layers in Config.Sources
const (
	SourceDefaults = "defaults"
	SourceEnv      = "env"
)

// envKeys are the keys that can be set from the environment
var envKeys = map[string]struct{}{
	"dialect":               {},
	"ignore_extension_case": {},
	"page_size":             {},
	"exclude_dirs":          {},
}

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// Root is the scanned directory, searched for a project config
	Root string
	// ConfigFile is an explicit config file; it must exist
	ConfigFile string
	// SkipUserConfig ignores the user config layer
	SkipUserConfig bool
}

// Load builds the effective configuration from every layer and validates it
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	sources = append(sources, SourceDefaults)

	// 2. User config
	if !opts.SkipUserConfig {
		userPath := paths.UserConfigPath()
		if fileExists(userPath) {
			if err := loadFile(k, userPath); err != nil {
				return nil, err
			}
			sources = append(sources, userPath)
		}
	}

	// 3. Project config
	if opts.Root != "" {
		if projectPath, ok := paths.ProjectConfigPath(opts.Root); ok {
			if err := loadFile(k, projectPath); err != nil {
				return nil, err
			}
			sources = append(sources, projectPath)
		}
	}

	// 4. Explicit config file
	if opts.ConfigFile != "" {
		path := paths.ExpandHome(opts.ConfigFile)
		if !fileExists(path) {
			return nil, errors.Newf(errors.ErrConfigLoad, "config file not found: %s", path).
				WithDetail("path", path)
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}

	// 5. Environment
	envK := koanf.New(".")
	if err := envK.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}
	if len(envK.Keys()) > 0 {
		if err := k.Merge(envK); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge environment")
		}
		sources = append(sources, SourceEnv)
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("sources", sources).
		Str("dialect", cfg.Dialect).
		Int("ruleCount", len(cfg.Rules)).
		Msg("Configuration loaded")
	return cfg, nil
}

// Defaults returns the configuration from the embedded defaults alone
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Sources = []string{SourceDefaults}
	return cfg, nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				trimSliceHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	ruleList, err := rules.LoadRules(k)
	if err != nil {
		return nil, err
	}
	if ruleList == nil {
		ruleList = rules.DefaultRules()
	}
	cfg.Rules = ruleList
	return &cfg, nil
}

// loadFile loads a TOML or YAML file, picking the parser by extension
func loadFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format: %s", path).
			WithDetail("path", path)
	}
}

// envKey maps ASSETLINT_PAGE_SIZE to page_size and drops unknown variables
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if _, ok := envKeys[key]; !ok {
		return ""
	}
	return key
}

// trimSliceHookFunc trims whitespace around comma separated env values
func trimSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Slice || t.Elem().Kind() != reflect.String {
			return data, nil
		}
		items, ok := data.([]string)
		if !ok {
			return data, nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out, nil
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
