package config

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/assetlint/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

const generatedHeader = `# assetlint configuration
# Generated from the built-in defaults. Edit the rules below to match your
# project's conventions. Files ending in .meta are never checked.
`

// ParseFormat accepts "toml", "yaml" or "yml"
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown config format %q (want toml or yaml)", s)
	}
}

// FileName returns the project config file name for f
func (f Format) FileName() string {
	if f == FormatYAML {
		return ".assetlint.yaml"
	}
	return ".assetlint.toml"
}

// Marshal encodes cfg as a config file that Load accepts
func Marshal(cfg *Config, format Format) ([]byte, error) {
	var body []byte
	var err error

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(false)
		err = enc.Encode(cfg)
		body = buf.Bytes()
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(cfg)
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
		body = buf.Bytes()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode %s config", format)
	}

	return append([]byte(generatedHeader+"\n"), body...), nil
}

// GenerateConfigContent renders the default configuration in format
func GenerateConfigContent(format Format) ([]byte, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	return Marshal(cfg, format)
}
