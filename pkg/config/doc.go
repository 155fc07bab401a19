// Package config loads assetlint configuration.
//
// Configuration is layered with koanf, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. user config: $XDG_CONFIG_HOME/assetlint/config.toml
//  3. project config in the scanned directory (.assetlint.toml, assetlint.toml,
//     .assetlint.yaml or .assetlint.yml, first found wins)
//  4. an explicit file passed with --config
//  5. ASSETLINT_* environment variables
//
// Scalar keys merge key by key. The rules list is replaced as a whole by the
// highest layer that defines it.
package config
