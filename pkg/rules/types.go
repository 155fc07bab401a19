package rules

// MetaExtension is the sidecar metadata extension that is always exempt
const MetaExtension = ".meta"

// NamingRule is a single naming convention
type NamingRule struct {
	// Category labels the kind of file the rule covers (Script, Texture, ...)
	Category string `koanf:"category" toml:"category" yaml:"category" json:"category"`

	// NamePattern must match the file name without its extension
	NamePattern string `koanf:"name" toml:"name" yaml:"name" json:"name" validate:"required"`

	// ExtensionPattern selects the files the rule applies to. It is matched
	// against the extension including the leading dot.
	ExtensionPattern string `koanf:"extension" toml:"extension" yaml:"extension" json:"extension" validate:"required"`
}

// Dialect selects the regular expression engine used to compile patterns
type Dialect string

const (
	// DialectRE2 uses Go's regexp package
	DialectRE2 Dialect = "re2"

	// DialectDotNet uses regexp2, which follows .NET semantics
	DialectDotNet Dialect = "dotnet"
)

// Options controls how a RuleSet compiles and evaluates its rules
type Options struct {
	Dialect             Dialect
	IgnoreExtensionCase bool

	// CacheSize bounds the extension cache; 0 selects DefaultCacheSize
	CacheSize int
}

// DefaultCacheSize is the number of distinct extensions remembered per RuleSet
const DefaultCacheSize = 512
