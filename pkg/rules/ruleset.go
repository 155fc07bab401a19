package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type compiledRule struct {
	rule NamingRule
	name pattern
	ext  pattern
}

// RuleSet is an ordered, compiled, read-only collection of naming rules.
// It is safe for concurrent use.
type RuleSet struct {
	rules []compiledRule
	opts  Options

	// extension -> indices of rules whose extension pattern matches it
	cache *lru.Cache[string, []int]
}

// New validates and compiles rules. The first invalid rule aborts construction
// with a CONFIG_INVALID error. An empty rule list is valid and never flags
// anything.
func New(rules []NamingRule, opts Options) (*RuleSet, error) {
	if opts.Dialect == "" {
		opts.Dialect = DialectRE2
	}
	if opts.Dialect != DialectRE2 && opts.Dialect != DialectDotNet {
		return nil, errors.Newf(errors.ErrConfigValid, "unknown pattern dialect %q", opts.Dialect).
			WithDetail("dialect", string(opts.Dialect))
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, []int](opts.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create extension cache")
	}

	rs := &RuleSet{
		rules: make([]compiledRule, 0, len(rules)),
		opts:  opts,
		cache: cache,
	}

	for i, rule := range rules {
		if err := validate.Struct(rule); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid,
				"rule %d (%s) is incomplete", i, ruleLabel(rule)).
				WithDetail("rule", i)
		}

		ext, err := compilePattern(opts.Dialect, rule.ExtensionPattern, opts.IgnoreExtensionCase)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid,
				"rule %d (%s) has an invalid extension pattern %q", i, ruleLabel(rule), rule.ExtensionPattern).
				WithDetail("rule", i).
				WithDetail("pattern", rule.ExtensionPattern)
		}

		name, err := compilePattern(opts.Dialect, rule.NamePattern, false)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid,
				"rule %d (%s) has an invalid name pattern %q", i, ruleLabel(rule), rule.NamePattern).
				WithDetail("rule", i).
				WithDetail("pattern", rule.NamePattern)
		}

		rs.rules = append(rs.rules, compiledRule{rule: rule, name: name, ext: ext})
	}

	return rs, nil
}

// Evaluate reports whether a file is mismatched. fileName is the base name
// without extension and extension includes the leading dot.
func (rs *RuleSet) Evaluate(fileName, extension string) bool {
	_, mismatch := rs.Check(fileName, extension)
	return mismatch
}

// Check is Evaluate that also returns the rule that flagged the file. A
// pattern that runs past the match timeout counts as not matching; Verdict
// reports such timeouts instead.
func (rs *RuleSet) Check(fileName, extension string) (NamingRule, bool) {
	rule, mismatch, _ := rs.Verdict(fileName, extension)
	return rule, mismatch
}

// CheckPath splits path and runs Check on its base name
func (rs *RuleSet) CheckPath(path string) (NamingRule, bool) {
	name, ext := SplitName(path)
	return rs.Check(name, ext)
}

// Verdict is Check that fails with PATTERN_TIMEOUT when a pattern could not
// decide within the match timeout. Only the dotnet dialect can time out.
// Alongside an error the rule and flag are what Check would return.
func (rs *RuleSet) Verdict(fileName, extension string) (NamingRule, bool, error) {
	if rs == nil || extension == MetaExtension {
		return NamingRule{}, false, nil
	}

	idx, err := rs.applicable(extension)
	for _, i := range idx {
		cr := rs.rules[i]
		ok, matchErr := cr.name.Match(fileName)
		if matchErr != nil {
			return cr.rule, true, timeoutError(matchErr, i, cr.rule, cr.name, fileName+extension)
		}
		if !ok {
			return cr.rule, true, err
		}
	}
	return NamingRule{}, false, err
}

// VerdictPath splits path and runs Verdict on its base name
func (rs *RuleSet) VerdictPath(path string) (NamingRule, bool, error) {
	name, ext := SplitName(path)
	return rs.Verdict(name, ext)
}

// applicable returns the rules whose extension pattern matches extension.
// A timed-out extension pattern leaves its rule out and is reported; such
// results are not cached.
func (rs *RuleSet) applicable(extension string) ([]int, error) {
	if idx, ok := rs.cache.Get(extension); ok {
		return idx, nil
	}

	var idx []int
	var firstErr error
	for i, cr := range rs.rules {
		ok, err := cr.ext.Match(extension)
		if err != nil {
			if firstErr == nil {
				firstErr = timeoutError(err, i, cr.rule, cr.ext, extension)
			}
			continue
		}
		if ok {
			idx = append(idx, i)
		}
	}
	if firstErr == nil {
		rs.cache.Add(extension, idx)
	}
	return idx, firstErr
}

func timeoutError(err error, index int, rule NamingRule, p pattern, input string) error {
	return errors.Wrapf(err, errors.ErrPatternTimeout,
		"rule %d (%s) timed out matching %q", index, ruleLabel(rule), input).
		WithDetail("rule", index).
		WithDetail("pattern", p.String())
}

// Rules returns a copy of the rules in declaration order
func (rs *RuleSet) Rules() []NamingRule {
	if rs == nil {
		return nil
	}
	out := make([]NamingRule, len(rs.rules))
	for i, cr := range rs.rules {
		out[i] = cr.rule
	}
	return out
}

// Len returns the number of rules
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Options returns the options the set was compiled with
func (rs *RuleSet) Options() Options {
	return rs.opts
}

// Dialect returns the pattern dialect of the set
func (rs *RuleSet) Dialect() Dialect {
	if rs == nil {
		return DialectRE2
	}
	return rs.opts.Dialect
}

// SplitName returns the base name of path without its extension, and the
// extension including the leading dot. The extension starts at the last dot
// of the base name, so ".gitignore" has an empty name.
func SplitName(path string) (name, ext string) {
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}

func ruleLabel(rule NamingRule) string {
	if rule.Category == "" {
		return "unnamed"
	}
	return rule.Category
}

// String renders a rule for logs
func (r NamingRule) String() string {
	return fmt.Sprintf("%s{extension=%q name=%q}", ruleLabel(r), r.ExtensionPattern, r.NamePattern)
}
