package rules

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single regexp2 match. RE2 runs in linear time and
// needs no bound.
const matchTimeout = 250 * time.Millisecond

// pattern is a compiled regular expression independent of dialect
type pattern interface {
	// Match fails only when a regexp2 match exceeds matchTimeout
	Match(s string) (bool, error)
	String() string
}

type re2Pattern struct {
	re *regexp.Regexp
}

func (p re2Pattern) Match(s string) (bool, error) { return p.re.MatchString(s), nil }
func (p re2Pattern) String() string               { return p.re.String() }

type dotnetPattern struct {
	re *regexp2.Regexp
}

func (p dotnetPattern) Match(s string) (bool, error) {
	return p.re.MatchString(s)
}

func (p dotnetPattern) String() string { return p.re.String() }

func compilePattern(dialect Dialect, src string, ignoreCase bool) (pattern, error) {
	switch dialect {
	case DialectRE2, "":
		if ignoreCase {
			src = "(?i)" + src
		}
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, err
		}
		return re2Pattern{re: re}, nil
	case DialectDotNet:
		opts := regexp2.None
		if ignoreCase {
			opts |= regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(src, opts)
		if err != nil {
			return nil, err
		}
		re.MatchTimeout = matchTimeout
		return dotnetPattern{re: re}, nil
	default:
		return nil, fmt.Errorf("unknown pattern dialect %q", dialect)
	}
}
