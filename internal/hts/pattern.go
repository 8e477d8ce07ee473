package hts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/logger"
)

// Pattern is a compiled HTS code pattern.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Compile parses a four-section pattern into a matcher anchored at both ends.
func Compile(pattern string) (*Pattern, error) {
	source := strings.TrimSpace(pattern)
	sections := strings.Split(source, ".")
	if len(sections) != domain.SectionCount {
		return nil, fmt.Errorf("%w: invalid HTS pattern %q, must have exactly 4 sections (xxxx.xx.xx.xx)",
			domain.ErrMalformedPattern, source)
	}

	fragments := make([]string, len(sections))
	for i, section := range sections {
		frag, err := CompileSection(section, i)
		if err != nil {
			return nil, err
		}
		fragments[i] = frag
	}

	re, err := regexp.Compile("^" + strings.Join(fragments, `\.`) + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPattern, err)
	}
	return &Pattern{source: source, re: re}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether code is an instance of the pattern.
func (p *Pattern) Match(code string) bool {
	return p.re.MatchString(code)
}

// String returns the pattern source.
func (p *Pattern) String() string {
	return p.source
}

// Expr returns the compiled regular expression.
func (p *Pattern) Expr() string {
	return p.re.String()
}

// CompileAll compiles every pattern, logging and skipping the invalid ones.
func CompileAll(patterns []string) []*Pattern {
	compiled := make([]*Pattern, 0, len(patterns))
	for _, raw := range patterns {
		p, err := Compile(raw)
		if err != nil {
			logger.Warn("Invalid HTS pattern %q: %v", raw, err)
			continue
		}
		compiled = append(compiled, p)
	}
	return compiled
}

// MatchCompiled reports whether code matches any of the compiled patterns.
func MatchCompiled(code string, patterns []*Pattern) bool {
	for _, p := range patterns {
		if p.Match(code) {
			return true
		}
	}
	return false
}

// MatchAny reports whether code matches any pattern. Patterns that fail to
// compile never match. An empty list matches nothing.
func MatchAny(code string, patterns []string) bool {
	return MatchCompiled(code, CompileAll(patterns))
}

// MatchList is MatchAny over a comma-separated pattern list.
func MatchList(code, patterns string) bool {
	return MatchAny(code, SplitList(patterns))
}
