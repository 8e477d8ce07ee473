package hts

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

// Normalize trims and upper-cases a code, keeping the %d wildcard lower case.
func Normalize(code string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(code)), "%D", domain.TokenWildcard)
}

// SplitList splits a comma-separated list, trimming entries and dropping empty ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitCodes splits a comma-separated list and normalises every code.
func SplitCodes(s string) []string {
	list := SplitList(s)
	for i, c := range list {
		list[i] = Normalize(c)
	}
	return list
}

// CheckCode validates the grammar of a single code after normalisation.
func CheckCode(code string) error {
	sections := strings.Split(Normalize(code), ".")
	if len(sections) != domain.SectionCount {
		return fmt.Errorf("%w: HTS code %q must have 4 sections (xxxx.xx.xx.xx)",
			domain.ErrMalformedPattern, strings.TrimSpace(code))
	}
	for i, section := range sections {
		if _, err := checkSection(section, i); err != nil {
			return err
		}
	}
	return nil
}

// AutoFormat reformats comma-separated codes as xxxx.xx.xx.xx while the user
// types. Digits, %d, a lone % and * are kept as tokens; every other character
// is dropped. A * opening a section fills it; a * inside a section closes it.
// Tokens past the fourth section are dropped. AutoFormat never fails.
func AutoFormat(codes string) string {
	list := strings.Split(codes, ",")
	out := make([]string, len(list))
	for i, code := range list {
		out[i] = formatCode(strings.TrimSpace(code))
	}
	return strings.Join(out, ", ")
}

func formatTokens(code string) []string {
	tokens := make([]string, 0, len(code))
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c == '%' && i+1 < len(code) && (code[i+1] == 'd' || code[i+1] == 'D'):
			tokens = append(tokens, domain.TokenWildcard)
			i++
		case c == '%', c == '*', isDigit(c):
			tokens = append(tokens, string(c))
		}
	}
	return tokens
}

func formatCode(code string) string {
	if code == "" {
		return ""
	}

	sections := make([]string, 0, domain.SectionCount)
	var current strings.Builder
	n := 0

	closeSection := func() {
		sections = append(sections, current.String())
		current.Reset()
		n = 0
	}

	for _, tok := range formatTokens(code) {
		if len(sections) == domain.SectionCount {
			break
		}
		if tok == domain.TokenSection {
			current.WriteString(tok)
			closeSection()
			continue
		}
		current.WriteString(tok)
		n++
		if n == domain.RequiredDigits(len(sections)) {
			closeSection()
		}
	}

	if n > 0 && len(sections) < domain.SectionCount {
		sections = append(sections, current.String())
	}
	return strings.Join(sections, ".")
}
