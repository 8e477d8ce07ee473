package hts

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

type tokenKind int

const (
	tokenDigit tokenKind = iota
	tokenRange
	tokenWildcard
	tokenSection
)

// token is one digit position (or, for tokenSection, a whole section).
type token struct {
	kind tokenKind
	lo   byte
	hi   byte
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// scanSection tokenises one section, left to right.
func scanSection(section string) ([]token, error) {
	tokens := make([]token, 0, len(section))

	for i := 0; i < len(section); {
		c := section[i]
		switch {
		case c == '{':
			closeIdx := strings.IndexByte(section[i+1:], '}')
			if closeIdx == -1 {
				return nil, fmt.Errorf("%w: missing '}' in range at %q", domain.ErrInvalidRange, section[i:])
			}
			inside := section[i+1 : i+1+closeIdx]
			tok, err := parseRange(inside)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i += closeIdx + 2

		case c == '%':
			if i+1 < len(section) && (section[i+1] == 'd' || section[i+1] == 'D') {
				tokens = append(tokens, token{kind: tokenWildcard})
				i += 2
				continue
			}
			return nil, fmt.Errorf("%w: '%%' in section %q must be followed by 'd'", domain.ErrIncompleteWildcard, section)

		case c == '*':
			if len(section) != 1 {
				return nil, fmt.Errorf("%w: '*' must occupy the entire section: %q", domain.ErrInvalidWildcardPlacement, section)
			}
			tokens = append(tokens, token{kind: tokenSection})
			i++

		case isDigit(c):
			tokens = append(tokens, token{kind: tokenDigit, lo: c, hi: c})
			i++

		default:
			return nil, fmt.Errorf("%w: %q in section %q", domain.ErrInvalidCharacter, string(c), section)
		}
	}

	return tokens, nil
}

func parseRange(inside string) (token, error) {
	startStr, endStr, ok := strings.Cut(inside, "-")
	if !ok || endStr == "" {
		return token{}, fmt.Errorf("%w: invalid range syntax \"{%s}\", expected \"{x-y}\"", domain.ErrInvalidRange, inside)
	}
	if len(startStr) != 1 || len(endStr) != 1 || !isDigit(startStr[0]) || !isDigit(endStr[0]) {
		return token{}, fmt.Errorf("%w: range \"{%s}\" must hold two digits within 0-9", domain.ErrInvalidRange, inside)
	}
	if startStr[0] > endStr[0] {
		return token{}, fmt.Errorf("%w: range \"{%s}\" start cannot exceed end", domain.ErrInvalidRange, inside)
	}
	return token{kind: tokenRange, lo: startStr[0], hi: endStr[0]}, nil
}

func countDigits(tokens []token, index int) int {
	count := 0
	for _, tok := range tokens {
		if tok.kind == tokenSection {
			count += domain.RequiredDigits(index)
			continue
		}
		count++
	}
	return count
}

// ParseSection returns the number of digit positions a section contributes.
// A lone '*' counts as the full width of the section at index.
func ParseSection(section string, index int) (int, error) {
	tokens, err := scanSection(section)
	if err != nil {
		return 0, err
	}
	return countDigits(tokens, index), nil
}

// checkSection enforces the section grammar and the required digit count.
func checkSection(section string, index int) ([]token, error) {
	tokens, err := scanSection(section)
	if err != nil {
		return nil, err
	}
	if section == domain.TokenSection {
		return tokens, nil
	}
	required := domain.RequiredDigits(index)
	if count := countDigits(tokens, index); count != required {
		return nil, fmt.Errorf("%w: section %q has %d digit(s); expected %d",
			domain.ErrDigitCountMismatch, section, count, required)
	}
	return tokens, nil
}

// CompileSection returns the regular expression fragment for one section.
func CompileSection(section string, index int) (string, error) {
	tokens, err := checkSection(section, index)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, tok := range tokens {
		switch tok.kind {
		case tokenDigit:
			b.WriteByte(tok.lo)
		case tokenRange:
			fmt.Fprintf(&b, "[%c-%c]", tok.lo, tok.hi)
		case tokenWildcard:
			b.WriteString("[0-9]")
		case tokenSection:
			fmt.Fprintf(&b, "[0-9]{%d}", domain.RequiredDigits(index))
		}
	}
	return b.String(), nil
}
