package domain

import "sort"

// SectionCount is the number of dot-separated sections in an HTS code.
const SectionCount = 4

// SectionDigits holds the required digit positions for each section.
var SectionDigits = [SectionCount]int{4, 2, 2, 2}

// Pattern tokens.
const (
	// TokenWildcard matches exactly one digit.
	TokenWildcard = "%d"

	// TokenSection matches every digit position of its section.
	TokenSection = "*"
)

// RequiredDigits returns the digit count required for a section index.
// Indices outside the code fall back to the trailing section width.
func RequiredDigits(index int) int {
	if index >= 0 && index < SectionCount {
		return SectionDigits[index]
	}
	return SectionDigits[SectionCount-1]
}

// CodeSet is a set of normalised HTS codes.
type CodeSet map[string]struct{}

// NewCodeSet creates a set holding the given codes.
func NewCodeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether code is in the set.
func (s CodeSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Add inserts codes into the set.
func (s CodeSet) Add(codes ...string) {
	for _, c := range codes {
		s[c] = struct{}{}
	}
}

// Remove deletes codes from the set.
func (s CodeSet) Remove(codes ...string) {
	for _, c := range codes {
		delete(s, c)
	}
}

// Len returns the number of codes.
func (s CodeSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s CodeSet) Clone() CodeSet {
	c := make(CodeSet, len(s))
	for code := range s {
		c[code] = struct{}{}
	}
	return c
}

// Sorted returns the codes in lexical order.
func (s CodeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for code := range s {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// CodeIssue records why a single code was rejected.
type CodeIssue struct {
	Code string
	Err  error
}

// ValidationResult partitions a batch of codes.
type ValidationResult struct {
	// ValidCodes passed grammar and duplicate checks.
	ValidCodes []string

	// InvalidCodes failed the pattern grammar.
	InvalidCodes []string

	// DuplicateCodes repeat a registered code or an earlier code in the batch.
	DuplicateCodes []string

	// Issues holds one entry per rejected code, in processing order.
	Issues []CodeIssue

	// LastErr is the last error encountered, nil when every code passed.
	LastErr error
}

// OK reports whether every code in the batch was accepted.
func (r ValidationResult) OK() bool {
	return len(r.InvalidCodes) == 0 && len(r.DuplicateCodes) == 0
}

// CodeEdit is an applied replacement of one code by zero or more codes.
type CodeEdit struct {
	OldCode  string
	NewCodes []string
}

// FailedEdit is a replacement that was refused.
type FailedEdit struct {
	OldCode  string
	NewCodes []string
	Err      error
}

// EditResult partitions the pairings of an edit request.
type EditResult struct {
	SuccessfulEdits []CodeEdit
	FailedEdits     []FailedEdit
}

// OK reports whether every pairing was applied.
func (r EditResult) OK() bool {
	return len(r.FailedEdits) == 0
}
