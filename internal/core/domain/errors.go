package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown source driver or filter type.
	ErrUnsupportedType = errors.New("unsupported type")

	// Pattern Grammar Errors.
	// These are always folded into a classification by the validator.

	// ErrMalformedPattern indicates a code that does not have exactly four sections.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrInvalidRange indicates a bad {x-y} digit range.
	ErrInvalidRange = errors.New("invalid range")

	// ErrIncompleteWildcard indicates a '%' not followed by 'd'.
	ErrIncompleteWildcard = errors.New("incomplete wildcard")

	// ErrInvalidWildcardPlacement indicates a '*' sharing its section with other characters.
	ErrInvalidWildcardPlacement = errors.New("invalid wildcard placement")

	// ErrInvalidCharacter indicates a character outside the pattern alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrDigitCountMismatch indicates a section whose digit positions differ from the required count.
	ErrDigitCountMismatch = errors.New("digit count mismatch")

	// Classification Errors.

	// ErrDuplicateInRegistry indicates a code that was accepted earlier in the session.
	ErrDuplicateInRegistry = errors.New("duplicate in registry")

	// ErrDuplicateInBatch indicates a code repeated within one batch.
	ErrDuplicateInBatch = errors.New("duplicate in batch")

	// Edit Errors.

	// ErrDuplicateTarget indicates an edit whose replacement code already exists.
	ErrDuplicateTarget = errors.New("duplicate target")

	// ErrNoNewCodes indicates an edit request without replacement codes.
	ErrNoNewCodes = errors.New("no new codes")

	// Time Range Errors.

	// ErrInvalidDateInput indicates a missing or zero date.
	ErrInvalidDateInput = errors.New("invalid date input")

	// ErrRangeOrderingViolation indicates a range whose end is not after its start.
	ErrRangeOrderingViolation = errors.New("range ordering violation")

	// ErrRangeOverlap indicates a range overlapping an accepted range.
	ErrRangeOverlap = errors.New("range overlap")
)

var grammarErrors = []error{
	ErrMalformedPattern,
	ErrInvalidRange,
	ErrIncompleteWildcard,
	ErrInvalidWildcardPlacement,
	ErrInvalidCharacter,
	ErrDigitCountMismatch,
}

// IsGrammarError reports whether err belongs to the pattern grammar family.
func IsGrammarError(err error) bool {
	for _, target := range grammarErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsDuplicateError reports whether err is a registry or batch duplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateInRegistry) || errors.Is(err, ErrDuplicateInBatch)
}
