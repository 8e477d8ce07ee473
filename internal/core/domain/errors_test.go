package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrInvalidInput", ErrInvalidInput, "invalid input"},
		{"ErrUnsupportedType", ErrUnsupportedType, "unsupported type"},
		{"ErrMalformedPattern", ErrMalformedPattern, "malformed pattern"},
		{"ErrInvalidRange", ErrInvalidRange, "invalid range"},
		{"ErrIncompleteWildcard", ErrIncompleteWildcard, "incomplete wildcard"},
		{"ErrInvalidWildcardPlacement", ErrInvalidWildcardPlacement, "invalid wildcard placement"},
		{"ErrInvalidCharacter", ErrInvalidCharacter, "invalid character"},
		{"ErrDigitCountMismatch", ErrDigitCountMismatch, "digit count mismatch"},
		{"ErrDuplicateInRegistry", ErrDuplicateInRegistry, "duplicate in registry"},
		{"ErrDuplicateInBatch", ErrDuplicateInBatch, "duplicate in batch"},
		{"ErrDuplicateTarget", ErrDuplicateTarget, "duplicate target"},
		{"ErrNoNewCodes", ErrNoNewCodes, "no new codes"},
		{"ErrInvalidDateInput", ErrInvalidDateInput, "invalid date input"},
		{"ErrRangeOrderingViolation", ErrRangeOrderingViolation, "range ordering violation"},
		{"ErrRangeOverlap", ErrRangeOverlap, "range overlap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

// TestErrors_Wrapping tests that wrapped errors still match their sentinel
func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: Duplicated HTS code: %q", ErrDuplicateInRegistry, "1234.12.34.56")

	assert.True(t, errors.Is(wrapped, ErrDuplicateInRegistry))
	assert.False(t, errors.Is(wrapped, ErrDuplicateInBatch))
	assert.Equal(t, `duplicate in registry: Duplicated HTS code: "1234.12.34.56"`, wrapped.Error())
}

func TestIsGrammarError(t *testing.T) {
	for _, err := range []error{
		ErrMalformedPattern, ErrInvalidRange, ErrIncompleteWildcard,
		ErrInvalidWildcardPlacement, ErrInvalidCharacter, ErrDigitCountMismatch,
	} {
		assert.True(t, IsGrammarError(fmt.Errorf("%w: detail", err)), err.Error())
	}

	for _, err := range []error{nil, ErrDuplicateInBatch, ErrRangeOverlap, errors.New("other")} {
		assert.False(t, IsGrammarError(err))
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("%w: x", ErrDuplicateInRegistry)))
	assert.True(t, IsDuplicateError(ErrDuplicateInBatch))
	assert.False(t, IsDuplicateError(ErrDuplicateTarget))
	assert.False(t, IsDuplicateError(nil))
}
