package driven

import "github.com/custodia-labs/drawback-cli/internal/core/domain"

// RangeStore holds the accepted absolute time ranges in insertion order.
// The store does not validate; callers keep the ranges pairwise disjoint.
type RangeStore interface {
	// List returns a copy of the accepted ranges.
	List() []domain.AbsoluteRange

	// Replace swaps the accepted ranges for ranges.
	Replace(ranges []domain.AbsoluteRange)

	// Clear removes every range.
	Clear()
}
