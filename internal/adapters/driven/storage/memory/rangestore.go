package memory

import (
	"sync"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
)

// Ensure RangeStore implements the interface.
var _ driven.RangeStore = (*RangeStore)(nil)

// RangeStore is an in-memory implementation of driven.RangeStore.
type RangeStore struct {
	mu     sync.RWMutex
	ranges []domain.AbsoluteRange
}

// NewRangeStore creates an empty range store.
func NewRangeStore() *RangeStore {
	return &RangeStore{}
}

// List returns a copy of the accepted ranges.
func (s *RangeStore) List() []domain.AbsoluteRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AbsoluteRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Replace swaps the accepted ranges for a copy of ranges.
func (s *RangeStore) Replace(ranges []domain.AbsoluteRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges = make([]domain.AbsoluteRange, len(ranges))
	copy(s.ranges, ranges)
}

// Clear removes every range.
func (s *RangeStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges = nil
}
