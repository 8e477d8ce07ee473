package memory

import (
	"sync"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
)

// Ensure CodeRegistry implements the interface.
var _ driven.CodeRegistry = (*CodeRegistry)(nil)

// CodeRegistry is an in-memory implementation of driven.CodeRegistry.
type CodeRegistry struct {
	mu    sync.RWMutex
	codes domain.CodeSet
}

// NewCodeRegistry creates a registry holding the given codes.
func NewCodeRegistry(codes ...string) *CodeRegistry {
	return &CodeRegistry{
		codes: domain.NewCodeSet(codes...),
	}
}

// Snapshot returns an independent copy of the registered codes.
func (r *CodeRegistry) Snapshot() domain.CodeSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.codes.Clone()
}

// Commit replaces the registered codes with a copy of set.
func (r *CodeRegistry) Commit(set domain.CodeSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = set.Clone()
}

// Len returns the number of registered codes.
func (r *CodeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.codes.Len()
}

// Clear removes every code.
func (r *CodeRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = domain.NewCodeSet()
}
