package driven

import "github.com/custodia-labs/drawback-cli/internal/core/domain"

// CodeRegistry holds the normalised HTS codes accepted during a session.
// Batch operations read a snapshot, work on it, and commit the result once.
type CodeRegistry interface {
	// Snapshot returns an independent copy of the registered codes.
	Snapshot() domain.CodeSet

	// Commit replaces the registered codes with set.
	Commit(set domain.CodeSet)

	// Len returns the number of registered codes.
	Len() int

	// Clear removes every code.
	Clear()
}
