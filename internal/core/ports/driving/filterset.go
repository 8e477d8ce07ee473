package driving

import "github.com/custodia-labs/drawback-cli/internal/core/domain"

// FilterSetService manages the user-visible filter list.
type FilterSetService interface {
	// Add validates and appends a filter, assigning its ID.
	Add(filter domain.FilterEntity) (domain.FilterEntity, error)

	// Edit replaces the value of an existing filter.
	Edit(id string, filter domain.FilterEntity) (domain.FilterEntity, error)

	// Remove drops a filter and releases its codes or range.
	Remove(id string) error

	// List returns the filters in the order they were added.
	List() []domain.FilterEntity

	// SearchFields converts the filters into engine input.
	SearchFields() []domain.SearchField

	// Reset drops every filter and clears validation state.
	Reset()
}
