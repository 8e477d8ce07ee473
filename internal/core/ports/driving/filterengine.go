package driving

import "github.com/custodia-labs/drawback-cli/internal/core/domain"

// FilterEngine selects the records satisfying every search field.
type FilterEngine interface {
	// Filter returns the records passing all fields, in input order.
	Filter(records []domain.Record, fields []domain.SearchField) []domain.Record
}

// ResultsService sorts and paginates filtered records.
type ResultsService interface {
	// Page sorts records and returns the requested page.
	Page(records []domain.Record, opts domain.PageOptions) domain.Page
}
