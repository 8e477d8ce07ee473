package driving

import (
	"time"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

// TimeRangeService resolves relative ranges and maintains a collection of
// disjoint absolute ranges.
type TimeRangeService interface {
	// ResolveRelative computes the window of a relative range from now.
	ResolveRelative(r domain.RelativeRange) domain.AbsoluteRange

	// Resolve computes the window of any time range.
	Resolve(tr domain.TimeRange) domain.AbsoluteRange

	// AddAbsolute appends a range that overlaps no accepted range.
	AddAbsolute(start, end time.Time) ([]domain.AbsoluteRange, error)

	// EditAbsolute replaces an accepted range in place.
	EditAbsolute(oldRange, newRange domain.AbsoluteRange) ([]domain.AbsoluteRange, error)

	// RemoveAbsolute drops an accepted range.
	RemoveAbsolute(r domain.AbsoluteRange) error

	// Ranges returns the accepted ranges.
	Ranges() []domain.AbsoluteRange

	// Err returns the most recent error, or nil.
	Err() error

	// Reset clears the accepted ranges and the error.
	Reset()
}
