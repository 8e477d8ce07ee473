package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driving"
)

// Ensure TimeRangeService implements the interface.
var _ driving.TimeRangeService = (*TimeRangeService)(nil)

const (
	isoDateLayout = "2006-01-02"
	displayLayout = "2006-01-02 15:04"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// TimeRangeService resolves relative ranges and keeps the accepted
// absolute ranges pairwise disjoint.
type TimeRangeService struct {
	store driven.RangeStore
	now   func() time.Time
	err   error
}

// NewTimeRangeService creates a time range service over the given store.
func NewTimeRangeService(store driven.RangeStore) *TimeRangeService {
	return &TimeRangeService{
		store: store,
		now:   time.Now,
	}
}

// SetClock replaces the time source. A nil clock restores time.Now.
func (s *TimeRangeService) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	s.now = now
}

// Now returns the current time according to the service clock.
func (s *TimeRangeService) Now() time.Time {
	return s.now()
}

// ResolveRelative computes the window of a relative range from now.
// Unknown tokens resolve to everything up to now.
func (s *TimeRangeService) ResolveRelative(r domain.RelativeRange) domain.AbsoluteRange {
	now := s.now()

	if days := r.LookbackDays(); days > 0 {
		return domain.AbsoluteRange{
			Start: now.Add(-time.Duration(days) * 24 * time.Hour),
			End:   now,
		}
	}

	if months := r.CalendarMonths(); months > 0 {
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return domain.AbsoluteRange{
			Start: firstOfMonth.AddDate(0, -months, 0),
			End:   firstOfMonth.Add(-time.Millisecond),
		}
	}

	return domain.AbsoluteRange{Start: time.Unix(0, 0).In(now.Location()), End: now}
}

// Resolve computes the window of any time range.
func (s *TimeRangeService) Resolve(tr domain.TimeRange) domain.AbsoluteRange {
	if tr.Kind == domain.TimeRangeRelative {
		return s.ResolveRelative(tr.Relative)
	}
	return tr.Absolute
}

// AddAbsolute appends a range after checking it against every accepted range.
func (s *TimeRangeService) AddAbsolute(start, end time.Time) ([]domain.AbsoluteRange, error) {
	s.err = nil
	candidate := domain.AbsoluteRange{Start: start, End: end}

	if err := checkBounds(candidate); err != nil {
		return s.fail(err)
	}

	ranges := s.store.List()
	for _, r := range ranges {
		if candidate.Overlaps(r) {
			return s.fail(fmt.Errorf("%w: Time range overlaps with existing ranges", domain.ErrRangeOverlap))
		}
	}

	ranges = append(ranges, candidate)
	s.store.Replace(ranges)
	return ranges, nil
}

// EditAbsolute replaces the range equal to oldRange with newRange.
func (s *TimeRangeService) EditAbsolute(oldRange, newRange domain.AbsoluteRange) ([]domain.AbsoluteRange, error) {
	s.err = nil
	ranges := s.store.List()

	index := indexOfRange(ranges, oldRange)
	if index < 0 {
		return s.fail(fmt.Errorf("%w: Time range to edit not found", domain.ErrNotFound))
	}

	if err := checkBounds(newRange); err != nil {
		return s.fail(err)
	}

	for i, r := range ranges {
		if i != index && newRange.Overlaps(r) {
			return s.fail(fmt.Errorf("%w: Edited time range overlaps with existing ranges", domain.ErrRangeOverlap))
		}
	}

	ranges[index] = newRange
	s.store.Replace(ranges)
	return ranges, nil
}

// RemoveAbsolute drops the range equal to r.
func (s *TimeRangeService) RemoveAbsolute(r domain.AbsoluteRange) error {
	ranges := s.store.List()
	index := indexOfRange(ranges, r)
	if index < 0 {
		return fmt.Errorf("%w: time range %s not found", domain.ErrNotFound, FormatRange(r))
	}
	s.store.Replace(append(ranges[:index], ranges[index+1:]...))
	return nil
}

// Ranges returns the accepted ranges in insertion order.
func (s *TimeRangeService) Ranges() []domain.AbsoluteRange {
	return s.store.List()
}

// Err returns the error of the last add or edit, or nil.
func (s *TimeRangeService) Err() error {
	return s.err
}

// Reset clears the accepted ranges and the error.
func (s *TimeRangeService) Reset() {
	s.store.Clear()
	s.err = nil
}

func (s *TimeRangeService) fail(err error) ([]domain.AbsoluteRange, error) {
	s.err = err
	return nil, err
}

func checkBounds(r domain.AbsoluteRange) error {
	if r.IsZero() {
		return fmt.Errorf("%w: Start and end times must be set", domain.ErrInvalidDateInput)
	}
	if !r.Ordered() {
		return fmt.Errorf("%w: End time must be after start time", domain.ErrRangeOrderingViolation)
	}
	return nil
}

func indexOfRange(ranges []domain.AbsoluteRange, target domain.AbsoluteRange) int {
	for i, r := range ranges {
		if r.Equal(target) {
			return i
		}
	}
	return -1
}

// ParseISODate parses a strict YYYY-MM-DD date as local midnight.
// Dates that do not exist on the calendar are rejected.
func ParseISODate(s string) (time.Time, bool) {
	if !isoDatePattern.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(isoDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(isoDateLayout) != s {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders t as "YYYY-MM-DD HH:MM" in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(displayLayout)
}

// FormatRange renders both bounds of r with FormatDate.
func FormatRange(r domain.AbsoluteRange) string {
	return FormatDate(r.Start) + " - " + FormatDate(r.End)
}
