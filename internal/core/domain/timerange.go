package domain

import "time"

// RelativeRange names a date window computed from the current time.
type RelativeRange string

// Available relative ranges.
const (
	RangeTwoWeeksBeforeToNow RelativeRange = "twoWeeksBeforeToNow"
	RangeOneWeekBeforeToNow  RelativeRange = "oneWeekBeforeToNow"
	RangeLast30DaysToNow     RelativeRange = "last30DaysToNow"
	RangeLast60DaysToNow     RelativeRange = "last60DaysToNow"
	RangeLast90DaysToNow     RelativeRange = "last90DaysToNow"

	// Calendar month ranges end with the previous month; the current
	// partial month is never included.
	RangeLast1CalendarMonth  RelativeRange = "last1CalendarMonth"
	RangeLast2CalendarMonths RelativeRange = "last2CalendarMonths"
	RangeLast3CalendarMonths RelativeRange = "last3CalendarMonths"
)

// RelativeRanges lists every relative range in display order.
func RelativeRanges() []RelativeRange {
	return []RelativeRange{
		RangeTwoWeeksBeforeToNow,
		RangeOneWeekBeforeToNow,
		RangeLast30DaysToNow,
		RangeLast60DaysToNow,
		RangeLast90DaysToNow,
		RangeLast1CalendarMonth,
		RangeLast2CalendarMonths,
		RangeLast3CalendarMonths,
	}
}

// IsValid returns true if the range is recognised.
func (r RelativeRange) IsValid() bool {
	switch r {
	case RangeTwoWeeksBeforeToNow, RangeOneWeekBeforeToNow,
		RangeLast30DaysToNow, RangeLast60DaysToNow, RangeLast90DaysToNow,
		RangeLast1CalendarMonth, RangeLast2CalendarMonths, RangeLast3CalendarMonths:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r RelativeRange) String() string {
	return string(r)
}

// Description returns the label shown for the range.
func (r RelativeRange) Description() string {
	switch r {
	case RangeTwoWeeksBeforeToNow:
		return "Date is two weeks to now"
	case RangeOneWeekBeforeToNow:
		return "Date is one week to now"
	case RangeLast30DaysToNow:
		return "Date is last 30 days to now"
	case RangeLast60DaysToNow:
		return "Date is last 60 days to now"
	case RangeLast90DaysToNow:
		return "Date is last 90 days to now"
	case RangeLast1CalendarMonth:
		return "Date is last calendar month"
	case RangeLast2CalendarMonths:
		return "Date is last 2 calendar months"
	case RangeLast3CalendarMonths:
		return "Date is last 3 calendar months"
	default:
		return "Unknown"
	}
}

// LookbackDays returns the day count of a rolling window, or 0 for calendar ranges.
func (r RelativeRange) LookbackDays() int {
	switch r {
	case RangeTwoWeeksBeforeToNow:
		return 14
	case RangeOneWeekBeforeToNow:
		return 7
	case RangeLast30DaysToNow:
		return 30
	case RangeLast60DaysToNow:
		return 60
	case RangeLast90DaysToNow:
		return 90
	default:
		return 0
	}
}

// CalendarMonths returns the month count of a calendar range, or 0 for rolling windows.
func (r RelativeRange) CalendarMonths() int {
	switch r {
	case RangeLast1CalendarMonth:
		return 1
	case RangeLast2CalendarMonths:
		return 2
	case RangeLast3CalendarMonths:
		return 3
	default:
		return 0
	}
}

// AbsoluteRange is a concrete window between two instants.
type AbsoluteRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether either bound is unset.
func (r AbsoluteRange) IsZero() bool {
	return r.Start.IsZero() || r.End.IsZero()
}

// Ordered reports whether End is strictly after Start.
func (r AbsoluteRange) Ordered() bool {
	return r.End.After(r.Start)
}

// Overlaps uses the open-interval test, so ranges that only touch do not overlap.
func (r AbsoluteRange) Overlaps(other AbsoluteRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Contains reports whether t lies within the range, bounds included.
func (r AbsoluteRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Equal compares both bounds by instant.
func (r AbsoluteRange) Equal(other AbsoluteRange) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// TimeRangeKind discriminates TimeRange values.
type TimeRangeKind string

// Time range kinds.
const (
	TimeRangeAbsolute TimeRangeKind = "absolute"
	TimeRangeRelative TimeRangeKind = "relative"
)

// TimeRange is either an absolute window or a relative range token.
type TimeRange struct {
	Kind     TimeRangeKind
	Absolute AbsoluteRange
	Relative RelativeRange
}

// NewAbsoluteTimeRange creates an absolute time range.
func NewAbsoluteTimeRange(start, end time.Time) TimeRange {
	return TimeRange{
		Kind:     TimeRangeAbsolute,
		Absolute: AbsoluteRange{Start: start, End: end},
	}
}

// NewRelativeTimeRange creates a relative time range.
func NewRelativeTimeRange(r RelativeRange) TimeRange {
	return TimeRange{
		Kind:     TimeRangeRelative,
		Relative: r,
	}
}
