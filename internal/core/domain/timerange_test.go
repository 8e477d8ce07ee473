package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestRelativeRange_Catalogue(t *testing.T) {
	ranges := RelativeRanges()

	assert.Len(t, ranges, 8)
	for _, r := range ranges {
		assert.True(t, r.IsValid(), r.String())
		assert.NotEqual(t, "Unknown", r.Description())
		// Every range is either rolling or calendar, never both.
		assert.True(t, (r.LookbackDays() > 0) != (r.CalendarMonths() > 0), r.String())
	}
	assert.False(t, RelativeRange("nextWeek").IsValid())
	assert.Equal(t, "Unknown", RelativeRange("nextWeek").Description())
}

func TestRelativeRange_Windows(t *testing.T) {
	assert.Equal(t, 14, RangeTwoWeeksBeforeToNow.LookbackDays())
	assert.Equal(t, 90, RangeLast90DaysToNow.LookbackDays())
	assert.Equal(t, 0, RangeLast2CalendarMonths.LookbackDays())
	assert.Equal(t, 2, RangeLast2CalendarMonths.CalendarMonths())
	assert.Equal(t, 0, RangeOneWeekBeforeToNow.CalendarMonths())
}

func TestAbsoluteRange_Bounds(t *testing.T) {
	assert.True(t, AbsoluteRange{End: day(2)}.IsZero())
	assert.True(t, AbsoluteRange{Start: day(2)}.IsZero())
	assert.False(t, AbsoluteRange{Start: day(1), End: day(2)}.IsZero())

	assert.True(t, AbsoluteRange{Start: day(1), End: day(2)}.Ordered())
	assert.False(t, AbsoluteRange{Start: day(2), End: day(2)}.Ordered())
	assert.False(t, AbsoluteRange{Start: day(3), End: day(2)}.Ordered())
}

func TestAbsoluteRange_Overlaps(t *testing.T) {
	base := AbsoluteRange{Start: day(10), End: day(20)}

	tests := []struct {
		name  string
		other AbsoluteRange
		want  bool
	}{
		{name: "touching before", other: AbsoluteRange{Start: day(1), End: day(10)}, want: false},
		{name: "touching after", other: AbsoluteRange{Start: day(20), End: day(25)}, want: false},
		{name: "disjoint", other: AbsoluteRange{Start: day(21), End: day(25)}, want: false},
		{name: "straddles start", other: AbsoluteRange{Start: day(5), End: day(11)}, want: true},
		{name: "inside", other: AbsoluteRange{Start: day(12), End: day(13)}, want: true},
		{name: "contains", other: AbsoluteRange{Start: day(1), End: day(30)}, want: true},
		{name: "identical", other: base, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestAbsoluteRange_Contains(t *testing.T) {
	r := AbsoluteRange{Start: day(10), End: day(20)}

	assert.True(t, r.Contains(day(10)))
	assert.True(t, r.Contains(day(15)))
	assert.True(t, r.Contains(day(20)))
	assert.False(t, r.Contains(day(20).Add(time.Nanosecond)))
	assert.False(t, r.Contains(day(9)))
}

func TestAbsoluteRange_EqualComparesInstants(t *testing.T) {
	loc := time.FixedZone("UTC+1", 60*60)
	a := AbsoluteRange{Start: day(1), End: day(2)}
	b := AbsoluteRange{Start: day(1).In(loc), End: day(2).In(loc)}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(AbsoluteRange{Start: day(1), End: day(3)}))
}

func TestTimeRangeConstructors(t *testing.T) {
	abs := NewAbsoluteTimeRange(day(1), day(2))
	assert.Equal(t, TimeRangeAbsolute, abs.Kind)
	assert.Equal(t, AbsoluteRange{Start: day(1), End: day(2)}, abs.Absolute)

	rel := NewRelativeTimeRange(RangeLast30DaysToNow)
	assert.Equal(t, TimeRangeRelative, rel.Kind)
	assert.Equal(t, RangeLast30DaysToNow, rel.Relative)
}
