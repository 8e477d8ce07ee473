package domain

// SuggestionType groups suggestions by the input they need.
type SuggestionType string

// Suggestion types.
const (
	SuggestionHTS  SuggestionType = "HTS"
	SuggestionDate SuggestionType = "DATE"
)

// IsValid returns true if the suggestion type is recognised.
func (t SuggestionType) IsValid() bool {
	return t == SuggestionHTS || t == SuggestionDate
}

// String returns the string representation.
func (t SuggestionType) String() string {
	return string(t)
}

// SuggestionKey identifies one entry of the filter catalogue.
type SuggestionKey string

// Suggestion keys that are not relative ranges.
const (
	SuggestionKeyHTSIsAny SuggestionKey = "TAG__HTS_IS_ANY"
	SuggestionKeyDateIsIn SuggestionKey = "TAG__DATE_IS_IN"
)

// RelativeRange returns the range named by the key, if it names one.
func (k SuggestionKey) RelativeRange() (RelativeRange, bool) {
	r := RelativeRange(k)
	return r, r.IsValid()
}

// Suggestion is an entry of the filter catalogue offered to users.
type Suggestion struct {
	Label string
	Key   SuggestionKey
	Type  SuggestionType
}

// DefaultSuggestions returns the filter catalogue in display order.
func DefaultSuggestions() []Suggestion {
	out := []Suggestion{
		{Label: "HTS is any", Key: SuggestionKeyHTSIsAny, Type: SuggestionHTS},
		{Label: "Date is in", Key: SuggestionKeyDateIsIn, Type: SuggestionDate},
	}
	for _, r := range RelativeRanges() {
		out = append(out, Suggestion{Label: r.Description(), Key: SuggestionKey(r), Type: SuggestionDate})
	}
	return out
}

// LookupSuggestion finds a catalogue entry by key.
func LookupSuggestion(key SuggestionKey) (Suggestion, bool) {
	for _, s := range DefaultSuggestions() {
		if s.Key == key {
			return s, true
		}
	}
	return Suggestion{}, false
}

// FilterEntity is one user-visible filter.
type FilterEntity struct {
	// ID is assigned when the filter is added.
	ID string

	// Suggestion is the catalogue entry the filter was built from.
	Suggestion Suggestion

	// HTSCodes is the raw comma-separated code list of HTS filters.
	HTSCodes string

	// TimeRange is set for "Date is in" filters.
	TimeRange *AbsoluteRange
}

// IsHTS reports whether the filter matches on HTS codes.
func (f FilterEntity) IsHTS() bool {
	return f.Suggestion.Type == SuggestionHTS
}

// IsAbsoluteDate reports whether the filter carries an absolute range.
func (f FilterEntity) IsAbsoluteDate() bool {
	return f.Suggestion.Type == SuggestionDate && f.Suggestion.Key == SuggestionKeyDateIsIn
}

// TimeRangeValue converts a date filter into a TimeRange.
// It returns false for HTS filters and for absolute filters without a range.
func (f FilterEntity) TimeRangeValue() (TimeRange, bool) {
	if f.Suggestion.Type != SuggestionDate {
		return TimeRange{}, false
	}
	if f.IsAbsoluteDate() {
		if f.TimeRange == nil {
			return TimeRange{}, false
		}
		return NewAbsoluteTimeRange(f.TimeRange.Start, f.TimeRange.End), true
	}
	r, ok := f.Suggestion.Key.RelativeRange()
	if !ok {
		return TimeRange{}, false
	}
	return NewRelativeTimeRange(r), true
}
