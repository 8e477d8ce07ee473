package domain

import "strings"

// Record is one row of the dataset, keyed by field name.
// The engine only reads the keys named by its search fields.
type Record map[string]any

// SearchFieldType discriminates SearchField values.
type SearchFieldType string

// Search field types.
const (
	SearchFieldTimeRange SearchFieldType = "timeRange"
	SearchFieldHTSCode   SearchFieldType = "htsCode"
	SearchFieldExact     SearchFieldType = "exact"
)

// IsValid returns true if the field type is recognised.
func (t SearchFieldType) IsValid() bool {
	switch t {
	case SearchFieldTimeRange, SearchFieldHTSCode, SearchFieldExact:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t SearchFieldType) String() string {
	return string(t)
}

// SearchField is one criterion of a filter request. Only the value member
// matching Type is read.
type SearchField struct {
	Type SearchFieldType
	Key  string

	// TimeRanges is read for timeRange fields; any range may match.
	TimeRanges []TimeRange

	// Patterns is read for htsCode fields; any pattern may match.
	Patterns []string

	// Value is read for exact fields.
	Value any
}

// NewTimeRangeField creates a timeRange field.
func NewTimeRangeField(key string, ranges ...TimeRange) SearchField {
	return SearchField{Type: SearchFieldTimeRange, Key: key, TimeRanges: ranges}
}

// NewHTSCodeField creates an htsCode field. Each pattern argument may hold
// a comma-separated list.
func NewHTSCodeField(key string, patterns ...string) SearchField {
	var list []string
	for _, p := range patterns {
		for _, part := range strings.Split(p, ",") {
			if part = strings.TrimSpace(part); part != "" {
				list = append(list, part)
			}
		}
	}
	return SearchField{Type: SearchFieldHTSCode, Key: key, Patterns: list}
}

// NewExactField creates an exact-match field.
func NewExactField(key string, value any) SearchField {
	return SearchField{Type: SearchFieldExact, Key: key, Value: value}
}

// IsVacuous reports whether the field passes every record: its key is empty
// or it carries no value.
func (f SearchField) IsVacuous() bool {
	if f.Key == "" {
		return true
	}
	switch f.Type {
	case SearchFieldTimeRange:
		return len(f.TimeRanges) == 0
	case SearchFieldHTSCode:
		return len(f.Patterns) == 0
	case SearchFieldExact:
		if f.Value == nil {
			return true
		}
		s, ok := f.Value.(string)
		return ok && s == ""
	default:
		return true
	}
}

// SortDirection represents sort order.
type SortDirection string

// Sort directions.
const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// MaxSortLevels bounds the number of sort keys applied to results.
const MaxSortLevels = 2

// DefaultPageSize is used when a page request does not set one.
const DefaultPageSize = 10

// SortSpec orders results by one record key.
type SortSpec struct {
	Key string
	Dir SortDirection
}

// ParseSortSpec parses "key" or "key:dir". Unknown directions become asc.
func ParseSortSpec(s string) SortSpec {
	key, dir, _ := strings.Cut(strings.TrimSpace(s), ":")
	spec := SortSpec{Key: strings.TrimSpace(key), Dir: SortAsc}
	if SortDirection(strings.ToLower(strings.TrimSpace(dir))) == SortDesc {
		spec.Dir = SortDesc
	}
	return spec
}

// String returns the spec as "key:dir".
func (s SortSpec) String() string {
	return s.Key + ":" + string(s.Dir)
}

// PageOptions configures sorting and pagination of filtered records.
type PageOptions struct {
	Page     int
	PageSize int
	Sorts    []SortSpec
}

// Page is one page of sorted records.
type Page struct {
	Records      []Record
	TotalRecords int
	Page         int
	PageSize     int
	TotalPages   int
	Sorts        []SortSpec
}
