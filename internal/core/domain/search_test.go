package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchFieldType_IsValid(t *testing.T) {
	assert.True(t, SearchFieldTimeRange.IsValid())
	assert.True(t, SearchFieldHTSCode.IsValid())
	assert.True(t, SearchFieldExact.IsValid())
	assert.False(t, SearchFieldType("fuzzy").IsValid())
	assert.Equal(t, "htsCode", SearchFieldHTSCode.String())
}

func TestNewHTSCodeField_SplitsLists(t *testing.T) {
	f := NewHTSCodeField("HTSCode", "1234.*.*.*, 9999.99.99.99", " ", "1111.11.11.11")

	assert.Equal(t, SearchFieldHTSCode, f.Type)
	assert.Equal(t, []string{"1234.*.*.*", "9999.99.99.99", "1111.11.11.11"}, f.Patterns)
}

func TestSearchField_IsVacuous(t *testing.T) {
	window := NewAbsoluteTimeRange(time.Now().Add(-time.Hour), time.Now())

	tests := []struct {
		name  string
		field SearchField
		want  bool
	}{
		{name: "empty key", field: NewExactField("", "x"), want: true},
		{name: "no ranges", field: NewTimeRangeField("importDate"), want: true},
		{name: "ranges", field: NewTimeRangeField("importDate", window), want: false},
		{name: "no patterns", field: NewHTSCodeField("HTSCode", ","), want: true},
		{name: "patterns", field: NewHTSCodeField("HTSCode", "*.*.*.*"), want: false},
		{name: "nil value", field: NewExactField("claimID", nil), want: true},
		{name: "empty string", field: NewExactField("claimID", ""), want: true},
		{name: "zero number", field: NewExactField("claimID", 0), want: false},
		{name: "false", field: NewExactField("flag", false), want: false},
		{name: "unknown type", field: SearchField{Type: "fuzzy", Key: "claimID", Value: "x"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.IsVacuous())
		})
	}
}

func TestParseSortSpec(t *testing.T) {
	tests := []struct {
		in   string
		want SortSpec
	}{
		{in: "claimID", want: SortSpec{Key: "claimID", Dir: SortAsc}},
		{in: "claimID:desc", want: SortSpec{Key: "claimID", Dir: SortDesc}},
		{in: " dutiesPaid : DESC ", want: SortSpec{Key: "dutiesPaid", Dir: SortDesc}},
		{in: "claimID:sideways", want: SortSpec{Key: "claimID", Dir: SortAsc}},
		{in: "", want: SortSpec{Key: "", Dir: SortAsc}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortSpec(tt.in))
		})
	}
}

func TestSortSpec_String(t *testing.T) {
	assert.Equal(t, "importDate:desc", SortSpec{Key: "importDate", Dir: SortDesc}.String())
}
