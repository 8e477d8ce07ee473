package services

import (
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driving"
)

// Ensure ResultsService implements the interface.
var _ driving.ResultsService = (*ResultsService)(nil)

// ResultsService sorts and paginates filtered records.
type ResultsService struct{}

// NewResultsService creates a results service.
func NewResultsService() *ResultsService {
	return &ResultsService{}
}

// Page sorts records by at most two keys and returns the requested page.
// The input slice is not modified.
func (s *ResultsService) Page(records []domain.Record, opts domain.PageOptions) domain.Page {
	sorts := normaliseSorts(opts.Sorts)

	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	if len(sorts) > 0 {
		sort.SliceStable(sorted, func(i, j int) bool {
			return lessRecords(sorted[i], sorted[j], sorts)
		})
	}

	size := opts.PageSize
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	total := len(sorted)
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	page := min(max(opts.Page, 1), pages)

	start := min((page-1)*size, total)
	end := min(start+size, total)

	return domain.Page{
		Records:      sorted[start:end],
		TotalRecords: total,
		Page:         page,
		PageSize:     size,
		TotalPages:   pages,
		Sorts:        sorts,
	}
}

func normaliseSorts(sorts []domain.SortSpec) []domain.SortSpec {
	out := make([]domain.SortSpec, 0, domain.MaxSortLevels)
	for _, spec := range sorts {
		if len(out) == domain.MaxSortLevels {
			break
		}
		if spec.Key == "" {
			continue
		}
		if spec.Dir != domain.SortDesc {
			spec.Dir = domain.SortAsc
		}
		out = append(out, spec)
	}
	return out
}

func lessRecords(a, b domain.Record, sorts []domain.SortSpec) bool {
	for _, spec := range sorts {
		av, aok := a[spec.Key]
		bv, bok := b[spec.Key]
		aok = aok && av != nil
		bok = bok && bv != nil

		// Missing values sort last in either direction.
		switch {
		case !aok && !bok:
			continue
		case !aok:
			return false
		case !bok:
			return true
		}

		c := compareValues(av, bv)
		if c == 0 {
			continue
		}
		if spec.Dir == domain.SortDesc {
			return c > 0
		}
		return c < 0
	}
	return false
}

// floater is implemented by decimal types.
type floater interface {
	Float64() (float64, bool)
}

// Value classes in sort order when kinds differ.
const (
	classNumber = iota
	classString
	classBool
	classTime
	classOther
)

func valueClass(v any) (int, any) {
	switch x := v.(type) {
	case int:
		return classNumber, float64(x)
	case int32:
		return classNumber, float64(x)
	case int64:
		return classNumber, float64(x)
	case float32:
		return classNumber, float64(x)
	case float64:
		return classNumber, x
	case floater:
		f, _ := x.Float64()
		return classNumber, f
	case string:
		return classString, x
	case bool:
		return classBool, x
	case time.Time:
		return classTime, x
	default:
		return classOther, nil
	}
}

func compareValues(a, b any) int {
	ca, va := valueClass(a)
	cb, vb := valueClass(b)
	if ca != cb {
		return ca - cb
	}

	switch ca {
	case classNumber:
		x, y := va.(float64), vb.(float64)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	case classString:
		return strings.Compare(va.(string), vb.(string))
	case classBool:
		x, y := va.(bool), vb.(bool)
		switch {
		case !x && y:
			return -1
		case x && !y:
			return 1
		}
	case classTime:
		return va.(time.Time).Compare(vb.(time.Time))
	}
	return 0
}
