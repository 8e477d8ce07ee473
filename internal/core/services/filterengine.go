package services

import (
	"reflect"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drawback-cli/internal/hts"
	"github.com/custodia-labs/drawback-cli/internal/logger"
)

// Ensure FilterEngine implements the interface.
var _ driving.FilterEngine = (*FilterEngine)(nil)

// FilterEngine applies search fields to records. Fields combine with AND;
// the values inside one field combine with OR.
type FilterEngine struct {
	ranges *TimeRangeService
}

// NewFilterEngine creates a filter engine. Relative ranges are resolved
// with the clock of ranges.
func NewFilterEngine(ranges *TimeRangeService) *FilterEngine {
	return &FilterEngine{ranges: ranges}
}

// matcher tests one record against one field.
type matcher func(domain.Record) bool

// Filter returns the records passing all fields, in input order.
func (e *FilterEngine) Filter(records []domain.Record, fields []domain.SearchField) []domain.Record {
	matchers := make([]matcher, 0, len(fields))
	for _, f := range fields {
		if f.IsVacuous() {
			continue
		}
		if m := e.compile(f); m != nil {
			matchers = append(matchers, m)
		}
	}

	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if matchAll(rec, matchers) {
			out = append(out, rec)
		}
	}

	logger.Debug("Filtered %d of %d record(s) with %d active field(s)", len(out), len(records), len(matchers))
	return out
}

func matchAll(rec domain.Record, matchers []matcher) bool {
	for _, m := range matchers {
		if !m(rec) {
			return false
		}
	}
	return true
}

// compile prepares a field once per Filter call. Unknown field types are
// ignored.
func (e *FilterEngine) compile(f domain.SearchField) matcher {
	switch f.Type {
	case domain.SearchFieldExact:
		return exactMatcher(f.Key, f.Value)
	case domain.SearchFieldHTSCode:
		return htsMatcher(f.Key, hts.CompileAll(f.Patterns))
	case domain.SearchFieldTimeRange:
		windows := make([]domain.AbsoluteRange, len(f.TimeRanges))
		for i, tr := range f.TimeRanges {
			windows[i] = e.ranges.Resolve(tr)
		}
		return dateMatcher(f.Key, windows)
	default:
		logger.Debug("Ignoring search field %q with unknown type %q", f.Key, f.Type)
		return nil
	}
}

func exactMatcher(key string, want any) matcher {
	return func(rec domain.Record) bool {
		got, ok := rec[key]
		if !ok {
			return false
		}
		return equalValues(got, want)
	}
}

// equalValues compares without coercion; int64(5) and "5" differ.
// Types with an Equal(T) bool method, such as decimals and times, are
// compared with it.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if eq, ok := equalMethod(a); ok {
		return eq.Call([]reflect.Value{reflect.ValueOf(b)})[0].Bool()
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func equalMethod(v any) (reflect.Value, bool) {
	m := reflect.ValueOf(v).MethodByName("Equal")
	if !m.IsValid() {
		return reflect.Value{}, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.In(0) != reflect.TypeOf(v) || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return reflect.Value{}, false
	}
	return m, true
}

func htsMatcher(key string, patterns []*hts.Pattern) matcher {
	return func(rec domain.Record) bool {
		code, ok := rec[key].(string)
		if !ok {
			return false
		}
		return hts.MatchCompiled(code, patterns)
	}
}

func dateMatcher(key string, windows []domain.AbsoluteRange) matcher {
	return func(rec domain.Record) bool {
		raw, ok := rec[key].(string)
		if !ok {
			return false
		}
		date, ok := ParseISODate(raw)
		if !ok {
			return false
		}
		for _, w := range windows {
			if w.Contains(date) {
				return true
			}
		}
		return false
	}
}
