package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drawback-cli/internal/hts"
	"github.com/custodia-labs/drawback-cli/internal/logger"
)

// Ensure FilterSetService implements the interface.
var _ driving.FilterSetService = (*FilterSetService)(nil)

// FilterSetService owns the user-visible filter list. HTS filters register
// their codes with the validator and absolute date filters register their
// range with the time range service.
type FilterSetService struct {
	validator driving.HTSValidator
	ranges    driving.TimeRangeService
	filters   []domain.FilterEntity

	// DateKey is the record key targeted by date filters.
	DateKey string

	// HTSKey is the record key targeted by HTS filters.
	HTSKey string
}

// NewFilterSetService creates an empty filter set.
func NewFilterSetService(validator driving.HTSValidator, ranges driving.TimeRangeService) *FilterSetService {
	defaults := domain.DefaultAppSettings()
	return &FilterSetService{
		validator: validator,
		ranges:    ranges,
		DateKey:   defaults.Fields.DateKey,
		HTSKey:    defaults.Fields.HTSKey,
	}
}

// Add validates a filter, registers its value and appends it.
func (s *FilterSetService) Add(filter domain.FilterEntity) (domain.FilterEntity, error) {
	filter, err := completeSuggestion(filter)
	if err != nil {
		return domain.FilterEntity{}, err
	}

	switch {
	case filter.IsHTS():
		if err := s.registerCodes(filter.HTSCodes); err != nil {
			return domain.FilterEntity{}, err
		}
		filter.HTSCodes = strings.Join(hts.SplitCodes(filter.HTSCodes), ", ")
	case filter.IsAbsoluteDate():
		if filter.TimeRange == nil {
			return domain.FilterEntity{}, fmt.Errorf("%w: Date filter needs a start and end time", domain.ErrInvalidDateInput)
		}
		if _, err := s.ranges.AddAbsolute(filter.TimeRange.Start, filter.TimeRange.End); err != nil {
			return domain.FilterEntity{}, err
		}
	}

	filter.ID = uuid.New().String()
	s.filters = append(s.filters, filter)
	logger.Debug("Added filter %s (%s)", filter.ID, filter.Suggestion.Label)
	return filter, nil
}

func (s *FilterSetService) registerCodes(codes string) error {
	if len(hts.SplitList(codes)) == 0 {
		return fmt.Errorf("%w: HTS filter needs at least one code", domain.ErrInvalidInput)
	}
	result := s.validator.ValidateCodes(codes)
	if !result.OK() {
		return result.LastErr
	}
	return nil
}

// Edit replaces the value of the filter with the given id. The filter keeps
// its id; HTS and date filters cannot change into one another.
func (s *FilterSetService) Edit(id string, filter domain.FilterEntity) (domain.FilterEntity, error) {
	index := s.indexOf(id)
	if index < 0 {
		return domain.FilterEntity{}, fmt.Errorf("%w: filter %s", domain.ErrNotFound, id)
	}
	current := s.filters[index]

	filter, err := completeSuggestion(filter)
	if err != nil {
		return domain.FilterEntity{}, err
	}
	if filter.Suggestion.Type != current.Suggestion.Type {
		return domain.FilterEntity{}, fmt.Errorf("%w: cannot change a %s filter into a %s filter",
			domain.ErrInvalidInput, current.Suggestion.Type, filter.Suggestion.Type)
	}

	filter.ID = current.ID
	if filter.IsHTS() {
		return s.editCodes(index, filter)
	}
	if err := s.editDate(current, filter); err != nil {
		return domain.FilterEntity{}, err
	}
	s.filters[index] = filter
	return filter, nil
}

// editCodes applies the HTS edit. Pairings that succeeded stay applied
// even when others fail, so the stored code list follows the registry.
func (s *FilterSetService) editCodes(index int, filter domain.FilterEntity) (domain.FilterEntity, error) {
	current := s.filters[index]
	result, err := s.validator.EditCodes(current.HTSCodes, filter.HTSCodes)
	if err != nil {
		return domain.FilterEntity{}, err
	}

	replaced := make(map[string][]string, len(result.SuccessfulEdits))
	for _, e := range result.SuccessfulEdits {
		replaced[e.OldCode] = e.NewCodes
	}
	codes := make([]string, 0, len(replaced))
	for _, code := range hts.SplitCodes(current.HTSCodes) {
		if newCodes, ok := replaced[code]; ok {
			codes = append(codes, newCodes...)
			continue
		}
		codes = append(codes, code)
	}
	current.HTSCodes = strings.Join(codes, ", ")
	s.filters[index] = current

	if !result.OK() {
		return current, errors.New(s.validator.ErrorMessage())
	}
	return current, nil
}

func (s *FilterSetService) editDate(current, filter domain.FilterEntity) error {
	switch {
	case current.IsAbsoluteDate() && filter.IsAbsoluteDate():
		if filter.TimeRange == nil {
			return fmt.Errorf("%w: Date filter needs a start and end time", domain.ErrInvalidDateInput)
		}
		_, err := s.ranges.EditAbsolute(*current.TimeRange, *filter.TimeRange)
		return err
	case filter.IsAbsoluteDate():
		if filter.TimeRange == nil {
			return fmt.Errorf("%w: Date filter needs a start and end time", domain.ErrInvalidDateInput)
		}
		_, err := s.ranges.AddAbsolute(filter.TimeRange.Start, filter.TimeRange.End)
		return err
	case current.IsAbsoluteDate():
		return s.ranges.RemoveAbsolute(*current.TimeRange)
	default:
		return nil
	}
}

// Remove drops the filter with the given id and releases its value.
func (s *FilterSetService) Remove(id string) error {
	index := s.indexOf(id)
	if index < 0 {
		return fmt.Errorf("%w: filter %s", domain.ErrNotFound, id)
	}
	filter := s.filters[index]

	switch {
	case filter.IsHTS():
		s.validator.ReleaseCodes(filter.HTSCodes)
	case filter.IsAbsoluteDate() && filter.TimeRange != nil:
		if err := s.ranges.RemoveAbsolute(*filter.TimeRange); err != nil {
			logger.Debug("Range of filter %s already released: %v", id, err)
		}
	}

	s.filters = append(s.filters[:index], s.filters[index+1:]...)
	return nil
}

// List returns the filters in the order they were added.
func (s *FilterSetService) List() []domain.FilterEntity {
	out := make([]domain.FilterEntity, len(s.filters))
	copy(out, s.filters)
	return out
}

// SearchFields returns a timeRange field on DateKey and an htsCode field on
// HTSKey built from the filters in order. Either may be vacuous.
func (s *FilterSetService) SearchFields() []domain.SearchField {
	var ranges []domain.TimeRange
	var codes []string

	for _, f := range s.filters {
		if f.IsHTS() {
			codes = append(codes, f.HTSCodes)
			continue
		}
		if tr, ok := f.TimeRangeValue(); ok {
			ranges = append(ranges, tr)
		}
	}

	return []domain.SearchField{
		domain.NewTimeRangeField(s.DateKey, ranges...),
		domain.NewHTSCodeField(s.HTSKey, codes...),
	}
}

// Reset drops every filter and clears validation state.
func (s *FilterSetService) Reset() {
	s.filters = nil
	s.validator.ClearCodes()
	s.validator.Reset()
	s.ranges.Reset()
}

func (s *FilterSetService) indexOf(id string) int {
	for i, f := range s.filters {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// completeSuggestion fills the suggestion from the catalogue by key.
func completeSuggestion(filter domain.FilterEntity) (domain.FilterEntity, error) {
	suggestion, ok := domain.LookupSuggestion(filter.Suggestion.Key)
	if !ok {
		return filter, fmt.Errorf("%w: unknown filter %q", domain.ErrUnsupportedType, filter.Suggestion.Key)
	}
	filter.Suggestion = suggestion
	return filter, nil
}
