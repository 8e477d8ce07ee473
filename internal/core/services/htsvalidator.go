package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drawback-cli/internal/hts"
	"github.com/custodia-labs/drawback-cli/internal/logger"
)

// Ensure HTSValidator implements the interface.
var _ driving.HTSValidator = (*HTSValidator)(nil)

// HTSValidator validates HTS codes against the pattern grammar and tracks
// the codes accepted during a session.
type HTSValidator struct {
	registry   driven.CodeRegistry
	lastResult *domain.ValidationResult
	errMessage string
}

// NewHTSValidator creates a validator over the given registry.
func NewHTSValidator(registry driven.CodeRegistry) *HTSValidator {
	return &HTSValidator{registry: registry}
}

// Normalize trims and upper-cases a code, keeping %d lower case.
func (v *HTSValidator) Normalize(code string) string {
	return hts.Normalize(code)
}

// ValidateCode checks the grammar of a single code.
func (v *HTSValidator) ValidateCode(code string) error {
	return hts.CheckCode(code)
}

// ValidateCodes classifies a comma-separated batch. Valid codes are
// registered once the whole batch has been classified.
func (v *HTSValidator) ValidateCodes(codes string) domain.ValidationResult {
	set := v.registry.Snapshot()
	result := classify(hts.SplitCodes(codes), set)

	set.Add(result.ValidCodes...)
	v.registry.Commit(set)
	logger.Debug("Registered %d code(s), registry size %d", len(result.ValidCodes), set.Len())

	v.record(result)
	return result
}

// ValidateRealTime classifies a batch without registering anything.
func (v *HTSValidator) ValidateRealTime(codes string) domain.ValidationResult {
	result := classify(hts.SplitCodes(codes), v.registry.Snapshot())
	v.errMessage = errorText(result.LastErr)
	return result
}

// classify checks, per code in order: repeats within the batch, then
// registered codes, then grammar.
func classify(codes []string, registered domain.CodeSet) domain.ValidationResult {
	result := domain.ValidationResult{
		ValidCodes:     []string{},
		InvalidCodes:   []string{},
		DuplicateCodes: []string{},
	}
	seen := domain.NewCodeSet()

	for _, code := range codes {
		var err error
		switch {
		case seen.Has(code):
			err = fmt.Errorf("%w: Duplicated HTS code in input batch: %q", domain.ErrDuplicateInBatch, code)
		case registered.Has(code):
			err = fmt.Errorf("%w: Duplicated HTS code: %q", domain.ErrDuplicateInRegistry, code)
		default:
			err = hts.CheckCode(code)
		}
		seen.Add(code)

		switch {
		case err == nil:
			result.ValidCodes = append(result.ValidCodes, code)
			continue
		case domain.IsDuplicateError(err):
			result.DuplicateCodes = append(result.DuplicateCodes, code)
		default:
			result.InvalidCodes = append(result.InvalidCodes, code)
		}
		result.Issues = append(result.Issues, domain.CodeIssue{Code: code, Err: err})
		result.LastErr = err
	}

	return result
}

// EditCodes pairs the i-th old code with the i-th new code. Surplus new codes
// all go to the last old code. Each pairing succeeds or fails on its own and
// the registry is committed once.
func (v *HTSValidator) EditCodes(oldCodes, newCodes string) (domain.EditResult, error) {
	v.lastResult = nil
	v.errMessage = ""

	oldList := hts.SplitCodes(oldCodes)
	newList := hts.SplitCodes(newCodes)

	if len(newList) == 0 {
		err := fmt.Errorf("%w: No new HTS codes provided for editing", domain.ErrNoNewCodes)
		v.errMessage = err.Error()
		return domain.EditResult{}, err
	}
	if len(oldList) == 0 {
		err := fmt.Errorf("%w: No edits were performed", domain.ErrInvalidInput)
		v.errMessage = err.Error()
		return domain.EditResult{}, err
	}

	set := v.registry.Snapshot()
	result := domain.EditResult{
		SuccessfulEdits: []domain.CodeEdit{},
		FailedEdits:     []domain.FailedEdit{},
	}

	for i, oldCode := range oldList {
		targets := pairTargets(i, len(oldList), newList)

		if err := checkEdit(set, oldCode, targets); err != nil {
			result.FailedEdits = append(result.FailedEdits, domain.FailedEdit{
				OldCode:  oldCode,
				NewCodes: targets,
				Err:      err,
			})
			continue
		}

		set.Remove(oldCode)
		set.Add(targets...)
		result.SuccessfulEdits = append(result.SuccessfulEdits, domain.CodeEdit{OldCode: oldCode, NewCodes: targets})
	}

	v.registry.Commit(set)
	v.recordEdit(result)
	return result, nil
}

// pairTargets returns the new codes mapped to the old code at index.
func pairTargets(index, oldCount int, newList []string) []string {
	targets := []string{}
	if index < len(newList) {
		targets = append(targets, newList[index])
	}
	if index == oldCount-1 && len(newList) > oldCount {
		targets = append(targets, newList[oldCount:]...)
	}
	return targets
}

func checkEdit(set domain.CodeSet, oldCode string, targets []string) error {
	if !set.Has(oldCode) {
		return fmt.Errorf("%w: HTS code %q does not exist and cannot be edited", domain.ErrNotFound, oldCode)
	}
	for _, code := range targets {
		if set.Has(code) && code != oldCode {
			return fmt.Errorf("%w: HTS code %q already exists and cannot be duplicated", domain.ErrDuplicateTarget, code)
		}
		if err := hts.CheckCode(code); err != nil {
			return err
		}
	}
	return nil
}

// AutoFormat reformats raw input as xxxx.xx.xx.xx.
func (v *HTSValidator) AutoFormat(codes string) string {
	return hts.AutoFormat(codes)
}

// Codes returns the registered codes in lexical order.
func (v *HTSValidator) Codes() []string {
	return v.registry.Snapshot().Sorted()
}

// LastResult returns the outcome of the last batch operation, or nil.
func (v *HTSValidator) LastResult() *domain.ValidationResult {
	return v.lastResult
}

// ErrorMessage returns the most recent error message, or "".
func (v *HTSValidator) ErrorMessage() string {
	return v.errMessage
}

// Reset clears the last result and error message.
func (v *HTSValidator) Reset() {
	v.lastResult = nil
	v.errMessage = ""
}

// ReleaseCodes unregisters the codes of a comma-separated list.
func (v *HTSValidator) ReleaseCodes(codes string) {
	set := v.registry.Snapshot()
	set.Remove(hts.SplitCodes(codes)...)
	v.registry.Commit(set)
}

// ClearCodes empties the registry.
func (v *HTSValidator) ClearCodes() {
	v.registry.Clear()
}

func (v *HTSValidator) record(result domain.ValidationResult) {
	v.lastResult = &result
	v.errMessage = errorText(result.LastErr)
}

// recordEdit folds an edit outcome into the validation state.
func (v *HTSValidator) recordEdit(result domain.EditResult) {
	summary := domain.ValidationResult{
		ValidCodes:     []string{},
		InvalidCodes:   []string{},
		DuplicateCodes: []string{},
	}
	for _, e := range result.SuccessfulEdits {
		summary.ValidCodes = append(summary.ValidCodes, e.NewCodes...)
	}

	msgs := make([]string, 0, len(result.FailedEdits))
	for _, f := range result.FailedEdits {
		summary.InvalidCodes = append(summary.InvalidCodes, f.NewCodes...)
		if errors.Is(f.Err, domain.ErrDuplicateTarget) {
			summary.DuplicateCodes = append(summary.DuplicateCodes, f.NewCodes...)
		}
		summary.LastErr = f.Err
		msgs = append(msgs, fmt.Sprintf("Edit failed for %q → %q: %v", f.OldCode, strings.Join(f.NewCodes, ", "), f.Err))
	}

	v.lastResult = &summary
	v.errMessage = strings.Join(msgs, "; ")
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
