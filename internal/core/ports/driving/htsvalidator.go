package driving

import "github.com/custodia-labs/drawback-cli/internal/core/domain"

// HTSValidator validates, registers and edits HTS codes of one session.
type HTSValidator interface {
	// Normalize trims and upper-cases a code, keeping %d lower case.
	Normalize(code string) string

	// ValidateCode checks the grammar of a single code.
	ValidateCode(code string) error

	// ValidateCodes classifies a comma-separated batch and registers the valid codes.
	ValidateCodes(codes string) domain.ValidationResult

	// ValidateRealTime classifies a batch without registering anything.
	ValidateRealTime(codes string) domain.ValidationResult

	// EditCodes replaces registered codes positionally.
	// Returns domain.ErrNoNewCodes when newCodes holds no code.
	EditCodes(oldCodes, newCodes string) (domain.EditResult, error)

	// AutoFormat reformats raw input as xxxx.xx.xx.xx.
	AutoFormat(codes string) string

	// Codes returns the registered codes in lexical order.
	Codes() []string

	// LastResult returns the outcome of the last batch operation.
	LastResult() *domain.ValidationResult

	// ErrorMessage returns the most recent error message, or "".
	ErrorMessage() string

	// Reset clears the last result and error message.
	Reset()

	// ReleaseCodes unregisters the codes of a comma-separated list.
	ReleaseCodes(codes string)

	// ClearCodes empties the registry.
	ClearCodes()
}
