package driven

import (
	"context"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

// ClaimSource reads the claim dataset as records.
// Sources are read-only; nothing is written back.
type ClaimSource interface {
	// Load returns every claim as a record.
	Load(ctx context.Context) ([]domain.Record, error)

	// Location describes where the claims are read from.
	Location() string
}
