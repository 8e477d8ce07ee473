package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/custodia-labs/drawback-cli/internal/claims"
	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
)

// Ensure ClaimSource implements the interface.
var _ driven.ClaimSource = (*ClaimSource)(nil)

// ClaimSource reads claims from a JSON file. The file is read on every Load.
type ClaimSource struct {
	path string
}

// NewClaimSource creates a source for the file at path.
func NewClaimSource(path string) *ClaimSource {
	return &ClaimSource{path: path}
}

// Location returns the file path.
func (s *ClaimSource) Location() string {
	return s.path
}

// Load reads and decodes the file.
func (s *ClaimSource) Load(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading claims file: %w", err)
	}

	list, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return claims.Records(list), nil
}

type envelope struct {
	Claims []claims.Claim `json:"claims"`
}

// Decode parses a claims document in either accepted shape.
func Decode(data []byte) ([]claims.Claim, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty claims document", domain.ErrInvalidInput)
	}

	switch trimmed[0] {
	case '[':
		var list []claims.Claim
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, err
		}
		return list, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, err
		}
		return env.Claims, nil
	default:
		return nil, fmt.Errorf("%w: claims document must be an array or an object", domain.ErrInvalidInput)
	}
}
