package claims

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

// Record keys of a claim.
const (
	KeyClaimID         = "claimID"
	KeyImporterName    = "importerName"
	KeyHTSCode         = "HTSCode"
	KeyImportDate      = "importDate"
	KeyImportQuantity  = "importQuantity"
	KeyExportDate      = "exportDate"
	KeyExportQuantity  = "exportQuantity"
	KeyDutiesPaid      = "dutiesPaid"
	KeyDrawbackClaimed = "drawbackClaimed"
	KeyDrawbackType    = "drawbackType"
)

// Columns lists the record keys in display order.
var Columns = []string{
	KeyClaimID,
	KeyImporterName,
	KeyHTSCode,
	KeyImportDate,
	KeyImportQuantity,
	KeyExportDate,
	KeyExportQuantity,
	KeyDutiesPaid,
	KeyDrawbackClaimed,
	KeyDrawbackType,
}

// Claim is one duty drawback claim. Dates are YYYY-MM-DD strings.
type Claim struct {
	ClaimID         int64           `json:"claimID"`
	ImporterName    string          `json:"importerName"`
	HTSCode         string          `json:"HTSCode"`
	ImportDate      string          `json:"importDate"`
	ImportQuantity  int64           `json:"importQuantity"`
	ExportDate      string          `json:"exportDate,omitempty"`
	ExportQuantity  *int64          `json:"exportQuantity,omitempty"`
	DutiesPaid      decimal.Decimal `json:"dutiesPaid"`
	DrawbackClaimed decimal.Decimal `json:"drawbackClaimed"`
	DrawbackType    string          `json:"drawbackType,omitempty"`
}

// Record converts the claim into a filterable record. Optional export
// fields are left out when unset.
func (c Claim) Record() domain.Record {
	rec := domain.Record{
		KeyClaimID:         c.ClaimID,
		KeyImporterName:    c.ImporterName,
		KeyHTSCode:         c.HTSCode,
		KeyImportDate:      c.ImportDate,
		KeyImportQuantity:  c.ImportQuantity,
		KeyDutiesPaid:      c.DutiesPaid,
		KeyDrawbackClaimed: c.DrawbackClaimed,
	}
	if c.ExportDate != "" {
		rec[KeyExportDate] = c.ExportDate
	}
	if c.ExportQuantity != nil {
		rec[KeyExportQuantity] = *c.ExportQuantity
	}
	if c.DrawbackType != "" {
		rec[KeyDrawbackType] = c.DrawbackType
	}
	return rec
}

// Records converts claims into records, keeping their order.
func Records(claims []Claim) []domain.Record {
	out := make([]domain.Record, len(claims))
	for i, c := range claims {
		out[i] = c.Record()
	}
	return out
}
