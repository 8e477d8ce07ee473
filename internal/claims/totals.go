package claims

import (
	"github.com/shopspring/decimal"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

// Totals summarises a set of claim records.
type Totals struct {
	Count           int
	DutiesPaid      decimal.Decimal
	DrawbackClaimed decimal.Decimal
}

// Sum adds up the money fields of records. Values that are not decimals
// are skipped.
func Sum(records []domain.Record) Totals {
	t := Totals{
		Count:           len(records),
		DutiesPaid:      decimal.Zero,
		DrawbackClaimed: decimal.Zero,
	}
	for _, rec := range records {
		if d, ok := rec[KeyDutiesPaid].(decimal.Decimal); ok {
			t.DutiesPaid = t.DutiesPaid.Add(d)
		}
		if d, ok := rec[KeyDrawbackClaimed].(decimal.Decimal); ok {
			t.DrawbackClaimed = t.DrawbackClaimed.Add(d)
		}
	}
	return t
}

// DrawbackRate returns claimed drawback as a share of duties paid, or zero
// when no duties were paid.
func (t Totals) DrawbackRate() decimal.Decimal {
	if t.DutiesPaid.IsZero() {
		return decimal.Zero
	}
	return t.DrawbackClaimed.DivRound(t.DutiesPaid, 4)
}
