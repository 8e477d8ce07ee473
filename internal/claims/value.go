package claims

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

// ParseValue converts raw text into the type of sample, so that exact
// filters compare like with like. A nil sample keeps the text as is.
func ParseValue(raw string, sample any) (any, error) {
	switch sample.(type) {
	case nil, string:
		return raw, nil
	case int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, raw)
		}
		return n, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidInput, raw)
		}
		return n, nil
	case float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, raw)
		}
		return f, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a boolean", domain.ErrInvalidInput, raw)
		}
		return b, nil
	case decimal.Decimal:
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a decimal", domain.ErrInvalidInput, raw)
		}
		return d, nil
	case time.Time:
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an RFC 3339 time", domain.ErrInvalidInput, raw)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: cannot filter on values of type %T", domain.ErrUnsupportedType, sample)
	}
}

// SampleValue returns the first value stored under key, or nil.
func SampleValue(records []domain.Record, key string) any {
	for _, rec := range records {
		if v, ok := rec[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

// FormatValue renders a record value for tables.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return x.StringFixed(2)
	case time.Time:
		return x.Format(time.DateOnly)
	default:
		return fmt.Sprint(x)
	}
}
