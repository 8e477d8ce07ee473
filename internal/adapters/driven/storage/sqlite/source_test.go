package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/drawback-cli/internal/claims"
	"github.com/custodia-labs/drawback-cli/internal/core/domain"
)

const testSchema = `
CREATE TABLE %s (
	claim_id INTEGER PRIMARY KEY,
	importer_name TEXT NOT NULL,
	hts_code TEXT NOT NULL,
	import_date TEXT NOT NULL,
	import_quantity INTEGER NOT NULL,
	export_date TEXT,
	export_quantity INTEGER,
	duties_paid TEXT NOT NULL,
	drawback_claimed TEXT NOT NULL,
	drawback_type TEXT
)`

// setupTestDB writes a claims database into a temp dir and returns its path.
func setupTestDB(t *testing.T, table string, stmts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "claims.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(fmt.Sprintf(testSchema, table))
	require.NoError(t, err)
	for _, stmt := range stmts {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestClaimSource_Load(t *testing.T) {
	path := setupTestDB(t, "claims",
		`INSERT INTO claims VALUES (2, 'Globex', '9999.99.99.99', '2024-02-01', 10, NULL, NULL, '50', '49.50', NULL)`,
		`INSERT INTO claims VALUES (1, 'Acme', '1234.12.34.56', '2024-01-15', 100, '2024-03-01', 80, '1250.00', '1237.50', 'manufacturing')`,
	)

	src, err := NewClaimSource(path, "")
	require.NoError(t, err)
	defer src.Close()

	records, err := src.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, int64(1), first[claims.KeyClaimID])
	assert.Equal(t, "Acme", first[claims.KeyImporterName])
	assert.Equal(t, "1234.12.34.56", first[claims.KeyHTSCode])
	assert.Equal(t, "2024-03-01", first[claims.KeyExportDate])
	assert.Equal(t, int64(80), first[claims.KeyExportQuantity])
	assert.True(t, decimal.RequireFromString("1250").Equal(first[claims.KeyDutiesPaid].(decimal.Decimal)))
	assert.Equal(t, "manufacturing", first[claims.KeyDrawbackType])

	second := records[1]
	assert.Equal(t, int64(2), second[claims.KeyClaimID])
	assert.NotContains(t, second, claims.KeyExportDate)
	assert.NotContains(t, second, claims.KeyExportQuantity)
	assert.NotContains(t, second, claims.KeyDrawbackType)
}

func TestClaimSource_CustomTable(t *testing.T) {
	path := setupTestDB(t, "entries_2024",
		`INSERT INTO entries_2024 VALUES (7, 'Initech', '1111.11.11.11', '2024-05-05', 1, NULL, NULL, '1', '1', NULL)`,
	)

	src, err := NewClaimSource(path, "entries_2024")
	require.NoError(t, err)
	defer src.Close()

	records, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "sqlite:"+path+"#entries_2024", src.Location())
	assert.Equal(t, path, src.Path())
}

func TestClaimSource_BadMoney(t *testing.T) {
	path := setupTestDB(t, "claims",
		`INSERT INTO claims VALUES (1, 'Acme', '1234.12.34.56', '2024-01-15', 1, NULL, NULL, 'lots', '1', NULL)`,
	)

	src, err := NewClaimSource(path, "")
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Load(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duties_paid")
}

func TestClaimSource_MissingTable(t *testing.T) {
	path := setupTestDB(t, "claims")

	src, err := NewClaimSource(path, "other")
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Load(context.Background())
	assert.Error(t, err)
}

func TestNewClaimSource_Errors(t *testing.T) {
	_, err := NewClaimSource(filepath.Join(t.TempDir(), "missing.db"), "")
	assert.Error(t, err)

	_, err = NewClaimSource("claims.db", "claims; DROP TABLE claims")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
