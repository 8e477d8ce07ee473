package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/drawback-cli/internal/claims"
	"github.com/custodia-labs/drawback-cli/internal/core/domain"
	"github.com/custodia-labs/drawback-cli/internal/core/ports/driven"
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "claims"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Ensure ClaimSource implements the interface.
var _ driven.ClaimSource = (*ClaimSource)(nil)

// ClaimSource loads claims from one table of a SQLite database.
type ClaimSource struct {
	db    *sql.DB
	path  string
	table string
}

// NewClaimSource opens the database at path in read-only mode.
// An empty table selects DefaultTable.
func NewClaimSource(path, table string) (*ClaimSource, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: table name %q", domain.ErrInvalidInput, table)
	}

	// A missing file would otherwise be created empty by the driver.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening claims database: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &ClaimSource{db: db, path: path, table: table}, nil
}

// Close closes the database connection.
func (s *ClaimSource) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *ClaimSource) Path() string {
	return s.path
}

// Location describes the table and file claims are read from.
func (s *ClaimSource) Location() string {
	return fmt.Sprintf("sqlite:%s#%s", s.path, s.table)
}

// Load reads every claim ordered by claim ID.
func (s *ClaimSource) Load(ctx context.Context) ([]domain.Record, error) {
	// The table name is checked against tableName in the constructor.
	query := fmt.Sprintf(`
		SELECT claim_id, importer_name, hts_code, import_date, import_quantity,
			export_date, export_quantity, duties_paid, drawback_claimed, drawback_type
		FROM %s ORDER BY claim_id`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying claims: %w", err)
	}
	defer rows.Close()

	var out []claims.Claim
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating claims: %w", err)
	}

	return claims.Records(out), nil
}

func scanClaim(rows *sql.Rows) (claims.Claim, error) {
	var c claims.Claim
	var exportDate, drawbackType sql.NullString
	var exportQuantity sql.NullInt64
	var dutiesPaid, drawbackClaimed string

	if err := rows.Scan(&c.ClaimID, &c.ImporterName, &c.HTSCode, &c.ImportDate, &c.ImportQuantity,
		&exportDate, &exportQuantity, &dutiesPaid, &drawbackClaimed, &drawbackType); err != nil {
		return claims.Claim{}, fmt.Errorf("scanning claim: %w", err)
	}

	var err error
	if c.DutiesPaid, err = decimal.NewFromString(dutiesPaid); err != nil {
		return claims.Claim{}, fmt.Errorf("claim %d: duties_paid %q: %w", c.ClaimID, dutiesPaid, err)
	}
	if c.DrawbackClaimed, err = decimal.NewFromString(drawbackClaimed); err != nil {
		return claims.Claim{}, fmt.Errorf("claim %d: drawback_claimed %q: %w", c.ClaimID, drawbackClaimed, err)
	}

	c.ExportDate = exportDate.String
	c.DrawbackType = drawbackType.String
	if exportQuantity.Valid {
		q := exportQuantity.Int64
		c.ExportQuantity = &q
	}
	return c, nil
}
