package domain

const unknownDescription = "Unknown"

// SourceDriver identifies how the claim dataset is read.
type SourceDriver string

// Available source drivers.
const (
	// SourceDriverJSON reads a JSON array of claims.
	SourceDriverJSON SourceDriver = "json"

	// SourceDriverSQLite reads a claims table from a SQLite database.
	SourceDriverSQLite SourceDriver = "sqlite"
)

// IsValid returns true if the source driver is recognised.
func (d SourceDriver) IsValid() bool {
	switch d {
	case SourceDriverJSON, SourceDriverSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d SourceDriver) String() string {
	return string(d)
}

// Description returns a human-readable description of the driver.
func (d SourceDriver) Description() string {
	switch d {
	case SourceDriverJSON:
		return "JSON file (array of claims)"
	case SourceDriverSQLite:
		return "SQLite database (claims table)"
	default:
		return unknownDescription
	}
}

// AllSourceDrivers returns all available source drivers.
func AllSourceDrivers() []SourceDriver {
	return []SourceDriver{SourceDriverJSON, SourceDriverSQLite}
}

// SourceSettings configures where claims are read from.
type SourceSettings struct {
	// Driver selects the reader.
	Driver SourceDriver

	// Path is the dataset file.
	Path string

	// Table is the SQLite table name (sqlite driver only).
	Table string
}

// FieldSettings names the record keys filters apply to.
type FieldSettings struct {
	// DateKey is the record key holding YYYY-MM-DD dates.
	DateKey string

	// HTSKey is the record key holding HTS codes.
	HTSKey string
}

// ResultSettings configures result presentation.
type ResultSettings struct {
	// PageSize is the default number of records per page.
	PageSize int
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Source  SourceSettings
	Fields  FieldSettings
	Results ResultSettings
}

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Source: SourceSettings{
			Driver: SourceDriverJSON,
			Path:   "claims.json",
			Table:  "claims",
		},
		Fields: FieldSettings{
			DateKey: "importDate",
			HTSKey:  "HTSCode",
		},
		Results: ResultSettings{
			PageSize: DefaultPageSize,
		},
	}
}
