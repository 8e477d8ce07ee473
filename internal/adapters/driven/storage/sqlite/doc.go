// Package sqlite provides a read-only claim source backed by a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// Claims are read from a single table (default "claims") with snake_case columns:
//
//	claim_id INTEGER, importer_name TEXT, hts_code TEXT, import_date TEXT,
//	import_quantity INTEGER, export_date TEXT NULL, export_quantity INTEGER NULL,
//	duties_paid TEXT, drawback_claimed TEXT, drawback_type TEXT NULL
//
// Money columns hold decimal text so amounts survive without float rounding.
// Nothing is ever written back.
package sqlite
