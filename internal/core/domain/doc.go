// Package domain defines the core business entities for drawback filtering.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CodeSet, ValidationResult, EditResult: HTS code validation outcomes
//   - AbsoluteRange, RelativeRange, TimeRange: date windows
//   - SearchField, Record: filter engine input
//   - Suggestion, FilterEntity: user-visible filters
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
