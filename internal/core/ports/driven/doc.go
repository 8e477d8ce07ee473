// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - CodeRegistry: Accepted HTS codes of one validation session
//   - RangeStore: Accepted absolute time ranges
//   - ClaimSource: Read-only claim dataset (JSON file or SQLite)
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
