// Package jsonfile provides a read-only claim source backed by a JSON file.
//
// The file holds either a bare array of claims or an object with a "claims"
// array:
//
//	[{"claimID": 1, "HTSCode": "1234.12.34.56", "importDate": "2024-01-15", ...}]
//	{"claims": [{"claimID": 1, ...}]}
//
// Money fields accept JSON numbers or strings and are decoded as decimals.
package jsonfile
