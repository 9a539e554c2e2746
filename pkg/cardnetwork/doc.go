// Package cardnetwork identifies the card network a payment card number
// belongs to and validates the number against that network's length rules and
// the Luhn checksum.
//
// The package is built around a fixed, ordered table of networks. Each row
// carries a set of leading-digit prefixes (single digits, literal multi-digit
// prefixes or ranges such as 2221-2720) and the exact digit counts the
// network issues. The table is the single source of truth for
// classification, validation, entry caps and display grouping.
//
// # Classification
//
// Classify walks the table in declared order and returns the first row that
// is consistent with the digits typed so far. It reports Partial while the
// number is still short of an accepted length and Full once a registered
// prefix is present and the length is accepted. Overlapping prefixes are
// resolved by table order, not by specificity: "2202" classifies as MIR even
// though Arca registers the same prefix. Candidates lists every consistent
// row when the caller needs the alternatives.
//
// Input is normalised with Digits before it is examined, so callers may pass
// text containing spaces, dashes or any other separator.
//
// # Validation
//
//	m := cardnetwork.Classify("4111 1111 1111 1111")
//	ok := cardnetwork.IsValid("4111 1111 1111 1111", m.Network) // true
//
// IsValid never fails: Unknown, empty input, unaccepted lengths and checksum
// failures all yield false.
//
// # Concurrency
//
// All functions are pure. The table is immutable after package
// initialisation, so every function is safe for concurrent use.
package cardnetwork
