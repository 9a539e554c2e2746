// Package sanitizer provides small helpers for cleaning user input and for
// rendering card numbers safely.
//
// String helpers (Trim, TrimToLower, MaxLength, RemoveControlChars,
// SingleLine) clean raw request values. Card helpers strip formatting
// (NormalizeCreditCard), hide all but the last four digits (MaskCreditCard,
// MaskFormattedCreditCard) and group digits per network (FormatCreditCard).
//
// Apply and Compose chain transformations:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SingleLine,
//	    sanitizer.Trim,
//	)
//	number := clean(" 4111 1111\t1111 1111\n") // "4111 1111 1111 1111"
//
// None of the helpers returns an error and there is no global state, so they
// are safe for concurrent use.
package sanitizer
