// Package validator provides small, composable validation rules and the
// error model used to report them.
//
// A Rule pairs a Check func with translation-friendly error metadata. Rules
// are evaluated with Apply, which collects every failure into a
// ValidationErrors slice that satisfies the error interface, so several
// field problems travel in a single error return.
//
// Besides the generic string rules the package carries card number rules
// backed by the cardnetwork package:
//   - CardNumberDigits        – digits, spaces and dashes only, 1..19 digits
//   - ValidCreditCardChecksum – 13..19 digits passing the Luhn check
//   - ValidCardNumber         – recognised network, accepted length, Luhn
//   - CardNumberForNetwork    – the same against a caller-chosen network
//   - KnownCardNetwork        – a supported network identifier
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("number", req.Number),
//	    validator.CardNumberDigits("number", req.Number),
//	    validator.KnownCardNetwork("network", req.Network),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Get("number") ...
//	}
//
// Rules hold no state and are safe to build from any goroutine.
package validator
