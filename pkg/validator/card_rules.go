package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

// cardDigits extracts the digits of a card number and reports whether value
// held nothing but digits and the usual separators (spaces and dashes).
func cardDigits(value string) (string, bool) {
	d := cardnetwork.Digits(value)
	n := 0
	for _, r := range value {
		if r == ' ' || r == '-' {
			continue
		}
		n++
	}
	return d, n == len(d)
}

// CardNumberDigits validates that value is made of digits, spaces and dashes
// only and carries between 1 and cardnetwork.MaxDigits digits.
func CardNumberDigits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, ok := cardDigits(value)
			return ok && d != "" && len(d) <= cardnetwork.MaxDigits
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain 1 to %d digits, spaces or dashes", cardnetwork.MaxDigits),
			TranslationKey: "validation.card_digits",
			TranslationValues: map[string]any{
				"field": field,
				"max":   cardnetwork.MaxDigits,
			},
		},
	}
}

// ValidCreditCardChecksum validates a credit card number using the Luhn algorithm.
// The number must hold 13 to 19 digits; the network is not considered.
func ValidCreditCardChecksum(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, ok := cardDigits(value)
			if !ok || len(d) < 13 || len(d) > cardnetwork.MaxDigits {
				return false
			}
			return cardnetwork.Luhn(d)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid credit card number",
			TranslationKey: "validation.credit_card",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidCardNumber validates that value belongs to a recognised network, has
// one of that network's lengths and passes the Luhn check.
func ValidCardNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			d, ok := cardDigits(value)
			if !ok {
				return false
			}
			return cardnetwork.IsValid(d, cardnetwork.ClassifyNetwork(d))
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid card number",
			TranslationKey: "validation.card_number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// CardNumberForNetwork validates value against the length and checksum rules
// of network n, regardless of which network the number would be classified as.
func CardNumberForNetwork(field, value string, n cardnetwork.Network) Rule {
	return Rule{
		Check: func() bool {
			d, ok := cardDigits(value)
			return ok && cardnetwork.IsValid(d, n)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("invalid %s card number", n.DisplayName()),
			TranslationKey: "validation.card_number_for_network",
			TranslationValues: map[string]any{
				"field":   field,
				"network": n.String(),
			},
		},
	}
}

// KnownCardNetwork validates that name is the identifier of a supported network.
// "unknown" is rejected.
func KnownCardNetwork(field, name string) Rule {
	return Rule{
		Check: func() bool {
			n, err := cardnetwork.ParseNetwork(name)
			return err == nil && n.Known()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "unsupported card network",
			TranslationKey: "validation.card_network",
			TranslationValues: map[string]any{
				"field": field,
				"value": name,
			},
		},
	}
}

// CardSeparator validates a digit-group separator: at most maxLen runes and
// no digits, so a formatted number never reads as a different PAN.
func CardSeparator(field, value string, maxLen int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= maxLen && !strings.ContainsFunc(value, unicode.IsDigit)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters and contain no digits", maxLen),
			TranslationKey: "validation.card_separator",
			TranslationValues: map[string]any{
				"field": field,
				"max":   maxLen,
			},
		},
	}
}
