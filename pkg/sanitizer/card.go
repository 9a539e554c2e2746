package sanitizer

import (
	"strings"

	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

// visibleDigits is the number of trailing PAN digits left readable by the masks.
const visibleDigits = 4

// NormalizeCreditCard strips formatting for PCI-compliant storage and validation.
// Full-width digits are folded to ASCII.
func NormalizeCreditCard(cardNumber string) string {
	return cardnetwork.Digits(cardNumber)
}

// MaskCreditCard follows PCI DSS requirement to show only last 4 digits.
func MaskCreditCard(cardNumber string) string {
	digits := NormalizeCreditCard(cardNumber)
	if len(digits) <= visibleDigits {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-visibleDigits) + digits[len(digits)-visibleDigits:]
}

// FormatCreditCard groups the digits the way the card's network prints them,
// e.g. "3782 822463 10005" for American Express. Input that does not hold
// 13 to 19 digits is returned unchanged.
func FormatCreditCard(cardNumber, sep string) string {
	digits := NormalizeCreditCard(cardNumber)
	if len(digits) < 13 || len(digits) > cardnetwork.MaxDigits {
		return cardNumber
	}

	return cardnetwork.Format(digits, cardnetwork.ClassifyNetwork(digits), sep)
}

// MaskFormattedCreditCard combines network grouping with masking:
// "****-******-*0005". Every digit but the last four of the number is hidden;
// the separator is copied verbatim and never counts as a digit.
func MaskFormattedCreditCard(cardNumber, sep string) string {
	digits := NormalizeCreditCard(cardNumber)
	if digits == "" {
		return ""
	}
	if sep == "" {
		sep = cardnetwork.DefaultSeparator
	}

	// Group on a marker byte so separator digits cannot be mistaken for PAN digits.
	const marker = "\x00"
	grouped := cardnetwork.Format(digits, cardnetwork.ClassifyNetwork(digits), marker)
	hide := len(digits) - visibleDigits

	var b strings.Builder
	b.Grow(len(grouped) + len(grouped)/4*len(sep))
	seen := 0
	for i := 0; i < len(grouped); i++ {
		c := grouped[i]
		if c == marker[0] {
			b.WriteString(sep)
			continue
		}
		if hide <= 0 || seen < hide {
			c = '*'
		}
		seen++
		b.WriteByte(c)
	}
	return b.String()
}
