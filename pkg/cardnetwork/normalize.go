package cardnetwork

import (
	"strings"

	"golang.org/x/text/width"
)

// MaxDigits is the longest card number any network accepts.
const MaxDigits = 19

// Digits strips everything but decimal digits from raw.
// Full-width digits (as produced by some East Asian input methods) are folded
// to ASCII first, so "４１１１ １１１１" yields "41111111".
func Digits(raw string) string {
	if raw == "" {
		return ""
	}
	folded := width.Narrow.String(raw)
	var b strings.Builder
	b.Grow(len(folded))
	for i := 0; i < len(folded); i++ {
		if c := folded[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
