package cardnetwork

// Luhn reports whether digits passes the mod-10 checksum.
// Starting from the rightmost digit every second digit is doubled, doubled
// values above 9 have 9 subtracted, and the total must be divisible by 10.
// Empty input and input containing anything but ASCII digits fail.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}
	sum, ok := luhnSum(digits, false)
	return ok && sum%10 == 0
}

// CheckDigit computes the digit that, appended to partial, makes the number
// pass Luhn. It returns false when partial is empty or not all digits.
func CheckDigit(partial string) (byte, bool) {
	if partial == "" {
		return 0, false
	}
	// The check digit sits in the undoubled rightmost slot, so the digit
	// right before it is the first to be doubled.
	sum, ok := luhnSum(partial, true)
	if !ok {
		return 0, false
	}
	return byte('0' + (10-sum%10)%10), true
}

func luhnSum(digits string, doubleFirst bool) (int, bool) {
	sum := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum, true
}
