package cardnetwork_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

// withCheckDigit appends the Luhn check digit to partial.
func withCheckDigit(t *testing.T, partial string) string {
	t.Helper()
	c, ok := cardnetwork.CheckDigit(partial)
	require.True(t, ok, "check digit for %q", partial)
	return partial + string(c)
}

func TestLuhn(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		valid := []string{
			"4111111111111111",
			"4012888888881881",
			"4222222222222",
			"5555555555554444",
			"5105105105105100",
			"378282246310005",
			"341111111111111",
			"36227206271667",
			"6011000000000004",
			"6011111111111117",
			"3530111333300000",
			"6200000000000005",
			"6759649826438453",
			"0",
			"00",
		}
		for _, d := range valid {
			assert.True(t, cardnetwork.Luhn(d), "expected valid: %s", d)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		invalid := []string{
			"",
			"4111111111111112",
			"1234567890123456",
			"4111 1111 1111 1111",
			"411111111111111a",
			"1",
		}
		for _, d := range invalid {
			assert.False(t, cardnetwork.Luhn(d), "expected invalid: %q", d)
		}
	})
}

func TestLuhn_SingleDigitCorruption(t *testing.T) {
	t.Parallel()

	valid := []string{
		"4111111111111111",
		"378282246310005",
		"6011000000000004",
		"6759649826438453",
		"6200000000000000000",
	}

	for _, number := range valid {
		require.True(t, cardnetwork.Luhn(number), number)
		for i := range number {
			b := []byte(number)
			b[i] = '0' + (b[i]-'0'+1)%10
			corrupted := string(b)
			assert.False(t, cardnetwork.Luhn(corrupted), "digit %d of %s flipped to %s", i, number, corrupted)
		}
	}
}

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	t.Run("completes known numbers", func(t *testing.T) {
		cases := map[string]byte{
			"411111111111111": '1',
			"601100000000000": '4',
			"37828224631000":  '5',
			"220000000000000": '4',
		}
		for partial, want := range cases {
			got, ok := cardnetwork.CheckDigit(partial)
			require.True(t, ok)
			assert.Equal(t, want, got, partial)
		}
	})

	t.Run("result passes luhn", func(t *testing.T) {
		for _, partial := range []string{"4", "22000000000000", "62000000000000000", "50123456789"} {
			assert.True(t, cardnetwork.Luhn(withCheckDigit(t, partial)), partial)
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, ok := cardnetwork.CheckDigit("")
		assert.False(t, ok)
		_, ok = cardnetwork.CheckDigit("12a4")
		assert.False(t, ok)
	})
}
