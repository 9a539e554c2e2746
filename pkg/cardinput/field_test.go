package cardinput_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/cardinput"
	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

func TestField_SetText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		display string
		network cardnetwork.Network
		valid   bool
		status  cardinput.Status
		shake   bool
	}{
		{"empty", "", "", cardnetwork.Unknown, false, cardinput.StatusDefault, false},
		{"valid visa", "4111111111111111", "4111-1111-1111-1111", cardnetwork.Visa, true, cardinput.StatusValid, false},
		{"invalid visa at full length", "4111111111111112", "4111-1111-1111-1112", cardnetwork.Visa, false, cardinput.StatusInvalid, true},
		{"visa between accepted lengths", "411111111111111", "4111-1111-1111-111", cardnetwork.Visa, false, cardinput.StatusInvalid, true},
		{"short visa keeps default", "411111111111", "4111-1111-1111", cardnetwork.Visa, false, cardinput.StatusDefault, false},
		{"valid amex", "378282246310005", "3782-822463-10005", cardnetwork.AmericanExpress, true, cardinput.StatusValid, false},
		{"reformats pasted text", "4111 1111 1111 1111", "4111-1111-1111-1111", cardnetwork.Visa, true, cardinput.StatusValid, false},
		{"short unknown", "12345", "1234-5", cardnetwork.Unknown, false, cardinput.StatusDefault, false},
		{"long unknown shakes", "1234567", "1234-567", cardnetwork.Unknown, false, cardinput.StatusDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := cardinput.New()
			st := f.SetText(tt.text)
			assert.Equal(t, tt.display, st.Text)
			assert.Equal(t, tt.network, st.Network)
			assert.Equal(t, tt.valid, st.Valid)
			assert.Equal(t, tt.status, st.Status, "status %s", st.Status)
			assert.Equal(t, tt.shake, st.Shake)
			assert.Equal(t, st, f.State())
			assert.Equal(t, cardnetwork.Digits(tt.text), f.Digits())
		})
	}
}

func TestField_ShakeDisabled(t *testing.T) {
	t.Parallel()

	f := cardinput.New(cardinput.WithShake(false))
	st := f.SetText("4111111111111112")
	assert.Equal(t, cardinput.StatusInvalid, st.Status)
	assert.False(t, st.Shake)

	st = f.SetText("1234567")
	assert.False(t, st.Shake)
}

func TestField_Separator(t *testing.T) {
	t.Parallel()

	f := cardinput.New(cardinput.WithSeparator(" "))
	assert.Equal(t, " ", f.Separator())
	assert.Equal(t, "4111 1111 1111 1111", f.SetText("4111-1111-1111-1111").Text)

	f = cardinput.New(cardinput.WithSeparator(""))
	assert.Equal(t, "-", f.Separator())
}

func TestField_ShouldChange(t *testing.T) {
	t.Parallel()

	t.Run("deletion is always accepted", func(t *testing.T) {
		f := cardinput.New()
		f.SetText("4111111111111111")
		assert.True(t, f.ShouldChange(""))
	})

	t.Run("visa is capped at sixteen digits", func(t *testing.T) {
		f := cardinput.New()
		f.SetText("411111111111111")
		assert.True(t, f.ShouldChange("1"))
		f.SetText("4111111111111111")
		assert.False(t, f.ShouldChange("1"))
	})

	t.Run("amex is capped at fifteen digits", func(t *testing.T) {
		f := cardinput.New()
		f.SetText("378282246310005")
		assert.False(t, f.ShouldChange("0"))
	})

	t.Run("unionpay allows nineteen digits", func(t *testing.T) {
		f := cardinput.New()
		f.SetText("620000000000000000")
		assert.True(t, f.ShouldChange("0"))
		f.SetText("6200000000000000000")
		assert.False(t, f.ShouldChange("0"))
	})

	t.Run("unrecognised numbers are capped", func(t *testing.T) {
		f := cardinput.New()
		f.SetText("123456")
		assert.True(t, f.ShouldChange("7"))
		f.SetText("1234567")
		assert.False(t, f.ShouldChange("8"))
	})

	t.Run("pasted text counts digits only", func(t *testing.T) {
		f := cardinput.New()
		f.SetText("4111-1111-1111")
		assert.True(t, f.ShouldChange("-1111"))
		assert.False(t, f.ShouldChange("-1111-1"))
	})
}

func TestField_Typing(t *testing.T) {
	t.Parallel()

	f := cardinput.New(cardinput.WithSeparator(" "))
	number := "4111111111111111"
	for i := range number {
		st, ok := f.Insert(number[i : i+1])
		require.True(t, ok, "digit %d", i)
		assert.Equal(t, cardnetwork.Visa, st.Network)
	}
	assert.Equal(t, "4111 1111 1111 1111", f.Text())
	assert.True(t, f.Valid())

	_, ok := f.Insert("1")
	assert.False(t, ok)
	assert.Equal(t, number, f.Digits())

	st := f.Backspace()
	assert.Equal(t, number[:15], st.Digits)
	assert.False(t, st.Valid)

	for range 20 {
		f.Backspace()
	}
	assert.Empty(t, f.Digits())
	assert.Equal(t, cardnetwork.Unknown, f.Network())
}

func TestField_LongUnknownInput(t *testing.T) {
	t.Parallel()

	f := cardinput.New()
	_, ok := f.Insert(strings.Repeat("1", 7))
	require.True(t, ok)
	_, ok = f.Insert("1")
	assert.False(t, ok)
}

func TestStatus_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "default", cardinput.StatusDefault.String())
	assert.Equal(t, "valid", cardinput.StatusValid.String())
	assert.Equal(t, "invalid", cardinput.StatusInvalid.String())
}
