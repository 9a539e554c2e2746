package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

func TestCardNumberDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain digits", "4111111111111111", true},
		{"spaces and dashes", "4111 1111-1111 1111", true},
		{"full-width digits", "４１１１", true},
		{"single digit", "4", true},
		{"nineteen digits", "6200000000000000000", true},
		{"twenty digits", "62000000000000000000", false},
		{"letters", "4111-abcd", false},
		{"dots", "4111.1111", false},
		{"empty", "", false},
		{"separators only", " - ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.CardNumberDigits("number", tt.value).Check())
		})
	}
}

func TestValidCreditCardChecksum(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidCreditCardChecksum("number", "4111 1111 1111 1111").Check())
	assert.True(t, validator.ValidCreditCardChecksum("number", "4222222222222").Check())
	assert.False(t, validator.ValidCreditCardChecksum("number", "4111111111111112").Check())
	assert.False(t, validator.ValidCreditCardChecksum("number", "18").Check(), "too short")
	assert.False(t, validator.ValidCreditCardChecksum("number", "4111x111111111111").Check())

	rule := validator.ValidCreditCardChecksum("card", "")
	assert.Equal(t, "validation.credit_card", rule.Error.TranslationKey)
	assert.Equal(t, "card", rule.Error.Field)
}

func TestValidCardNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"visa", "4111111111111111", true},
		{"amex with spaces", "3782 822463 10005", true},
		{"jcb", "3530111333300000", true},
		{"bad checksum", "4111111111111112", false},
		{"length not accepted", "411111111111111", false},
		{"unrecognised prefix", "1111111111111117", false},
		{"garbage", "4111-1111-1111-111x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidCardNumber("number", tt.value).Check())
		})
	}
}

func TestCardNumberForNetwork(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.CardNumberForNetwork("number", "4111111111111111", cardnetwork.Visa).Check())
	assert.False(t, validator.CardNumberForNetwork("number", "341111111111111", cardnetwork.Visa).Check())
	assert.False(t, validator.CardNumberForNetwork("number", "4111111111111111", cardnetwork.Unknown).Check())

	rule := validator.CardNumberForNetwork("number", "", cardnetwork.AmericanExpress)
	assert.Equal(t, "invalid American Express card number", rule.Error.Message)
	assert.Equal(t, "american_express", rule.Error.TranslationValues["network"])
}

func TestKnownCardNetwork(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.KnownCardNetwork("network", "visa").Check())
	assert.True(t, validator.KnownCardNetwork("network", "China-UnionPay").Check())
	assert.False(t, validator.KnownCardNetwork("network", "unknown").Check())
	assert.False(t, validator.KnownCardNetwork("network", "").Check())
	assert.False(t, validator.KnownCardNetwork("network", "solo").Check())
}

func TestCardRules_Apply(t *testing.T) {
	t.Parallel()

	err := validator.Apply(
		validator.RequiredString("number", ""),
		validator.CardNumberDigits("number", ""),
		validator.KnownCardNetwork("network", "solo"),
	)
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"number", "network"}, verrs.Fields())
	assert.Len(t, verrs.Get("number"), 2)
}

func TestCardSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty", "", true},
		{"dash", "-", true},
		{"multi-rune", " / ", true},
		{"unicode", "··", true},
		{"too long", "----", false},
		{"digit", "9", false},
		{"digit among others", "-1-", false},
		{"full-width digit", "３", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.CardSeparator("separator", tt.value, 3).Check())
		})
	}

	rule := validator.CardSeparator("separator", "9", 3)
	assert.Equal(t, "validation.card_separator", rule.Error.TranslationKey)
	assert.Equal(t, 3, rule.Error.TranslationValues["max"])
}
