package cardapi

import (
	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
	"github.com/dmitrymomot/cardcheck/pkg/sanitizer"
	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

// maxSeparatorLen bounds the separator a client may ask for.
const maxSeparatorLen = 3

var (
	cleanNumber  = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.Trim)
	cleanNetwork = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.TrimToLower)
)

type checkRequest struct {
	Number    string `json:"number"`
	Separator string `json:"separator"`
}

func (req *checkRequest) normalize() error {
	req.Number = cleanNumber(req.Number)
	return validator.Apply(
		validator.CardNumberDigits("number", req.Number),
		validator.CardSeparator("separator", req.Separator, maxSeparatorLen),
	)
}

type checkResponse struct {
	Network   cardnetwork.Network `json:"network"`
	Name      string              `json:"name"`
	Status    cardnetwork.Status  `json:"status"`
	Valid     bool                `json:"valid"`
	Masked    string              `json:"masked"`
	Formatted string              `json:"formatted"`
	MaxLength int                 `json:"max_length"`
}

type validateRequest struct {
	Number  string `json:"number"`
	Network string `json:"network"`
}

func (req *validateRequest) normalize() (cardnetwork.Network, error) {
	req.Number = cleanNumber(req.Number)
	req.Network = cleanNetwork(req.Network)
	if err := validator.Apply(
		validator.CardNumberDigits("number", req.Number),
		validator.KnownCardNetwork("network", req.Network),
	); err != nil {
		return cardnetwork.Unknown, err
	}
	return cardnetwork.ParseNetwork(req.Network)
}

type validateResponse struct {
	Network cardnetwork.Network `json:"network"`
	Valid   bool                `json:"valid"`
}

type formatRequest struct {
	Number    string  `query:"number"`
	Network   string  `query:"network"`
	Separator *string `query:"separator"`
}

// normalize returns the network to format for: the named one, or the
// classified one when no name was given.
func (req *formatRequest) normalize() (cardnetwork.Network, error) {
	req.Number = cleanNumber(req.Number)
	req.Network = cleanNetwork(req.Network)

	rules := []validator.Rule{validator.CardNumberDigits("number", req.Number)}
	if req.Network != "" {
		rules = append(rules, validator.KnownCardNetwork("network", req.Network))
	}
	if req.Separator != nil {
		rules = append(rules, validator.CardSeparator("separator", *req.Separator, maxSeparatorLen))
	}
	if err := validator.Apply(rules...); err != nil {
		return cardnetwork.Unknown, err
	}

	if req.Network == "" {
		return cardnetwork.ClassifyNetwork(req.Number), nil
	}
	return cardnetwork.ParseNetwork(req.Network)
}

func (req formatRequest) separator() string {
	if req.Separator == nil {
		return cardnetwork.DefaultSeparator
	}
	return *req.Separator
}

type formatResponse struct {
	Network   cardnetwork.Network `json:"network"`
	Formatted string              `json:"formatted"`
}

type networkRequest struct {
	Network string `path:"network"`
}
