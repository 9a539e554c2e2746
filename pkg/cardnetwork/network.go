package cardnetwork

import (
	"fmt"
	"strings"
)

// Network identifies a card-issuing scheme.
// The zero value is Unknown.
type Network uint8

const (
	Unknown Network = iota
	Visa
	VisaElectron
	MasterCard
	AmericanExpress
	DinersClubInternational
	DinersClubUSAndCanada
	DinersClubEnRoute
	Discover
	JCB
	ChinaUnionPay
	Maestro
	Dankort
	BankCard
	MIR
	Arca
)

// networkNames are the stable machine-readable names used in JSON, YAML and query strings.
var networkNames = [...]string{
	Unknown:                 "unknown",
	Visa:                    "visa",
	VisaElectron:            "visa_electron",
	MasterCard:              "mastercard",
	AmericanExpress:         "american_express",
	DinersClubInternational: "diners_club_international",
	DinersClubUSAndCanada:   "diners_club_us_canada",
	DinersClubEnRoute:       "diners_club_enroute",
	Discover:                "discover",
	JCB:                     "jcb",
	ChinaUnionPay:           "china_unionpay",
	Maestro:                 "maestro",
	Dankort:                 "dankort",
	BankCard:                "bankcard",
	MIR:                     "mir",
	Arca:                    "arca",
}

var displayNames = [...]string{
	Unknown:                 "Unknown",
	Visa:                    "Visa",
	VisaElectron:            "Visa Electron",
	MasterCard:              "MasterCard",
	AmericanExpress:         "American Express",
	DinersClubInternational: "Diners Club International",
	DinersClubUSAndCanada:   "Diners Club US & Canada",
	DinersClubEnRoute:       "Diners Club enRoute",
	Discover:                "Discover",
	JCB:                     "JCB",
	ChinaUnionPay:           "China UnionPay",
	Maestro:                 "Maestro",
	Dankort:                 "Dankort",
	BankCard:                "BankCard",
	MIR:                     "MIR",
	Arca:                    "ArCa",
}

// String returns the machine-readable name of the network.
// Out-of-range values render as "unknown".
func (n Network) String() string {
	if int(n) < len(networkNames) {
		return networkNames[n]
	}
	return networkNames[Unknown]
}

// DisplayName returns the human-readable brand name.
func (n Network) DisplayName() string {
	if int(n) < len(displayNames) {
		return displayNames[n]
	}
	return displayNames[Unknown]
}

// Known reports whether n is one of the networks in the table.
func (n Network) Known() bool {
	return n != Unknown && int(n) < len(networkNames)
}

func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// ParseNetwork resolves a network by its machine-readable name.
// Matching is case-insensitive and treats '-' and ' ' like '_'.
// "unknown" parses to Unknown without error.
func ParseNetwork(name string) (Network, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	for i, n := range networkNames {
		if n == key {
			return Network(i), nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
}
