package cardnetwork

import "fmt"

// Status describes how far a digit string agrees with a network rule.
type Status uint8

const (
	// NoMatch means no network rule is consistent with the digits.
	NoMatch Status = iota
	// Partial means the digits are consistent with the network's prefixes
	// but the number is not yet at an accepted length.
	Partial
	// Full means a registered prefix is present and the length is accepted.
	Full
)

var statusNames = [...]string{
	NoMatch: "no_match",
	Partial: "partial",
	Full:    "full",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return statusNames[NoMatch]
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStatus, text)
}

// Match is the outcome of classifying a digit string.
type Match struct {
	Network Network `json:"network" yaml:"network"`
	Status  Status  `json:"status" yaml:"status"`
}

// Matched reports whether any network rule accepted the digits.
func (m Match) Matched() bool {
	return m.Status != NoMatch
}

// Classify normalises raw and returns the first network, in declared table
// order, whose rule is consistent with the digits typed so far.
//
// Classification short-circuits on the first consistent row even when the
// number is still short, so overlapping prefixes resolve to the earlier row.
// Empty input, input longer than MaxDigits and input that no row accepts
// classify as Unknown with status NoMatch.
func Classify(raw string) Match {
	return classifyDigits(Digits(raw))
}

// ClassifyNetwork is Classify reduced to the network.
func ClassifyNetwork(raw string) Network {
	return Classify(raw).Network
}

// Candidates returns every network consistent with raw, in declared order.
// The first element, if any, equals Classify(raw).
func Candidates(raw string) []Match {
	d := Digits(raw)
	if d == "" || len(d) > MaxDigits {
		return nil
	}
	var out []Match
	for i := range rules {
		if st := rules[i].match(d); st != NoMatch {
			out = append(out, Match{Network: rules[i].network, Status: st})
		}
	}
	return out
}

func classifyDigits(d string) Match {
	if d == "" || len(d) > MaxDigits {
		return Match{}
	}
	for i := range rules {
		if st := rules[i].match(d); st != NoMatch {
			return Match{Network: rules[i].network, Status: st}
		}
	}
	return Match{}
}
