package cardnetwork

// unknownMaxLength caps entry while no network has been recognised.
const unknownMaxLength = 7

// IsValid reports whether raw is a valid card number for network n.
// It returns false for Unknown, for empty input and for lengths n does not
// accept; otherwise the result is the Luhn checksum of the digits.
// Prefix agreement with n is not checked.
func IsValid(raw string, n Network) bool {
	return isValidDigits(Digits(raw), n)
}

func isValidDigits(d string, n Network) bool {
	r, ok := lookup(n)
	if !ok || d == "" {
		return false
	}
	if !r.accepts(len(d)) {
		return false
	}
	return Luhn(d)
}

// Result is the combined outcome of Check.
type Result struct {
	Digits  string  `json:"-" yaml:"-"`
	Network Network `json:"network" yaml:"network"`
	Status  Status  `json:"status" yaml:"status"`
	Valid   bool    `json:"valid" yaml:"valid"`
}

// Check classifies raw and validates it against the classified network.
func Check(raw string) Result {
	d := Digits(raw)
	m := classifyDigits(d)
	return Result{
		Digits:  d,
		Network: m.Network,
		Status:  m.Status,
		Valid:   isValidDigits(d, m.Network),
	}
}

// MaxLength returns the longest digit count n accepts.
// Unknown returns the generic entry cap used before a network is recognised.
func MaxLength(n Network) int {
	r, ok := lookup(n)
	if !ok {
		return unknownMaxLength
	}
	return r.maxLength()
}

// MinLength returns the shortest digit count n accepts, or 0 for Unknown.
func MinLength(n Network) int {
	r, ok := lookup(n)
	if !ok {
		return 0
	}
	return r.minLength()
}

// AcceptedLengths returns the exact digit counts n accepts, ascending.
// The slice is a copy; Unknown returns nil.
func AcceptedLengths(n Network) []int {
	r, ok := lookup(n)
	if !ok {
		return nil
	}
	return append([]int(nil), r.lengths...)
}

// Prefixes returns the registered prefixes of n, ranges rendered as "lo-hi".
func Prefixes(n Network) []string {
	r, ok := lookup(n)
	if !ok {
		return nil
	}
	out := make([]string, len(r.prefixes))
	for i, p := range r.prefixes {
		out[i] = p.String()
	}
	return out
}

// Networks returns all known networks in declared evaluation order.
func Networks() []Network {
	out := make([]Network, len(rules))
	for i := range rules {
		out[i] = rules[i].network
	}
	return out
}

// NetworkSpec is a read-only export of one row of the network table.
type NetworkSpec struct {
	Network   Network  `json:"network" yaml:"network"`
	Name      string   `json:"name" yaml:"name"`
	Prefixes  []string `json:"prefixes" yaml:"prefixes"`
	Lengths   []int    `json:"lengths" yaml:"lengths"`
	MaxLength int      `json:"max_length" yaml:"max_length"`
}

// Spec returns the table row for n.
func Spec(n Network) (NetworkSpec, bool) {
	if _, ok := lookup(n); !ok {
		return NetworkSpec{}, false
	}
	return NetworkSpec{
		Network:   n,
		Name:      n.DisplayName(),
		Prefixes:  Prefixes(n),
		Lengths:   AcceptedLengths(n),
		MaxLength: MaxLength(n),
	}, true
}

// Table returns every row of the network table in declared order.
func Table() []NetworkSpec {
	out := make([]NetworkSpec, 0, len(rules))
	for _, n := range Networks() {
		s, _ := Spec(n)
		out = append(out, s)
	}
	return out
}
