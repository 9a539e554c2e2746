package cardnetwork

// prefixRange is an inclusive range of equal-width leading-digit prefixes.
// A literal prefix has lo == hi.
type prefixRange struct {
	lo, hi string
}

func literal(p string) prefixRange { return prefixRange{lo: p, hi: p} }

func span(lo, hi string) prefixRange {
	if len(lo) != len(hi) {
		panic("cardnetwork: prefix range bounds must have equal width: " + lo + "-" + hi)
	}
	return prefixRange{lo: lo, hi: hi}
}

func (p prefixRange) String() string {
	if p.lo == p.hi {
		return p.lo
	}
	return p.lo + "-" + p.hi
}

// covers reports whether d starts with a prefix inside the range.
// Equal-width digit strings compare lexicographically like numbers.
func (p prefixRange) covers(d string) bool {
	w := len(p.lo)
	if len(d) < w {
		return false
	}
	head := d[:w]
	return head >= p.lo && head <= p.hi
}

// admits reports whether d is consistent with the range: either d already
// covers it, or d is shorter than the prefix and can still grow into it.
func (p prefixRange) admits(d string) bool {
	k := len(d)
	if k >= len(p.lo) {
		return p.covers(d)
	}
	return d >= p.lo[:k] && d <= p.hi[:k]
}

type rule struct {
	network  Network
	prefixes []prefixRange
	lengths  []int // accepted exact lengths, ascending
	layout   []int // digit group sizes used by Format; nil means groups of four
}

func (r *rule) accepts(n int) bool {
	for _, l := range r.lengths {
		if l == n {
			return true
		}
	}
	return false
}

func (r *rule) minLength() int { return r.lengths[0] }
func (r *rule) maxLength() int { return r.lengths[len(r.lengths)-1] }

// match evaluates the rule against a normalised digit string.
func (r *rule) match(d string) Status {
	if d == "" || len(d) > r.maxLength() {
		return NoMatch
	}
	consistent, complete := false, false
	for _, p := range r.prefixes {
		if p.covers(d) {
			consistent, complete = true, true
			break
		}
		if p.admits(d) {
			consistent = true
		}
	}
	switch {
	case !consistent:
		return NoMatch
	case complete && r.accepts(len(d)):
		return Full
	default:
		return Partial
	}
}

func between(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

// rules is the network table in declared evaluation order.
// The order is significant: when prefixes overlap the earlier row wins.
var rules = []rule{
	{network: Visa, prefixes: []prefixRange{literal("4")}, lengths: []int{13, 16}},
	{network: VisaElectron, prefixes: []prefixRange{
		literal("4026"), literal("417500"), literal("4405"), literal("4508"),
		literal("4844"), literal("4913"), literal("4917"),
	}, lengths: []int{16}},
	{network: MasterCard, prefixes: []prefixRange{span("51", "55"), span("2221", "2720")}, lengths: []int{16}},
	{network: AmericanExpress, prefixes: []prefixRange{literal("34"), literal("37")}, lengths: []int{15}, layout: []int{4, 6, 5}},
	{network: DinersClubInternational, prefixes: []prefixRange{literal("36")}, lengths: []int{14}, layout: []int{4, 6, 4}},
	{network: DinersClubUSAndCanada, prefixes: []prefixRange{literal("54"), literal("55")}, lengths: []int{16}},
	{network: DinersClubEnRoute, prefixes: []prefixRange{literal("2014"), literal("2149")}, lengths: []int{15}},
	{network: Discover, prefixes: []prefixRange{
		literal("6011"), span("622126", "622925"), span("644", "649"), literal("65"),
	}, lengths: []int{16}},
	{network: JCB, prefixes: []prefixRange{span("3528", "3589")}, lengths: []int{16}},
	{network: ChinaUnionPay, prefixes: []prefixRange{literal("62")}, lengths: between(16, 19)},
	{network: Maestro, prefixes: []prefixRange{literal("50"), span("56", "69")}, lengths: between(12, 19)},
	{network: Dankort, prefixes: []prefixRange{literal("5019")}, lengths: []int{16}},
	{network: BankCard, prefixes: []prefixRange{literal("5610"), span("560221", "560225")}, lengths: []int{16}},
	{network: MIR, prefixes: []prefixRange{span("2200", "2204")}, lengths: []int{16}},
	{network: Arca, prefixes: []prefixRange{literal("2202")}, lengths: []int{16}},
}

var byNetwork [len(networkNames)]*rule

func init() {
	for i := range rules {
		byNetwork[rules[i].network] = &rules[i]
	}
}

func lookup(n Network) (*rule, bool) {
	if int(n) >= len(byNetwork) {
		return nil, false
	}
	r := byNetwork[n]
	return r, r != nil
}
