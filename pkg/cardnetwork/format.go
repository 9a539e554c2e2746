package cardnetwork

import "strings"

// DefaultSeparator joins digit groups when Format is given an empty separator.
const DefaultSeparator = "-"

// Format groups the digits of raw for display using the layout of n:
// American Express 4-6-5, Diners Club International 4-6-4 and groups of four
// for every other network. Digits past the layout continue in groups of four.
// Partial input is formatted as far as it goes, without a trailing separator.
func Format(raw string, n Network, sep string) string {
	d := Digits(raw)
	if d == "" {
		return ""
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	var layout []int
	if r, ok := lookup(n); ok {
		layout = r.layout
	}

	var b strings.Builder
	b.Grow(len(d) + len(d)/4*len(sep))
	for i, pos := 0, 0; pos < len(d); i++ {
		size := 4
		if i < len(layout) {
			size = layout[i]
		}
		end := min(pos+size, len(d))
		if pos > 0 {
			b.WriteString(sep)
		}
		b.WriteString(d[pos:end])
		pos = end
	}
	return b.String()
}
