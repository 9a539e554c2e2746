package cardinput

import (
	"unicode/utf8"

	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
)

// minEntryLength is the number of formatted characters after which an
// unrecognised number signals a shake.
const minEntryLength = 6

// Complete-looking formatted lengths at which a failing number is marked invalid.
const (
	invalidFromLength = 15
	invalidToLength   = 19
)

// Status is the presentation hint for the current text.
type Status uint8

const (
	// StatusDefault leaves the text in its normal appearance.
	StatusDefault Status = iota
	// StatusValid marks a number that passes validation.
	StatusValid
	// StatusInvalid marks a recognised number that fails validation at a
	// complete-looking length.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return "default"
	}
}

// State is the outcome of evaluating the field's text.
type State struct {
	Text    string              // formatted text to display
	Digits  string              // unformatted digits
	Network cardnetwork.Network // classified network, Unknown when none
	Match   cardnetwork.Status
	Valid   bool
	Status  Status
	Shake   bool // whether the caller should play its invalid-input feedback
}

// Field models a card number text field: it formats the text as the user
// types, decides which keystrokes are accepted and reports validity.
// A Field is owned by a single caller and is not safe for concurrent use.
type Field struct {
	separator string
	shake     bool
	delegate  Delegate

	state   State
	editing bool
}

// New returns an empty Field. Defaults: "-" separator, shaking enabled,
// NopDelegate.
func New(opts ...Option) *Field {
	f := &Field{
		separator: cardnetwork.DefaultSeparator,
		shake:     true,
		delegate:  NopDelegate{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Field) State() State                 { return f.state }
func (f *Field) Text() string                 { return f.state.Text }
func (f *Field) Digits() string               { return f.state.Digits }
func (f *Field) Network() cardnetwork.Network { return f.state.Network }
func (f *Field) Valid() bool                  { return f.state.Valid }
func (f *Field) Editing() bool                { return f.editing }
func (f *Field) Separator() string            { return f.separator }

// ShouldChange reports whether inserting replacement should be accepted.
// Deletions (empty replacement) are always accepted. Otherwise the resulting
// digit count must not exceed the entry cap of the current network.
func (f *Field) ShouldChange(replacement string) bool {
	if replacement == "" {
		return true
	}
	count := len(f.state.Digits) + len(cardnetwork.Digits(replacement))
	return count <= cardnetwork.MaxLength(f.state.Network)
}

// SetText replaces the field's content and re-evaluates it.
func (f *Field) SetText(text string) State {
	digits := cardnetwork.Digits(text)
	m := cardnetwork.Classify(digits)

	st := State{
		Text:    cardnetwork.Format(digits, m.Network, f.separator),
		Digits:  digits,
		Network: m.Network,
		Match:   m.Status,
		Valid:   cardnetwork.IsValid(digits, m.Network),
	}

	length := utf8.RuneCountInString(st.Text)
	switch {
	case st.Network == cardnetwork.Unknown:
		st.Status = StatusDefault
		st.Shake = f.shake && length > minEntryLength
	case st.Valid:
		st.Status = StatusValid
	case length >= invalidFromLength && length <= invalidToLength:
		st.Status = StatusInvalid
		st.Shake = f.shake
	default:
		st.Status = StatusDefault
	}

	f.state = st
	return st
}

// Insert applies replacement at the end of the current digits when
// ShouldChange accepts it. It returns the new state and whether the edit was applied.
func (f *Field) Insert(replacement string) (State, bool) {
	if !f.ShouldChange(replacement) {
		return f.state, false
	}
	return f.SetText(f.state.Digits + cardnetwork.Digits(replacement)), true
}

// Backspace removes the last digit.
func (f *Field) Backspace() State {
	d := f.state.Digits
	if d == "" {
		return f.state
	}
	return f.SetText(d[:len(d)-1])
}

// BeginEditing starts an edit session unless the delegate refuses.
func (f *Field) BeginEditing() bool {
	if f.editing {
		return true
	}
	if !f.delegate.ShouldBeginEditing(f) {
		return false
	}
	f.editing = true
	f.delegate.DidBeginEditing(f)
	return true
}

// EndEditing ends the edit session. Unless force is set the delegate may
// keep the session open. DidEndEditing is always called when the session ends.
func (f *Field) EndEditing(force bool) bool {
	if !f.editing {
		return true
	}
	valid := f.state.Valid
	if !force && !f.delegate.ShouldEndEditing(f, valid) {
		return false
	}
	f.editing = false
	f.delegate.DidEndEditing(f, valid)
	return true
}

// Clear empties the field unless the delegate refuses.
func (f *Field) Clear() bool {
	if !f.delegate.ShouldClear(f) {
		return false
	}
	f.SetText("")
	return true
}
