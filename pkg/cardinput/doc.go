// Package cardinput models the decision logic of a card number entry field
// on top of package cardnetwork.
//
// A Field keeps the unformatted digits typed so far, re-classifies them on
// every edit and produces a State: the text formatted for the detected
// network, whether the number is valid, a presentation Status and whether
// the caller should play invalid-input feedback (a shake). ShouldChange caps
// input at the detected network's maximum length so the user cannot type past
// a complete number.
//
// Rendering, animation and keyboard handling belong to the caller; the
// package only decides what should happen.
//
// # Usage
//
//	f := cardinput.New(cardinput.WithSeparator(" "), cardinput.WithDelegate(d))
//	f.BeginEditing()
//	if f.ShouldChange("4") {
//	    st := f.SetText(f.Digits() + "4")
//	    render(st.Text, st.Status, st.Shake)
//	}
//	f.EndEditing(false) // d.DidEndEditing(f, valid)
//
// Delegates implement every method of Delegate; embed NopDelegate to pick only
// the callbacks you need.
package cardinput
