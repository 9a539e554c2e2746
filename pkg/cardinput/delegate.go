package cardinput

// Delegate receives editing lifecycle notifications from a Field.
// Every method is required; embed NopDelegate to override only some of them.
type Delegate interface {
	// ShouldBeginEditing returns false to keep the field from starting an edit session.
	ShouldBeginEditing(f *Field) bool
	DidBeginEditing(f *Field)
	// ShouldEndEditing returns false to keep the edit session open.
	ShouldEndEditing(f *Field, valid bool) bool
	// DidEndEditing is called when the session ends, including forced ends
	// that ignored ShouldEndEditing.
	DidEndEditing(f *Field, valid bool)
	// ShouldClear returns false to ignore a clear request.
	ShouldClear(f *Field) bool
}

// NopDelegate allows every transition and ignores notifications.
type NopDelegate struct{}

func (NopDelegate) ShouldBeginEditing(*Field) bool     { return true }
func (NopDelegate) DidBeginEditing(*Field)             {}
func (NopDelegate) ShouldEndEditing(*Field, bool) bool { return true }
func (NopDelegate) DidEndEditing(*Field, bool)         {}
func (NopDelegate) ShouldClear(*Field) bool            { return true }
