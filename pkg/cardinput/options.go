package cardinput

// Option configures a Field.
type Option func(*Field)

// WithSeparator sets the string placed between digit groups.
// An empty separator is ignored.
func WithSeparator(sep string) Option {
	return func(f *Field) {
		if sep != "" {
			f.separator = sep
		}
	}
}

// WithShake enables or disables the shake signal on invalid input.
func WithShake(enabled bool) Option {
	return func(f *Field) { f.shake = enabled }
}

// WithDelegate sets the lifecycle delegate. Nil keeps NopDelegate.
func WithDelegate(d Delegate) Option {
	return func(f *Field) {
		if d != nil {
			f.delegate = d
		}
	}
}
