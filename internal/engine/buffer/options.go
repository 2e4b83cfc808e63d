package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithInvariantChecks enables validation after every operation.
// A violation panics with an *InvariantError.
func WithInvariantChecks(enabled bool) Option {
	return func(b *Buffer) {
		b.checks = enabled
	}
}

// WithText seeds the buffer with text, leaving the caret at offset 0.
func WithText(s string) Option {
	return func(b *Buffer) {
		b.InsertText(s)
		b.caret = 0
	}
}
