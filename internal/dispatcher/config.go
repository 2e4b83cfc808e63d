package dispatcher

// DefaultPageLines is how far PageUp and PageDown move before the host
// reports the real viewport height.
const DefaultPageLines = 20

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool

	// PageLines is the number of lines PageUp and PageDown move.
	PageLines int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
		PageLines:        DefaultPageLines,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithPageLines returns a copy of the config with the page size set.
func (c Config) WithPageLines(n int) Config {
	c.PageLines = n
	return c
}
