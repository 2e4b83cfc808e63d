package repeat

import (
	"fmt"
	"time"
)

// Default delays, matching common keyboard auto-repeat settings.
const (
	DefaultStartDelay  = 400 * time.Millisecond
	DefaultRepeatDelay = 25 * time.Millisecond
)

// Config holds the repeat timing.
type Config struct {
	// StartDelay is how long a key must be held before it starts repeating.
	StartDelay time.Duration

	// RepeatDelay is the interval between repeats once repeating.
	RepeatDelay time.Duration
}

// DefaultConfig returns the default timing.
func DefaultConfig() Config {
	return Config{
		StartDelay:  DefaultStartDelay,
		RepeatDelay: DefaultRepeatDelay,
	}
}

// WithStartDelay returns a copy of the config with the start delay set.
func (c Config) WithStartDelay(d time.Duration) Config {
	c.StartDelay = d
	return c
}

// WithRepeatDelay returns a copy of the config with the repeat delay set.
func (c Config) WithRepeatDelay(d time.Duration) Config {
	c.RepeatDelay = d
	return c
}

// Validate checks that both delays are positive.
func (c Config) Validate() error {
	if c.StartDelay <= 0 {
		return fmt.Errorf("repeat: start delay must be positive, got %s", c.StartDelay)
	}
	if c.RepeatDelay <= 0 {
		return fmt.Errorf("repeat: repeat delay must be positive, got %s", c.RepeatDelay)
	}
	return nil
}
