package editor

import (
	"github.com/dshills/scribe/internal/dispatcher"
	"github.com/dshills/scribe/internal/document"
	"github.com/dshills/scribe/internal/input/repeat"
)

// Option configures a Session.
type Option func(*Session)

// WithFileSystem sets the file system used by Open, Save and Reload.
func WithFileSystem(fsys document.FileSystem) Option {
	return func(s *Session) {
		s.fsys = fsys
	}
}

// WithDispatcher sets the dispatcher. The session registers its file and
// quit handlers on it.
func WithDispatcher(d *dispatcher.Dispatcher) Option {
	return func(s *Session) {
		s.disp = d
	}
}

// WithRepeat sets the key-repeat timing.
func WithRepeat(config repeat.Config) Option {
	return func(s *Session) {
		s.repeatConfig = config
	}
}

// WithInvariantChecks verifies the buffer after every mutation.
func WithInvariantChecks(enabled bool) Option {
	return func(s *Session) {
		s.checks = enabled
	}
}
