package repeat

import (
	"time"

	"github.com/dshills/scribe/internal/input/key"
)

// State is the scheduler's position in the hold/repeat cycle.
type State uint8

const (
	Idle State = iota
	Fresh
	Holding
	Repeating
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fresh:
		return "fresh"
	case Holding:
		return "holding"
	case Repeating:
		return "repeating"
	default:
		return "unknown"
	}
}

// Classifier decides whether holding a key should repeat it.
type Classifier interface {
	Repeatable(ev key.Event) bool
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ev key.Event) bool

// Repeatable implements Classifier.
func (f ClassifierFunc) Repeatable(ev key.Event) bool {
	return f(ev)
}

// Input is everything the scheduler needs from one frame.
type Input struct {
	// Pressed is the key newly pressed this frame, or nil.
	Pressed *key.Event

	// Released reports that the held key was released this frame.
	Released bool

	// Elapsed is the frame time since the previous tick.
	Elapsed time.Duration
}

// Held describes the key currently being held.
type Held struct {
	Event    key.Event
	Duration time.Duration
}

// Scheduler converts presses and holds into firings.
type Scheduler struct {
	config     Config
	classifier Classifier

	state State
	held  Held
}

// New creates a scheduler. A nil classifier treats every key as repeatable.
func New(config Config, classifier Classifier) *Scheduler {
	if classifier == nil {
		classifier = ClassifierFunc(func(key.Event) bool { return true })
	}
	return &Scheduler{config: config, classifier: classifier}
}

// NewWithDefaults creates a scheduler with default timing.
func NewWithDefaults(classifier Classifier) *Scheduler {
	return New(DefaultConfig(), classifier)
}

// Tick advances the scheduler by one frame and returns the events to fire,
// in order. The result is nil when nothing fires.
func (s *Scheduler) Tick(in Input) []key.Event {
	var fired []key.Event

	pressed := in.Pressed != nil && !in.Pressed.IsZero()
	if pressed {
		ev := *in.Pressed
		fired = append(fired, ev)
		if s.classifier.Repeatable(ev) {
			s.state = Fresh
			s.held = Held{Event: ev}
		} else {
			s.Reset()
		}
	}

	if s.state == Idle {
		return fired
	}

	if in.Released {
		s.Reset()
		return fired
	}

	// The press frame itself does not count towards the hold.
	if pressed {
		return fired
	}

	s.held.Duration += in.Elapsed

	switch s.state {
	case Fresh, Holding:
		s.state = Holding
		if s.held.Duration >= s.config.StartDelay {
			s.held.Duration = s.config.StartDelay
			s.state = Repeating
			fired = append(fired, s.held.Event)
		}
	case Repeating:
		if s.held.Duration >= s.config.StartDelay+s.config.RepeatDelay {
			s.held.Duration = s.config.StartDelay
			fired = append(fired, s.held.Event)
		}
	}

	return fired
}

// Release stops tracking the held key.
func (s *Scheduler) Release() {
	s.Reset()
}

// Reset returns the scheduler to Idle.
func (s *Scheduler) Reset() {
	s.state = Idle
	s.held = Held{}
}

// State returns the current state.
func (s *Scheduler) State() State {
	return s.state
}

// Held returns the held key, if any.
func (s *Scheduler) Held() (Held, bool) {
	if s.state == Idle {
		return Held{}, false
	}
	return s.held, true
}

// Config returns the timing configuration.
func (s *Scheduler) Config() Config {
	return s.config
}

// SetConfig replaces the timing configuration. The held key, if any, keeps
// its accumulated duration.
func (s *Scheduler) SetConfig(config Config) {
	s.config = config
}
