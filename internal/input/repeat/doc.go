// Package repeat turns key presses and holds into a timed stream of firings.
//
// A Scheduler tracks at most one held key. Each frame the host calls Tick
// with the key pressed during that frame (if any), whether the held key
// was released, and the time elapsed since the previous frame. Tick
// returns the key events that should fire this frame.
//
// States:
//
//	Idle      no key held
//	Fresh     key pressed this frame; it fired immediately
//	Holding   key held, waiting for StartDelay
//	Repeating key held past StartDelay, firing every RepeatDelay
//
// A press fires once immediately. If the key keeps being held, it fires
// again when the held time reaches StartDelay, and then every RepeatDelay.
// Pressing another key replaces the held one; releasing the held key stops
// repetition at once. Keys the Classifier reports as not repeatable fire
// once and leave the scheduler Idle.
//
// The scheduler is not safe for concurrent use; it is driven by the
// frame loop that owns the editor session.
package repeat
