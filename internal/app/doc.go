// Package app runs scribe in a terminal.
//
// The Application owns the configuration, the editing session, the
// renderer and the optional plugin host and file watcher. Run drives a
// fixed-rate frame loop:
//
//	poll goroutine ──key/resize──┐
//	watcher ────file events──────┤
//	ticker ──────────────────────┴─> frame: Session.Tick, Renderer.Render
//
// The editing core is only touched from the loop goroutine. Terminals do
// not report key releases, so every key is delivered as a press released
// in the same frame. A held key therefore repeats only through the
// terminal's own auto-repeat, which sends the key again; the scheduler
// never reaches its hold and repeat states here.
package app
