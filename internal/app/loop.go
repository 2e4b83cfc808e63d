package app

import (
	"context"
	"time"

	"github.com/dshills/scribe/internal/editor"
	"github.com/dshills/scribe/internal/log"
	"github.com/dshills/scribe/internal/renderer/backend"
)

// eventBuffer is how many terminal events may queue between frames.
const eventBuffer = 64

// Run initializes the screen and runs the frame loop until the session
// quits or ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer app.screen.Shutdown()

	events := make(chan backend.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)
	go app.poll(events, done)

	app.updatePageLines()
	app.draw()

	ticker := time.NewTicker(app.cfg.FrameInterval())
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			log.Info(log.CatApp, "stopping", "reason", ctx.Err())
			return nil

		case ev := <-events:
			app.handleEvent(ev)

		case fe := <-app.watchEvents():
			app.handleFileEvent(fe)

		case err := <-app.watchErrors():
			log.Warn(log.CatApp, "watcher error", "error", err)

		case now := <-ticker.C:
			app.frame(now.Sub(last))
			last = now
			if app.session.Done() {
				log.Info(log.CatApp, "quit")
				return nil
			}
		}
	}
}

// poll relays screen events until the screen shuts down or done closes.
func (app *Application) poll(events chan<- backend.Event, done <-chan struct{}) {
	for {
		ev, ok := app.screen.PollEvent()
		if !ok {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (app *Application) handleEvent(ev backend.Event) {
	switch ev.Type {
	case backend.EventKey:
		app.pending = append(app.pending, ev.Key)
	case backend.EventResize:
		app.updatePageLines()
	}
}

// frame delivers the keys received since the last frame and redraws.
// The first key carries the elapsed time.
func (app *Application) frame(elapsed time.Duration) {
	if len(app.pending) == 0 {
		app.session.Tick(editor.Idle(elapsed))
	}
	for i, k := range app.pending {
		f := editor.Press(k, 0)
		f.Released = true
		if i == 0 {
			f.Elapsed = elapsed
		}
		app.session.Tick(f)
		if app.session.Done() {
			break
		}
	}
	app.pending = app.pending[:0]

	app.watchDocument()
	app.draw()
}

func (app *Application) draw() {
	app.renderer.Render(app.session.Snapshot())
}

// updatePageLines sizes page movements to the text area unless the
// configuration fixes them.
func (app *Application) updatePageLines() {
	if app.cfg.Editor.PageLines > 0 {
		app.session.Dispatcher().SetPageLines(app.cfg.Editor.PageLines)
		return
	}
	app.session.Dispatcher().SetPageLines(app.renderer.PageLines())
}
