package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal implements Surface on a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
	ready  bool
}

// NewTerminal creates a terminal on the controlling tty.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewSimulation creates a terminal on an in-memory screen of the given
// size. The screen is initialized.
func NewSimulation(width, height int) (*Terminal, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, nil, err
	}
	sim.SetSize(width, height)
	return &Terminal{screen: sim, ready: true}, sim, nil
}

// Init initializes the screen. Must be called before drawing on a
// terminal from NewTerminal; it does nothing on an initialized screen.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ready {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	t.ready = true
	return nil
}

// Shutdown restores the terminal.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready {
		return
	}
	t.screen.Fini()
	t.ready = false
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// SetContent sets one cell.
func (t *Terminal) SetContent(x, y int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, r, nil, style)
}

// Fill sets every cell of a rectangle.
func (t *Terminal) Fill(x, y, w, h int, r rune, style tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	for row := max(y, 0); row < y+h && row < height; row++ {
		for col := max(x, 0); col < x+w && col < width; col++ {
			t.screen.SetContent(col, row, r, nil, style)
		}
	}
}

// Content returns the rune and style at x, y.
func (t *Terminal) Content(x, y int) (rune, tcell.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return r, style
}

// Clear clears the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

// Show flushes changes to the display.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// ShowCursor positions and displays the cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

// HideCursor hides the cursor.
func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

// PollEvent blocks until the next event. It returns EventNone for events
// scribe does not handle and ok=false once the screen is finalized.
func (t *Terminal) PollEvent() (Event, bool) {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{}, false
	}
	return convertEvent(ev), true
}

// Interrupt wakes PollEvent with an EventInterrupt carrying data.
func (t *Terminal) Interrupt(data any) {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(data)) // best-effort; queue may be full
}

func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := ConvertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: k}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}

	default:
		return Event{Type: EventNone}
	}
}
