package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/scribe/internal/log"
)

// DefaultDebounce is how long a file must be quiet before its event is sent.
const DefaultDebounce = 100 * time.Millisecond

// Op describes what happened to a watched file. Values combine as a bitmask.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Has reports whether op includes o.
func (op Op) Has(o Op) bool {
	return op&o != 0
}

// String returns the operation names joined with "|".
func (op Op) String() string {
	var parts []string
	for _, e := range []struct {
		op   Op
		name string
	}{
		{OpCreate, "create"},
		{OpWrite, "write"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
	} {
		if op.Has(e.op) {
			parts = append(parts, e.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Event reports a change to a watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is every operation seen during the debounce window.
	Op Op

	// Time is when the last operation was seen.
	Time time.Time
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period before an event is delivered.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithBufferSize sets the capacity of the event and error channels.
func WithBufferSize(n int) WatcherOption {
	return func(w *Watcher) {
		if n > 0 {
			w.bufSize = n
		}
	}
}

// Watcher watches individual files for changes.
// Parent directories are watched so that files replaced by rename (as most
// editors and our own atomic save do) keep reporting.
type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	debounce time.Duration
	bufSize  int

	files map[string]bool // watched file paths
	dirs  map[string]int  // watched directories, by number of files in them

	events chan Event
	errors chan error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher creates a watcher and starts its event loop.
func NewWatcher(opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		debounce: DefaultDebounce,
		bufSize:  16,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.events = make(chan Event, w.bufSize)
	w.errors = make(chan error, w.bufSize)

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts reporting changes to the file at path. The file itself need
// not exist yet, but its directory must.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.files[absPath] {
		return nil
	}

	dir := filepath.Dir(absPath)
	if w.dirs[dir] == 0 {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
	}
	w.dirs[dir]++
	w.files[absPath] = true
	log.Debug(log.CatConfig, "watching file", "path", absPath)
	return nil
}

// Unwatch stops reporting changes to the file at path.
func (w *Watcher) Unwatch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.files[absPath] {
		return nil
	}
	delete(w.files, absPath)

	dir := filepath.Dir(absPath)
	w.dirs[dir]--
	if w.dirs[dir] <= 0 {
		delete(w.dirs, dir)
		return w.fsw.Remove(dir)
	}
	return nil
}

// IsWatching reports whether path is watched.
func (w *Watcher) IsWatching(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.files[absPath]
}

// Events returns the debounced event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Pending events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()

	close(w.events)
	close(w.errors)

	return w.fsw.Close()
}

type pending struct {
	event    Event
	deadline time.Time
}

// processLoop coalesces fsnotify events per file and delivers each file's
// event once it has been quiet for the debounce period.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	queue := make(map[string]*pending)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-w.closeCh:
			timer.Stop()
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.IsWatching(fsEvent.Name) {
				continue
			}
			op := convertOp(fsEvent.Op)
			if op == 0 {
				continue
			}
			now := time.Now()
			p, exists := queue[fsEvent.Name]
			if !exists {
				p = &pending{event: Event{Path: fsEvent.Name}}
				queue[fsEvent.Name] = p
			}
			p.event.Op |= op
			p.event.Time = now
			p.deadline = now.Add(w.debounce)
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatConfig, "watcher error", err)
			select {
			case w.errors <- err:
			default:
			}

		case <-timer.C:
			now := time.Now()
			var next time.Duration
			for path, p := range queue {
				if wait := p.deadline.Sub(now); wait > 0 {
					if next == 0 || wait < next {
						next = wait
					}
					continue
				}
				delete(queue, path)
				w.send(p.event)
			}
			if next > 0 {
				timer.Reset(next)
			}
		}
	}
}

func (w *Watcher) send(ev Event) {
	select {
	case w.events <- ev:
	default:
		log.Warn(log.CatConfig, "event channel full, dropping event", "path", ev.Path, "op", ev.Op.String())
	}
}

// convertOp converts fsnotify.Op to Op. Chmod is ignored.
func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
