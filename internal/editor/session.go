package editor

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dshills/scribe/internal/dispatcher"
	"github.com/dshills/scribe/internal/document"
	"github.com/dshills/scribe/internal/engine/buffer"
	"github.com/dshills/scribe/internal/input/repeat"
	"github.com/dshills/scribe/internal/log"
)

// Session is one editing session over one buffer.
type Session struct {
	buf   *buffer.Buffer
	disp  *dispatcher.Dispatcher
	sched *repeat.Scheduler

	fsys   document.FileSystem
	path   string
	format document.Format
	saved  uint64

	repeatConfig repeat.Config
	checks       bool

	message string
	done    bool
}

// New creates a session with an empty scratch buffer.
func New(opts ...Option) *Session {
	s := &Session{
		format:       document.DefaultFormat(),
		repeatConfig: repeat.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fsys == nil {
		s.fsys = document.DefaultFS()
	}
	if s.disp == nil {
		s.disp = dispatcher.NewWithDefaults()
	}
	s.buf = buffer.New(buffer.WithInvariantChecks(s.checks))
	s.sched = repeat.New(s.repeatConfig, s.disp)
	s.saved = s.buf.Revision()
	s.registerHandlers()

	return s
}

// Open loads the file at path into the buffer and puts the caret at 0.
// A missing file still becomes the session's path, with an empty buffer,
// so that saving creates it; the returned error then wraps
// document.ErrNotFound. Any other error leaves the session unchanged.
func (s *Session) Open(path string) error {
	doc, err := document.Read(s.fsys, path)
	if err != nil {
		if !errors.Is(err, document.ErrNotFound) {
			log.ErrorErr(log.CatEditor, "open failed", err, "path", path)
			return err
		}
		s.load(path, "", document.DefaultFormat())
		s.message = fmt.Sprintf("%q [New]", filepath.Base(path))
		return err
	}

	s.load(path, doc.Text, doc.Format)
	s.message = fmt.Sprintf("%q %dL", filepath.Base(path), s.buf.LineCount())
	log.Info(log.CatEditor, "opened", "path", path, "lines", s.buf.LineCount())
	return nil
}

func (s *Session) load(path, text string, format document.Format) {
	s.buf.Reset()
	s.buf.InsertText(text)
	s.buf.SetCaret(0)
	s.path = path
	s.format = format
	s.saved = s.buf.Revision()
	s.sched.Reset()
}

// Save writes the buffer text to the session's file in the format it was
// read in.
func (s *Session) Save() error {
	if s.path == "" {
		return ErrNoFile
	}
	if err := document.Write(s.fsys, s.path, s.buf.Text(), s.format); err != nil {
		log.ErrorErr(log.CatEditor, "save failed", err, "path", s.path)
		return err
	}
	s.saved = s.buf.Revision()
	s.message = fmt.Sprintf("%q %dL written", filepath.Base(s.path), s.buf.LineCount())
	log.Info(log.CatEditor, "saved", "path", s.path)
	return nil
}

// SaveAs makes path the session's file and saves to it.
func (s *Session) SaveAs(path string) error {
	prev := s.path
	s.path = path
	if err := s.Save(); err != nil {
		s.path = prev
		return err
	}
	return nil
}

// Reload re-reads the session's file. The caret keeps its offset, clamped
// to the new content. Unsaved changes are discarded only when force is
// true; otherwise ErrModified is returned.
func (s *Session) Reload(force bool) error {
	if s.path == "" {
		return ErrNoFile
	}
	if s.Dirty() && !force {
		return ErrModified
	}

	doc, err := document.Read(s.fsys, s.path)
	if err != nil {
		log.ErrorErr(log.CatEditor, "reload failed", err, "path", s.path)
		return err
	}

	caret := s.buf.Caret()
	s.load(s.path, doc.Text, doc.Format)
	s.buf.SetCaret(caret)
	s.message = fmt.Sprintf("%q reloaded", filepath.Base(s.path))
	log.Info(log.CatEditor, "reloaded", "path", s.path)
	return nil
}

// FileChanged handles a change to the session's file on disk. Content
// equal to the buffer, such as after the session's own save, is ignored.
// A clean buffer is reloaded; a dirty one keeps its content and reports
// the conflict in the status message.
func (s *Session) FileChanged() {
	if s.path == "" {
		return
	}

	doc, err := document.Read(s.fsys, s.path)
	switch {
	case errors.Is(err, document.ErrNotFound):
		s.message = fmt.Sprintf("%q was removed on disk", filepath.Base(s.path))
		return
	case err != nil:
		s.message = err.Error()
		return
	case doc.Text == s.buf.Text():
		return
	case s.Dirty():
		s.message = fmt.Sprintf("%q changed on disk; buffer has unsaved changes", filepath.Base(s.path))
		log.Warn(log.CatEditor, "file changed under dirty buffer", "path", s.path)
		return
	}

	caret := s.buf.Caret()
	s.load(s.path, doc.Text, doc.Format)
	s.buf.SetCaret(caret)
	s.message = fmt.Sprintf("%q reloaded", filepath.Base(s.path))
	log.Info(log.CatEditor, "reloaded after external change", "path", s.path)
}

// Tick advances the session by one frame. Every event the scheduler fires
// is dispatched in order and its result returned.
func (s *Session) Tick(f Frame) []dispatcher.Result {
	fired := s.sched.Tick(repeat.Input{
		Pressed:  f.Pressed,
		Released: f.Released,
		Elapsed:  f.Elapsed,
	})
	if len(fired) == 0 {
		return nil
	}

	results := make([]dispatcher.Result, 0, len(fired))
	for _, ev := range fired {
		r := s.disp.Dispatch(ev, s.buf)
		switch {
		case r.IsError():
			s.message = r.Err.Error()
		case r.Message != "":
			s.message = r.Message
		}
		results = append(results, r)
	}
	return results
}

// Snapshot returns a copy of the state a renderer needs.
func (s *Session) Snapshot() Snapshot {
	n := s.buf.LineCount()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = s.buf.LineText(i)
	}
	return Snapshot{
		Lines:     lines,
		Row:       s.buf.Row(),
		Col:       s.buf.Col(),
		Caret:     s.buf.Caret(),
		LineCount: n,
		Path:      s.path,
		Dirty:     s.Dirty(),
		Message:   s.message,
	}
}

// Dirty reports whether the buffer changed since it was loaded or saved.
func (s *Session) Dirty() bool {
	return s.buf.Revision() != s.saved
}

// Path returns the session's file, or "" for a scratch buffer.
func (s *Session) Path() string {
	return s.path
}

// Format returns the encoding and line ending used when saving.
func (s *Session) Format() document.Format {
	return s.format
}

// Buffer returns the session's buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Dispatcher returns the session's dispatcher.
func (s *Session) Dispatcher() *dispatcher.Dispatcher {
	return s.disp
}

// Scheduler returns the session's key-repeat scheduler.
func (s *Session) Scheduler() *repeat.Scheduler {
	return s.sched
}

// Message returns the latest status message.
func (s *Session) Message() string {
	return s.message
}

// SetMessage replaces the status message.
func (s *Session) SetMessage(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
}

// Quit asks the host to stop.
func (s *Session) Quit() {
	s.done = true
}

// Done reports whether Quit was requested.
func (s *Session) Done() bool {
	return s.done
}
