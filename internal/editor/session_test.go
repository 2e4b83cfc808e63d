package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dshills/scribe/internal/dispatcher"
	"github.com/dshills/scribe/internal/document"
	"github.com/dshills/scribe/internal/input/key"
	"github.com/dshills/scribe/internal/input/keymap"
	"github.com/dshills/scribe/internal/input/repeat"
)

const frame = 16 * time.Millisecond

func newSession(t *testing.T, files map[string]string) (*Session, *document.MemFS) {
	t.Helper()
	fsys := document.NewMemFS()
	for path, content := range files {
		fsys.AddFile(path, []byte(content))
	}
	return New(WithFileSystem(fsys), WithInvariantChecks(true)), fsys
}

func typeText(s *Session, text string) {
	for _, r := range text {
		ev := key.NewRuneEvent(r, key.ModNone)
		if r == '\n' {
			ev = key.NewSpecialEvent(key.KeyEnter, key.ModNone)
		}
		s.Tick(Frame{Pressed: &ev, Released: true, Elapsed: frame})
	}
}

func ctrl(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModCtrl)
}

func TestNewSession(t *testing.T) {
	s := New(WithFileSystem(document.NewMemFS()))

	require.Equal(t, "", s.Path())
	require.False(t, s.Dirty())
	require.False(t, s.Done())
	require.Equal(t, 1, s.Buffer().Len())
	require.Equal(t, repeat.Idle, s.Scheduler().State())
	for _, action := range []string{ActionSave, ActionSaveAs, ActionOpen, ActionReload, ActionQuit} {
		require.True(t, s.Dispatcher().Handlers().Has(action), action)
	}
}

func TestOpen(t *testing.T) {
	s, _ := newSession(t, map[string]string{"/notes.txt": "one\r\ntwo\r\n"})

	require.NoError(t, s.Open("/notes.txt"))
	require.Equal(t, "/notes.txt", s.Path())
	require.Equal(t, "one\ntwo\n", s.Buffer().Text())
	require.Equal(t, 0, s.Buffer().Caret())
	require.Equal(t, document.LineEndingCRLF, s.Format().LineEnding)
	require.False(t, s.Dirty())
	require.Contains(t, s.Message(), "notes.txt")
}

func TestOpenMissingFile(t *testing.T) {
	s, fsys := newSession(t, nil)

	err := s.Open("/new.txt")
	require.ErrorIs(t, err, document.ErrNotFound)
	require.Equal(t, "/new.txt", s.Path())
	require.Equal(t, "", s.Buffer().Text())
	require.Contains(t, s.Message(), "[New]")

	typeText(s, "hi")
	require.NoError(t, s.Save())
	data, err := fsys.ReadFile("/new.txt")
	require.NoError(t, err)
	require.Equal(t, "hi", string(data))
}

func TestOpenErrorKeepsBuffer(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/a.txt": "keep"})
	fsys.AddDir("/dir")
	require.NoError(t, s.Open("/a.txt"))

	err := s.Open("/dir")
	require.Error(t, err)
	require.False(t, errors.Is(err, document.ErrNotFound))
	require.Equal(t, "/a.txt", s.Path())
	require.Equal(t, "keep", s.Buffer().Text())
}

func TestTickTyping(t *testing.T) {
	s, _ := newSession(t, nil)

	typeText(s, "ab\nc")
	snap := s.Snapshot()
	require.Equal(t, []string{"ab", "c"}, snap.Lines)
	require.Equal(t, 2, snap.LineCount)
	require.Equal(t, 1, snap.Row)
	require.Equal(t, 1, snap.Col)
	require.Equal(t, 4, snap.Caret)
	require.True(t, snap.Dirty)
}

func TestTickHeldKeyRepeats(t *testing.T) {
	s, _ := newSession(t, nil)
	ev := key.NewRuneEvent('x', key.ModNone)

	results := s.Tick(Press(ev, frame))
	require.Len(t, results, 1)

	// Hold through the start delay and exactly two repeat delays.
	s.Tick(Idle(repeat.DefaultStartDelay))
	s.Tick(Idle(repeat.DefaultRepeatDelay))
	s.Tick(Idle(repeat.DefaultRepeatDelay))
	require.Equal(t, "xxxx", s.Buffer().Text())

	s.Tick(Frame{Released: true, Elapsed: time.Second})
	s.Tick(Idle(time.Second))
	require.Equal(t, "xxxx", s.Buffer().Text())
}

func TestTickIdleReturnsNil(t *testing.T) {
	s, _ := newSession(t, nil)
	require.Nil(t, s.Tick(Idle(frame)))
}

func TestSaveKeepsFormat(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/f.txt": "a\r\nb"})
	require.NoError(t, s.Open("/f.txt"))

	s.Buffer().MoveToEnd()
	typeText(s, "c")
	require.True(t, s.Dirty())

	results := s.Tick(Press(ctrl('s'), frame))
	require.Len(t, results, 1)
	require.True(t, results[0].OK())
	require.Equal(t, dispatcher.KindFireOnce, results[0].Command.Kind)
	require.False(t, s.Dirty())
	require.Contains(t, s.Message(), "written")

	data, err := fsys.ReadFile("/f.txt")
	require.NoError(t, err)
	require.Equal(t, "a\r\nbc", string(data))
}

func TestSaveWithoutPath(t *testing.T) {
	s, _ := newSession(t, nil)
	require.ErrorIs(t, s.Save(), ErrNoFile)

	results := s.Tick(Press(ctrl('s'), frame))
	require.Len(t, results, 1)
	require.True(t, results[0].IsError())
	require.ErrorIs(t, results[0].Err, ErrNoFile)
	require.Equal(t, ErrNoFile.Error(), s.Message())
}

func TestSaveFailureStaysDirty(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/f.txt": "x"})
	require.NoError(t, s.Open("/f.txt"))
	typeText(s, "y")

	fsys.FailWrites = errors.New("disk full")
	require.Error(t, s.Save())
	require.True(t, s.Dirty())
}

func TestSaveAs(t *testing.T) {
	s, fsys := newSession(t, nil)
	typeText(s, "draft")

	require.NoError(t, s.SaveAs("/draft.txt"))
	require.Equal(t, "/draft.txt", s.Path())
	require.False(t, s.Dirty())

	data, err := fsys.ReadFile("/draft.txt")
	require.NoError(t, err)
	require.Equal(t, "draft", string(data))

	fsys.FailWrites = errors.New("read-only")
	require.Error(t, s.SaveAs("/other.txt"))
	require.Equal(t, "/draft.txt", s.Path())
}

func TestReload(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/f.txt": "hello world"})
	require.NoError(t, s.Open("/f.txt"))
	s.Buffer().SetCaret(8)

	fsys.AddFile("/f.txt", []byte("hey"))
	require.NoError(t, s.Reload(false))
	require.Equal(t, "hey", s.Buffer().Text())
	require.Equal(t, 3, s.Buffer().Caret())
	require.False(t, s.Dirty())
}

func TestReloadDirty(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/f.txt": "abc"})
	require.NoError(t, s.Open("/f.txt"))
	typeText(s, "x")
	fsys.AddFile("/f.txt", []byte("disk"))

	require.ErrorIs(t, s.Reload(false), ErrModified)
	require.Equal(t, "xabc", s.Buffer().Text())

	results := s.Tick(Press(ctrl('r'), frame))
	require.Len(t, results, 1)
	require.True(t, results[0].OK())
	require.Equal(t, "disk", s.Buffer().Text())
	require.False(t, s.Dirty())
}

func TestReloadWithoutPath(t *testing.T) {
	s, _ := newSession(t, nil)
	require.ErrorIs(t, s.Reload(true), ErrNoFile)
}

func TestFileChanged(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/f.txt": "old"})
	require.NoError(t, s.Open("/f.txt"))

	fsys.AddFile("/f.txt", []byte("new"))
	s.FileChanged()
	require.Equal(t, "new", s.Buffer().Text())

	typeText(s, "!")
	fsys.AddFile("/f.txt", []byte("newer"))
	s.FileChanged()
	require.Equal(t, "!new", s.Buffer().Text())
	require.Contains(t, s.Message(), "changed on disk")
}

func TestQuit(t *testing.T) {
	s, _ := newSession(t, nil)

	results := s.Tick(Press(ctrl('q'), frame))
	require.Len(t, results, 1)
	require.True(t, s.Done())
}

func TestFireOnceDoesNotRepeat(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/f.txt": ""})
	require.NoError(t, s.Open("/f.txt"))

	s.Tick(Press(ctrl('s'), frame))
	fsys.FailWrites = errors.New("should not write again")
	for range 50 {
		require.Nil(t, s.Tick(Idle(100*time.Millisecond)))
	}
}

func TestSnapshotCaretRune(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want rune
	}{
		{"inside", Snapshot{Lines: []string{"héllo"}, Row: 0, Col: 1}, 'é'},
		{"line end", Snapshot{Lines: []string{"ab"}, Row: 0, Col: 2}, '\n'},
		{"empty buffer", Snapshot{Lines: []string{""}}, '\n'},
		{"row out of range", Snapshot{Lines: []string{"a"}, Row: 3}, '\n'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.snap.CaretRune())
		})
	}
}

func TestSetMessage(t *testing.T) {
	s, _ := newSession(t, nil)
	s.SetMessage("%d lines", 3)
	require.Equal(t, "3 lines", s.Snapshot().Message)
}

func TestFileChangedSameContent(t *testing.T) {
	s, _ := newSession(t, map[string]string{"/f.txt": "abc"})
	require.NoError(t, s.Open("/f.txt"))
	typeText(s, "x")
	require.NoError(t, s.Save())
	msg := s.Message()

	s.FileChanged()
	require.Equal(t, msg, s.Message())
	require.Equal(t, 1, s.Buffer().Caret())
}

func TestFileChangedRemoved(t *testing.T) {
	s, fsys := newSession(t, map[string]string{"/f.txt": "abc"})
	require.NoError(t, s.Open("/f.txt"))
	require.NoError(t, fsys.Remove("/f.txt"))

	s.FileChanged()
	require.Equal(t, "abc", s.Buffer().Text())
	require.Contains(t, s.Message(), "removed")
}

func bindArg(t *testing.T, s *Session, keys, action, arg string) {
	t.Helper()
	b := keymap.NewBinding(keys, action).WithArg(arg)
	require.NoError(t, s.Dispatcher().Keymaps().Bind("user", keymap.SourceUser, keymap.PriorityUser, b))
}

func TestFireOnceOpen(t *testing.T) {
	s, _ := newSession(t, map[string]string{
		"/a.txt":   "alpha",
		"/b.txt":   "beta",
		"/bad.txt": "a\xc3\x28b",
	})
	require.NoError(t, s.Open("/a.txt"))
	bindArg(t, s, "<C-o>", ActionOpen, "/b.txt")

	results := s.Tick(Press(ctrl('o'), frame))
	require.Len(t, results, 1)
	require.True(t, results[0].OK(), "%v", results[0].Err)
	require.Equal(t, "/b.txt", s.Path())
	require.Equal(t, "beta", s.Buffer().Text())
	require.Equal(t, repeat.Idle, s.Scheduler().State())

	// Holding the key never opens again.
	for range 20 {
		require.Nil(t, s.Tick(Idle(100*time.Millisecond)))
	}

	bindArg(t, s, "<C-g>", ActionOpen, "/missing.txt")
	results = s.Tick(Frame{Pressed: ptr(ctrl('g')), Released: true, Elapsed: frame})
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, document.ErrNotFound)
	require.Equal(t, "/missing.txt", s.Path())
	require.Equal(t, "", s.Buffer().Text())
	require.Equal(t, results[0].Err.Error(), s.Message())

	bindArg(t, s, "<C-y>", ActionOpen, "/bad.txt")
	results = s.Tick(Frame{Pressed: ptr(ctrl('y')), Released: true, Elapsed: frame})
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, document.ErrDecode)
	require.Equal(t, "/missing.txt", s.Path())
}

func TestFireOnceOpenRefusesDirtyBuffer(t *testing.T) {
	s, _ := newSession(t, map[string]string{"/b.txt": "beta"})
	bindArg(t, s, "<C-o>", ActionOpen, "/b.txt")
	typeText(s, "draft")

	results := s.Tick(Press(ctrl('o'), frame))
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, ErrModified)
	require.Equal(t, "draft", s.Buffer().Text())
	require.Equal(t, "", s.Path())
}

func TestFireOnceOpenWithoutPath(t *testing.T) {
	s, _ := newSession(t, nil)

	r := s.Dispatcher().Apply(dispatcher.FireOnce(ActionOpen), s.Buffer())
	require.ErrorIs(t, r.Err, ErrNoFile)

	r = s.Dispatcher().Apply(dispatcher.FireOnce(ActionSaveAs), s.Buffer())
	require.ErrorIs(t, r.Err, ErrNoFile)
}

func TestFireOnceSaveAs(t *testing.T) {
	s, fsys := newSession(t, nil)
	typeText(s, "draft")
	bindArg(t, s, "<C-w>", ActionSaveAs, "/draft.txt")

	results := s.Tick(Press(ctrl('w'), frame))
	require.Len(t, results, 1)
	require.True(t, results[0].OK(), "%v", results[0].Err)
	require.Equal(t, "/draft.txt", s.Path())
	require.False(t, s.Dirty())
	require.Contains(t, results[0].Message, "written")

	data, err := fsys.ReadFile("/draft.txt")
	require.NoError(t, err)
	require.Equal(t, "draft", string(data))
}

func ptr(ev key.Event) *key.Event {
	return &ev
}
