package keymap

import (
	"errors"
	"slices"
	"testing"

	"github.com/dshills/scribe/internal/input/key"
)

var ctrlS = key.NewRuneEvent('s', key.ModCtrl)

func TestRegistryRegisterNil(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(nil); !errors.Is(err, ErrNilKeymap) {
		t.Errorf("Register(nil) error = %v, want ErrNilKeymap", err)
	}
}

func TestRegistryRegisterInvalid(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(NewKeymap("bad").Add("<Nope>", "x")); err == nil {
		t.Error("Register() with invalid keys should fail")
	}
	if r.Get("bad") != nil {
		t.Error("invalid keymap should not be registered")
	}
}

func TestRegistryLookupPrecedence(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Default()); err != nil {
		t.Fatalf("Register(Default()) error = %v", err)
	}

	b, ok := r.Lookup(ctrlS)
	if !ok || b.Action != "file.save" {
		t.Fatalf("Lookup(C-s) = %q %v, want file.save", b.Action, ok)
	}

	user := NewKeymap("user").WithSource(SourceUser).WithPriority(PriorityUser).Add("Ctrl+S", "user.save")
	if err := r.Register(user); err != nil {
		t.Fatalf("Register(user) error = %v", err)
	}
	if b, _ := r.Lookup(ctrlS); b.Action != "user.save" {
		t.Errorf("Lookup(C-s) = %q, want user.save", b.Action)
	}

	// Keys the user keymap does not bind fall through to the defaults.
	if b, _ := r.Lookup(key.NewSpecialEvent(key.KeyLeft, key.ModNone)); b.Action != "cursor.moveLeft" {
		t.Errorf("Lookup(Left) = %q, want cursor.moveLeft", b.Action)
	}

	r.Unregister("user")
	if b, _ := r.Lookup(ctrlS); b.Action != "file.save" {
		t.Errorf("after Unregister, Lookup(C-s) = %q, want file.save", b.Action)
	}
}

func TestRegistryEqualPriorityLaterWins(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewKeymap("a").Add("<C-s>", "a.save"))
	_ = r.Register(NewKeymap("b").Add("<C-s>", "b.save"))

	if b, _ := r.Lookup(ctrlS); b.Action != "b.save" {
		t.Errorf("Lookup(C-s) = %q, want b.save", b.Action)
	}

	// Re-registering moves a keymap to the top of its priority band.
	_ = r.Register(NewKeymap("a").Add("<C-s>", "a.save"))
	if b, _ := r.Lookup(ctrlS); b.Action != "a.save" {
		t.Errorf("Lookup(C-s) = %q, want a.save", b.Action)
	}

	if got := r.Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want [a b]", got)
	}
}

func TestRegistryLookupMisses(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Default())

	tests := []key.Event{
		{},
		key.NewRuneEvent('a', key.ModNone),
		key.NewRuneEvent('z', key.ModCtrl),
		key.NewSpecialEvent(key.KeyF5, key.ModNone),
	}
	for _, ev := range tests {
		if b, ok := r.Lookup(ev); ok {
			t.Errorf("Lookup(%v) = %q, want no binding", ev, b.Action)
		}
	}
}

func TestRegistryBind(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(Default())

	if err := r.Bind("plugin", SourcePlugin, PriorityPlugin, NewBinding("<F5>", "plugin.run")); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if err := r.Bind("plugin", SourcePlugin, PriorityPlugin, NewBinding("<C-s>", "plugin.save")); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	km := r.Get("plugin")
	if km == nil || len(km.Bindings) != 2 || km.Source != SourcePlugin || km.Priority != PriorityPlugin {
		t.Fatalf("Get(plugin) = %+v, want two plugin bindings", km)
	}
	if b, _ := r.Lookup(key.NewSpecialEvent(key.KeyF5, key.ModNone)); b.Action != "plugin.run" {
		t.Errorf("Lookup(F5) = %q, want plugin.run", b.Action)
	}
	if b, _ := r.Lookup(ctrlS); b.Action != "plugin.save" {
		t.Errorf("Lookup(C-s) = %q, want plugin.save", b.Action)
	}

	if err := r.Bind("plugin", SourcePlugin, PriorityPlugin, NewBinding("<Bogus>", "x")); err == nil {
		t.Error("Bind() with invalid keys should fail")
	}
	if len(r.Get("plugin").Bindings) != 2 {
		t.Error("failed Bind() should leave the keymap unchanged")
	}
}

func TestRegistryBindingsAndKeysFor(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(NewKeymap("base").Add("<C-s>", "file.save").Add("<C-q>", "editor.quit"))
	_ = r.Register(NewKeymap("over").WithPriority(5).Add("Ctrl+S", "other.save").Add("<F2>", "file.save"))

	bindings := r.Bindings()
	if len(bindings) != 3 {
		t.Fatalf("len(Bindings()) = %d, want 3", len(bindings))
	}
	actions := make(map[string]bool)
	for _, b := range bindings {
		actions[b.Action] = true
	}
	if !actions["other.save"] || !actions["editor.quit"] || !actions["file.save"] {
		t.Errorf("Bindings() actions = %v", actions)
	}

	if got := r.KeysFor("file.save"); !slices.Equal(got, []string{"<F2>"}) {
		t.Errorf("KeysFor(file.save) = %v, want [<F2>]", got)
	}
	if got := r.KeysFor("missing"); len(got) != 0 {
		t.Errorf("KeysFor(missing) = %v, want none", got)
	}
}
