package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/scribe/internal/input/key"
)

func TestNewKeymap(t *testing.T) {
	km := NewKeymap("test")

	if km.Name != "test" {
		t.Errorf("Name = %q, want %q", km.Name, "test")
	}
	if len(km.Bindings) != 0 {
		t.Errorf("Bindings should be empty, got %d", len(km.Bindings))
	}
}

func TestKeymapBuilders(t *testing.T) {
	km := NewKeymap("test").
		WithPriority(10).
		WithSource("test-source").
		Add("<Down>", "cursor.moveDown").
		AddBinding(NewBinding("<Up>", "cursor.moveUp").WithDescription("Up").WithCategory("Movement"))

	if km.Priority != 10 {
		t.Errorf("Priority = %d, want %d", km.Priority, 10)
	}
	if km.Source != "test-source" {
		t.Errorf("Source = %q, want %q", km.Source, "test-source")
	}
	if len(km.Bindings) != 2 {
		t.Fatalf("len(Bindings) = %d, want %d", len(km.Bindings), 2)
	}
	if km.Bindings[1].Category != "Movement" || km.Bindings[1].Description != "Up" {
		t.Errorf("Bindings[1] = %+v, want description and category set", km.Bindings[1])
	}
}

func TestKeymapValidate(t *testing.T) {
	tests := []struct {
		name    string
		keymap  *Keymap
		wantErr bool
	}{
		{
			name: "valid keymap",
			keymap: &Keymap{
				Bindings: []Binding{
					{Keys: "<Down>", Action: "cursor.moveDown"},
					{Keys: "Ctrl+S", Action: "file.save"},
				},
			},
			wantErr: false,
		},
		{
			name:    "empty keys",
			keymap:  &Keymap{Bindings: []Binding{{Keys: "", Action: "cursor.moveDown"}}},
			wantErr: true,
		},
		{
			name:    "empty action",
			keymap:  &Keymap{Bindings: []Binding{{Keys: "j", Action: ""}}},
			wantErr: true,
		},
		{
			name:    "unknown key",
			keymap:  &Keymap{Bindings: []Binding{{Keys: "<C-Nope>", Action: "file.save"}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.keymap.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKeymapParseNormalizes(t *testing.T) {
	km := NewKeymap("test").
		Add("Ctrl+S", "file.save").
		Add("<C-Home>", "cursor.moveFirstLine")

	parsed, err := km.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		ev     key.Event
		action string
		found  bool
	}{
		{key.NewRuneEvent('s', key.ModCtrl), "file.save", true},
		{key.NewRuneEvent('S', key.ModCtrl|key.ModShift), "file.save", true},
		{key.NewSpecialEvent(key.KeyHome, key.ModCtrl), "cursor.moveFirstLine", true},
		{key.NewSpecialEvent(key.KeyHome, key.ModNone), "", false},
		{key.NewRuneEvent('s', key.ModNone), "", false},
	}

	for _, tt := range tests {
		pb, ok := parsed.Lookup(tt.ev)
		if ok != tt.found {
			t.Errorf("Lookup(%v) found = %v, want %v", tt.ev, ok, tt.found)
			continue
		}
		if ok && pb.Action != tt.action {
			t.Errorf("Lookup(%v) = %q, want %q", tt.ev, pb.Action, tt.action)
		}
		if ok && !pb.Match(tt.ev) {
			t.Errorf("Match(%v) = false, want true", tt.ev)
		}
	}
}

func TestKeymapParseLaterBindingWins(t *testing.T) {
	km := NewKeymap("test").
		Add("<C-s>", "file.save").
		Add("Ctrl+s", "custom.save")

	parsed, err := km.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	pb, ok := parsed.Lookup(key.NewRuneEvent('s', key.ModCtrl))
	if !ok || pb.Action != "custom.save" {
		t.Errorf("Lookup = %v %v, want custom.save", pb, ok)
	}
}

func TestKeymapParseError(t *testing.T) {
	if _, err := NewKeymap("bad").Add("<X-q>", "editor.quit").Parse(); !errors.Is(err, key.ErrInvalidSpec) {
		t.Errorf("Parse() error = %v, want ErrInvalidSpec", err)
	}
}

func TestKeymapClone(t *testing.T) {
	original := NewKeymap("test").WithPriority(3).WithSource("user").Add("<Down>", "cursor.moveDown")

	clone := original.Clone()
	clone.Bindings[0].Action = "changed"
	clone.Add("<Up>", "cursor.moveUp")

	if original.Bindings[0].Action != "cursor.moveDown" {
		t.Error("modifying clone affected original")
	}
	if len(original.Bindings) != 1 {
		t.Errorf("original has %d bindings, want 1", len(original.Bindings))
	}
	if clone.Priority != 3 || clone.Source != "user" || clone.Name != "test" {
		t.Errorf("clone = %+v, want metadata copied", clone)
	}
}

func TestGroupByCategory(t *testing.T) {
	bindings := []Binding{
		{Keys: "<Left>", Action: "cursor.moveLeft", Category: "Movement"},
		{Keys: "<C-s>", Action: "file.save", Category: "File"},
		{Keys: "<Right>", Action: "cursor.moveRight", Category: "Movement"},
		{Keys: "x", Action: "misc"},
	}

	groups := GroupByCategory(bindings)

	want := []struct {
		name  string
		count int
	}{
		{"Movement", 2},
		{"File", 1},
		{"Other", 1},
	}
	if len(groups) != len(want) {
		t.Fatalf("len(groups) = %d, want %d", len(groups), len(want))
	}
	for i, w := range want {
		if groups[i].Name != w.name || len(groups[i].Bindings) != w.count {
			t.Errorf("groups[%d] = %s/%d, want %s/%d", i, groups[i].Name, len(groups[i].Bindings), w.name, w.count)
		}
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := Default()

	if err := km.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}

	tests := []struct {
		ev     key.Event
		action string
	}{
		{key.NewSpecialEvent(key.KeyLeft, key.ModNone), "cursor.moveLeft"},
		{key.NewSpecialEvent(key.KeyRight, key.ModNone), "cursor.moveRight"},
		{key.NewSpecialEvent(key.KeyUp, key.ModNone), "cursor.moveUp"},
		{key.NewSpecialEvent(key.KeyDown, key.ModNone), "cursor.moveDown"},
		{key.NewSpecialEvent(key.KeyHome, key.ModNone), "cursor.moveLineStart"},
		{key.NewSpecialEvent(key.KeyEnd, key.ModNone), "cursor.moveLineEnd"},
		{key.NewSpecialEvent(key.KeyHome, key.ModCtrl), "cursor.moveFirstLine"},
		{key.NewSpecialEvent(key.KeyEnd, key.ModCtrl), "cursor.moveLastLine"},
		{key.NewSpecialEvent(key.KeyPageUp, key.ModNone), "cursor.pageUp"},
		{key.NewSpecialEvent(key.KeyPageDown, key.ModNone), "cursor.pageDown"},
		{key.NewSpecialEvent(key.KeyBackspace, key.ModNone), "editor.deleteCharBefore"},
		{key.NewSpecialEvent(key.KeyDelete, key.ModNone), "editor.deleteChar"},
		{key.NewSpecialEvent(key.KeyEnter, key.ModNone), "editor.newline"},
		{key.NewSpecialEvent(key.KeyTab, key.ModNone), "editor.tab"},
		{key.NewRuneEvent('s', key.ModCtrl), "file.save"},
		{key.NewRuneEvent('r', key.ModCtrl), "file.reload"},
		{key.NewRuneEvent('q', key.ModCtrl), "editor.quit"},
	}

	parsed, err := km.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, tt := range tests {
		pb, ok := parsed.Lookup(tt.ev)
		if !ok {
			t.Errorf("Default() has no binding for %v", tt.ev)
			continue
		}
		if pb.Action != tt.action {
			t.Errorf("Default()[%v] = %q, want %q", tt.ev, pb.Action, tt.action)
		}
	}

	for _, b := range km.Bindings {
		if b.Description == "" || b.Category == "" {
			t.Errorf("binding %q lacks description or category", b.Keys)
		}
	}
}
