package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/scribe/internal/input/key"
)

var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// ConvertKey converts a tcell key event to a key.Event. Control-letter
// chords become the letter with ModCtrl, so Ctrl+S matches "<C-s>".
// It returns false for keys scribe has no name for.
func ConvertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	switch {
	case k == tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods).Normalize(), true

	case k == tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods|key.ModShift), true

	case k == tcell.KeyCtrlSpace || k == tcell.KeyNUL:
		return key.NewRuneEvent(' ', mods|key.ModCtrl), true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.NewRuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|key.ModCtrl), true
	}

	if special, ok := specialKeys[k]; ok {
		return key.NewSpecialEvent(special, mods), true
	}

	// Raw ASCII control codes other than the named ones above.
	if k > tcell.KeyNUL && k <= tcell.KeySUB {
		return key.NewRuneEvent('a'+rune(k-tcell.KeySOH), mods|key.ModCtrl), true
	}

	return key.Event{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= key.ModMeta
	}
	return mods
}
