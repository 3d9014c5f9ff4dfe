package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkey/internal/input/key"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		wantID   string
		wantMods key.Modifier
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), "p", key.ModNone},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModNone), "P", key.ModShift},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModShift), "P", key.ModShift},
		{"alt upper rune", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModAlt), "P", key.ModAlt | key.ModShift},
		{"upper non-ascii", tcell.NewEventKey(tcell.KeyRune, 'É', tcell.ModNone), "É", key.ModShift},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '7', tcell.ModNone), "7", key.ModNone},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModAlt), "h", key.ModAlt},
		{"ctrl alt rune", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModCtrl|tcell.ModAlt), "h", key.ModCtrl | key.ModAlt},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlH, 0, tcell.ModCtrl), "h", key.ModCtrl},
		{"ctrl letter without mod", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone), "q", key.ModCtrl},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.Enter, key.ModNone},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.Escape, key.ModNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.Tab, key.ModNone},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), key.Tab, key.ModShift},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.Backspace, key.ModNone},
		{"shift up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModShift), key.ArrowUp, key.ModShift},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.PageDown, key.ModNone},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "F5", key.ModNone},
		{"meta f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModMeta), "F12", key.ModMeta},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, mods, ok := Convert(tt.ev)
			if !ok {
				t.Fatal("Convert returned ok=false")
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
			if mods != tt.wantMods {
				t.Errorf("mods = %v, want %v", mods, tt.wantMods)
			}
		})
	}
}

func TestConvertUnknown(t *testing.T) {
	if _, _, ok := Convert(tcell.NewEventKey(tcell.KeyF24, 0, tcell.ModNone)); ok {
		t.Error("F24 should not convert")
	}
}

func TestConvertShiftedLetterMatches(t *testing.T) {
	combo := key.MustParse("shift+alt+P")
	id, mods, ok := Convert(tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModAlt|tcell.ModShift))
	if !ok || !combo.Matches(id, mods) {
		t.Errorf("shift+alt+P does not match Convert() = %q %v", id, mods)
	}
}
