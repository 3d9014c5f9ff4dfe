package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkey/internal/input/key"
)

// Convert converts a tcell key event to a key identifier and modifiers.
// Control-letter keys are reported as the lowercase letter with Ctrl held,
// Backtab as Tab with Shift held, and upper-case letters with Shift held. ok is false for keys without an
// identifier.
func Convert(ev *tcell.EventKey) (id string, mods key.Modifier, ok bool) {
	mods = convertMod(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		r := ev.Rune()
		if shifted(r) {
			mods = mods.With(key.ModShift)
		}
		return string(r), mods, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return string(rune('a' + (k - tcell.KeyCtrlA))), mods.With(key.ModCtrl), true
	}

	switch k {
	case tcell.KeyEnter:
		return key.Enter, mods, true
	case tcell.KeyEscape:
		return key.Escape, mods, true
	case tcell.KeyTab:
		return key.Tab, mods, true
	case tcell.KeyBacktab:
		return key.Tab, mods.With(key.ModShift), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Backspace, mods, true
	case tcell.KeyDelete:
		return key.Delete, mods, true
	case tcell.KeyInsert:
		return key.Insert, mods, true
	case tcell.KeyHome:
		return key.Home, mods, true
	case tcell.KeyEnd:
		return key.End, mods, true
	case tcell.KeyPgUp:
		return key.PageUp, mods, true
	case tcell.KeyPgDn:
		return key.PageDown, mods, true
	case tcell.KeyUp:
		return key.ArrowUp, mods, true
	case tcell.KeyDown:
		return key.ArrowDown, mods, true
	case tcell.KeyLeft:
		return key.ArrowLeft, mods, true
	case tcell.KeyRight:
		return key.ArrowRight, mods, true
	case tcell.KeyCtrlSpace:
		return key.Space, mods.With(key.ModCtrl), true
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.Function(int(k-tcell.KeyF1) + 1), mods, true
	}

	return "", mods, false
}

// convertMod converts tcell modifiers to our Modifier type.
func convertMod(m tcell.ModMask) key.Modifier {
	var mod key.Modifier
	if m&tcell.ModShift != 0 {
		mod = mod.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mod = mod.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mod = mod.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mod = mod.With(key.ModMeta)
	}
	return mod
}

// shifted reports whether r is a cased letter that needs Shift to type.
func shifted(r rune) bool {
	return unicode.IsUpper(r) && r != unicode.ToLower(r)
}
