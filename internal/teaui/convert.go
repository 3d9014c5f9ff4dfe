// Package teaui runs an App as a Bubble Tea program.
package teaui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/hotkey/internal/input/key"
)

type namedKey struct {
	id   string
	mods key.Modifier
}

var namedKeys = map[tea.KeyType]namedKey{
	tea.KeyUp:     {key.ArrowUp, key.ModNone},
	tea.KeyDown:   {key.ArrowDown, key.ModNone},
	tea.KeyRight:  {key.ArrowRight, key.ModNone},
	tea.KeyLeft:   {key.ArrowLeft, key.ModNone},
	tea.KeyHome:   {key.Home, key.ModNone},
	tea.KeyEnd:    {key.End, key.ModNone},
	tea.KeyPgUp:   {key.PageUp, key.ModNone},
	tea.KeyPgDown: {key.PageDown, key.ModNone},
	tea.KeyDelete: {key.Delete, key.ModNone},
	tea.KeyInsert: {key.Insert, key.ModNone},

	tea.KeyCtrlPgUp:   {key.PageUp, key.ModCtrl},
	tea.KeyCtrlPgDown: {key.PageDown, key.ModCtrl},
	tea.KeyCtrlUp:     {key.ArrowUp, key.ModCtrl},
	tea.KeyCtrlDown:   {key.ArrowDown, key.ModCtrl},
	tea.KeyCtrlRight:  {key.ArrowRight, key.ModCtrl},
	tea.KeyCtrlLeft:   {key.ArrowLeft, key.ModCtrl},
	tea.KeyCtrlHome:   {key.Home, key.ModCtrl},
	tea.KeyCtrlEnd:    {key.End, key.ModCtrl},

	tea.KeyShiftUp:    {key.ArrowUp, key.ModShift},
	tea.KeyShiftDown:  {key.ArrowDown, key.ModShift},
	tea.KeyShiftRight: {key.ArrowRight, key.ModShift},
	tea.KeyShiftLeft:  {key.ArrowLeft, key.ModShift},
	tea.KeyShiftHome:  {key.Home, key.ModShift},
	tea.KeyShiftEnd:   {key.End, key.ModShift},

	tea.KeyCtrlShiftUp:    {key.ArrowUp, key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftDown:  {key.ArrowDown, key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftLeft:  {key.ArrowLeft, key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftRight: {key.ArrowRight, key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftHome:  {key.Home, key.ModCtrl | key.ModShift},
	tea.KeyCtrlShiftEnd:   {key.End, key.ModCtrl | key.ModShift},

	tea.KeyF1:  {key.Function(1), key.ModNone},
	tea.KeyF2:  {key.Function(2), key.ModNone},
	tea.KeyF3:  {key.Function(3), key.ModNone},
	tea.KeyF4:  {key.Function(4), key.ModNone},
	tea.KeyF5:  {key.Function(5), key.ModNone},
	tea.KeyF6:  {key.Function(6), key.ModNone},
	tea.KeyF7:  {key.Function(7), key.ModNone},
	tea.KeyF8:  {key.Function(8), key.ModNone},
	tea.KeyF9:  {key.Function(9), key.ModNone},
	tea.KeyF10: {key.Function(10), key.ModNone},
	tea.KeyF11: {key.Function(11), key.ModNone},
	tea.KeyF12: {key.Function(12), key.ModNone},
}

// ConvertKey converts a Bubble Tea key message to a key identifier and
// modifiers. Upper-case letters report Shift, which Bubble Tea does not
// carry on runes. Pasted text and multi-rune messages are not key presses and
// report ok=false.
func ConvertKey(msg tea.KeyMsg) (id string, mods key.Modifier, ok bool) {
	if msg.Alt {
		mods = mods.With(key.ModAlt)
	}

	// Enter, Tab and Escape share values with ctrl+m, ctrl+i and ctrl+[,
	// so they are checked before the control-letter range.
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste || len(msg.Runes) != 1 {
			return "", mods, false
		}
		r := msg.Runes[0]
		if unicode.IsUpper(r) && r != unicode.ToLower(r) {
			mods = mods.With(key.ModShift)
		}
		return string(r), mods, true
	case tea.KeySpace:
		return key.Space, mods, true
	case tea.KeyEnter:
		return key.Enter, mods, true
	case tea.KeyTab:
		return key.Tab, mods, true
	case tea.KeyShiftTab:
		return key.Tab, mods.With(key.ModShift), true
	case tea.KeyEsc:
		return key.Escape, mods, true
	case tea.KeyBackspace:
		return key.Backspace, mods, true
	case tea.KeyCtrlAt:
		return key.Space, mods.With(key.ModCtrl), true
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return string(rune('a' + (msg.Type - tea.KeyCtrlA))), mods.With(key.ModCtrl), true
	}
	if nk, found := namedKeys[msg.Type]; found {
		return nk.id, mods.With(nk.mods), true
	}
	return "", mods, false
}
