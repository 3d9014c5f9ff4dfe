package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasAll returns true if m contains every modifier in mods.
func (m Modifier) HasAll(mods Modifier) bool {
	return m&mods == mods
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// Modifier tokens accepted in combination text. Matching is exact and
// case-sensitive.
const (
	TokenCtrl  = "ctrl"
	TokenAlt   = "alt"
	TokenShift = "shift"
)

// ModifierFromToken returns the Modifier named by a combination token.
// Returns ModNone if the token is not a modifier token.
func ModifierFromToken(token string) Modifier {
	switch token {
	case TokenCtrl:
		return ModCtrl
	case TokenAlt:
		return ModAlt
	case TokenShift:
		return ModShift
	default:
		return ModNone
	}
}
