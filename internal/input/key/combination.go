package key

import "strings"

// Separator joins the tokens of a combination.
const Separator = "+"

// Combination describes a hotkey: the modifiers that must be held and the
// single key that triggers it. The zero value has no trigger and never
// matches. A Combination is immutable once parsed.
type Combination struct {
	required Modifier
	trigger  string
}

// Parse parses combination text such as "ctrl + alt + h".
//
// The text is split on "+" and whitespace around each token is trimmed.
// The tokens "ctrl", "alt" and "shift" mark the modifier as required; any
// other token becomes the trigger key, overwriting an earlier one. An empty
// token counts as a trigger too, so "ctrl+h+" has an empty trigger.
//
// Returns an *InvalidCombinationError wrapping ErrNoTrigger if no trigger
// key remains.
func Parse(text string) (Combination, error) {
	c, _ := parse(text)
	if c.trigger == "" {
		return Combination{}, &InvalidCombinationError{Text: text, Err: ErrNoTrigger}
	}
	return c, nil
}

// ParseStrict is like Parse but rejects text with more than one
// non-modifier token with ErrMultipleTriggers.
func ParseStrict(text string) (Combination, error) {
	c, triggers := parse(text)
	if triggers > 1 {
		return Combination{}, &InvalidCombinationError{Text: text, Err: ErrMultipleTriggers}
	}
	if c.trigger == "" {
		return Combination{}, &InvalidCombinationError{Text: text, Err: ErrNoTrigger}
	}
	return c, nil
}

// MustParse parses combination text and panics on error.
// Use only for known-valid text in initialization code.
func MustParse(text string) Combination {
	c, err := Parse(text)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// parse returns the combination and the number of non-empty trigger
// tokens seen.
func parse(text string) (Combination, int) {
	var c Combination
	var triggers int

	for _, token := range strings.Split(text, Separator) {
		token = strings.TrimSpace(token)
		if mod := ModifierFromToken(token); mod != ModNone {
			c.required = c.required.With(mod)
			continue
		}
		c.trigger = token
		if token != "" {
			triggers++
		}
	}

	return c, triggers
}

// Required returns the modifiers that must be held.
func (c Combination) Required() Modifier {
	return c.required
}

// RequiresCtrl returns true if Ctrl must be held.
func (c Combination) RequiresCtrl() bool {
	return c.required.HasCtrl()
}

// RequiresAlt returns true if Alt must be held.
func (c Combination) RequiresAlt() bool {
	return c.required.HasAlt()
}

// RequiresShift returns true if Shift must be held.
func (c Combination) RequiresShift() bool {
	return c.required.HasShift()
}

// Trigger returns the trigger key identifier.
func (c Combination) Trigger() string {
	return c.trigger
}

// IsValid returns true if the combination has a trigger key.
func (c Combination) IsValid() bool {
	return c.trigger != ""
}

// Matches reports whether a key press with identifier id and active
// modifiers mods fires this combination. Every required modifier must be
// active; modifiers that are not required are ignored. The identifier is
// compared exactly, without case folding.
func (c Combination) Matches(id string, mods Modifier) bool {
	if !c.IsValid() {
		return false
	}
	if !mods.HasAll(c.required) {
		return false
	}
	return id == c.trigger
}

// String returns the canonical text form, e.g. "ctrl+alt+h".
func (c Combination) String() string {
	parts := make([]string, 0, 4)
	if c.RequiresCtrl() {
		parts = append(parts, TokenCtrl)
	}
	if c.RequiresAlt() {
		parts = append(parts, TokenAlt)
	}
	if c.RequiresShift() {
		parts = append(parts, TokenShift)
	}
	parts = append(parts, c.trigger)
	return strings.Join(parts, Separator)
}
