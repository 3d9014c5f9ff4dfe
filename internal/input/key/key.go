package key

import "unicode"

// Named key identifiers. Printable keys are identified by their character.
const (
	Enter      = "Enter"
	Escape     = "Escape"
	Tab        = "Tab"
	Backspace  = "Backspace"
	Delete     = "Delete"
	Insert     = "Insert"
	Home       = "Home"
	End        = "End"
	PageUp     = "PageUp"
	PageDown   = "PageDown"
	ArrowUp    = "ArrowUp"
	ArrowDown  = "ArrowDown"
	ArrowLeft  = "ArrowLeft"
	ArrowRight = "ArrowRight"
	Space      = " "
	Unknown    = "Unidentified"
)

// functionKeys holds "F1" through "F12" indexed from zero.
var functionKeys = [...]string{
	"F1", "F2", "F3", "F4", "F5", "F6",
	"F7", "F8", "F9", "F10", "F11", "F12",
}

// Function returns the identifier of function key n (1-12).
// Returns Unknown if n is out of range.
func Function(n int) string {
	if n < 1 || n > len(functionKeys) {
		return Unknown
	}
	return functionKeys[n-1]
}

var namedKeys = map[string]bool{
	Enter:      true,
	Escape:     true,
	Tab:        true,
	Backspace:  true,
	Delete:     true,
	Insert:     true,
	Home:       true,
	End:        true,
	PageUp:     true,
	PageDown:   true,
	ArrowUp:    true,
	ArrowDown:  true,
	ArrowLeft:  true,
	ArrowRight: true,
}

func init() {
	for _, f := range functionKeys {
		namedKeys[f] = true
	}
}

// IsNamed returns true if id is a named (non-printable) key identifier.
func IsNamed(id string) bool {
	return namedKeys[id]
}

// IsPrintable returns true if id identifies a single printable character.
func IsPrintable(id string) bool {
	runes := []rune(id)
	return len(runes) == 1 && unicode.IsPrint(runes[0])
}
