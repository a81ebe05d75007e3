package keypad

import (
	"strings"
	"unicode/utf8"
)

// keys maps key and button names other than single symbols to commands.
var keys = map[string]Command{
	"Enter":       Submit,
	"=":           Submit,
	"NumpadEnter": Submit,
	"Backspace":   Backspace,
	"BS":          Backspace,
	"Escape":      Clear,
	"Delete":      Clear,
	"C":           Clear,
	"±":           ToggleSign,

	",":              Append('.'),
	"NumpadDecimal":  Append('.'),
	"NumpadAdd":      Append('+'),
	"NumpadSubtract": Append('-'),
	"NumpadMultiply": Append('*'),
	"NumpadDivide":   Append('/'),
	"×":              Append('*'),
	"÷":              Append('/'),
	"−":              Append('-'),
}

// Key translates the name of a key or button to a command. Names are those of
// keyboard events, e.g. "Enter", "Backspace", "Escape", "NumpadAdd", or
// "Numpad7", plus the button values "C", "BS", "=", and "±". Any single rune
// of Symbols is its own key. The second result is false if the name is
// unknown.
func Key(name string) (Command, bool) {
	if cmd, ok := keys[name]; ok {
		return cmd, true
	}
	if r, sz := utf8.DecodeRuneInString(name); sz > 0 && sz == len(name) && strings.ContainsRune(Symbols, r) {
		return Append(r), true
	}
	if d := strings.TrimPrefix(name, "Numpad"); len(d) == 1 && len(name) > 1 && '0' <= d[0] && d[0] <= '9' {
		return Append(rune(d[0])), true
	}
	return Command{}, false
}
