package names

import (
	"maps"

	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/scancode"
)

// Punctuation, digits and letters print as the character on a US keycap.
var printable = map[keys.Key]string{
	keys.Backquote:    "`",
	keys.Backslash:    "\\",
	keys.BracketLeft:  "[",
	keys.BracketRight: "]",
	keys.Comma:        ",",
	keys.Equal:        "=",
	keys.Minus:        "-",
	keys.Period:       ".",
	keys.Quote:        "'",
	keys.Semicolon:    ";",
	keys.Slash:        "/",
}

func init() {
	for i := 0; i < 10; i++ {
		printable[keys.Digit0+keys.Key(i)] = string(rune('0' + i))
	}
	for i := 0; i < 26; i++ {
		printable[keys.KeyA+keys.Key(i)] = string(rune('A' + i))
	}
	curatedNames[scancode.MacOS] = withPrintable(macOSNames)
	curatedNames[scancode.Web] = withPrintable(webNames)
}

var curatedNames = map[scancode.Platform]map[keys.Key]string{}

func withPrintable(m map[keys.Key]string) map[keys.Key]string {
	out := maps.Clone(printable)
	maps.Copy(out, m)
	return out
}

var macOSNames = map[keys.Key]string{
	keys.AltLeft:      "Option",
	keys.AltRight:     "Right Option",
	keys.ControlLeft:  "Control",
	keys.ControlRight: "Right Control",
	keys.LogoLeft:     "Command",
	keys.LogoRight:    "Right Command",
	keys.ShiftLeft:    "Shift",
	keys.ShiftRight:   "Right Shift",

	keys.Backspace: "Delete",
	keys.Enter:     "Return",
	keys.Delete:    "Forward Delete",
	keys.Escape:    "Esc",

	keys.ArrowDown:  "Down",
	keys.ArrowLeft:  "Left",
	keys.ArrowRight: "Right",
	keys.ArrowUp:    "Up",
}

var webNames = map[keys.Key]string{
	keys.AltLeft:      "Left Alt",
	keys.AltRight:     "Right Alt",
	keys.ControlLeft:  "Left Control",
	keys.ControlRight: "Right Control",
	keys.LogoLeft:     "Left Super",
	keys.LogoRight:    "Right Super",
	keys.ShiftLeft:    "Left Shift",
	keys.ShiftRight:   "Right Shift",

	keys.ArrowDown:  "Down",
	keys.ArrowLeft:  "Left",
	keys.ArrowRight: "Right",
	keys.ArrowUp:    "Up",
}
