package hid

import "github.com/Alia5/keynames/keys"

// charKeys maps printable ASCII to the key producing it on a US layout.
var charKeys = map[byte]keys.Key{
	'a': keys.KeyA, 'b': keys.KeyB, 'c': keys.KeyC, 'd': keys.KeyD, 'e': keys.KeyE, 'f': keys.KeyF, 'g': keys.KeyG,
	'h': keys.KeyH, 'i': keys.KeyI, 'j': keys.KeyJ, 'k': keys.KeyK, 'l': keys.KeyL, 'm': keys.KeyM, 'n': keys.KeyN,
	'o': keys.KeyO, 'p': keys.KeyP, 'q': keys.KeyQ, 'r': keys.KeyR, 's': keys.KeyS, 't': keys.KeyT, 'u': keys.KeyU,
	'v': keys.KeyV, 'w': keys.KeyW, 'x': keys.KeyX, 'y': keys.KeyY, 'z': keys.KeyZ,

	'1': keys.Digit1, '2': keys.Digit2, '3': keys.Digit3, '4': keys.Digit4, '5': keys.Digit5,
	'6': keys.Digit6, '7': keys.Digit7, '8': keys.Digit8, '9': keys.Digit9, '0': keys.Digit0,

	'-':  keys.Minus,
	'=':  keys.Equal,
	'[':  keys.BracketLeft,
	']':  keys.BracketRight,
	'\\': keys.Backslash,
	';':  keys.Semicolon,
	'\'': keys.Quote,
	'`':  keys.Backquote,
	',':  keys.Comma,
	'.':  keys.Period,
	'/':  keys.Slash,

	' ':  keys.Space,
	'\n': keys.Enter,
	'\r': keys.Enter,
	'\t': keys.Tab,
}

// shifted maps characters typed with Shift to their unshifted counterpart.
var shifted = map[byte]byte{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '~': '`', '<': ',', '>': '.', '?': '/',
}

// CharKey returns the key that types c on a US layout and whether Shift
// must be held.
func CharKey(c byte) (k keys.Key, shift bool, ok bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
		shift = true
	} else if base, isShifted := shifted[c]; isShifted {
		c = base
		shift = true
	}
	k, ok = charKeys[c]
	if !ok {
		return keys.Unidentified, false, false
	}
	return k, shift, true
}
