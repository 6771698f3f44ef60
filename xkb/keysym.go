// Package xkb models the parts of an XKB keymap needed to name keys: the
// keysym name table and a keycode to keysym mapping, built either from X11
// core keyboard mapping data or by parsing the text v1 keymap format sent
// by Wayland compositors.
package xkb

import (
	"fmt"
	"strconv"
	"strings"
)

// Keysym is an X11 keysym value.
type Keysym uint32

const (
	NoSymbol   Keysym = 0
	VoidSymbol Keysym = 0xffffff

	unicodeOffset Keysym = 0x01000000
)

var (
	keysymNames  = make(map[Keysym]string, len(keysymTable))
	keysymByName = make(map[string]Keysym, len(keysymTable)+len(keysymAliases))
)

func init() {
	for _, e := range keysymTable {
		if _, ok := keysymNames[e.sym]; !ok {
			keysymNames[e.sym] = e.name
		}
		keysymByName[e.name] = e.sym
	}
	for name, sym := range keysymAliases {
		keysymByName[name] = sym
	}
}

// KeysymName returns the name xkbcommon uses for ks: the keysymdef name if
// there is one, "U20AC" style names for Unicode keysyms and "0x%08x"
// otherwise.
func KeysymName(ks Keysym) string {
	if name, ok := keysymNames[ks]; ok {
		return name
	}
	if ks >= unicodeOffset+0x100 && ks <= unicodeOffset+0x10ffff {
		return fmt.Sprintf("U%04X", uint32(ks-unicodeOffset))
	}
	return fmt.Sprintf("0x%08x", uint32(ks))
}

// KeysymFromName resolves a keysym name as written in keymap files.
// Besides table names it accepts "Uxxxx" code points and "0x" literals.
func KeysymFromName(name string) (Keysym, bool) {
	if ks, ok := keysymByName[name]; ok {
		return ks, true
	}
	if len(name) > 1 && (name[0] == 'U' || name[0] == 'u') {
		cp, err := strconv.ParseUint(name[1:], 16, 32)
		if err == nil && cp <= 0x10ffff {
			return unicodeKeysym(rune(cp)), true
		}
	}
	if strings.HasPrefix(name, "0x") || strings.HasPrefix(name, "0X") {
		v, err := strconv.ParseUint(name[2:], 16, 32)
		if err == nil {
			return Keysym(v), true
		}
	}
	return NoSymbol, false
}

// unicodeKeysym maps a code point to its keysym. Latin-1 printables share
// their value with the code point.
func unicodeKeysym(r rune) Keysym {
	if (r >= 0x20 && r <= 0x7e) || (r >= 0xa0 && r <= 0xff) {
		return Keysym(r)
	}
	return unicodeOffset + Keysym(r)
}
