package xkb

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Keymap maps XKB keycodes to the keysyms of their first group.
// Keycodes use the X11 numbering, which is the evdev code plus 8.
type Keymap struct {
	levels map[uint32][]Keysym
	names  map[uint32]string
}

// EvdevOffset is the distance between evdev codes and XKB keycodes.
const EvdevOffset = 8

// NewKeymap builds a keymap from per-keycode level lists. The slices are copied.
func NewKeymap(levels map[uint32][]Keysym) *Keymap {
	m := &Keymap{
		levels: make(map[uint32][]Keysym, len(levels)),
		names:  map[uint32]string{},
	}
	for kc, syms := range levels {
		m.levels[kc] = append([]Keysym(nil), syms...)
	}
	return m
}

// Len returns the number of keycodes with at least one level.
func (m *Keymap) Len() int { return len(m.levels) }

// Keycodes returns the mapped keycodes in ascending order.
func (m *Keymap) Keycodes() []uint32 {
	out := make([]uint32, 0, len(m.levels))
	for kc := range m.levels {
		out = append(out, kc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Levels returns the keysyms of keycode kc, one per shift level.
func (m *Keymap) Levels(kc uint32) []Keysym {
	return append([]Keysym(nil), m.levels[kc]...)
}

// Sym returns the level one keysym of kc.
func (m *Keymap) Sym(kc uint32) (Keysym, bool) {
	syms := m.levels[kc]
	if len(syms) == 0 || syms[0] == NoSymbol {
		return NoSymbol, false
	}
	return syms[0], true
}

// SymbolName returns the name of kc's level one keysym. Single character
// names are upper-cased so that letter keys read "A" rather than "a".
func (m *Keymap) SymbolName(kc uint32) (string, bool) {
	sym, ok := m.Sym(kc)
	if !ok {
		return "", false
	}
	name := KeysymName(sym)
	if utf8.RuneCountInString(name) == 1 {
		name = strings.ToUpper(name)
	}
	return name, true
}

// KeyName returns the XKB key name of kc (e.g. "AE01") when the keymap was
// parsed from text.
func (m *Keymap) KeyName(kc uint32) (string, bool) {
	name, ok := m.names[kc]
	return name, ok
}
