// Package names renders keys, scancodes and modifier sets the way each
// platform's own UI spells them.
package names

import (
	"strconv"

	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/scancode"
)

// Separator follows every modifier word in a prefix string.
const Separator = " + "

// Vocabulary is the modifier wording of one platform.
//
// Order is a permutation of "csam" (ctrl, shift, alt, meta/logo) listing the
// order in which modifiers are printed.
type Vocabulary struct {
	Order string
	Ctrl  string
	Shift string
	Alt   string
	Logo  string
}

var vocabularies = map[scancode.Platform]Vocabulary{
	scancode.Linux:   {Order: "csam", Ctrl: "Ctrl", Shift: "Shift", Alt: "Alt", Logo: "Super"},
	scancode.Windows: {Order: "csam", Ctrl: "Ctrl", Shift: "Shift", Alt: "Alt", Logo: "Win"},
	scancode.MacOS:   {Order: "casm", Ctrl: "Ctrl", Shift: "Shift", Alt: "Option", Logo: "Cmd"},
	scancode.Web:     {Order: "csam", Ctrl: "Ctrl", Shift: "Shift", Alt: "Alt", Logo: "Super"},
}

// For returns the vocabulary of p. Unknown platforms get the Web vocabulary.
func For(p scancode.Platform) Vocabulary {
	if v, ok := vocabularies[p]; ok {
		return v
	}
	return vocabularies[scancode.Web]
}

// ModsPrefix returns the active modifiers in platform order, each followed by
// Separator. With no modifier active it returns "".
func (v Vocabulary) ModsPrefix(shift, ctrl, alt, logo bool) string {
	var out []byte
	for i := 0; i < len(v.Order); i++ {
		var word string
		switch v.Order[i] {
		case 'c':
			if ctrl {
				word = v.Ctrl
			}
		case 's':
			if shift {
				word = v.Shift
			}
		case 'a':
			if alt {
				word = v.Alt
			}
		case 'm':
			if logo {
				word = v.Logo
			}
		}
		if word != "" {
			out = append(out, word...)
			out = append(out, Separator...)
		}
	}
	return string(out)
}

// KeyName returns the curated name of k on p, or the symbolic key name when
// the platform has no special spelling for it.
func KeyName(p scancode.Platform, k keys.Key) string {
	if curated, ok := curatedNames[p]; ok {
		if s, ok := curated[k]; ok {
			return s
		}
	}
	return k.String()
}

// ScancodeName decodes sc on p and names the key. Codes without a key are
// named "SC<n>".
func ScancodeName(p scancode.Platform, sc uint32) string {
	k, ok := scancode.For(p).Decode(sc)
	if !ok {
		return Unknown(sc)
	}
	return KeyName(p, k)
}

// Unknown is the name of a scancode nothing else could name.
func Unknown(sc uint32) string {
	return "SC" + strconv.FormatUint(uint64(sc), 10)
}
