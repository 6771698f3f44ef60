package hid

import "github.com/Alia5/keynames/keys"

// Modifiers is the modifier byte of a boot protocol keyboard report.
type Modifiers uint8

const (
	ModLeftCtrl   Modifiers = 0x01
	ModLeftShift  Modifiers = 0x02
	ModLeftAlt    Modifiers = 0x04
	ModLeftGUI    Modifiers = 0x08 // Windows/Command key
	ModRightCtrl  Modifiers = 0x10
	ModRightShift Modifiers = 0x20
	ModRightAlt   Modifiers = 0x40
	ModRightGUI   Modifiers = 0x80
)

var modifierKeys = map[keys.Key]Modifiers{
	keys.ControlLeft:  ModLeftCtrl,
	keys.ShiftLeft:    ModLeftShift,
	keys.AltLeft:      ModLeftAlt,
	keys.LogoLeft:     ModLeftGUI,
	keys.ControlRight: ModRightCtrl,
	keys.ShiftRight:   ModRightShift,
	keys.AltRight:     ModRightAlt,
	keys.LogoRight:    ModRightGUI,
}

// ModifierBit returns the report bit of a modifier key, or 0 for other keys.
func ModifierBit(k keys.Key) Modifiers {
	return modifierKeys[k]
}

// Active folds left and right modifiers into the four logical modifiers.
func (m Modifiers) Active() (shift, ctrl, alt, logo bool) {
	shift = m&(ModLeftShift|ModRightShift) != 0
	ctrl = m&(ModLeftCtrl|ModRightCtrl) != 0
	alt = m&(ModLeftAlt|ModRightAlt) != 0
	logo = m&(ModLeftGUI|ModRightGUI) != 0
	return
}
