// Package hid translates keys to USB HID keyboard usages (usage page 0x07)
// and to the key codes of golang.org/x/mobile/event/key, which share the
// same numbering.
package hid

import "github.com/Alia5/keynames/keys"

// Usage is a HID usage ID on the Keyboard/Keypad page.
type Usage uint8

// Keyboard/Keypad page usage IDs (HID Usage Tables, section 10).
const (
	KeyboardA               Usage = 0x04
	KeyboardB               Usage = 0x05
	KeyboardC               Usage = 0x06
	KeyboardD               Usage = 0x07
	KeyboardE               Usage = 0x08
	KeyboardF               Usage = 0x09
	KeyboardG               Usage = 0x0A
	KeyboardH               Usage = 0x0B
	KeyboardI               Usage = 0x0C
	KeyboardJ               Usage = 0x0D
	KeyboardK               Usage = 0x0E
	KeyboardL               Usage = 0x0F
	KeyboardM               Usage = 0x10
	KeyboardN               Usage = 0x11
	KeyboardO               Usage = 0x12
	KeyboardP               Usage = 0x13
	KeyboardQ               Usage = 0x14
	KeyboardR               Usage = 0x15
	KeyboardS               Usage = 0x16
	KeyboardT               Usage = 0x17
	KeyboardU               Usage = 0x18
	KeyboardV               Usage = 0x19
	KeyboardW               Usage = 0x1A
	KeyboardX               Usage = 0x1B
	KeyboardY               Usage = 0x1C
	KeyboardZ               Usage = 0x1D
	Keyboard1               Usage = 0x1E
	Keyboard2               Usage = 0x1F
	Keyboard3               Usage = 0x20
	Keyboard4               Usage = 0x21
	Keyboard5               Usage = 0x22
	Keyboard6               Usage = 0x23
	Keyboard7               Usage = 0x24
	Keyboard8               Usage = 0x25
	Keyboard9               Usage = 0x26
	Keyboard0               Usage = 0x27
	KeyboardReturn          Usage = 0x28
	KeyboardEscape          Usage = 0x29
	KeyboardDeleteBackspace Usage = 0x2A
	KeyboardTab             Usage = 0x2B
	KeyboardSpacebar        Usage = 0x2C
	KeyboardHyphen          Usage = 0x2D
	KeyboardEqual           Usage = 0x2E
	KeyboardLeftBracket     Usage = 0x2F
	KeyboardRightBracket    Usage = 0x30
	KeyboardBackslash       Usage = 0x31
	KeyboardNonUSHash       Usage = 0x32
	KeyboardSemicolon       Usage = 0x33
	KeyboardApostrophe      Usage = 0x34
	KeyboardGrave           Usage = 0x35
	KeyboardComma           Usage = 0x36
	KeyboardPeriod          Usage = 0x37
	KeyboardSlash           Usage = 0x38
	KeyboardCapsLock        Usage = 0x39
	KeyboardF1              Usage = 0x3A
	KeyboardF2              Usage = 0x3B
	KeyboardF3              Usage = 0x3C
	KeyboardF4              Usage = 0x3D
	KeyboardF5              Usage = 0x3E
	KeyboardF6              Usage = 0x3F
	KeyboardF7              Usage = 0x40
	KeyboardF8              Usage = 0x41
	KeyboardF9              Usage = 0x42
	KeyboardF10             Usage = 0x43
	KeyboardF11             Usage = 0x44
	KeyboardF12             Usage = 0x45
	KeyboardPrintScreen     Usage = 0x46
	KeyboardScrollLock      Usage = 0x47
	KeyboardPause           Usage = 0x48
	KeyboardInsert          Usage = 0x49
	KeyboardHome            Usage = 0x4A
	KeyboardPageUp          Usage = 0x4B
	KeyboardDeleteForward   Usage = 0x4C
	KeyboardEnd             Usage = 0x4D
	KeyboardPageDown        Usage = 0x4E
	KeyboardRightArrow      Usage = 0x4F
	KeyboardLeftArrow       Usage = 0x50
	KeyboardDownArrow       Usage = 0x51
	KeyboardUpArrow         Usage = 0x52
	KeypadNumLock           Usage = 0x53
	KeypadSlash             Usage = 0x54
	KeypadAsterisk          Usage = 0x55
	KeypadMinus             Usage = 0x56
	KeypadPlus              Usage = 0x57
	KeypadEnter             Usage = 0x58
	Keypad1                 Usage = 0x59
	Keypad2                 Usage = 0x5A
	Keypad3                 Usage = 0x5B
	Keypad4                 Usage = 0x5C
	Keypad5                 Usage = 0x5D
	Keypad6                 Usage = 0x5E
	Keypad7                 Usage = 0x5F
	Keypad8                 Usage = 0x60
	Keypad9                 Usage = 0x61
	Keypad0                 Usage = 0x62
	KeypadPeriod            Usage = 0x63
	KeyboardNonUSBackslash  Usage = 0x64
	KeyboardApplication     Usage = 0x65
	KeyboardPower           Usage = 0x66
	KeypadEqual             Usage = 0x67
	KeyboardF13             Usage = 0x68
	KeyboardF14             Usage = 0x69
	KeyboardF15             Usage = 0x6A
	KeyboardF16             Usage = 0x6B
	KeyboardF17             Usage = 0x6C
	KeyboardF18             Usage = 0x6D
	KeyboardF19             Usage = 0x6E
	KeyboardF20             Usage = 0x6F
	KeyboardF21             Usage = 0x70
	KeyboardF22             Usage = 0x71
	KeyboardF23             Usage = 0x72
	KeyboardF24             Usage = 0x73
	KeyboardHelp            Usage = 0x75
	KeyboardMute            Usage = 0x7F
	KeyboardVolumeUp        Usage = 0x80
	KeyboardVolumeDown      Usage = 0x81
	KeyboardInternational1  Usage = 0x87
	KeyboardInternational2  Usage = 0x88
	KeyboardInternational3  Usage = 0x89
	KeyboardInternational4  Usage = 0x8A
	KeyboardInternational5  Usage = 0x8B
	KeyboardLeftControl     Usage = 0xE0
	KeyboardLeftShift       Usage = 0xE1
	KeyboardLeftAlt         Usage = 0xE2
	KeyboardLeftGUI         Usage = 0xE3
	KeyboardRightControl    Usage = 0xE4
	KeyboardRightShift      Usage = 0xE5
	KeyboardRightAlt        Usage = 0xE6
	KeyboardRightGUI        Usage = 0xE7
)

var usageKeys = map[Usage]keys.Key{
	KeyboardA:               keys.KeyA,
	KeyboardB:               keys.KeyB,
	KeyboardC:               keys.KeyC,
	KeyboardD:               keys.KeyD,
	KeyboardE:               keys.KeyE,
	KeyboardF:               keys.KeyF,
	KeyboardG:               keys.KeyG,
	KeyboardH:               keys.KeyH,
	KeyboardI:               keys.KeyI,
	KeyboardJ:               keys.KeyJ,
	KeyboardK:               keys.KeyK,
	KeyboardL:               keys.KeyL,
	KeyboardM:               keys.KeyM,
	KeyboardN:               keys.KeyN,
	KeyboardO:               keys.KeyO,
	KeyboardP:               keys.KeyP,
	KeyboardQ:               keys.KeyQ,
	KeyboardR:               keys.KeyR,
	KeyboardS:               keys.KeyS,
	KeyboardT:               keys.KeyT,
	KeyboardU:               keys.KeyU,
	KeyboardV:               keys.KeyV,
	KeyboardW:               keys.KeyW,
	KeyboardX:               keys.KeyX,
	KeyboardY:               keys.KeyY,
	KeyboardZ:               keys.KeyZ,
	Keyboard1:               keys.Digit1,
	Keyboard2:               keys.Digit2,
	Keyboard3:               keys.Digit3,
	Keyboard4:               keys.Digit4,
	Keyboard5:               keys.Digit5,
	Keyboard6:               keys.Digit6,
	Keyboard7:               keys.Digit7,
	Keyboard8:               keys.Digit8,
	Keyboard9:               keys.Digit9,
	Keyboard0:               keys.Digit0,
	KeyboardReturn:          keys.Enter,
	KeyboardEscape:          keys.Escape,
	KeyboardDeleteBackspace: keys.Backspace,
	KeyboardTab:             keys.Tab,
	KeyboardSpacebar:        keys.Space,
	KeyboardHyphen:          keys.Minus,
	KeyboardEqual:           keys.Equal,
	KeyboardLeftBracket:     keys.BracketLeft,
	KeyboardRightBracket:    keys.BracketRight,
	KeyboardBackslash:       keys.Backslash,
	KeyboardSemicolon:       keys.Semicolon,
	KeyboardApostrophe:      keys.Quote,
	KeyboardGrave:           keys.Backquote,
	KeyboardComma:           keys.Comma,
	KeyboardPeriod:          keys.Period,
	KeyboardSlash:           keys.Slash,
	KeyboardCapsLock:        keys.CapsLock,
	KeyboardF1:              keys.F1,
	KeyboardF2:              keys.F2,
	KeyboardF3:              keys.F3,
	KeyboardF4:              keys.F4,
	KeyboardF5:              keys.F5,
	KeyboardF6:              keys.F6,
	KeyboardF7:              keys.F7,
	KeyboardF8:              keys.F8,
	KeyboardF9:              keys.F9,
	KeyboardF10:             keys.F10,
	KeyboardF11:             keys.F11,
	KeyboardF12:             keys.F12,
	KeyboardPrintScreen:     keys.PrintScreen,
	KeyboardScrollLock:      keys.ScrollLock,
	KeyboardPause:           keys.Pause,
	KeyboardInsert:          keys.Insert,
	KeyboardHome:            keys.Home,
	KeyboardPageUp:          keys.PageUp,
	KeyboardDeleteForward:   keys.Delete,
	KeyboardEnd:             keys.End,
	KeyboardPageDown:        keys.PageDown,
	KeyboardRightArrow:      keys.ArrowRight,
	KeyboardLeftArrow:       keys.ArrowLeft,
	KeyboardDownArrow:       keys.ArrowDown,
	KeyboardUpArrow:         keys.ArrowUp,
	KeypadNumLock:           keys.NumLock,
	KeypadSlash:             keys.NumpadDivide,
	KeypadAsterisk:          keys.NumpadMultiply,
	KeypadMinus:             keys.NumpadSubtract,
	KeypadPlus:              keys.NumpadAdd,
	KeypadEnter:             keys.NumpadEnter,
	Keypad1:                 keys.Numpad1,
	Keypad2:                 keys.Numpad2,
	Keypad3:                 keys.Numpad3,
	Keypad4:                 keys.Numpad4,
	Keypad5:                 keys.Numpad5,
	Keypad6:                 keys.Numpad6,
	Keypad7:                 keys.Numpad7,
	Keypad8:                 keys.Numpad8,
	Keypad9:                 keys.Numpad9,
	Keypad0:                 keys.Numpad0,
	KeypadPeriod:            keys.NumpadDecimal,
	KeyboardNonUSBackslash:  keys.IntlBackslash,
	KeyboardApplication:     keys.ContextMenu,
	KeyboardF13:             keys.F13,
	KeyboardF14:             keys.F14,
	KeyboardF15:             keys.F15,
	KeyboardF16:             keys.F16,
	KeyboardF17:             keys.F17,
	KeyboardF18:             keys.F18,
	KeyboardF19:             keys.F19,
	KeyboardF20:             keys.F20,
	KeyboardF21:             keys.F21,
	KeyboardF22:             keys.F22,
	KeyboardF23:             keys.F23,
	KeyboardF24:             keys.F24,
	KeyboardHelp:            keys.Help,
	KeyboardInternational1:  keys.IntlRo,
	KeyboardInternational2:  keys.KanaMode,
	KeyboardInternational3:  keys.IntlYen,
	KeyboardInternational4:  keys.Convert,
	KeyboardInternational5:  keys.NonConvert,
	KeyboardLeftControl:     keys.ControlLeft,
	KeyboardLeftShift:       keys.ShiftLeft,
	KeyboardLeftAlt:         keys.AltLeft,
	KeyboardLeftGUI:         keys.LogoLeft,
	KeyboardRightControl:    keys.ControlRight,
	KeyboardRightShift:      keys.ShiftRight,
	KeyboardRightAlt:        keys.AltRight,
	KeyboardRightGUI:        keys.LogoRight,
	KeyboardNonUSHash:       keys.Backslash,
}

var keyUsages = map[keys.Key]Usage{
	keys.Backquote:      KeyboardGrave,
	keys.Backslash:      KeyboardBackslash,
	keys.BracketLeft:    KeyboardLeftBracket,
	keys.BracketRight:   KeyboardRightBracket,
	keys.Comma:          KeyboardComma,
	keys.Digit0:         Keyboard0,
	keys.Digit1:         Keyboard1,
	keys.Digit2:         Keyboard2,
	keys.Digit3:         Keyboard3,
	keys.Digit4:         Keyboard4,
	keys.Digit5:         Keyboard5,
	keys.Digit6:         Keyboard6,
	keys.Digit7:         Keyboard7,
	keys.Digit8:         Keyboard8,
	keys.Digit9:         Keyboard9,
	keys.Equal:          KeyboardEqual,
	keys.IntlBackslash:  KeyboardNonUSBackslash,
	keys.IntlRo:         KeyboardInternational1,
	keys.IntlYen:        KeyboardInternational3,
	keys.KeyA:           KeyboardA,
	keys.KeyB:           KeyboardB,
	keys.KeyC:           KeyboardC,
	keys.KeyD:           KeyboardD,
	keys.KeyE:           KeyboardE,
	keys.KeyF:           KeyboardF,
	keys.KeyG:           KeyboardG,
	keys.KeyH:           KeyboardH,
	keys.KeyI:           KeyboardI,
	keys.KeyJ:           KeyboardJ,
	keys.KeyK:           KeyboardK,
	keys.KeyL:           KeyboardL,
	keys.KeyM:           KeyboardM,
	keys.KeyN:           KeyboardN,
	keys.KeyO:           KeyboardO,
	keys.KeyP:           KeyboardP,
	keys.KeyQ:           KeyboardQ,
	keys.KeyR:           KeyboardR,
	keys.KeyS:           KeyboardS,
	keys.KeyT:           KeyboardT,
	keys.KeyU:           KeyboardU,
	keys.KeyV:           KeyboardV,
	keys.KeyW:           KeyboardW,
	keys.KeyX:           KeyboardX,
	keys.KeyY:           KeyboardY,
	keys.KeyZ:           KeyboardZ,
	keys.Minus:          KeyboardHyphen,
	keys.Period:         KeyboardPeriod,
	keys.Quote:          KeyboardApostrophe,
	keys.Semicolon:      KeyboardSemicolon,
	keys.Slash:          KeyboardSlash,
	keys.AltLeft:        KeyboardLeftAlt,
	keys.AltRight:       KeyboardRightAlt,
	keys.ControlLeft:    KeyboardLeftControl,
	keys.ControlRight:   KeyboardRightControl,
	keys.LogoLeft:       KeyboardLeftGUI,
	keys.LogoRight:      KeyboardRightGUI,
	keys.ShiftLeft:      KeyboardLeftShift,
	keys.ShiftRight:     KeyboardRightShift,
	keys.Backspace:      KeyboardDeleteBackspace,
	keys.CapsLock:       KeyboardCapsLock,
	keys.ContextMenu:    KeyboardApplication,
	keys.Enter:          KeyboardReturn,
	keys.Space:          KeyboardSpacebar,
	keys.Tab:            KeyboardTab,
	keys.Convert:        KeyboardInternational4,
	keys.KanaMode:       KeyboardInternational2,
	keys.NonConvert:     KeyboardInternational5,
	keys.ArrowDown:      KeyboardDownArrow,
	keys.ArrowLeft:      KeyboardLeftArrow,
	keys.ArrowRight:     KeyboardRightArrow,
	keys.ArrowUp:        KeyboardUpArrow,
	keys.Delete:         KeyboardDeleteForward,
	keys.End:            KeyboardEnd,
	keys.Home:           KeyboardHome,
	keys.Insert:         KeyboardInsert,
	keys.PageDown:       KeyboardPageDown,
	keys.PageUp:         KeyboardPageUp,
	keys.NumLock:        KeypadNumLock,
	keys.Numpad0:        Keypad0,
	keys.Numpad1:        Keypad1,
	keys.Numpad2:        Keypad2,
	keys.Numpad3:        Keypad3,
	keys.Numpad4:        Keypad4,
	keys.Numpad5:        Keypad5,
	keys.Numpad6:        Keypad6,
	keys.Numpad7:        Keypad7,
	keys.Numpad8:        Keypad8,
	keys.Numpad9:        Keypad9,
	keys.NumpadAdd:      KeypadPlus,
	keys.NumpadDecimal:  KeypadPeriod,
	keys.NumpadDivide:   KeypadSlash,
	keys.NumpadEnter:    KeypadEnter,
	keys.NumpadMultiply: KeypadAsterisk,
	keys.NumpadSubtract: KeypadMinus,
	keys.Escape:         KeyboardEscape,
	keys.F1:             KeyboardF1,
	keys.F2:             KeyboardF2,
	keys.F3:             KeyboardF3,
	keys.F4:             KeyboardF4,
	keys.F5:             KeyboardF5,
	keys.F6:             KeyboardF6,
	keys.F7:             KeyboardF7,
	keys.F8:             KeyboardF8,
	keys.F9:             KeyboardF9,
	keys.F10:            KeyboardF10,
	keys.F11:            KeyboardF11,
	keys.F12:            KeyboardF12,
	keys.F13:            KeyboardF13,
	keys.F14:            KeyboardF14,
	keys.F15:            KeyboardF15,
	keys.F16:            KeyboardF16,
	keys.F17:            KeyboardF17,
	keys.F18:            KeyboardF18,
	keys.F19:            KeyboardF19,
	keys.F20:            KeyboardF20,
	keys.F21:            KeyboardF21,
	keys.F22:            KeyboardF22,
	keys.F23:            KeyboardF23,
	keys.F24:            KeyboardF24,
	keys.Help:           KeyboardHelp,
	keys.Pause:          KeyboardPause,
	keys.PrintScreen:    KeyboardPrintScreen,
	keys.ScrollLock:     KeyboardScrollLock,
}

// FromKey returns the HID usage of k.
func FromKey(k keys.Key) (Usage, bool) {
	u, ok := keyUsages[k]
	return u, ok
}

// ToKey returns the key at usage u. KeyboardNonUSHash, the ISO key next to
// Enter, reports as Backslash.
func ToKey(u Usage) (keys.Key, bool) {
	k, ok := usageKeys[u]
	return k, ok
}
