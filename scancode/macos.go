package scancode

import "github.com/Alia5/keynames/keys"

// MacOSTable maps Carbon virtual key codes (HIToolbox Events.h).
// Codes are positional, named after the ANSI layout.
var MacOSTable = mustTable(MacOS, 0xFFFF, macosDecode, macosEncode)

// Codes without a key: 0x34, 0x36, 0x42, 0x44 and 0x46 are unused,
// 0x47 is keypad Clear, 0x48-0x4A are the volume keys, 0x51 is keypad Equals,
// 0x5E, 0x5F and 0x66 are the JIS underscore, keypad comma and Eisu keys.
var macosDecode = map[uint32]keys.Key{
	0x00: keys.KeyA,
	0x01: keys.KeyS,
	0x02: keys.KeyD,
	0x03: keys.KeyF,
	0x04: keys.KeyH,
	0x05: keys.KeyG,
	0x06: keys.KeyZ,
	0x07: keys.KeyX,
	0x08: keys.KeyC,
	0x09: keys.KeyV,
	0x0A: keys.IntlBackslash,
	0x0B: keys.KeyB,
	0x0C: keys.KeyQ,
	0x0D: keys.KeyW,
	0x0E: keys.KeyE,
	0x0F: keys.KeyR,
	0x10: keys.KeyY,
	0x11: keys.KeyT,
	0x12: keys.Digit1,
	0x13: keys.Digit2,
	0x14: keys.Digit3,
	0x15: keys.Digit4,
	0x16: keys.Digit6,
	0x17: keys.Digit5,
	0x18: keys.Equal,
	0x19: keys.Digit9,
	0x1A: keys.Digit7,
	0x1B: keys.Minus,
	0x1C: keys.Digit8,
	0x1D: keys.Digit0,
	0x1E: keys.BracketRight,
	0x1F: keys.KeyO,
	0x20: keys.KeyU,
	0x21: keys.BracketLeft,
	0x22: keys.KeyI,
	0x23: keys.KeyP,
	0x24: keys.Enter,
	0x25: keys.KeyL,
	0x26: keys.KeyJ,
	0x27: keys.Quote,
	0x28: keys.KeyK,
	0x29: keys.Semicolon,
	0x2A: keys.Backslash,
	0x2B: keys.Comma,
	0x2C: keys.Slash,
	0x2D: keys.KeyN,
	0x2E: keys.KeyM,
	0x2F: keys.Period,
	0x30: keys.Tab,
	0x31: keys.Space,
	0x32: keys.Backquote,
	0x33: keys.Backspace,
	0x35: keys.Escape,
	0x37: keys.LogoLeft,
	0x38: keys.ShiftLeft,
	0x39: keys.CapsLock,
	0x3A: keys.AltLeft,
	0x3B: keys.ControlLeft,
	0x3C: keys.ShiftRight,
	0x3D: keys.AltRight,
	0x3E: keys.ControlRight,
	0x40: keys.F17,
	0x41: keys.NumpadDecimal,
	0x43: keys.NumpadMultiply,
	0x45: keys.NumpadAdd,
	0x4B: keys.NumpadDivide,
	0x4C: keys.NumpadEnter,
	0x4E: keys.NumpadSubtract,
	0x4F: keys.F18,
	0x50: keys.F19,
	0x52: keys.Numpad0,
	0x53: keys.Numpad1,
	0x54: keys.Numpad2,
	0x55: keys.Numpad3,
	0x56: keys.Numpad4,
	0x57: keys.Numpad5,
	0x58: keys.Numpad6,
	0x59: keys.Numpad7,
	0x5A: keys.F20,
	0x5B: keys.Numpad8,
	0x5C: keys.Numpad9,
	0x5D: keys.IntlYen,
	0x60: keys.F5,
	0x61: keys.F6,
	0x62: keys.F7,
	0x63: keys.F3,
	0x64: keys.F8,
	0x65: keys.F9,
	0x67: keys.F11,
	0x68: keys.KanaMode,
	0x69: keys.F13,
	0x6A: keys.F16,
	0x6B: keys.F14,
	0x6D: keys.F10,
	0x6F: keys.F12,
	0x71: keys.F15,
	0x72: keys.Help,
	0x73: keys.Home,
	0x74: keys.PageUp,
	0x75: keys.Delete,
	0x76: keys.F4,
	0x77: keys.End,
	0x78: keys.F2,
	0x79: keys.PageDown,
	0x7A: keys.F1,
	0x7B: keys.ArrowLeft,
	0x7C: keys.ArrowRight,
	0x7D: keys.ArrowDown,
	0x7E: keys.ArrowUp,
}

var macosEncode = map[keys.Key]uint32{
	keys.Backquote:      0x32,
	keys.Backslash:      0x2A,
	keys.BracketLeft:    0x21,
	keys.BracketRight:   0x1E,
	keys.Comma:          0x2B,
	keys.Digit0:         0x1D,
	keys.Digit1:         0x12,
	keys.Digit2:         0x13,
	keys.Digit3:         0x14,
	keys.Digit4:         0x15,
	keys.Digit5:         0x17,
	keys.Digit6:         0x16,
	keys.Digit7:         0x1A,
	keys.Digit8:         0x1C,
	keys.Digit9:         0x19,
	keys.Equal:          0x18,
	keys.IntlBackslash:  0x0A,
	keys.IntlYen:        0x5D,
	keys.KeyA:           0x00,
	keys.KeyB:           0x0B,
	keys.KeyC:           0x08,
	keys.KeyD:           0x02,
	keys.KeyE:           0x0E,
	keys.KeyF:           0x03,
	keys.KeyG:           0x05,
	keys.KeyH:           0x04,
	keys.KeyI:           0x22,
	keys.KeyJ:           0x26,
	keys.KeyK:           0x28,
	keys.KeyL:           0x25,
	keys.KeyM:           0x2E,
	keys.KeyN:           0x2D,
	keys.KeyO:           0x1F,
	keys.KeyP:           0x23,
	keys.KeyQ:           0x0C,
	keys.KeyR:           0x0F,
	keys.KeyS:           0x01,
	keys.KeyT:           0x11,
	keys.KeyU:           0x20,
	keys.KeyV:           0x09,
	keys.KeyW:           0x0D,
	keys.KeyX:           0x07,
	keys.KeyY:           0x10,
	keys.KeyZ:           0x06,
	keys.Minus:          0x1B,
	keys.Period:         0x2F,
	keys.Quote:          0x27,
	keys.Semicolon:      0x29,
	keys.Slash:          0x2C,
	keys.AltLeft:        0x3A,
	keys.AltRight:       0x3D,
	keys.ControlLeft:    0x3B,
	keys.ControlRight:   0x3E,
	keys.LogoLeft:       0x37,
	keys.ShiftLeft:      0x38,
	keys.ShiftRight:     0x3C,
	keys.Backspace:      0x33,
	keys.CapsLock:       0x39,
	keys.Enter:          0x24,
	keys.Space:          0x31,
	keys.Tab:            0x30,
	keys.KanaMode:       0x68,
	keys.ArrowDown:      0x7D,
	keys.ArrowLeft:      0x7B,
	keys.ArrowRight:     0x7C,
	keys.ArrowUp:        0x7E,
	keys.Delete:         0x75,
	keys.End:            0x77,
	keys.Home:           0x73,
	keys.PageDown:       0x79,
	keys.PageUp:         0x74,
	keys.Numpad0:        0x52,
	keys.Numpad1:        0x53,
	keys.Numpad2:        0x54,
	keys.Numpad3:        0x55,
	keys.Numpad4:        0x56,
	keys.Numpad5:        0x57,
	keys.Numpad6:        0x58,
	keys.Numpad7:        0x59,
	keys.Numpad8:        0x5B,
	keys.Numpad9:        0x5C,
	keys.NumpadAdd:      0x45,
	keys.NumpadDecimal:  0x41,
	keys.NumpadDivide:   0x4B,
	keys.NumpadEnter:    0x4C,
	keys.NumpadMultiply: 0x43,
	keys.NumpadSubtract: 0x4E,
	keys.Escape:         0x35,
	keys.F1:             0x7A,
	keys.F2:             0x78,
	keys.F3:             0x63,
	keys.F4:             0x76,
	keys.F5:             0x60,
	keys.F6:             0x61,
	keys.F7:             0x62,
	keys.F8:             0x64,
	keys.F9:             0x65,
	keys.F10:            0x6D,
	keys.F11:            0x67,
	keys.F12:            0x6F,
	keys.F13:            0x69,
	keys.F14:            0x6B,
	keys.F15:            0x71,
	keys.F16:            0x6A,
	keys.F17:            0x40,
	keys.F18:            0x4F,
	keys.F19:            0x50,
	keys.F20:            0x5A,
	keys.Help:           0x72,
}
