package scancode

import "github.com/Alia5/keynames/keys"

// WindowsTable maps PS/2 set 1 scancodes as reported in the WM_KEYDOWN lParam,
// with the extended-key flag folded into an 0xE0 prefix.
var WindowsTable = mustTable(Windows, 0, windowsDecode, windowsEncode)

var windowsDecode = map[uint32]keys.Key{
	0x01:   keys.Escape,
	0x02:   keys.Digit1,
	0x03:   keys.Digit2,
	0x04:   keys.Digit3,
	0x05:   keys.Digit4,
	0x06:   keys.Digit5,
	0x07:   keys.Digit6,
	0x08:   keys.Digit7,
	0x09:   keys.Digit8,
	0x0A:   keys.Digit9,
	0x0B:   keys.Digit0,
	0x0C:   keys.Minus,
	0x0D:   keys.Equal,
	0x0E:   keys.Backspace,
	0x0F:   keys.Tab,
	0x10:   keys.KeyQ,
	0x11:   keys.KeyW,
	0x12:   keys.KeyE,
	0x13:   keys.KeyR,
	0x14:   keys.KeyT,
	0x15:   keys.KeyY,
	0x16:   keys.KeyU,
	0x17:   keys.KeyI,
	0x18:   keys.KeyO,
	0x19:   keys.KeyP,
	0x1A:   keys.BracketLeft,
	0x1B:   keys.BracketRight,
	0x1C:   keys.Enter,
	0x1D:   keys.ControlLeft,
	0x1E:   keys.KeyA,
	0x1F:   keys.KeyS,
	0x20:   keys.KeyD,
	0x21:   keys.KeyF,
	0x22:   keys.KeyG,
	0x23:   keys.KeyH,
	0x24:   keys.KeyJ,
	0x25:   keys.KeyK,
	0x26:   keys.KeyL,
	0x27:   keys.Semicolon,
	0x28:   keys.Quote,
	0x29:   keys.Backquote,
	0x2A:   keys.ShiftLeft,
	0x2B:   keys.Backslash,
	0x2C:   keys.KeyZ,
	0x2D:   keys.KeyX,
	0x2E:   keys.KeyC,
	0x2F:   keys.KeyV,
	0x30:   keys.KeyB,
	0x31:   keys.KeyN,
	0x32:   keys.KeyM,
	0x33:   keys.Comma,
	0x34:   keys.Period,
	0x35:   keys.Slash,
	0x36:   keys.ShiftRight,
	0x37:   keys.NumpadMultiply,
	0x38:   keys.AltLeft,
	0x39:   keys.Space,
	0x3A:   keys.CapsLock,
	0x3B:   keys.F1,
	0x3C:   keys.F2,
	0x3D:   keys.F3,
	0x3E:   keys.F4,
	0x3F:   keys.F5,
	0x40:   keys.F6,
	0x41:   keys.F7,
	0x42:   keys.F8,
	0x43:   keys.F9,
	0x44:   keys.F10,
	0x45:   keys.Pause,
	0x46:   keys.ScrollLock,
	0x47:   keys.Numpad7,
	0x48:   keys.Numpad8,
	0x49:   keys.Numpad9,
	0x4A:   keys.NumpadSubtract,
	0x4B:   keys.Numpad4,
	0x4C:   keys.Numpad5,
	0x4D:   keys.Numpad6,
	0x4E:   keys.NumpadAdd,
	0x4F:   keys.Numpad1,
	0x50:   keys.Numpad2,
	0x51:   keys.Numpad3,
	0x52:   keys.Numpad0,
	0x53:   keys.NumpadDecimal,
	0x56:   keys.IntlBackslash,
	0x57:   keys.F11,
	0x58:   keys.F12,
	0x5B:   keys.F13,
	0x5C:   keys.F14,
	0x5D:   keys.F15,
	0x63:   keys.F16,
	0x64:   keys.F17,
	0x65:   keys.F18,
	0x66:   keys.F19,
	0x67:   keys.F20,
	0x68:   keys.F21,
	0x69:   keys.F22,
	0x6A:   keys.F23,
	0x6B:   keys.F24,
	0x70:   keys.KanaMode,
	0x73:   keys.IntlRo,
	0x79:   keys.Convert,
	0x7B:   keys.NonConvert,
	0x7D:   keys.IntlYen,
	0xE01C: keys.NumpadEnter,
	0xE01D: keys.ControlRight,
	0xE035: keys.NumpadDivide,
	0xE037: keys.PrintScreen,
	0xE038: keys.AltRight,
	0xE03B: keys.Help,
	0xE045: keys.NumLock,
	0xE047: keys.Home,
	0xE048: keys.ArrowUp,
	0xE049: keys.PageUp,
	0xE04B: keys.ArrowLeft,
	0xE04D: keys.ArrowRight,
	0xE04F: keys.End,
	0xE050: keys.ArrowDown,
	0xE051: keys.PageDown,
	0xE052: keys.Insert,
	0xE053: keys.Delete,
	0xE05B: keys.LogoLeft,
	0xE05C: keys.LogoRight,
	0xE05D: keys.ContextMenu,

	// Alternate codes sent while a modifier is held.
	0x54:   keys.PrintScreen, // Alt+PrintScreen (SysRq)
	0xE046: keys.Pause,       // Ctrl+Pause (Break)
}

var windowsEncode = map[keys.Key]uint32{
	keys.Escape:         0x01,
	keys.Digit1:         0x02,
	keys.Digit2:         0x03,
	keys.Digit3:         0x04,
	keys.Digit4:         0x05,
	keys.Digit5:         0x06,
	keys.Digit6:         0x07,
	keys.Digit7:         0x08,
	keys.Digit8:         0x09,
	keys.Digit9:         0x0A,
	keys.Digit0:         0x0B,
	keys.Minus:          0x0C,
	keys.Equal:          0x0D,
	keys.Backspace:      0x0E,
	keys.Tab:            0x0F,
	keys.KeyQ:           0x10,
	keys.KeyW:           0x11,
	keys.KeyE:           0x12,
	keys.KeyR:           0x13,
	keys.KeyT:           0x14,
	keys.KeyY:           0x15,
	keys.KeyU:           0x16,
	keys.KeyI:           0x17,
	keys.KeyO:           0x18,
	keys.KeyP:           0x19,
	keys.BracketLeft:    0x1A,
	keys.BracketRight:   0x1B,
	keys.Enter:          0x1C,
	keys.NumpadEnter:    0xE01C,
	keys.ControlLeft:    0x1D,
	keys.ControlRight:   0xE01D,
	keys.KeyA:           0x1E,
	keys.KeyS:           0x1F,
	keys.KeyD:           0x20,
	keys.KeyF:           0x21,
	keys.KeyG:           0x22,
	keys.KeyH:           0x23,
	keys.KeyJ:           0x24,
	keys.KeyK:           0x25,
	keys.KeyL:           0x26,
	keys.Semicolon:      0x27,
	keys.Quote:          0x28,
	keys.Backquote:      0x29,
	keys.ShiftLeft:      0x2A,
	keys.Backslash:      0x2B,
	keys.KeyZ:           0x2C,
	keys.KeyX:           0x2D,
	keys.KeyC:           0x2E,
	keys.KeyV:           0x2F,
	keys.KeyB:           0x30,
	keys.KeyN:           0x31,
	keys.KeyM:           0x32,
	keys.Comma:          0x33,
	keys.Period:         0x34,
	keys.Slash:          0x35,
	keys.NumpadDivide:   0xE035,
	keys.ShiftRight:     0x36,
	keys.NumpadMultiply: 0x37,
	keys.PrintScreen:    0xE037,
	keys.AltLeft:        0x38,
	keys.AltRight:       0xE038,
	keys.Space:          0x39,
	keys.CapsLock:       0x3A,
	keys.F1:             0x3B,
	keys.F2:             0x3C,
	keys.F3:             0x3D,
	keys.F4:             0x3E,
	keys.F5:             0x3F,
	keys.F6:             0x40,
	keys.F7:             0x41,
	keys.F8:             0x42,
	keys.F9:             0x43,
	keys.F10:            0x44,
	keys.Help:           0xE03B,
	keys.Pause:          0x45,
	keys.NumLock:        0xE045,
	keys.ScrollLock:     0x46,
	keys.Numpad7:        0x47,
	keys.Home:           0xE047,
	keys.Numpad8:        0x48,
	keys.ArrowUp:        0xE048,
	keys.Numpad9:        0x49,
	keys.PageUp:         0xE049,
	keys.NumpadSubtract: 0x4A,
	keys.Numpad4:        0x4B,
	keys.ArrowLeft:      0xE04B,
	keys.Numpad5:        0x4C,
	keys.Numpad6:        0x4D,
	keys.ArrowRight:     0xE04D,
	keys.NumpadAdd:      0x4E,
	keys.Numpad1:        0x4F,
	keys.End:            0xE04F,
	keys.Numpad2:        0x50,
	keys.ArrowDown:      0xE050,
	keys.Numpad3:        0x51,
	keys.PageDown:       0xE051,
	keys.Numpad0:        0x52,
	keys.Insert:         0xE052,
	keys.NumpadDecimal:  0x53,
	keys.Delete:         0xE053,
	keys.IntlBackslash:  0x56,
	keys.F11:            0x57,
	keys.F12:            0x58,
	keys.F13:            0x5B,
	keys.LogoLeft:       0xE05B,
	keys.F14:            0x5C,
	keys.LogoRight:      0xE05C,
	keys.F15:            0x5D,
	keys.ContextMenu:    0xE05D,
	keys.F16:            0x63,
	keys.F17:            0x64,
	keys.F18:            0x65,
	keys.F19:            0x66,
	keys.F20:            0x67,
	keys.F21:            0x68,
	keys.F22:            0x69,
	keys.F23:            0x6A,
	keys.F24:            0x6B,
	keys.KanaMode:       0x70,
	keys.IntlRo:         0x73,
	keys.Convert:        0x79,
	keys.NonConvert:     0x7B,
	keys.IntlYen:        0x7D,
}
