package scancode

import "github.com/Alia5/keynames/keys"

// WebTable maps legacy DOM KeyboardEvent.keyCode values as reported by
// browsers for a US layout. keyCode does not tell left Shift, Control and
// Alt from right, nor NumpadEnter from Enter, so those right-hand keys and
// NumpadEnter cannot be encoded. The right logo key has its own code, 92.
var WebTable = mustTable(Web, 0, webDecode, webEncode)

var webDecode = map[uint32]keys.Key{
	8:   keys.Backspace,
	9:   keys.Tab,
	13:  keys.Enter,
	16:  keys.ShiftLeft,
	17:  keys.ControlLeft,
	18:  keys.AltLeft,
	19:  keys.Pause,
	20:  keys.CapsLock,
	21:  keys.KanaMode,
	27:  keys.Escape,
	28:  keys.Convert,
	29:  keys.NonConvert,
	32:  keys.Space,
	33:  keys.PageUp,
	34:  keys.PageDown,
	35:  keys.End,
	36:  keys.Home,
	37:  keys.ArrowLeft,
	38:  keys.ArrowUp,
	39:  keys.ArrowRight,
	40:  keys.ArrowDown,
	44:  keys.PrintScreen,
	45:  keys.Insert,
	46:  keys.Delete,
	47:  keys.Help,
	48:  keys.Digit0,
	49:  keys.Digit1,
	50:  keys.Digit2,
	51:  keys.Digit3,
	52:  keys.Digit4,
	53:  keys.Digit5,
	54:  keys.Digit6,
	55:  keys.Digit7,
	56:  keys.Digit8,
	57:  keys.Digit9,
	65:  keys.KeyA,
	66:  keys.KeyB,
	67:  keys.KeyC,
	68:  keys.KeyD,
	69:  keys.KeyE,
	70:  keys.KeyF,
	71:  keys.KeyG,
	72:  keys.KeyH,
	73:  keys.KeyI,
	74:  keys.KeyJ,
	75:  keys.KeyK,
	76:  keys.KeyL,
	77:  keys.KeyM,
	78:  keys.KeyN,
	79:  keys.KeyO,
	80:  keys.KeyP,
	81:  keys.KeyQ,
	82:  keys.KeyR,
	83:  keys.KeyS,
	84:  keys.KeyT,
	85:  keys.KeyU,
	86:  keys.KeyV,
	87:  keys.KeyW,
	88:  keys.KeyX,
	89:  keys.KeyY,
	90:  keys.KeyZ,
	91:  keys.LogoLeft,
	92:  keys.LogoRight,
	93:  keys.ContextMenu,
	96:  keys.Numpad0,
	97:  keys.Numpad1,
	98:  keys.Numpad2,
	99:  keys.Numpad3,
	100: keys.Numpad4,
	101: keys.Numpad5,
	102: keys.Numpad6,
	103: keys.Numpad7,
	104: keys.Numpad8,
	105: keys.Numpad9,
	106: keys.NumpadMultiply,
	107: keys.NumpadAdd,
	109: keys.NumpadSubtract,
	110: keys.NumpadDecimal,
	111: keys.NumpadDivide,
	112: keys.F1,
	113: keys.F2,
	114: keys.F3,
	115: keys.F4,
	116: keys.F5,
	117: keys.F6,
	118: keys.F7,
	119: keys.F8,
	120: keys.F9,
	121: keys.F10,
	122: keys.F11,
	123: keys.F12,
	124: keys.F13,
	125: keys.F14,
	126: keys.F15,
	127: keys.F16,
	128: keys.F17,
	129: keys.F18,
	130: keys.F19,
	131: keys.F20,
	132: keys.F21,
	133: keys.F22,
	134: keys.F23,
	135: keys.F24,
	144: keys.NumLock,
	145: keys.ScrollLock,
	186: keys.Semicolon,
	187: keys.Equal,
	188: keys.Comma,
	189: keys.Minus,
	190: keys.Period,
	191: keys.Slash,
	192: keys.Backquote,
	193: keys.IntlRo,
	219: keys.BracketLeft,
	220: keys.Backslash,
	221: keys.BracketRight,
	222: keys.Quote,
	226: keys.IntlBackslash,

	// Firefox reports these punctuation and OS key codes.
	59:  keys.Semicolon,
	61:  keys.Equal,
	173: keys.Minus,
	224: keys.LogoLeft,
}

var webEncode = map[keys.Key]uint32{
	keys.Backquote:      192,
	keys.Backslash:      220,
	keys.BracketLeft:    219,
	keys.BracketRight:   221,
	keys.Comma:          188,
	keys.Digit0:         48,
	keys.Digit1:         49,
	keys.Digit2:         50,
	keys.Digit3:         51,
	keys.Digit4:         52,
	keys.Digit5:         53,
	keys.Digit6:         54,
	keys.Digit7:         55,
	keys.Digit8:         56,
	keys.Digit9:         57,
	keys.Equal:          187,
	keys.IntlBackslash:  226,
	keys.IntlRo:         193,
	keys.KeyA:           65,
	keys.KeyB:           66,
	keys.KeyC:           67,
	keys.KeyD:           68,
	keys.KeyE:           69,
	keys.KeyF:           70,
	keys.KeyG:           71,
	keys.KeyH:           72,
	keys.KeyI:           73,
	keys.KeyJ:           74,
	keys.KeyK:           75,
	keys.KeyL:           76,
	keys.KeyM:           77,
	keys.KeyN:           78,
	keys.KeyO:           79,
	keys.KeyP:           80,
	keys.KeyQ:           81,
	keys.KeyR:           82,
	keys.KeyS:           83,
	keys.KeyT:           84,
	keys.KeyU:           85,
	keys.KeyV:           86,
	keys.KeyW:           87,
	keys.KeyX:           88,
	keys.KeyY:           89,
	keys.KeyZ:           90,
	keys.Minus:          189,
	keys.Period:         190,
	keys.Quote:          222,
	keys.Semicolon:      186,
	keys.Slash:          191,
	keys.AltLeft:        18,
	keys.ControlLeft:    17,
	keys.LogoLeft:       91,
	keys.LogoRight:      92,
	keys.ShiftLeft:      16,
	keys.Backspace:      8,
	keys.CapsLock:       20,
	keys.ContextMenu:    93,
	keys.Enter:          13,
	keys.Space:          32,
	keys.Tab:            9,
	keys.Convert:        28,
	keys.KanaMode:       21,
	keys.NonConvert:     29,
	keys.ArrowDown:      40,
	keys.ArrowLeft:      37,
	keys.ArrowRight:     39,
	keys.ArrowUp:        38,
	keys.Delete:         46,
	keys.End:            35,
	keys.Home:           36,
	keys.Insert:         45,
	keys.PageDown:       34,
	keys.PageUp:         33,
	keys.NumLock:        144,
	keys.Numpad0:        96,
	keys.Numpad1:        97,
	keys.Numpad2:        98,
	keys.Numpad3:        99,
	keys.Numpad4:        100,
	keys.Numpad5:        101,
	keys.Numpad6:        102,
	keys.Numpad7:        103,
	keys.Numpad8:        104,
	keys.Numpad9:        105,
	keys.NumpadAdd:      107,
	keys.NumpadDecimal:  110,
	keys.NumpadDivide:   111,
	keys.NumpadMultiply: 106,
	keys.NumpadSubtract: 109,
	keys.Escape:         27,
	keys.F1:             112,
	keys.F2:             113,
	keys.F3:             114,
	keys.F4:             115,
	keys.F5:             116,
	keys.F6:             117,
	keys.F7:             118,
	keys.F8:             119,
	keys.F9:             120,
	keys.F10:            121,
	keys.F11:            122,
	keys.F12:            123,
	keys.F13:            124,
	keys.F14:            125,
	keys.F15:            126,
	keys.F16:            127,
	keys.F17:            128,
	keys.F18:            129,
	keys.F19:            130,
	keys.F20:            131,
	keys.F21:            132,
	keys.F22:            133,
	keys.F23:            134,
	keys.F24:            135,
	keys.Help:           47,
	keys.Pause:          19,
	keys.PrintScreen:    44,
	keys.ScrollLock:     145,
}
