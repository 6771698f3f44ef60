package scancode

import (
	"github.com/Alia5/keynames/keys"

	"github.com/holoplot/go-evdev"
)

// LinuxTable maps evdev key codes. The mapping is one to one.
var LinuxTable = mustTable(Linux, uint32(evdev.KEY_RESERVED), linuxDecode, linuxEncode)

var linuxDecode = map[uint32]keys.Key{
	uint32(evdev.KEY_ESC):              keys.Escape,
	uint32(evdev.KEY_1):                keys.Digit1,
	uint32(evdev.KEY_2):                keys.Digit2,
	uint32(evdev.KEY_3):                keys.Digit3,
	uint32(evdev.KEY_4):                keys.Digit4,
	uint32(evdev.KEY_5):                keys.Digit5,
	uint32(evdev.KEY_6):                keys.Digit6,
	uint32(evdev.KEY_7):                keys.Digit7,
	uint32(evdev.KEY_8):                keys.Digit8,
	uint32(evdev.KEY_9):                keys.Digit9,
	uint32(evdev.KEY_0):                keys.Digit0,
	uint32(evdev.KEY_MINUS):            keys.Minus,
	uint32(evdev.KEY_EQUAL):            keys.Equal,
	uint32(evdev.KEY_BACKSPACE):        keys.Backspace,
	uint32(evdev.KEY_TAB):              keys.Tab,
	uint32(evdev.KEY_Q):                keys.KeyQ,
	uint32(evdev.KEY_W):                keys.KeyW,
	uint32(evdev.KEY_E):                keys.KeyE,
	uint32(evdev.KEY_R):                keys.KeyR,
	uint32(evdev.KEY_T):                keys.KeyT,
	uint32(evdev.KEY_Y):                keys.KeyY,
	uint32(evdev.KEY_U):                keys.KeyU,
	uint32(evdev.KEY_I):                keys.KeyI,
	uint32(evdev.KEY_O):                keys.KeyO,
	uint32(evdev.KEY_P):                keys.KeyP,
	uint32(evdev.KEY_LEFTBRACE):        keys.BracketLeft,
	uint32(evdev.KEY_RIGHTBRACE):       keys.BracketRight,
	uint32(evdev.KEY_ENTER):            keys.Enter,
	uint32(evdev.KEY_LEFTCTRL):         keys.ControlLeft,
	uint32(evdev.KEY_A):                keys.KeyA,
	uint32(evdev.KEY_S):                keys.KeyS,
	uint32(evdev.KEY_D):                keys.KeyD,
	uint32(evdev.KEY_F):                keys.KeyF,
	uint32(evdev.KEY_G):                keys.KeyG,
	uint32(evdev.KEY_H):                keys.KeyH,
	uint32(evdev.KEY_J):                keys.KeyJ,
	uint32(evdev.KEY_K):                keys.KeyK,
	uint32(evdev.KEY_L):                keys.KeyL,
	uint32(evdev.KEY_SEMICOLON):        keys.Semicolon,
	uint32(evdev.KEY_APOSTROPHE):       keys.Quote,
	uint32(evdev.KEY_GRAVE):            keys.Backquote,
	uint32(evdev.KEY_LEFTSHIFT):        keys.ShiftLeft,
	uint32(evdev.KEY_BACKSLASH):        keys.Backslash,
	uint32(evdev.KEY_Z):                keys.KeyZ,
	uint32(evdev.KEY_X):                keys.KeyX,
	uint32(evdev.KEY_C):                keys.KeyC,
	uint32(evdev.KEY_V):                keys.KeyV,
	uint32(evdev.KEY_B):                keys.KeyB,
	uint32(evdev.KEY_N):                keys.KeyN,
	uint32(evdev.KEY_M):                keys.KeyM,
	uint32(evdev.KEY_COMMA):            keys.Comma,
	uint32(evdev.KEY_DOT):              keys.Period,
	uint32(evdev.KEY_SLASH):            keys.Slash,
	uint32(evdev.KEY_RIGHTSHIFT):       keys.ShiftRight,
	uint32(evdev.KEY_KPASTERISK):       keys.NumpadMultiply,
	uint32(evdev.KEY_LEFTALT):          keys.AltLeft,
	uint32(evdev.KEY_SPACE):            keys.Space,
	uint32(evdev.KEY_CAPSLOCK):         keys.CapsLock,
	uint32(evdev.KEY_F1):               keys.F1,
	uint32(evdev.KEY_F2):               keys.F2,
	uint32(evdev.KEY_F3):               keys.F3,
	uint32(evdev.KEY_F4):               keys.F4,
	uint32(evdev.KEY_F5):               keys.F5,
	uint32(evdev.KEY_F6):               keys.F6,
	uint32(evdev.KEY_F7):               keys.F7,
	uint32(evdev.KEY_F8):               keys.F8,
	uint32(evdev.KEY_F9):               keys.F9,
	uint32(evdev.KEY_F10):              keys.F10,
	uint32(evdev.KEY_NUMLOCK):          keys.NumLock,
	uint32(evdev.KEY_SCROLLLOCK):       keys.ScrollLock,
	uint32(evdev.KEY_KP7):              keys.Numpad7,
	uint32(evdev.KEY_KP8):              keys.Numpad8,
	uint32(evdev.KEY_KP9):              keys.Numpad9,
	uint32(evdev.KEY_KPMINUS):          keys.NumpadSubtract,
	uint32(evdev.KEY_KP4):              keys.Numpad4,
	uint32(evdev.KEY_KP5):              keys.Numpad5,
	uint32(evdev.KEY_KP6):              keys.Numpad6,
	uint32(evdev.KEY_KPPLUS):           keys.NumpadAdd,
	uint32(evdev.KEY_KP1):              keys.Numpad1,
	uint32(evdev.KEY_KP2):              keys.Numpad2,
	uint32(evdev.KEY_KP3):              keys.Numpad3,
	uint32(evdev.KEY_KP0):              keys.Numpad0,
	uint32(evdev.KEY_KPDOT):            keys.NumpadDecimal,
	uint32(evdev.KEY_102ND):            keys.IntlBackslash,
	uint32(evdev.KEY_F11):              keys.F11,
	uint32(evdev.KEY_F12):              keys.F12,
	uint32(evdev.KEY_RO):               keys.IntlRo,
	uint32(evdev.KEY_HENKAN):           keys.Convert,
	uint32(evdev.KEY_KATAKANAHIRAGANA): keys.KanaMode,
	uint32(evdev.KEY_MUHENKAN):         keys.NonConvert,
	uint32(evdev.KEY_KPENTER):          keys.NumpadEnter,
	uint32(evdev.KEY_RIGHTCTRL):        keys.ControlRight,
	uint32(evdev.KEY_KPSLASH):          keys.NumpadDivide,
	uint32(evdev.KEY_SYSRQ):            keys.PrintScreen,
	uint32(evdev.KEY_RIGHTALT):         keys.AltRight,
	uint32(evdev.KEY_HOME):             keys.Home,
	uint32(evdev.KEY_UP):               keys.ArrowUp,
	uint32(evdev.KEY_PAGEUP):           keys.PageUp,
	uint32(evdev.KEY_LEFT):             keys.ArrowLeft,
	uint32(evdev.KEY_RIGHT):            keys.ArrowRight,
	uint32(evdev.KEY_END):              keys.End,
	uint32(evdev.KEY_DOWN):             keys.ArrowDown,
	uint32(evdev.KEY_PAGEDOWN):         keys.PageDown,
	uint32(evdev.KEY_INSERT):           keys.Insert,
	uint32(evdev.KEY_DELETE):           keys.Delete,
	uint32(evdev.KEY_PAUSE):            keys.Pause,
	uint32(evdev.KEY_YEN):              keys.IntlYen,
	uint32(evdev.KEY_LEFTMETA):         keys.LogoLeft,
	uint32(evdev.KEY_RIGHTMETA):        keys.LogoRight,
	uint32(evdev.KEY_HELP):             keys.Help,
	uint32(evdev.KEY_MENU):             keys.ContextMenu,
	uint32(evdev.KEY_F13):              keys.F13,
	uint32(evdev.KEY_F14):              keys.F14,
	uint32(evdev.KEY_F15):              keys.F15,
	uint32(evdev.KEY_F16):              keys.F16,
	uint32(evdev.KEY_F17):              keys.F17,
	uint32(evdev.KEY_F18):              keys.F18,
	uint32(evdev.KEY_F19):              keys.F19,
	uint32(evdev.KEY_F20):              keys.F20,
	uint32(evdev.KEY_F21):              keys.F21,
	uint32(evdev.KEY_F22):              keys.F22,
	uint32(evdev.KEY_F23):              keys.F23,
	uint32(evdev.KEY_F24):              keys.F24,
}

var linuxEncode = map[keys.Key]uint32{
	keys.Escape:         uint32(evdev.KEY_ESC),
	keys.Digit1:         uint32(evdev.KEY_1),
	keys.Digit2:         uint32(evdev.KEY_2),
	keys.Digit3:         uint32(evdev.KEY_3),
	keys.Digit4:         uint32(evdev.KEY_4),
	keys.Digit5:         uint32(evdev.KEY_5),
	keys.Digit6:         uint32(evdev.KEY_6),
	keys.Digit7:         uint32(evdev.KEY_7),
	keys.Digit8:         uint32(evdev.KEY_8),
	keys.Digit9:         uint32(evdev.KEY_9),
	keys.Digit0:         uint32(evdev.KEY_0),
	keys.Minus:          uint32(evdev.KEY_MINUS),
	keys.Equal:          uint32(evdev.KEY_EQUAL),
	keys.Backspace:      uint32(evdev.KEY_BACKSPACE),
	keys.Tab:            uint32(evdev.KEY_TAB),
	keys.KeyQ:           uint32(evdev.KEY_Q),
	keys.KeyW:           uint32(evdev.KEY_W),
	keys.KeyE:           uint32(evdev.KEY_E),
	keys.KeyR:           uint32(evdev.KEY_R),
	keys.KeyT:           uint32(evdev.KEY_T),
	keys.KeyY:           uint32(evdev.KEY_Y),
	keys.KeyU:           uint32(evdev.KEY_U),
	keys.KeyI:           uint32(evdev.KEY_I),
	keys.KeyO:           uint32(evdev.KEY_O),
	keys.KeyP:           uint32(evdev.KEY_P),
	keys.BracketLeft:    uint32(evdev.KEY_LEFTBRACE),
	keys.BracketRight:   uint32(evdev.KEY_RIGHTBRACE),
	keys.Enter:          uint32(evdev.KEY_ENTER),
	keys.ControlLeft:    uint32(evdev.KEY_LEFTCTRL),
	keys.KeyA:           uint32(evdev.KEY_A),
	keys.KeyS:           uint32(evdev.KEY_S),
	keys.KeyD:           uint32(evdev.KEY_D),
	keys.KeyF:           uint32(evdev.KEY_F),
	keys.KeyG:           uint32(evdev.KEY_G),
	keys.KeyH:           uint32(evdev.KEY_H),
	keys.KeyJ:           uint32(evdev.KEY_J),
	keys.KeyK:           uint32(evdev.KEY_K),
	keys.KeyL:           uint32(evdev.KEY_L),
	keys.Semicolon:      uint32(evdev.KEY_SEMICOLON),
	keys.Quote:          uint32(evdev.KEY_APOSTROPHE),
	keys.Backquote:      uint32(evdev.KEY_GRAVE),
	keys.ShiftLeft:      uint32(evdev.KEY_LEFTSHIFT),
	keys.Backslash:      uint32(evdev.KEY_BACKSLASH),
	keys.KeyZ:           uint32(evdev.KEY_Z),
	keys.KeyX:           uint32(evdev.KEY_X),
	keys.KeyC:           uint32(evdev.KEY_C),
	keys.KeyV:           uint32(evdev.KEY_V),
	keys.KeyB:           uint32(evdev.KEY_B),
	keys.KeyN:           uint32(evdev.KEY_N),
	keys.KeyM:           uint32(evdev.KEY_M),
	keys.Comma:          uint32(evdev.KEY_COMMA),
	keys.Period:         uint32(evdev.KEY_DOT),
	keys.Slash:          uint32(evdev.KEY_SLASH),
	keys.ShiftRight:     uint32(evdev.KEY_RIGHTSHIFT),
	keys.NumpadMultiply: uint32(evdev.KEY_KPASTERISK),
	keys.AltLeft:        uint32(evdev.KEY_LEFTALT),
	keys.Space:          uint32(evdev.KEY_SPACE),
	keys.CapsLock:       uint32(evdev.KEY_CAPSLOCK),
	keys.F1:             uint32(evdev.KEY_F1),
	keys.F2:             uint32(evdev.KEY_F2),
	keys.F3:             uint32(evdev.KEY_F3),
	keys.F4:             uint32(evdev.KEY_F4),
	keys.F5:             uint32(evdev.KEY_F5),
	keys.F6:             uint32(evdev.KEY_F6),
	keys.F7:             uint32(evdev.KEY_F7),
	keys.F8:             uint32(evdev.KEY_F8),
	keys.F9:             uint32(evdev.KEY_F9),
	keys.F10:            uint32(evdev.KEY_F10),
	keys.NumLock:        uint32(evdev.KEY_NUMLOCK),
	keys.ScrollLock:     uint32(evdev.KEY_SCROLLLOCK),
	keys.Numpad7:        uint32(evdev.KEY_KP7),
	keys.Numpad8:        uint32(evdev.KEY_KP8),
	keys.Numpad9:        uint32(evdev.KEY_KP9),
	keys.NumpadSubtract: uint32(evdev.KEY_KPMINUS),
	keys.Numpad4:        uint32(evdev.KEY_KP4),
	keys.Numpad5:        uint32(evdev.KEY_KP5),
	keys.Numpad6:        uint32(evdev.KEY_KP6),
	keys.NumpadAdd:      uint32(evdev.KEY_KPPLUS),
	keys.Numpad1:        uint32(evdev.KEY_KP1),
	keys.Numpad2:        uint32(evdev.KEY_KP2),
	keys.Numpad3:        uint32(evdev.KEY_KP3),
	keys.Numpad0:        uint32(evdev.KEY_KP0),
	keys.NumpadDecimal:  uint32(evdev.KEY_KPDOT),
	keys.IntlBackslash:  uint32(evdev.KEY_102ND),
	keys.F11:            uint32(evdev.KEY_F11),
	keys.F12:            uint32(evdev.KEY_F12),
	keys.IntlRo:         uint32(evdev.KEY_RO),
	keys.Convert:        uint32(evdev.KEY_HENKAN),
	keys.KanaMode:       uint32(evdev.KEY_KATAKANAHIRAGANA),
	keys.NonConvert:     uint32(evdev.KEY_MUHENKAN),
	keys.NumpadEnter:    uint32(evdev.KEY_KPENTER),
	keys.ControlRight:   uint32(evdev.KEY_RIGHTCTRL),
	keys.NumpadDivide:   uint32(evdev.KEY_KPSLASH),
	keys.PrintScreen:    uint32(evdev.KEY_SYSRQ),
	keys.AltRight:       uint32(evdev.KEY_RIGHTALT),
	keys.Home:           uint32(evdev.KEY_HOME),
	keys.ArrowUp:        uint32(evdev.KEY_UP),
	keys.PageUp:         uint32(evdev.KEY_PAGEUP),
	keys.ArrowLeft:      uint32(evdev.KEY_LEFT),
	keys.ArrowRight:     uint32(evdev.KEY_RIGHT),
	keys.End:            uint32(evdev.KEY_END),
	keys.ArrowDown:      uint32(evdev.KEY_DOWN),
	keys.PageDown:       uint32(evdev.KEY_PAGEDOWN),
	keys.Insert:         uint32(evdev.KEY_INSERT),
	keys.Delete:         uint32(evdev.KEY_DELETE),
	keys.Pause:          uint32(evdev.KEY_PAUSE),
	keys.IntlYen:        uint32(evdev.KEY_YEN),
	keys.LogoLeft:       uint32(evdev.KEY_LEFTMETA),
	keys.LogoRight:      uint32(evdev.KEY_RIGHTMETA),
	keys.Help:           uint32(evdev.KEY_HELP),
	keys.ContextMenu:    uint32(evdev.KEY_MENU),
	keys.F13:            uint32(evdev.KEY_F13),
	keys.F14:            uint32(evdev.KEY_F14),
	keys.F15:            uint32(evdev.KEY_F15),
	keys.F16:            uint32(evdev.KEY_F16),
	keys.F17:            uint32(evdev.KEY_F17),
	keys.F18:            uint32(evdev.KEY_F18),
	keys.F19:            uint32(evdev.KEY_F19),
	keys.F20:            uint32(evdev.KEY_F20),
	keys.F21:            uint32(evdev.KEY_F21),
	keys.F22:            uint32(evdev.KEY_F22),
	keys.F23:            uint32(evdev.KEY_F23),
	keys.F24:            uint32(evdev.KEY_F24),
}

// EvdevName returns the kernel name of an evdev key code, e.g. "KEY_A".
func EvdevName(sc uint32) (string, bool) {
	name, ok := evdev.KEYToString[evdev.EvCode(sc)]
	return name, ok
}
