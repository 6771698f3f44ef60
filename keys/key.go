package keys

// Key identifies a physical key position independent of layout and platform.
// Names follow the W3C UI Events KeyboardEvent.code values, except that the
// Meta keys are called Logo.
type Key uint8

// Unidentified is the zero Key and never denotes a real key.
const Unidentified Key = 0

const (
	// Writing system keys
	Backquote Key = iota + 1
	Backslash
	BracketLeft
	BracketRight
	Comma
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Equal
	IntlBackslash
	IntlRo
	IntlYen
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Minus
	Period
	Quote
	Semicolon
	Slash

	// Functional keys
	AltLeft
	AltRight
	ControlLeft
	ControlRight
	LogoLeft
	LogoRight
	ShiftLeft
	ShiftRight
	Backspace
	CapsLock
	ContextMenu
	Enter
	Space
	Tab

	// IME keys
	Convert
	KanaMode
	NonConvert

	// Control pad and arrow keys
	ArrowDown
	ArrowLeft
	ArrowRight
	ArrowUp
	Delete
	End
	Home
	Insert
	PageDown
	PageUp

	// Numpad
	NumLock
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadDecimal
	NumpadDivide
	NumpadEnter
	NumpadMultiply
	NumpadSubtract

	// Function section
	Escape
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	Help
	Pause
	PrintScreen
	ScrollLock

)

const maxKey = ScrollLock

var keyNames = [...]string{
	Unidentified:   "Unidentified",
	Backquote:      "Backquote",
	Backslash:      "Backslash",
	BracketLeft:    "BracketLeft",
	BracketRight:   "BracketRight",
	Comma:          "Comma",
	Digit0:         "Digit0",
	Digit1:         "Digit1",
	Digit2:         "Digit2",
	Digit3:         "Digit3",
	Digit4:         "Digit4",
	Digit5:         "Digit5",
	Digit6:         "Digit6",
	Digit7:         "Digit7",
	Digit8:         "Digit8",
	Digit9:         "Digit9",
	Equal:          "Equal",
	IntlBackslash:  "IntlBackslash",
	IntlRo:         "IntlRo",
	IntlYen:        "IntlYen",
	KeyA:           "KeyA",
	KeyB:           "KeyB",
	KeyC:           "KeyC",
	KeyD:           "KeyD",
	KeyE:           "KeyE",
	KeyF:           "KeyF",
	KeyG:           "KeyG",
	KeyH:           "KeyH",
	KeyI:           "KeyI",
	KeyJ:           "KeyJ",
	KeyK:           "KeyK",
	KeyL:           "KeyL",
	KeyM:           "KeyM",
	KeyN:           "KeyN",
	KeyO:           "KeyO",
	KeyP:           "KeyP",
	KeyQ:           "KeyQ",
	KeyR:           "KeyR",
	KeyS:           "KeyS",
	KeyT:           "KeyT",
	KeyU:           "KeyU",
	KeyV:           "KeyV",
	KeyW:           "KeyW",
	KeyX:           "KeyX",
	KeyY:           "KeyY",
	KeyZ:           "KeyZ",
	Minus:          "Minus",
	Period:         "Period",
	Quote:          "Quote",
	Semicolon:      "Semicolon",
	Slash:          "Slash",
	AltLeft:        "AltLeft",
	AltRight:       "AltRight",
	ControlLeft:    "ControlLeft",
	ControlRight:   "ControlRight",
	LogoLeft:       "LogoLeft",
	LogoRight:      "LogoRight",
	ShiftLeft:      "ShiftLeft",
	ShiftRight:     "ShiftRight",
	Backspace:      "Backspace",
	CapsLock:       "CapsLock",
	ContextMenu:    "ContextMenu",
	Enter:          "Enter",
	Space:          "Space",
	Tab:            "Tab",
	Convert:        "Convert",
	KanaMode:       "KanaMode",
	NonConvert:     "NonConvert",
	ArrowDown:      "ArrowDown",
	ArrowLeft:      "ArrowLeft",
	ArrowRight:     "ArrowRight",
	ArrowUp:        "ArrowUp",
	Delete:         "Delete",
	End:            "End",
	Home:           "Home",
	Insert:         "Insert",
	PageDown:       "PageDown",
	PageUp:         "PageUp",
	NumLock:        "NumLock",
	Numpad0:        "Numpad0",
	Numpad1:        "Numpad1",
	Numpad2:        "Numpad2",
	Numpad3:        "Numpad3",
	Numpad4:        "Numpad4",
	Numpad5:        "Numpad5",
	Numpad6:        "Numpad6",
	Numpad7:        "Numpad7",
	Numpad8:        "Numpad8",
	Numpad9:        "Numpad9",
	NumpadAdd:      "NumpadAdd",
	NumpadDecimal:  "NumpadDecimal",
	NumpadDivide:   "NumpadDivide",
	NumpadEnter:    "NumpadEnter",
	NumpadMultiply: "NumpadMultiply",
	NumpadSubtract: "NumpadSubtract",
	Escape:         "Escape",
	F1:             "F1",
	F2:             "F2",
	F3:             "F3",
	F4:             "F4",
	F5:             "F5",
	F6:             "F6",
	F7:             "F7",
	F8:             "F8",
	F9:             "F9",
	F10:            "F10",
	F11:            "F11",
	F12:            "F12",
	F13:            "F13",
	F14:            "F14",
	F15:            "F15",
	F16:            "F16",
	F17:            "F17",
	F18:            "F18",
	F19:            "F19",
	F20:            "F20",
	F21:            "F21",
	F22:            "F22",
	F23:            "F23",
	F24:            "F24",
	Help:           "Help",
	Pause:          "Pause",
	PrintScreen:    "PrintScreen",
	ScrollLock:     "ScrollLock",
}
