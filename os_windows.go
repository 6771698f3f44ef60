//go:build windows

package keynames

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
)

const (
	HostPlatform   = scancode.Windows
	ModifiersOrder = "csam"
	AltStr         = "Alt"
	LogoStr        = "Win"
	ScInvalid      = uint32(0)
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procGetKeyNameText = user32.NewProc("GetKeyNameTextW")
)

// LoadNativeKeymap is a no-op; Windows names keys on demand.
func LoadNativeKeymap() error { return nil }

// keyNameParam builds the GetKeyNameTextW argument for sc. Only plain bytes
// and 0xE0 extended codes are set-1 scancodes.
func keyNameParam(sc uint32) (uintptr, bool) {
	switch {
	case sc <= 0xFF:
		return uintptr(sc) << 16, true
	case sc&^0xFF == 0xE000:
		return uintptr(sc&0xFF)<<16 | 1<<24, true
	}
	return 0, false
}

func nativeScancodeName(sc uint32) string {
	lParam, ok := keyNameParam(sc)
	if !ok {
		return names.Unknown(sc)
	}

	var buf [32]uint16
	n, _, callErr := procGetKeyNameText.Call(lParam, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		currentLogger().Debug("GetKeyNameTextW failed", "scancode", sc, "error", callErr)
		return names.Unknown(sc)
	}
	return windows.UTF16ToString(buf[:n])
}
