//go:build !linux && !darwin && !windows && !js

package keynames

import (
	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
)

// Other systems decode evdev codes and name keys symbolically.
const (
	HostPlatform   = scancode.Linux
	ModifiersOrder = "csam"
	AltStr         = "Alt"
	LogoStr        = "Super"
	ScInvalid      = uint32(0)
)

// LoadNativeKeymap is a no-op; no native keymap source exists here.
func LoadNativeKeymap() error { return nil }

func nativeScancodeName(sc uint32) string {
	return names.ScancodeName(HostPlatform, sc)
}
