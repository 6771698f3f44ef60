//go:build darwin

package keynames

import (
	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
)

const (
	HostPlatform   = scancode.MacOS
	ModifiersOrder = "casm"
	AltStr         = "Option"
	LogoStr        = "Cmd"
	ScInvalid      = uint32(0xFFFF)
)

// LoadNativeKeymap is a no-op; macOS names come from a fixed table.
func LoadNativeKeymap() error { return nil }

func nativeScancodeName(sc uint32) string {
	return names.ScancodeName(HostPlatform, sc)
}
