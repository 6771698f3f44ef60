//go:build js

package keynames

import (
	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
)

const (
	HostPlatform   = scancode.Web
	ModifiersOrder = "csam"
	AltStr         = "Alt"
	LogoStr        = "Super"
	ScInvalid      = uint32(0)
)

// LoadNativeKeymap is a no-op in the browser.
func LoadNativeKeymap() error { return nil }

func nativeScancodeName(sc uint32) string {
	return names.ScancodeName(HostPlatform, sc)
}
