//go:build linux

package keynames

import (
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/Alia5/keynames/internal/nativekeymap"
	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
	"github.com/Alia5/keynames/xkb"
)

const (
	HostPlatform   = scancode.Linux
	ModifiersOrder = "csam"
	AltStr         = "Alt"
	LogoStr        = "Super"
	// ScInvalid is KEY_RESERVED.
	ScInvalid = uint32(evdev.KEY_RESERVED)
)

var (
	keymap = nativekeymap.NewCache(func() (*xkb.Keymap, error) {
		return nativekeymap.Load(nativekeymap.Options{Logger: currentLogger()})
	})
	warnOnce sync.Once
)

// LoadNativeKeymap fetches the session keymap now instead of on the first
// ScancodeName call. The keymap is fetched once per process; later calls
// return the first result.
func LoadNativeKeymap() error {
	_, err := keymap.Get()
	return err
}

func nativeScancodeName(sc uint32) string {
	km, err := keymap.Get()
	if err != nil {
		warnOnce.Do(func() {
			currentLogger().Warn("native keymap unavailable, scancodes are named by number", "error", err)
		})
		return names.Unknown(sc)
	}
	if name, ok := km.SymbolName(sc + xkb.EvdevOffset); ok {
		return name
	}
	return names.Unknown(sc)
}
