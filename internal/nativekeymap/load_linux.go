//go:build linux

package nativekeymap

import "github.com/Alia5/keynames/xkb"

// Load fetches the keymap of the current session. It does not cache; use a
// Cache for process-wide reuse.
func Load(opts Options) (*xkb.Keymap, error) {
	return acquire(opts.withDefaults(), map[Backend]loader{
		Wayland: loadWayland,
		X11:     loadX11,
	})
}
