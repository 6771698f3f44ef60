//go:build !linux

package nativekeymap

import "github.com/Alia5/keynames/xkb"

// Load always fails outside linux.
func Load(Options) (*xkb.Keymap, error) {
	return nil, ErrUnsupported
}
