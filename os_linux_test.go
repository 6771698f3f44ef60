//go:build linux

package keynames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadNativeKeymapIsCached(t *testing.T) {
	first := LoadNativeKeymap()
	second := LoadNativeKeymap()
	assert.Equal(t, first, second)

	km1, err := keymap.Get()
	if err == nil {
		km2, _ := keymap.Get()
		assert.Same(t, km1, km2)
	}
}

func TestUnknownScancodeName(t *testing.T) {
	if LoadNativeKeymap() != nil {
		assert.Equal(t, "SC30", ScancodeName(30))
	}
	assert.Equal(t, "SC2147483632", nativeScancodeName(0x7FFFFFF0))
}
