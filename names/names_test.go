package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
)

func TestModsPrefix(t *testing.T) {
	type testCase struct {
		name                   string
		platform               scancode.Platform
		shift, ctrl, alt, logo bool
		want                   string
	}
	cases := []testCase{
		{name: "linux none", platform: scancode.Linux},
		{name: "windows none", platform: scancode.Windows},
		{name: "macos none", platform: scancode.MacOS},
		{name: "web none", platform: scancode.Web},
		{name: "windows ctrl shift", platform: scancode.Windows, shift: true, ctrl: true, want: "Ctrl + Shift + "},
		{name: "windows all", platform: scancode.Windows, shift: true, ctrl: true, alt: true, logo: true, want: "Ctrl + Shift + Alt + Win + "},
		{name: "macos ctrl alt shift", platform: scancode.MacOS, shift: true, ctrl: true, alt: true, want: "Ctrl + Option + Shift + "},
		{name: "macos all", platform: scancode.MacOS, shift: true, ctrl: true, alt: true, logo: true, want: "Ctrl + Option + Shift + Cmd + "},
		{name: "linux logo", platform: scancode.Linux, logo: true, want: "Super + "},
		{name: "web alt", platform: scancode.Web, alt: true, want: "Alt + "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := names.For(tc.platform).ModsPrefix(tc.shift, tc.ctrl, tc.alt, tc.logo)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestVocabularyOrderIsPermutation(t *testing.T) {
	for _, p := range scancode.Platforms() {
		v := names.For(p)
		assert.ElementsMatch(t, []byte("csam"), []byte(v.Order), p.String())
		assert.Equal(t, "Ctrl", v.Ctrl)
		assert.Equal(t, "Shift", v.Shift)
	}
}

func TestForUnknownPlatform(t *testing.T) {
	assert.Equal(t, names.For(scancode.Web), names.For(scancode.Platform(42)))
}

func TestKeyName(t *testing.T) {
	type testCase struct {
		platform scancode.Platform
		key      keys.Key
		want     string
	}
	cases := []testCase{
		{scancode.MacOS, keys.Backspace, "Delete"},
		{scancode.MacOS, keys.Delete, "Forward Delete"},
		{scancode.MacOS, keys.Enter, "Return"},
		{scancode.MacOS, keys.AltRight, "Right Option"},
		{scancode.MacOS, keys.LogoLeft, "Command"},
		{scancode.MacOS, keys.Escape, "Esc"},
		{scancode.MacOS, keys.KeyQ, "Q"},
		{scancode.MacOS, keys.Digit7, "7"},
		{scancode.MacOS, keys.Backslash, "\\"},
		{scancode.MacOS, keys.F5, "F5"},
		{scancode.Web, keys.AltLeft, "Left Alt"},
		{scancode.Web, keys.LogoRight, "Right Super"},
		{scancode.Web, keys.ArrowUp, "Up"},
		{scancode.Web, keys.Digit0, "0"},
		{scancode.Web, keys.KeyZ, "Z"},
		{scancode.Web, keys.Backspace, "Backspace"},
		{scancode.Linux, keys.KeyA, "KeyA"},
		{scancode.Windows, keys.ArrowUp, "ArrowUp"},
	}
	for _, tc := range cases {
		t.Run(tc.platform.String()+"/"+tc.key.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, names.KeyName(tc.platform, tc.key))
		})
	}
}

func TestKeyNameNeverEmpty(t *testing.T) {
	for _, p := range scancode.Platforms() {
		for _, k := range keys.All() {
			assert.NotEmpty(t, names.KeyName(p, k), "%s %s", p, k)
		}
	}
}

func TestScancodeName(t *testing.T) {
	assert.Equal(t, "A", names.ScancodeName(scancode.MacOS, 0x00))
	assert.Equal(t, "Return", names.ScancodeName(scancode.MacOS, 0x24))
	assert.Equal(t, "Left Alt", names.ScancodeName(scancode.Web, 18))
	assert.Equal(t, "KeyA", names.ScancodeName(scancode.Linux, 30))
	assert.Equal(t, "SC0", names.ScancodeName(scancode.Linux, 0))
	assert.Equal(t, "SC65535", names.ScancodeName(scancode.MacOS, 0xFFFF))
	assert.Equal(t, "SC4294967295", names.ScancodeName(scancode.Windows, 0xFFFFFFFF))
}
