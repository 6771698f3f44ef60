//go:build windows

package keynames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNameParam(t *testing.T) {
	type testCase struct {
		name string
		sc   uint32
		want uintptr
		ok   bool
	}
	cases := []testCase{
		{name: "plain", sc: 0x1E, want: 0x1E << 16, ok: true},
		{name: "extended", sc: 0xE048, want: 0x48<<16 | 1<<24, ok: true},
		{name: "foreign prefix", sc: 0xFF1E},
		{name: "above 16 bits", sc: 0x1001E},
		{name: "extended above 16 bits", sc: 0x1E048},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := keyNameParam(tc.sc)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNativeScancodeNameRejectsForeignCodes(t *testing.T) {
	assert.Equal(t, "SC65566", nativeScancodeName(0x1001E))
	assert.Equal(t, "SC65310", nativeScancodeName(0xFF1E))
}
