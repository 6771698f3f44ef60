package hid_test

import (
	"testing"

	"github.com/Alia5/keynames/hid"
	"github.com/Alia5/keynames/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
)

func TestUsageRoundTrip(t *testing.T) {
	for _, k := range keys.All() {
		u, ok := hid.FromKey(k)
		require.True(t, ok, "%s has no usage", k)
		got, ok := hid.ToKey(u)
		require.True(t, ok, "%s -> 0x%02X", k, u)
		assert.Equal(t, k, got)
	}
}

func TestUsageAliasesAndGaps(t *testing.T) {
	k, ok := hid.ToKey(hid.KeyboardNonUSHash)
	require.True(t, ok)
	assert.Equal(t, keys.Backslash, k)

	for _, u := range []hid.Usage{0x00, 0x01, hid.KeyboardPower, hid.KeypadEqual, hid.KeyboardMute, 0xFF} {
		_, ok := hid.ToKey(u)
		assert.False(t, ok, "0x%02X", u)
	}
}

func TestMobileCodes(t *testing.T) {
	type testCase struct {
		key  keys.Key
		code key.Code
	}
	cases := []testCase{
		{keys.KeyA, key.CodeA},
		{keys.Digit0, key.Code0},
		{keys.Enter, key.CodeReturnEnter},
		{keys.Backspace, key.CodeDeleteBackspace},
		{keys.Delete, key.CodeDeleteForward},
		{keys.Backquote, key.CodeGraveAccent},
		{keys.NumpadEnter, key.CodeKeypadEnter},
		{keys.NumpadDecimal, key.CodeKeypadFullStop},
		{keys.ArrowUp, key.CodeUpArrow},
		{keys.LogoLeft, key.CodeLeftGUI},
		{keys.AltRight, key.CodeRightAlt},
		{keys.F12, key.CodeF12},
		{keys.Help, key.CodeHelp},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			got, ok := hid.MobileCode(tc.key)
			require.True(t, ok)
			assert.Equal(t, tc.code, got)

			back, ok := hid.FromMobileCode(tc.code)
			require.True(t, ok)
			assert.Equal(t, tc.key, back)
		})
	}

	_, ok := hid.FromMobileCode(key.CodeUnknown)
	assert.False(t, ok)
	_, ok = hid.FromMobileCode(key.CodeCompose)
	assert.False(t, ok)
	_, ok = hid.MobileCode(keys.Unidentified)
	assert.False(t, ok)
}

func TestModifiers(t *testing.T) {
	m := hid.ModifierBit(keys.ShiftRight) | hid.ModifierBit(keys.LogoLeft)
	shift, ctrl, alt, logo := m.Active()
	assert.True(t, shift)
	assert.False(t, ctrl)
	assert.False(t, alt)
	assert.True(t, logo)

	assert.Equal(t, hid.Modifiers(0), hid.ModifierBit(keys.KeyA))
}

func TestCharKey(t *testing.T) {
	type testCase struct {
		char  byte
		key   keys.Key
		shift bool
		ok    bool
	}
	cases := []testCase{
		{'a', keys.KeyA, false, true},
		{'A', keys.KeyA, true, true},
		{'!', keys.Digit1, true, true},
		{'?', keys.Slash, true, true},
		{'\'', keys.Quote, false, true},
		{'\n', keys.Enter, false, true},
		{0x7F, keys.Unidentified, false, false},
	}
	for _, tc := range cases {
		k, shift, ok := hid.CharKey(tc.char)
		assert.Equal(t, tc.ok, ok, "%q", tc.char)
		assert.Equal(t, tc.key, k, "%q", tc.char)
		assert.Equal(t, tc.shift, shift, "%q", tc.char)
	}
}
