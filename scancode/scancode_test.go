package scancode_test

import (
	"testing"

	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/scancode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripEveryPlatform(t *testing.T) {
	for _, p := range scancode.Platforms() {
		t.Run(p.String(), func(t *testing.T) {
			tbl := scancode.For(p)
			require.NoError(t, tbl.Validate())
			for _, k := range keys.All() {
				sc, ok := tbl.Encode(k)
				if !ok {
					continue
				}
				assert.NotEqual(t, tbl.Invalid(), sc, "%s encodes to the invalid code", k)
				got, ok := tbl.Decode(sc)
				require.True(t, ok, "%s -> 0x%X does not decode", k, sc)
				assert.Equal(t, k, got, "%s -> 0x%X", k, sc)
			}
		})
	}
}

func TestDecodeIsTotal(t *testing.T) {
	extremes := []uint32{0xFFFF, 0x10000, 0xE0FF, 0xE100, 0x7FFFFFFF, 0xFFFFFFFF}
	for _, p := range scancode.Platforms() {
		tbl := scancode.For(p)
		assert.NotPanics(t, func() {
			for sc := uint32(0); sc <= 0x1FFFF; sc++ {
				if k, ok := tbl.Decode(sc); ok {
					require.True(t, k.Valid(), "%s 0x%X decodes to invalid key", p, sc)
				}
			}
			for _, sc := range extremes {
				_, _ = tbl.Decode(sc)
			}
		}, p.String())

		_, ok := tbl.Decode(tbl.Invalid())
		assert.False(t, ok, "%s invalid code must not decode", p)
	}
}

func TestEveryDecodedKeyIsInEnumeration(t *testing.T) {
	valid := map[keys.Key]bool{}
	for _, k := range keys.All() {
		valid[k] = true
	}
	for _, p := range scancode.Platforms() {
		for _, pair := range scancode.For(p).Forward() {
			assert.True(t, valid[pair.Key], "%s 0x%X", p, pair.Code)
		}
	}
}

func TestLinuxAndWindowsCoverEveryKey(t *testing.T) {
	for _, p := range []scancode.Platform{scancode.Linux, scancode.Windows} {
		tbl := scancode.For(p)
		for _, k := range keys.All() {
			_, ok := tbl.Encode(k)
			assert.True(t, ok, "%s cannot encode %s", p, k)
		}
	}
	// evdev is one to one.
	assert.Len(t, scancode.LinuxTable.Forward(), keys.Count())
	assert.Len(t, scancode.LinuxTable.Reverse(), keys.Count())
}

func TestConcreteCodes(t *testing.T) {
	type testCase struct {
		name     string
		platform scancode.Platform
		code     uint32
		key      keys.Key
		encodes  bool
	}
	cases := []testCase{
		{name: "linux A", platform: scancode.Linux, code: 0x1E, key: keys.KeyA, encodes: true},
		{name: "linux right meta", platform: scancode.Linux, code: 126, key: keys.LogoRight, encodes: true},
		{name: "linux 102nd", platform: scancode.Linux, code: 86, key: keys.IntlBackslash, encodes: true},
		{name: "linux F24", platform: scancode.Linux, code: 194, key: keys.F24, encodes: true},
		{name: "macos A", platform: scancode.MacOS, code: 0x00, key: keys.KeyA, encodes: true},
		{name: "macos command", platform: scancode.MacOS, code: 0x37, key: keys.LogoLeft, encodes: true},
		{name: "macos F1", platform: scancode.MacOS, code: 0x7A, key: keys.F1, encodes: true},
		{name: "windows up arrow", platform: scancode.Windows, code: 0xE048, key: keys.ArrowUp, encodes: true},
		{name: "windows numpad 8", platform: scancode.Windows, code: 0x48, key: keys.Numpad8, encodes: true},
		{name: "windows numpad enter", platform: scancode.Windows, code: 0xE01C, key: keys.NumpadEnter, encodes: true},
		{name: "windows numlock", platform: scancode.Windows, code: 0xE045, key: keys.NumLock, encodes: true},
		{name: "windows pause", platform: scancode.Windows, code: 0x45, key: keys.Pause, encodes: true},
		{name: "windows break alias", platform: scancode.Windows, code: 0xE046, key: keys.Pause},
		{name: "windows print screen", platform: scancode.Windows, code: 0xE037, key: keys.PrintScreen, encodes: true},
		{name: "windows sysrq alias", platform: scancode.Windows, code: 0x54, key: keys.PrintScreen},
		{name: "web A", platform: scancode.Web, code: 65, key: keys.KeyA, encodes: true},
		{name: "web semicolon", platform: scancode.Web, code: 186, key: keys.Semicolon, encodes: true},
		{name: "web firefox semicolon", platform: scancode.Web, code: 59, key: keys.Semicolon},
		{name: "web firefox meta", platform: scancode.Web, code: 224, key: keys.LogoLeft},
		{name: "web right logo", platform: scancode.Web, code: 92, key: keys.LogoRight, encodes: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := scancode.For(tc.platform)
			got, ok := tbl.Decode(tc.code)
			require.True(t, ok)
			assert.Equal(t, tc.key, got)

			sc, ok := tbl.Encode(tc.key)
			require.True(t, ok)
			if tc.encodes {
				assert.Equal(t, tc.code, sc)
				assert.False(t, tbl.IsAlias(tc.code))
			} else {
				assert.NotEqual(t, tc.code, sc)
				assert.True(t, tbl.IsAlias(tc.code))
			}
		})
	}
}

func TestUnencodable(t *testing.T) {
	type testCase struct {
		platform scancode.Platform
		key      keys.Key
	}
	cases := []testCase{
		{scancode.MacOS, keys.Insert},
		{scancode.MacOS, keys.NumLock},
		{scancode.MacOS, keys.PrintScreen},
		{scancode.MacOS, keys.LogoRight},
		{scancode.MacOS, keys.F21},
		{scancode.Web, keys.ShiftRight},
		{scancode.Web, keys.ControlRight},
		{scancode.Web, keys.AltRight},
		{scancode.Web, keys.NumpadEnter},
	}
	for _, tc := range cases {
		sc, ok := scancode.For(tc.platform).Encode(tc.key)
		assert.False(t, ok, "%s %s", tc.platform, tc.key)
		assert.Zero(t, sc)
	}
}

func TestUnassignedCodes(t *testing.T) {
	type testCase struct {
		platform scancode.Platform
		code     uint32
	}
	cases := []testCase{
		{scancode.MacOS, 0x34},
		{scancode.MacOS, 0x47},
		{scancode.MacOS, 0xFFFF},
		{scancode.Linux, 0},
		{scancode.Linux, 0x2FF},
		{scancode.Windows, 0},
		{scancode.Windows, 0xE001},
		{scancode.Web, 0},
		{scancode.Web, 255},
	}
	for _, tc := range cases {
		k, ok := scancode.For(tc.platform).Decode(tc.code)
		assert.False(t, ok, "%s 0x%X", tc.platform, tc.code)
		assert.Equal(t, keys.Unidentified, k)
	}
}

func TestNewTableRejectsBrokenTables(t *testing.T) {
	type testCase struct {
		name   string
		decode map[uint32]keys.Key
		encode map[keys.Key]uint32
		err    error
	}
	cases := []testCase{
		{
			name:   "encode does not round trip",
			decode: map[uint32]keys.Key{1: keys.KeyA, 2: keys.KeyB},
			encode: map[keys.Key]uint32{keys.KeyA: 2},
			err:    scancode.ErrRoundTrip,
		},
		{
			name:   "encode to unknown code",
			decode: map[uint32]keys.Key{1: keys.KeyA},
			encode: map[keys.Key]uint32{keys.KeyB: 3},
			err:    scancode.ErrRoundTrip,
		},
		{
			name:   "invalid key",
			decode: map[uint32]keys.Key{1: keys.Unidentified},
			err:    scancode.ErrInvalidKey,
		},
		{
			name:   "sentinel code",
			decode: map[uint32]keys.Key{0: keys.KeyA},
			err:    scancode.ErrSentinelCode,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scancode.NewTable(scancode.Linux, 0, tc.decode, tc.encode)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	tbl, err := scancode.NewTable(scancode.Linux, 0,
		map[uint32]keys.Key{1: keys.KeyA, 7: keys.KeyA},
		map[keys.Key]uint32{keys.KeyA: 1})
	require.NoError(t, err)
	assert.Equal(t, []scancode.Pair{{Code: 1, Key: keys.KeyA}, {Code: 7, Key: keys.KeyA}}, tbl.Forward())
	assert.Equal(t, []scancode.Pair{{Code: 1, Key: keys.KeyA}}, tbl.Reverse())
}

func TestParsePlatform(t *testing.T) {
	for _, p := range scancode.Platforms() {
		got, err := scancode.ParsePlatform(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := scancode.ParsePlatform("Darwin")
	require.NoError(t, err)
	assert.Equal(t, scancode.MacOS, got)

	_, err = scancode.ParsePlatform("plan9")
	assert.Error(t, err)

	var p scancode.Platform
	require.NoError(t, p.UnmarshalText([]byte("js")))
	assert.Equal(t, scancode.Web, p)
}

func TestEvdevName(t *testing.T) {
	name, ok := scancode.EvdevName(30)
	require.True(t, ok)
	assert.Equal(t, "KEY_A", name)
}
