package xkb_test

import (
	"errors"
	"os"
	"testing"

	"github.com/Alia5/keynames/xkb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadUS(t *testing.T) *xkb.Keymap {
	t.Helper()
	src, err := os.ReadFile("testdata/us.xkb")
	require.NoError(t, err)
	km, err := xkb.ParseKeymap(src)
	require.NoError(t, err)
	return km
}

func TestParseKeymapSymbolNames(t *testing.T) {
	km := loadUS(t)

	type testCase struct {
		name    string
		keycode uint32
		want    string
	}
	cases := []testCase{
		{name: "escape", keycode: 9, want: "Escape"},
		{name: "digit uppercased no-op", keycode: 10, want: "1"},
		{name: "letter uppercased", keycode: 38, want: "A"},
		{name: "letter q", keycode: 24, want: "Q"},
		{name: "named punctuation", keycode: 21, want: "equal"},
		{name: "backspace", keycode: 22, want: "BackSpace"},
		{name: "symbols index form", keycode: 50, want: "Shift_L"},
		{name: "key defined through alias", keycode: 51, want: "backslash"},
		{name: "group selected by name", keycode: 59, want: "comma"},
		{name: "multi line key", keycode: 63, want: "KP_Multiply"},
		{name: "override merge mode", keycode: 104, want: "KP_Enter"},
		{name: "type before bare list", keycode: 108, want: "ISO_Level3_Shift"},
		{name: "alias to logo", keycode: 133, want: "Super_L"},
		{name: "numeric keysym", keycode: 121, want: "XF86AudioMute"},
		{name: "space", keycode: 65, want: "space"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := km.SymbolName(tc.keycode)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseKeymapMisses(t *testing.T) {
	km := loadUS(t)

	_, ok := km.SymbolName(252)
	assert.False(t, ok, "NoSymbol has no name")
	_, ok = km.SymbolName(200)
	assert.False(t, ok, "unmapped keycode")

	assert.Equal(t, []xkb.Keysym{0x31, 0x21}, km.Levels(10))
	assert.NotContains(t, km.Keycodes(), uint32(0))

	name, ok := km.KeyName(10)
	require.True(t, ok)
	assert.Equal(t, "AE01", name)
}

func TestParseKeymapErrors(t *testing.T) {
	type testCase struct {
		name string
		src  string
		line int
	}
	cases := []testCase{
		{name: "unterminated section", src: "xkb_keymap {\nxkb_keycodes {\n<A> = 9;\n", line: 4},
		{name: "not a section", src: "\n\nfoo { };", line: 3},
		{name: "unterminated key name", src: "xkb_keycodes {\n<AE01 = 9; };", line: 2},
		{name: "bad keysym list", src: "xkb_symbols {\n key <A> { [ a b ] };\n};", line: 2},
		{name: "unterminated comment", src: "/* nope\n\n", line: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := xkb.ParseKeymap([]byte(tc.src))
			var perr *xkb.ParseError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tc.line, perr.Line)
		})
	}

	_, err := xkb.ParseKeymap([]byte("xkb_keymap { xkb_keycodes { <A> = 9; }; };"))
	assert.ErrorIs(t, err, xkb.ErrNoSymbols)
}

func TestParseKeymapTrailingNUL(t *testing.T) {
	src := []byte("xkb_keymap {\n// comment\nxkb_keycodes { <AC01> = 38 };\nxkb_symbols { key <AC01> { [ a, A ] } };\n};\x00")
	km, err := xkb.ParseKeymap(src)
	require.NoError(t, err)
	name, ok := km.SymbolName(38)
	require.True(t, ok)
	assert.Equal(t, "A", name)
}

func TestParseKeymapBracedLevels(t *testing.T) {
	src := []byte(`xkb_keymap {
xkb_keycodes { <AC01> = 38; <AC02> = 39; <AC03> = 40; };
xkb_symbols {
	key <AC01> { [ a, A ] };
	key <AC02> { [ {s, t}, S ] };
	key <AC03> { symbols[Group1] = [ { }, D ] };
};
};`)
	km, err := xkb.ParseKeymap(src)
	require.NoError(t, err)

	name, ok := km.SymbolName(38)
	require.True(t, ok)
	assert.Equal(t, "A", name)

	name, ok = km.SymbolName(39)
	require.True(t, ok)
	assert.Equal(t, "S", name)
	assert.Equal(t, []xkb.Keysym{0x73, 0x53}, km.Levels(39))

	_, ok = km.SymbolName(40)
	assert.False(t, ok, "empty braced level has no symbol")
	assert.Equal(t, []xkb.Keysym{xkb.NoSymbol, 0x44}, km.Levels(40))

	_, err = xkb.ParseKeymap([]byte(`xkb_symbols {
 key <A> { [ {s t}, S ] };
};`))
	var perr *xkb.ParseError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, 2, perr.Line)
}

func TestKeysymNames(t *testing.T) {
	type testCase struct {
		sym  xkb.Keysym
		name string
	}
	cases := []testCase{
		{0x61, "a"},
		{0x41, "A"},
		{0x5c, "backslash"},
		{0xff55, "Prior"},
		{0xffe1, "Shift_L"},
		{0xffbe, "F1"},
		{0xffe0, "F35"},
		{0x010020ac, "U20AC"},
		{0x12345678, "0x12345678"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, xkb.KeysymName(tc.sym))
	}

	for _, name := range []string{"Page_Up", "Prior"} {
		ks, ok := xkb.KeysymFromName(name)
		require.True(t, ok, name)
		assert.Equal(t, xkb.Keysym(0xff55), ks)
	}
	ks, ok := xkb.KeysymFromName("U0041")
	require.True(t, ok)
	assert.Equal(t, xkb.Keysym(0x41), ks)
	ks, ok = xkb.KeysymFromName("U20AC")
	require.True(t, ok)
	assert.Equal(t, xkb.Keysym(0x010020ac), ks)
	_, ok = xkb.KeysymFromName("NotAKeysym")
	assert.False(t, ok)
}

func TestNewKeymapCopies(t *testing.T) {
	levels := map[uint32][]xkb.Keysym{38: {0x61, 0x41}, 9: {0xff1b}}
	km := xkb.NewKeymap(levels)
	levels[38][0] = 0x62

	name, ok := km.SymbolName(38)
	require.True(t, ok)
	assert.Equal(t, "A", name)
	assert.Equal(t, 2, km.Len())
	assert.Equal(t, []uint32{9, 38}, km.Keycodes())
}
