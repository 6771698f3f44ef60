package keys_test

import (
	"testing"

	"github.com/Alia5/keynames/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllIsClosedAndUnique(t *testing.T) {
	all := keys.All()
	require.Len(t, all, keys.Count())
	assert.Len(t, all, 123)

	seen := map[string]keys.Key{}
	for _, k := range all {
		assert.True(t, k.Valid(), "key %d", k)
		name := k.String()
		prev, dup := seen[name]
		assert.False(t, dup, "%s used by %d and %d", name, prev, k)
		seen[name] = k
	}
	assert.False(t, keys.Unidentified.Valid())
	assert.False(t, keys.Key(200).Valid())
}

func TestParse(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  keys.Key
		err   bool
	}
	cases := []testCase{
		{name: "exact", input: "KeyA", want: keys.KeyA},
		{name: "case insensitive", input: "numpadenter", want: keys.NumpadEnter},
		{name: "surrounding space", input: "  F24 ", want: keys.F24},
		{name: "w3c meta alias", input: "MetaLeft", want: keys.LogoLeft},
		{name: "legacy os alias", input: "OSRight", want: keys.LogoRight},
		{name: "unknown", input: "Hyper", err: true},
		{name: "empty", input: "", err: true},
		{name: "unidentified is not a key", input: "Unidentified", err: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := keys.Parse(tc.input)
			if tc.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseEveryName(t *testing.T) {
	for _, k := range keys.All() {
		got, err := keys.Parse(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestTextMarshaling(t *testing.T) {
	b, err := keys.ArrowUp.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ArrowUp", string(b))

	var k keys.Key
	require.NoError(t, k.UnmarshalText([]byte("printscreen")))
	assert.Equal(t, keys.PrintScreen, k)

	assert.Error(t, k.UnmarshalText([]byte("nope")))
	_, err = keys.Unidentified.MarshalText()
	assert.Error(t, err)
}

func TestStringOutOfRange(t *testing.T) {
	assert.Equal(t, "Key(250)", keys.Key(250).String())
	assert.Equal(t, "Unidentified", keys.Unidentified.String())
}
