package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUpperSnake(t *testing.T) {
	cases := map[string]string{
		"KeyA":         "KEY_A",
		"Digit0":       "DIGIT_0",
		"F10":          "F10",
		"F1":           "F1",
		"NumpadAdd":    "NUMPAD_ADD",
		"IntlRo":       "INTL_RO",
		"ArrowUp":      "ARROW_UP",
		"Unidentified": "UNIDENTIFIED",
		"macos":        "MACOS",
		"Numpad0":      "NUMPAD_0",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToUpperSnake(in), in)
	}
}

func TestParseVersion(t *testing.T) {
	major, minor, patch := ParseVersion("1.2.3-dirty")
	assert.Equal(t, []int{1, 2, 3}, []int{major, minor, patch})

	major, minor, patch = ParseVersion("4")
	assert.Equal(t, []int{4, 0, 0}, []int{major, minor, patch})
}

func TestGetVersion(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })

	Version = ""
	v, err := GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "0.0.1-dev", v)

	Version = "v1.4.0"
	v, err = GetVersion()
	assert.NoError(t, err)
	assert.Equal(t, "1.4.0", v)

	Version = "nightly"
	_, err = GetVersion()
	assert.Error(t, err)
}
