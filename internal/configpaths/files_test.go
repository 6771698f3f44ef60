package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCandidatePathsUserFirst(t *testing.T) {
	cases := []struct {
		user   string
		format string
	}{
		{"my.json", "json"},
		{"my.conf", "json"},
		{"my.yaml", "yaml"},
		{"my.yml", "yaml"},
		{"my.toml", "toml"},
	}
	for _, tc := range cases {
		t.Run(tc.user, func(t *testing.T) {
			j, y, tm := ConfigCandidatePaths(tc.user)
			var first string
			switch tc.format {
			case "json":
				first = j[0]
			case "yaml":
				first = y[0]
			case "toml":
				first = tm[0]
			}
			assert.Equal(t, tc.user, first)
		})
	}
}

func TestConfigCandidatePathsUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "keynames"), got)

	_, _, tomlPaths := ConfigCandidatePaths("")
	assert.Contains(t, tomlPaths, filepath.Join(dir, "keynames", "config.toml"))
	assert.Contains(t, tomlPaths, filepath.Join("/etc", "keynames", "keynames.toml"))
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a", "b", "config.json")
	require.NoError(t, EnsureDir(target))
	assert.DirExists(t, filepath.Join(dir, "a", "b"))
}
