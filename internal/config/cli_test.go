package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *CLI, opts ...kong.Option) *kong.Kong {
	t.Helper()
	opts = append(opts, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	parser, err := kong.New(cli, opts...)
	require.NoError(t, err)
	return parser
}

func TestParseCommands(t *testing.T) {
	type testCase struct {
		args    []string
		command string
	}
	cases := []testCase{
		{[]string{"decode", "30"}, "decode <scancode>"},
		{[]string{"encode", "--text", "hi"}, "encode"},
		{[]string{"name", "--ctrl", "KeyA"}, "name <key>"},
		{[]string{"mods", "--hid-mask", "0x05"}, "mods"},
		{[]string{"table", "--format", "json"}, "table"},
		{[]string{"check"}, "check"},
		{[]string{"keymap", "--all"}, "keymap"},
		{[]string{"codegen", "--lang", "c"}, "codegen"},
		{[]string{"config", "init", "table"}, "config init <command>"},
	}
	for _, tc := range cases {
		t.Run(tc.command, func(t *testing.T) {
			var cli CLI
			ctx, err := newParser(t, &cli).Parse(tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.command, ctx.Command())
		})
	}
}

func TestParseDefaultsAndEnv(t *testing.T) {
	t.Setenv("KEYNAMES_LOG_LEVEL", "debug")
	t.Setenv("KEYNAMES_PLATFORM", "windows")

	var cli CLI
	_, err := newParser(t, &cli).Parse([]string{"table"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cli.Log.Level)
	assert.Equal(t, "windows", cli.Table.Platform)
	assert.Equal(t, "text", cli.Table.Format)
}

func TestParseRejectsBadEnum(t *testing.T) {
	var cli CLI
	_, err := newParser(t, &cli).Parse([]string{"table", "--format", "xml"})
	assert.Error(t, err)
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keynames.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"platform": "macos", "format": "yaml", "log": {"level": "warn"}}`), 0o644))

	var cli CLI
	_, err := newParser(t, &cli, kong.Configuration(kong.JSON, path)).Parse([]string{"table"})
	require.NoError(t, err)
	assert.Equal(t, "macos", cli.Table.Platform)
	assert.Equal(t, "yaml", cli.Table.Format)
	assert.Equal(t, "warn", cli.Log.Level)

	cli = CLI{}
	_, err = newParser(t, &cli, kong.Configuration(kong.JSON, path)).Parse([]string{"table", "--platform", "web"})
	require.NoError(t, err)
	assert.Equal(t, "web", cli.Table.Platform)
}
