package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keynames/internal/log"
)

func TestGenAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, New(dir, log.Discard()).GenAll())

	header, err := os.ReadFile(filepath.Join(dir, "c", "keynames.h"))
	require.NoError(t, err)
	h := string(header)
	assert.Contains(t, h, "#ifndef KEYNAMES_H")
	assert.Contains(t, h, "KEYNAMES_KEY_KEY_A = ")
	assert.Contains(t, h, "keynames_linux_decode[]")
	assert.Contains(t, h, "{ 0x1Eu, KEYNAMES_KEY_KEY_A },")
	assert.Contains(t, h, "{ 0x54u, KEYNAMES_KEY_PRINT_SCREEN }, /* alias */")
	assert.Contains(t, h, "#define KEYNAMES_MACOS_INVALID 0xFFFFu")

	ts, err := os.ReadFile(filepath.Join(dir, "typescript", "keynames.ts"))
	require.NoError(t, err)
	s := string(ts)
	assert.Contains(t, s, "export enum Key {")
	assert.Contains(t, s, "  KeyA = ")
	assert.Contains(t, s, "[0xE048, Key.ArrowUp],")
	assert.Contains(t, s, "[Key.ArrowUp, 0xE048],")
	assert.Contains(t, s, `export type Platform = "linux" | "macos" | "windows" | "web";`)
}

func TestGenerateLangUnknown(t *testing.T) {
	err := New(t.TempDir(), log.Discard()).GenerateLang("cobol")
	assert.ErrorContains(t, err, "unsupported language 'cobol'")
}
