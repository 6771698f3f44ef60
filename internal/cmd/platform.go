package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Alia5/keynames"
	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
)

const hostPlatform = "host"

// PlatformFlag selects the scancode table a command works on.
type PlatformFlag struct {
	Platform string `help:"Scancode table: host, linux, macos, windows or web" default:"host" env:"KEYNAMES_PLATFORM"`
}

// Selected returns the selected platform and whether it is the host, whose
// names come from the operating system instead of the curated tables.
func (f PlatformFlag) Selected() (scancode.Platform, bool, error) {
	if f.Platform == "" || strings.EqualFold(f.Platform, hostPlatform) {
		return keynames.HostPlatform, true, nil
	}
	p, err := scancode.ParsePlatform(f.Platform)
	if err != nil {
		return 0, false, err
	}
	return p, false, nil
}

// namer names scancodes and keys of one platform.
type namer struct {
	platform scancode.Platform
	native   bool
}

func (f PlatformFlag) namer() (namer, error) {
	p, native, err := f.Selected()
	if err != nil {
		return namer{}, err
	}
	return namer{platform: p, native: native}, nil
}

func (n namer) table() *scancode.Table { return scancode.For(n.platform) }

func (n namer) scancodeName(sc uint32) string {
	if n.native {
		return keynames.ScancodeName(sc)
	}
	return names.ScancodeName(n.platform, sc)
}

func (n namer) keyName(k keys.Key) string {
	if n.native {
		return keynames.KeyName(k)
	}
	return names.KeyName(n.platform, k)
}

func (n namer) vocabulary() names.Vocabulary { return names.For(n.platform) }

// parseCode accepts decimal, 0x hex, 0o octal and 0b binary scancodes.
func parseCode(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid scancode %q: %w", s, err)
	}
	return uint32(v), nil
}

func formatCode(p scancode.Platform, sc uint32) string {
	switch p {
	case scancode.Web, scancode.Linux:
		return strconv.FormatUint(uint64(sc), 10)
	default:
		return fmt.Sprintf("0x%02X", sc)
	}
}
