package scancode

import (
	"fmt"
	"strings"
)

// Platform identifies a native scancode space.
type Platform uint8

const (
	// Linux scancodes are evdev key codes (linux/input-event-codes.h).
	Linux Platform = iota
	// MacOS scancodes are Carbon virtual key codes (kVK_*).
	MacOS
	// Windows scancodes are PS/2 set 1 codes, extended keys carry the 0xE0 prefix (0xE048).
	Windows
	// Web scancodes are legacy DOM KeyboardEvent.keyCode values.
	Web
)

var platformNames = [...]string{
	Linux:   "linux",
	MacOS:   "macos",
	Windows: "windows",
	Web:     "web",
}

func (p Platform) String() string {
	if int(p) < len(platformNames) {
		return platformNames[p]
	}
	return fmt.Sprintf("Platform(%d)", uint8(p))
}

// Platforms returns every supported platform.
func Platforms() []Platform {
	return []Platform{Linux, MacOS, Windows, Web}
}

// ParsePlatform accepts platform names as well as the GOOS spelling
// (darwin, js) of the same platform.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linux":
		return Linux, nil
	case "macos", "darwin", "mac":
		return MacOS, nil
	case "windows", "win":
		return Windows, nil
	case "web", "js", "wasm":
		return Web, nil
	default:
		return 0, fmt.Errorf("unknown platform %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Platform) UnmarshalText(b []byte) error {
	parsed, err := ParsePlatform(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// For returns the table of platform p. It panics for unknown platforms.
func For(p Platform) *Table {
	switch p {
	case Linux:
		return LinuxTable
	case MacOS:
		return MacOSTable
	case Windows:
		return WindowsTable
	case Web:
		return WebTable
	}
	panic(fmt.Sprintf("scancode: no table for %s", p))
}
