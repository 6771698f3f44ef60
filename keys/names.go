package keys

import (
	"fmt"
	"strings"
)

var (
	byLowerName = func() map[string]Key {
		m := make(map[string]Key, int(maxKey)+4)
		for k := Key(1); k <= maxKey; k++ {
			m[strings.ToLower(keyNames[k])] = k
		}
		// W3C spelling of the logo keys.
		m["metaleft"] = LogoLeft
		m["metaright"] = LogoRight
		m["osleft"] = LogoLeft
		m["osright"] = LogoRight
		return m
	}()
	all = func() []Key {
		out := make([]Key, 0, int(maxKey))
		for k := Key(1); k <= maxKey; k++ {
			out = append(out, k)
		}
		return out
	}()
)

// String returns the symbolic name of k, e.g. "KeyA" or "NumpadEnter".
func (k Key) String() string {
	if k > maxKey {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// Valid reports whether k is one of the enumerated keys.
func (k Key) Valid() bool {
	return k != Unidentified && k <= maxKey
}

// All returns every valid key in declaration order. The slice is a copy.
func All() []Key {
	out := make([]Key, len(all))
	copy(out, all)
	return out
}

// Count is the number of valid keys.
func Count() int { return len(all) }

// Parse looks up a key by its symbolic name, ignoring case.
// MetaLeft/MetaRight and OSLeft/OSRight are accepted for the logo keys.
func Parse(name string) (Key, error) {
	k, ok := byLowerName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Unidentified, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid key %d", uint8(k))
	}
	return []byte(keyNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
