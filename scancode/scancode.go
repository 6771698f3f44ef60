// Package scancode holds the per-platform tables that translate native
// scancodes to keys.Key values and back.
//
// Every table keeps the two directions separately. Decoding may accept
// several codes for the same key (for example the Windows PrintScreen code
// sent while Alt is held), while encoding always yields one canonical code.
// The round-trip law encode(k) = sc => decode(sc) = k is checked when a
// table is built.
package scancode

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Alia5/keynames/keys"
)

var (
	ErrInvalidKey   = errors.New("table references an invalid key")
	ErrSentinelCode = errors.New("table maps the invalid scancode")
	ErrRoundTrip    = errors.New("encoded scancode does not decode to the same key")
)

// Pair is a single scancode/key association.
type Pair struct {
	Code uint32
	Key  keys.Key
}

// Table maps scancodes of one platform to keys and back.
// A Table is immutable and safe for concurrent use.
type Table struct {
	platform Platform
	invalid  uint32
	decode   map[uint32]keys.Key
	encode   map[keys.Key]uint32
}

// NewTable builds a table from its decode and encode directions.
// invalid is the platform's "no scancode" value and may not appear in either direction.
func NewTable(p Platform, invalid uint32, decode map[uint32]keys.Key, encode map[keys.Key]uint32) (*Table, error) {
	t := &Table{
		platform: p,
		invalid:  invalid,
		decode:   make(map[uint32]keys.Key, len(decode)),
		encode:   make(map[keys.Key]uint32, len(encode)),
	}
	for sc, k := range decode {
		t.decode[sc] = k
	}
	for k, sc := range encode {
		t.encode[k] = sc
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func mustTable(p Platform, invalid uint32, decode map[uint32]keys.Key, encode map[keys.Key]uint32) *Table {
	t, err := NewTable(p, invalid, decode, encode)
	if err != nil {
		panic(fmt.Sprintf("scancode: %s table: %v", p, err))
	}
	return t
}

// Validate checks that both directions only use valid keys, never use the
// invalid code, and that every encoded code decodes back to its key.
func (t *Table) Validate() error {
	for sc, k := range t.decode {
		if !k.Valid() {
			return fmt.Errorf("%w: decode 0x%X -> %d", ErrInvalidKey, sc, uint8(k))
		}
		if sc == t.invalid {
			return fmt.Errorf("%w: decode 0x%X -> %s", ErrSentinelCode, sc, k)
		}
	}
	for k, sc := range t.encode {
		if !k.Valid() {
			return fmt.Errorf("%w: encode %d -> 0x%X", ErrInvalidKey, uint8(k), sc)
		}
		if sc == t.invalid {
			return fmt.Errorf("%w: encode %s -> 0x%X", ErrSentinelCode, k, sc)
		}
		if back, ok := t.decode[sc]; !ok || back != k {
			return fmt.Errorf("%w: %s -> 0x%X -> %s", ErrRoundTrip, k, sc, back)
		}
	}
	return nil
}

// Platform returns the platform the table belongs to.
func (t *Table) Platform() Platform { return t.platform }

// Invalid returns the platform's sentinel for "no scancode".
func (t *Table) Invalid() uint32 { return t.invalid }

// Decode returns the key at scancode sc. It is defined for every uint32 and
// reports false for unassigned or reserved codes.
func (t *Table) Decode(sc uint32) (keys.Key, bool) {
	if sc == t.invalid {
		return keys.Unidentified, false
	}
	k, ok := t.decode[sc]
	return k, ok
}

// Encode returns the canonical scancode of k, or false when the platform
// has no such key.
func (t *Table) Encode(k keys.Key) (uint32, bool) {
	sc, ok := t.encode[k]
	return sc, ok
}

// Forward returns every decodable code sorted by code, aliases included.
func (t *Table) Forward() []Pair {
	out := make([]Pair, 0, len(t.decode))
	for sc, k := range t.decode {
		out = append(out, Pair{Code: sc, Key: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Reverse returns every encodable key with its canonical code, sorted by key.
func (t *Table) Reverse() []Pair {
	out := make([]Pair, 0, len(t.encode))
	for k, sc := range t.encode {
		out = append(out, Pair{Code: sc, Key: k})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// IsAlias reports whether sc decodes to a key whose canonical code differs.
func (t *Table) IsAlias(sc uint32) bool {
	k, ok := t.Decode(sc)
	if !ok {
		return false
	}
	canon, ok := t.encode[k]
	return !ok || canon != sc
}
