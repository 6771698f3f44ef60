// Package meta collects the tables the code generators emit.
package meta

import (
	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/scancode"
)

// Metadata holds everything a language generator needs.
type Metadata struct {
	Version   string
	Keys      []Key
	Platforms []Platform
}

// Key is one logical key with its numeric value.
type Key struct {
	Name  string
	Value uint8
}

// Platform is the generator view of a scancode table.
type Platform struct {
	Name    string
	Invalid uint32
	// Decode lists every decodable code, aliases included, sorted by code.
	Decode []Entry
	// Encode lists the canonical code of every encodable key, sorted by key.
	Encode []Entry
}

// Entry pairs a native code with a key name.
type Entry struct {
	Code  uint32
	Key   string
	Alias bool
}

// Build collects the metadata of every platform table.
func Build(version string) *Metadata {
	md := &Metadata{Version: version}
	for _, k := range keys.All() {
		md.Keys = append(md.Keys, Key{Name: k.String(), Value: uint8(k)})
	}
	for _, p := range scancode.Platforms() {
		tbl := scancode.For(p)
		mp := Platform{Name: p.String(), Invalid: tbl.Invalid()}
		for _, e := range tbl.Forward() {
			mp.Decode = append(mp.Decode, Entry{Code: e.Code, Key: e.Key.String(), Alias: tbl.IsAlias(e.Code)})
		}
		for _, e := range tbl.Reverse() {
			mp.Encode = append(mp.Encode, Entry{Code: e.Code, Key: e.Key.String()})
		}
		md.Platforms = append(md.Platforms, mp)
	}
	return md
}
