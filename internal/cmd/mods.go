package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/Alia5/keynames/hid"
	"github.com/Alia5/keynames/names"
)

// Modifiers are the modifier flags shared by name and mods.
type Modifiers struct {
	Shift bool `help:"Shift is held"`
	Ctrl  bool `help:"Ctrl is held"`
	Alt   bool `help:"Alt (Option) is held"`
	Logo  bool `help:"Logo (Win, Cmd, Super) is held"`
}

func (m Modifiers) prefix(v names.Vocabulary) string {
	return v.ModsPrefix(m.Shift, m.Ctrl, m.Alt, m.Logo)
}

// Mods prints the modifier prefix of a key combination.
type Mods struct {
	PlatformFlag `embed:""`
	Modifiers    `embed:""`
	HIDMask      string `help:"HID boot keyboard modifier byte (e.g. 0x05), combined with the flags" name:"hid-mask"`
}

// Run is called by Kong when the mods command is executed.
func (c *Mods) Run(out io.Writer) error {
	n, err := c.namer()
	if err != nil {
		return err
	}
	m := c.Modifiers
	if c.HIDMask != "" {
		v, err := parseCode(c.HIDMask)
		if err != nil {
			return err
		}
		if v > 0xFF {
			return fmt.Errorf("HID modifier mask %s does not fit in a byte", c.HIDMask)
		}
		shift, ctrl, alt, logo := hid.Modifiers(v).Active()
		m.Shift = m.Shift || shift
		m.Ctrl = m.Ctrl || ctrl
		m.Alt = m.Alt || alt
		m.Logo = m.Logo || logo
	}
	fmt.Fprintln(out, strings.TrimSuffix(m.prefix(n.vocabulary()), names.Separator))
	return nil
}
