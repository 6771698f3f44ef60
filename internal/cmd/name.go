package cmd

import (
	"fmt"
	"io"

	"github.com/Alia5/keynames/keys"
)

// Name prints the display name of a key, optionally with modifiers.
type Name struct {
	PlatformFlag `embed:""`
	Modifiers    `embed:""`
	Key          string `arg:"" help:"Key name such as KeyA, or a scancode with --scancode"`
	Scancode     bool   `help:"Treat the argument as a native scancode"`
}

// Run is called by Kong when the name command is executed.
func (c *Name) Run(out io.Writer) error {
	n, err := c.namer()
	if err != nil {
		return err
	}
	prefix := c.prefix(n.vocabulary())

	if c.Scancode {
		sc, err := parseCode(c.Key)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, prefix+n.scancodeName(sc))
		return nil
	}
	k, err := keys.Parse(c.Key)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, prefix+n.keyName(k))
	return nil
}
