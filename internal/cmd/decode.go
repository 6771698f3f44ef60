package cmd

import (
	"fmt"
	"io"
	"log/slog"
)

// Decode maps native scancodes to keys.
type Decode struct {
	PlatformFlag `embed:""`
	Codes        []string `arg:"" name:"scancode" help:"Scancodes to decode (decimal or 0x hex)"`
}

// Run is called by Kong when the decode command is executed.
func (d *Decode) Run(logger *slog.Logger, out io.Writer) error {
	n, err := d.namer()
	if err != nil {
		return err
	}
	for _, s := range d.Codes {
		sc, err := parseCode(s)
		if err != nil {
			return err
		}
		k, ok := n.table().Decode(sc)
		if !ok {
			logger.Debug("Scancode has no key", "platform", n.platform, "scancode", sc)
			fmt.Fprintf(out, "%s\t-\t%s\n", formatCode(n.platform, sc), n.scancodeName(sc))
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", formatCode(n.platform, sc), k, n.scancodeName(sc))
	}
	return nil
}
