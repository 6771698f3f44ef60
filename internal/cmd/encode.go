package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/keynames/hid"
	"github.com/Alia5/keynames/keys"
)

// Encode maps keys, or the keys typing a US-layout string, to native scancodes.
type Encode struct {
	PlatformFlag `embed:""`
	Keys         []string `arg:"" optional:"" name:"key" help:"Key names such as KeyA or ArrowUp"`
	Text         string   `help:"Encode the keys typing this ASCII text on a US layout"`
}

// Run is called by Kong when the encode command is executed.
func (e *Encode) Run(logger *slog.Logger, out io.Writer) error {
	n, err := e.namer()
	if err != nil {
		return err
	}
	if len(e.Keys) == 0 && e.Text == "" {
		return errors.New("nothing to encode; pass key names or --text")
	}

	for _, name := range e.Keys {
		k, err := keys.Parse(name)
		if err != nil {
			return err
		}
		e.print(out, n, k, false)
	}
	for i := 0; i < len(e.Text); i++ {
		k, shift, ok := hid.CharKey(e.Text[i])
		if !ok {
			logger.Warn("Character has no key on a US layout", "char", string(e.Text[i]))
			continue
		}
		e.print(out, n, k, shift)
	}
	return nil
}

func (e *Encode) print(out io.Writer, n namer, k keys.Key, shift bool) {
	prefix := n.vocabulary().ModsPrefix(shift, false, false, false)
	sc, ok := n.table().Encode(k)
	if !ok {
		fmt.Fprintf(out, "%s\t-\t%s%s\n", k, prefix, n.keyName(k))
		return
	}
	fmt.Fprintf(out, "%s\t%s\t%s%s\n", k, formatCode(n.platform, sc), prefix, n.scancodeName(sc))
}
