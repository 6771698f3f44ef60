package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/keynames/internal/log"
	"github.com/Alia5/keynames/internal/nativekeymap"
	"github.com/Alia5/keynames/scancode"
	"github.com/Alia5/keynames/xkb"
)

// Keymap prints the native name of every evdev scancode under the session
// keyboard layout, or under an XKB keymap file.
type Keymap struct {
	File        string `help:"Read an XKB text keymap instead of asking the session"`
	SessionType string `help:"Override $XDG_SESSION_TYPE (wayland or x11)" env:"KEYNAMES_SESSION_TYPE"`
	All         bool   `help:"Also list scancodes the layout leaves unbound"`
}

// Run is called by Kong when the keymap command is executed.
func (c *Keymap) Run(logger *slog.Logger, rawLogger log.RawLogger, out io.Writer) error {
	km, err := c.load(logger, rawLogger)
	if err != nil {
		return err
	}
	logger.Info("Loaded keymap", "keycodes", km.Len())

	for _, p := range scancode.LinuxTable.Forward() {
		kc := p.Code + xkb.EvdevOffset
		sym, ok := km.SymbolName(kc)
		if !ok {
			if !c.All {
				continue
			}
			sym = "-"
		}
		xkbName, ok := km.KeyName(kc)
		if !ok {
			xkbName = "-"
		}
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", p.Code, p.Key, xkbName, sym)
	}
	return nil
}

func (c *Keymap) load(logger *slog.Logger, rawLogger log.RawLogger) (*xkb.Keymap, error) {
	if c.File != "" {
		src, err := os.ReadFile(c.File)
		if err != nil {
			return nil, fmt.Errorf("read keymap: %w", err)
		}
		km, err := xkb.ParseKeymap(src)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", c.File, err)
		}
		return km, nil
	}
	return nativekeymap.Load(nativekeymap.Options{
		Logger:      logger,
		Trace:       rawLogger,
		SessionType: c.SessionType,
	})
}
