package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/keynames/hid"
	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/scancode"
)

// ErrCheckFailed is returned when any table violates its invariants.
var ErrCheckFailed = errors.New("table check failed")

// Check validates every platform table and the HID adapter.
type Check struct{}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger, out io.Writer) error {
	var errs []error
	for _, p := range scancode.Platforms() {
		tbl := scancode.For(p)
		if err := tbl.Validate(); err != nil {
			errs = append(errs, err)
			fmt.Fprintf(out, "%-8s FAIL %v\n", p, err)
			continue
		}
		fmt.Fprintf(out, "%-8s ok   %d codes, %d keys\n", p, len(tbl.Forward()), len(tbl.Reverse()))
	}

	if err := checkHID(); err != nil {
		errs = append(errs, err)
		fmt.Fprintf(out, "%-8s FAIL %v\n", "hid", err)
	} else {
		fmt.Fprintf(out, "%-8s ok\n", "hid")
	}

	if len(errs) > 0 {
		logger.Error("Table check failed", "failures", len(errs))
		return fmt.Errorf("%w: %w", ErrCheckFailed, errors.Join(errs...))
	}
	return nil
}

func checkHID() error {
	for _, k := range keys.All() {
		u, ok := hid.FromKey(k)
		if !ok {
			continue
		}
		back, ok := hid.ToKey(u)
		if !ok || back != k {
			return fmt.Errorf("usage 0x%02X of %s decodes to %s", uint8(u), k, back)
		}
		code, ok := hid.MobileCode(k)
		if !ok {
			return fmt.Errorf("%s has a usage but no mobile key code", k)
		}
		if mk, ok := hid.FromMobileCode(code); !ok || mk != k {
			return fmt.Errorf("mobile key code %d of %s decodes to %s", code, k, mk)
		}
	}
	return nil
}
