package nativekeymap

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/Alia5/keynames/xkb"
)

const xkbExtensionName = "XKEYBOARD"

// loadX11 reads the core keyboard mapping of the X server named by $DISPLAY.
func loadX11(opts Options) (*xkb.Keymap, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, &Error{Backend: X11, Step: StepConnect, Err: fmt.Errorf("%w: %w", ErrConnect, err)}
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) == 0 {
		return nil, &Error{Backend: X11, Step: StepRegistry, Err: fmt.Errorf("%w: no screens", ErrMissingGlobal)}
	}

	ext, err := xproto.QueryExtension(conn, uint16(len(xkbExtensionName)), xkbExtensionName).Reply()
	switch {
	case err != nil:
		opts.Logger.Debug("querying XKEYBOARD extension failed", "error", err)
	case !ext.Present:
		opts.Logger.Debug("XKEYBOARD extension absent, using core keyboard mapping")
	default:
		opts.Logger.Debug("XKEYBOARD extension present", "major_opcode", ext.MajorOpcode)
	}

	first, last := setup.MinKeycode, setup.MaxKeycode
	if last < first {
		return nil, &Error{Backend: X11, Step: StepSeat, Err: ErrNoKeyboard}
	}
	count := byte(int(last) - int(first) + 1)
	reply, err := xproto.GetKeyboardMapping(conn, first, count).Reply()
	if err != nil {
		return nil, &Error{Backend: X11, Step: StepKeymap, Err: err}
	}
	if reply.KeysymsPerKeycode == 0 {
		return nil, &Error{Backend: X11, Step: StepSeat, Err: ErrNoKeyboard}
	}
	return coreKeymap(first, reply.KeysymsPerKeycode, reply.Keysyms), nil
}

// coreKeymap folds a GetKeyboardMapping reply into a keymap. Trailing
// NoSymbol levels are dropped and keycodes without symbols are skipped.
func coreKeymap(first xproto.Keycode, perKeycode byte, syms []xproto.Keysym) *xkb.Keymap {
	per := int(perKeycode)
	levels := map[uint32][]xkb.Keysym{}
	for i := 0; per > 0 && (i+1)*per <= len(syms); i++ {
		row := syms[i*per : (i+1)*per]
		n := len(row)
		for n > 0 && row[n-1] == 0 {
			n--
		}
		if n == 0 {
			continue
		}
		out := make([]xkb.Keysym, n)
		for j := range out {
			out[j] = xkb.Keysym(row[j])
		}
		levels[uint32(first)+uint32(i)] = out
	}
	return xkb.NewKeymap(levels)
}
