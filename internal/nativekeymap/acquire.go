// Package nativekeymap fetches the active keyboard layout from the running
// Wayland compositor or X server and caches it for the process lifetime.
package nativekeymap

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/keynames/internal/log"
	"github.com/Alia5/keynames/xkb"
)

// SessionTypeEnv is the environment variable hinting at the windowing system.
const SessionTypeEnv = "XDG_SESSION_TYPE"

// Options configure a keymap acquisition.
type Options struct {
	Logger *slog.Logger
	// Trace receives raw Wayland wire traffic.
	Trace log.RawLogger
	// SessionType overrides $XDG_SESSION_TYPE when set.
	SessionType string
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.Discard()
	}
	if o.Trace == nil {
		o.Trace = log.DiscardRaw
	}
	if o.SessionType == "" {
		o.SessionType = os.Getenv(SessionTypeEnv)
	}
	return o
}

type loader func(Options) (*xkb.Keymap, error)

// backendOrder returns the backends to try. A session hint naming one
// backend puts it first; the rest follow in Wayland, X11 order.
func backendOrder(sessionType string) []Backend {
	switch strings.ToLower(strings.TrimSpace(sessionType)) {
	case "x11":
		return []Backend{X11, Wayland}
	default:
		return []Backend{Wayland, X11}
	}
}

// acquire runs the backends in order and returns the first keymap. When all
// fail, the returned error joins every *Error in attempt order.
func acquire(opts Options, loaders map[Backend]loader) (*xkb.Keymap, error) {
	logger := opts.Logger
	logger.Debug("native keymap", "state", ProbingSessionType, "session", opts.SessionType)

	var errs []error
	for _, b := range backendOrder(opts.SessionType) {
		load, ok := loaders[b]
		if !ok {
			continue
		}
		logger.Debug("native keymap", "state", connecting(b))
		km, err := load(opts)
		if err == nil {
			logger.Debug("native keymap", "state", Ready, "backend", b, "keycodes", km.Len())
			return km, nil
		}
		logger.Debug("native keymap backend failed", "backend", b, "error", err)
		errs = append(errs, err)
	}
	logger.Debug("native keymap", "state", Failed)
	if len(errs) == 0 {
		return nil, ErrUnsupported
	}
	return nil, errors.Join(errs...)
}
