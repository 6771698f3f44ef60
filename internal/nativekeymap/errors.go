package nativekeymap

import (
	"errors"
	"fmt"
)

var (
	ErrConnect           = errors.New("connection refused")
	ErrMissingGlobal     = errors.New("required server object missing")
	ErrNoKeyboard        = errors.New("seat has no keyboard capability")
	ErrUnsupportedFormat = errors.New("unsupported keymap format")
	ErrProtocol          = errors.New("protocol error")
	ErrUnsupported       = errors.New("native keymaps are only available on linux")
)

// Backend is a windowing system the keymap can be fetched from.
type Backend uint8

const (
	Wayland Backend = iota
	X11
)

func (b Backend) String() string {
	switch b {
	case Wayland:
		return "wayland"
	case X11:
		return "x11"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// Step is the handshake step an acquisition failed in.
type Step uint8

const (
	StepConnect Step = iota
	StepRegistry
	StepSeat
	StepKeymap
	StepParse
)

var stepNames = [...]string{
	StepConnect:  "connect",
	StepRegistry: "registry",
	StepSeat:     "seat",
	StepKeymap:   "keymap",
	StepParse:    "parse",
}

func (s Step) String() string {
	if int(s) < len(stepNames) {
		return stepNames[s]
	}
	return fmt.Sprintf("Step(%d)", uint8(s))
}

// Error describes a failed keymap acquisition.
type Error struct {
	Backend Backend
	Step    Step
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s keymap: %s: %v", e.Backend, e.Step, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
