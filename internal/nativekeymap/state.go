package nativekeymap

// State is the progress of the one-time keymap construction.
type State uint8

const (
	Uninitialized State = iota
	ProbingSessionType
	ConnectingWayland
	ConnectingX11
	Ready
	Failed
)

var stateNames = [...]string{
	Uninitialized:      "uninitialized",
	ProbingSessionType: "probing-session-type",
	ConnectingWayland:  "connecting-wayland",
	ConnectingX11:      "connecting-x11",
	Ready:              "ready",
	Failed:             "failed",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

func connecting(b Backend) State {
	if b == X11 {
		return ConnectingX11
	}
	return ConnectingWayland
}
