// Package keynames maps native keyboard scancodes of the host platform to
// logical keys and back, and names keys and modifier combinations the way
// the host's own UI does.
//
// The host platform is selected at compile time. Tables for every platform
// are available from the scancode package regardless of the host.
package keynames

import (
	"log/slog"
	"sync/atomic"

	"github.com/Alia5/keynames/internal/log"
	"github.com/Alia5/keynames/keys"
	"github.com/Alia5/keynames/names"
	"github.com/Alia5/keynames/scancode"
)

// Modifier words shared by every platform.
const (
	CtrlStr  = "Ctrl"
	ShiftStr = "Shift"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(log.Discard())
}

// SetLogger routes the package's diagnostics to l. A nil logger silences them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Discard()
	}
	logger.Store(l)
}

func currentLogger() *slog.Logger {
	return logger.Load()
}

// DecodeScancode returns the key of a host scancode.
func DecodeScancode(sc uint32) (keys.Key, bool) {
	return scancode.For(HostPlatform).Decode(sc)
}

// EncodeScancode returns the canonical host scancode of k. It reports false
// for keys the host cannot produce.
func EncodeScancode(k keys.Key) (uint32, bool) {
	return scancode.For(HostPlatform).Encode(k)
}

// ScancodeName returns the host's name for a scancode. It never fails;
// scancodes nothing can name read "SC<n>".
func ScancodeName(sc uint32) string {
	return nativeScancodeName(sc)
}

// KeyName returns the host's name for k, or its symbolic name when the host
// has no scancode for it.
func KeyName(k keys.Key) string {
	sc, ok := EncodeScancode(k)
	if !ok {
		return k.String()
	}
	return ScancodeName(sc)
}

// ModsPrefixString renders the active modifiers in host order, for example
// "Ctrl + Shift + Alt + Win + " on Windows or "Ctrl + Option + Shift + Cmd + "
// on macOS. Every word carries its trailing separator.
func ModsPrefixString(shift, ctrl, alt, logo bool) string {
	return vocabulary.ModsPrefix(shift, ctrl, alt, logo)
}

var vocabulary = names.Vocabulary{
	Order: ModifiersOrder,
	Ctrl:  CtrlStr,
	Shift: ShiftStr,
	Alt:   AltStr,
	Logo:  LogoStr,
}
