//go:build linux

package nativekeymap

import (
	"bytes"
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/Alia5/keynames/internal/log"
)

// fakeCompositor answers the handful of requests the keymap client sends.
type fakeCompositor struct {
	withSeat     bool
	caps         uint32
	format       uint32
	keymap       []byte
	errorOnBind  bool
	skipKeymapFD bool
}

func (fc *fakeCompositor) start(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wayland-test")
	ln, err := net.ListenUnix("unix", &net.UnixAddr{Name: path, Net: "unix"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	t.Setenv(waylandDisplayEnv, path)

	go func() {
		conn, err := ln.AcceptUnix()
		if err != nil {
			return
		}
		defer conn.Close()
		fc.serve(t, conn)
	}()
}

func (fc *fakeCompositor) serve(t *testing.T, conn *net.UnixConn) {
	var registry, seat uint32
	announced := false
	var buf []byte
	data := make([]byte, 4096)

	send := func(id uint32, opcode uint16, args *encoder) {
		_, _ = conn.Write(encodeMessage(id, opcode, args.buf))
	}

	for {
		n, err := conn.Read(data)
		if err != nil {
			return
		}
		buf = append(buf, data[:n]...)
		for {
			m, rest, ok := decodeMessage(buf)
			if !ok {
				break
			}
			buf = append([]byte(nil), rest...)
			d := decoder{buf: m.args}

			switch {
			case m.sender == wlDisplayID && m.opcode == wlDisplayGetRegistry:
				registry = d.uint()
			case m.sender == wlDisplayID && m.opcode == wlDisplaySync:
				cb := d.uint()
				if registry != 0 && !announced {
					announced = true
					send(registry, wlRegistryGlobal, new(encoder).uint(1).string("wl_compositor").uint(6))
					if fc.withSeat {
						send(registry, wlRegistryGlobal, new(encoder).uint(9).string("wl_seat").uint(9))
					}
				}
				send(cb, wlCallbackDone, new(encoder).uint(1))
				send(wlDisplayID, wlDisplayDeleteID, new(encoder).uint(cb))
			case m.sender == registry && m.opcode == wlRegistryBind:
				name, iface, version, id := d.uint(), d.string(), d.uint(), d.uint()
				assert.Equal(t, uint32(9), name)
				assert.Equal(t, "wl_seat", iface)
				assert.Equal(t, uint32(maxSeatVersion), version)
				if fc.errorOnBind {
					send(wlDisplayID, wlDisplayError, new(encoder).uint(registry).uint(0).string("invalid object"))
					continue
				}
				seat = id
				send(seat, wlSeatCapabilities, new(encoder).uint(fc.caps))
				send(seat, 1, new(encoder).string("seat0"))
			case m.sender == seat && m.opcode == wlSeatGetKeyboard:
				kbd := d.uint()
				msg := encodeMessage(kbd, wlKeyboardKeymap, new(encoder).uint(fc.format).uint(uint32(len(fc.keymap))).buf)
				if fc.skipKeymapFD {
					_, _ = conn.Write(msg)
					continue
				}
				f, err := os.CreateTemp(t.TempDir(), "keymap")
				if !assert.NoError(t, err) {
					return
				}
				_, _ = f.Write(fc.keymap)
				_, _, err = conn.WriteMsgUnix(msg, unix.UnixRights(int(f.Fd())), nil)
				assert.NoError(t, err)
				_ = f.Close()
			}
		}
	}
}

func loadTestKeymap(t *testing.T) []byte {
	t.Helper()
	src, err := os.ReadFile("../../xkb/testdata/us.xkb")
	require.NoError(t, err)
	return append(src, 0)
}

func TestWaylandKeymap(t *testing.T) {
	fc := &fakeCompositor{withSeat: true, caps: 3, format: keymapFormatXkbV1, keymap: loadTestKeymap(t)}
	fc.start(t)

	var trace bytes.Buffer
	km, err := loadWayland(Options{Trace: log.NewRaw(&trace, "wayland")}.withDefaults())
	require.NoError(t, err)

	name, ok := km.SymbolName(38)
	require.True(t, ok)
	assert.Equal(t, "A", name)
	name, ok = km.SymbolName(133)
	require.True(t, ok)
	assert.Equal(t, "Super_L", name)

	assert.Contains(t, trace.String(), "wayland C->S")
	assert.Contains(t, trace.String(), "wayland S->C")
}

func TestWaylandFailures(t *testing.T) {
	type testCase struct {
		name string
		fc   fakeCompositor
		step Step
		err  error
	}
	cases := []testCase{
		{name: "no seat", fc: fakeCompositor{}, step: StepRegistry, err: ErrMissingGlobal},
		{name: "pointer only seat", fc: fakeCompositor{withSeat: true, caps: 1}, step: StepSeat, err: ErrNoKeyboard},
		{name: "no keymap format", fc: fakeCompositor{withSeat: true, caps: 2, format: keymapFormatNoKeymap, keymap: []byte("x")}, step: StepKeymap, err: ErrUnsupportedFormat},
		{name: "missing fd", fc: fakeCompositor{withSeat: true, caps: 2, format: keymapFormatXkbV1, keymap: []byte("x"), skipKeymapFD: true}, step: StepKeymap, err: ErrProtocol},
		{name: "display error", fc: fakeCompositor{withSeat: true, errorOnBind: true}, step: StepSeat, err: ErrProtocol},
		{name: "garbage keymap", fc: fakeCompositor{withSeat: true, caps: 2, format: keymapFormatXkbV1, keymap: []byte("not a keymap {")}, step: StepParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fc.start(t)
			_, err := loadWayland(Options{}.withDefaults())
			require.Error(t, err)

			var kerr *Error
			require.True(t, errors.As(err, &kerr), "got %v", err)
			assert.Equal(t, Wayland, kerr.Backend)
			assert.Equal(t, tc.step, kerr.Step)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestWaylandConnectRefused(t *testing.T) {
	t.Setenv(waylandDisplayEnv, filepath.Join(t.TempDir(), "missing"))
	_, err := loadWayland(Options{}.withDefaults())
	assert.ErrorIs(t, err, ErrConnect)

	t.Setenv(waylandDisplayEnv, "wayland-9")
	t.Setenv(runtimeDirEnv, "")
	_, err = loadWayland(Options{}.withDefaults())
	var kerr *Error
	require.True(t, errors.As(err, &kerr))
	assert.Equal(t, StepConnect, kerr.Step)
}
