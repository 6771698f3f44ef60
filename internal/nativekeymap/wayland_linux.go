//go:build linux

package nativekeymap

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/Alia5/keynames/internal/log"
	"github.com/Alia5/keynames/xkb"
)

const (
	waylandDisplayEnv = "WAYLAND_DISPLAY"
	runtimeDirEnv     = "XDG_RUNTIME_DIR"
	defaultDisplay    = "wayland-0"
)

// waylandSocketPath resolves the compositor socket the way libwayland does.
func waylandSocketPath() (string, error) {
	name := os.Getenv(waylandDisplayEnv)
	if name == "" {
		name = defaultDisplay
	}
	if filepath.IsAbs(name) {
		return name, nil
	}
	dir := os.Getenv(runtimeDirEnv)
	if dir == "" {
		return "", fmt.Errorf("%s not set", runtimeDirEnv)
	}
	return filepath.Join(dir, name), nil
}

type global struct {
	name    uint32
	iface   string
	version uint32
}

type waylandClient struct {
	conn   *net.UnixConn
	trace  log.RawLogger
	nextID uint32
	buf    []byte
	fds    []int
}

func loadWayland(opts Options) (*xkb.Keymap, error) {
	path, err := waylandSocketPath()
	if err != nil {
		return nil, &Error{Backend: Wayland, Step: StepConnect, Err: fmt.Errorf("%w: %w", ErrConnect, err)}
	}
	conn, err := net.DialUnix("unix", nil, &net.UnixAddr{Name: path, Net: "unix"})
	if err != nil {
		return nil, &Error{Backend: Wayland, Step: StepConnect, Err: fmt.Errorf("%w: %w", ErrConnect, err)}
	}
	c := &waylandClient{conn: conn, trace: opts.Trace, nextID: wlDisplayID + 1}
	defer c.close()

	opts.Logger.Debug("connected to wayland compositor", "socket", path)
	return c.fetchKeymap()
}

func (c *waylandClient) close() {
	for _, fd := range c.fds {
		_ = unix.Close(fd)
	}
	c.fds = nil
	_ = c.conn.Close()
}

func (c *waylandClient) newID() uint32 {
	id := c.nextID
	c.nextID++
	return id
}

func (c *waylandClient) send(id uint32, opcode uint16, args *encoder) error {
	var payload []byte
	if args != nil {
		payload = args.buf
	}
	msg := encodeMessage(id, opcode, payload)
	c.trace.Log(true, msg)
	_, err := c.conn.Write(msg)
	return err
}

// roundtrip issues wl_display.sync and dispatches every event to handle
// until the callback fires.
func (c *waylandClient) roundtrip(step Step, handle func(message) error) error {
	cb := c.newID()
	if err := c.send(wlDisplayID, wlDisplaySync, new(encoder).uint(cb)); err != nil {
		return &Error{Backend: Wayland, Step: step, Err: err}
	}

	var data [4096]byte
	var oob [256]byte
	for {
		for {
			m, rest, ok := decodeMessage(c.buf)
			if !ok {
				break
			}
			done, err := c.dispatch(m, cb, handle)
			c.buf = c.buf[:copy(c.buf, rest)]
			if err != nil {
				return wrapStep(step, err)
			}
			if done {
				return nil
			}
		}

		n, oobn, _, _, err := c.conn.ReadMsgUnix(data[:], oob[:])
		if err != nil {
			return &Error{Backend: Wayland, Step: step, Err: err}
		}
		if n == 0 {
			return &Error{Backend: Wayland, Step: step, Err: fmt.Errorf("%w: compositor closed the connection", ErrProtocol)}
		}
		c.trace.Log(false, data[:n])
		c.buf = append(c.buf, data[:n]...)
		if oobn > 0 {
			fds, err := parseRights(oob[:oobn])
			if err != nil {
				return &Error{Backend: Wayland, Step: step, Err: err}
			}
			c.fds = append(c.fds, fds...)
		}
	}
}

func wrapStep(step Step, err error) error {
	var kerr *Error
	if errors.As(err, &kerr) {
		return err
	}
	return &Error{Backend: Wayland, Step: step, Err: err}
}

func (c *waylandClient) dispatch(m message, cb uint32, handle func(message) error) (bool, error) {
	switch {
	case m.sender == wlDisplayID && m.opcode == wlDisplayError:
		d := decoder{buf: m.args}
		obj, code, msg := d.uint(), d.uint(), d.string()
		return false, fmt.Errorf("%w: object %d error %d: %s", ErrProtocol, obj, code, msg)
	case m.sender == wlDisplayID:
		return false, nil
	case m.sender == cb && m.opcode == wlCallbackDone:
		return true, nil
	}
	return false, handle(m)
}

func parseRights(oob []byte) ([]int, error) {
	msgs, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil, err
	}
	var fds []int
	for i := range msgs {
		rights, err := unix.ParseUnixRights(&msgs[i])
		if err != nil {
			continue
		}
		fds = append(fds, rights...)
	}
	return fds, nil
}

func (c *waylandClient) takeFD() (int, bool) {
	if len(c.fds) == 0 {
		return -1, false
	}
	fd := c.fds[0]
	c.fds = c.fds[1:]
	return fd, true
}

func (c *waylandClient) fetchKeymap() (*xkb.Keymap, error) {
	registry := c.newID()
	if err := c.send(wlDisplayID, wlDisplayGetRegistry, new(encoder).uint(registry)); err != nil {
		return nil, &Error{Backend: Wayland, Step: StepRegistry, Err: err}
	}

	var seat *global
	err := c.roundtrip(StepRegistry, func(m message) error {
		if m.sender != registry || m.opcode != wlRegistryGlobal {
			return nil
		}
		d := decoder{buf: m.args}
		g := global{name: d.uint(), iface: d.string(), version: d.uint()}
		if d.err != nil {
			return fmt.Errorf("%w: wl_registry.global: %w", ErrProtocol, d.err)
		}
		if g.iface == "wl_seat" && seat == nil {
			seat = &g
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if seat == nil {
		return nil, &Error{Backend: Wayland, Step: StepRegistry, Err: fmt.Errorf("%w: wl_seat", ErrMissingGlobal)}
	}

	seatID := c.newID()
	version := min(seat.version, maxSeatVersion)
	bind := new(encoder).uint(seat.name).string("wl_seat").uint(version).uint(seatID)
	if err := c.send(registry, wlRegistryBind, bind); err != nil {
		return nil, &Error{Backend: Wayland, Step: StepSeat, Err: err}
	}

	var caps uint32
	err = c.roundtrip(StepSeat, func(m message) error {
		if m.sender == seatID && m.opcode == wlSeatCapabilities {
			d := decoder{buf: m.args}
			caps = d.uint()
			return d.err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if caps&wlSeatCapKeyboard == 0 {
		return nil, &Error{Backend: Wayland, Step: StepSeat, Err: ErrNoKeyboard}
	}

	keyboard := c.newID()
	if err := c.send(seatID, wlSeatGetKeyboard, new(encoder).uint(keyboard)); err != nil {
		return nil, &Error{Backend: Wayland, Step: StepKeymap, Err: err}
	}

	var text []byte
	received := false
	err = c.roundtrip(StepKeymap, func(m message) error {
		if m.sender != keyboard || m.opcode != wlKeyboardKeymap {
			return nil
		}
		d := decoder{buf: m.args}
		format, size := d.uint(), d.uint()
		if d.err != nil {
			return fmt.Errorf("%w: wl_keyboard.keymap: %w", ErrProtocol, d.err)
		}
		fd, ok := c.takeFD()
		if !ok {
			return fmt.Errorf("%w: keymap event without file descriptor", ErrProtocol)
		}
		defer unix.Close(fd)
		if format != keymapFormatXkbV1 {
			return &Error{Backend: Wayland, Step: StepKeymap, Err: fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)}
		}
		b, err := readSharedKeymap(fd, int(size))
		if err != nil {
			return err
		}
		text, received = b, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !received {
		return nil, &Error{Backend: Wayland, Step: StepKeymap, Err: fmt.Errorf("%w: no keymap sent", ErrProtocol)}
	}

	km, err := xkb.ParseKeymap(text)
	if err != nil {
		return nil, &Error{Backend: Wayland, Step: StepParse, Err: err}
	}
	return km, nil
}

// readSharedKeymap copies the keymap out of the compositor's shared buffer.
func readSharedKeymap(fd, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: empty keymap", ErrProtocol)
	}
	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap keymap: %w", err)
	}
	defer unix.Munmap(mem)
	out := make([]byte, size)
	copy(out, mem)
	return out, nil
}
