package nativekeymap

import (
	"encoding/binary"
	"errors"
)

// Wayland wire format: every message starts with the object id and a word
// holding the total size in the upper and the opcode in the lower 16 bits.
// Arguments are 32-bit words in host byte order; strings carry a length
// including the NUL terminator and are padded to 4 bytes.

const (
	wlDisplayID  = 1
	wlHeaderSize = 8

	wlDisplaySync        = 0
	wlDisplayGetRegistry = 1
	wlDisplayError       = 0
	wlDisplayDeleteID    = 1

	wlRegistryBind   = 0
	wlRegistryGlobal = 0

	wlCallbackDone = 0

	wlSeatGetKeyboard  = 1
	wlSeatCapabilities = 0
	wlSeatCapKeyboard  = 2

	wlKeyboardKeymap = 0

	keymapFormatNoKeymap = 0
	keymapFormatXkbV1    = 1

	maxSeatVersion = 5
)

var errShortMessage = errors.New("truncated message")

var order = binary.NativeEndian

type message struct {
	sender uint32
	opcode uint16
	args   []byte
}

type encoder struct{ buf []byte }

func (e *encoder) uint(v uint32) *encoder {
	e.buf = order.AppendUint32(e.buf, v)
	return e
}

func (e *encoder) string(s string) *encoder {
	e.uint(uint32(len(s) + 1))
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0)
	for len(e.buf)%4 != 0 {
		e.buf = append(e.buf, 0)
	}
	return e
}

// encodeMessage frames args as a request on object id.
func encodeMessage(id uint32, opcode uint16, args []byte) []byte {
	out := make([]byte, 0, wlHeaderSize+len(args))
	out = order.AppendUint32(out, id)
	out = order.AppendUint32(out, uint32(wlHeaderSize+len(args))<<16|uint32(opcode))
	return append(out, args...)
}

// decodeMessage splits the first complete message off buf.
func decodeMessage(buf []byte) (message, []byte, bool) {
	if len(buf) < wlHeaderSize {
		return message{}, buf, false
	}
	word := order.Uint32(buf[4:])
	size := int(word >> 16)
	if size < wlHeaderSize || len(buf) < size {
		return message{}, buf, false
	}
	m := message{
		sender: order.Uint32(buf),
		opcode: uint16(word),
		args:   buf[wlHeaderSize:size],
	}
	return m, buf[size:], true
}

type decoder struct {
	buf []byte
	err error
}

func (d *decoder) uint() uint32 {
	if d.err != nil {
		return 0
	}
	if len(d.buf) < 4 {
		d.err = errShortMessage
		return 0
	}
	v := order.Uint32(d.buf)
	d.buf = d.buf[4:]
	return v
}

func (d *decoder) string() string {
	n := int(d.uint())
	if d.err != nil || n == 0 {
		return ""
	}
	padded := (n + 3) &^ 3
	if len(d.buf) < padded {
		d.err = errShortMessage
		return ""
	}
	s := string(d.buf[:n-1])
	d.buf = d.buf[padded:]
	return s
}
