package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps raw protocol traffic, one line per chunk.
type RawLogger interface {
	Log(out bool, data []byte)
}

// rawLogger implements RawLogger with thread-safe writes.
type rawLogger struct {
	proto string
	w     io.Writer
	mu    sync.Mutex
}

// NewRaw creates a RawLogger tagging lines with proto. A nil writer yields a no-op logger.
func NewRaw(w io.Writer, proto string) RawLogger {
	return &rawLogger{w: w, proto: proto}
}

// DiscardRaw is a RawLogger that drops everything.
var DiscardRaw RawLogger = &rawLogger{}

// Log emits a single line with timestamp, direction and hex dump.
// out=true means client->server, out=false means server->client.
func (r *rawLogger) Log(out bool, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	dir := "S->C"
	if out {
		dir = "C->S"
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 && i%4 == 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s %s %d bytes: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		r.proto,
		dir,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
