package nativekeymap

import (
	"sync"

	"github.com/Alia5/keynames/xkb"
)

// Cache holds the result of a single keymap construction. The first Get
// runs the loader; every later Get returns the same keymap or error.
type Cache struct {
	once sync.Once
	load func() (*xkb.Keymap, error)
	km   *xkb.Keymap
	err  error
}

// NewCache returns a cache around load.
func NewCache(load func() (*xkb.Keymap, error)) *Cache {
	return &Cache{load: load}
}

// Get returns the cached keymap, constructing it on first use.
func (c *Cache) Get() (*xkb.Keymap, error) {
	c.once.Do(func() {
		c.km, c.err = c.load()
	})
	return c.km, c.err
}
