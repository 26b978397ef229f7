package cache

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// Key identifies one cached evaluation: a GridPDF identity (assigned
// by the caller, typically a small per-instance counter), a flavor,
// and the quantised bits of the query point. Quantising by raw
// float64 bits (rather than rounding) means two calls are treated as
// the same key only when they pass bit-identical coordinates.
type Key struct {
	Identity uint64
	Flavor   int
	coords   string
}

// MakeKey builds a Key from an evaluation identity, flavor and point.
func MakeKey(identity uint64, flavor int, point []float64) Key {
	var b strings.Builder
	for i, v := range point {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(math.Float64bits(v), 16))
	}
	return Key{Identity: identity, Flavor: flavor, coords: b.String()}
}

// Cache is a mutex-guarded memoisation table. The zero value is not
// usable; construct with New. Disabled-by-default behaviour is the
// caller's responsibility: package gridpdf only consults a Cache when
// config.Options.CacheEnabled is set.
type Cache struct {
	mu sync.Mutex
	m  map[Key]float64
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{m: make(map[Key]float64)}
}

// Get returns the cached value for key, if present.
func (c *Cache) Get(key Key) (float64, bool) {
	c.mu.Lock()
	v, ok := c.m[key]
	c.mu.Unlock()
	return v, ok
}

// Put stores v under key, overwriting any existing entry.
func (c *Cache) Put(key Key, v float64) {
	c.mu.Lock()
	c.m[key] = v
	c.mu.Unlock()
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	n := len(c.m)
	c.mu.Unlock()
	return n
}
