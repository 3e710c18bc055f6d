// Package bufpool provides a tiered buffer pool for framing RPC records.
//
// Management requests are small (a call header plus a short dictionary)
// while some replies, such as a large friends list, reach tens of
// kilobytes. Three size classes cover both; anything above the large
// class is allocated directly and left to the GC.
//
// Usage:
//
//	buf := bufpool.Get(size)
//	defer bufpool.Put(buf)
package bufpool

import (
	"slices"
	"sync"
)

// Default size classes.
const (
	DefaultSmallSize  = 1 << 10  // call headers and small dictionaries
	DefaultMediumSize = 16 << 10 // peer lists, fsm logs
	DefaultLargeSize  = 256 << 10
)

// Pool hands out byte slices from three size classes.
type Pool struct {
	classes [3]class
}

type class struct {
	size int
	pool sync.Pool
}

// Config overrides the size classes. Zero fields keep their default.
type Config struct {
	SmallSize  int
	MediumSize int
	LargeSize  int
}

// DefaultConfig returns the default size classes.
func DefaultConfig() Config {
	return Config{
		SmallSize:  DefaultSmallSize,
		MediumSize: DefaultMediumSize,
		LargeSize:  DefaultLargeSize,
	}
}

// NewPool creates a pool. A nil cfg uses DefaultConfig. Sizes must be
// increasing; out-of-order sizes are sorted.
func NewPool(cfg *Config) *Pool {
	c := DefaultConfig()
	if cfg != nil {
		if cfg.SmallSize > 0 {
			c.SmallSize = cfg.SmallSize
		}
		if cfg.MediumSize > 0 {
			c.MediumSize = cfg.MediumSize
		}
		if cfg.LargeSize > 0 {
			c.LargeSize = cfg.LargeSize
		}
	}

	sizes := [3]int{c.SmallSize, c.MediumSize, c.LargeSize}
	slices.Sort(sizes[:])

	p := &Pool{}
	for i, size := range sizes {
		p.classes[i].size = size
		p.classes[i].pool.New = func() any {
			buf := make([]byte, size)
			return &buf
		}
	}
	return p
}

// Get returns a slice of length size. Its capacity is the size class it
// came from, so the caller must hand the same slice back to Put.
func (p *Pool) Get(size int) []byte {
	for i := range p.classes {
		c := &p.classes[i]
		if size <= c.size {
			buf := *c.pool.Get().(*[]byte)
			return buf[:size]
		}
	}
	return make([]byte, size)
}

// Put returns buf to its class. Slices whose capacity matches no class
// are dropped.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}
	for i := range p.classes {
		c := &p.classes[i]
		if cap(buf) == c.size {
			full := buf[:cap(buf)]
			c.pool.Put(&full)
			return
		}
	}
}

// SizeClasses returns the configured class sizes, smallest first.
func (p *Pool) SizeClasses() [3]int {
	return [3]int{p.classes[0].size, p.classes[1].size, p.classes[2].size}
}

var globalPool = NewPool(nil)

// Get returns a slice of length size from the global pool.
func Get(size int) []byte { return globalPool.Get(size) }

// Put returns a slice obtained from Get to the global pool.
func Put(buf []byte) { globalPool.Put(buf) }
