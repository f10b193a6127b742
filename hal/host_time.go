//go:build !tinygo

package hal

import (
	"sync/atomic"
	"time"
)

// hostClock is the system clock plus the correction learned from the last
// successful time sync.
type hostClock struct {
	boot   time.Time
	offset atomic.Int64
}

func newHostClock() *hostClock {
	return &hostClock{boot: time.Now()}
}

func (c *hostClock) Now() time.Time {
	return time.Now().Add(time.Duration(c.offset.Load())).UTC()
}

func (c *hostClock) Monotonic() time.Duration { return time.Since(c.boot) }

func (c *hostClock) Sleep(d time.Duration) { time.Sleep(d) }

func (c *hostClock) adjust(offset time.Duration) {
	c.offset.Store(int64(offset))
}
