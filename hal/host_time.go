//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

type hostClock struct {
	start time.Time
	now   func() time.Time
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now(), now: time.Now}
}

// Millis truncates to 32 bits, wrapping like the board counter.
func (c *hostClock) Millis() uint32 {
	return uint32(c.now().Sub(c.start).Milliseconds())
}

// hostRTC follows the system clock plus an offset set through SetTime.
type hostRTC struct {
	mu     sync.Mutex
	offset time.Duration
	now    func() time.Time
}

func (r *hostRTC) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *hostRTC) ReadTime() (time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock().Add(r.offset), nil
}

func (r *hostRTC) SetTime(t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = t.Sub(r.clock())
	return nil
}

func (r *hostRTC) IsTimeValid() bool { return true }
