// Package timer provides wraparound-safe millisecond arithmetic over a free-running
// 32-bit counter.
package timer

// Since returns the milliseconds from then to now, modulo 2^32.
func Since(now, then uint32) uint32 {
	return now - then
}

// Elapsed reports whether at least d milliseconds passed between then and now.
func Elapsed(now, then, d uint32) bool {
	return now-then >= d
}

// Checkpoint remembers one instant. An unmarked checkpoint is always due.
type Checkpoint struct {
	at    uint32
	armed bool
}

func (c *Checkpoint) Mark(now uint32) {
	c.at = now
	c.armed = true
}

// Due reports whether d milliseconds passed since the last Mark.
func (c *Checkpoint) Due(now, d uint32) bool {
	return !c.armed || Elapsed(now, c.at, d)
}

// Expire forgets the mark so the next Due reports true.
func (c *Checkpoint) Expire() {
	c.armed = false
}

func (c *Checkpoint) Armed() bool { return c.armed }

// Since returns the time since the last Mark, or 0 when unmarked.
func (c *Checkpoint) Since(now uint32) uint32 {
	if !c.armed {
		return 0
	}
	return Since(now, c.at)
}
