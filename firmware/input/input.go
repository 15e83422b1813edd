// Package input turns the select interrupt and the two buttons into per-tick events.
package input

import (
	"sync/atomic"

	"deskclock/firmware/timer"
	"deskclock/hal"
)

// DefaultDebounceMs is the minimum spacing between accepted mode-change edges.
const DefaultDebounceMs = 1000

// ModeSignal is the only state shared between the select interrupt and the main loop.
//
// Edge runs in interrupt context and is the single writer of last and accepted.
// Take runs on the main loop. pending is the hand-off between the two.
type ModeSignal struct {
	clock    hal.Clock
	debounce uint32

	pending  atomic.Bool
	accepted atomic.Bool
	last     atomic.Uint32
}

func NewModeSignal(clock hal.Clock, debounceMs uint32) *ModeSignal {
	return &ModeSignal{clock: clock, debounce: debounceMs}
}

// Edge records a raw edge. Edges closer than the debounce window to the last
// accepted edge are dropped.
func (s *ModeSignal) Edge() {
	now := s.clock.Millis()
	if s.accepted.Load() && !timer.Elapsed(now, s.last.Load(), s.debounce) {
		return
	}
	s.last.Store(now)
	s.accepted.Store(true)
	s.pending.Store(true)
}

// Take consumes a pending mode change.
func (s *ModeSignal) Take() bool {
	return s.pending.Swap(false)
}

// Attach routes the line's edges into the signal.
func (s *ModeSignal) Attach(line hal.EdgeLine) {
	line.OnEdge(s.Edge)
}

// Pad is the Up/Down button pair.
type Pad struct {
	Up   hal.Button
	Down hal.Button
}

// Poll reads both buttons once. Both are always polled so neither keeps a
// stale edge latched.
func (p Pad) Poll() (up, down bool) {
	if p.Up != nil {
		up = p.Up.WasPressed()
	}
	if p.Down != nil {
		down = p.Down.WasPressed()
	}
	return up, down
}
