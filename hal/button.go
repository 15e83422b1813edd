package hal

import "sync/atomic"

// DebouncedButton turns a polled level into press edges.
//
// A level change is accepted once it has been stable for the debounce delay.
type DebouncedButton struct {
	read  func() bool
	clock Clock
	delay uint32

	raw       bool
	stable    bool
	changedAt uint32
	pressed   bool
}

// NewDebouncedButton returns a button reading read (true = pressed).
func NewDebouncedButton(read func() bool, clock Clock, delayMs uint32) *DebouncedButton {
	return &DebouncedButton{read: read, clock: clock, delay: delayMs}
}

// Poll samples the input once.
func (b *DebouncedButton) Poll() {
	if b.read == nil || b.clock == nil {
		return
	}
	now := b.clock.Millis()
	raw := b.read()
	if raw != b.raw {
		b.raw = raw
		b.changedAt = now
		return
	}
	if raw == b.stable || now-b.changedAt < b.delay {
		return
	}
	b.stable = raw
	if raw {
		b.pressed = true
	}
}

func (b *DebouncedButton) WasPressed() bool {
	b.Poll()
	p := b.pressed
	b.pressed = false
	return p
}

// VirtualButton is a button fed by Press calls from any goroutine.
type VirtualButton struct {
	presses atomic.Int32
}

func (b *VirtualButton) Press() { b.presses.Add(1) }

func (b *VirtualButton) WasPressed() bool {
	for {
		n := b.presses.Load()
		if n <= 0 {
			return false
		}
		if b.presses.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

// VirtualEdgeLine is an edge input fed by Trigger calls from any goroutine.
type VirtualEdgeLine struct {
	handler atomic.Pointer[func()]
}

func (l *VirtualEdgeLine) OnEdge(handler func()) {
	if handler == nil {
		l.handler.Store(nil)
		return
	}
	l.handler.Store(&handler)
}

// Trigger delivers one edge to the registered handler, if any.
func (l *VirtualEdgeLine) Trigger() {
	if h := l.handler.Load(); h != nil {
		(*h)()
	}
}
