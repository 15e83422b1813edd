// Package ringer plays the alarm melody while the alarm minute lasts.
package ringer

import (
	"deskclock/firmware/timer"
	"deskclock/hal"
)

// Note is one melody step. Divisor is the note value: 4 is a quarter note,
// 8 an eighth. A zero Frequency is a rest.
type Note struct {
	Frequency uint16
	Divisor   uint16
}

// DurationMs is how long the tone sounds.
func (n Note) DurationMs() uint32 {
	if n.Divisor == 0 {
		return 0
	}
	return 1000 / uint32(n.Divisor)
}

// PauseMs is the spacing to the next note.
func (n Note) PauseMs() float64 {
	return float64(n.DurationMs()) * 1.05
}

// Melody is a looping note sequence.
type Melody []Note

// Cursor is the playback position. Pause is the wait before the next note.
type Cursor struct {
	Index int
	Pause float64
}

// Ringer sequences a Melody on a buzzer.
type Ringer struct {
	buzzer hal.Buzzer
	melody Melody
	cur    Cursor
	last   uint32
}

func New(buzzer hal.Buzzer, melody Melody) *Ringer {
	return &Ringer{buzzer: buzzer, melody: melody}
}

func (r *Ringer) Cursor() Cursor { return r.cur }

// Tick advances playback while active. When not active the cursor rewinds so
// the next alarm starts from the first note.
func (r *Ringer) Tick(now uint32, active bool) {
	if !active {
		r.Reset()
		return
	}
	if len(r.melody) == 0 {
		return
	}
	if float64(timer.Since(now, r.last)) < r.cur.Pause {
		return
	}
	n := r.melody[r.cur.Index]
	r.buzzer.Stop()
	if n.Frequency != 0 {
		r.buzzer.Tone(n.Frequency, n.DurationMs())
	}
	r.last = now
	r.cur.Pause = n.PauseMs()
	r.cur.Index++
	if r.cur.Index >= len(r.melody) {
		r.cur.Index = 0
	}
}

// Reset rewinds the cursor, silencing the buzzer if a melody was playing.
func (r *Ringer) Reset() {
	if r.cur == (Cursor{}) {
		return
	}
	r.cur = Cursor{}
	r.buzzer.Stop()
}
