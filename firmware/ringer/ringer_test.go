package ringer

import (
	"testing"

	"deskclock/hal/haltest"
)

var threeNotes = Melody{{440, 4}, {494, 8}, {523, 4}}

func TestNoteTiming(t *testing.T) {
	wantDur := []uint32{250, 125, 250}
	wantPause := []float64{262.5, 131.25, 262.5}
	for i, n := range threeNotes {
		if got := n.DurationMs(); got != wantDur[i] {
			t.Fatalf("note %d: DurationMs() = %d, want %d", i, got, wantDur[i])
		}
		if got := n.PauseMs(); got != wantPause[i] {
			t.Fatalf("note %d: PauseMs() = %v, want %v", i, got, wantPause[i])
		}
	}
}

func TestRingerSequencesAndWraps(t *testing.T) {
	bz := &haltest.Buzzer{}
	r := New(bz, threeNotes)

	r.Tick(1000, true)
	if len(bz.Tones) != 1 || bz.Tones[0] != (haltest.Tone{Frequency: 440, DurationMs: 250}) {
		t.Fatalf("first tick tones = %v", bz.Tones)
	}
	if got := r.Cursor(); got != (Cursor{Index: 1, Pause: 262.5}) {
		t.Fatalf("Cursor() = %+v", got)
	}

	r.Tick(1262, true)
	if len(bz.Tones) != 1 {
		t.Fatalf("next note started before the pause elapsed")
	}
	r.Tick(1263, true)
	if len(bz.Tones) != 2 || bz.Tones[1].Frequency != 494 {
		t.Fatalf("second note = %v", bz.Tones)
	}
	r.Tick(1263+132, true)
	if got := r.Cursor(); got.Index != 0 {
		t.Fatalf("cursor after the third note = %+v, want index 0", got)
	}
	if bz.Stops != 3 {
		t.Fatalf("Stops = %d, want one per note", bz.Stops)
	}
}

func TestRingerResetsWhenInactive(t *testing.T) {
	bz := &haltest.Buzzer{}
	r := New(bz, threeNotes)
	r.Tick(0, true)
	r.Tick(300, true)

	r.Tick(400, false)
	if got := r.Cursor(); got != (Cursor{}) {
		t.Fatalf("Cursor() = %+v after the alarm ended, want zero", got)
	}
	stops := bz.Stops
	r.Tick(500, false)
	if bz.Stops != stops {
		t.Fatalf("inactive ticks keep stopping the buzzer")
	}

	r.Tick(600, true)
	if bz.Tones[len(bz.Tones)-1].Frequency != 440 {
		t.Fatalf("restarted melody did not begin at the first note")
	}
}

func TestRestStopsWithoutTone(t *testing.T) {
	bz := &haltest.Buzzer{}
	r := New(bz, Melody{{0, 8}, {440, 8}})
	r.Tick(0, true)
	if len(bz.Tones) != 0 || bz.Stops != 1 {
		t.Fatalf("rest: tones=%v stops=%d", bz.Tones, bz.Stops)
	}
	if r.Cursor().Pause != 131.25 {
		t.Fatalf("rest pause = %v", r.Cursor().Pause)
	}
}

func TestRingerAcrossCounterWrap(t *testing.T) {
	bz := &haltest.Buzzer{}
	r := New(bz, threeNotes)
	start := uint32(0xFFFFFF00)
	r.Tick(start, true)
	r.Tick(start+263, true) // wraps past zero
	if len(bz.Tones) != 2 {
		t.Fatalf("tones = %d, want 2 across the counter wrap", len(bz.Tones))
	}
}
