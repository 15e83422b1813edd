//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func TestSimSensorsStayInRoomRange(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 24; h++ {
		now := base.Add(time.Duration(h) * time.Hour)
		clock := func() time.Time { return now }

		temp, hum, err := newSimHygrometer(clock).ReadTemperatureHumidity()
		if err != nil {
			t.Fatalf("ReadTemperatureHumidity: %v", err)
		}
		if temp < 18 || temp > 25 {
			t.Fatalf("hour %d: temperature = %v, want 18..25", h, temp)
		}
		if hum < 35 || hum > 55 {
			t.Fatalf("hour %d: humidity = %v, want 35..55", h, hum)
		}

		p, err := newSimBarometer(clock).ReadPressure()
		if err != nil {
			t.Fatalf("ReadPressure: %v", err)
		}
		if p < 100000 || p > 102000 {
			t.Fatalf("hour %d: pressure = %d Pa, want 100000..102000", h, p)
		}
	}
}

func TestHostRTCSetTimeAppliesOffset(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := &hostRTC{now: func() time.Time { return now }}

	want := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := r.SetTime(want); err != nil {
		t.Fatalf("SetTime: %v", err)
	}
	now = now.Add(10 * time.Second)
	got, err := r.ReadTime()
	if err != nil {
		t.Fatalf("ReadTime: %v", err)
	}
	if !got.Equal(want.Add(10 * time.Second)) {
		t.Fatalf("ReadTime() = %v, want %v", got, want.Add(10*time.Second))
	}
}

func TestHostClockWraps(t *testing.T) {
	start := time.Unix(0, 0)
	now := start.Add(time.Duration(1<<32+5) * time.Millisecond)
	c := &hostClock{start: start, now: func() time.Time { return now }}
	if got := c.Millis(); got != 5 {
		t.Fatalf("Millis() = %d, want 5 after wrap", got)
	}
}
