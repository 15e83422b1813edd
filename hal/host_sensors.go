//go:build !tinygo

package hal

import (
	"math"
	"time"
)

// simHygrometer produces a slow daily-looking swing around room conditions.
type simHygrometer struct {
	now func() time.Time
}

func newSimHygrometer(now func() time.Time) *simHygrometer {
	return &simHygrometer{now: now}
}

func (s *simHygrometer) ReadTemperatureHumidity() (float32, float32, error) {
	phase := dayPhase(s.now())
	temp := 21.5 + 2.5*math.Sin(phase)
	hum := 45 + 8*math.Cos(phase)
	return float32(temp), float32(hum), nil
}

type simBarometer struct {
	now func() time.Time
}

func newSimBarometer(now func() time.Time) *simBarometer {
	return &simBarometer{now: now}
}

func (s *simBarometer) Configure() bool { return true }

func (s *simBarometer) ReadPressure() (int32, error) {
	phase := dayPhase(s.now())
	return int32(101325 + 450*math.Sin(phase*2)), nil
}

func (s *simBarometer) ReadTemperature() (float32, error) {
	phase := dayPhase(s.now())
	return float32(21.8 + 2.5*math.Sin(phase)), nil
}

func dayPhase(t time.Time) float64 {
	h, m, sec := t.Clock()
	secs := float64(h*3600 + m*60 + sec)
	return 2 * math.Pi * secs / 86400
}
