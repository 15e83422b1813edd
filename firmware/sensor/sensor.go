// Package sensor samples the RTC and the environment sensors on fixed cadences.
package sensor

import (
	"time"

	"deskclock/firmware/timer"
	"deskclock/hal"
)

// TimeSnapshot is a broken-down RTC reading.
type TimeSnapshot struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
	Hour    int
	Minute  int
	Second  int
}

func TimeOf(t time.Time) TimeSnapshot {
	return TimeSnapshot{
		Year:    t.Year(),
		Month:   t.Month(),
		Day:     t.Day(),
		Weekday: t.Weekday(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
}

// ClockKey identifies the hour and minute.
func (t TimeSnapshot) ClockKey() int { return t.Hour*100 + t.Minute }

// EnvSnapshot is the latest environment reading.
type EnvSnapshot struct {
	Temperature float32 // °C
	Humidity    float32 // %RH
	Pressure    int32   // hPa
	HasPressure bool
	SampledAt   uint32
}

// Cadence sets the minimum spacing between reads.
type Cadence struct {
	ClockMs uint32
	EnvMs   uint32
}

var DefaultCadence = Cadence{ClockMs: 1000, EnvMs: 2000}

// Sampler throttles sensor reads. It always returns the latest snapshot; it
// never decides whether anything changed.
type Sampler struct {
	rtc     hal.RTC
	hygro   hal.Hygrometer
	baro    hal.Barometer
	baroOK  bool
	cadence Cadence

	clockCP timer.Checkpoint
	envCP   timer.Checkpoint
	time    TimeSnapshot
	env     EnvSnapshot
}

// NewSampler probes the barometer once. A nil or absent barometer leaves the
// hygrometer as the only temperature source.
func NewSampler(rtc hal.RTC, hygro hal.Hygrometer, baro hal.Barometer, cadence Cadence) *Sampler {
	s := &Sampler{rtc: rtc, hygro: hygro, baro: baro, cadence: cadence}
	if baro != nil {
		s.baroOK = baro.Configure()
	}
	return s
}

func (s *Sampler) HasBarometer() bool { return s.baroOK }

// Time reads the RTC when the clock cadence elapsed since the last good read.
func (s *Sampler) Time(now uint32) TimeSnapshot {
	if s.rtc == nil || !s.clockCP.Due(now, s.cadence.ClockMs) {
		return s.time
	}
	t, err := s.rtc.ReadTime()
	if err != nil {
		return s.time
	}
	s.time = TimeOf(t)
	s.clockCP.Mark(now)
	return s.time
}

// Environment reads temperature, humidity and pressure together when the
// environment cadence elapsed since the last good read. Channels that fail
// keep their previous value.
func (s *Sampler) Environment(now uint32) EnvSnapshot {
	if !s.envCP.Due(now, s.cadence.EnvMs) {
		return s.env
	}
	ok := false
	if s.hygro != nil {
		if t, h, err := s.hygro.ReadTemperatureHumidity(); err == nil {
			s.env.Temperature = t
			s.env.Humidity = h
			ok = true
		}
	}
	if s.baroOK {
		if t, err := s.baro.ReadTemperature(); err == nil {
			s.env.Temperature = t
			ok = true
		}
		if pa, err := s.baro.ReadPressure(); err == nil {
			s.env.Pressure = (pa + 50) / 100
			s.env.HasPressure = true
			ok = true
		}
	}
	if ok {
		s.env.SampledAt = now
		s.envCP.Mark(now)
	}
	return s.env
}

// Invalidate makes the next calls read fresh values.
func (s *Sampler) Invalidate() {
	s.clockCP.Expire()
	s.envCP.Expire()
}
