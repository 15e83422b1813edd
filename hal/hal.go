package hal

import (
	"errors"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrReset is returned by the app step function after a reset was requested.
	// Host runners rebuild the app when they see it; boards never return.
	ErrReset = errors.New("device reset")

	// ErrFlashWriteRequiresErase reports a write that would set cleared bits.
	ErrFlashWriteRequiresErase = errors.New("flash write requires erase")
)

// Clock is a free-running millisecond counter.
//
// The counter wraps at 2^32; callers must compare with unsigned subtraction.
type Clock interface {
	Millis() uint32
}

// Screen is a pixel display that can also fill rectangles.
type Screen interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Button is a debounced push button polled once per tick.
type Button interface {
	// WasPressed reports a press edge since the previous call.
	WasPressed() bool
}

// EdgeLine is an input that delivers edges through a handler.
//
// The handler may run in interrupt context or on another goroutine; it must only
// touch state that is safe for concurrent access.
type EdgeLine interface {
	OnEdge(handler func())
}

// RTC is a battery-backed real-time clock.
type RTC interface {
	ReadTime() (time.Time, error)
	SetTime(t time.Time) error
	IsTimeValid() bool
}

// Hygrometer reads ambient temperature (°C) and relative humidity (%).
type Hygrometer interface {
	ReadTemperatureHumidity() (temperature float32, humidity float32, err error)
}

// Barometer is an optional higher-precision pressure/temperature sensor.
type Barometer interface {
	// Configure probes and configures the sensor. It is called once at boot.
	Configure() bool
	// ReadPressure returns the pressure in pascals.
	ReadPressure() (int32, error)
	// ReadTemperature returns the temperature in °C.
	ReadTemperature() (float32, error)
}

// Buzzer plays single square-wave tones.
type Buzzer interface {
	Tone(frequency uint16, durationMs uint32)
	Stop()
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// Resetter restarts the device. On boards it does not return.
type Resetter interface {
	Reset()
}

// HAL provides the only contact point between the firmware and the outside world.
//
// Barometer may return nil when no pressure sensor is fitted.
type HAL interface {
	Logger() Logger
	LED() LED
	Clock() Clock
	Screen() Screen
	Up() Button
	Down() Button
	Select() EdgeLine
	RTC() RTC
	Hygrometer() Hygrometer
	Barometer() Barometer
	Buzzer() Buzzer
	Flash() Flash
	Resetter() Resetter
}
