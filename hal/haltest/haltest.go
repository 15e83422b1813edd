// Package haltest provides in-memory HAL doubles for tests.
package haltest

import (
	"errors"
	"image/color"
	"sync"
	"time"

	"deskclock/hal"
)

// Clock is a manually advanced millisecond counter.
type Clock struct {
	Now uint32
}

func (c *Clock) Millis() uint32 { return c.Now }

func (c *Clock) Advance(ms uint32) { c.Now += ms }

// Button reports one press per Press call.
type Button struct {
	pending int
}

func (b *Button) Press() { b.pending++ }

func (b *Button) WasPressed() bool {
	if b.pending == 0 {
		return false
	}
	b.pending--
	return true
}

// Logger records log lines.
type Logger struct {
	mu    sync.Mutex
	Lines []string
}

func (l *Logger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Lines = append(l.Lines, s)
}

func (l *Logger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

// LED records its level and the number of level changes.
type LED struct {
	On      bool
	Changes int
}

func (l *LED) High() {
	if !l.On {
		l.Changes++
	}
	l.On = true
}

func (l *LED) Low() {
	if l.On {
		l.Changes++
	}
	l.On = false
}

// RTC serves a fixed time until SetTime is called.
type RTC struct {
	T     time.Time
	Valid bool
	Err   error
	Reads int
	Sets  []time.Time
}

func (r *RTC) ReadTime() (time.Time, error) {
	r.Reads++
	if r.Err != nil {
		return time.Time{}, r.Err
	}
	return r.T, nil
}

func (r *RTC) SetTime(t time.Time) error {
	r.Sets = append(r.Sets, t)
	r.T = t
	r.Valid = true
	return nil
}

func (r *RTC) IsTimeValid() bool { return r.Valid }

// Hygrometer returns fixed readings.
type Hygrometer struct {
	Temperature float32
	Humidity    float32
	Err         error
	Reads       int
}

func (h *Hygrometer) ReadTemperatureHumidity() (float32, float32, error) {
	h.Reads++
	if h.Err != nil {
		return 0, 0, h.Err
	}
	return h.Temperature, h.Humidity, nil
}

// Barometer returns fixed readings. Present controls Configure.
type Barometer struct {
	Present     bool
	Pressure    int32
	Temperature float32
	Err         error
	Configures  int
	Reads       int
}

func (b *Barometer) Configure() bool {
	b.Configures++
	return b.Present
}

func (b *Barometer) ReadPressure() (int32, error) {
	b.Reads++
	if b.Err != nil {
		return 0, b.Err
	}
	return b.Pressure, nil
}

func (b *Barometer) ReadTemperature() (float32, error) {
	if b.Err != nil {
		return 0, b.Err
	}
	return b.Temperature, nil
}

// Tone is one recorded Buzzer.Tone call.
type Tone struct {
	Frequency  uint16
	DurationMs uint32
}

// Buzzer records tones and stops.
type Buzzer struct {
	Tones []Tone
	Stops int
}

func (b *Buzzer) Tone(frequency uint16, durationMs uint32) {
	b.Tones = append(b.Tones, Tone{frequency, durationMs})
}

func (b *Buzzer) Stop() { b.Stops++ }

// Resetter counts reset requests.
type Resetter struct {
	Resets int
}

func (r *Resetter) Reset() { r.Resets++ }

var ErrFlashRange = errors.New("haltest: flash access out of range")

// Flash is NOR flash in memory: erase sets bytes to 0xFF, writes only clear bits.
type Flash struct {
	Data   []byte
	Block  uint32
	Erases int
	Writes int
}

func NewFlash(size, block uint32) *Flash {
	f := &Flash{Data: make([]byte, size), Block: block}
	for i := range f.Data {
		f.Data[i] = 0xFF
	}
	return f
}

func (f *Flash) SizeBytes() uint32       { return uint32(len(f.Data)) }
func (f *Flash) EraseBlockBytes() uint32 { return f.Block }

func (f *Flash) ReadAt(p []byte, off uint32) (int, error) {
	if int(off)+len(p) > len(f.Data) {
		return 0, ErrFlashRange
	}
	return copy(p, f.Data[off:]), nil
}

func (f *Flash) WriteAt(p []byte, off uint32) (int, error) {
	if int(off)+len(p) > len(f.Data) {
		return 0, ErrFlashRange
	}
	for i, b := range p {
		if f.Data[int(off)+i]&b != b {
			return 0, hal.ErrFlashWriteRequiresErase
		}
	}
	f.Writes++
	return copy(f.Data[off:], p), nil
}

func (f *Flash) Erase(off, size uint32) error {
	if f.Block == 0 || off%f.Block != 0 || size%f.Block != 0 || int(off+size) > len(f.Data) {
		return ErrFlashRange
	}
	for i := off; i < off+size; i++ {
		f.Data[i] = 0xFF
	}
	f.Erases++
	return nil
}

// Screen is a pixel buffer that counts draw calls.
type Screen struct {
	W, H     int16
	Pix      []color.RGBA
	Pixels   int // SetPixel calls
	Fills    int // FillRectangle calls
	Displays int
}

func NewScreen(w, h int16) *Screen {
	return &Screen{W: w, H: h, Pix: make([]color.RGBA, int(w)*int(h))}
}

func (s *Screen) Size() (int16, int16) { return s.W, s.H }

func (s *Screen) SetPixel(x, y int16, c color.RGBA) {
	s.Pixels++
	s.set(x, y, c)
}

func (s *Screen) set(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return
	}
	s.Pix[int(y)*int(s.W)+int(x)] = c
}

func (s *Screen) Display() error {
	s.Displays++
	return nil
}

func (s *Screen) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	s.Fills++
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			s.set(xx, yy, c)
		}
	}
	return nil
}

// At returns the pixel at (x, y), or the zero color outside the screen.
func (s *Screen) At(x, y int16) color.RGBA {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return color.RGBA{}
	}
	return s.Pix[int(y)*int(s.W)+int(x)]
}

// Ops is the number of drawing calls so far.
func (s *Screen) Ops() int { return s.Pixels + s.Fills }

// Count returns how many pixels inside the rectangle have color c.
func (s *Screen) Count(x, y, w, h int16, c color.RGBA) int {
	n := 0
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if s.At(xx, yy) == c {
				n++
			}
		}
	}
	return n
}

// HAL bundles the doubles into a hal.HAL.
type HAL struct {
	Log     *Logger
	Light   *LED
	Ticks   *Clock
	Disp    *Screen
	UpBtn   *Button
	DownBtn *Button
	Sel     *hal.VirtualEdgeLine
	Time    *RTC
	Hygro   *Hygrometer
	Baro    *Barometer
	Beeper  *Buzzer
	Mem     *Flash
	Reset   *Resetter
}

// New returns a HAL with a valid RTC, a present barometer and erased flash.
func New() *HAL {
	return &HAL{
		Log:     &Logger{},
		Light:   &LED{},
		Ticks:   &Clock{},
		Disp:    NewScreen(160, 128),
		UpBtn:   &Button{},
		DownBtn: &Button{},
		Sel:     &hal.VirtualEdgeLine{},
		Time:    &RTC{T: time.Date(2026, time.January, 5, 6, 59, 58, 0, time.UTC), Valid: true},
		Hygro:   &Hygrometer{Temperature: 21.4, Humidity: 48},
		Baro:    &Barometer{Present: true, Pressure: 101325, Temperature: 21.6},
		Beeper:  &Buzzer{},
		Mem:     NewFlash(4096, 1024),
		Reset:   &Resetter{},
	}
}

func (h *HAL) Logger() hal.Logger         { return h.Log }
func (h *HAL) LED() hal.LED               { return h.Light }
func (h *HAL) Clock() hal.Clock           { return h.Ticks }
func (h *HAL) Screen() hal.Screen         { return h.Disp }
func (h *HAL) Up() hal.Button             { return h.UpBtn }
func (h *HAL) Down() hal.Button           { return h.DownBtn }
func (h *HAL) Select() hal.EdgeLine       { return h.Sel }
func (h *HAL) RTC() hal.RTC               { return h.Time }
func (h *HAL) Hygrometer() hal.Hygrometer { return h.Hygro }
func (h *HAL) Barometer() hal.Barometer   { return h.Baro }
func (h *HAL) Buzzer() hal.Buzzer         { return h.Beeper }
func (h *HAL) Flash() hal.Flash           { return h.Mem }
func (h *HAL) Resetter() hal.Resetter     { return h.Reset }
