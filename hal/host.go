//go:build !tinygo

package hal

import (
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	hostScreenWidth  = 160
	hostScreenHeight = 128
)

// HostConfig selects the peripherals used by the host HAL.
type HostConfig struct {
	// EEPROMPath is the file backing the config flash. Empty uses DESKCLOCK_EEPROM_PATH
	// or deskclock.eeprom.
	EEPROMPath string
	// GPIOChip enables Raspberry Pi buttons, LED and buzzer on the named gpiochip.
	GPIOChip string
	// I2CBus enables a BMP280 on /dev/i2c-N when >= 0.
	I2CBus int
	// Headless selects the oto buzzer instead of the ebiten one.
	Headless bool
}

type hostHAL struct {
	logger *hostLogger
	led    LED
	clock  *hostClock
	fb     *hostFramebuffer
	screen *FramebufferScreen
	up     Button
	down   Button
	sel    *VirtualEdgeLine
	rtc    *hostRTC
	hygro  Hygrometer
	baro   Barometer
	buzzer Buzzer
	flash  Flash
	reset  *hostResetter

	// Virtual inputs fed by the keyboard or stdin.
	vUp   *VirtualButton
	vDown *VirtualButton

	closers []func() error
}

func newHost(cfg HostConfig) *hostHAL {
	logger := newHostLogger()
	clock := newHostClock()
	fb := newHostFramebuffer(hostScreenWidth, hostScreenHeight)
	h := &hostHAL{
		logger: logger,
		led:    &hostLED{},
		clock:  clock,
		fb:     fb,
		screen: NewFramebufferScreen(fb),
		sel:    &VirtualEdgeLine{},
		rtc:    &hostRTC{},
		hygro:  newSimHygrometer(time.Now),
		baro:   newSimBarometer(time.Now),
		reset:  &hostResetter{logger: logger},
		vUp:    &VirtualButton{},
		vDown:  &VirtualButton{},
	}
	h.up = h.vUp
	h.down = h.vDown
	flash, err := openHostFlash(hostFlashPath(cfg.EEPROMPath))
	if err != nil {
		logger.WriteLineString("hal: eeprom: " + err.Error())
		flash = &hostFlash{}
	}
	h.flash = flash
	h.closers = append(h.closers, flash.Close)
	h.buzzer = newHostBuzzer(cfg.Headless, logger)

	if cfg.GPIOChip != "" {
		if err := attachPi(h, cfg.GPIOChip); err != nil {
			logger.WriteLineString("hal: gpio: " + err.Error())
		}
	}
	if cfg.I2CBus >= 0 {
		if err := attachI2C(h, cfg.I2CBus); err != nil {
			logger.WriteLineString("hal: i2c: " + err.Error())
		}
	}
	return h
}

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) LED() LED               { return h.led }
func (h *hostHAL) Clock() Clock           { return h.clock }
func (h *hostHAL) Screen() Screen         { return h.screen }
func (h *hostHAL) Up() Button             { return h.up }
func (h *hostHAL) Down() Button           { return h.down }
func (h *hostHAL) Select() EdgeLine       { return h.sel }
func (h *hostHAL) RTC() RTC               { return h.rtc }
func (h *hostHAL) Hygrometer() Hygrometer { return h.hygro }
func (h *hostHAL) Barometer() Barometer   { return h.baro }
func (h *hostHAL) Buzzer() Buzzer         { return h.buzzer }
func (h *hostHAL) Flash() Flash           { return h.flash }
func (h *hostHAL) Resetter() Resetter     { return h.reset }

// Close releases host peripherals opened by attachPi/attachI2C.
func (h *hostHAL) Close() error {
	var first error
	for i := len(h.closers) - 1; i >= 0; i-- {
		if err := h.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	h.closers = nil
	return first
}

type hostLogger struct {
	entry *logrus.Entry
}

func newHostLogger() *hostLogger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &hostLogger{entry: l.WithFields(logrus.Fields{"component": "deskclock"})}
}

func (l *hostLogger) WriteLineString(s string) {
	l.entry.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.entry.Info(string(b))
}

type hostLED struct {
	mu sync.Mutex
	on bool
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}

func (l *hostLED) isOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

type hostResetter struct {
	mu      sync.Mutex
	pending bool
	logger  *hostLogger
}

func (r *hostResetter) Reset() {
	r.mu.Lock()
	r.pending = true
	r.mu.Unlock()
	r.logger.WriteLineString("hal: reset requested")
}

// takePending reports and clears a requested reset.
func (r *hostResetter) takePending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.pending
	r.pending = false
	return p
}
