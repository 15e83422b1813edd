//go:build !tinygo && linux

package hal

import (
	"fmt"
	"sync"
	"time"

	"github.com/stianeikeland/go-rpio/v4"
	"github.com/warthog618/go-gpiocdev"
)

// Raspberry Pi wiring (BCM numbering).
const (
	piPinUp     = 5
	piPinDown   = 6
	piPinSelect = 26
	piPinLED    = 23
	piPinBuzzer = 18

	piDebounceMs = 30
)

// attachPi replaces the virtual inputs with buttons on the Pi header and drives
// the LED and buzzer through the BCM registers. Keyboard input keeps working:
// the virtual buttons are merged with the real ones.
func attachPi(h *hostHAL, chip string) error {
	up, err := gpiocdev.RequestLine(chip, piPinUp, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		return fmt.Errorf("request up pin %d: %w", piPinUp, err)
	}
	down, err := gpiocdev.RequestLine(chip, piPinDown, gpiocdev.AsInput, gpiocdev.WithPullUp)
	if err != nil {
		up.Close()
		return fmt.Errorf("request down pin %d: %w", piPinDown, err)
	}
	sel, err := gpiocdev.RequestLine(chip, piPinSelect,
		gpiocdev.AsInput,
		gpiocdev.WithPullUp,
		gpiocdev.WithFallingEdge,
		gpiocdev.WithEventHandler(func(gpiocdev.LineEvent) { h.sel.Trigger() }))
	if err != nil {
		up.Close()
		down.Close()
		return fmt.Errorf("request select pin %d: %w", piPinSelect, err)
	}
	h.closers = append(h.closers, up.Close, down.Close, sel.Close)

	h.up = anyButton{h.vUp, NewDebouncedButton(activeLow(up), h.clock, piDebounceMs)}
	h.down = anyButton{h.vDown, NewDebouncedButton(activeLow(down), h.clock, piDebounceMs)}

	if err := rpio.Open(); err != nil {
		// Buttons still work; LED and buzzer stay virtual.
		return fmt.Errorf("open bcm registers: %w", err)
	}
	led := rpio.Pin(piPinLED)
	led.Output()
	led.Low()
	bz := rpio.Pin(piPinBuzzer)
	bz.Mode(rpio.Pwm)
	h.led = piLED{pin: led}
	h.buzzer = &piBuzzer{pin: bz}
	h.closers = append(h.closers, func() error {
		led.Low()
		bz.DutyCycle(0, 32)
		return rpio.Close()
	})
	h.logger.WriteLineString("hal: raspberry pi gpio on " + chip)
	return nil
}

func activeLow(l *gpiocdev.Line) func() bool {
	return func() bool {
		v, err := l.Value()
		return err == nil && v == 0
	}
}

// anyButton reports a press when any of its buttons does. Every button is
// polled so none keeps a stale press latched.
type anyButton []Button

func (b anyButton) WasPressed() bool {
	pressed := false
	for _, btn := range b {
		if btn.WasPressed() {
			pressed = true
		}
	}
	return pressed
}

type piLED struct {
	pin rpio.Pin
}

func (l piLED) High() { l.pin.High() }
func (l piLED) Low()  { l.pin.Low() }

// piBuzzer drives a passive buzzer from the PWM0 channel at 50% duty.
type piBuzzer struct {
	mu    sync.Mutex
	pin   rpio.Pin
	timer *time.Timer
}

func (b *piBuzzer) Tone(frequency uint16, durationMs uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if frequency == 0 {
		b.pin.DutyCycle(0, 32)
		return
	}
	b.pin.Freq(int(frequency) * 32)
	b.pin.DutyCycle(16, 32)
	if durationMs > 0 {
		b.timer = time.AfterFunc(time.Duration(durationMs)*time.Millisecond, b.Stop)
	}
}

func (b *piBuzzer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.pin.DutyCycle(0, 32)
}
