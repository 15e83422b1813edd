//go:build tinygo && baremetal && rp2040

package hal

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/ds3231"
	"tinygo.org/x/drivers/st7735"
	"tinygo.org/x/drivers/tone"
)

// Board wiring on a Raspberry Pi Pico (RP2040).
const (
	pinUp     = machine.GP10
	pinDown   = machine.GP11
	pinSelect = machine.GP12
	pinDHT    = machine.GP15
	pinBuzzer = machine.GP4

	pinLCDReset = machine.GP20
	pinLCDDC    = machine.GP21
	pinLCDCS    = machine.GP17
	pinLCDBL    = machine.GP22

	buttonDebounceMs = 30
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	clock  *tinyGoClock
	screen Screen
	up     Button
	down   Button
	sel    *pinEdgeLine
	rtc    RTC
	hygro  Hygrometer
	baro   Barometer
	buzzer Buzzer
	flash  Flash
}

// New returns the desk clock board HAL.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// I2C1 on GP6/GP7 carries the DS3231 and the optional BMP280.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	clock := newTinyGoClock()

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 16000000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
	})
	lcd := st7735.New(machine.SPI0, pinLCDReset, pinLCDDC, pinLCDCS, pinLCDBL)
	lcd.Configure(st7735.Config{Rotation: st7735.ROTATION_90})

	i2c := machine.I2C1
	if err := i2c.Configure(machine.I2CConfig{SDA: machine.GP6, SCL: machine.GP7, Frequency: 400 * machine.KHz}); err != nil {
		logger.WriteLineString("hal: i2c: " + err.Error())
	}
	rtc := ds3231.New(i2c)
	if !rtc.Configure() {
		logger.WriteLineString("hal: ds3231 not found")
	}

	h := &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		clock:  clock,
		screen: &lcd,
		up:     newPinButton(pinUp, clock),
		down:   newPinButton(pinDown, clock),
		sel:    newPinEdgeLine(pinSelect),
		rtc:    &rtc,
		hygro:  newDHTHygrometer(pinDHT),
		baro:   NewBMP280(i2c, BMP280Address),
		flash:  newRP2Flash(),
	}
	h.buzzer = newToneBuzzer(pinBuzzer, logger)
	return h
}

func (h *tinyGoHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHAL) LED() LED               { return h.led }
func (h *tinyGoHAL) Clock() Clock           { return h.clock }
func (h *tinyGoHAL) Screen() Screen         { return h.screen }
func (h *tinyGoHAL) Up() Button             { return h.up }
func (h *tinyGoHAL) Down() Button           { return h.down }
func (h *tinyGoHAL) Select() EdgeLine       { return h.sel }
func (h *tinyGoHAL) RTC() RTC               { return h.rtc }
func (h *tinyGoHAL) Hygrometer() Hygrometer { return h.hygro }
func (h *tinyGoHAL) Barometer() Barometer   { return h.baro }
func (h *tinyGoHAL) Buzzer() Buzzer         { return h.buzzer }
func (h *tinyGoHAL) Flash() Flash           { return h.flash }
func (h *tinyGoHAL) Resetter() Resetter     { return cpuResetter{} }

type tinyGoClock struct {
	start time.Time
}

func newTinyGoClock() *tinyGoClock { return &tinyGoClock{start: time.Now()} }

func (c *tinyGoClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

func newPinButton(pin machine.Pin, clock Clock) *DebouncedButton {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return NewDebouncedButton(func() bool { return !pin.Get() }, clock, buttonDebounceMs)
}

// pinEdgeLine delivers falling edges from a GPIO interrupt.
type pinEdgeLine struct {
	pin machine.Pin
}

func newPinEdgeLine(pin machine.Pin) *pinEdgeLine {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &pinEdgeLine{pin: pin}
}

func (l *pinEdgeLine) OnEdge(handler func()) {
	if handler == nil {
		_ = l.pin.SetInterrupt(0, nil)
		return
	}
	_ = l.pin.SetInterrupt(machine.PinFalling, func(machine.Pin) { handler() })
}

type dhtHygrometer struct {
	dev dht.Device
}

func newDHTHygrometer(pin machine.Pin) *dhtHygrometer {
	return &dhtHygrometer{dev: dht.New(pin, dht.DHT11)}
}

func (d *dhtHygrometer) ReadTemperatureHumidity() (float32, float32, error) {
	if err := d.dev.ReadMeasurements(); err != nil {
		return 0, 0, err
	}
	t, h, err := d.dev.Measurements()
	if err != nil {
		return 0, 0, err
	}
	return float32(t) / 10, float32(h) / 10, nil
}

// toneBuzzer drives a passive buzzer from a PWM slice.
type toneBuzzer struct {
	speaker tone.Speaker
	timer   *time.Timer
}

func newToneBuzzer(pin machine.Pin, logger Logger) Buzzer {
	speaker, err := tone.New(machine.PWM2, pin)
	if err != nil {
		logger.WriteLineString("hal: buzzer: " + err.Error())
		return nullBuzzer{}
	}
	return &toneBuzzer{speaker: speaker}
}

func (b *toneBuzzer) Tone(frequency uint16, durationMs uint32) {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	if frequency == 0 {
		b.speaker.Stop()
		return
	}
	b.speaker.SetPeriod(uint64(time.Second) / uint64(frequency))
	if durationMs > 0 {
		b.timer = time.AfterFunc(time.Duration(durationMs)*time.Millisecond, b.speaker.Stop)
	}
}

func (b *toneBuzzer) Stop() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.speaker.Stop()
}

type nullBuzzer struct{}

func (nullBuzzer) Tone(uint16, uint32) {}
func (nullBuzzer) Stop()               {}

type cpuResetter struct{}

func (cpuResetter) Reset() { machine.CPUReset() }
