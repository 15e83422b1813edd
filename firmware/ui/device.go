package ui

import (
	"fmt"

	"deskclock/firmware/config"
	"deskclock/firmware/editor"
	"deskclock/firmware/gfx"
	"deskclock/firmware/input"
	"deskclock/firmware/menu"
	"deskclock/firmware/render"
	"deskclock/firmware/ringer"
	"deskclock/firmware/sensor"
	"deskclock/hal"
)

// Device is all mutable firmware state. Only Signal is touched outside the
// main loop.
type Device struct {
	Config config.Config
	Mode   Mode

	Canvas  *gfx.Canvas
	Signal  *input.ModeSignal
	Pad     input.Pad
	Sampler *sensor.Sampler
	Home    *render.Home
	Nav     *menu.Navigator
	Alarm   *editor.AlarmEditor
	Setup   *editor.ConfigEditor
	Ringer  *ringer.Ringer
	Store   *config.Store

	LED      hal.LED
	Log      hal.Logger
	Resetter hal.Resetter

	ledOn  bool
	halted bool
}

func (d *Device) logf(format string, args ...any) {
	if d.Log != nil {
		d.Log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

func (d *Device) setLED(on bool) {
	if d.LED == nil {
		return
	}
	d.ledOn = on
	if on {
		d.LED.High()
	} else {
		d.LED.Low()
	}
}

// commit writes the configuration. Failures are logged and otherwise ignored.
func (d *Device) commit() {
	if d.Store == nil {
		return
	}
	if err := d.Store.Save(d.Config); err != nil {
		d.logf("ui: config save: %v", err)
		return
	}
	d.logf("ui: config saved (%s)", d.Config)
}

// reboot requests a device reset. On boards the call does not return.
func (d *Device) reboot() {
	d.logf("ui: reboot requested")
	d.halted = true
	if d.Resetter != nil {
		d.Resetter.Reset()
	}
}
