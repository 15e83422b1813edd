// Package editor implements the modal alarm and configuration editors.
//
// Each editor is a small state machine ticked once per main-loop tick. The
// active field blinks; Up and Down adjust it with wraparound. Advance moves to
// the next field and reports when editing is complete.
package editor

import (
	"deskclock/firmware/config"
	"deskclock/firmware/gfx"
	"deskclock/firmware/render"
	"deskclock/firmware/timer"
)

// DefaultBlinkMs is the half period of the caret blink.
const DefaultBlinkMs = 500

type blinker struct {
	every   uint32
	visible bool
	cp      timer.Checkpoint
}

func (b *blinker) restart(now uint32) {
	b.visible = true
	b.cp.Mark(now)
}

// tick toggles visibility when the half period elapsed and reports a toggle.
func (b *blinker) tick(now uint32) bool {
	if !b.cp.Due(now, b.every) {
		return false
	}
	b.visible = !b.visible
	b.cp.Mark(now)
	return true
}

// AlarmField is the field being edited by the AlarmEditor.
type AlarmField uint8

const (
	HourField AlarmField = iota
	MinuteField
)

// AlarmEditor edits the alarm hour, then the alarm minute.
type AlarmEditor struct {
	cfg    *config.Config
	field  AlarmField
	blink  blinker
	hour   *render.Field
	minute *render.Field
}

func NewAlarmEditor(blinkMs uint32) *AlarmEditor {
	return &AlarmEditor{
		blink:  blinker{every: blinkMs},
		hour:   render.NewField(20, 48, 4, gfx.Cyan, render.FormatTwoDigits),
		minute: render.NewField(92, 48, 4, gfx.Cyan, render.FormatTwoDigits),
	}
}

// Enter draws the alarm shell and starts editing the hour of cfg.
func (e *AlarmEditor) Enter(c *gfx.Canvas, cfg *config.Config, now uint32) {
	e.cfg = cfg
	c.SetBackground(gfx.Black)
	c.Clear()
	c.SetTextSize(2)
	c.SetStroke(gfx.Green)
	c.Text("Set Alarm", 5, 5)
	c.SetTextSize(4)
	c.SetStroke(gfx.Cyan)
	c.Text(":", 68, 48)

	e.hour.Invalidate()
	e.minute.Invalidate()
	e.hour.Render(c, int(cfg.AlarmHour))
	e.minute.Render(c, int(cfg.AlarmMinute))
	e.field = HourField
	e.blink.restart(now)
}

func (e *AlarmEditor) Field() AlarmField { return e.field }

func (e *AlarmEditor) active() (*render.Field, int) {
	if e.field == HourField {
		return e.hour, int(e.cfg.AlarmHour)
	}
	return e.minute, int(e.cfg.AlarmMinute)
}

// Tick runs one blink step and applies the button edges.
func (e *AlarmEditor) Tick(c *gfx.Canvas, up, down bool, now uint32) {
	if e.cfg == nil {
		return
	}
	if e.blink.tick(now) {
		f, v := e.active()
		if e.blink.visible {
			f.Render(c, v)
		} else {
			f.Hide(c)
		}
	}
	if up {
		e.adjust(1)
	}
	if down {
		e.adjust(-1)
	}
	if (up || down) && e.blink.visible {
		f, v := e.active()
		f.Render(c, v)
	}
}

func (e *AlarmEditor) adjust(delta int) {
	if e.field == HourField {
		e.cfg.AlarmHour = wrap(e.cfg.AlarmHour, delta, 24)
		return
	}
	e.cfg.AlarmMinute = wrap(e.cfg.AlarmMinute, delta, 60)
}

// Advance leaves the active field drawn and moves on. It returns true when the
// minute was being edited, meaning the alarm is complete.
func (e *AlarmEditor) Advance(c *gfx.Canvas, now uint32) bool {
	if e.cfg == nil {
		return true
	}
	f, v := e.active()
	f.Render(c, v)
	if e.field == HourField {
		e.field = MinuteField
		e.blink.restart(now)
		return false
	}
	return true
}

// ConfigEditor edits the temperature unit.
type ConfigEditor struct {
	cfg   *config.Config
	blink blinker
	unit  *render.TextField
}

func NewConfigEditor(blinkMs uint32) *ConfigEditor {
	return &ConfigEditor{
		blink: blinker{every: blinkMs},
		unit:  render.NewTextField(138, 35, 2, gfx.Cyan),
	}
}

// Enter draws the config shell and starts editing cfg.
func (e *ConfigEditor) Enter(c *gfx.Canvas, cfg *config.Config, now uint32) {
	e.cfg = cfg
	c.SetBackground(gfx.Black)
	c.Clear()
	c.SetTextSize(2)
	c.SetStroke(gfx.Green)
	c.Text("Config", 50, 5)
	c.SetStroke(gfx.Yellow)
	c.Text("Tmp Unit:", 8, 35)

	e.unit.Invalidate()
	e.unit.Render(c, cfg.Unit.Glyph())
	e.blink.restart(now)
}

func (e *ConfigEditor) Tick(c *gfx.Canvas, up, down bool, now uint32) {
	if e.cfg == nil {
		return
	}
	if e.blink.tick(now) {
		if e.blink.visible {
			e.unit.Render(c, e.cfg.Unit.Glyph())
		} else {
			e.unit.Hide(c)
		}
	}
	if up {
		e.cfg.Unit = e.cfg.Unit.Toggle()
	}
	if down {
		e.cfg.Unit = e.cfg.Unit.Toggle()
	}
	if (up || down) && e.blink.visible {
		e.unit.Render(c, e.cfg.Unit.Glyph())
	}
}

// Advance leaves the unit drawn and reports that editing is complete.
func (e *ConfigEditor) Advance(c *gfx.Canvas, _ uint32) bool {
	if e.cfg != nil {
		e.unit.Render(c, e.cfg.Unit.Glyph())
	}
	return true
}

// wrap adds delta to v modulo n.
func wrap(v uint8, delta, n int) uint8 {
	r := (int(v) + delta) % n
	if r < 0 {
		r += n
	}
	return uint8(r)
}
