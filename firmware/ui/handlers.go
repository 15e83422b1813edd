package ui

import "deskclock/firmware/menu"

type homeMode struct{}

func (homeMode) enter(d *Device, now uint32) {
	d.Home.DrawShell(d.Canvas)
	d.Sampler.Invalidate()
	d.Ringer.Reset()
	d.setLED(false)
}

func (homeMode) tick(d *Device, now uint32) Mode {
	d.Pad.Poll() // buttons have no function here
	t := d.Sampler.Time(now)
	if d.Home.RenderTime(d.Canvas, t) {
		d.setLED(!d.ledOn)
	}
	d.Home.RenderEnvironment(d.Canvas, d.Sampler.Environment(now), d.Config.Unit)

	ringing := t.Hour == int(d.Config.AlarmHour) && t.Minute == int(d.Config.AlarmMinute)
	d.Ringer.Tick(now, ringing)
	return Home
}

func (homeMode) edge(*Device, uint32) Mode { return Menu }

func (homeMode) exit(d *Device) {
	d.Ringer.Reset()
	d.setLED(true)
}

type menuMode struct{}

func (menuMode) enter(d *Device, now uint32) {
	// Presses latched by the previous mode must not move the fresh selection.
	d.Pad.Poll()
	d.Nav.Enter(d.Canvas, now)
	d.setLED(true)
}

func (menuMode) tick(d *Device, now uint32) Mode {
	up, down := d.Pad.Poll()
	if d.Nav.Tick(d.Canvas, up, down, now) {
		d.logf("ui: menu idle")
		return Home
	}
	return Menu
}

func (menuMode) edge(d *Device, _ uint32) Mode {
	switch d.Nav.Selection() {
	case menu.ItemHome:
		return Home
	case menu.ItemAlarm:
		return AlarmHourEdit
	case menu.ItemConfig:
		return ConfigEdit
	default:
		d.reboot()
		return Menu
	}
}

func (menuMode) exit(*Device) {}

type alarmHourMode struct{}

func (alarmHourMode) enter(d *Device, now uint32) {
	d.Alarm.Enter(d.Canvas, &d.Config, now)
}

func (alarmHourMode) tick(d *Device, now uint32) Mode {
	up, down := d.Pad.Poll()
	d.Alarm.Tick(d.Canvas, up, down, now)
	return AlarmHourEdit
}

func (alarmHourMode) edge(d *Device, now uint32) Mode {
	d.Alarm.Advance(d.Canvas, now)
	return AlarmMinuteEdit
}

func (alarmHourMode) exit(*Device) {}

// alarmMinuteMode shares the alarm shell with alarmHourMode.
type alarmMinuteMode struct{}

func (alarmMinuteMode) enter(*Device, uint32) {}

func (alarmMinuteMode) tick(d *Device, now uint32) Mode {
	up, down := d.Pad.Poll()
	d.Alarm.Tick(d.Canvas, up, down, now)
	return AlarmMinuteEdit
}

func (alarmMinuteMode) edge(d *Device, now uint32) Mode {
	if !d.Alarm.Advance(d.Canvas, now) {
		return AlarmMinuteEdit
	}
	d.commit()
	return Menu
}

func (alarmMinuteMode) exit(*Device) {}

type configMode struct{}

func (configMode) enter(d *Device, now uint32) {
	d.Setup.Enter(d.Canvas, &d.Config, now)
}

func (configMode) tick(d *Device, now uint32) Mode {
	up, down := d.Pad.Poll()
	d.Setup.Tick(d.Canvas, up, down, now)
	return ConfigEdit
}

func (configMode) edge(d *Device, now uint32) Mode {
	d.Setup.Advance(d.Canvas, now)
	d.commit()
	return Menu
}

func (configMode) exit(*Device) {}
