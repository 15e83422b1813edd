// Package ui is the top-level state machine: it owns the device state and
// dispatches each tick to the handler of the active mode.
package ui

import "fmt"

// Mode is the active screen.
type Mode uint8

const (
	Menu Mode = iota
	Home
	AlarmHourEdit
	AlarmMinuteEdit
	ConfigEdit

	modeCount
)

func (m Mode) String() string {
	switch m {
	case Menu:
		return "MENU"
	case Home:
		return "HOME"
	case AlarmHourEdit:
		return "ALARM_HOUR_EDIT"
	case AlarmMinuteEdit:
		return "ALARM_MIN_EDIT"
	case ConfigEdit:
		return "CONFIG_EDIT"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// handler implements one mode. tick and edge return the next mode; returning
// the current mode stays in it.
type handler interface {
	enter(d *Device, now uint32)
	tick(d *Device, now uint32) Mode
	edge(d *Device, now uint32) Mode
	exit(d *Device)
}
