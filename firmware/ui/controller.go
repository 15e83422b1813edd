package ui

import (
	"time"

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

// Options are the firmware tunables.
type Options struct {
	ModeDebounceMs uint32
	MenuIdleMs     uint32
	BlinkMs        uint32
	Cadence        sensor.Cadence
	Melody         ringer.Melody

	// SplashText is typed on boot. Empty skips the splash.
	SplashText string
	Version    string

	// BuildTime seeds an RTC that lost its time.
	BuildTime      time.Time
	ForceBuildTime bool
}

func DefaultOptions() Options {
	return Options{
		ModeDebounceMs: input.DefaultDebounceMs,
		MenuIdleMs:     menu.DefaultIdleMs,
		BlinkMs:        editor.DefaultBlinkMs,
		Cadence:        sensor.DefaultCadence,
		Melody:         ringer.Pirates,
		SplashText:     "DeskClock",
	}
}

// Controller runs the mode state machine.
type Controller struct {
	d        *Device
	clock    hal.Clock
	handlers [modeCount]handler
	splash   *splash
}

// New wires the firmware to h, loads the configuration and starts the splash.
func New(h hal.HAL, opts Options) *Controller {
	log := h.Logger()
	clock := h.Clock()

	if seeded, err := SeedRTC(h.RTC(), opts.BuildTime, opts.ForceBuildTime); err != nil {
		log.WriteLineString("ui: rtc seed: " + err.Error())
	} else if seeded {
		log.WriteLineString("ui: rtc set to build time " + opts.BuildTime.Format(time.RFC3339))
	}

	store := config.NewStore(h.Flash())
	cfg, err := store.Load()
	if err != nil {
		log.WriteLineString("ui: config load: " + err.Error() + ", using " + cfg.String())
	}

	d := &Device{
		Config:   cfg,
		Mode:     Menu,
		Canvas:   gfx.NewCanvas(h.Screen()),
		Signal:   input.NewModeSignal(clock, opts.ModeDebounceMs),
		Pad:      input.Pad{Up: h.Up(), Down: h.Down()},
		Sampler:  sensor.NewSampler(h.RTC(), h.Hygrometer(), h.Barometer(), opts.Cadence),
		Home:     render.NewHome(),
		Nav:      menu.NewNavigator(opts.MenuIdleMs),
		Alarm:    editor.NewAlarmEditor(opts.BlinkMs),
		Setup:    editor.NewConfigEditor(opts.BlinkMs),
		Ringer:   ringer.New(h.Buzzer(), opts.Melody),
		Store:    store,
		LED:      h.LED(),
		Log:      log,
		Resetter: h.Resetter(),
	}
	if !d.Sampler.HasBarometer() {
		log.WriteLineString("ui: no barometer, pressure hidden")
	}
	d.Signal.Attach(h.Select())

	c := &Controller{
		d:     d,
		clock: clock,
		handlers: [modeCount]handler{
			Menu:            menuMode{},
			Home:            homeMode{},
			AlarmHourEdit:   alarmHourMode{},
			AlarmMinuteEdit: alarmMinuteMode{},
			ConfigEdit:      configMode{},
		},
	}
	d.setLED(true)
	now := clock.Millis()
	if opts.SplashText != "" {
		c.splash = newSplash(d.Canvas, opts.SplashText, opts.Version, now)
	} else {
		c.handlers[Menu].enter(d, now)
	}
	return c
}

func (c *Controller) Device() *Device { return c.d }
func (c *Controller) Mode() Mode      { return c.d.Mode }

// Booting reports whether the splash is still running.
func (c *Controller) Booting() bool { return c.splash != nil }

// Tick runs one main-loop iteration. It returns hal.ErrReset once a reboot was
// requested; the controller does nothing after that.
func (c *Controller) Tick() error {
	d := c.d
	if d.halted {
		return hal.ErrReset
	}
	now := c.clock.Millis()

	if c.splash != nil {
		d.Signal.Take()
		if c.splash.tick(d.Canvas, now) {
			c.splash = nil
			c.handlers[Menu].enter(d, now)
			d.logf("ui: boot -> %s", d.Mode)
		}
		_ = d.Canvas.Flush()
		return nil
	}

	h := c.handlers[d.Mode]
	var next Mode
	if d.Signal.Take() {
		next = h.edge(d, now)
	} else {
		next = h.tick(d, now)
	}
	if d.halted {
		return hal.ErrReset
	}
	if next != d.Mode {
		c.transition(next, now)
	}
	_ = d.Canvas.Flush()
	return nil
}

// transition swaps handlers. The new mode's fields are drawn on the next tick.
func (c *Controller) transition(next Mode, now uint32) {
	d := c.d
	d.logf("ui: %s -> %s", d.Mode, next)
	c.handlers[d.Mode].exit(d)
	d.Mode = next
	c.handlers[next].enter(d, now)
}
