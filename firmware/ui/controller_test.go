package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"deskclock/firmware/config"
	"deskclock/hal"
	"deskclock/hal/haltest"
)

func boot(t *testing.T) (*Controller, *haltest.HAL) {
	t.Helper()
	h := haltest.New()
	h.Ticks.Now = 5000
	opts := DefaultOptions()
	opts.SplashText = ""
	return New(h, opts), h
}

func step(t *testing.T, c *Controller, h *haltest.HAL, ms uint32) {
	t.Helper()
	h.Ticks.Advance(ms)
	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

func selectEdge(t *testing.T, c *Controller, h *haltest.HAL) {
	t.Helper()
	h.Ticks.Advance(1000)
	h.Sel.Trigger()
	if err := c.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

func down(t *testing.T, c *Controller, h *haltest.HAL, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.DownBtn.Press()
		step(t, c, h, 10)
	}
}

func wantMode(t *testing.T, c *Controller, want Mode) {
	t.Helper()
	if c.Mode() != want {
		t.Fatalf("Mode() = %v, want %v", c.Mode(), want)
	}
}

func TestBootsIntoMenu(t *testing.T) {
	c, h := boot(t)
	wantMode(t, c, Menu)
	if c.Device().Nav.Selection() != 0 {
		t.Fatalf("Selection() = %d, want 0", c.Device().Nav.Selection())
	}
	if !h.Light.On {
		t.Fatalf("LED off in the menu")
	}
	if c.Device().Config != config.Default() {
		t.Fatalf("Config = %v on erased flash, want defaults", c.Device().Config)
	}
}

func TestMenuToHomeAndBack(t *testing.T) {
	c, h := boot(t)
	down(t, c, h, 2)
	selectEdge(t, c, h) // selection 2 -> config editor
	wantMode(t, c, ConfigEdit)
	selectEdge(t, c, h)
	wantMode(t, c, Menu)
	if c.Device().Nav.Selection() != 0 {
		t.Fatalf("Selection() = %d after re-entering the menu", c.Device().Nav.Selection())
	}

	selectEdge(t, c, h)
	wantMode(t, c, Home)
	ops := h.Disp.Ops()
	step(t, c, h, 10)
	if h.Disp.Ops() == ops {
		t.Fatalf("first home tick drew nothing")
	}

	h.DownBtn.Press()
	selectEdge(t, c, h)
	wantMode(t, c, Menu)
	if c.Device().Nav.Selection() != 0 {
		t.Fatalf("Selection() = %d, want 0", c.Device().Nav.Selection())
	}
}

func TestHomePressesDoNotReachMenu(t *testing.T) {
	c, h := boot(t)
	selectEdge(t, c, h)
	wantMode(t, c, Home)

	down(t, c, h, 2)
	selectEdge(t, c, h)
	wantMode(t, c, Menu)
	step(t, c, h, 10)
	if got := c.Device().Nav.Selection(); got != 0 {
		t.Fatalf("Selection() = %d after the first menu tick, want 0", got)
	}
}

func TestEditorPressOnCommitDoesNotReachMenu(t *testing.T) {
	c, h := boot(t)
	down(t, c, h, 2)
	selectEdge(t, c, h)
	wantMode(t, c, ConfigEdit)

	h.DownBtn.Press()
	selectEdge(t, c, h) // the press is still latched when the editor commits
	wantMode(t, c, Menu)
	step(t, c, h, 10)
	if got := c.Device().Nav.Selection(); got != 0 {
		t.Fatalf("Selection() = %d after the first menu tick, want 0", got)
	}
}

func TestMenuIdleNotResetByStalePress(t *testing.T) {
	c, h := boot(t)
	selectEdge(t, c, h)
	h.DownBtn.Press()
	selectEdge(t, c, h)
	wantMode(t, c, Menu)
	step(t, c, h, 12000)
	wantMode(t, c, Home)
}

func TestHomeTogglesLEDEachSecond(t *testing.T) {
	c, h := boot(t)
	selectEdge(t, c, h)
	wantMode(t, c, Home)

	step(t, c, h, 10)
	first := h.Light.On
	step(t, c, h, 500) // same RTC second
	if h.Light.On != first {
		t.Fatalf("LED toggled without a seconds change")
	}
	h.Time.T = h.Time.T.Add(time.Second)
	step(t, c, h, 500)
	if h.Light.On == first {
		t.Fatalf("LED did not toggle on the seconds change")
	}
}

func TestAlarmEditCommits(t *testing.T) {
	c, h := boot(t)
	down(t, c, h, 1)
	selectEdge(t, c, h)
	wantMode(t, c, AlarmHourEdit)

	h.UpBtn.Press()
	step(t, c, h, 10)
	selectEdge(t, c, h)
	wantMode(t, c, AlarmMinuteEdit)

	h.DownBtn.Press()
	step(t, c, h, 10)
	if h.Mem.Writes != 0 {
		t.Fatalf("config written before the commit")
	}
	selectEdge(t, c, h)
	wantMode(t, c, Menu)

	want := config.Config{Unit: config.Celsius, AlarmHour: 8, AlarmMinute: 59}
	if c.Device().Config != want {
		t.Fatalf("Config = %v, want %v", c.Device().Config, want)
	}
	got, err := config.NewStore(h.Mem).Load()
	if err != nil || got != want {
		t.Fatalf("stored config = %v, %v, want %v", got, err, want)
	}
}

func TestConfigEditCommits(t *testing.T) {
	c, h := boot(t)
	down(t, c, h, 2)
	selectEdge(t, c, h)
	h.UpBtn.Press()
	step(t, c, h, 10)
	selectEdge(t, c, h)

	got, err := config.NewStore(h.Mem).Load()
	if err != nil || got.Unit != config.Fahrenheit {
		t.Fatalf("stored config = %v, %v, want fahrenheit", got, err)
	}
}

func TestEditorsDoNotSampleOrRing(t *testing.T) {
	c, h := boot(t)
	h.Time.T = time.Date(2026, time.January, 5, 7, 0, 0, 0, time.UTC) // alarm time
	down(t, c, h, 1)
	selectEdge(t, c, h)
	reads := h.Time.Reads
	for i := 0; i < 10; i++ {
		step(t, c, h, 1000)
	}
	if h.Time.Reads != reads || len(h.Beeper.Tones) != 0 {
		t.Fatalf("editor sampled the RTC (%d reads) or rang (%d tones)", h.Time.Reads-reads, len(h.Beeper.Tones))
	}
}

func TestRebootIsTerminal(t *testing.T) {
	c, h := boot(t)
	down(t, c, h, 3)
	h.Ticks.Advance(1000)
	h.Sel.Trigger()
	if err := c.Tick(); !errors.Is(err, hal.ErrReset) {
		t.Fatalf("Tick() = %v, want ErrReset", err)
	}
	if h.Reset.Resets != 1 {
		t.Fatalf("Resets = %d, want 1", h.Reset.Resets)
	}
	ops := h.Disp.Ops()
	h.Sel.Trigger()
	if err := c.Tick(); !errors.Is(err, hal.ErrReset) {
		t.Fatalf("Tick() after reboot = %v", err)
	}
	if h.Disp.Ops() != ops || h.Reset.Resets != 1 {
		t.Fatalf("controller kept running after reboot")
	}
}

func TestMenuIdleGoesHomeOnce(t *testing.T) {
	c, h := boot(t)
	step(t, c, h, 11999)
	wantMode(t, c, Menu)
	step(t, c, h, 1)
	wantMode(t, c, Home)
	for i := 0; i < 30; i++ {
		step(t, c, h, 1000)
	}
	wantMode(t, c, Home)

	idle := 0
	for _, l := range h.Log.Lines {
		if strings.Contains(l, "menu idle") {
			idle++
		}
	}
	if idle != 1 {
		t.Fatalf("idle fired %d times, want 1", idle)
	}
}

func TestModeEdgesAreDebounced(t *testing.T) {
	c, h := boot(t)
	h.Ticks.Advance(1000)
	h.Sel.Trigger()
	h.Ticks.Advance(300)
	h.Sel.Trigger() // bounce
	step(t, c, h, 0)
	wantMode(t, c, Home)
	step(t, c, h, 10)
	wantMode(t, c, Home)
}

func TestAlarmRingsDuringMatchingMinute(t *testing.T) {
	c, h := boot(t)
	selectEdge(t, c, h)
	step(t, c, h, 10)
	if len(h.Beeper.Tones) != 0 {
		t.Fatalf("rang at 06:59")
	}

	h.Time.T = time.Date(2026, time.January, 5, 7, 0, 0, 0, time.UTC)
	step(t, c, h, 1000)
	if len(h.Beeper.Tones) != 1 {
		t.Fatalf("tones = %d at 07:00, want 1", len(h.Beeper.Tones))
	}
	step(t, c, h, 1000)
	if len(h.Beeper.Tones) != 2 {
		t.Fatalf("melody did not advance")
	}

	h.Time.T = time.Date(2026, time.January, 5, 7, 1, 0, 0, time.UTC)
	step(t, c, h, 1000)
	if got := c.Device().Ringer.Cursor(); got.Index != 0 || got.Pause != 0 {
		t.Fatalf("cursor = %+v after the alarm minute, want zero", got)
	}
}

func TestLeavingHomeSilencesAlarm(t *testing.T) {
	c, h := boot(t)
	h.Time.T = time.Date(2026, time.January, 5, 7, 0, 0, 0, time.UTC)
	selectEdge(t, c, h)
	step(t, c, h, 10)
	stops := h.Beeper.Stops
	selectEdge(t, c, h)
	wantMode(t, c, Menu)
	if h.Beeper.Stops == stops {
		t.Fatalf("buzzer not stopped when leaving HOME")
	}
}

func TestSplashDropsEdges(t *testing.T) {
	h := haltest.New()
	opts := DefaultOptions()
	opts.SplashText = "Hi"
	opts.Version = "v1"
	c := New(h, opts)

	for i := 0; i < 43; i++ {
		step(t, c, h, 100)
		if i == 2 {
			h.Sel.Trigger()
		}
	}
	if !c.Booting() {
		t.Fatalf("splash finished early")
	}
	step(t, c, h, 100)
	if c.Booting() {
		t.Fatalf("splash still running at 4400 ms")
	}
	wantMode(t, c, Menu)
	step(t, c, h, 10)
	wantMode(t, c, Menu)
}
