package app

import (
	"errors"
	"time"

	"deskclock/firmware/ui"
	"deskclock/hal"
	"deskclock/internal/buildinfo"
)

// tickPeriod paces the board main loop.
const tickPeriod = 5 * time.Millisecond

type Config struct {
	UI ui.Options
}

// DefaultConfig returns the firmware defaults stamped with the build info.
func DefaultConfig() Config {
	opts := ui.DefaultOptions()
	opts.Version = buildinfo.Short()
	opts.BuildTime = buildinfo.Time()
	return Config{UI: opts}
}

// New boots the firmware with the default config and returns its step function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	if l := h.Logger(); l != nil {
		l.WriteLineString("deskclock " + buildinfo.Short() + " (" + buildinfo.Commit + ", " + buildinfo.Date + ")")
	}
	c := ui.New(h, cfg.UI)
	return guard(h, c.Tick)
}

// Run boots the firmware and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, DefaultConfig())
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			if !errors.Is(err, hal.ErrReset) {
				select {}
			}
			step = NewWithConfig(h, cfg)
		}
		time.Sleep(tickPeriod)
	}
}
