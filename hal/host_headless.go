//go:build !tinygo

package hal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host  HostConfig
	Hz    int
	Ticks uint64
	// Console reads button presses from a line-oriented stream. Nil uses stdin.
	Console io.Reader
}

// RunHeadless runs the firmware without opening a window.
//
// Console keys: u/k/w press Up, d/j/s press Down, e or an empty line presses Select.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Console == nil {
		cfg.Console = os.Stdin
	}

	cfg.Host.Headless = true
	h := newHost(cfg.Host)
	defer h.Close()
	go readConsole(cfg.Console, h)

	step := newApp(h)
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				if !errors.Is(err, ErrReset) {
					return err
				}
				h.reset.takePending()
				h.logger.WriteLineString("hal: restarting firmware")
				step = newApp(h)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func readConsole(r io.Reader, h *hostHAL) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			h.sel.Trigger()
			continue
		}
		for _, c := range line {
			consoleKey(h, c)
		}
	}
}

func consoleKey(h *hostHAL, c rune) {
	switch c {
	case 'u', 'k', 'w':
		h.vUp.Press()
	case 'd', 'j', 's':
		h.vDown.Press()
	case 'e', ' ':
		h.sel.Trigger()
	}
}
