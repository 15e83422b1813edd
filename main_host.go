//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"deskclock/app"
	"deskclock/hal"
)

func main() {
	var (
		host     hal.HostConfig
		headless bool
		hz       int
		ticks    uint64
		scale    int
		cfg      = app.DefaultConfig()
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window; buttons are read from stdin.")
	flag.IntVar(&hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&scale, "scale", 3, "Window scale factor.")
	flag.StringVar(&host.EEPROMPath, "eeprom", "", "Config flash image (default $DESKCLOCK_EEPROM_PATH or deskclock.eeprom).")
	flag.StringVar(&host.GPIOChip, "gpio", "", "Use Raspberry Pi buttons, LED and buzzer on this gpiochip (e.g. gpiochip0).")
	flag.IntVar(&host.I2CBus, "i2c-bus", -1, "Read a BMP280 on /dev/i2c-N (-1 = simulated sensors).")
	flag.BoolVar(&cfg.UI.ForceBuildTime, "force-build-time", false, "Set the clock to the build time when it is behind.")
	flag.StringVar(&cfg.UI.SplashText, "splash", cfg.UI.SplashText, "Boot splash text (empty skips the splash).")
	flag.Parse()

	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{Host: host, Hz: hz, Ticks: ticks})
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{Host: host, Scale: scale}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
