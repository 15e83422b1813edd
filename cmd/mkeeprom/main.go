//go:build !tinygo

// Command mkeeprom writes a config flash image for the host build.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"deskclock/firmware/config"
	"deskclock/hal"
)

const (
	defaultImagePath = "deskclock.eeprom"
	defaultImageSize = 4096
	defaultEraseSize = 1024
)

type flashFile struct {
	f         *os.File
	size      uint32
	eraseSize uint32

	scratch []byte
}

func openFlashFile(path string, size uint32, eraseSize uint32) (*flashFile, error) {
	if eraseSize == 0 || eraseSize%256 != 0 {
		return nil, fmt.Errorf("eeprom: invalid erase size %d", eraseSize)
	}
	if size == 0 || size%eraseSize != 0 {
		return nil, fmt.Errorf("eeprom: size %d not multiple of erase size %d", size, eraseSize)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("truncate image %q to %d: %w", path, size, err)
	}

	ff := &flashFile{
		f:         f,
		size:      size,
		eraseSize: eraseSize,
		scratch:   make([]byte, eraseSize),
	}
	for i := range ff.scratch {
		ff.scratch[i] = 0xFF
	}
	if err := ff.Erase(0, size); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("erase image %q: %w", path, err)
	}
	return ff, nil
}

func (f *flashFile) Close() error { return f.f.Close() }

func (f *flashFile) SizeBytes() uint32       { return f.size }
func (f *flashFile) EraseBlockBytes() uint32 { return f.eraseSize }

func (f *flashFile) ReadAt(p []byte, off uint32) (int, error) {
	if off >= f.size {
		return 0, fmt.Errorf("eeprom read at %d: %w", off, os.ErrInvalid)
	}
	if maxN := int(f.size - off); len(p) > maxN {
		p = p[:maxN]
	}
	return f.f.ReadAt(p, int64(off))
}

func (f *flashFile) WriteAt(p []byte, off uint32) (int, error) {
	if off >= f.size {
		return 0, fmt.Errorf("eeprom write at %d: %w", off, os.ErrInvalid)
	}
	if maxN := int(f.size - off); len(p) > maxN {
		p = p[:maxN]
	}

	prev := make([]byte, len(p))
	if _, err := f.f.ReadAt(prev, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("eeprom read before write at %d: %w", off, err)
	}
	for i := range p {
		if prev[i]&p[i] != p[i] {
			return 0, hal.ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *flashFile) Erase(off, size uint32) error {
	if size == 0 {
		return nil
	}
	if off%f.eraseSize != 0 || size%f.eraseSize != 0 || off >= f.size || off+size > f.size {
		return fmt.Errorf("eeprom erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	for size > 0 {
		if _, err := f.f.WriteAt(f.scratch, int64(off)); err != nil {
			return fmt.Errorf("eeprom erase block at %d: %w", off, err)
		}
		off += f.eraseSize
		size -= f.eraseSize
	}
	return nil
}

func main() {
	var outPath, unit, alarm string
	var size, erase uint
	flag.StringVar(&outPath, "out", defaultImagePath, "Output image path.")
	flag.UintVar(&size, "size", defaultImageSize, "Image size (bytes).")
	flag.UintVar(&erase, "erase", defaultEraseSize, "Erase block size (bytes).")
	flag.StringVar(&unit, "unit", "C", "Temperature unit, C or F.")
	flag.StringVar(&alarm, "alarm", "07:00", "Alarm time as HH:MM.")
	flag.Parse()

	cfg, err := parseConfig(unit, alarm)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if err := run(outPath, uint32(size), uint32(erase), cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s: %s\n", outPath, cfg)
}

func parseConfig(unit, alarm string) (config.Config, error) {
	cfg := config.Default()
	switch strings.ToUpper(unit) {
	case "C":
		cfg.Unit = config.Celsius
	case "F":
		cfg.Unit = config.Fahrenheit
	default:
		return cfg, fmt.Errorf("unit %q: want C or F", unit)
	}

	var h, m int
	if n, err := fmt.Sscanf(alarm, "%d:%d", &h, &m); err != nil || n != 2 {
		return cfg, fmt.Errorf("alarm %q: want HH:MM", alarm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return cfg, fmt.Errorf("alarm %q out of range", alarm)
	}
	cfg.AlarmHour, cfg.AlarmMinute = uint8(h), uint8(m)
	return cfg, nil
}

func run(outPath string, size, erase uint32, cfg config.Config) error {
	ff, err := openFlashFile(outPath, size, erase)
	if err != nil {
		return err
	}
	defer func() { _ = ff.Close() }()
	return config.NewStore(ff).Save(cfg)
}
