//go:build !tinygo

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"deskclock/firmware/config"
	"deskclock/hal"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig("f", "6:30")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	want := config.Config{Unit: config.Fahrenheit, AlarmHour: 6, AlarmMinute: 30}
	if cfg != want {
		t.Fatalf("parseConfig() = %v, want %v", cfg, want)
	}

	for _, tc := range [][2]string{{"K", "07:00"}, {"C", "24:00"}, {"C", "7"}, {"C", "07:60"}} {
		if _, err := parseConfig(tc[0], tc[1]); err == nil {
			t.Fatalf("parseConfig(%q, %q) succeeded", tc[0], tc[1])
		}
	}
}

func TestRunWritesLoadableImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.eeprom")
	want := config.Config{Unit: config.Fahrenheit, AlarmHour: 21, AlarmMinute: 15}
	if err := run(path, 4096, 1024, want); err != nil {
		t.Fatalf("run: %v", err)
	}

	img, err := os.ReadFile(path)
	if err != nil || len(img) != 4096 {
		t.Fatalf("image = %d bytes, %v, want 4096", len(img), err)
	}
	got, ok := config.Decode(img[:config.RecordSize])
	if !ok || got != want {
		t.Fatalf("record = %v (ok %v), want %v", got, ok, want)
	}
	for i, b := range img[config.RecordSize:] {
		if b != 0xFF {
			t.Fatalf("byte %d = %#x, want erased", i+config.RecordSize, b)
		}
	}
}

func TestFlashFileRequiresErase(t *testing.T) {
	ff, err := openFlashFile(filepath.Join(t.TempDir(), "x"), 1024, 256)
	if err != nil {
		t.Fatalf("openFlashFile: %v", err)
	}
	defer ff.Close()

	if _, err := ff.WriteAt([]byte{0x0F}, 0); err != nil {
		t.Fatalf("WriteAt: %v", err)
	}
	if _, err := ff.WriteAt([]byte{0xF0}, 0); !errors.Is(err, hal.ErrFlashWriteRequiresErase) {
		t.Fatalf("WriteAt over cleared bits = %v, want ErrFlashWriteRequiresErase", err)
	}
	if err := ff.Erase(0, 256); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	if _, err := ff.WriteAt([]byte{0xF0}, 0); err != nil {
		t.Fatalf("WriteAt after erase: %v", err)
	}
	if err := ff.Erase(1, 256); err == nil {
		t.Fatalf("unaligned Erase succeeded")
	}
}
