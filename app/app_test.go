package app

import (
	"errors"
	"strings"
	"testing"

	"deskclock/firmware/gfx"
	"deskclock/hal"
	"deskclock/hal/haltest"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.UI.SplashText = ""
	return cfg
}

func TestStepRunsFirmware(t *testing.T) {
	h := haltest.New()
	step := NewWithConfig(h, testConfig())
	for i := 0; i < 5; i++ {
		h.Ticks.Advance(10)
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	if h.Disp.Displays == 0 {
		t.Fatalf("firmware never flushed the screen")
	}
	if len(h.Log.Lines) == 0 || !strings.HasPrefix(h.Log.Lines[0], "deskclock ") {
		t.Fatalf("first log line = %q, want the build banner", h.Log.Lines)
	}
}

func TestStepReportsReset(t *testing.T) {
	h := haltest.New()
	step := NewWithConfig(h, testConfig())
	for i := 0; i < 3; i++ {
		h.DownBtn.Press()
		h.Ticks.Advance(10)
		if err := step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	h.Ticks.Advance(1000)
	h.Sel.Trigger()
	if err := step(); !errors.Is(err, hal.ErrReset) {
		t.Fatalf("step() = %v, want ErrReset", err)
	}
}

func TestGuardPaintsPanic(t *testing.T) {
	h := haltest.New()
	calls := 0
	step := guard(h, func() error {
		calls++
		panic("boom")
	})

	err := step()
	var p *PanicError
	if !errors.As(err, &p) || p.Value != "boom" {
		t.Fatalf("step() = %v, want PanicError(boom)", err)
	}
	if step() != err || calls != 1 {
		t.Fatalf("step ran again after a panic (calls = %d)", calls)
	}
	if h.Disp.At(159, 127) != gfx.White {
		t.Fatalf("panic screen not cleared to white")
	}
	if !containsLine(h.Log.Lines, "boom") {
		t.Fatalf("panic value not logged: %q", h.Log.Lines)
	}
	if h.Disp.Displays != 1 {
		t.Fatalf("Displays = %d, want 1", h.Disp.Displays)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int
		head, rest string
	}{
		{"abcdef", 4, "abcd", "ef"},
		{"abc", 4, "abc", ""},
		{"°C°C", 2, "°C", "°C"},
		{"abc", 0, "", "abc"},
	}
	for _, tt := range tests {
		head, rest := takeRunes(tt.s, tt.n)
		if head != tt.head || rest != tt.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q, want %q, %q", tt.s, tt.n, head, rest, tt.head, tt.rest)
		}
	}
}

func containsLine(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
