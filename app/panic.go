package app

import (
	"fmt"
	"strings"

	"deskclock/firmware/font"
	"deskclock/firmware/gfx"
	"deskclock/hal"
)

// PanicError is returned by the step function after the firmware panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("firmware panic: %v", e.Value) }

// guard recovers panics from step. The first panic is logged and painted on the
// screen; every later call returns the same error without running step.
func guard(h hal.HAL, step func() error) func() error {
	var failed *PanicError
	return func() (err error) {
		if failed != nil {
			return failed
		}
		defer func() {
			if v := recover(); v != nil {
				failed = &PanicError{Value: v, Stack: captureStack()}
				showPanic(h, failed)
				err = failed
			}
		}()
		return step()
	}
}

func showPanic(h hal.HAL, p *PanicError) {
	lines := []string{"Panic:", fmt.Sprint(p.Value)}
	for _, line := range strings.Split(string(p.Stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	screen := h.Screen()
	if screen == nil {
		return
	}
	c := gfx.NewCanvas(screen)
	c.SetBackground(gfx.White)
	c.Clear()
	c.SetTextSize(1)
	c.SetStroke(gfx.Black)

	w, hgt := c.Size()
	cols := int(w / font.CellWidth)
	if cols <= 0 {
		cols = 1
	}
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+font.CellHeight > hgt {
				_ = c.Flush()
				return
			}
			chunk, rest := takeRunes(line, cols)
			c.Text(chunk, 0, y)
			y += font.CellHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = c.Flush()
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
