package ui

import (
	"image/color"

	"deskclock/firmware/font"
	"deskclock/firmware/gfx"
	"deskclock/firmware/timer"
)

const (
	splashTypeMs  = 200
	splashHoldMs  = 1000
	splashFinalMs = 2000
	splashSize    = 2
)

type splashPhase uint8

const (
	splashTyping splashPhase = iota
	splashHold
	splashRecolor
	splashFinal
)

// splash types the brand one character at a time, then recolors it twice.
type splash struct {
	text    string
	version string
	phase   splashPhase
	shown   int
	cp      timer.Checkpoint
	x, y    int16
}

func newSplash(c *gfx.Canvas, text, version string, now uint32) *splash {
	w, h := c.Size()
	s := &splash{
		text:    text,
		version: version,
		x:       (w - int16(len(text))*font.CellWidth*splashSize) / 2,
		y:       (h - font.CellHeight*splashSize) / 2,
	}
	c.SetBackground(gfx.Black)
	c.Clear()
	s.cp.Mark(now)
	return s
}

// tick advances the animation and reports when it has finished.
func (s *splash) tick(c *gfx.Canvas, now uint32) bool {
	switch s.phase {
	case splashTyping:
		if !s.cp.Due(now, splashTypeMs) {
			return false
		}
		if s.shown < len(s.text) {
			c.SetTextSize(splashSize)
			c.SetStroke(gfx.White)
			c.Text(s.text[s.shown:s.shown+1], s.x+int16(s.shown)*font.CellWidth*splashSize, s.y)
			s.shown++
		}
		if s.shown >= len(s.text) {
			s.phase = splashHold
		}
		s.cp.Mark(now)
	case splashHold:
		if !s.cp.Due(now, splashHoldMs) {
			return false
		}
		s.recolor(c, gfx.Cyan)
		s.phase = splashRecolor
		s.cp.Mark(now)
	case splashRecolor:
		if !s.cp.Due(now, splashHoldMs) {
			return false
		}
		s.recolor(c, gfx.Orange)
		if s.version != "" {
			c.SetTextSize(1)
			c.SetStroke(gfx.Seafoam)
			w, _ := c.Size()
			c.Text(s.version, (w-int16(len(s.version))*font.CellWidth)/2, s.y+font.CellHeight*splashSize+8)
		}
		s.phase = splashFinal
		s.cp.Mark(now)
	case splashFinal:
		return s.cp.Due(now, splashFinalMs)
	}
	return false
}

func (s *splash) recolor(c *gfx.Canvas, col color.RGBA) {
	c.SetTextSize(splashSize)
	c.SetStroke(col)
	c.Text(s.text, s.x, s.y)
}
