// Package gfx composes the screen primitives used by the firmware: text in
// integer sizes, rectangles, rounded frames and 1-bit sprites.
package gfx

import (
	"image/color"
	"unicode/utf8"

	"deskclock/firmware/font"
	"deskclock/hal"

	"tinygo.org/x/tinyfont"
)

// Canvas draws onto a hal.Screen with a current background, stroke color and
// text size. Text positions are the top-left corner of the first cell.
type Canvas struct {
	screen hal.Screen
	bg     color.RGBA
	stroke color.RGBA
	size   int16
	text   scaled
}

func NewCanvas(screen hal.Screen) *Canvas {
	return &Canvas{
		screen: screen,
		bg:     Black,
		stroke: White,
		size:   1,
	}
}

func (c *Canvas) Size() (w, h int16) { return c.screen.Size() }

func (c *Canvas) SetBackground(col color.RGBA) { c.bg = col }
func (c *Canvas) Background() color.RGBA       { return c.bg }
func (c *Canvas) SetStroke(col color.RGBA)     { c.stroke = col }
func (c *Canvas) Stroke() color.RGBA           { return c.stroke }

// SetTextSize sets the pixel scale of text. Sizes below 1 are treated as 1.
func (c *Canvas) SetTextSize(n int16) {
	if n < 1 {
		n = 1
	}
	c.size = n
}

func (c *Canvas) TextSize() int16 { return c.size }

// Clear fills the whole screen with the background color.
func (c *Canvas) Clear() {
	w, h := c.screen.Size()
	_ = c.screen.FillRectangle(0, 0, w, h, c.bg)
}

// Text draws s at (x, y) in the stroke color.
func (c *Canvas) Text(s string, x, y int16) {
	c.textIn(s, x, y, c.stroke)
}

// EraseText clears the footprint s occupies at (x, y) at the current size.
func (c *Canvas) EraseText(s string, x, y int16) {
	if s == "" {
		return
	}
	w, h := c.TextBounds(s)
	_ = c.screen.FillRectangle(x, y, w, h, c.bg)
}

// TextBounds returns the footprint of s at the current size.
func (c *Canvas) TextBounds(s string) (w, h int16) {
	n := int16(utf8.RuneCountInString(s))
	return n * font.CellWidth * c.size, font.CellHeight * c.size
}

func (c *Canvas) textIn(s string, x, y int16, col color.RGBA) {
	c.text = scaled{screen: c.screen, ox: x, oy: y, n: c.size}
	tinyfont.WriteLine(&c.text, font.Font, 0, font.Baseline, s, col)
}

func (c *Canvas) Pixel(x, y int16, col color.RGBA) {
	c.screen.SetPixel(x, y, col)
}

// Fill fills a rectangle with col.
func (c *Canvas) Fill(x, y, w, h int16, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	_ = c.screen.FillRectangle(x, y, w, h, col)
}

// Rect outlines a rectangle in the stroke color.
func (c *Canvas) Rect(x, y, w, h int16) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Fill(x, y, w, 1, c.stroke)
	c.Fill(x, y+h-1, w, 1, c.stroke)
	c.Fill(x, y, 1, h, c.stroke)
	c.Fill(x+w-1, y, 1, h, c.stroke)
}

// RoundRect outlines a rectangle with corners of radius r in the stroke color.
func (c *Canvas) RoundRect(x, y, w, h, r int16) {
	if w <= 0 || h <= 0 {
		return
	}
	if limit := min(w, h) / 2; r > limit {
		r = limit
	}
	if r <= 0 {
		c.Rect(x, y, w, h)
		return
	}
	c.Fill(x+r, y, w-2*r, 1, c.stroke)
	c.Fill(x+r, y+h-1, w-2*r, 1, c.stroke)
	c.Fill(x, y+r, 1, h-2*r, c.stroke)
	c.Fill(x+w-1, y+r, 1, h-2*r, c.stroke)

	// Midpoint circle, one octant pair per corner.
	left, right := x+r, x+w-1-r
	top, bottom := y+r, y+h-1-r
	f := 1 - r
	ddx, ddy := int16(1), -2*r
	px, py := int16(0), r
	for px < py {
		if f >= 0 {
			py--
			ddy += 2
			f += ddy
		}
		px++
		ddx += 2
		f += ddx
		c.corners(left, right, top, bottom, px, py)
		c.corners(left, right, top, bottom, py, px)
	}
}

func (c *Canvas) corners(left, right, top, bottom, dx, dy int16) {
	c.screen.SetPixel(right+dx, bottom+dy, c.stroke)
	c.screen.SetPixel(left-dx, bottom+dy, c.stroke)
	c.screen.SetPixel(right+dx, top-dy, c.stroke)
	c.screen.SetPixel(left-dx, top-dy, c.stroke)
}

// DrawSprite paints the set bits of sp at (x, y) in col.
func (c *Canvas) DrawSprite(sp Sprite, x, y int16, col color.RGBA) {
	for row := int16(0); row < sp.H; row++ {
		bits := sp.rows[row]
		// Runs of set bits become one rectangle.
		for x0 := int16(0); x0 < sp.W; {
			if !sp.bit(bits, x0) {
				x0++
				continue
			}
			end := x0
			for end < sp.W && sp.bit(bits, end) {
				end++
			}
			c.Fill(x+x0, y+row, end-x0, 1, col)
			x0 = end
		}
	}
}

// ClearSprite erases the full footprint of sp at (x, y).
func (c *Canvas) ClearSprite(sp Sprite, x, y int16) {
	c.Fill(x, y, sp.W, sp.H, c.bg)
}

// Flush pushes pending drawing to the panel.
func (c *Canvas) Flush() error {
	return c.screen.Display()
}

// scaled maps font pixels onto n x n blocks at an origin.
type scaled struct {
	screen hal.Screen
	ox, oy int16
	n      int16
}

func (d *scaled) Size() (int16, int16) { return d.screen.Size() }

func (d *scaled) SetPixel(x, y int16, col color.RGBA) {
	if d.n == 1 {
		d.screen.SetPixel(d.ox+x, d.oy+y, col)
		return
	}
	_ = d.screen.FillRectangle(d.ox+x*d.n, d.oy+y*d.n, d.n, d.n, col)
}

func (d *scaled) Display() error { return nil }
