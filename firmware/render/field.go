package render

import (
	"image/color"
	"math"

	"deskclock/firmware/gfx"
)

// Invalid is the cache sentinel. No field renders this value, so the next
// Render after Invalidate always draws.
const Invalid = math.MinInt32

// Field is one cached piece of text on the screen, keyed by an integer.
// Format turns the key into the text that is drawn.
type Field struct {
	X, Y   int16
	Size   int16
	Color  color.RGBA
	Format func(int) string

	last  int
	drawn string
}

// NewField returns an invalidated field.
func NewField(x, y, size int16, col color.RGBA, format func(int) string) *Field {
	return &Field{X: x, Y: y, Size: size, Color: col, Format: format, last: Invalid}
}

// Render draws v when it differs from the cached value and reports whether it
// drew. The previous text is erased first.
func (f *Field) Render(c *gfx.Canvas, v int) bool {
	if v == f.last {
		return false
	}
	text := f.Format(v)
	c.SetTextSize(f.Size)
	if f.drawn != "" {
		c.EraseText(f.drawn, f.X, f.Y)
	}
	c.SetStroke(f.Color)
	c.Text(text, f.X, f.Y)
	f.last = v
	f.drawn = text
	return true
}

// Invalidate forces the next Render to draw. It does not touch the screen:
// callers invalidate after repainting the shell.
func (f *Field) Invalidate() {
	f.last = Invalid
	f.drawn = ""
}

// Value returns the cached value, or Invalid.
func (f *Field) Value() int { return f.last }

// Drawn returns the text currently on screen.
func (f *Field) Drawn() string { return f.drawn }

// Hide erases the field and invalidates it.
func (f *Field) Hide(c *gfx.Canvas) {
	if f.drawn != "" {
		c.SetTextSize(f.Size)
		c.EraseText(f.drawn, f.X, f.Y)
	}
	f.Invalidate()
}

// TextField caches a string value.
type TextField struct {
	X, Y  int16
	Size  int16
	Color color.RGBA

	valid bool
	drawn string
}

func NewTextField(x, y, size int16, col color.RGBA) *TextField {
	return &TextField{X: x, Y: y, Size: size, Color: col}
}

// Render draws s when it differs from what is on screen.
func (t *TextField) Render(c *gfx.Canvas, s string) bool {
	if t.valid && s == t.drawn {
		return false
	}
	c.SetTextSize(t.Size)
	if t.valid {
		c.EraseText(t.drawn, t.X, t.Y)
	}
	c.SetStroke(t.Color)
	c.Text(s, t.X, t.Y)
	t.valid = true
	t.drawn = s
	return true
}

func (t *TextField) Invalidate() {
	t.valid = false
	t.drawn = ""
}

func (t *TextField) Drawn() string { return t.drawn }

// Hide erases the text and invalidates the field.
func (t *TextField) Hide(c *gfx.Canvas) {
	if t.valid {
		c.SetTextSize(t.Size)
		c.EraseText(t.drawn, t.X, t.Y)
	}
	t.Invalidate()
}
