// Package font is the 5x7 bitmap font used by every screen, in 6x8 cells.
package font

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// CellWidth and CellHeight are the advance of one glyph at text size 1.
	CellWidth  = 6
	CellHeight = 8
	// Baseline is the offset from the top of a cell to the tinyfont origin.
	Baseline = 7
)

// Font implements tinyfont.Fonter.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font5x7{}

type font5x7 struct {
	g glyph
}

type glyph struct {
	r rune
}

func columns(r rune) []byte {
	switch {
	case r >= 0x20 && r <= 0x7E:
		i := int(r-0x20) * 5
		return glyphs[i : i+5]
	case r == '°':
		return degree[:]
	default:
		return nil
	}
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	cols := columns(g.r)
	top := y - Baseline
	for col, bits := range cols {
		for row := int16(0); row < 7; row++ {
			if bits&(1<<row) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), top+row, c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    CellWidth,
		Height:   CellHeight,
		XAdvance: CellWidth,
		XOffset:  0,
		YOffset:  -Baseline,
	}
}

func (f *font5x7) GetYAdvance() uint8 { return CellHeight }

func (f *font5x7) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}
