package gfx

import (
	"image/color"

	"deskclock/hal"
)

// Palette used by the screens.
var (
	Black     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	White     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Cyan      = color.RGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF}
	Green     = color.RGBA{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF}
	Yellow    = color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
	Orange    = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	Frost     = color.RGBA{R: 218, G: 233, B: 255, A: 0xFF}
	Turquoise = color.RGBA{R: 64, G: 224, B: 208, A: 0xFF}
	Seafoam   = color.RGBA{R: 144, G: 228, B: 220, A: 0xFF}
	Teal      = hal.RGBAFrom565(0x04D3)
	Red       = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}
)
