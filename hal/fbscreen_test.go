package hal

import (
	"image/color"
	"testing"
)

type memFramebuffer struct {
	w, h int
	buf  []byte
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *memFramebuffer) Width() int       { return f.w }
func (f *memFramebuffer) Height() int      { return f.h }
func (f *memFramebuffer) StrideBytes() int { return f.w * 2 }
func (f *memFramebuffer) Buffer() []byte   { return f.buf }
func (f *memFramebuffer) Present() error   { return nil }

func (f *memFramebuffer) at(x, y int) uint16 {
	off := y*f.w*2 + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func TestFramebufferScreenSetPixel(t *testing.T) {
	fb := newMemFramebuffer(4, 3)
	s := NewFramebufferScreen(fb)

	s.SetPixel(1, 2, color.RGBA{R: 0xFF, A: 0xFF})
	if got, want := fb.at(1, 2), rgb565(0xFF, 0, 0); got != want {
		t.Fatalf("pixel = %#04x, want %#04x", got, want)
	}

	s.SetPixel(-1, 0, color.RGBA{G: 0xFF, A: 0xFF})
	s.SetPixel(4, 0, color.RGBA{G: 0xFF, A: 0xFF})
	for i, b := range fb.buf {
		if i == 2*4*2+2 || i == 2*4*2+3 {
			continue
		}
		if b != 0 {
			t.Fatalf("byte %d = %#x after out-of-range writes, want 0", i, b)
		}
	}
}

func TestFramebufferScreenFillRectangleClips(t *testing.T) {
	fb := newMemFramebuffer(4, 4)
	s := NewFramebufferScreen(fb)

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	if err := s.FillRectangle(2, 2, 10, 10, white); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint16(0)
			if x >= 2 && y >= 2 {
				want = 0xFFFF
			}
			if got := fb.at(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
}

func TestRGBAFrom565RoundTrip(t *testing.T) {
	c := RGBAFrom565(rgb565(0xFF, 0xFF, 0xFF))
	if c != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("RGBAFrom565(white) = %v", c)
	}
}
