package gfx

import (
	"testing"

	"deskclock/hal/haltest"
)

func TestTextScalesFromTopLeft(t *testing.T) {
	s := haltest.NewScreen(160, 128)
	c := NewCanvas(s)
	c.SetStroke(Cyan)
	c.SetTextSize(2)
	c.Text("1", 10, 20)

	w, h := c.TextBounds("1")
	if w != 12 || h != 16 {
		t.Fatalf("TextBounds() = %d,%d, want 12,16", w, h)
	}
	lit := s.Count(10, 20, w, h, Cyan)
	if lit == 0 {
		t.Fatalf("no pixels drawn inside the text box")
	}
	if total := s.Count(0, 0, 160, 128, Cyan); total != lit {
		t.Fatalf("%d pixels drawn outside the text box", total-lit)
	}
	// Size 2: every font pixel is a 2x2 block, so the stem of '1' is 4 px wide.
	if s.At(14, 20) != Cyan || s.At(15, 20) != Cyan || s.At(14, 33) != Cyan {
		t.Fatalf("stem of '1' not drawn as 2x2 blocks")
	}
}

func TestEraseTextClearsFootprint(t *testing.T) {
	s := haltest.NewScreen(64, 32)
	c := NewCanvas(s)
	c.SetTextSize(3)
	c.Text("88", 2, 2)
	c.EraseText("88", 2, 2)
	if n := s.Count(0, 0, 64, 32, White); n != 0 {
		t.Fatalf("%d pixels left after EraseText", n)
	}
}

func TestRoundRectCorners(t *testing.T) {
	s := haltest.NewScreen(40, 40)
	c := NewCanvas(s)
	c.SetStroke(Teal)
	c.RoundRect(5, 5, 20, 10, 4)

	if s.At(5, 5) == Teal || s.At(24, 14) == Teal {
		t.Fatalf("square corner drawn on a rounded rect")
	}
	if s.At(12, 5) != Teal || s.At(12, 14) != Teal || s.At(5, 10) != Teal || s.At(24, 10) != Teal {
		t.Fatalf("edge pixel missing")
	}
	if s.At(12, 10) == Teal {
		t.Fatalf("interior filled")
	}
}

func TestParseSprite(t *testing.T) {
	sp, err := ParseSprite([]string{"#..", ".#.", "..#"})
	if err != nil {
		t.Fatalf("ParseSprite: %v", err)
	}
	if !sp.At(0, 0) || !sp.At(1, 1) || !sp.At(2, 2) || sp.At(1, 0) {
		t.Fatalf("ParseSprite produced wrong bits")
	}
	if _, err := ParseSprite([]string{"##", "#"}); err == nil {
		t.Fatalf("ragged rows accepted")
	}
	if _, err := ParseSprite([]string{"#x"}); err == nil {
		t.Fatalf("bad char accepted")
	}
}

func TestDrawAndClearSprite(t *testing.T) {
	s := haltest.NewScreen(64, 64)
	c := NewCanvas(s)
	c.DrawSprite(Arrow, 15, 36, Red)
	for y := int16(0); y < Arrow.H; y++ {
		for x := int16(0); x < Arrow.W; x++ {
			if got := s.At(15+x, 36+y) == Red; got != Arrow.At(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, Arrow.At(x, y))
			}
		}
	}
	c.ClearSprite(Arrow, 15, 36)
	if n := s.Count(0, 0, 64, 64, Red); n != 0 {
		t.Fatalf("%d sprite pixels left after ClearSprite", n)
	}
}

func TestSpritesAreSquare24(t *testing.T) {
	for name, sp := range map[string]Sprite{"arrow": Arrow, "thermometer": Thermometer, "droplet": Droplet} {
		if sp.W != 24 || sp.H != 24 {
			t.Fatalf("%s is %dx%d, want 24x24", name, sp.W, sp.H)
		}
	}
}
