package menu

import (
	"testing"

	"deskclock/firmware/gfx"
	"deskclock/hal/haltest"
)

func newMenu(t *testing.T) (*Navigator, *gfx.Canvas, *haltest.Screen) {
	t.Helper()
	s := haltest.NewScreen(160, 128)
	c := gfx.NewCanvas(s)
	n := NewNavigator(DefaultIdleMs)
	n.Enter(c, 0)
	return n, c, s
}

func TestSelectionClamps(t *testing.T) {
	n, c, _ := newMenu(t)

	n.Tick(c, true, false, 10)
	if n.Selection() != 0 {
		t.Fatalf("Up at the first item: Selection() = %d, want 0", n.Selection())
	}
	for i := 0; i < 6; i++ {
		n.Tick(c, false, true, 20)
	}
	if n.Selection() != ItemReboot {
		t.Fatalf("Selection() = %d, want %d", n.Selection(), ItemReboot)
	}
	n.Tick(c, true, false, 30)
	if n.Selection() != ItemConfig {
		t.Fatalf("Selection() = %d, want %d", n.Selection(), ItemConfig)
	}
}

func TestArrowMovesBetweenRows(t *testing.T) {
	n, c, s := newMenu(t)
	if got := s.Count(arrowX, arrowY(0), 24, 24, gfx.Seafoam); got == 0 {
		t.Fatalf("arrow not drawn at row 0")
	}

	n.Tick(c, false, true, 1)
	if got := s.Count(arrowX, arrowY(0), 24, 24, gfx.Seafoam); got != 0 {
		t.Fatalf("%d arrow pixels left at row 0", got)
	}
	if got := s.Count(arrowX, arrowY(1), 24, 24, gfx.Seafoam); got == 0 {
		t.Fatalf("arrow not drawn at row 1")
	}
	if arrowY(3) != 102 {
		t.Fatalf("arrowY(3) = %d, want 102", arrowY(3))
	}

	ops := s.Ops()
	n.Tick(c, false, false, 2)
	if s.Ops() != ops {
		t.Fatalf("idle tick drew")
	}
}

func TestIdleFiresOnce(t *testing.T) {
	n, c, _ := newMenu(t)

	if n.Tick(c, false, false, 11999) {
		t.Fatalf("idle fired before 12000 ms")
	}
	if !n.Tick(c, false, false, 12000) {
		t.Fatalf("idle did not fire at 12000 ms")
	}
	if n.Tick(c, false, false, 30000) {
		t.Fatalf("idle fired twice")
	}
}

func TestButtonRestartsIdle(t *testing.T) {
	n, c, _ := newMenu(t)
	n.Tick(c, false, true, 8000)
	if n.Tick(c, false, false, 12000) {
		t.Fatalf("idle fired 4000 ms after a press")
	}
	if !n.Tick(c, false, false, 20000) {
		t.Fatalf("idle did not fire 12000 ms after the last press")
	}
}

func TestEnterResetsSelection(t *testing.T) {
	n, c, _ := newMenu(t)
	n.Tick(c, false, true, 1)
	n.Enter(c, 2)
	if n.Selection() != 0 {
		t.Fatalf("Selection() = %d after Enter, want 0", n.Selection())
	}
}
