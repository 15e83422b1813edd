// Package menu implements the root menu: four items and an arrow marking the
// selected one.
package menu

import (
	"deskclock/firmware/gfx"
	"deskclock/firmware/timer"
)

// Items in menu order.
const (
	ItemHome = iota
	ItemAlarm
	ItemConfig
	ItemReboot

	itemCount = 4
)

// DefaultIdleMs is how long the menu waits for a button before going home.
const DefaultIdleMs = 12000

const (
	arrowX    = 15
	arrowBase = 3
	rowPitch  = 33
	labelX    = 48
	labelBase = 5
	noneDrawn = -1
)

var labels = [itemCount]string{"Home", "Alarm", "Config", "Reboot"}

// Navigator owns the selection and the arrow sprite.
type Navigator struct {
	idleMs uint32

	sel   int
	drawn int
	idle  timer.Checkpoint
}

func NewNavigator(idleMs uint32) *Navigator {
	return &Navigator{idleMs: idleMs, drawn: noneDrawn}
}

// Selection returns the selected item.
func (n *Navigator) Selection() int { return n.sel }

// Enter draws the menu shell, selects the first item and restarts the idle timer.
func (n *Navigator) Enter(c *gfx.Canvas, now uint32) {
	c.SetBackground(gfx.Black)
	c.Clear()
	c.SetTextSize(2)
	c.SetStroke(gfx.Seafoam)
	for i, label := range labels {
		c.Text(label, labelX, int16(labelBase+rowPitch*i))
	}
	n.sel = 0
	n.drawn = noneDrawn
	n.idle.Mark(now)
	n.drawArrow(c)
}

// Tick applies one poll of the buttons. Up moves toward the first item and
// Down toward the last, without wrapping. It reports true once when the menu
// has been idle for the idle timeout.
func (n *Navigator) Tick(c *gfx.Canvas, up, down bool, now uint32) (idle bool) {
	if up || down {
		n.idle.Mark(now)
	}
	if up && n.sel > 0 {
		n.sel--
	}
	if down && n.sel < itemCount-1 {
		n.sel++
	}
	n.drawArrow(c)

	if n.idle.Armed() && n.idle.Due(now, n.idleMs) {
		n.idle.Expire()
		return true
	}
	return false
}

func (n *Navigator) drawArrow(c *gfx.Canvas) {
	if n.sel == n.drawn {
		return
	}
	if n.drawn != noneDrawn {
		c.ClearSprite(gfx.Arrow, arrowX, arrowY(n.drawn))
	}
	c.DrawSprite(gfx.Arrow, arrowX, arrowY(n.sel), gfx.Seafoam)
	n.drawn = n.sel
}

func arrowY(sel int) int16 {
	return int16(arrowBase + rowPitch*sel)
}
