//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeyboard maps window keys onto the three device buttons.
type hostKeyboard struct {
	h *hostHAL
}

func (k hostKeyboard) poll() {
	if justPressed(ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK) {
		k.h.vUp.Press()
	}
	if justPressed(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ) {
		k.h.vDown.Press()
	}
	if justPressed(ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyE) {
		k.h.sel.Trigger()
	}
}

func justPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
