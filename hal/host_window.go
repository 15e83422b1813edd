//go:build !tinygo && cgo

package hal

import (
	"errors"
	"image"

	"deskclock/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host  HostConfig
	Scale int
}

// RunWindow starts a desktop window that displays the framebuffer and forwards keyboard input.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 3
	}
	h := newHost(cfg.Host)
	defer h.Close()

	g := &hostGame{h: h, newApp: newApp, step: newApp(h), kbd: hostKeyboard{h: h}}
	ebiten.SetWindowTitle(g.title())
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	newApp  func(HAL) func() error
	step    func() error
	kbd     hostKeyboard
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	ledOn   bool
}

func (g *hostGame) Update() error {
	g.kbd.poll()
	if err := g.step(); err != nil {
		if !errors.Is(err, ErrReset) {
			return err
		}
		g.h.reset.takePending()
		g.h.logger.WriteLineString("hal: restarting firmware")
		g.step = g.newApp(g.h)
	}
	if on := g.ledOn; on != g.ledIsOn() {
		g.ledOn = !on
		ebiten.SetWindowTitle(g.title())
	}
	return nil
}

func (g *hostGame) ledIsOn() bool {
	if l, ok := g.h.led.(*hostLED); ok {
		return l.isOn()
	}
	return false
}

func (g *hostGame) title() string {
	t := "DeskClock (" + buildinfo.Short() + ")"
	if g.ledOn {
		t += " *"
	}
	return t
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
