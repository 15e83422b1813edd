//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Players stay referenced for the life of the process.
var (
	windowPlayer   *audio.Player
	headlessPlayer *oto.Player
)

// startWindowAudio plays src through ebiten's audio context, which must be
// shared with the window.
func startWindowAudio(src io.Reader) error {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(hostToneSampleRate)
	}
	p, err := ctx.NewPlayer(src)
	if err != nil {
		return fmt.Errorf("ebiten audio player: %w", err)
	}
	p.SetBufferSize(50 * time.Millisecond)
	p.Play()
	windowPlayer = p
	return nil
}

// startHeadlessAudio plays src through oto without a window.
func startHeadlessAudio(src io.Reader) error {
	op := &oto.NewContextOptions{
		SampleRate:   hostToneSampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("oto context: %w", err)
	}
	<-ready
	p := ctx.NewPlayer(src)
	p.Play()
	headlessPlayer = p
	return nil
}
