//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
)

const (
	hostToneSampleRate = 44100
	hostToneAmplitude  = 6000
)

// squareWave is a mono square-wave source rendered as 16-bit stereo PCM.
//
// It never ends: between tones it yields silence so the audio backend keeps
// a single long-lived player.
type squareWave struct {
	mu        sync.Mutex
	frequency uint16
	remaining int // samples left in the current tone; -1 plays until Stop
	phase     uint32
}

func (w *squareWave) start(frequency uint16, durationMs uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frequency = frequency
	w.phase = 0
	if durationMs == 0 {
		w.remaining = -1
		return
	}
	w.remaining = int(uint64(durationMs) * hostToneSampleRate / 1000)
}

func (w *squareWave) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frequency = 0
	w.remaining = 0
}

func (w *squareWave) Read(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(p) &^ 3
	for i := 0; i < n; i += 4 {
		var s int16
		if w.frequency != 0 && w.remaining != 0 {
			period := uint32(hostToneSampleRate) / uint32(w.frequency)
			if period == 0 {
				period = 1
			}
			if w.phase < period/2 {
				s = hostToneAmplitude
			} else {
				s = -hostToneAmplitude
			}
			w.phase++
			if w.phase >= period {
				w.phase = 0
			}
			if w.remaining > 0 {
				w.remaining--
			}
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return n, nil
}

// pcmBuzzer plays tones through a PCM audio backend.
type pcmBuzzer struct {
	wave *squareWave
}

func (b *pcmBuzzer) Tone(frequency uint16, durationMs uint32) {
	if frequency == 0 {
		b.wave.stop()
		return
	}
	b.wave.start(frequency, durationMs)
}

func (b *pcmBuzzer) Stop() { b.wave.stop() }

// logBuzzer is used when no audio device is available.
type logBuzzer struct {
	logger Logger
}

func (b *logBuzzer) Tone(frequency uint16, durationMs uint32) {
	b.logger.WriteLineString(fmt.Sprintf("buzzer: tone %d Hz for %d ms", frequency, durationMs))
}

func (b *logBuzzer) Stop() {}

func newHostBuzzer(headless bool, logger *hostLogger) Buzzer {
	wave := &squareWave{}
	start := startWindowAudio
	if headless {
		start = startHeadlessAudio
	}
	if err := start(wave); err != nil {
		logger.WriteLineString("hal: audio: " + err.Error())
		return &logBuzzer{logger: logger}
	}
	return &pcmBuzzer{wave: wave}
}
