//go:build !tinygo && !cgo

package hal

import (
	"errors"
	"io"
)

var errNoAudio = errors.New("audio requires cgo")

func startWindowAudio(io.Reader) error   { return errNoAudio }
func startHeadlessAudio(io.Reader) error { return errNoAudio }
