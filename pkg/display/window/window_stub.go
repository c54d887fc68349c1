//go:build !cgo

// Package window shows the image plane in a desktop window while it renders.
package window

import (
	"errors"

	"github.com/df07/go-mrt-raytracer/pkg/display"
)

// Run reports that window mode is unavailable in this build
func Run(fb *display.FrameBuffer, _ string, _ int) error {
	fb.Close()
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
