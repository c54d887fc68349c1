package display

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

// ImageSink is a headless display that collects written pixels into an image
type ImageSink struct {
	img    *image.RGBA
	frames int
}

// Ensure ImageSink implements core.Display
var _ core.Display = (*ImageSink)(nil)

// NewImageSink creates a sink with a width x height pixel buffer
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// WritePixel stores the color at (x, y). Coordinates outside the buffer are ignored.
func (s *ImageSink) WritePixel(x, y int, color core.ColorPixel) {
	if !(image.Point{x, y}.In(s.img.Bounds())) {
		return
	}
	s.img.SetRGBA(x, y, color.RGBA())
}

// AdvanceFrame counts the frame; a headless sink never asks to shut down
func (s *ImageSink) AdvanceFrame() bool {
	s.frames++
	return true
}

// Frames returns how many times AdvanceFrame was called
func (s *ImageSink) Frames() int {
	return s.frames
}

// Image returns the collected pixels
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// Save writes the collected pixels to path, see SaveImage
func (s *ImageSink) Save(path string, scale int) error {
	return SaveImage(path, s.img, scale)
}

// SaveImage writes img to path in the format implied by the file extension,
// creating parent directories as needed. A scale above 1 enlarges the image
// with nearest-neighbour filtering so individual pixels stay sharp.
func SaveImage(path string, img image.Image, scale int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
