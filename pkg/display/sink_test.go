package display

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

func TestImageSink_WritePixel(t *testing.T) {
	sink := NewImageSink(4, 3)
	sink.WritePixel(1, 2, core.NewColorPixel(1, 0.5, 0))

	got := sink.Image().RGBAAt(1, 2)
	want := color.RGBA{255, 128, 0, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Out of range writes are dropped rather than panicking
	sink.WritePixel(-1, 0, core.NewColorPixel(1, 1, 1))
	sink.WritePixel(4, 0, core.NewColorPixel(1, 1, 1))
	sink.WritePixel(0, 3, core.NewColorPixel(1, 1, 1))
}

func TestImageSink_AdvanceFrame(t *testing.T) {
	sink := NewImageSink(2, 2)
	for i := 0; i < 5; i++ {
		if !sink.AdvanceFrame() {
			t.Fatal("Expected headless sink to keep running")
		}
	}
	if sink.Frames() != 5 {
		t.Errorf("Expected 5 frames, got %d", sink.Frames())
	}
}

func TestImageSink_Save(t *testing.T) {
	sink := NewImageSink(3, 2)
	red := core.NewColorPixel(1, 0, 0)
	sink.WritePixel(2, 1, red)

	tests := []struct {
		name          string
		scale         int
		width, height int
	}{
		{"unscaled", 1, 3, 2},
		{"zero scale", 0, 3, 2},
		{"scaled", 4, 12, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "out.png")
			if err := sink.Save(path, tt.scale); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			img, err := imaging.Open(path)
			if err != nil {
				t.Fatalf("Failed to read back image: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Fatalf("Expected %dx%d, got %dx%d", tt.width, tt.height, b.Dx(), b.Dy())
			}

			// The bottom-right pixel block stays pure red under nearest-neighbour scaling
			r, g, bl, _ := img.At(b.Max.X-1, b.Max.Y-1).RGBA()
			if r>>8 != 255 || g != 0 || bl != 0 {
				t.Errorf("Expected red corner, got %d %d %d", r>>8, g>>8, bl>>8)
			}
		})
	}
}

func TestSaveImage_UnsupportedFormat(t *testing.T) {
	sink := NewImageSink(2, 2)
	err := sink.Save(filepath.Join(t.TempDir(), "out.xyz"), 1)
	if !errors.Is(err, imaging.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
