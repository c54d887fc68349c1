package core

import (
	"image/color"
	"testing"
)

func TestColorPixel_Scale(t *testing.T) {
	c := NewColorPixel(1, 0.5, 0.25).Scale(0.5)
	expected := NewColorPixel(0.5, 0.25, 0.125)
	if c != expected {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestColorPixel_RGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    ColorPixel
		expected color.RGBA
	}{
		{"black", NewColorPixel(0, 0, 0), color.RGBA{0, 0, 0, 255}},
		{"white", NewColorPixel(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"clamped high", NewColorPixel(2, 1.5, 10), color.RGBA{255, 255, 255, 255}},
		{"clamped low", NewColorPixel(-1, -0.5, 0), color.RGBA{0, 0, 0, 255}},
		{"half", NewColorPixel(0.5, 0.5, 0.5), color.RGBA{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.RGBA(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
