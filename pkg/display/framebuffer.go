package display

import (
	"image"
	"sync"

	"github.com/df07/go-mrt-raytracer/pkg/core"
)

// FrameBuffer is a display whose pixels are written by the renderer and read
// by a presenter on another goroutine. Closing it makes AdvanceFrame report
// shutdown to the renderer.
type FrameBuffer struct {
	mu     sync.Mutex
	img    *image.RGBA
	dirty  bool
	frames int

	closeOnce sync.Once
	done      chan struct{}
}

// Ensure FrameBuffer implements core.Display
var _ core.Display = (*FrameBuffer)(nil)

// NewFrameBuffer creates a frame buffer of width x height pixels
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		img:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		done: make(chan struct{}),
	}
}

// Bounds returns the pixel rectangle of the buffer
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return fb.img.Bounds()
}

// WritePixel stores the color at (x, y). Coordinates outside the buffer are ignored.
func (fb *FrameBuffer) WritePixel(x, y int, color core.ColorPixel) {
	if !(image.Point{x, y}.In(fb.img.Bounds())) {
		return
	}

	fb.mu.Lock()
	fb.img.SetRGBA(x, y, color.RGBA())
	fb.dirty = true
	fb.mu.Unlock()
}

// AdvanceFrame marks a frame boundary and reports whether the buffer is still open
func (fb *FrameBuffer) AdvanceFrame() bool {
	fb.mu.Lock()
	fb.frames++
	fb.mu.Unlock()

	select {
	case <-fb.done:
		return false
	default:
		return true
	}
}

// Frames returns how many times AdvanceFrame was called
func (fb *FrameBuffer) Frames() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.frames
}

// CopyIfDirty copies the pixels into dst when anything was written since the
// last copy. dst must be at least as long as the buffer's pixel slice.
func (fb *FrameBuffer) CopyIfDirty(dst []byte) bool {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	if !fb.dirty {
		return false
	}
	copy(dst, fb.img.Pix)
	fb.dirty = false
	return true
}

// Snapshot returns a copy of the current pixels
func (fb *FrameBuffer) Snapshot() *image.RGBA {
	fb.mu.Lock()
	defer fb.mu.Unlock()

	img := image.NewRGBA(fb.img.Bounds())
	copy(img.Pix, fb.img.Pix)
	return img
}

// Close shuts the buffer down; it is safe to call more than once
func (fb *FrameBuffer) Close() {
	fb.closeOnce.Do(func() { close(fb.done) })
}

// Done is closed once the buffer has been closed
func (fb *FrameBuffer) Done() <-chan struct{} {
	return fb.done
}
