//go:build cgo

// Package window shows the image plane in a desktop window while it renders.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-mrt-raytracer/pkg/display"
)

// Run opens a window presenting fb and blocks until the window closes or fb is
// closed. It must be called from the main goroutine. The frame buffer is
// closed on return so a render in progress stops at its next frame.
func Run(fb *display.FrameBuffer, title string, scale int) error {
	defer fb.Close()

	b := fb.Bounds()
	scale = max(scale, 1)

	g := &game{
		fb:      fb,
		scratch: make([]byte, b.Dx()*b.Dy()*4),
		width:   b.Dx(),
		height:  b.Dy(),
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx()*scale, b.Dy()*scale)
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	fb            *display.FrameBuffer
	img           *ebiten.Image
	scratch       []byte
	width, height int
}

func (g *game) Update() error {
	select {
	case <-g.fb.Done():
		return ebiten.Termination
	default:
		return nil
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
		g.fb.CopyIfDirty(g.scratch)
		g.img.WritePixels(g.scratch)
	} else if g.fb.CopyIfDirty(g.scratch) {
		g.img.WritePixels(g.scratch)
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
