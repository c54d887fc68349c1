package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Display is the pixel output surface a render is presented on
type Display interface {
	// WritePixel draws a single pixel; (0,0) is the top-left corner
	WritePixel(x, y int, color ColorPixel)
	// AdvanceFrame presents what has been drawn so far. It returns false once
	// the display has been asked to shut down.
	AdvanceFrame() bool
}
