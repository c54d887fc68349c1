package renderer

import "time"

// RenderStats contains statistics about a render
type RenderStats struct {
	TotalPixels       int           // Pixels written to the image plane
	HitPixels         int           // Pixels where at least one primitive was hit
	IntersectionTests int           // Primitive intersection tests performed
	RowsRendered      int           // Scanlines completed
	Workers           int           // Goroutines used for rendering
	Duration          time.Duration // Wall time of the render
	Cancelled         bool          // Render stopped before the last row
}

// RowStats tracks statistics for a single scanline
type RowStats struct {
	Pixels int
	Hits   int
	Tests  int
}

// AddRow folds a completed row into the render statistics
func (s *RenderStats) AddRow(row RowStats) {
	s.TotalPixels += row.Pixels
	s.HitPixels += row.Hits
	s.IntersectionTests += row.Tests
	s.RowsRendered++
}

// HitRatio returns the fraction of rendered pixels that hit a primitive
func (s *RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}
