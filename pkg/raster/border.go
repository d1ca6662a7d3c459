package raster

import (
	"github.com/matzehuels/skyline/pkg/canvas"
	"github.com/matzehuels/skyline/pkg/geom"
)

// Edges selects which sides of a rectangle StrokeRect draws.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgesAll = EdgeTop | EdgeBottom | EdgeLeft | EdgeRight
)

// StrokeRect draws border bands of the given thickness along the selected
// edges of the rectangle at topLeft with the given size. Bands are drawn
// inside the rectangle, in top, bottom, left, right order. A thickness larger
// than the rectangle is capped so the bands never leave it.
func StrokeRect(c *canvas.Canvas, topLeft geom.Point, size geom.Size, thickness uint32, col canvas.Color, edges Edges, to Transform) {
	if size.IsZero() || thickness == 0 {
		return
	}
	th := min(thickness, size.Height)
	tw := min(thickness, size.Width)

	if edges&EdgeTop != 0 {
		FillRect(c, topLeft, geom.Sz(th, size.Width), col, to)
	}
	if edges&EdgeBottom != 0 {
		FillRect(c, geom.Pt(topLeft.X, topLeft.Y+size.Height-th), geom.Sz(th, size.Width), col, to)
	}
	if edges&EdgeLeft != 0 {
		FillRect(c, topLeft, geom.Sz(size.Height, tw), col, to)
	}
	if edges&EdgeRight != 0 {
		FillRect(c, geom.Pt(topLeft.X+size.Width-tw, topLeft.Y), geom.Sz(size.Height, tw), col, to)
	}
}
