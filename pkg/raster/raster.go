// Package raster converts axis-aligned rectangles into canvas pixel writes.
//
// Shapes are described in a local coordinate space (a building's face, for
// example) and mapped onto the canvas by a [Transform]. [FillRect] clips
// every pixel that lands outside the canvas instead of failing: placement
// math routinely produces rectangles that graze or overhang the right and
// bottom edges.
package raster

import (
	"github.com/matzehuels/skyline/pkg/canvas"
	"github.com/matzehuels/skyline/pkg/geom"
)

// Transform maps a local point to absolute canvas coordinates. Results may
// fall outside the canvas; FillRect drops those pixels.
type Transform func(local geom.Point) (x, y int)

// Identity maps local coordinates straight onto the canvas.
func Identity(p geom.Point) (x, y int) {
	return int(p.X), int(p.Y)
}

// Translate returns a Transform that shifts local points by (dx, dy).
func Translate(dx, dy int) Transform {
	return func(p geom.Point) (int, int) {
		return int(p.X) + dx, int(p.Y) + dy
	}
}

// PinBottom returns the Transform for a shape whose local origin is its
// top-left corner, whose left edge sits at canvas column x, and whose bottom
// edge rests on the bottom of a canvas of the given height:
//
//	canvas_x = x + local_x
//	canvas_y = canvasHeight - shapeHeight + local_y
func PinBottom(x, canvasHeight, shapeHeight uint32) Transform {
	return Translate(int(x), int(canvasHeight)-int(shapeHeight))
}

// FillRect paints a size.Height×size.Width rectangle of col whose local
// top-left corner is at topLeft. Each local pixel is mapped through to and
// written only if it lands on the canvas.
func FillRect(c *canvas.Canvas, topLeft geom.Point, size geom.Size, col canvas.Color, to Transform) {
	w, h := int(c.Width()), int(c.Height())
	for dy := uint32(0); dy < size.Height; dy++ {
		for dx := uint32(0); dx < size.Width; dx++ {
			x, y := to(geom.Pt(topLeft.X+dx, topLeft.Y+dy))
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			c.Set(uint32(x), uint32(y), col)
		}
	}
}
