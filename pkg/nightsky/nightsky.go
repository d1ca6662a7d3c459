// Package nightsky scatters stars over a canvas.
//
// The canvas is partitioned into a grid of equally sized cells and each cell
// holds at most one star, placed at a random offset inside the cell so the
// field does not look grid-locked.
package nightsky

import (
	"github.com/matzehuels/skyline/pkg/canvas"
	skyerrors "github.com/matzehuels/skyline/pkg/errors"
	"github.com/matzehuels/skyline/pkg/geom"
	"github.com/matzehuels/skyline/pkg/rng"
)

// Options controls Render.
type Options struct {
	// CellCount is the number of cell columns (X) and rows (Y).
	CellCount geom.Point
	CellSize  geom.Size
	// PresenceProb is the chance that a cell holds a star.
	PresenceProb float64
	// BigProb is the chance that a present star is 2x2 instead of 1x1.
	BigProb float64
	Color   canvas.Color
}

// Grid derives a cell grid for a width×height canvas from the number of
// horizontal cells. Rows follow the canvas aspect ratio. Cell sizes are
// computed against width-1 and height-1 so a 2x2 star in the last cell,
// at the largest offset, still lands on the canvas.
func Grid(width, height, columns uint32) (count geom.Point, size geom.Size) {
	if width == 0 || height == 0 || columns == 0 {
		return geom.Point{}, geom.Size{}
	}
	rows := uint32(uint64(columns) * uint64(height) / uint64(width))
	count = geom.Pt(columns, rows)
	if rows == 0 {
		return count, geom.Size{}
	}
	return count, geom.Sz((height-1)/rows, (width-1)/columns)
}

// Fits reports whether every star Render can place stays within a
// width×height canvas.
func (o Options) Fits(width, height uint32) bool {
	// The farthest pixel of a 2x2 star sits at count*cell along each axis.
	maxX := uint64(o.CellCount.X) * uint64(o.CellSize.Width)
	maxY := uint64(o.CellCount.Y) * uint64(o.CellSize.Height)
	return maxX < uint64(width) && maxY < uint64(height)
}

// Validate checks that opts describes a usable grid for a width×height
// canvas.
func (o Options) Validate(width, height uint32) error {
	if o.CellCount.X == 0 || o.CellCount.Y == 0 {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig, "star grid has no cells (%d columns, %d rows)", o.CellCount.X, o.CellCount.Y)
	}
	if o.CellSize.IsZero() {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig, "star cells are empty (%v)", o.CellSize)
	}
	if !o.Fits(width, height) {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig,
			"star grid %dx%d of %v cells overruns %dx%d canvas",
			o.CellCount.X, o.CellCount.Y, o.CellSize, width, height)
	}
	if err := skyerrors.ValidateProbability("star presence probability", o.PresenceProb); err != nil {
		return err
	}
	return skyerrors.ValidateProbability("big star probability", o.BigProb)
}

// Render visits the grid row by row. Per cell it draws a presence roll, and
// for present stars a size roll and an (x, y) offset within the cell, then
// writes a 1x1 or 2x2 block of opts.Color.
//
// Both rolls are in [0, 1) and compared strictly below the probability: a
// cell holds a star when roll < PresenceProb and the star is big when
// roll < BigProb. This differs from a "skip when roll > p" and "big when
// roll <= p" reading only when a roll equals p exactly, and it makes 0 never
// fire and 1 always fire.
//
// Stars are not clipped to the canvas; the grid must satisfy Fits. It
// returns the number of stars placed.
func Render(c *canvas.Canvas, src rng.Source, opts Options) int {
	stars := 0
	for row := range opts.CellCount.Y {
		for col := range opts.CellCount.X {
			if src.Float64() >= opts.PresenceProb {
				continue
			}

			size := uint32(1)
			if src.Float64() < opts.BigProb {
				size = 2
			}

			off := offset(src, opts.CellSize)
			x := col*opts.CellSize.Width + off.X
			y := row*opts.CellSize.Height + off.Y
			for dy := range size {
				for dx := range size {
					c.Set(x+dx, y+dy, opts.Color)
				}
			}
			stars++
		}
	}
	return stars
}

// offset picks a position inside a cell.
func offset(src rng.Source, cell geom.Size) geom.Point {
	x := uint32(src.IntN(int(cell.Width)))
	y := uint32(src.IntN(int(cell.Height)))
	return geom.Pt(x, y)
}
