package skyline

import (
	"github.com/matzehuels/skyline/pkg/canvas"
	"github.com/matzehuels/skyline/pkg/geom"
	"github.com/matzehuels/skyline/pkg/raster"
	"github.com/matzehuels/skyline/pkg/rng"
)

// Building is one generated building. X is the absolute canvas column of its
// left edge; Windows are in the building's local space.
type Building struct {
	X       uint32
	Size    geom.Size
	Color   canvas.Color
	Pattern Pattern
	Windows []Window
}

// Right returns the canvas column just past the building's right edge.
func (b Building) Right() uint32 {
	return b.X + b.Size.Width
}

// Transform maps the building's local space onto a canvas of the given
// height, resting the building on the canvas bottom.
func (b Building) Transform(canvasHeight uint32) raster.Transform {
	return raster.PinBottom(b.X, canvasHeight, b.Size.Height)
}

// GenerateOptions controls Generate.
type GenerateOptions struct {
	X           uint32
	HeightRange rng.Range
	WidthRange  rng.Range
	Margin      uint32
	Palette     []canvas.Color
}

// Generate builds a random building at column opts.X. It draws, in order,
// the height, the width, the window pattern and the colour; both ranges must
// be non-empty and non-negative and the palette non-empty.
func Generate(src rng.Source, opts GenerateOptions) Building {
	height := opts.HeightRange.DrawUint(src)
	width := opts.WidthRange.DrawUint(src)
	pattern := RandomPattern(src)
	windows := LayoutWindows(pattern, width, height, opts.Margin)

	return Building{
		X:       opts.X,
		Size:    geom.Sz(height, width),
		Color:   rng.Pick(src, opts.Palette),
		Pattern: pattern,
		Windows: windows,
	}
}

// Style holds the decoration settings shared by every building.
type Style struct {
	BorderWidth       uint32
	WindowBorderWidth uint32
	BorderColor       canvas.Color
	PaneColor         canvas.Color
}

// DefaultStyle returns 5px black borders around buildings and windows and
// mid-gray panes.
func DefaultStyle() Style {
	return Style{
		BorderWidth:       5,
		WindowBorderWidth: 5,
		BorderColor:       canvas.Black,
		PaneColor:         canvas.RGB(120, 120, 120),
	}
}

// Render draws the building onto c: the body, a border along the top, left
// and right edges, then each window's pane followed by its four borders.
// The bottom edge gets no border since it sits on the canvas edge.
func (b Building) Render(c *canvas.Canvas, style Style) {
	to := b.Transform(c.Height())
	origin := geom.Pt(0, 0)

	raster.FillRect(c, origin, b.Size, b.Color, to)
	raster.StrokeRect(c, origin, b.Size, style.BorderWidth, style.BorderColor,
		raster.EdgeTop|raster.EdgeLeft|raster.EdgeRight, to)

	for _, w := range b.Windows {
		raster.FillRect(c, w.Position, w.Size, style.PaneColor, to)
		raster.StrokeRect(c, w.Position, w.Size, style.WindowBorderWidth, style.BorderColor, raster.EdgesAll, to)
	}
}
