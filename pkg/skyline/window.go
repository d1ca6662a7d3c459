package skyline

import (
	"github.com/matzehuels/skyline/pkg/geom"
	"github.com/matzehuels/skyline/pkg/rng"
)

// Pattern is a window layout variant.
type Pattern uint8

const (
	// TwoByTwo is one large square window per row.
	//
	//	[     ]
	//	[     ]
	TwoByTwo Pattern = iota
	// OneByTwo is two tall windows per row.
	//
	//	[ ] [ ]
	//	[ ] [ ]
	OneByTwo
	// TwoByOne is one wide, short window per row.
	//
	//	[     ]
	TwoByOne
	// OneByOne is two square windows per row.
	//
	//	[ ] [ ]
	OneByOne
)

// Patterns lists every pattern in selection order.
var Patterns = []Pattern{TwoByTwo, OneByTwo, TwoByOne, OneByOne}

// RandomPattern picks a pattern uniformly from Patterns.
func RandomPattern(src rng.Source) Pattern {
	return rng.Pick(src, Patterns)
}

func (p Pattern) String() string {
	switch p {
	case TwoByTwo:
		return "2x2"
	case OneByTwo:
		return "1x2"
	case TwoByOne:
		return "2x1"
	case OneByOne:
		return "1x1"
	}
	return "unknown"
}

// PerRow returns how many windows one row holds.
func (p Pattern) PerRow() uint32 {
	switch p {
	case OneByTwo, OneByOne:
		return 2
	}
	return 1
}

// WindowSize returns the size of every window on a building of the given
// width. Buildings too narrow for the margins yield a zero size.
func (p Pattern) WindowSize(buildingWidth, margin uint32) geom.Size {
	bw, m := int64(buildingWidth), int64(margin)

	var h, w int64
	switch p {
	case TwoByTwo:
		h = bw - 2*m
		w = h
	case TwoByOne:
		w = bw - 2*m
		h = w / 2
	case OneByTwo:
		w = (bw - 3*m) / 2
		h = w * 2
	case OneByOne:
		w = (bw - 3*m) / 2
		h = w
	}
	return geom.Sz(uint32(max(0, h)), uint32(max(0, w)))
}

// Window is a single window pane positioned in its building's local space.
type Window struct {
	Position geom.Point
	Size     geom.Size
}

// LayoutWindows tiles windows of pattern p across a building face.
//
// Rows start at y = margin and repeat every window height + margin while the
// row top is above the building bottom; windows within a row start at
// x = margin and repeat every window width + margin. The result is ordered
// top-to-bottom, left-to-right. It is empty when the building is too narrow
// for the pattern.
//
// The last row may extend below the building bottom. After pinning, that
// part lies below the canvas and is clipped when drawn.
func LayoutWindows(p Pattern, buildingWidth, buildingHeight, margin uint32) []Window {
	size := p.WindowSize(buildingWidth, margin)
	if size.IsZero() {
		return nil
	}

	perRow := p.PerRow()
	var windows []Window
	for y := margin; y < buildingHeight; y += size.Height + margin {
		x := margin
		for range perRow {
			windows = append(windows, Window{Position: geom.Pt(x, y), Size: size})
			x += size.Width + margin
		}
	}
	return windows
}
