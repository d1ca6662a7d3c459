// Package skyline generates and renders a row of overlapping buildings.
//
// # Overview
//
// A skyline is built in two phases. [Plan] walks across the canvas width
// and places buildings with randomized offsets, sizes, colours and window
// patterns, then shuffles them into draw order. [Compose] runs Plan and
// renders every building onto a canvas, later buildings overwriting earlier
// ones where their footprints overlap.
//
//	src := rng.New(seed)
//	buildings := skyline.Compose(c, src, skyline.Options{
//	    OffsetRange: rng.R(-100, 50),
//	    HeightRange: rng.R(500, 900),
//	    WidthRange:  rng.R(200, 275),
//	    Margin:      50,
//	    Palette:     palette,
//	    Style:       skyline.DefaultStyle(),
//	})
//
// # Coordinates
//
// Each [Building] has a local space whose origin is its top-left corner, y
// growing downward. Windows are positioned in that space. At render time the
// building is pinned so its bottom edge rests on the canvas bottom, using
// [raster.PinBottom].
//
// # Windows
//
// A building's windows all share one [Pattern], chosen uniformly per
// building. The pattern fixes how many windows sit in a row and how each
// window's size derives from the building width; see [LayoutWindows].
//
// [raster.PinBottom]: github.com/matzehuels/skyline/pkg/raster.PinBottom
package skyline
