package skyline

import (
	"math"

	"github.com/matzehuels/skyline/pkg/canvas"
	skyerrors "github.com/matzehuels/skyline/pkg/errors"
	"github.com/matzehuels/skyline/pkg/rng"
)

// Options controls Plan and Compose.
type Options struct {
	// OffsetRange is the signed horizontal jitter applied per building.
	OffsetRange rng.Range
	HeightRange rng.Range
	WidthRange  rng.Range
	// Margin is the gap between windows and between windows and the
	// building edges.
	Margin  uint32
	Palette []canvas.Color
	Style   Style
}

// Validate checks that opts can be planned. The placement cursor must
// always move right, so the narrowest building plus the most negative
// offset has to be positive.
func (o Options) Validate() error {
	if err := skyerrors.ValidateRange("building offset", o.OffsetRange.Min, o.OffsetRange.Max); err != nil {
		return err
	}
	if err := skyerrors.ValidateRange("building height", o.HeightRange.Min, o.HeightRange.Max); err != nil {
		return err
	}
	if err := skyerrors.ValidateRange("building width", o.WidthRange.Min, o.WidthRange.Max); err != nil {
		return err
	}
	if o.HeightRange.Min < 0 || o.WidthRange.Min < 0 {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig, "building sizes must be non-negative")
	}
	// Sizes are drawn as uint32, so the exclusive bound may be at most 1<<32.
	if int64(o.HeightRange.Max) > math.MaxUint32+1 || int64(o.WidthRange.Max) > math.MaxUint32+1 {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig,
			"building sizes must fit in 32 bits, got height %v and width %v", o.HeightRange, o.WidthRange)
	}
	if o.WidthRange.Min+o.OffsetRange.Min <= 0 {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig,
			"minimum building width %d plus minimum offset %d must be positive",
			o.WidthRange.Min, o.OffsetRange.Min)
	}
	if len(o.Palette) == 0 {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig, "building palette is empty")
	}
	return nil
}

// Plan places buildings across a canvas of the given width and returns them
// in draw order.
//
// A cursor starts at column 0. For each building an offset is drawn; the
// building goes at max(0, cursor+offset) and the cursor then advances by
// the building width plus the same offset, so consecutive offsets compound
// into uneven gaps and overlaps. Placement stops once a position would fall
// off the canvas. The last placed building is then stretched or trimmed so
// its right edge lands on column width-1, and the whole list is shuffled
// to randomize which neighbours occlude each other.
//
// opts must pass Validate.
func Plan(src rng.Source, width uint32, opts Options) []Building {
	var buildings []Building

	for cursor := 0; cursor < int(width); {
		offset := opts.OffsetRange.Draw(src)
		position := max(0, cursor+offset)
		if position >= int(width) {
			break
		}
		b := Generate(src, GenerateOptions{
			X:           uint32(position),
			HeightRange: opts.HeightRange,
			WidthRange:  opts.WidthRange,
			Margin:      opts.Margin,
			Palette:     opts.Palette,
		})
		cursor += int(b.Size.Width) + offset
		buildings = append(buildings, b)
	}

	if n := len(buildings); n > 0 {
		last := &buildings[n-1]
		last.Size.Width = width - 1 - last.X
	}

	src.Shuffle(len(buildings), func(i, j int) {
		buildings[i], buildings[j] = buildings[j], buildings[i]
	})
	return buildings
}

// Compose plans a skyline for c and renders it. It returns the buildings in
// the order they were drawn.
func Compose(c *canvas.Canvas, src rng.Source, opts Options) []Building {
	buildings := Plan(src, c.Width(), opts)
	for _, b := range buildings {
		b.Render(c, opts.Style)
	}
	return buildings
}
