package nightsky

import (
	"testing"

	"github.com/matzehuels/skyline/pkg/canvas"
	skyerrors "github.com/matzehuels/skyline/pkg/errors"
	"github.com/matzehuels/skyline/pkg/geom"
	"github.com/matzehuels/skyline/pkg/rng"
)

func defaultOptions() Options {
	count, size := Grid(1900, 1080, 30)
	return Options{
		CellCount:    count,
		CellSize:     size,
		PresenceProb: 0.7,
		BigProb:      0.3,
		Color:        canvas.White,
	}
}

func TestGridDefaults(t *testing.T) {
	count, size := Grid(1900, 1080, 30)
	if count != geom.Pt(30, 17) {
		t.Errorf("count = %v, want (30,17)", count)
	}
	if size != geom.Sz(63, 63) {
		t.Errorf("size = %v, want 63x63", size)
	}
}

func TestGridAlwaysFits(t *testing.T) {
	tests := []struct {
		width, height, columns uint32
	}{
		{1900, 1080, 30},
		{1800, 1200, 30}, // divides evenly
		{100, 100, 10},
		{480, 640, 1},
		{64, 64, 63},
	}

	for _, tt := range tests {
		count, size := Grid(tt.width, tt.height, tt.columns)
		opts := Options{CellCount: count, CellSize: size}
		if !opts.Fits(tt.width, tt.height) {
			t.Errorf("Grid(%d, %d, %d) = %v of %v does not fit", tt.width, tt.height, tt.columns, count, size)
		}
	}
}

func TestGridDegenerate(t *testing.T) {
	if count, size := Grid(0, 100, 10); count != (geom.Point{}) || !size.IsZero() {
		t.Errorf("zero width: %v %v", count, size)
	}
	// Too few columns for a single row.
	count, size := Grid(1000, 10, 5)
	if count.Y != 0 || !size.IsZero() {
		t.Errorf("flat canvas: %v %v", count, size)
	}
}

func TestRenderNoStars(t *testing.T) {
	c := canvas.New(1900, 1080)
	opts := defaultOptions()
	opts.PresenceProb = 0

	if n := Render(c, rng.New(1), opts); n != 0 {
		t.Errorf("Render() = %d stars, want 0", n)
	}
	if got := c.Count(canvas.White); got != 0 {
		t.Errorf("Count(white) = %d, want 0", got)
	}
}

func TestRenderOneSmallStarPerCell(t *testing.T) {
	c := canvas.New(1900, 1080)
	opts := defaultOptions()
	opts.PresenceProb = 1
	opts.BigProb = 0

	cells := int(opts.CellCount.X * opts.CellCount.Y)
	if n := Render(c, rng.New(2), opts); n != cells {
		t.Errorf("Render() = %d stars, want %d", n, cells)
	}
	if got := c.Count(canvas.White); got != cells {
		t.Errorf("Count(white) = %d, want %d", got, cells)
	}

	// Exactly one lit pixel inside each cell.
	for row := range opts.CellCount.Y {
		for col := range opts.CellCount.X {
			lit := 0
			for dy := range opts.CellSize.Height {
				for dx := range opts.CellSize.Width {
					x := col*opts.CellSize.Width + dx
					y := row*opts.CellSize.Height + dy
					if c.Pixel(x, y) == canvas.White {
						lit++
					}
				}
			}
			if lit != 1 {
				t.Fatalf("cell (%d,%d) has %d lit pixels, want 1", col, row, lit)
			}
		}
	}
}

func TestRenderAllBigStars(t *testing.T) {
	c := canvas.New(200, 100)
	count, size := Grid(200, 100, 4)
	opts := Options{CellCount: count, CellSize: size, PresenceProb: 1, BigProb: 1, Color: canvas.White}

	n := Render(c, rng.New(3), opts)
	if n != int(count.X*count.Y) {
		t.Fatalf("Render() = %d stars, want %d", n, count.X*count.Y)
	}
	// A 2x2 block can spill one pixel into the next cell and overlap a
	// neighbour, so only the count range is fixed.
	if got := c.Count(canvas.White); got > 4*n || got < n {
		t.Errorf("Count(white) = %d for %d big stars", got, n)
	}
}

func TestRenderScriptedPlacement(t *testing.T) {
	c := canvas.New(21, 21)
	opts := Options{
		CellCount:    geom.Pt(2, 2),
		CellSize:     geom.Sz(10, 10),
		PresenceProb: 0.5,
		BigProb:      0.5,
		Color:        canvas.White,
	}
	// Floats per cell: presence, then size for present cells.
	// cell (0,0): present, big; (1,0): absent; (0,1): present, small; (1,1): absent.
	src := &rng.Scripted{
		Floats: []float64{0.1, 0.2, 0.9, 0.3, 0.8, 0.6},
		Ints:   []int{9, 9, 4, 7},
	}

	if n := Render(c, src, opts); n != 2 {
		t.Fatalf("Render() = %d stars, want 2", n)
	}

	want := []geom.Point{
		geom.Pt(9, 9), geom.Pt(10, 9), geom.Pt(9, 10), geom.Pt(10, 10), // big star at cell (0,0) + (9,9)
		geom.Pt(4, 17), // small star at cell (0,1) + (4,7)
	}
	for _, p := range want {
		if c.Pixel(p.X, p.Y) != canvas.White {
			t.Errorf("pixel %v not lit", p)
		}
	}
	if got := c.Count(canvas.White); got != len(want) {
		t.Errorf("Count(white) = %d, want %d", got, len(want))
	}
}

func TestRenderRollAtProbability(t *testing.T) {
	tests := []struct {
		name       string
		floats     []float64
		wantStars  int
		wantPixels int
	}{
		{"presence roll equal to probability is skipped", []float64{0.5}, 0, 0},
		{"big roll equal to probability is small", []float64{0.25, 0.5}, 1, 1},
		{"big roll below probability is big", []float64{0.25, 0.49}, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := canvas.New(20, 20)
			opts := Options{
				CellCount:    geom.Pt(1, 1),
				CellSize:     geom.Sz(10, 10),
				PresenceProb: 0.5,
				BigProb:      0.5,
				Color:        canvas.White,
			}
			src := &rng.Scripted{Ints: []int{3, 4}, Floats: tt.floats}

			if got := Render(c, src, opts); got != tt.wantStars {
				t.Errorf("Render() = %d stars, want %d", got, tt.wantStars)
			}
			if got := c.Count(canvas.White); got != tt.wantPixels {
				t.Errorf("white pixels = %d, want %d", got, tt.wantPixels)
			}
		})
	}
}

func TestRenderStaysInBounds(t *testing.T) {
	// The largest possible big star in the last cell must stay on canvas.
	count, size := Grid(1900, 1080, 30)
	opts := Options{CellCount: count, CellSize: size, PresenceProb: 1, BigProb: 1, Color: canvas.White}
	c := canvas.New(1900, 1080)
	src := &rng.Scripted{Ints: []int{-1}} // IntN(n) yields n-1

	n := Render(c, src, opts)
	if got := c.Count(canvas.White); got != 4*n {
		t.Errorf("Count(white) = %d, want %d (no pixel lost off canvas)", got, 4*n)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"no columns", func(o *Options) { o.CellCount.X = 0 }},
		{"empty cell", func(o *Options) { o.CellSize.Width = 0 }},
		{"overruns", func(o *Options) { o.CellSize.Width = 100 }},
		{"bad presence", func(o *Options) { o.PresenceProb = 1.5 }},
		{"bad big", func(o *Options) { o.BigProb = -0.1 }},
	}

	if err := defaultOptions().Validate(1900, 1080); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.modify(&opts)
			if err := opts.Validate(1900, 1080); !skyerrors.Is(err, skyerrors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() = %v, want INVALID_CONFIG", err)
			}
		})
	}
}
