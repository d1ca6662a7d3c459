// Package geom provides the integer point and size types shared by the
// rasterizer, the window layout and the star field.
//
// Both types are unsigned: local coordinates never go negative, and any
// signed arithmetic (for example building offsets) is resolved by the caller
// before a Point is built.
package geom

import "fmt"

// Point is an (X, Y) offset relative to some local origin. Y grows downward.
type Point struct {
	X, Y uint32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y uint32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a height/width pair. Field order follows the (height, width)
// convention used throughout the layout code.
type Size struct {
	Height, Width uint32
}

// Sz is shorthand for Size{Height: h, Width: w}.
func Sz(h, w uint32) Size {
	return Size{Height: h, Width: w}
}

// IsZero reports whether either dimension is zero. A zero size means there
// is nothing to render.
func (s Size) IsZero() bool {
	return s.Height == 0 || s.Width == 0
}

// Area returns Height*Width.
func (s Size) Area() uint64 {
	return uint64(s.Height) * uint64(s.Width)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Height, s.Width)
}
