package canvas

import (
	"image"
	"image/color"
)

// bytesPerPixel is the stride of one pixel in Canvas.Pix.
const bytesPerPixel = 3

// Canvas is a fixed-size RGB pixel buffer. The zero value is an empty canvas.
//
// A Canvas is not safe for concurrent use; one renderer owns it at a time.
type Canvas struct {
	width  uint32
	height uint32
	// Pix holds the pixels in row-major order, 3 bytes (R, G, B) each.
	Pix []uint8
}

// New allocates a width×height canvas filled with black.
func New(width, height uint32) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		Pix:    make([]uint8, int(width)*int(height)*bytesPerPixel),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() uint32 { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() uint32 { return c.height }

// InBounds reports whether (x, y) addresses a pixel on the canvas.
func (c *Canvas) InBounds(x, y uint32) bool {
	return x < c.width && y < c.height
}

func (c *Canvas) offset(x, y uint32) int {
	return (int(y)*int(c.width) + int(x)) * bytesPerPixel
}

// Set writes col at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) Set(x, y uint32, col Color) {
	if !c.InBounds(x, y) {
		return
	}
	i := c.offset(x, y)
	c.Pix[i] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
}

// Pixel returns the colour at (x, y), or black outside the canvas.
func (c *Canvas) Pixel(x, y uint32) Color {
	if !c.InBounds(x, y) {
		return Black
	}
	i := c.offset(x, y)
	return Color{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2]}
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col Color) {
	for i := 0; i < len(c.Pix); i += bytesPerPixel {
		c.Pix[i] = col.R
		c.Pix[i+1] = col.G
		c.Pix[i+2] = col.B
	}
}

// Count returns how many pixels equal col.
func (c *Canvas) Count(col Color) int {
	n := 0
	for i := 0; i < len(c.Pix); i += bytesPerPixel {
		if c.Pix[i] == col.R && c.Pix[i+1] == col.G && c.Pix[i+2] == col.B {
			n++
		}
	}
	return n
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model { return Model }

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(c.width), int(c.height))
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	if x < 0 || y < 0 {
		return Black
	}
	return c.Pixel(uint32(x), uint32(y))
}

// RGBA copies the canvas into an opaque *image.RGBA, which the standard
// encoders handle on their fast paths.
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for src, dst := 0, 0; src < len(c.Pix); src, dst = src+bytesPerPixel, dst+4 {
		img.Pix[dst] = c.Pix[src]
		img.Pix[dst+1] = c.Pix[src+1]
		img.Pix[dst+2] = c.Pix[src+2]
		img.Pix[dst+3] = 0xff
	}
	return img
}

// Ensure Canvas implements image.Image.
var _ image.Image = (*Canvas)(nil)
