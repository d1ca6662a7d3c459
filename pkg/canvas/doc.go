// Package canvas provides the RGB pixel buffer every renderer draws into and
// the encoders that write it out as an image file.
//
// A [Canvas] has a fixed width and height with its origin at the top-left
// corner; row 0 is the top of the image. It implements [image.Image], so it
// can be handed to any standard encoder, but [Canvas.Encode] and
// [Canvas.Save] are the supported way out:
//
//	c := canvas.New(1900, 1080)
//	c.Set(10, 10, canvas.RGB(255, 255, 255))
//	if err := c.Save("skyline.png", canvas.FormatPNG); err != nil {
//	    return err
//	}
//
// # Formats
//
//   - png: lossless, via image/png
//   - bmp: uncompressed Windows bitmap, via golang.org/x/image/bmp
//   - tiff: via golang.org/x/image/tiff
//
// [FormatFromPath] derives a format from a file extension.
package canvas
