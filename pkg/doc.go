// Package pkg provides the libraries behind the skyline image generator.
//
// # Overview
//
// Skyline draws a procedural city at night: a black sky scattered with
// small white stars, over a row of overlapping buildings standing on the
// bottom edge of the image, each lit by a grid of windows.
//
//  1. [geom], [raster], [canvas] - pixel geometry, rectangle drawing and the
//     RGB image sink with its png/bmp/tiff encoders
//  2. [rng] - the seeded random source every generator draws from
//  3. [skyline], [nightsky] - the scene generators
//  4. [config], [pipeline] - configuration and the render → encode run
//  5. [errors], [observability], [buildinfo] - supporting infrastructure
//
// # Architecture
//
//	config.Config
//	     ↓
//	[pipeline] canvas.New → Fill(sky) → nightsky.Render → skyline.Compose
//	     ↓
//	canvas.Encode → png / bmp / tiff
//
// # Quick Start
//
//	result, err := pipeline.NewRunner(logger).Execute(ctx, pipeline.Options{
//	    Config: config.Default(),
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("skyline.png", result.Artifacts["png"], 0644)
package pkg
