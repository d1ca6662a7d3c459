// Package pipeline composes a complete skyline image.
//
// This package implements the render → encode pipeline used by the CLI. By
// centralizing it, every entry point draws the scene in the same order from
// the same random stream, so an image is reproducible from its seed and
// configuration.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Render: allocate the canvas, fill the sky, scatter stars, then compose
//     the skyline over them. All randomness comes from one source seeded
//     from Options.Config.Seed.
//  2. Encode: serialize the canvas in each requested format.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  config.Default(),
//	    Formats: []string{"png"},
//	})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/skyline/pkg/canvas"
	"github.com/matzehuels/skyline/pkg/config"
	"github.com/matzehuels/skyline/pkg/rng"
	"github.com/matzehuels/skyline/pkg/skyline"
)

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = canvas.FormatPNG

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Config  config.Config
	Formats []string

	// Runtime options
	Logger *log.Logger
}

// SetDefaults fills in the output format, a seed when the configuration
// leaves it at zero, and a discard logger.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Config.Seed == 0 {
		o.Config.Seed = rng.Seed()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the configuration and formats.
func (o *Options) Validate() error {
	if err := o.Config.Validate(); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := canvas.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	// Seed is the seed actually used, so the image can be reproduced.
	Seed uint64

	// Canvas is the rendered image.
	Canvas *canvas.Canvas

	// Buildings are the skyline buildings in draw order.
	Buildings []skyline.Building

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Buildings   int
	Windows     int
	Stars       int
	SkyTime     time.Duration
	SkylineTime time.Duration
	EncodeTime  time.Duration
}
