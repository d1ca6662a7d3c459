package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/skyline/pkg/canvas"
	"github.com/matzehuels/skyline/pkg/nightsky"
	"github.com/matzehuels/skyline/pkg/observability"
	"github.com/matzehuels/skyline/pkg/rng"
	"github.com/matzehuels/skyline/pkg/skyline"
)

// Runner executes pipeline runs.
//
// The Runner holds no per-run state, so it can be reused. Each run owns its
// own canvas and random source.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete render → encode pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result, err := r.Render(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	encodeStart := time.Now()
	artifacts, err := r.Encode(ctx, result.Canvas, opts.Formats)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)

	opts.Logger.Info("rendered skyline",
		"run", result.RunID,
		"seed", result.Seed,
		"buildings", result.Stats.Buildings,
		"stars", result.Stats.Stars,
		"formats", opts.Formats,
		"duration", result.Stats.SkyTime+result.Stats.SkylineTime+result.Stats.EncodeTime)

	return result, nil
}

// Render draws the scene. The sky and stars go down first; buildings are
// composed over them. opts must already be defaulted and validated.
func (r *Runner) Render(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	cfg := opts.Config
	logger := opts.Logger

	sky, err := cfg.SkyColor()
	if err != nil {
		return nil, err
	}
	starOpts, err := cfg.StarOptions()
	if err != nil {
		return nil, err
	}
	skylineOpts, err := cfg.SkylineOptions()
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID: uuid.NewString(),
		Seed:  cfg.Seed,
	}
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Seed)
	logger.Debug("rendering", "run", result.RunID, "size", canvasSize(cfg.Canvas.Width, cfg.Canvas.Height), "seed", cfg.Seed)

	src := rng.New(cfg.Seed)
	c := canvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
	c.Fill(sky)

	skyStart := time.Now()
	result.Stats.Stars = nightsky.Render(c, src, starOpts)
	result.Stats.SkyTime = time.Since(skyStart)
	logger.Debug("placed stars",
		"cells", starOpts.CellCount.X*starOpts.CellCount.Y,
		"stars", result.Stats.Stars,
		"duration", result.Stats.SkyTime)

	skylineStart := time.Now()
	result.Buildings = skyline.Compose(c, src, skylineOpts)
	result.Stats.SkylineTime = time.Since(skylineStart)
	result.Stats.Buildings = len(result.Buildings)
	for _, b := range result.Buildings {
		result.Stats.Windows += len(b.Windows)
	}
	logger.Debug("composed skyline",
		"buildings", result.Stats.Buildings,
		"windows", result.Stats.Windows,
		"duration", result.Stats.SkylineTime)

	result.Canvas = c
	hooks.OnRenderComplete(ctx, result.Stats.Buildings, result.Stats.Stars, result.Stats.SkyTime+result.Stats.SkylineTime)
	return result, nil
}

// Encode serializes c in every requested format.
func (r *Runner) Encode(ctx context.Context, c *canvas.Canvas, formats []string) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnEncodeStart(ctx, formats)
	start := time.Now()

	artifacts := make(map[string][]byte, len(formats))
	total := 0
	for _, format := range formats {
		if _, done := artifacts[format]; done {
			continue
		}
		if err := ctx.Err(); err != nil {
			hooks.OnEncodeComplete(ctx, formats, total, time.Since(start), err)
			return nil, err
		}
		data, err := c.Bytes(format)
		if err != nil {
			hooks.OnEncodeComplete(ctx, formats, total, time.Since(start), err)
			return nil, err
		}
		artifacts[format] = data
		total += len(data)
		r.Logger.Debug("encoded", "format", format, "bytes", len(data))
	}

	hooks.OnEncodeComplete(ctx, formats, total, time.Since(start), nil)
	return artifacts, nil
}

// applyLogger gives opts the runner's logger when it has none of its own.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func canvasSize(w, h uint32) string {
	return fmt.Sprintf("%dx%d", w, h)
}
