package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/skyline/pkg/canvas"
	skyerrors "github.com/matzehuels/skyline/pkg/errors"
	"github.com/matzehuels/skyline/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config  configFlags
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: "png", "bmp", "tiff"
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts       renderOpts
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a night skyline image",
		Long: `Render a night skyline image.

The scene is a black sky with a random scattering of small stars, over a row
of buildings of random height, width and shade standing on the bottom edge.
Each building carries a grid of lit windows.

Every run picks a fresh seed unless --seed or the config file sets one. The
seed is printed so a picture can be reproduced.

When --format is omitted the format follows the --output extension, falling
back to png.`,
		Example: `  skyline render
  skyline render -o night.bmp --seed 42
  skyline render -o out/city -f png,tiff --width 3840 --height 2160
  skyline render -c skyline.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = resolveFormats(parseFormats(formatsStr), opts.output)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), bmp, tiff (comma-separated)")
	opts.config.register(cmd)

	return cmd
}

// runRender builds the configuration, runs the pipeline and writes every
// artifact.
func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := opts.config.load()
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, opts.formats)
	for _, path := range paths {
		if err := skyerrors.ValidatePath(path); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering skyline...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		Config:  cfg,
		Formats: opts.formats,
		Logger:  logger,
	})
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return err
		}
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	for i, format := range opts.formats {
		if err := canvas.WriteFile(paths[i], result.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done("Wrote files", "count", len(paths))

	printSuccess("Rendered %dx%d skyline", result.Canvas.Width(), result.Canvas.Height())
	for _, path := range paths {
		printFile(path)
	}
	printStats(result.Stats)
	printKeyValue("seed", fmt.Sprint(result.Seed))
	printNextStep("Reproduce", reproduceCommand(opts.config, result.Seed))
	return nil
}

// reproduceCommand returns a render command line that draws the same image:
// the config flags of this run with the seed that was actually used.
func reproduceCommand(flags configFlags, seed uint64) string {
	args := []string{appName, "render"}
	if flags.path != "" {
		args = append(args, "-c", strconv.Quote(flags.path))
	}
	if flags.width != 0 {
		args = append(args, "--width", fmt.Sprint(flags.width))
	}
	if flags.height != 0 {
		args = append(args, "--height", fmt.Sprint(flags.height))
	}
	args = append(args, "--seed", fmt.Sprint(seed))
	return strings.Join(args, " ")
}

// resolveFormats returns the requested formats with duplicates removed. With
// none requested, the output extension decides, then the pipeline default.
func resolveFormats(formats []string, output string) []string {
	if len(formats) == 0 {
		if f := canvas.FormatFromPath(output); f != "" {
			return []string{f}
		}
		return []string{pipeline.DefaultFormat}
	}
	seen := make(map[string]bool, len(formats))
	unique := formats[:0]
	for _, f := range formats {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}
	return unique
}

// outputPaths returns the file path for each format, in order. A single
// format whose extension already matches output writes to output as is.
// Otherwise output is a base path and each format adds its own extension.
func outputPaths(output string, formats []string) []string {
	if output == "" {
		output = appName
	}
	ext := canvas.FormatFromPath(output)
	if len(formats) == 1 && ext == formats[0] {
		return []string{output}
	}

	base := output
	if ext != "" {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + "." + f
	}
	return paths
}
