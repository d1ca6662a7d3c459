// Package cli implements the skyline command-line interface.
//
// # Commands
//
//   - render: draw a night skyline and write it as png, bmp or tiff
//   - config: print the effective configuration as TOML
//   - completion: generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed to commands through context.Context.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/skyline/pkg/buildinfo"
	"github.com/matzehuels/skyline/pkg/config"
	"github.com/matzehuels/skyline/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "skyline"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Skyline draws procedural night city skylines",
		Long:         `Skyline is a CLI tool that draws a random city skyline at night: a row of lit buildings with windows under a sky of scattered stars.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// configFlags are the flags shared by commands that build a configuration.
type configFlags struct {
	path   string // TOML file layered over the defaults
	seed   uint64 // overrides the configured seed when non-zero
	width  uint32 // overrides the canvas width when non-zero
	height uint32 // overrides the canvas height when non-zero
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "config", "c", "", "TOML configuration file")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed, at most 2^63-1 (0 picks one)")
	cmd.Flags().Uint32Var(&f.width, "width", 0, "canvas width in pixels")
	cmd.Flags().Uint32Var(&f.height, "height", 0, "canvas height in pixels")
}

// load reads the configuration file, if any, and applies flag overrides.
func (f *configFlags) load() (config.Config, error) {
	cfg := config.Default()
	if f.path != "" {
		loaded, err := config.Load(f.path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if f.seed != 0 {
		if err := config.ValidateSeed(f.seed); err != nil {
			return config.Config{}, err
		}
		cfg.Seed = f.seed
	}
	if f.width != 0 {
		cfg.Canvas.Width = f.width
	}
	if f.height != 0 {
		cfg.Canvas.Height = f.height
	}
	return cfg, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	formats := strings.Split(s, ",")
	for i, f := range formats {
		formats[i] = strings.TrimSpace(f)
	}
	return formats
}
