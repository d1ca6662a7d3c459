// Package config holds the tunable parameters of a skyline render.
//
// Configuration is plain TOML. Every key is optional; anything left out keeps
// the value from [Default]:
//
//	seed = 42
//
//	[canvas]
//	width = 1920
//
//	[buildings]
//	palette = ["#1e1e1e", "#505050"]
//	offset = { min = -120, max = 40 }
//
// Colours are "#rrggbb" (or "#rgb") hex strings.
package config

import (
	"bytes"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/skyline/pkg/canvas"
	skyerrors "github.com/matzehuels/skyline/pkg/errors"
	"github.com/matzehuels/skyline/pkg/nightsky"
	"github.com/matzehuels/skyline/pkg/rng"
	"github.com/matzehuels/skyline/pkg/skyline"
)

// Config is the full render configuration.
type Config struct {
	// Seed drives every random draw. Zero means pick a fresh seed per run.
	Seed      uint64    `toml:"seed"`
	Canvas    Canvas    `toml:"canvas"`
	Buildings Buildings `toml:"buildings"`
	Windows   Windows   `toml:"windows"`
	Stars     Stars     `toml:"stars"`
}

// Canvas sets the output image size and background.
type Canvas struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	Sky    string `toml:"sky"`
}

// Buildings sets building sizes, placement jitter and colours.
type Buildings struct {
	Height      rng.Range `toml:"height"`
	Width       rng.Range `toml:"width"`
	Offset      rng.Range `toml:"offset"`
	Palette     []string  `toml:"palette"`
	BorderWidth uint32    `toml:"border_width"`
	BorderColor string    `toml:"border_color"`
}

// Windows sets window spacing and decoration.
type Windows struct {
	Margin      uint32 `toml:"margin"`
	BorderWidth uint32 `toml:"border_width"`
	PaneColor   string `toml:"pane_color"`
}

// Stars sets the star field. The number of rows is derived from Columns and
// the canvas aspect ratio.
type Stars struct {
	Columns  uint32  `toml:"columns"`
	Presence float64 `toml:"presence"`
	Big      float64 `toml:"big"`
	Color    string  `toml:"color"`
}

// Default returns the stock configuration: a 1900x1080 night scene with
// gray buildings and white stars.
func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:  1900,
			Height: 1080,
			Sky:    "#000000",
		},
		Buildings: Buildings{
			Height:      rng.R(500, 900),
			Width:       rng.R(200, 275),
			Offset:      rng.R(-100, 50),
			Palette:     []string{"#1e1e1e", "#505050", "#c8c8c8", "#afafaf"},
			BorderWidth: 5,
			BorderColor: "#000000",
		},
		Windows: Windows{
			Margin:      50,
			BorderWidth: 5,
			PaneColor:   "#787878",
		},
		Stars: Stars{
			Columns:  30,
			Presence: 0.7,
			Big:      0.3,
			Color:    "#ffffff",
		},
	}
}

// Load reads a TOML file on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, skyerrors.Wrap(skyerrors.ErrCodeFileNotFound, err, "config file %s not found", path)
	}
	if err != nil {
		return Config{}, skyerrors.Wrap(skyerrors.ErrCodeIO, err, "read config %s", path)
	}
	return Decode(data)
}

// Decode parses TOML on top of Default. Unknown keys are rejected so typos
// don't silently fall back to defaults.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg)
	if err != nil {
		return Config{}, skyerrors.Wrap(skyerrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, skyerrors.New(skyerrors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return skyerrors.Wrap(skyerrors.ErrCodeIO, err, "encode config")
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateSeed(c.Seed); err != nil {
		return err
	}
	if c.Canvas.Width == 0 || c.Canvas.Height == 0 {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig, "canvas must be non-empty, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := ParseColor(c.Canvas.Sky); err != nil {
		return err
	}
	sk, err := c.SkylineOptions()
	if err != nil {
		return err
	}
	if err := sk.Validate(); err != nil {
		return err
	}
	stars, err := c.StarOptions()
	if err != nil {
		return err
	}
	return stars.Validate(c.Canvas.Width, c.Canvas.Height)
}

// ValidateSeed rejects seeds above math.MaxInt64, which TOML integers
// cannot hold.
func ValidateSeed(seed uint64) error {
	if seed > math.MaxInt64 {
		return skyerrors.New(skyerrors.ErrCodeInvalidConfig, "seed %d exceeds %d", seed, uint64(math.MaxInt64))
	}
	return nil
}

// SkyColor returns the parsed background colour.
func (c Config) SkyColor() (canvas.Color, error) {
	return ParseColor(c.Canvas.Sky)
}

// SkylineOptions converts the building and window settings.
func (c Config) SkylineOptions() (skyline.Options, error) {
	palette, err := ParsePalette(c.Buildings.Palette)
	if err != nil {
		return skyline.Options{}, err
	}
	border, err := ParseColor(c.Buildings.BorderColor)
	if err != nil {
		return skyline.Options{}, err
	}
	pane, err := ParseColor(c.Windows.PaneColor)
	if err != nil {
		return skyline.Options{}, err
	}
	return skyline.Options{
		OffsetRange: c.Buildings.Offset,
		HeightRange: c.Buildings.Height,
		WidthRange:  c.Buildings.Width,
		Margin:      c.Windows.Margin,
		Palette:     palette,
		Style: skyline.Style{
			BorderWidth:       c.Buildings.BorderWidth,
			WindowBorderWidth: c.Windows.BorderWidth,
			BorderColor:       border,
			PaneColor:         pane,
		},
	}, nil
}

// StarOptions converts the star settings, deriving the cell grid from the
// canvas size.
func (c Config) StarOptions() (nightsky.Options, error) {
	col, err := ParseColor(c.Stars.Color)
	if err != nil {
		return nightsky.Options{}, err
	}
	count, size := nightsky.Grid(c.Canvas.Width, c.Canvas.Height, c.Stars.Columns)
	return nightsky.Options{
		CellCount:    count,
		CellSize:     size,
		PresenceProb: c.Stars.Presence,
		BigProb:      c.Stars.Big,
		Color:        col,
	}, nil
}

// ParseColor parses a "#rrggbb" or "#rgb" hex colour.
func ParseColor(s string) (canvas.Color, error) {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return canvas.Color{}, skyerrors.Wrap(skyerrors.ErrCodeInvalidConfig, err, "invalid colour %q", s)
	}
	r, g, b := c.RGB255()
	return canvas.RGB(r, g, b), nil
}

// ParsePalette parses a non-empty list of hex colours.
func ParsePalette(hex []string) ([]canvas.Color, error) {
	if len(hex) == 0 {
		return nil, skyerrors.New(skyerrors.ErrCodeInvalidConfig, "building palette is empty")
	}
	palette := make([]canvas.Color, len(hex))
	for i, s := range hex {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		palette[i] = c
	}
	return palette, nil
}
