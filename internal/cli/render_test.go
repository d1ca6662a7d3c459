package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/image/bmp"

	skyerrors "github.com/matzehuels/skyline/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "png,bmp,tiff", []string{"png", "bmp", "tiff"}},
		{"spaces trimmed", "png, bmp", []string{"png", "bmp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		output  string
		want    []string
	}{
		{"default", nil, "", []string{"png"}},
		{"from extension", nil, "night.bmp", []string{"bmp"}},
		{"tif extension", nil, "night.tif", []string{"tiff"}},
		{"unknown extension", nil, "night.jpg", []string{"png"}},
		{"explicit wins", []string{"tiff"}, "night.bmp", []string{"tiff"}},
		{"duplicates removed", []string{"png", "bmp", "png"}, "", []string{"png", "bmp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveFormats(tt.formats, tt.output); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("resolveFormats(%v, %q) = %v, want %v", tt.formats, tt.output, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    []string
	}{
		{"default name", "", []string{"png"}, []string{"skyline.png"}},
		{"matching extension", "out/night.png", []string{"png"}, []string{"out/night.png"}},
		{"tif kept", "night.tif", []string{"tiff"}, []string{"night.tif"}},
		{"base path", "out/night", []string{"png", "bmp"}, []string{"out/night.png", "out/night.bmp"}},
		{"extension replaced", "night.png", []string{"png", "tiff"}, []string{"night.png", "night.tiff"}},
		{"mismatched extension", "night.png", []string{"bmp"}, []string{"night.bmp"}},
		{"unknown extension kept", "night.v2", []string{"png"}, []string{"night.v2.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPaths(tt.output, tt.formats); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("outputPaths(%q, %v) = %v, want %v", tt.output, tt.formats, got, tt.want)
			}
		})
	}
}

func TestReproduceCommand(t *testing.T) {
	tests := []struct {
		name  string
		flags configFlags
		seed  uint64
		want  string
	}{
		{"defaults", configFlags{}, 42, "skyline render --seed 42"},
		{"flag seed replaced by used seed", configFlags{seed: 7}, 7, "skyline render --seed 7"},
		{"config and size", configFlags{path: "city.toml", width: 800, height: 600}, 9,
			`skyline render -c "city.toml" --width 800 --height 600 --seed 9`},
		{"width only", configFlags{width: 1280}, 3, "skyline render --width 1280 --seed 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reproduceCommand(tt.flags, tt.seed); got != tt.want {
				t.Errorf("reproduceCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "night", "city.bmp")

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"render", "-o", out, "--seed", "7", "--width", "800", "--height", "600"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode bmp: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("image = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
}

func TestRenderCommandSeedReproducible(t *testing.T) {
	dir := t.TempDir()
	render := func(name string) []byte {
		t.Helper()
		path := filepath.Join(dir, name)
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetArgs([]string{"render", "-o", path, "--seed", "11", "--width", "640", "--height", "480"})
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("render error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		return data
	}

	a, b := render("a.png"), render("b.png")
	if string(a) != string(b) {
		t.Error("same seed produced different files")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.toml")

	tests := []struct {
		name string
		args []string
		code skyerrors.Code
	}{
		{"bad format", []string{"render", "-f", "gif"}, skyerrors.ErrCodeInvalidFormat},
		{"missing config", []string{"render", "-c", missing}, skyerrors.ErrCodeFileNotFound},
		{"control character in output", []string{"render", "-o", filepath.Join(dir, "bad\x01.png")}, skyerrors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New(io.Discard, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(io.Discard)
			err := root.ExecuteContext(context.Background())
			if !skyerrors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}
