package config

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// Canvas holds the logical canvas settings.
type Canvas struct {
	Width      int
	Height     int
	Background color.RGBA
}

// Brush holds stroke thickness bounds and smoothing.
type Brush struct {
	Thickness    float64
	MinThickness float64
	MaxThickness float64
	Smoothness   float64
}

// Window holds drawing window settings.
type Window struct {
	Width  int
	Height int
	Shadow bool
}

// PaletteEntry is a named swatch.
type PaletteEntry struct {
	Name  string
	Color color.RGBA
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	Canvas  Canvas
	Brush   Brush
	Window  Window
	Palette []PaletteEntry
	Themes  map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme: "", // Empty falls back to the environment, then the built-in theme
		Canvas: Canvas{
			Width:      1080,
			Height:     1920,
			Background: color.RGBA{255, 255, 255, 255},
		},
		Brush: Brush{
			Thickness:    10,
			MinThickness: 2,
			MaxThickness: 40,
			Smoothness:   5,
		},
		Window: Window{
			Width:  720,
			Height: 960,
			Shadow: true,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// Validate reports settings the application cannot run with.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	b := c.Brush
	if b.MinThickness <= 0 || b.MinThickness > b.MaxThickness {
		return fmt.Errorf("invalid thickness range [%v, %v]", b.MinThickness, b.MaxThickness)
	}
	if b.Thickness < b.MinThickness || b.Thickness > b.MaxThickness {
		return fmt.Errorf("thickness %v outside [%v, %v]", b.Thickness, b.MinThickness, b.MaxThickness)
	}
	if b.Smoothness < 0 {
		return fmt.Errorf("smoothness must not be negative, got %v", b.Smoothness)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
		sb.WriteString("\n")
	}

	sb.WriteString("[canvas]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Canvas.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Canvas.Height)
	fmt.Fprintf(&sb, "background = %s\n", theme.FormatColor(c.Canvas.Background))
	sb.WriteString("\n")

	sb.WriteString("[brush]\n")
	fmt.Fprintf(&sb, "thickness = %s\n", formatFloat(c.Brush.Thickness))
	fmt.Fprintf(&sb, "min_thickness = %s\n", formatFloat(c.Brush.MinThickness))
	fmt.Fprintf(&sb, "max_thickness = %s\n", formatFloat(c.Brush.MaxThickness))
	fmt.Fprintf(&sb, "smoothness = %s\n", formatFloat(c.Brush.Smoothness))
	sb.WriteString("\n")

	sb.WriteString("[window]\n")
	fmt.Fprintf(&sb, "width = %d\n", c.Window.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Window.Height)
	fmt.Fprintf(&sb, "shadow = %v\n", c.Window.Shadow)
	sb.WriteString("\n")

	if len(c.Palette) > 0 {
		sb.WriteString("[palette]\n")
		for _, e := range c.Palette {
			fmt.Fprintf(&sb, "%s = %s\n", e.Name, theme.FormatColor(e.Color))
		}
		sb.WriteString("\n")
	}

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		t.Colors(func(key string, col color.RGBA) {
			fmt.Fprintf(&sb, "%s: %s\n", key, theme.FormatColor(col))
		})
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
