package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme

[canvas]
width = 800
height = 600
background = "#FAFAF0"

[brush]
thickness = 12
min_thickness = 1
max_thickness = 64
smoothness = 3.5

[window]
shadow = false

[palette]
Ink = #101010
Sky = #87CEEB

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("Unexpected canvas size %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.Background != (color.RGBA{0xFA, 0xFA, 0xF0, 0xFF}) {
		t.Errorf("Unexpected canvas background %v", cfg.Canvas.Background)
	}
	if cfg.Brush != (Brush{Thickness: 12, MinThickness: 1, MaxThickness: 64, Smoothness: 3.5}) {
		t.Errorf("Unexpected brush %+v", cfg.Brush)
	}
	if cfg.Window.Shadow {
		t.Error("Expected window.shadow to be false")
	}
	if cfg.Window.Width != New().Window.Width {
		t.Errorf("Unset window width changed to %d", cfg.Window.Width)
	}
	if len(cfg.Palette) != 2 || cfg.Palette[0].Name != "Ink" || cfg.Palette[1].Color != (color.RGBA{0x87, 0xCE, 0xEB, 0xFF}) {
		t.Errorf("Unexpected palette %+v", cfg.Palette)
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if theme.Background != (color.RGBA{0x11, 0x11, 0x11, 0xFF}) {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseErrorsNameSection(t *testing.T) {
	_, err := Parse(strings.NewReader("[brush]\nthickness = wide\n"))
	if err == nil || !strings.Contains(err.Error(), "[brush]") {
		t.Fatalf("unexpected error %v", err)
	}
	_, err = Parse(strings.NewReader("[palette]\nInk = black\n"))
	if err == nil || !strings.Contains(err.Error(), "[palette]") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Canvas.Width = 0 },
		func(c *Config) { c.Brush.MinThickness = 0 },
		func(c *Config) { c.Brush.MinThickness = 50 },
		func(c *Config) { c.Brush.Thickness = 41 },
		func(c *Config) { c.Brush.Smoothness = -1 },
		func(c *Config) { c.Window.Height = -5 },
	}
	for i, mutate := range bad {
		c := New()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark

[canvas]
width = 1080
height = 1920
background = #FFFFFF

[brush]
thickness = 7.5

[palette]
Black = #000000
Glass = #FFFFFF80

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Canvas != cfg2.Canvas {
		t.Errorf("Canvas mismatch: %+v vs %+v", cfg.Canvas, cfg2.Canvas)
	}
	if cfg.Brush != cfg2.Brush {
		t.Errorf("Brush mismatch: %+v vs %+v", cfg.Brush, cfg2.Brush)
	}
	if cfg.Window != cfg2.Window {
		t.Errorf("Window mismatch: %+v vs %+v", cfg.Window, cfg2.Window)
	}
	if len(cfg2.Palette) != 2 || cfg2.Palette[1] != cfg.Palette[1] {
		t.Errorf("Palette mismatch: %+v vs %+v", cfg.Palette, cfg2.Palette)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("Theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverridePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.rc")
	if err := os.WriteFile(path, []byte("[canvas]\nwidth = 320\nheight = 240\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader("v1.0.0", path)
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("GetConfigPath = %q", got)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 320 || cfg.Canvas.Height != 240 {
		t.Fatalf("canvas %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if l.DefaultPath() != path {
		t.Fatalf("DefaultPath = %q", l.DefaultPath())
	}

	if err := os.WriteFile(path, []byte("[brush]\nthickness = 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(); err == nil {
		t.Fatal("expected validation error")
	}
}
