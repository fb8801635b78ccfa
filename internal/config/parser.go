package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/sketchpad/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentTheme *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
			currentTheme = nil

			if name, ok := strings.CutPrefix(currentSection, "theme."); ok {
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = name
				cfg.Themes[name] = currentTheme
			}
			continue
		}

		// Key = Value or Key: Value
		var key, value string
		var ok bool
		if key, value, ok = strings.Cut(line, "="); !ok {
			if key, value, ok = strings.Cut(line, ":"); !ok {
				continue
			}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch section := strings.ToLower(currentSection); {
		case currentTheme != nil:
			err = currentTheme.Set(key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		case section == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case section == "brush":
			err = setBrushField(&cfg.Brush, key, value)
		case section == "window":
			err = setWindowField(&cfg.Window, key, value)
		case section == "palette":
			err = addPaletteEntry(cfg, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	}
	return nil
}

func setCanvasField(c *Canvas, key, value string) error {
	switch strings.ToLower(key) {
	case "width":
		return parseInt(key, value, &c.Width)
	case "height":
		return parseInt(key, value, &c.Height)
	case "background":
		col, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		c.Background = col
	}
	return nil
}

func setBrushField(b *Brush, key, value string) error {
	switch strings.ToLower(key) {
	case "thickness":
		return parseFloat(key, value, &b.Thickness)
	case "min_thickness":
		return parseFloat(key, value, &b.MinThickness)
	case "max_thickness":
		return parseFloat(key, value, &b.MaxThickness)
	case "smoothness":
		return parseFloat(key, value, &b.Smoothness)
	}
	return nil
}

func setWindowField(w *Window, key, value string) error {
	switch strings.ToLower(key) {
	case "width":
		return parseInt(key, value, &w.Width)
	case "height":
		return parseInt(key, value, &w.Height)
	case "shadow":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		w.Shadow = b
	}
	return nil
}

func addPaletteEntry(cfg *Config, name, value string) error {
	col, err := theme.ParseColor(value)
	if err != nil {
		return fmt.Errorf("invalid color for swatch %s: %w", name, err)
	}
	for i := range cfg.Palette {
		if strings.EqualFold(cfg.Palette[i].Name, name) {
			cfg.Palette[i].Color = col
			return nil
		}
	}
	cfg.Palette = append(cfg.Palette, PaletteEntry{Name: name, Color: col})
	return nil
}

func parseInt(key, value string, dst *int) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	*dst = v
	return nil
}

func parseFloat(key, value string, dst *float64) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	*dst = v
	return nil
}
