package appstate

import (
	"image/color"
	"math"
	"slices"
	"strings"
)

// PaletteColor is a named swatch.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var defaultPalette = []PaletteColor{
	{"Black", color.RGBA{0, 0, 0, 255}},
	{"White", color.RGBA{255, 255, 255, 255}},
	{"Red", color.RGBA{255, 0, 0, 255}},
	{"Blue", color.RGBA{0, 0, 255, 255}},
	{"Yellow", color.RGBA{255, 255, 0, 255}},
	{"Magenta", color.RGBA{255, 0, 255, 255}},
	{"Gray", color.RGBA{136, 136, 136, 255}},
	{"Green", color.RGBA{0, 255, 0, 255}},
}

// DefaultPalette returns a copy of the built-in swatches.
func DefaultPalette() []PaletteColor {
	return slices.Clone(defaultPalette)
}

// PaletteIndex returns the index of c in p, or -1.
func PaletteIndex(p []PaletteColor, c color.RGBA) int {
	for i, e := range p {
		if e.Color == c {
			return i
		}
	}
	return -1
}

// PaletteMap indexes p by swatch name for colour parsing.
func PaletteMap(p []PaletteColor) map[string]color.RGBA {
	m := make(map[string]color.RGBA, len(p))
	for _, e := range p {
		m[strings.ToLower(e.Name)] = e.Color
	}
	return m
}

// Thickness bounds used when nothing is configured.
const (
	DefaultMinThickness = 2.0
	DefaultMaxThickness = 40.0
)

var thicknessSteps = []float64{2, 4, 6, 10, 16, 24, 40}

// ThicknessRange bounds the stroke thickness the controls can select.
type ThicknessRange struct {
	Min, Max float64
}

// DefaultThicknessRange returns the slider range of the drawing window.
func DefaultThicknessRange() ThicknessRange {
	return ThicknessRange{Min: DefaultMinThickness, Max: DefaultMaxThickness}
}

// Clamp limits v to the range.
func (r ThicknessRange) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Presets returns the selectable thicknesses in ascending order. Both
// bounds are always included.
func (r ThicknessRange) Presets() []float64 {
	out := []float64{r.Min}
	for _, s := range thicknessSteps {
		if s > r.Min && s < r.Max {
			out = append(out, s)
		}
	}
	if r.Max > r.Min {
		out = append(out, r.Max)
	}
	return out
}

// Step moves v to the next preset above (dir > 0) or below (dir < 0) it.
func (r ThicknessRange) Step(v float64, dir int) float64 {
	presets := r.Presets()
	v = r.Clamp(v)
	if dir > 0 {
		for _, p := range presets {
			if p > v {
				return p
			}
		}
		return presets[len(presets)-1]
	}
	for i := len(presets) - 1; i >= 0; i-- {
		if presets[i] < v {
			return presets[i]
		}
	}
	return presets[0]
}
