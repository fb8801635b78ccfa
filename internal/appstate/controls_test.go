package appstate

import (
	"image/color"
	"slices"
	"testing"
)

func TestDefaultPresets(t *testing.T) {
	got := DefaultThicknessRange().Presets()
	want := []float64{2, 4, 6, 10, 16, 24, 40}
	if !slices.Equal(got, want) {
		t.Fatalf("presets = %v, want %v", got, want)
	}
}

func TestPresetsIncludeBounds(t *testing.T) {
	got := ThicknessRange{Min: 3, Max: 12}.Presets()
	want := []float64{3, 4, 6, 10, 12}
	if !slices.Equal(got, want) {
		t.Fatalf("presets = %v, want %v", got, want)
	}
}

func TestThicknessStep(t *testing.T) {
	r := DefaultThicknessRange()
	cases := []struct {
		v    float64
		dir  int
		want float64
	}{
		{10, 1, 16},
		{10, -1, 6},
		{11, -1, 10},
		{40, 1, 40},
		{2, -1, 2},
		{100, -1, 24},
	}
	for _, c := range cases {
		if got := r.Step(c.v, c.dir); got != c.want {
			t.Fatalf("Step(%v, %d) = %v, want %v", c.v, c.dir, got, c.want)
		}
	}
}

func TestThicknessClamp(t *testing.T) {
	r := DefaultThicknessRange()
	if got := r.Clamp(1); got != 2 {
		t.Fatalf("clamp low = %v", got)
	}
	if got := r.Clamp(50); got != 40 {
		t.Fatalf("clamp high = %v", got)
	}
	if got := r.Clamp(12.5); got != 12.5 {
		t.Fatalf("clamp inside = %v", got)
	}
}

func TestPalette(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 8 {
		t.Fatalf("palette has %d entries", len(p))
	}
	p[0].Color = color.RGBA{1, 2, 3, 255}
	if DefaultPalette()[0].Color != (color.RGBA{0, 0, 0, 255}) {
		t.Fatal("DefaultPalette shares its backing array")
	}
	if i := PaletteIndex(DefaultPalette(), color.RGBA{136, 136, 136, 255}); i != 6 {
		t.Fatalf("gray index = %d", i)
	}
	if i := PaletteIndex(DefaultPalette(), color.RGBA{1, 1, 1, 255}); i != -1 {
		t.Fatalf("missing colour index = %d", i)
	}
	m := PaletteMap(DefaultPalette())
	if m["magenta"] != (color.RGBA{255, 0, 255, 255}) {
		t.Fatalf("magenta = %v", m["magenta"])
	}
}
