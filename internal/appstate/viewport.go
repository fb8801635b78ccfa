package appstate

import (
	"image"
	"math"

	"github.com/example/sketchpad/internal/sketch"
)

// Viewport places the logical canvas inside a window region. The canvas is
// scaled to fit (never enlarged) and centred.
type Viewport struct {
	Canvas  image.Point
	Area    image.Rectangle
	Padding int
}

// Zoom returns the canvas to window scale factor.
func (v Viewport) Zoom() float64 {
	if v.Canvas.X <= 0 || v.Canvas.Y <= 0 {
		return 1
	}
	availW := float64(v.Area.Dx() - 2*v.Padding)
	availH := float64(v.Area.Dy() - 2*v.Padding)
	z := math.Min(availW/float64(v.Canvas.X), availH/float64(v.Canvas.Y))
	if z > 1 {
		z = 1
	}
	if z <= 0 {
		return 1
	}
	return z
}

// PageRect returns where the canvas is drawn in window pixels.
func (v Viewport) PageRect() image.Rectangle {
	z := v.Zoom()
	w := max(int(math.Round(float64(v.Canvas.X)*z)), 1)
	h := max(int(math.Round(float64(v.Canvas.Y)*z)), 1)
	x0 := v.Area.Min.X + (v.Area.Dx()-w)/2
	y0 := v.Area.Min.Y + (v.Area.Dy()-h)/2
	return image.Rect(x0, y0, x0+w, y0+h)
}

// ToCanvas maps a window position to logical canvas coordinates. It reports
// false for positions outside [0, W) × [0, H).
func (v Viewport) ToCanvas(x, y float32) (sketch.Point, bool) {
	page := v.PageRect()
	if v.Canvas.X <= 0 || v.Canvas.Y <= 0 {
		return sketch.Point{}, false
	}
	p := sketch.Point{
		X: (float64(x) - float64(page.Min.X)) * float64(v.Canvas.X) / float64(page.Dx()),
		Y: (float64(y) - float64(page.Min.Y)) * float64(v.Canvas.Y) / float64(page.Dy()),
	}
	if p.X < 0 || p.Y < 0 || p.X >= float64(v.Canvas.X) || p.Y >= float64(v.Canvas.Y) {
		return sketch.Point{}, false
	}
	return p, true
}
