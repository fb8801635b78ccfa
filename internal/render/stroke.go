package render

import (
	"image"
	"image/draw"
	"math"
	"slices"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"github.com/example/sketchpad/internal/sketch"
)

// Tolerance for flattening round caps and joins, in canvas pixels.
const strokeTolerance = 0.25

// StrokeStyle returns the pen used for s: round caps and joins at the
// stroke's thickness.
func StrokeStyle(s sketch.Stroke) curve.Stroke {
	return curve.Stroke{
		Width:      s.Thickness,
		Join:       curve.RoundJoin,
		MiterLimit: 4,
		StartCap:   curve.RoundCap,
		EndCap:     curve.RoundCap,
	}
}

// Outline expands the smoothed centre line of s into the elements of a
// fillable outline. It returns nil for strokes that smooth down to a single
// point and for infinitely wide strokes.
func Outline(s sketch.Stroke, smoothness float64) []curve.PathElement {
	path := Smooth(s.Points, smoothness)
	if len(path) < 2 || s.Thickness <= 0 || math.IsInf(s.Thickness, 1) {
		return nil
	}
	return slices.Collect(curve.StrokePath(slices.Values(path), StrokeStyle(s), curve.StrokeOpts{}, strokeTolerance))
}

// StrokePainter rasterises stroke outlines into an RGBA layer, reusing its
// coverage buffer between strokes. A zero Smoothness keeps every sample.
type StrokePainter struct {
	Smoothness float64
	raster     *vector.Rasterizer
}

// Paint draws s onto dst. Brush strokes composite source-over in the stroke
// colour; eraser strokes clear the covered pixels to transparent.
func (p *StrokePainter) Paint(dst *image.RGBA, s sketch.Stroke) {
	elems := Outline(s, p.Smoothness)
	if len(elems) == 0 {
		return
	}
	area := elementBounds(elems).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	if p.raster == nil {
		p.raster = vector.NewRasterizer(area.Dx(), area.Dy())
	} else {
		p.raster.Reset(area.Dx(), area.Dy())
	}
	z := p.raster
	var src image.Image
	if s.Eraser {
		z.DrawOp = draw.Src
		src = image.Transparent
	} else {
		z.DrawOp = draw.Over
		src = image.NewUniform(s.Color)
	}

	ox, oy := float64(area.Min.X), float64(area.Min.Y)
	at := func(q curve.Point) (float32, float32) {
		return float32(q.X - ox), float32(q.Y - oy)
	}
	open := false
	for _, el := range elems {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				z.ClosePath()
			}
			z.MoveTo(at(el.P0))
			open = true
		case curve.LineToKind:
			z.LineTo(at(el.P0))
		case curve.QuadToKind:
			bx, by := at(el.P0)
			cx, cy := at(el.P1)
			z.QuadTo(bx, by, cx, cy)
		case curve.CubicToKind:
			bx, by := at(el.P0)
			cx, cy := at(el.P1)
			dx, dy := at(el.P2)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case curve.ClosePathKind:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
	z.Draw(dst, area, src, image.Point{})
}

// elementBounds returns the integer rectangle covering every point of
// elems, control points included.
func elementBounds(elems []curve.PathElement) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(q curve.Point) {
		minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
		minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
	}
	for _, el := range elems {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			add(el.P0)
		case curve.QuadToKind:
			add(el.P0)
			add(el.P1)
		case curve.CubicToKind:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
}
