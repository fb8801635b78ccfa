// Package render turns session frames into pixels: stroke smoothing and
// rasterisation, layer composition and the window's page decorations.
package render

import (
	"math"

	"honnef.co/go/curve"

	"github.com/example/sketchpad/internal/sketch"
)

// DefaultSmoothness is the minimum per-axis distance between two points
// before a curve segment is emitted between them.
const DefaultSmoothness = 5.0

// Smooth converts raw pointer samples into a path. It moves to the first
// point, then for each consecutive pair (from, to) whose larger axis
// distance reaches threshold it adds a quadratic segment with the midpoint
// of the pair as control and to as end point. Pairs closer than threshold
// add nothing; the following pair still starts from its own first point.
func Smooth(points []sketch.Point, threshold float64) []curve.PathElement {
	if len(points) == 0 {
		return nil
	}
	path := make([]curve.PathElement, 0, len(points))
	path = append(path, curve.PathElement{Kind: curve.MoveToKind, P0: pt(points[0])})
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		if math.Max(math.Abs(to.X-from.X), math.Abs(to.Y-from.Y)) < threshold {
			continue
		}
		mid := curve.Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
		path = append(path, curve.PathElement{Kind: curve.QuadToKind, P0: mid, P1: pt(to)})
	}
	return path
}

func pt(p sketch.Point) curve.Point { return curve.Point{X: p.X, Y: p.Y} }
