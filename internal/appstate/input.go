package appstate

import (
	"image"
	"math"

	"github.com/example/sketchpad/internal/sketch"
)

// Input turns pointer gestures in the canvas area into session operations.
// A drag may start anywhere in the area; samples that fall outside the page
// are dropped.
type Input struct {
	Session  *sketch.Session
	dragging bool
}

// PressResult describes what a press did.
type PressResult int

const (
	PressIgnored PressResult = iota
	PressStroke
	PressFillQueued
	PressFillDropped
)

// Press starts a stroke, or requests a fill when the bucket is selected.
// Strokes start on any press inside v.Area and only record the press point
// when it lies on the page. Fills need a seed on the page.
func (in *Input) Press(v Viewport, x, y float32) PressResult {
	if !image.Pt(int(math.Floor(float64(x))), int(math.Floor(float64(y)))).In(v.Area) {
		return PressIgnored
	}
	p, onPage := v.ToCanvas(x, y)
	tool := in.Session.Tool()
	switch {
	case tool == sketch.ToolBucket:
		if !onPage {
			return PressIgnored
		}
		if in.Session.RequestFill(p) {
			return PressFillQueued
		}
		return PressFillDropped
	case tool.Draws():
		in.Session.BeginStroke()
		if onPage {
			in.Session.ExtendStroke(p)
		}
		in.dragging = true
		return PressStroke
	}
	return PressIgnored
}

// Move extends the stroke being dragged. It reports whether a point was
// added.
func (in *Input) Move(v Viewport, x, y float32) bool {
	if !in.dragging {
		return false
	}
	p, ok := v.ToCanvas(x, y)
	if !ok {
		return false
	}
	in.Session.ExtendStroke(p)
	return true
}

// Release commits the stroke being dragged.
func (in *Input) Release() bool {
	if !in.dragging {
		return false
	}
	in.dragging = false
	in.Session.EndStroke()
	return true
}

// Cancel ends an interrupted drag. The stroke drawn so far is kept.
func (in *Input) Cancel() bool {
	return in.Release()
}

// SelectTool switches tools, abandoning any drag in progress.
func (in *Input) SelectTool(t sketch.Tool) {
	in.dragging = false
	in.Session.SelectTool(t)
}

// Dragging reports whether a stroke drag is in progress.
func (in *Input) Dragging() bool { return in.dragging }
