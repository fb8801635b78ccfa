package appstate

import (
	"image"
	"testing"

	"github.com/example/sketchpad/internal/sketch"
)

func TestViewportFitsCanvas(t *testing.T) {
	v := Viewport{Canvas: image.Pt(200, 100), Area: image.Rect(0, 0, 120, 120), Padding: 10}
	if z := v.Zoom(); z != 0.5 {
		t.Fatalf("zoom = %v", z)
	}
	if r := v.PageRect(); r != image.Rect(10, 35, 110, 85) {
		t.Fatalf("page = %v", r)
	}
}

func TestViewportNeverEnlarges(t *testing.T) {
	v := Viewport{Canvas: image.Pt(10, 10), Area: image.Rect(0, 0, 100, 100)}
	if z := v.Zoom(); z != 1 {
		t.Fatalf("zoom = %v", z)
	}
	if r := v.PageRect(); r != image.Rect(45, 45, 55, 55) {
		t.Fatalf("page = %v", r)
	}
}

func TestViewportToCanvas(t *testing.T) {
	v := Viewport{Canvas: image.Pt(200, 100), Area: image.Rect(0, 0, 120, 120), Padding: 10}
	cases := []struct {
		x, y float32
		want sketch.Point
		ok   bool
	}{
		{10, 35, sketch.Point{X: 0, Y: 0}, true},
		{60, 60, sketch.Point{X: 100, Y: 50}, true},
		{110, 35, sketch.Point{}, false},
		{9, 40, sketch.Point{}, false},
		{50, 85, sketch.Point{}, false},
	}
	for _, c := range cases {
		got, ok := v.ToCanvas(c.x, c.y)
		if ok != c.ok || got != c.want {
			t.Fatalf("ToCanvas(%v, %v) = %v, %v; want %v, %v", c.x, c.y, got, ok, c.want, c.ok)
		}
	}
}
