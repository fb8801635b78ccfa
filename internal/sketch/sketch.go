// Package sketch holds the state of a drawing session: the selected tool,
// colour and thickness, the stroke being drawn, the committed stroke history
// and the raster bitmap that bucket fills paint into.
package sketch

import (
	"fmt"
	"image"
	"image/color"
	"slices"
	"strings"
)

// Logical canvas defaults.
const (
	DefaultWidth     = 1080
	DefaultHeight    = 1920
	DefaultThickness = 10.0
)

// DefaultColor is the colour a new session draws with.
var DefaultColor = color.RGBA{0, 0, 0, 255}

// Point is a position in logical canvas coordinates.
type Point struct {
	X, Y float64
}

// Stroke is one freehand path. Points grow while the stroke is being drawn
// and never change once it is committed.
type Stroke struct {
	ID        string
	Color     color.RGBA
	Points    []Point
	Eraser    bool
	Thickness float64
}

func (s Stroke) clone() Stroke {
	s.Points = slices.Clone(s.Points)
	return s
}

// Tool identifies the active drawing tool.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolLasso
	ToolBucket
	ToolText
)

var toolNames = [...]string{
	ToolBrush:  "brush",
	ToolEraser: "eraser",
	ToolLasso:  "lasso",
	ToolBucket: "bucket",
	ToolText:   "text",
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Draws reports whether the tool produces strokes.
func (t Tool) Draws() bool { return t == ToolBrush || t == ToolEraser }

// Tools lists every selectable tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolBrush, ToolEraser, ToolLasso, ToolBucket, ToolText}
}

// ParseTool resolves a tool by name, ignoring case.
func ParseTool(s string) (Tool, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	switch name {
	case "fill", "paint":
		return ToolBucket, nil
	case "pen", "draw":
		return ToolBrush, nil
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// Frame is a read-only view of a session taken from the interaction
// goroutine. It is safe to hand to another goroutine for rendering.
type Frame struct {
	Tool      Tool
	Color     color.RGBA
	Thickness float64
	Current   *Stroke
	Committed []Stroke
	// Bitmap is the published fill bitmap. It is never written after
	// publication and may be nil.
	Bitmap *image.RGBA
	Width  int
	Height int
}
