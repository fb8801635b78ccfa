package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/sketchpad/internal/sketch"
)

// Composer paints session frames. It keeps the committed strokes
// rasterised in a base layer and only paints newly committed strokes while
// the bitmap snapshot and the start of the history stay the same.
//
// A Composer is not safe for concurrent use.
type Composer struct {
	// Background is painted under the bitmap. The zero value means white.
	Background color.RGBA
	painter    StrokePainter

	base       *image.RGBA
	baseBitmap *image.RGBA
	baseCount  int
	baseFirst  string
	baseLast   string

	frame *image.RGBA
}

// NewComposer returns a composer smoothing strokes with smoothness.
func NewComposer(smoothness float64) *Composer {
	return &Composer{painter: StrokePainter{Smoothness: smoothness}}
}

// Compose renders f into a transparent layer of the canvas size: the
// background, then the bitmap, then each committed stroke in order, then the
// stroke in progress. Eraser strokes punch through all of them. The
// returned image is reused by the next call.
func (c *Composer) Compose(f sketch.Frame) *image.RGBA {
	size := image.Rect(0, 0, f.Width, f.Height)
	if !c.baseValid(f, size) {
		c.rebuild(f, size)
	}
	for _, st := range f.Committed[c.baseCount:] {
		c.painter.Paint(c.base, st)
	}
	if n := len(f.Committed); n > 0 {
		c.baseCount = n
		c.baseFirst = f.Committed[0].ID
		c.baseLast = f.Committed[n-1].ID
	}

	if c.frame == nil || !c.frame.Rect.Eq(size) {
		c.frame = image.NewRGBA(size)
	}
	copy(c.frame.Pix, c.base.Pix)
	if f.Current != nil {
		c.painter.Paint(c.frame, *f.Current)
	}
	return c.frame
}

func (c *Composer) baseValid(f sketch.Frame, size image.Rectangle) bool {
	if c.base == nil || !c.base.Rect.Eq(size) || c.baseBitmap != f.Bitmap {
		return false
	}
	if len(f.Committed) < c.baseCount {
		return false
	}
	if c.baseCount == 0 {
		return true
	}
	return f.Committed[0].ID == c.baseFirst && f.Committed[c.baseCount-1].ID == c.baseLast
}

func (c *Composer) rebuild(f sketch.Frame, size image.Rectangle) {
	if c.base == nil || !c.base.Rect.Eq(size) {
		c.base = image.NewRGBA(size)
	}
	bg := c.Background
	if bg == (color.RGBA{}) {
		bg = color.RGBA{255, 255, 255, 255}
	}
	draw.Draw(c.base, size, image.NewUniform(bg), image.Point{}, draw.Src)
	if f.Bitmap != nil {
		draw.Draw(c.base, size, f.Bitmap, f.Bitmap.Bounds().Min, draw.Over)
	}
	c.baseBitmap = f.Bitmap
	c.baseCount = 0
	c.baseFirst, c.baseLast = "", ""
}

// Flatten composites layer over an opaque backdrop.
func Flatten(layer *image.RGBA, backdrop color.Color) *image.RGBA {
	out := image.NewRGBA(layer.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(backdrop), image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), layer, layer.Bounds().Min, draw.Over)
	return out
}

// Render composes f with a fresh composer and flattens it over white.
func Render(f sketch.Frame, smoothness float64) *image.RGBA {
	return Flatten(NewComposer(smoothness).Compose(f), color.White)
}
