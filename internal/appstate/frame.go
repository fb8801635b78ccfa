package appstate

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"golang.org/x/exp/shiny/screen"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/example/sketchpad/internal/render"
	"github.com/example/sketchpad/internal/sketch"
)

// paintState is everything the paint goroutine needs for one frame. It is
// built by the event loop and handed over by value.
type paintState struct {
	width, height int
	view          Viewport
	frame         sketch.Frame
	palette       []PaletteColor
	presets       []float64
	hover         hit
	message       string
	messageUntil  time.Time
}

// framePainter owns the caches used while painting. Only the paint
// goroutine touches it.
type framePainter struct {
	a        *AppState
	composer *render.Composer
	shadow   *render.PageShadow
	toolbar  *toolbarPainter
}

func newFramePainter(a *AppState) *framePainter {
	fp := &framePainter{
		a:        a,
		composer: render.NewComposer(a.Smoothness),
		toolbar:  newToolbarPainter(a.Theme),
	}
	fp.composer.Background = a.Background
	if a.Shadow {
		fp.shadow = &render.PageShadow{Options: render.DefaultShadowOptions()}
	}
	return fp
}

func (fp *framePainter) drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	if st.width <= 0 || st.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	fp.paint(ctx, b.RGBA(), st)
	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// paint renders st into dst. It returns early once ctx is cancelled.
func (fp *framePainter) paint(ctx context.Context, dst *image.RGBA, st paintState) {
	th := fp.a.Theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	page := st.view.PageRect()
	if fp.shadow != nil {
		fp.shadow.Draw(dst, page)
	}
	draw.Draw(dst, page, &image.Uniform{color.White}, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	layer := fp.composer.Compose(st.frame)
	if ctx.Err() != nil {
		return
	}
	switch {
	case layer.Bounds().Empty():
	case page.Size() == layer.Bounds().Size():
		draw.Draw(dst, page, layer, image.Point{}, draw.Over)
	default:
		xdraw.ApproxBiLinear.Scale(dst, page, layer, layer.Bounds(), draw.Over, nil)
	}
	strokeRect(dst, page.Inset(-1), th.PageBorder, 1)
	if ctx.Err() != nil {
		return
	}

	fp.toolbar.draw(dst, st)
	fp.toolbar.drawStatus(dst, st)
	if ctx.Err() != nil {
		return
	}

	if st.message != "" && time.Now().Before(st.messageUntil) {
		d := &font.Drawer{Dst: dst, Src: image.Black, Face: messageFace}
		wmsg := d.MeasureString(st.message).Ceil()
		ascent := messageFace.Metrics().Ascent.Ceil()
		descent := messageFace.Metrics().Descent.Ceil()
		px := (st.width - wmsg) / 2
		py := (st.height-ascent-descent)/2 + ascent
		rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
		draw.Draw(dst, rect, &image.Uniform{color.RGBA{255, 255, 255, 230}}, image.Point{}, draw.Over)
		strokeRect(dst, rect, color.Black, 2)
		d.Dot = fixed.P(px, py)
		d.DrawString(st.message)
	}
}
