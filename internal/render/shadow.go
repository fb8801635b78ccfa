package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow painted under the page.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns the shadow used by the drawing window.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  12,
		Offset:  image.Pt(6, 8),
		Opacity: 0.45,
	}
}

// PageShadow draws a blurred drop shadow for an opaque page. The blurred
// mask is kept until the page size changes.
type PageShadow struct {
	Options ShadowOptions

	size image.Point
	mask *image.Alpha
}

// Draw paints the shadow for a page occupying page onto dst. The page itself
// is left for the caller to draw on top.
func (s *PageShadow) Draw(dst draw.Image, page image.Rectangle) {
	if page.Empty() || s.Options.Opacity <= 0 {
		return
	}
	opacity := s.Options.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := max(s.Options.Radius, 0)
	if s.mask == nil || s.size != page.Size() {
		s.mask = shadowMask(page.Size(), radius)
		s.size = page.Size()
	}
	origin := page.Min.Sub(image.Pt(radius, radius)).Add(s.Options.Offset)
	shade := image.NewUniform(color.RGBA{A: uint8(opacity*255 + 0.5)})
	draw.DrawMask(dst, s.mask.Bounds().Add(origin), shade, image.Point{}, s.mask, image.Point{}, draw.Over)
}

// shadowMask returns the blurred coverage of a size page padded by radius
// on every side.
func shadowMask(size image.Point, radius int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size.X+2*radius, size.Y+2*radius))
	page := image.Rectangle{Max: size}.Add(image.Pt(radius, radius))
	draw.Draw(mask, page, image.NewUniform(color.Alpha{A: 255}), image.Point{}, draw.Src)
	return blurAlpha(mask, radius)
}

func blurAlpha(src *image.Alpha, radius int) *image.Alpha {
	if radius <= 0 {
		out := image.NewAlpha(src.Bounds())
		copy(out.Pix, src.Pix)
		return out
	}
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	tmp := image.NewAlpha(bounds)
	dst := image.NewAlpha(bounds)

	prefix := make([]int, max(w, h)+1)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			prefix[x+1] = prefix[x] + int(row[x])
		}
		for x := 0; x < w; x++ {
			x0, x1 := max(x-radius, 0), min(x+radius, w-1)
			tmp.Pix[y*tmp.Stride+x] = uint8((prefix[x1+1] - prefix[x0]) / (x1 - x0 + 1))
		}
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			prefix[y+1] = prefix[y] + int(tmp.Pix[y*tmp.Stride+x])
		}
		for y := 0; y < h; y++ {
			y0, y1 := max(y-radius, 0), min(y+radius, h-1)
			dst.Pix[y*dst.Stride+x] = uint8((prefix[y1+1] - prefix[y0]) / (y1 - y0 + 1))
		}
	}
	return dst
}
