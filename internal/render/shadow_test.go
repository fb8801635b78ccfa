package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func whiteCanvas(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img
}

func TestPageShadowDarkensOffsetArea(t *testing.T) {
	dst := whiteCanvas(60, 60)
	s := PageShadow{Options: ShadowOptions{Radius: 4, Offset: image.Pt(5, 5), Opacity: 1}}
	s.Draw(dst, image.Rect(10, 10, 30, 30))

	if got := dst.RGBAAt(32, 32); got.R == 255 {
		t.Fatalf("expected shadow below the page corner, got %v", got)
	}
	if got := dst.RGBAAt(2, 55); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("pixel far from the page = %v", got)
	}
}

func TestPageShadowBlursEdge(t *testing.T) {
	dst := whiteCanvas(60, 60)
	s := PageShadow{Options: ShadowOptions{Radius: 3, Offset: image.Pt(0, 0), Opacity: 1}}
	s.Draw(dst, image.Rect(10, 10, 30, 30))
	inside := dst.RGBAAt(20, 20).R
	edge := dst.RGBAAt(31, 20).R
	if !(inside < edge && edge < 255) {
		t.Fatalf("expected a soft edge, inside=%d edge=%d", inside, edge)
	}
}

func TestPageShadowFadesOut(t *testing.T) {
	dst := whiteCanvas(60, 60)
	s := PageShadow{Options: ShadowOptions{Radius: 3, Opacity: 1}}
	s.Draw(dst, image.Rect(10, 10, 30, 30))
	if got := dst.RGBAAt(20, 20).R; got != 0 {
		t.Fatalf("centre of the shadow = %d, want 0", got)
	}
	prev := dst.RGBAAt(26, 20).R
	for x := 27; x <= 33; x++ {
		got := dst.RGBAAt(x, 20).R
		if got <= prev {
			t.Fatalf("shadow at x=%d is %d, not lighter than %d at x=%d", x, got, prev, x-1)
		}
		prev = got
	}
	if prev != 255 {
		t.Fatalf("shadow reaches past its radius: %d", prev)
	}
}

func TestPageShadowNoOpWithoutOpacity(t *testing.T) {
	dst := whiteCanvas(20, 20)
	s := PageShadow{Options: ShadowOptions{Radius: 2, Opacity: 0}}
	s.Draw(dst, image.Rect(2, 2, 10, 10))
	for i, v := range dst.Pix {
		if v != 255 {
			t.Fatalf("byte %d changed", i)
		}
	}
}

func TestPageShadowCachesMask(t *testing.T) {
	s := PageShadow{Options: DefaultShadowOptions()}
	s.Draw(whiteCanvas(100, 100), image.Rect(10, 10, 50, 50))
	mask := s.mask
	s.Draw(whiteCanvas(100, 100), image.Rect(20, 20, 60, 60))
	if s.mask != mask {
		t.Fatal("mask rebuilt for an unchanged page size")
	}
	s.Draw(whiteCanvas(100, 100), image.Rect(20, 20, 70, 60))
	if s.mask == mask {
		t.Fatal("mask kept after the page size changed")
	}
}
