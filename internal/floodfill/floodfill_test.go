package floodfill

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestFillCrossLeavesDiagonalIsland(t *testing.T) {
	img := solid(5, 5, white)
	cross := []image.Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}, {0, 2}, {1, 2}, {3, 2}, {4, 2}}
	for _, p := range cross {
		img.SetRGBA(p.X, p.Y, black)
	}
	// (4,4) is black but not 4-connected to the cross.
	img.SetRGBA(4, 4, black)

	n := Fill(img, image.Pt(2, 2), red)
	if n != len(cross) {
		t.Fatalf("painted %d pixels, want %d", n, len(cross))
	}
	for _, p := range cross {
		if got := img.RGBAAt(p.X, p.Y); got != red {
			t.Fatalf("cross pixel %v = %v, want red", p, got)
		}
	}
	if got := img.RGBAAt(4, 4); got != black {
		t.Fatalf("diagonal island repainted: %v", got)
	}
	if got := img.RGBAAt(0, 0); got != white {
		t.Fatalf("background repainted: %v", got)
	}
}

func TestFillIgnoresDiagonalNeighbours(t *testing.T) {
	img := solid(2, 2, white)
	img.SetRGBA(0, 0, black)
	img.SetRGBA(1, 1, black)
	if n := Fill(img, image.Pt(0, 0), red); n != 1 {
		t.Fatalf("painted %d, want 1", n)
	}
	if got := img.RGBAAt(1, 1); got != black {
		t.Fatalf("diagonal neighbour repainted: %v", got)
	}
}

func TestFillSameColourIsNoOp(t *testing.T) {
	img := solid(3, 3, red)
	if n := Fill(img, image.Pt(1, 1), red); n != 0 {
		t.Fatalf("expected no-op, painted %d", n)
	}
}

func TestFillIsIdempotent(t *testing.T) {
	img := solid(8, 6, white)
	for y := 0; y < 6; y++ {
		img.SetRGBA(4, y, black)
	}
	first := Fill(img, image.Pt(1, 1), red)
	if first != 4*6 {
		t.Fatalf("first fill painted %d, want %d", first, 4*6)
	}
	snapshot := Clone(img)
	if n := Fill(img, image.Pt(1, 1), red); n != 0 {
		t.Fatalf("second fill painted %d", n)
	}
	for i := range img.Pix {
		if img.Pix[i] != snapshot.Pix[i] {
			t.Fatalf("second fill changed byte %d", i)
		}
	}
	if got := img.RGBAAt(6, 2); got != white {
		t.Fatalf("fill crossed the wall: %v", got)
	}
}

func TestFillSinglePixel(t *testing.T) {
	img := solid(1, 1, white)
	if n := Fill(img, image.Pt(0, 0), black); n != 1 {
		t.Fatalf("painted %d, want 1", n)
	}
	if got := img.RGBAAt(0, 0); got != black {
		t.Fatalf("pixel = %v", got)
	}
}

func TestFillOutOfBoundsSeed(t *testing.T) {
	img := solid(4, 4, white)
	for _, p := range []image.Point{{-1, 0}, {4, 0}, {0, 4}, {0, -1}} {
		if n := Fill(img, p, black); n != 0 {
			t.Fatalf("seed %v painted %d", p, n)
		}
	}
	if n := Fill(nil, image.Pt(0, 0), black); n != 0 {
		t.Fatalf("nil image painted %d", n)
	}
}

func TestFillOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 14, 13))
	if n := Fill(img, image.Pt(12, 11), red); n != 12 {
		t.Fatalf("painted %d, want 12", n)
	}
	if n := Fill(img, image.Pt(0, 0), black); n != 0 {
		t.Fatalf("seed outside offset bounds painted %d", n)
	}
}

func TestFillLargeRegion(t *testing.T) {
	img := solid(300, 200, white)
	if n := Fill(img, image.Pt(150, 100), black); n != 300*200 {
		t.Fatalf("painted %d, want %d", n, 300*200)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	img := solid(2, 2, white)
	c := Clone(img)
	c.SetRGBA(0, 0, black)
	if img.RGBAAt(0, 0) != white {
		t.Fatal("clone shares pixels with source")
	}
	if Clone(nil) != nil {
		t.Fatal("clone of nil should be nil")
	}
}
