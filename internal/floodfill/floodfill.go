// Package floodfill repaints 4-connected regions of an RGBA bitmap.
package floodfill

import (
	"image"
	"image/color"
)

// Fill repaints every pixel 4-connected to seed that has the same colour as
// the seed pixel with replacement. It returns the number of pixels written.
//
// The search is breadth first over a FIFO queue so memory stays bounded by
// the region's frontier rather than by recursion depth. An out-of-bounds seed
// or a replacement equal to the seed colour leaves img untouched.
func Fill(img *image.RGBA, seed image.Point, replacement color.RGBA) int {
	if img == nil {
		return 0
	}
	b := img.Bounds()
	if !seed.In(b) {
		return 0
	}
	target := img.RGBAAt(seed.X, seed.Y)
	if target == replacement {
		return 0
	}

	var q queue
	q.push(seed)
	painted := 0
	for !q.empty() {
		p := q.pop()
		if !p.In(b) || img.RGBAAt(p.X, p.Y) != target {
			continue
		}
		img.SetRGBA(p.X, p.Y, replacement)
		painted++
		for _, d := range neighbours {
			n := p.Add(d)
			if n.In(b) && img.RGBAAt(n.X, n.Y) == target {
				q.push(n)
			}
		}
	}
	return painted
}

var neighbours = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Clone returns a deep copy of img with the same bounds.
func Clone(img *image.RGBA) *image.RGBA {
	if img == nil {
		return nil
	}
	out := &image.RGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}

// queue is a FIFO of points. Consumed entries are reclaimed once the head
// passes half of the backing slice.
type queue struct {
	items []image.Point
	head  int
}

func (q *queue) push(p image.Point) { q.items = append(q.items, p) }

func (q *queue) empty() bool { return q.head >= len(q.items) }

func (q *queue) pop() image.Point {
	p := q.items[q.head]
	q.head++
	if q.head > 1024 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return p
}
