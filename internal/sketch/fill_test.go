package sketch

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"
	"testing"
	"time"

	"github.com/example/sketchpad/internal/floodfill"
)

func waitFills(t *testing.T, s *Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Wait(ctx); err != nil {
		t.Fatalf("wait: %v", err)
	}
}

// blockFills makes the worker pause inside each fill until release is
// closed. started receives once per fill.
func blockFills(s *Session) (started chan struct{}, release chan struct{}) {
	started = make(chan struct{}, 4)
	release = make(chan struct{})
	s.fill = func(img *image.RGBA, p image.Point, c color.RGBA) int {
		started <- struct{}{}
		<-release
		return floodfill.Fill(img, p, c)
	}
	return started, release
}

func TestRequestFillPublishesNewBitmap(t *testing.T) {
	var changes atomic.Int32
	s := newTestSession(t, WithTool(ToolBucket), WithColor(red), WithChangeListener(func() { changes.Add(1) }))
	before := s.Bitmap()
	if !s.RequestFill(Point{2.7, 3.2}) {
		t.Fatal("fill was not accepted")
	}
	waitFills(t, s)

	after := s.Bitmap()
	if after == before {
		t.Fatal("bitmap was not replaced")
	}
	if got := after.RGBAAt(7, 7); got != red {
		t.Fatalf("filled pixel = %v", got)
	}
	if got := before.RGBAAt(7, 7); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("published snapshot was mutated: %v", got)
	}
	if changes.Load() != 1 {
		t.Fatalf("change listener called %d times", changes.Load())
	}
}

func TestRequestFillRequiresBucket(t *testing.T) {
	s := newTestSession(t)
	if s.RequestFill(Point{1, 1}) {
		t.Fatal("brush accepted a fill")
	}
}

func TestRequestFillOutOfBounds(t *testing.T) {
	s := newTestSession(t, WithTool(ToolBucket))
	for _, p := range []Point{{-0.5, 1}, {8, 1}, {1, 8.2}} {
		if s.RequestFill(p) {
			t.Fatalf("fill at %v accepted", p)
		}
	}
}

func TestRequestFillWithoutBitmap(t *testing.T) {
	s := newTestSession(t, WithCanvasSize(0, 0), WithTool(ToolBucket))
	if s.RequestFill(Point{0, 0}) {
		t.Fatal("fill accepted without a bitmap")
	}
}

func TestRequestFillDropsWhenQueueFull(t *testing.T) {
	s := newTestSession(t, WithTool(ToolBucket), WithColor(red))
	started, release := blockFills(s)

	if !s.RequestFill(Point{1, 1}) {
		t.Fatal("first fill rejected")
	}
	<-started
	if !s.RequestFill(Point{2, 2}) {
		t.Fatal("queued fill rejected")
	}
	if s.RequestFill(Point{3, 3}) {
		t.Fatal("third fill should be dropped")
	}
	close(release)
	waitFills(t, s)
	if got := s.Bitmap().RGBAAt(0, 0); got != red {
		t.Fatalf("pixel = %v", got)
	}
}

func TestFillDiscardedAfterInitBitmap(t *testing.T) {
	s := newTestSession(t, WithTool(ToolBucket), WithColor(red))
	started, release := blockFills(s)

	if !s.RequestFill(Point{1, 1}) {
		t.Fatal("fill rejected")
	}
	<-started
	s.InitBitmap(4, 4)
	fresh := s.Bitmap()
	close(release)
	waitFills(t, s)

	if s.Bitmap() != fresh {
		t.Fatal("stale fill replaced the new bitmap")
	}
	if got := fresh.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("new bitmap pixel = %v", got)
	}
}

func TestWaitHonoursContext(t *testing.T) {
	s := newTestSession(t, WithTool(ToolBucket))
	started, release := blockFills(s)
	defer close(release)
	s.RequestFill(Point{1, 1})
	<-started
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Wait(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestCloseStopsFills(t *testing.T) {
	s := NewSession(WithCanvasSize(4, 4), WithTool(ToolBucket))
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if s.RequestFill(Point{1, 1}) {
		t.Fatal("closed session accepted a fill")
	}
	waitFills(t, s)
}
