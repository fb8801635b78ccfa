package sketch

import (
	"context"
	"image"
	"image/color"
	"math"

	"github.com/example/sketchpad/internal/floodfill"
)

type fillRequest struct {
	seed  image.Point
	color color.RGBA
}

// RequestFill queues a bucket fill at p with the selected colour. It does
// nothing unless the bucket tool is selected, a bitmap exists and p lies on
// it.
//
// Fills run one at a time. While one is running a single further request
// may wait; a request arriving when that slot is taken is dropped and
// logged. RequestFill reports whether the request was queued.
func (s *Session) RequestFill(p Point) bool {
	if s.tool != ToolBucket || s.closed.Load() {
		return false
	}
	bmp := s.bitmap.Load()
	if bmp == nil {
		return false
	}
	seed := image.Pt(int(math.Floor(p.X)), int(math.Floor(p.Y)))
	if !seed.In(bmp.Bounds()) {
		return false
	}
	s.addPending()
	select {
	case s.fills <- fillRequest{seed: seed, color: s.color}:
		return true
	default:
		s.donePending()
		Logger().Warn("sketch: fill dropped, another fill is already queued", "x", seed.X, "y", seed.Y)
		return false
	}
}

func (s *Session) worker() {
	defer close(s.workerDone)
	for {
		select {
		case req := <-s.fills:
			s.runFill(req)
		case <-s.quit:
			for {
				select {
				case <-s.fills:
					s.donePending()
				default:
					return
				}
			}
		}
	}
}

func (s *Session) runFill(req fillRequest) {
	defer s.donePending()
	base := s.bitmap.Load()
	if base == nil {
		return
	}
	out := floodfill.Clone(base)
	n := s.fill(out, req.seed, req.color)
	if n == 0 {
		Logger().Debug("sketch: fill changed nothing", "x", req.seed.X, "y", req.seed.Y)
		return
	}
	if !s.bitmap.CompareAndSwap(base, out) {
		Logger().Debug("sketch: fill discarded, bitmap was replaced", "x", req.seed.X, "y", req.seed.Y)
		return
	}
	Logger().Debug("sketch: fill published", "x", req.seed.X, "y", req.seed.Y, "pixels", n)
	s.changed()
}

func (s *Session) addPending() {
	s.pendingMu.Lock()
	if s.pending == 0 {
		s.idle = make(chan struct{})
	}
	s.pending++
	s.pendingMu.Unlock()
}

func (s *Session) donePending() {
	s.pendingMu.Lock()
	s.pending--
	if s.pending == 0 {
		close(s.idle)
	}
	s.pendingMu.Unlock()
}

// Wait blocks until every queued fill has been published or discarded, or
// ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	s.pendingMu.Lock()
	idle := s.idle
	s.pendingMu.Unlock()
	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the fill worker. Queued fills that have not started are
// abandoned. Close is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.quit)
		<-s.workerDone
	})
	return nil
}
