package service

import (
	"context"
	"sync"
)

// StreamGuard keeps at most one recommendation request in flight. Begin
// cancels the previous request before handing out a new context; streams
// opened on that context close themselves on cancellation.
type StreamGuard struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

func NewStreamGuard() *StreamGuard {
	return &StreamGuard{}
}

// Begin cancels the active request, if any, and returns the context for the
// next one together with its sequence number. The returned done func releases
// the context; it only clears the guard if no newer request has begun.
func (g *StreamGuard) Begin(parent context.Context) (ctx context.Context, seq uint64, done func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	g.seq++
	g.cancel = cancel
	current := g.seq

	return ctx, current, func() {
		cancel()

		g.mu.Lock()
		defer g.mu.Unlock()
		if g.seq == current {
			g.cancel = nil
		}
	}
}

// Cancel aborts the active request. It reports whether one was active.
func (g *StreamGuard) Cancel() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel == nil {
		return false
	}
	g.cancel()
	g.cancel = nil
	return true
}

// Current reports whether seq identifies the most recent request and that
// request is still active.
func (g *StreamGuard) Current(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.cancel != nil && g.seq == seq
}
