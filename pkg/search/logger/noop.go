package logger

import (
	"sync/atomic"
	"time"

	"github.com/go-branchbound/branchbound/pkg/search"
)

// NoopLogger implements search.Logger's timeout discipline only: it never
// records events, but honors an iteration bound and/or a wall-clock
// deadline. CountLogger and HistogramLogger embed it and layer event
// recording on top.
type NoopLogger[Node any] struct {
	iterBound int64 // -1 means no iteration bound
	stopFlag  atomic.Bool
}

// NewNoopLogger returns a NoopLogger with no timeout configured.
func NewNoopLogger[Node any]() *NoopLogger[Node] {
	return &NoopLogger[Node]{iterBound: -1}
}

func (n *NoopLogger[Node]) Log(search.Event, int64, []search.CountingGenerator[Node]) {}

func (n *NoopLogger[Node]) LogStrengthen(string, int64, []search.CountingGenerator[Node]) {}

// SetIterTimeout sets an iteration bound; bound < 0 leaves any existing
// bound (or the absence of one) unchanged.
func (n *NoopLogger[Node]) SetIterTimeout(bound int64) {
	if bound < 0 {
		return
	}
	n.iterBound = bound
}

// SetWallTimeout starts a detached timer that sets the stop flag after d.
// d < 0 leaves any existing deadline unchanged and starts no timer. If the
// goroutine fails to start (it cannot, in this implementation, but callers
// composing loggers should preserve this degrade-gracefully property), the
// search simply never observes a wall-clock timeout.
func (n *NoopLogger[Node]) SetWallTimeout(d time.Duration) {
	if d < 0 {
		return
	}
	go func() {
		time.Sleep(d)
		n.stopFlag.Store(true)
	}()
}

// Timeout returns search.ErrTimeout once the wall-clock deadline has fired
// or iter has reached the configured iteration bound.
func (n *NoopLogger[Node]) Timeout(iter int64, _ []search.CountingGenerator[Node]) error {
	if n.stopFlag.Load() || (n.iterBound >= 0 && iter >= n.iterBound) {
		return search.ErrTimeout
	}
	return nil
}
