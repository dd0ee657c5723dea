package search

import (
	"errors"
	"fmt"
)

// ErrTimeout is returned by a search when the logger's iteration bound or
// wall-clock deadline has been reached. Apart from the context's own error
// when the search's context is done, it is the only error the engine
// itself returns during a search.
var ErrTimeout = errors.New("search: timed out")

// IllegalPruneVerdict is panicked when a pruning predicate returns a Verdict
// outside the three defined values. This indicates a bug in the caller's
// pruning predicate, not a runtime condition, so the engine aborts rather
// than returning an error.
type IllegalPruneVerdict Verdict

func (v IllegalPruneVerdict) Error() string {
	return fmt.Sprintf("search: prune() returned illegal verdict %d", int(v))
}

// IllegalLogEvent is panicked when a concrete logger observes an Event
// outside the closed event set.
type IllegalLogEvent Event

func (e IllegalLogEvent) Error() string {
	return fmt.Sprintf("search: log() called with illegal event %d", int(e))
}
