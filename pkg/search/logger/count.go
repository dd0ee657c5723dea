package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-branchbound/branchbound/pkg/search"
)

// CountLogger maintains per-event-kind counters and emits structured trace
// records to Out whenever its trace predicate fires (or on TERMINATE/
// TIMEOUT, which always emit regardless of the predicate).
type CountLogger[Node any] struct {
	*NoopLogger[Node]

	maxStackDepth int
	evts          int64

	expandEvts         int64
	backtrackEvts      int64
	pruneBacktrackEvts int64
	pruneEvts          int64
	strengthenEvts     int64
	shortCircuitEvts   int64

	terminateAt int64 // -1 until EventTerminate occurs
	timeoutAt   int64 // -1 until EventTimeout occurs

	predicate search.TracePredicate
	out       io.Writer
}

// NewCountLogger returns a CountLogger that emits trace records to out
// (os.Stdout if nil) whenever predicate fires (search.NeverTrace if nil).
func NewCountLogger[Node any](predicate search.TracePredicate, out io.Writer) *CountLogger[Node] {
	if predicate == nil {
		predicate = search.NeverTrace
	}
	if out == nil {
		out = os.Stdout
	}
	return &CountLogger[Node]{
		NoopLogger:    NewNoopLogger[Node](),
		maxStackDepth: -1,
		terminateAt:   -1,
		timeoutAt:     -1,
		predicate:     predicate,
		out:           out,
	}
}

// Counter getters.
func (c *CountLogger[Node]) MaxStackDepth() int        { return c.maxStackDepth }
func (c *CountLogger[Node]) Evts() int64               { return c.evts }
func (c *CountLogger[Node]) ExpandEvts() int64         { return c.expandEvts }
func (c *CountLogger[Node]) BacktrackEvts() int64      { return c.backtrackEvts }
func (c *CountLogger[Node]) PruneBacktrackEvts() int64 { return c.pruneBacktrackEvts }
func (c *CountLogger[Node]) PruneEvts() int64          { return c.pruneEvts }
func (c *CountLogger[Node]) StrengthenEvts() int64     { return c.strengthenEvts }
func (c *CountLogger[Node]) ShortCircuitEvts() int64   { return c.shortCircuitEvts }
func (c *CountLogger[Node]) TerminateAt() int64        { return c.terminateAt }

func (c *CountLogger[Node]) Log(event search.Event, iter int64, stack []search.CountingGenerator[Node]) {
	c.record(event, iter, stack, "")
}

func (c *CountLogger[Node]) LogStrengthen(objJSON string, iter int64, stack []search.CountingGenerator[Node]) {
	c.record(search.EventStrengthen, iter, stack, objJSON)
}

// Timeout layers a TIMEOUT trace record on top of NoopLogger's timeout
// discipline: Go has no super call, so the embedded logger's Timeout is
// invoked explicitly.
func (c *CountLogger[Node]) Timeout(iter int64, stack []search.CountingGenerator[Node]) error {
	if err := c.NoopLogger.Timeout(iter, stack); err != nil {
		c.record(search.EventTimeout, iter, stack, "")
		return err
	}
	return nil
}

type countSummary struct {
	MaxStackDepth      int    `json:"maxStackDepth"`
	Evts               int64  `json:"evts"`
	ExpandEvts         int64  `json:"expandEvts"`
	BacktrackEvts      int64  `json:"backtrackEvts"`
	PruneBacktrackEvts int64  `json:"pruneBacktrackEvts"`
	PruneEvts          int64  `json:"pruneEvts"`
	StrengthenEvts     int64  `json:"strengthenEvts"`
	ShortCircuitEvts   int64  `json:"shortcircuitEvts"`
	TerminateAt        *int64 `json:"terminateAt,omitempty"`
	TimeoutAt          *int64 `json:"timeoutAt,omitempty"`
}

type countRecord struct {
	search.TraceRecord
	countSummary
}

func (c *CountLogger[Node]) record(event search.Event, iter int64, stack []search.CountingGenerator[Node], objJSON string) {
	stackDepth := len(stack)
	if stackDepth > c.maxStackDepth {
		c.maxStackDepth = stackDepth
	}
	c.evts++

	switch event {
	case search.EventExpand:
		c.expandEvts++
	case search.EventBacktrack:
		c.backtrackEvts++
	case search.EventPruneBacktrack:
		c.pruneBacktrackEvts++
	case search.EventPrune:
		c.pruneEvts++
	case search.EventStrengthen:
		c.strengthenEvts++
	case search.EventShortCircuit:
		c.shortCircuitEvts++
	case search.EventTerminate:
		c.terminateAt = iter
	case search.EventTimeout:
		c.timeoutAt = iter
	default:
		panic(search.IllegalLogEvent(event))
	}

	if c.predicate(event, c.evts, stackDepth) || event == search.EventTerminate || event == search.EventTimeout {
		c.emit(event, iter, stack, objJSON, stackDepth)
	}
}

func (c *CountLogger[Node]) emit(event search.Event, iter int64, stack []search.CountingGenerator[Node], objJSON string, stackDepth int) {
	rec := countRecord{
		TraceRecord: search.TraceRecord{
			Iter:       iter,
			Event:      event.String(),
			Objective:  objJSON,
			StackDepth: stackDepth,
			Path:       pathOf(stack),
			Stack:      residualsOf(stack),
		},
		countSummary: countSummary{
			MaxStackDepth:      c.maxStackDepth,
			Evts:               c.evts,
			ExpandEvts:         c.expandEvts,
			BacktrackEvts:      c.backtrackEvts,
			PruneBacktrackEvts: c.pruneBacktrackEvts,
			PruneEvts:          c.pruneEvts,
			StrengthenEvts:     c.strengthenEvts,
			ShortCircuitEvts:   c.shortCircuitEvts,
		},
	}
	if c.terminateAt >= 0 {
		rec.TerminateAt = &c.terminateAt
	}
	if c.timeoutAt >= 0 {
		rec.TimeoutAt = &c.timeoutAt
	}

	line, err := marshalCompact(rec)
	if err != nil {
		// Marshaling a record built entirely from this logger's own
		// primitive fields cannot fail; treat it as a bug if it does.
		panic(fmt.Sprintf("search/logger: failed to marshal trace record: %v", err))
	}
	fmt.Fprintln(c.out, string(line))
}

func pathOf[Node any](stack []search.CountingGenerator[Node]) []int {
	path := make([]int, len(stack))
	for i, gen := range stack {
		path[i] = gen.AdvanceCount()
	}
	return path
}

func residualsOf[Node any](stack []search.CountingGenerator[Node]) []int {
	residuals := make([]int, len(stack))
	for i, gen := range stack {
		residuals[i] = gen.Residual()
	}
	return residuals
}
