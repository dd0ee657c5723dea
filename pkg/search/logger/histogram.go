package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/go-branchbound/branchbound/pkg/search"
)

// HistogramLogger has the same contract as CountLogger, but each
// per-event-kind counter is a histogram indexed by stack depth instead of a
// single running total.
type HistogramLogger[Node any] struct {
	*NoopLogger[Node]

	maxStackDepth int
	evts          int64

	expandHist         []int64
	backtrackHist       []int64
	pruneBacktrackHist  []int64
	pruneHist           []int64
	strengthenHist      []int64
	shortCircuitHist    []int64

	terminateAt int64
	timeoutAt   int64

	predicate search.TracePredicate
	out       io.Writer
}

// NewHistogramLogger returns a HistogramLogger that emits trace records to
// out (os.Stdout if nil) whenever predicate fires (search.NeverTrace if
// nil).
func NewHistogramLogger[Node any](predicate search.TracePredicate, out io.Writer) *HistogramLogger[Node] {
	if predicate == nil {
		predicate = search.NeverTrace
	}
	if out == nil {
		out = os.Stdout
	}
	return &HistogramLogger[Node]{
		NoopLogger:    NewNoopLogger[Node](),
		maxStackDepth: -1,
		terminateAt:   -1,
		timeoutAt:     -1,
		predicate:     predicate,
		out:           out,
	}
}

// Histogram getters; each returns a copy so callers cannot mutate the
// logger's internal state.
func (h *HistogramLogger[Node]) ExpandHist() []int64       { return append([]int64(nil), h.expandHist...) }
func (h *HistogramLogger[Node]) BacktrackHist() []int64    { return append([]int64(nil), h.backtrackHist...) }
func (h *HistogramLogger[Node]) PruneBacktrackHist() []int64 {
	return append([]int64(nil), h.pruneBacktrackHist...)
}
func (h *HistogramLogger[Node]) PruneHist() []int64      { return append([]int64(nil), h.pruneHist...) }
func (h *HistogramLogger[Node]) StrengthenHist() []int64 { return append([]int64(nil), h.strengthenHist...) }
func (h *HistogramLogger[Node]) ShortCircuitHist() []int64 {
	return append([]int64(nil), h.shortCircuitHist...)
}
func (h *HistogramLogger[Node]) MaxStackDepth() int { return h.maxStackDepth }
func (h *HistogramLogger[Node]) Evts() int64        { return h.evts }
func (h *HistogramLogger[Node]) TerminateAt() int64 { return h.terminateAt }

func (h *HistogramLogger[Node]) Log(event search.Event, iter int64, stack []search.CountingGenerator[Node]) {
	h.record(event, iter, stack, "")
}

func (h *HistogramLogger[Node]) LogStrengthen(objJSON string, iter int64, stack []search.CountingGenerator[Node]) {
	h.record(search.EventStrengthen, iter, stack, objJSON)
}

func (h *HistogramLogger[Node]) Timeout(iter int64, stack []search.CountingGenerator[Node]) error {
	if err := h.NoopLogger.Timeout(iter, stack); err != nil {
		h.record(search.EventTimeout, iter, stack, "")
		return err
	}
	return nil
}

func (h *HistogramLogger[Node]) record(event search.Event, iter int64, stack []search.CountingGenerator[Node], objJSON string) {
	stackDepth := len(stack)
	if stackDepth > h.maxStackDepth {
		h.maxStackDepth = stackDepth
		h.resize(&h.expandHist)
		h.resize(&h.backtrackHist)
		h.resize(&h.pruneBacktrackHist)
		h.resize(&h.pruneHist)
		h.resize(&h.strengthenHist)
		h.resize(&h.shortCircuitHist)
	}
	h.evts++

	switch event {
	case search.EventExpand:
		h.expandHist[stackDepth]++
	case search.EventBacktrack:
		h.backtrackHist[stackDepth]++
	case search.EventPruneBacktrack:
		h.pruneBacktrackHist[stackDepth]++
	case search.EventPrune:
		h.pruneHist[stackDepth]++
	case search.EventStrengthen:
		h.strengthenHist[stackDepth]++
	case search.EventShortCircuit:
		h.shortCircuitHist[stackDepth]++
	case search.EventTerminate:
		h.terminateAt = iter
	case search.EventTimeout:
		h.timeoutAt = iter
	default:
		panic(search.IllegalLogEvent(event))
	}

	if h.predicate(event, h.evts, stackDepth) || event == search.EventTerminate || event == search.EventTimeout {
		h.emit(event, iter, stack, objJSON, stackDepth)
	}
}

// resize grows hist to maxStackDepth+1 entries, leaving existing entries
// untouched.
func (h *HistogramLogger[Node]) resize(hist *[]int64) {
	for len(*hist) <= h.maxStackDepth {
		*hist = append(*hist, 0)
	}
}

type histogramSummary struct {
	MaxStackDepth      int     `json:"maxStackDepth"`
	Evts               int64   `json:"evts"`
	ExpandHist         []int64 `json:"expandHist"`
	BacktrackHist      []int64 `json:"backtrackHist"`
	PruneBacktrackHist []int64 `json:"pruneBacktrackHist"`
	PruneHist          []int64 `json:"pruneHist"`
	StrengthenHist     []int64 `json:"strengthenHist"`
	ShortCircuitHist   []int64 `json:"shortcircuitHist"`
	TerminateAt        *int64  `json:"terminateAt,omitempty"`
	TimeoutAt          *int64  `json:"timeoutAt,omitempty"`
}

type histogramRecord struct {
	search.TraceRecord
	histogramSummary
}

func (h *HistogramLogger[Node]) emit(event search.Event, iter int64, stack []search.CountingGenerator[Node], objJSON string, stackDepth int) {
	rec := histogramRecord{
		TraceRecord: search.TraceRecord{
			Iter:       iter,
			Event:      event.String(),
			Objective:  objJSON,
			StackDepth: stackDepth,
			Path:       pathOf(stack),
			Stack:      residualsOf(stack),
		},
		histogramSummary: histogramSummary{
			MaxStackDepth:      h.maxStackDepth,
			Evts:               h.evts,
			ExpandHist:         h.expandHist,
			BacktrackHist:      h.backtrackHist,
			PruneBacktrackHist: h.pruneBacktrackHist,
			PruneHist:          h.pruneHist,
			StrengthenHist:     h.strengthenHist,
			ShortCircuitHist:   h.shortCircuitHist,
		},
	}
	if h.terminateAt >= 0 {
		rec.TerminateAt = &h.terminateAt
	}
	if h.timeoutAt >= 0 {
		rec.TimeoutAt = &h.timeoutAt
	}

	line, err := marshalCompact(rec)
	if err != nil {
		panic(fmt.Sprintf("search/logger: failed to marshal trace record: %v", err))
	}
	fmt.Fprintln(h.out, string(line))
}
