package search

// TracePredicate is a pure function over (event, events-so-far, stack-depth)
// used by concrete loggers to decide whether to emit a structured trace
// record in addition to updating their counters. EventTerminate and
// EventTimeout always trigger emission regardless of the predicate; that
// behavior lives in the concrete loggers, not here.
type TracePredicate func(event Event, evts int64, stackDepth int) bool

// PredicateOptions composes the four optional trace criteria from
// spec.md §4.2. Any matching criterion fires emission. Evts <= 0,
// StackDepth < 0, and MaxStackDepth < 0 disable the corresponding criterion.
type PredicateOptions struct {
	Strengthen    bool
	Evts          int64
	StackDepth    int
	MaxStackDepth int
}

// NewTracePredicate builds a TracePredicate from opts.
func NewTracePredicate(opts PredicateOptions) TracePredicate {
	return func(event Event, evts int64, stackDepth int) bool {
		if opts.Strengthen && event == EventStrengthen {
			return true
		}
		if opts.Evts > 0 && evts%opts.Evts == 0 {
			return true
		}
		if opts.StackDepth >= 0 && stackDepth == opts.StackDepth {
			return true
		}
		if opts.MaxStackDepth >= 0 && stackDepth <= opts.MaxStackDepth {
			return true
		}
		return false
	}
}

// NeverTrace is a TracePredicate that never fires; it is the default used by
// concrete loggers when no predicate is supplied.
func NeverTrace(Event, int64, int) bool {
	return false
}
