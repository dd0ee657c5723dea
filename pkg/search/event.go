package search

// Event is drawn from the closed set of search events the engine may emit.
type Event int

const (
	EventExpand Event = iota
	EventBacktrack
	EventPrune
	EventPruneBacktrack
	EventStrengthen
	EventShortCircuit
	EventTerminate
	EventTimeout
)

func (e Event) String() string {
	switch e {
	case EventExpand:
		return "EXPAND"
	case EventBacktrack:
		return "BACKTRACK"
	case EventPrune:
		return "PRUNE"
	case EventPruneBacktrack:
		return "PRUNEBACKTRACK"
	case EventStrengthen:
		return "STRENGTHEN"
	case EventShortCircuit:
		return "SHORTCIRCUIT"
	case EventTerminate:
		return "TERMINATE"
	case EventTimeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Verdict is the result of a pruning predicate applied to a candidate node
// and the current incumbent.
type Verdict int

const (
	// VerdictBelow means the candidate is not (yet) known to be dominated;
	// expand it.
	VerdictBelow Verdict = iota
	// VerdictPrune means the subtree rooted at the candidate can never beat
	// the incumbent; do not descend into it, but keep considering its
	// siblings.
	VerdictPrune
	// VerdictPruneBacktrack means the candidate and all of its later
	// siblings are dominated; leave the current level entirely.
	VerdictPruneBacktrack
)
