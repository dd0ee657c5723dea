package numpart

import (
	"math"

	"github.com/go-branchbound/branchbound/pkg/search"
)

// Objective returns an objective function over an instance's nodes: a
// complete partition's objective is the negation of its max part sum (so
// maximizing it minimizes the max sum), and an incomplete partition's
// objective is the smallest possible value, so it never looks better than
// any complete one until the search explores below it.
func Objective(inst *Instance) func(Node) int64 {
	return func(n Node) int64 {
		if len(n.Part) < inst.N {
			return math.MinInt64
		}
		return -n.MSum
	}
}

// Prune bulk-prunes a candidate (and, transitively, all its later
// siblings, since they are iterated in increasing order of the part they'd
// be added to) once it can no longer beat a complete incumbent: candidates
// are only compared against incumbent once the incumbent is itself a
// complete partition.
func Prune(inst *Instance) func(candidate, incumbent Node) search.Verdict {
	return func(candidate, incumbent Node) search.Verdict {
		if len(incumbent.Part) == inst.N && candidate.MSum >= incumbent.MSum {
			return search.VerdictPruneBacktrack
		}
		return search.VerdictBelow
	}
}
