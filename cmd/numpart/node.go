package numpart

// Node is a partial multiway partition: the first len(Part) items of the
// instance have been assigned to parts, and the rest remain unassigned.
//
// Invariants:
//   - len(Part) <= inst.N; Part[i] is the part index (0 <= . < inst.K) that
//     item i was assigned to
//   - len(Sum) == inst.K; Sum[p] is the sum of items assigned to part p
//   - RSum is the sum of items not yet assigned (indices >= len(Part))
//   - Pi is a permutation of [0, inst.K) with Sum[Pi[0]] >= Sum[Pi[1]] >= ...
//   - MSum == Sum[Pi[0]], the current maximum part sum
type Node struct {
	Part []int
	Sum  []int64
	RSum int64
	Pi   []int
	MSum int64
}

// mkRoot builds the empty partition: no items assigned, every part at sum
// zero, and the identity permutation (all parts tie at zero, so any
// ordering is a valid descending-by-sum order).
func mkRoot(inst *Instance) Node {
	var rsum int64
	for _, size := range inst.S {
		rsum += size
	}

	sum := make([]int64, inst.K)
	pi := make([]int, inst.K)
	for i := range pi {
		pi[i] = i
	}

	return Node{
		Part: nil,
		Sum:  sum,
		RSum: rsum,
		Pi:   pi,
		MSum: sum[pi[0]],
	}
}
