package numpart

import (
	"sort"

	"github.com/go-branchbound/branchbound/pkg/search"
)

// NodeGenerator generates the children of a Node: one per part the next
// unassigned item could be placed in, greedily ordered so that the part
// with the smallest running sum is tried first.
type NodeGenerator struct {
	inst   *Instance
	parent Node
	level  int // index of the next item to place; inst.N if none remain
	k      int // number of untried placements remaining
}

// newNodeGenerator returns the generator of parent's children.
func newNodeGenerator(inst *Instance, parent Node) *NodeGenerator {
	level := len(parent.Part)
	k := 0
	if level != inst.N {
		k = inst.K
	}
	return &NodeGenerator{inst: inst, parent: parent, level: level, k: k}
}

// NewRootGenerator returns the generator of root's children, for use as an
// engine's RootGenerator.
func NewRootGenerator(inst *Instance, root Node) search.Generator[Node] {
	return newNodeGenerator(inst, root)
}

func (g *NodeGenerator) Residual() int { return g.k }

func (g *NodeGenerator) Advance() (Node, bool) {
	if g.k == 0 {
		return Node{}, false
	}
	g.k--

	// Pi is sorted in decreasing order by sum; iterating backwards over it
	// (via g.k) visits the part with the smallest sum first, which is what
	// the greedy heuristic wants.
	x := g.inst.S[g.level]
	l := g.parent.Pi[g.k]

	part := make([]int, g.level+1)
	copy(part, g.parent.Part)
	part[g.level] = l

	rsum := g.parent.RSum - x
	sum := make([]int64, len(g.parent.Sum))
	copy(sum, g.parent.Sum)
	sum[l] += x

	pi := make([]int, len(g.parent.Pi))
	copy(pi, g.parent.Pi)
	sort.SliceStable(pi, func(i, j int) bool { return sum[pi[i]] > sum[pi[j]] })

	child := Node{
		Part: part,
		Sum:  sum,
		RSum: rsum,
		Pi:   pi,
		MSum: sum[pi[0]],
	}
	return child, true
}

func (g *NodeGenerator) Children(node Node) search.Generator[Node] {
	return newNodeGenerator(g.inst, node)
}
