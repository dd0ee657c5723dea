package search

import (
	"strconv"
	"time"

	pkgsearch "github.com/go-branchbound/branchbound/pkg/search"
)

// pathNode identifies a node in a small test tree by the sequence of child
// indices taken from the root, e.g. "", "0", "01".
type pathNode = string

// pathGenerator generates a test tree's children given a branching-factor
// function: degree(path) is the number of children path has (0 for a leaf).
type pathGenerator struct {
	path   pathNode
	degree func(pathNode) int
	i      int
}

func newPathGenerator(path pathNode, degree func(pathNode) int) *pathGenerator {
	return &pathGenerator{path: path, degree: degree}
}

func (g *pathGenerator) Residual() int {
	return g.degree(g.path) - g.i
}

func (g *pathGenerator) Advance() (pathNode, bool) {
	if g.i >= g.degree(g.path) {
		return "", false
	}
	child := g.path + strconv.Itoa(g.i)
	g.i++
	return child, true
}

func (g *pathGenerator) Children(node pathNode) pkgsearch.Generator[pathNode] {
	return newPathGenerator(node, g.degree)
}

// countingAccumulator counts how many values were added, in addition to
// whatever an underlying accumulator computes; used to assert visitation
// counts in enumeration tests.
type countingAccumulator struct {
	inner pkgsearch.Accumulator[int]
	adds  int
}

func (c *countingAccumulator) Add(v int) {
	c.adds++
	c.inner.Add(v)
}

func (c *countingAccumulator) Value() int {
	return c.inner.Value()
}

// spyLogger is a standalone Logger that records events by kind, for asserting event
// totality and ordering invariants without depending on a concrete logger
// implementation's trace output format.
type spyLogger[Node any] struct {
	events       []pkgsearch.Event
	maxDepth     int
	iterBound    int64
	wallDisabled bool
}

func (s *spyLogger[Node]) Log(event pkgsearch.Event, _ int64, stack []pkgsearch.CountingGenerator[Node]) {
	s.events = append(s.events, event)
	if len(stack) > s.maxDepth {
		s.maxDepth = len(stack)
	}
}

func (s *spyLogger[Node]) LogStrengthen(_ string, iter int64, stack []pkgsearch.CountingGenerator[Node]) {
	s.Log(pkgsearch.EventStrengthen, iter, stack)
}

func (s *spyLogger[Node]) SetIterTimeout(bound int64) { s.iterBound = bound }
func (s *spyLogger[Node]) SetWallTimeout(_ time.Duration) {
	s.wallDisabled = true
}

func (s *spyLogger[Node]) Timeout(iter int64, _ []pkgsearch.CountingGenerator[Node]) error {
	if s.iterBound >= 0 && iter >= s.iterBound {
		return pkgsearch.ErrTimeout
	}
	return nil
}

func (s *spyLogger[Node]) countOf(event pkgsearch.Event) int {
	n := 0
	for _, e := range s.events {
		if e == event {
			n++
		}
	}
	return n
}

func newSpyLogger[Node any]() *spyLogger[Node] {
	return &spyLogger[Node]{iterBound: -1}
}
