package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-branchbound/branchbound/pkg/search"
)

// sliceGenerator is a minimal search.Generator over a fixed slice of
// children, used across this package's tests.
type sliceGenerator struct {
	children []int
	i        int
}

func (g *sliceGenerator) Residual() int {
	return len(g.children) - g.i
}

func (g *sliceGenerator) Advance() (int, bool) {
	if g.i >= len(g.children) {
		return 0, false
	}
	child := g.children[g.i]
	g.i++
	return child, true
}

func (g *sliceGenerator) Children(int) search.Generator[int] {
	return &sliceGenerator{}
}

func TestWrapGeneratorCountsAdvances(t *testing.T) {
	gen := search.WrapGenerator[int](&sliceGenerator{children: []int{1, 2, 3}})

	assert.Equal(t, 0, gen.AdvanceCount())
	assert.Equal(t, 3, gen.Residual())

	child, ok := gen.Advance()
	assert.True(t, ok)
	assert.Equal(t, 1, child)
	assert.Equal(t, 1, gen.AdvanceCount())
	assert.Equal(t, 2, gen.Residual())

	gen.Advance()
	gen.Advance()
	assert.Equal(t, 3, gen.AdvanceCount())
	assert.Equal(t, 0, gen.Residual())

	_, ok = gen.Advance()
	assert.False(t, ok)
	assert.Equal(t, 3, gen.AdvanceCount(), "a failed advance must not increment the counter")
}

func TestWrapGeneratorChildrenDelegatesUnwrapped(t *testing.T) {
	gen := search.WrapGenerator[int](&sliceGenerator{children: []int{1}})
	children := gen.Children(99)

	if _, ok := children.(search.CountingGenerator[int]); ok {
		t.Fatal("Children must return an unwrapped generator")
	}
}
