package search

// CountingGenerator decorates a Generator, preserving all of its semantics
// and additionally exposing the number of successful Advance calls made so
// far.
type CountingGenerator[Node any] interface {
	Generator[Node]

	// AdvanceCount returns the number of successful Advance calls made on
	// this generator. It starts at zero and increments by exactly one per
	// successful Advance.
	AdvanceCount() int
}

type countingGenerator[Node any] struct {
	gen          Generator[Node]
	advanceCount int
}

// WrapGenerator returns a CountingGenerator that delegates Residual and
// Children verbatim to gen and counts successful calls to Advance. Children returns an
// unwrapped Generator — the engine re-wraps it itself when the generator is
// pushed onto the stack.
func WrapGenerator[Node any](gen Generator[Node]) CountingGenerator[Node] {
	return &countingGenerator[Node]{gen: gen}
}

func (c *countingGenerator[Node]) Residual() int {
	return c.gen.Residual()
}

func (c *countingGenerator[Node]) Advance() (Node, bool) {
	child, ok := c.gen.Advance()
	if ok {
		c.advanceCount++
	}
	return child, ok
}

func (c *countingGenerator[Node]) Children(node Node) Generator[Node] {
	return c.gen.Children(node)
}

func (c *countingGenerator[Node]) AdvanceCount() int {
	return c.advanceCount
}
