package search

// Generator is a lazy, stateful cursor over the children of a specific
// parent node. Implementations are not required to be safe for concurrent
// use; the engine drives a single generator stack from one goroutine.
type Generator[Node any] interface {
	// Residual returns an upper bound on the number of children this
	// generator has not yet produced. It must be zero if and only if no
	// further children remain; it may over-report a positive residual for
	// a node that is in fact exhausted, but it must never under-report
	// zero for a node that still has children.
	Residual() int

	// Advance returns the next child and mutates the cursor. It is only
	// ever called when Residual() > 0, and ok is true whenever it is
	// called under that precondition.
	Advance() (child Node, ok bool)

	// Children returns a fresh generator over node's children. It must not
	// observe or mutate the receiver's own cursor state — the engine calls
	// Children on the enclosing generator of the *parent* of node, not on
	// a generator belonging to node itself, so the factory must be pure
	// with respect to whatever cursor state the receiver is carrying.
	Children(node Node) Generator[Node]
}
