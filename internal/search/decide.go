package search

import (
	"cmp"
	"context"
)

// DecEngine is a thin specialization of OptEngine that terminates on finding
// a node whose objective equals a required target value.
type DecEngine[Node any, T cmp.Ordered] struct {
	Opt OptEngine[Node, T]
}

// Search runs optimization with short-circuiting enabled. If the node the
// search settled on has an objective equal to greatest, it returns that node
// and true; otherwise it returns the zero Node and false. The caller asserts that greatest is a true upper bound on
// the reachable objective values and that Opt.Prune is admissible.
func (e *DecEngine[Node, T]) Search(ctx context.Context, greatest T) (Node, bool, error) {
	x, err := e.Opt.SearchUntil(ctx, &greatest)
	if err != nil {
		var zero Node
		return zero, false, err
	}
	if e.Opt.Objective(x) == greatest {
		return x, true, nil
	}
	var zero Node
	return zero, false, nil
}
