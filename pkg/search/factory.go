package search

import (
	"cmp"

	internalsearch "github.com/go-branchbound/branchbound/internal/search"
)

// NewEnumEngine returns an engine that enumerates the entire tree rooted at
// root, accumulating objective(child) over every node visited via
// accumulator. A nil logger disables event logging but keeps timeout
// discipline disabled as well — pass logger.NewNoopLogger[Node]() explicitly
// to configure a timeout without tracing.
func NewEnumEngine[Node any, T any](
	root Node,
	rootGenerator Generator[Node],
	objective func(Node) T,
	accumulator Accumulator[T],
	lg Logger[Node],
) *internalsearch.EnumEngine[Node, T] {
	return &internalsearch.EnumEngine[Node, T]{
		Root:          root,
		RootGenerator: rootGenerator,
		Objective:     objective,
		Accumulator:   accumulator,
		Logger:        lg,
	}
}

// NewOptEngine returns an engine that performs branch-and-bound maximization
// of objective over the tree rooted at root. prune and lg may be nil (no
// pruning, no logging, respectively). render may be nil to use fmt.Sprint.
func NewOptEngine[Node any, T cmp.Ordered](
	root Node,
	rootGenerator Generator[Node],
	objective func(Node) T,
	render func(T) string,
	prune func(candidate, incumbent Node) Verdict,
	lg Logger[Node],
) *internalsearch.OptEngine[Node, T] {
	return &internalsearch.OptEngine[Node, T]{
		Root:          root,
		RootGenerator: rootGenerator,
		Objective:     objective,
		Render:        render,
		Prune:         prune,
		Logger:        lg,
	}
}

// NewDecEngine returns an engine that searches for a node whose objective
// equals a target value supplied at Search time. The caller asserts that
// prune is admissible and that every value passed to Search is a true upper
// bound on the reachable objective values.
func NewDecEngine[Node any, T cmp.Ordered](
	root Node,
	rootGenerator Generator[Node],
	objective func(Node) T,
	render func(T) string,
	prune func(candidate, incumbent Node) Verdict,
	lg Logger[Node],
) *internalsearch.DecEngine[Node, T] {
	return &internalsearch.DecEngine[Node, T]{
		Opt: internalsearch.OptEngine[Node, T]{
			Root:          root,
			RootGenerator: rootGenerator,
			Objective:     objective,
			Render:        render,
			Prune:         prune,
			Logger:        lg,
		},
	}
}
