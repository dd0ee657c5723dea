package search

import (
	"context"

	pkgsearch "github.com/go-branchbound/branchbound/pkg/search"
	"github.com/go-branchbound/branchbound/pkg/search/logger"
)

// EnumEngine performs unconstrained enumeration over the tree rooted at
// Root, accumulating Objective(child) for every node visited.
type EnumEngine[Node any, T any] struct {
	Root          Node
	RootGenerator pkgsearch.Generator[Node]
	Objective     func(Node) T
	Accumulator   pkgsearch.Accumulator[T]
	Logger        pkgsearch.Logger[Node]
}

// Search walks the entire tree and returns the accumulator's final value.
func (e *EnumEngine[Node, T]) Search(ctx context.Context) (T, error) {
	lg := e.Logger
	if lg == nil {
		lg = logger.NewNoopLogger[Node]()
	}

	var iter int64
	stack := &genStack[Node]{}

	lg.Log(pkgsearch.EventExpand, iter, stack.snapshot())
	stack.push(e.RootGenerator.Children(e.Root))

	for !stack.empty() {
		if err := ctx.Err(); err != nil {
			return e.Accumulator.Value(), err
		}
		iter++
		if err := lg.Timeout(iter, stack.snapshot()); err != nil {
			return e.Accumulator.Value(), err
		}

		gen := stack.peek()
		if gen.Residual() > 0 {
			child, _ := gen.Advance()
			e.Accumulator.Add(e.Objective(child))
			lg.Log(pkgsearch.EventExpand, iter, stack.snapshot())
			stack.push(gen.Children(child))
		} else {
			lg.Log(pkgsearch.EventBacktrack, iter, stack.snapshot())
			stack.pop()
		}
	}

	lg.Log(pkgsearch.EventTerminate, iter, stack.snapshot())
	return e.Accumulator.Value(), nil
}
