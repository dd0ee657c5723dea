package search

import (
	"cmp"
	"context"
	"fmt"

	pkgsearch "github.com/go-branchbound/branchbound/pkg/search"
	"github.com/go-branchbound/branchbound/pkg/search/logger"
)

// OptEngine performs branch-and-bound maximization over the tree rooted at
// Root. The caller asserts that Objective(Root) is a lower bound on any
// reachable value and that Prune is admissible (see pkg/search.Verdict).
type OptEngine[Node any, T cmp.Ordered] struct {
	Root          Node
	RootGenerator pkgsearch.Generator[Node]
	Objective     func(Node) T
	// Render converts an objective value into a JSON representation for
	// STRENGTHEN trace records. If nil, fmt.Sprint of the value is used
	// as is.
	Render func(T) string
	// Prune is consulted whenever a candidate's objective does not
	// strictly improve on the incumbent. A nil Prune never prunes.
	Prune  func(candidate, incumbent Node) pkgsearch.Verdict
	Logger pkgsearch.Logger[Node]
}

func (e *OptEngine[Node, T]) render(v T) string {
	if e.Render != nil {
		return e.Render(v)
	}
	return fmt.Sprint(v)
}

func (e *OptEngine[Node, T]) prune(candidate, incumbent Node) pkgsearch.Verdict {
	if e.Prune == nil {
		return pkgsearch.VerdictBelow
	}
	return e.Prune(candidate, incumbent)
}

// Search returns a node maximizing Objective over the whole tree.
func (e *OptEngine[Node, T]) Search(ctx context.Context) (Node, error) {
	return e.SearchUntil(ctx, nil)
}

// SearchUntil behaves like Search, but short-circuits as soon as it finds a
// node whose objective equals *greatest, if greatest is non-nil. The
// returned node is not guaranteed to be the overall maximum in that case.
// On timeout or context cancellation it returns the zero Node together
// with the error; the incumbent found so far is discarded.
func (e *OptEngine[Node, T]) SearchUntil(ctx context.Context, greatest *T) (Node, error) {
	lg := e.Logger
	if lg == nil {
		lg = logger.NewNoopLogger[Node]()
	}

	var iter int64
	incumbent := e.Root
	objIncumbent := e.Objective(e.Root)
	stack := &genStack[Node]{}

	lg.Log(pkgsearch.EventExpand, iter, stack.snapshot())
	stack.push(e.RootGenerator.Children(e.Root))

	for !stack.empty() {
		if err := ctx.Err(); err != nil {
			var zero Node
			return zero, err
		}
		iter++
		if err := lg.Timeout(iter, stack.snapshot()); err != nil {
			var zero Node
			return zero, err
		}

		gen := stack.peek()
		if gen.Residual() > 0 {
			child, _ := gen.Advance()
			objChild := e.Objective(child)

			if objChild > objIncumbent {
				lg.LogStrengthen(e.render(objChild), iter, stack.snapshot())
				incumbent = child
				objIncumbent = objChild

				if greatest != nil && objChild == *greatest {
					lg.Log(pkgsearch.EventShortCircuit, iter, stack.snapshot())
					lg.Log(pkgsearch.EventTerminate, iter, stack.snapshot())
					return incumbent, nil
				}

				lg.Log(pkgsearch.EventExpand, iter, stack.snapshot())
				stack.push(gen.Children(child))
				continue
			}

			switch verdict := e.prune(child, incumbent); verdict {
			case pkgsearch.VerdictBelow:
				lg.Log(pkgsearch.EventExpand, iter, stack.snapshot())
				stack.push(gen.Children(child))
			case pkgsearch.VerdictPrune:
				lg.Log(pkgsearch.EventPrune, iter, stack.snapshot())
			case pkgsearch.VerdictPruneBacktrack:
				lg.Log(pkgsearch.EventPruneBacktrack, iter, stack.snapshot())
				stack.pop()
			default:
				panic(pkgsearch.IllegalPruneVerdict(verdict))
			}
		} else {
			lg.Log(pkgsearch.EventBacktrack, iter, stack.snapshot())
			stack.pop()
		}
	}

	lg.Log(pkgsearch.EventTerminate, iter, stack.snapshot())
	return incumbent, nil
}
