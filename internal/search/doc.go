// Package search implements the iterative, stack-based depth-first search
// engine that pkg/search exposes through its New*Engine constructors. This
// is the hard engineering of the system: the generator stack, the
// branch-and-bound control flow, and the event emission that drives the
// observability layer in pkg/search/logger.
package search
