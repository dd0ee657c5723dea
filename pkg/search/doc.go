// Package search provides a generic depth-first, branch-and-bound tree-search
// engine over implicitly-defined trees. Trees are never materialized: a Node
// is an opaque, application-defined value, and a Generator lazily produces a
// node's children one at a time.
//
// The engine itself (the iterative stack-based DFS driver) lives in
// internal/search and is reached only through the constructors in this
// package, analogous to how the DeppySolver SAT engine it is modeled on is
// reached only through pkg/solver/factory.
package search
