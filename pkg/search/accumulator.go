package search

import "golang.org/x/exp/constraints"

// Accumulator collects objective values produced during an enumeration
// search. Add must satisfy the laws of a commutative monoid: the result of
// a sequence of Add calls must not depend on their order.
type Accumulator[T any] interface {
	Add(x T)
	Value() T
}

// sumAccumulator accumulates values of any numeric type by addition, which
// is commutative and associative, satisfying Accumulator's contract.
type sumAccumulator[T constraints.Integer | constraints.Float] struct {
	total T
}

// NewSumAccumulator returns an Accumulator that sums the values added to it,
// starting from zero.
func NewSumAccumulator[T constraints.Integer | constraints.Float]() Accumulator[T] {
	return &sumAccumulator[T]{}
}

func (a *sumAccumulator[T]) Add(x T) {
	a.total += x
}

func (a *sumAccumulator[T]) Value() T {
	return a.total
}
