package search

import pkgsearch "github.com/go-branchbound/branchbound/pkg/search"

// genStack is the ordered sequence of counting generators representing the
// current root-to-frontier path. Its depth equals the current search depth.
type genStack[Node any] struct {
	frames []pkgsearch.CountingGenerator[Node]
}

func (s *genStack[Node]) push(gen pkgsearch.Generator[Node]) {
	s.frames = append(s.frames, pkgsearch.WrapGenerator(gen))
}

func (s *genStack[Node]) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *genStack[Node]) peek() pkgsearch.CountingGenerator[Node] {
	return s.frames[len(s.frames)-1]
}

func (s *genStack[Node]) empty() bool {
	return len(s.frames) == 0
}

// snapshot returns the stack's current frames for handing to a logger. The
// slice is shared with the stack's own backing array; loggers must treat it
// as read-only and must not retain it past the call that produced it, since
// push/pop may reuse or resize the backing array on the next step.
func (s *genStack[Node]) snapshot() []pkgsearch.CountingGenerator[Node] {
	return s.frames
}
