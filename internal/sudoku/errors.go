package sudoku

import (
	"errors"
	"fmt"
)

// ErrNoSolution is the normal outcome of searching an unsatisfiable
// grid. It is not an internal error.
var ErrNoSolution = errors.New("puzzle has no solution")

// ContradictionError reports a placement that violates a peer
// constraint: the value is already placed at a peer, or the placement
// would strand a peer whose only remaining candidate is that value.
// It is fatal to the current deductive run.
type ContradictionError struct {
	Cell  Cell
	Value Digit
	Peer  Cell
	Sole  bool // peer would be left with zero candidates
}

// [ContradictionError] implements [error]
func (e ContradictionError) Error() string {
	if e.Sole {
		return fmt.Sprintf("cannot place %s at %s: only candidate left for %s",
			e.Value, e.Cell, e.Peer)
	}
	return fmt.Sprintf("cannot place %s at %s: already placed at %s",
		e.Value, e.Cell, e.Peer)
}

// InvalidRemovalError reports an attempt to remove a value that is not
// a candidate. It signals a defect in the calling strategy, never a
// data problem.
type InvalidRemovalError struct {
	Cell  Cell
	Value Digit
}

// [InvalidRemovalError] implements [error]
func (e InvalidRemovalError) Error() string {
	return fmt.Sprintf("cannot remove %s from %s: not a candidate",
		e.Value, e.Cell)
}
