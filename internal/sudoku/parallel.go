package sudoku

import (
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SearchParallel explores the candidates of the first unplaced cell
// concurrently, each branch on its own deep copy of the grid, and
// returns the first solution found. When solutions are not unique the
// returned one depends on branch timing; within a branch the search is
// the same deterministic traversal as [Grid.Solutions].
func (g *Grid) SearchParallel() (*Grid, error) {
	unplaced := g.Unplaced()
	if len(unplaced) == 0 {
		return g.Clone(), nil
	}
	cell := unplaced[0]

	var (
		grp   errgroup.Group
		mu    sync.Mutex
		found *Grid
	)
	for _, v := range g.Candidates(cell).Digits() {
		v := v
		branch := g.Clone()
		grp.Go(func() error {
			if err := branch.Place(cell, v); err != nil {
				var ce ContradictionError
				if errors.As(err, &ce) {
					return nil // dead branch
				}
				return err
			}
			if sol, ok := branch.Solutions().Next(); ok {
				mu.Lock()
				if found == nil {
					found = sol
				}
				mu.Unlock()
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	if found == nil {
		return nil, ErrNoSolution
	}
	return found, nil
}
