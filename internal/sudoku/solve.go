package sudoku

import "errors"

// SolveByDeduction loads a puzzle and runs the strategy engine until
// it is solved or stuck. The returned grid may be partially filled.
func SolveByDeduction(lines []string) ([]string, error) {
	g, err := Load(lines)
	if err != nil {
		return nil, err
	}
	if _, err := g.Deduce(); err != nil {
		return nil, err
	}
	return g.Format(), nil
}

// SolveBySearch loads a puzzle and returns its first solution found by
// backtracking search, or [ErrNoSolution]. Givens that contradict each
// other make the puzzle trivially unsatisfiable.
func SolveBySearch(lines []string) ([]string, error) {
	g, err := Load(lines)
	if err != nil {
		var ce ContradictionError
		if errors.As(err, &ce) {
			return nil, ErrNoSolution
		}
		return nil, err
	}
	sol, ok := g.Solutions().Next()
	if !ok {
		return nil, ErrNoSolution
	}
	return sol.Format(), nil
}
