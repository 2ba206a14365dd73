package sudoku

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// DeduceResult reports how a deductive run ended.
type DeduceResult int8

const (
	// Stalled means no strategy yields an action; the grid may still
	// be partially constrained.
	Stalled DeduceResult = iota
	// Solved means every cell has a placed value.
	Solved
)

func (r DeduceResult) String() string {
	switch r {
	case Stalled:
		return "stalled"
	case Solved:
		return "solved"
	default:
		return "unknown"
	}
}

// nextAction scans the strategies in priority order and returns the
// first action found.
func nextAction(g *Grid) (Action, string, bool) {
	for _, s := range strategies {
		if a, ok := s.scan(g); ok {
			return a, s.name, true
		}
	}
	return Action{}, "", false
}

// Deduce repeatedly applies the highest-priority applicable strategy,
// restarting the scan after every application, until no strategy
// yields an action. A [ContradictionError] or [InvalidRemovalError]
// from an applied action terminates the run; the grid then holds the
// state reached before the failing action.
func (g *Grid) Deduce() (DeduceResult, error) {
	for {
		a, name, ok := nextAction(g)
		if !ok {
			if g.Solved() {
				return Solved, nil
			}
			return Stalled, nil
		}
		if err := a.Apply(g); err != nil {
			return Stalled, err
		}
		Log.WithFields(logrus.Fields{
			"strategy": name,
			"action":   a.String(),
		}).Debug("applied")
	}
}
