package sudoku

import "fmt"

// ActionKind tags the two kinds of grid mutation a strategy can
// propose.
type ActionKind int8

const (
	ActionPlace ActionKind = iota
	ActionRemove
)

func (k ActionKind) String() string {
	switch k {
	case ActionPlace:
		return "place"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Action is an immutable instruction produced by a strategy: place a
// value at a cell, or remove a candidate from one. It is applied
// exactly once, then discarded.
type Action struct {
	Kind  ActionKind
	Cell  Cell
	Value Digit
}

// Apply performs the mutation on g, dispatched by tag.
func (a Action) Apply(g *Grid) error {
	switch a.Kind {
	case ActionPlace:
		return g.Place(a.Cell, a.Value)
	case ActionRemove:
		return g.Remove(a.Cell, a.Value)
	default:
		return fmt.Errorf("unknown action kind %d", a.Kind)
	}
}

func (a Action) String() string {
	return fmt.Sprintf("%s %s at %s", a.Kind, a.Value, a.Cell)
}
