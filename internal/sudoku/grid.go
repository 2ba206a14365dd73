package sudoku

// Grid holds the candidate set of every cell plus the placed values.
// All 81 candidate sets are initialised eagerly; a placed cell has an
// empty candidate set, the placed value is authoritative.
//
// A Grid is owned by one engine at a time. The backtracking search
// never mutates it directly, it works through a layered overlay.
type Grid struct {
	candidates [81]DigitSet
	placed     [81]Digit
}

// NewGrid returns an empty grid where any digit can go anywhere.
func NewGrid() *Grid {
	g := &Grid{}
	for i := range g.candidates {
		g.candidates[i] = AllDigits
	}
	return g
}

// Candidates returns the digits that could still occupy c.
func (g *Grid) Candidates(c Cell) DigitSet {
	return g.candidates[c.index()]
}

// Value returns the placed digit at c, zero if unassigned.
func (g *Grid) Value(c Cell) Digit {
	return g.placed[c.index()]
}

// Place fixes v at c and strips v from the candidate sets of all
// peers. The caller must only place a currently legal candidate.
//
// Peers are validated before any mutation: if one already holds v, or
// one would be left with zero candidates, Place fails with
// [ContradictionError] and the grid is unchanged.
func (g *Grid) Place(c Cell, v Digit) error {
	only := DigitSet(0).With(v)
	for _, p := range Peers(c) {
		if g.placed[p.index()] == v {
			return ContradictionError{Cell: c, Value: v, Peer: p}
		}
		if g.candidates[p.index()] == only {
			return ContradictionError{Cell: c, Value: v, Peer: p, Sole: true}
		}
	}
	g.placed[c.index()] = v
	g.candidates[c.index()] = 0
	for _, p := range Peers(c) {
		g.candidates[p.index()] = g.candidates[p.index()].Without(v)
	}
	return nil
}

// Remove strips v from the candidate set at c. Removing a value that
// is not present fails with [InvalidRemovalError].
func (g *Grid) Remove(c Cell, v Digit) error {
	i := c.index()
	if !g.candidates[i].Has(v) {
		return InvalidRemovalError{Cell: c, Value: v}
	}
	g.candidates[i] = g.candidates[i].Without(v)
	return nil
}

// Solved reports whether every cell has a placed value.
func (g *Grid) Solved() bool {
	for _, v := range g.placed {
		if v == 0 {
			return false
		}
	}
	return true
}

// Unplaced returns the cells without a placed value in row-major
// order.
func (g *Grid) Unplaced() []Cell {
	var cells []Cell
	for i, v := range g.placed {
		if v == 0 {
			cells = append(cells, allCells[i])
		}
	}
	return cells
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	c := *g
	return &c
}
