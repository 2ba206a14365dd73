package sudoku

import "math/bits"

/*
 * The nine inference rules, in driver priority order. Each one is a
 * pure scan over the grid returning at most one action.
 *
 * Every scan iterates rows, columns, boxes and digits in ascending
 * order, digit pairs in ascending lexicographic order, and returns the
 * first qualifying action. The determinism matters: test expectations
 * and the restart-after-apply driver loop both depend on it.
 */

type strategy struct {
	name string
	scan func(*Grid) (Action, bool)
}

var strategies = []strategy{
	{"sole candidate", soleCandidate},
	{"sole place in row", solePlaceInRow},
	{"sole place in column", solePlaceInColumn},
	{"sole candidate in box", soleCandidateInBox},
	{"box-row reduction", boxRowReduction},
	{"box-column reduction", boxColumnReduction},
	{"subsets in row", subsetsInRow},
	{"subsets in column", subsetsInColumn},
	{"subsets in box", subsetsInBox},
}

// remainingDigits is the union of candidate sets across a unit.
func remainingDigits(g *Grid, unit []Cell) DigitSet {
	var s DigitSet
	for _, c := range unit {
		s |= g.Candidates(c)
	}
	return s
}

// digitCells lists the cells of a unit holding v as a candidate,
// preserving unit order.
func digitCells(g *Grid, v Digit, unit []Cell) []Cell {
	var cells []Cell
	for _, c := range unit {
		if g.Candidates(c).Has(v) {
			cells = append(cells, c)
		}
	}
	return cells
}

// soleCandidate places the value of any cell whose candidate set has
// exactly one member (a naked single).
func soleCandidate(g *Grid) (Action, bool) {
	for _, c := range allCells {
		if v, ok := g.Candidates(c).Sole(); ok {
			return Action{ActionPlace, c, v}, true
		}
	}
	return Action{}, false
}

// solePlace places a digit that has exactly one candidate cell left in
// the unit (a hidden single).
func solePlace(g *Grid, unit []Cell) (Action, bool) {
	for v := Digit(1); v <= 9; v++ {
		if cells := digitCells(g, v, unit); len(cells) == 1 {
			return Action{ActionPlace, cells[0], v}, true
		}
	}
	return Action{}, false
}

func solePlaceInRow(g *Grid) (Action, bool) {
	for r := 0; r < 9; r++ {
		if a, ok := solePlace(g, rowCells(r)); ok {
			return a, true
		}
	}
	return Action{}, false
}

func solePlaceInColumn(g *Grid) (Action, bool) {
	for c := 0; c < 9; c++ {
		if a, ok := solePlace(g, colCells(c)); ok {
			return a, true
		}
	}
	return Action{}, false
}

// soleCandidateInBox is the degenerate per-box form of the forced-cell
// check: a box cell down to a single candidate is placed.
func soleCandidateInBox(g *Grid) (Action, bool) {
	for _, b := range allBoxes {
		for _, c := range BoxCells(b) {
			if v, ok := g.Candidates(c).Sole(); ok {
				return Action{ActionPlace, c, v}, true
			}
		}
	}
	return Action{}, false
}

// boxRowReduction removes a digit from the rest of a row when all of
// its candidate cells within some box share that row.
func boxRowReduction(g *Grid) (Action, bool) {
	for _, b := range allBoxes {
		cells := BoxCells(b)
		for _, v := range remainingDigits(g, cells).Digits() {
			var rowMask uint8
			for _, c := range cells {
				if g.Candidates(c).Has(v) {
					rowMask |= 1 << (c.Row % 3)
				}
			}
			if bits.OnesCount8(rowMask) != 1 {
				continue
			}
			r := b.Row*3 + bits.TrailingZeros8(rowMask)
			for _, c := range rowCells(r) {
				if BoxOf(c) == b {
					continue
				}
				if g.Candidates(c).Has(v) {
					return Action{ActionRemove, c, v}, true
				}
			}
		}
	}
	return Action{}, false
}

// boxColumnReduction is boxRowReduction over columns.
func boxColumnReduction(g *Grid) (Action, bool) {
	for _, b := range allBoxes {
		cells := BoxCells(b)
		for _, v := range remainingDigits(g, cells).Digits() {
			var colMask uint8
			for _, c := range cells {
				if g.Candidates(c).Has(v) {
					colMask |= 1 << (c.Col % 3)
				}
			}
			if bits.OnesCount8(colMask) != 1 {
				continue
			}
			col := b.Col*3 + bits.TrailingZeros8(colMask)
			for _, c := range colCells(col) {
				if BoxOf(c) == b {
					continue
				}
				if g.Candidates(c).Has(v) {
					return Action{ActionRemove, c, v}, true
				}
			}
		}
	}
	return Action{}, false
}

func intersectCells(xs, ys []Cell) []Cell {
	var common []Cell
	for _, x := range xs {
		for _, y := range ys {
			if x == y {
				common = append(common, x)
				break
			}
		}
	}
	return common
}

// subsets applies pair elimination within one unit. For each digit
// pair confined to exactly two shared cells:
//
//   - naked pair: both cells hold exactly that pair, so any other
//     occurrence of either digit elsewhere in the unit is removable;
//   - hidden pair: both digits have no candidate cells outside those
//     two, so any other digit inside them is removable.
func subsets(g *Grid, unit []Cell) (Action, bool) {
	remaining := remainingDigits(g, unit).Digits()
	if len(remaining) < 2 {
		return Action{}, false
	}
	for i := 0; i < len(remaining); i++ {
		for j := i + 1; j < len(remaining); j++ {
			v, w := remaining[i], remaining[j]
			vCells := digitCells(g, v, unit)
			wCells := digitCells(g, w, unit)
			common := intersectCells(vCells, wCells)
			if len(common) != 2 {
				continue
			}
			pair := DigitSet(0).With(v).With(w)
			if len(vCells) > 2 || len(wCells) > 2 {
				if g.Candidates(common[0]) == pair && g.Candidates(common[1]) == pair {
					for _, c := range vCells {
						if c != common[0] && c != common[1] {
							return Action{ActionRemove, c, v}, true
						}
					}
					for _, c := range wCells {
						if c != common[0] && c != common[1] {
							return Action{ActionRemove, c, w}, true
						}
					}
				}
			}
			if len(vCells) == 2 && len(wCells) == 2 {
				for _, c := range common {
					for _, other := range g.Candidates(c).Without(v).Without(w).Digits() {
						return Action{ActionRemove, c, other}, true
					}
				}
			}
		}
	}
	return Action{}, false
}

func subsetsInRow(g *Grid) (Action, bool) {
	for r := 0; r < 9; r++ {
		if a, ok := subsets(g, rowCells(r)); ok {
			return a, true
		}
	}
	return Action{}, false
}

func subsetsInColumn(g *Grid) (Action, bool) {
	for c := 0; c < 9; c++ {
		if a, ok := subsets(g, colCells(c)); ok {
			return a, true
		}
	}
	return Action{}, false
}

func subsetsInBox(g *Grid) (Action, bool) {
	for _, b := range allBoxes {
		if a, ok := subsets(g, BoxCells(b)); ok {
			return a, true
		}
	}
	return Action{}, false
}
