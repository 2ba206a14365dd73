package sudoku

import "fmt"

// Cell addresses one of the 81 grid positions. Rows and columns are
// 0-based; String renders them 1-based for humans.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("r%dc%d", c.Row+1, c.Col+1)
}

func (c Cell) index() int {
	return c.Row*9 + c.Col
}

// Box identifies one of the nine 3×3 blocks, 0-based on each axis.
type Box struct {
	Row, Col int
}

func (b Box) String() string {
	return fmt.Sprintf("b%d%d", b.Row+1, b.Col+1)
}

// BoxOf maps a cell to the block containing it.
func BoxOf(c Cell) Box {
	return Box{c.Row / 3, c.Col / 3}
}

// allCells lists every cell in row-major order. This is also the fixed
// traversal order of the backtracking search.
var allCells = func() [81]Cell {
	var cells [81]Cell
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			cells[r*9+c] = Cell{r, c}
		}
	}
	return cells
}()

var allBoxes = [9]Box{
	{0, 0}, {0, 1}, {0, 2},
	{1, 0}, {1, 1}, {1, 2},
	{2, 0}, {2, 1}, {2, 2},
}

func rowCells(r int) []Cell {
	return allCells[r*9 : r*9+9]
}

func colCells(c int) []Cell {
	cells := make([]Cell, 9)
	for r := 0; r < 9; r++ {
		cells[r] = Cell{r, c}
	}
	return cells
}

// BoxCells returns the 9 cells of a block in row-major order.
func BoxCells(b Box) []Cell {
	cells := make([]Cell, 0, 9)
	for r := b.Row * 3; r < b.Row*3+3; r++ {
		for c := b.Col * 3; c < b.Col*3+3; c++ {
			cells = append(cells, Cell{r, c})
		}
	}
	return cells
}

// peerTable[i] holds the 20 cells sharing a row, column or block with
// cell i: 8 in the row, 8 in the column and the 4 remaining block
// cells. A cell is never its own peer.
var peerTable = func() [81][]Cell {
	var table [81][]Cell
	for i, c := range allCells {
		var seen [81]bool
		peers := make([]Cell, 0, 20)
		add := func(p Cell) {
			if p != c && !seen[p.index()] {
				seen[p.index()] = true
				peers = append(peers, p)
			}
		}
		for _, p := range rowCells(c.Row) {
			add(p)
		}
		for _, p := range colCells(c.Col) {
			add(p)
		}
		for _, p := range BoxCells(BoxOf(c)) {
			add(p)
		}
		table[i] = peers
	}
	return table
}()

// Peers returns the cells that cannot hold the same value as c. The
// returned slice is shared; callers must not modify it.
func Peers(c Cell) []Cell {
	return peerTable[c.index()]
}
