package sudoku

import (
	"fmt"
	"strings"
)

// Load reads a puzzle from 9 strings of 9 characters each. A digit
// '1'-'9' is a given, a space or '.' an unassigned cell. Givens that
// are mutually inconsistent fail with [ContradictionError].
func Load(lines []string) (*Grid, error) {
	if len(lines) != 9 {
		return nil, fmt.Errorf("want 9 rows, got %d", len(lines))
	}
	g := NewGrid()
	for r, line := range lines {
		if len(line) != 9 {
			return nil, fmt.Errorf("row %d: want 9 cells, got %d", r+1, len(line))
		}
		for c := 0; c < 9; c++ {
			switch ch := line[c]; {
			case ch == ' ' || ch == '.':
			case '1' <= ch && ch <= '9':
				if err := g.Place(Cell{r, c}, Digit(ch-'0')); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("row %d: invalid cell %q", r+1, ch)
			}
		}
	}
	return g, nil
}

// Format renders the grid as 9 strings of 9 characters, '.' for
// unresolved cells. For a fully placed grid Format(Load(g)) == g.
func (g *Grid) Format() []string {
	lines := make([]string, 9)
	for r := 0; r < 9; r++ {
		row := make([]byte, 9)
		for c := 0; c < 9; c++ {
			if v := g.Value(Cell{r, c}); v != 0 {
				row[c] = byte('0' + v)
			} else {
				row[c] = '.'
			}
		}
		lines[r] = string(row)
	}
	return lines
}

// FormatPretty renders the grid with block separators for human
// inspection. Cosmetic only, not part of the data contract.
func (g *Grid) FormatPretty() string {
	var b strings.Builder
	for r, line := range g.Format() {
		if r == 3 || r == 6 {
			b.WriteString("---+---+---\n")
		}
		b.WriteString(line[0:3])
		b.WriteByte('|')
		b.WriteString(line[3:6])
		b.WriteByte('|')
		b.WriteString(line[6:9])
		b.WriteByte('\n')
	}
	return b.String()
}
