package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeerCount(t *testing.T) {
	t.Parallel()
	for _, c := range allCells {
		peers := Peers(c)
		assert.Len(t, peers, 20, "peers of %s", c)
		assert.NotContains(t, peers, c, "%s is its own peer", c)
	}
}

func TestPeerSymmetry(t *testing.T) {
	t.Parallel()
	for _, c := range allCells {
		for _, p := range Peers(c) {
			assert.Contains(t, Peers(p), c, "%s -> %s not symmetric", c, p)
		}
	}
}

func TestBoxOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cell Cell
		box  Box
	}{
		{Cell{0, 0}, Box{0, 0}},
		{Cell{2, 2}, Box{0, 0}},
		{Cell{3, 2}, Box{1, 0}},
		{Cell{4, 4}, Box{1, 1}},
		{Cell{8, 8}, Box{2, 2}},
		{Cell{5, 6}, Box{1, 2}},
	}
	for _, test := range tests {
		assert.Equal(t, test.box, BoxOf(test.cell), "box of %s", test.cell)
	}
}

func TestBoxCells(t *testing.T) {
	t.Parallel()
	cells := BoxCells(Box{1, 1})
	assert.Equal(t, []Cell{
		{3, 3}, {3, 4}, {3, 5},
		{4, 3}, {4, 4}, {4, 5},
		{5, 3}, {5, 4}, {5, 5},
	}, cells)
	for _, c := range cells {
		assert.Equal(t, Box{1, 1}, BoxOf(c))
	}
}
