package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduceSolvesFortyGivenPuzzle(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, testGrid)

	res, err := g.Deduce()
	require.NoError(t, err)

	// every deduced placement must agree with the published solution
	for _, c := range allCells {
		if v := g.Value(c); v != 0 {
			assert.Equal(t, Digit(solvedTestGrid[c.Row][c.Col]-'0'), v,
				"deduced %s at %s", v, c)
		}
	}

	// finishing any unresolved cells by search reproduces it exactly
	sol, ok := g.Solutions().Next()
	require.True(t, ok)
	assert.Equal(t, solvedTestGrid, sol.Format())
	assert.Equal(t, Solved, res, "forty givens resolve by deduction alone")
}

func TestDeduceIsSoundOnHardPuzzle(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, hardTestGrid)

	_, err := g.Deduce()
	require.NoError(t, err)

	// a sound deduction holds in every completion, so the first
	// solution of the untouched puzzle must agree with all of them
	sol, ok := mustLoad(t, hardTestGrid).Solutions().Next()
	require.True(t, ok)
	for _, c := range allCells {
		if v := g.Value(c); v != 0 {
			assert.Equal(t, sol.Value(c), v, "unsound deduction at %s", c)
		}
	}
}

func TestDeduceIdempotentWhenStuck(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, hardTestGrid)

	_, err := g.Deduce()
	require.NoError(t, err)

	_, _, ok := nextAction(g)
	assert.False(t, ok, "strategies oscillate after reaching a fixed point")
}

func TestDeduceResultString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "stalled", Stalled.String())
	assert.Equal(t, "solved", Solved.String())
}

func TestActionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "place 5 at r1c2", Action{ActionPlace, Cell{0, 1}, 5}.String())
	assert.Equal(t, "remove 7 at r9c9", Action{ActionRemove, Cell{8, 8}, 7}.String())
}
