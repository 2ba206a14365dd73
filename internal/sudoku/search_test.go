package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayRestoresOnPop(t *testing.T) {
	t.Parallel()
	g := mustLoad(t, testGrid)
	o := newOverlay(g)

	c := g.Unplaced()[0]
	before := g.Candidates(c)
	v := before.Digits()[0]

	o.push()
	o.place(c, v)
	assert.Equal(t, v, o.value(c.index()))
	assert.Equal(t, DigitSet(0), o.candidates(c.index()))
	assert.Equal(t, before, g.Candidates(c), "base grid must stay untouched")

	o.pop()
	assert.Equal(t, Digit(0), o.value(c.index()))
	assert.Equal(t, before, o.candidates(c.index()))
	for _, p := range Peers(c) {
		assert.Equal(t, g.Candidates(p), o.candidates(p.index()))
	}
}

func TestSearchSolvesFortyGivenPuzzle(t *testing.T) {
	t.Parallel()
	lines, err := SolveBySearch(testGrid)
	require.NoError(t, err)
	assert.Equal(t, solvedTestGrid, lines)
}

func TestSearchSolvesHardPuzzle(t *testing.T) {
	t.Parallel()
	lines, err := SolveBySearch(hardTestGrid)
	require.NoError(t, err)
	requireValidSolution(t, lines, hardTestGrid)
}

func TestSearchFindsNoSolutionOnContradiction(t *testing.T) {
	t.Parallel()
	_, err := SolveBySearch(impossibleGrid)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestSearchOnSolvedGrid(t *testing.T) {
	t.Parallel()
	iter := mustLoad(t, solvedTestGrid).Solutions()

	sol, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, solvedTestGrid, sol.Format())

	_, ok = iter.Next()
	assert.False(t, ok)
}

func TestSearchEnumeratesAllCompletions(t *testing.T) {
	t.Parallel()

	// Blanking the deadly rectangle r1c3/r1c7/r3c3/r3c7 (a 4/9 swap)
	// from the solved grid leaves exactly two completions.
	ambiguous := []string{
		"53.178.26",
		"672943851",
		"18.652.73",
		"391724568",
		"768519342",
		"425386197",
		"947231685",
		"216895734",
		"853467219",
	}
	swapped := []string{
		"539178426",
		"672943851",
		"184652973",
		"391724568",
		"768519342",
		"425386197",
		"947231685",
		"216895734",
		"853467219",
	}

	iter := mustLoad(t, ambiguous).Solutions()

	first, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, solvedTestGrid, first.Format(), "ascending candidate order tries 4 first")

	second, ok := iter.Next()
	require.True(t, ok)
	assert.Equal(t, swapped, second.Format())

	_, ok = iter.Next()
	assert.False(t, ok, "the rectangle admits exactly two completions")
}

func TestSolveByDeductionPartialOutput(t *testing.T) {
	t.Parallel()
	lines, err := SolveByDeduction(hardTestGrid)
	require.NoError(t, err)
	require.Len(t, lines, 9)
	for r := 0; r < 9; r++ {
		require.Len(t, lines[r], 9)
		for c := 0; c < 9; c++ {
			if hardTestGrid[r][c] != ' ' {
				assert.Equal(t, hardTestGrid[r][c], lines[r][c], "clue at %s", Cell{r, c})
			}
		}
	}
}

func TestSolveByDeductionRejectsInconsistentGivens(t *testing.T) {
	t.Parallel()
	_, err := SolveByDeduction(impossibleGrid)
	var ce ContradictionError
	assert.ErrorAs(t, err, &ce)
}
