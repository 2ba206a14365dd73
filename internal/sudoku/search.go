package sudoku

import "github.com/gammazero/deque"

/*
 * Backtracking search. The engine never touches the base grid: every
 * trial assignment goes into a fresh overlay layer, and closing the
 * scope is a single pointer pop. Dead branches are not detected
 * eagerly; a stranded cell simply has no candidates left when the
 * traversal reaches it.
 */

// layer shadows part of the base grid. Lookups check the topmost layer
// first and fall through to the parent, ending at the grid itself.
type layer struct {
	parent     *layer
	candidates map[int]DigitSet
	placed     map[int]Digit
}

type overlay struct {
	base *Grid
	top  *layer
}

func newOverlay(g *Grid) *overlay {
	return &overlay{base: g}
}

func (o *overlay) push() {
	o.top = &layer{
		parent:     o.top,
		candidates: make(map[int]DigitSet),
		placed:     make(map[int]Digit),
	}
}

// pop discards the topmost layer, restoring the exact prior view.
func (o *overlay) pop() {
	o.top = o.top.parent
}

func (o *overlay) candidates(i int) DigitSet {
	for l := o.top; l != nil; l = l.parent {
		if s, ok := l.candidates[i]; ok {
			return s
		}
	}
	return o.base.candidates[i]
}

func (o *overlay) value(i int) Digit {
	for l := o.top; l != nil; l = l.parent {
		if v, ok := l.placed[i]; ok {
			return v
		}
	}
	return o.base.placed[i]
}

// place fixes v at c within the topmost layer, propagating the same
// peer exclusions as [Grid.Place] but without contradiction checks:
// an emptied peer kills the branch when the traversal reaches it.
func (o *overlay) place(c Cell, v Digit) {
	i := c.index()
	o.top.placed[i] = v
	o.top.candidates[i] = 0
	for _, p := range Peers(c) {
		pi := p.index()
		if s := o.candidates(pi); s.Has(v) {
			o.top.candidates[pi] = s.Without(v)
		}
	}
}

// snapshot flattens the layered view into an independent grid.
func (o *overlay) snapshot() *Grid {
	g := &Grid{}
	for i := range g.candidates {
		g.candidates[i] = o.candidates(i)
		g.placed[i] = o.value(i)
	}
	return g
}

// searchFrame tracks one cell of the traversal: the candidates taken
// when the frame was opened and which of them have been tried.
type searchFrame struct {
	cell    Cell
	values  []Digit
	next    int
	applied bool
}

// Solutions is a lazy, resumable enumeration of every consistent
// completion of a grid. Each Next call resumes the depth-first
// traversal where the previous one stopped.
type Solutions struct {
	view    *overlay
	order   []Cell
	stack   deque.Deque[*searchFrame]
	started bool
}

// Solutions starts a depth-first enumeration over the unplaced cells
// in row-major order. The iterator reads the grid through an overlay;
// the grid must not be mutated while iterating.
func (g *Grid) Solutions() *Solutions {
	return &Solutions{
		view:  newOverlay(g),
		order: g.Unplaced(),
	}
}

func (s *Solutions) frameFor(depth int) *searchFrame {
	c := s.order[depth]
	return &searchFrame{
		cell:   c,
		values: s.view.candidates(c.index()).Digits(),
	}
}

// Next returns the next solved grid, or false when the branch space is
// exhausted. Candidates are tried in ascending order, so repeated runs
// enumerate solutions in the same order.
func (s *Solutions) Next() (*Grid, bool) {
	if !s.started {
		s.started = true
		if len(s.order) == 0 {
			// Nothing left to fill, the grid itself is the solution.
			return s.view.snapshot(), true
		}
		s.stack.PushBack(s.frameFor(0))
	}
	for s.stack.Len() > 0 {
		f := s.stack.Back()
		if f.applied {
			s.view.pop()
			f.applied = false
		}
		if f.next >= len(f.values) {
			s.stack.PopBack()
			continue
		}
		v := f.values[f.next]
		f.next++
		s.view.push()
		s.view.place(f.cell, v)
		f.applied = true
		if s.stack.Len() == len(s.order) {
			return s.view.snapshot(), true
		}
		s.stack.PushBack(s.frameFor(s.stack.Len()))
	}
	return nil, false
}
