package main

import "math/rand"

// Snake is the player-controlled snake: an ordered list of occupied
// cells (head first), the direction it is moving in, and the length it
// is growing toward. Direction changes from input land in pending and
// take effect on the next tick, so at most one turn happens per cell
// moved.
type Snake struct {
	cells []Cell
	dir   Direction

	pending    Direction
	hasPending bool

	// the length the snake grows toward; one more per food eaten
	targetLen int

	// cell vacated by the most recent move, nil on a growth tick.
	// The renderer paints it back to the background color.
	last *Cell
}

// NewSnake returns a length-1 snake at the board center moving in a
// random direction.
func NewSnake(rng *rand.Rand) *Snake {
	s := &Snake{}
	s.Reset(rng)
	return s
}

// Head returns the cell occupied by the snake's head.
func (s *Snake) Head() Cell {
	return s.cells[0]
}

// Len returns the number of cells currently occupied.
func (s *Snake) Len() int {
	return len(s.cells)
}

// SetPending records a direction change to apply on the next tick.
// A change that would reverse straight into the neck is ignored.
func (s *Snake) SetPending(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pending = d
	s.hasPending = true
}

// UpdateDirection promotes the pending direction (if any) to the
// active one. Called once per tick, before Move.
func (s *Snake) UpdateDirection() {
	if s.hasPending {
		s.dir = s.pending
		s.hasPending = false
	}
}

// Move advances the snake one cell in its active direction, wrapping at
// the board edges. If the snake is longer than its target length the
// tail cell is removed and recorded in last; otherwise this is a growth
// tick and the tail stays put.
func (s *Snake) Move() {
	next := s.Head().Step(s.dir)
	s.cells = append([]Cell{next}, s.cells...)
	if len(s.cells) > s.targetLen {
		tail := s.cells[len(s.cells)-1]
		s.cells = s.cells[:len(s.cells)-1]
		s.last = &tail
	} else {
		s.last = nil
	}
}

// Grow raises the target length by one, so the next Move keeps the
// tail.
func (s *Snake) Grow() {
	s.targetLen++
}

// HitSelf reports whether the head occupies the same cell as any other
// body segment.
func (s *Snake) HitSelf() bool {
	head := s.Head()
	for _, c := range s.cells[1:] {
		if c == head {
			return true
		}
	}
	return false
}

// Occupies reports whether any segment of the snake sits on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, cell := range s.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// Cells returns the cells occupied by the snake, head first. The
// returned slice is the snake's own backing store and must not be
// modified.
func (s *Snake) Cells() []Cell {
	return s.cells
}

// Reset truncates the snake back to a single cell at the board center
// with a fresh random direction, clearing any pending turn and vacated
// tail.
func (s *Snake) Reset(rng *rand.Rand) {
	s.cells = []Cell{centerCell()}
	s.dir = Direction(rng.Intn(4))
	s.hasPending = false
	s.targetLen = 1
	s.last = nil
}
