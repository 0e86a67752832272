package main

import (
	"math/rand"
	"testing"
)

func newTestSnake(dir Direction) *Snake {
	s := NewSnake(rand.New(rand.NewSource(1)))
	s.dir = dir
	return s
}

func TestMoveAdvancesHeadOneCell(t *testing.T) {
	s := newTestSnake(DirRight)
	head := s.Head()
	s.Move()
	if got, want := s.Head(), head.Step(DirRight); got != want {
		t.Errorf("head after move = %v, want %v", got, want)
	}
}

func TestMoveShrinkTickRecordsVacatedTail(t *testing.T) {
	s := newTestSnake(DirRight)
	tail := s.Head()
	s.Move()
	if s.Len() != 1 {
		t.Errorf("length after move at target length = %d, want 1", s.Len())
	}
	if s.last == nil || *s.last != tail {
		t.Errorf("vacated tail = %v, want %v", s.last, tail)
	}
}

func TestMoveGrowthTickKeepsTail(t *testing.T) {
	s := newTestSnake(DirRight)
	s.Grow()
	tail := s.Head()
	s.Move()
	if s.Len() != 2 {
		t.Errorf("length after growth tick = %d, want 2", s.Len())
	}
	if s.last != nil {
		t.Errorf("growth tick vacated %v, want none", *s.last)
	}
	if !s.Occupies(tail) {
		t.Errorf("tail cell %v lost on growth tick", tail)
	}
}

func TestSetPendingRejectsReversal(t *testing.T) {
	tests := []struct {
		current, press Direction
		accepted       bool
	}{
		{DirRight, DirLeft, false},
		{DirLeft, DirRight, false},
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirRight, DirUp, true},
		{DirRight, DirDown, true},
		{DirRight, DirRight, true},
	}
	for _, tt := range tests {
		s := newTestSnake(tt.current)
		s.SetPending(tt.press)
		if s.hasPending != tt.accepted {
			t.Errorf("current %v press %v: pending accepted = %v, want %v",
				tt.current, tt.press, s.hasPending, tt.accepted)
		}
	}
}

func TestUpdateDirectionPromotesPendingOnce(t *testing.T) {
	s := newTestSnake(DirRight)
	s.SetPending(DirUp)
	s.UpdateDirection()
	if s.dir != DirUp {
		t.Errorf("direction after update = %v, want %v", s.dir, DirUp)
	}
	if s.hasPending {
		t.Error("pending direction not cleared after update")
	}

	// no pending: direction is untouched
	s.UpdateDirection()
	if s.dir != DirUp {
		t.Errorf("direction changed without pending: %v", s.dir)
	}
}

func TestPendingRejectionChecksActiveDirection(t *testing.T) {
	// moving right, turn up; left is no longer a reversal once up is
	// active, but until UpdateDirection runs, it still is
	s := newTestSnake(DirRight)
	s.SetPending(DirUp)
	s.SetPending(DirLeft)
	if !s.hasPending || s.pending != DirUp {
		t.Errorf("pending = %v (has %v), want %v", s.pending, s.hasPending, DirUp)
	}

	s.UpdateDirection()
	s.SetPending(DirLeft)
	if !s.hasPending || s.pending != DirLeft {
		t.Errorf("pending after turning up = %v (has %v), want %v", s.pending, s.hasPending, DirLeft)
	}
}

func TestHitSelf(t *testing.T) {
	s := newTestSnake(DirRight)
	if s.HitSelf() {
		t.Error("length-1 snake reported self collision")
	}

	// a closed loop: the head has come back around onto its own tail
	s.cells = []Cell{
		{100, 100}, {120, 100}, {120, 120}, {100, 120}, {100, 100},
	}
	if !s.HitSelf() {
		t.Error("head on body cell not reported as self collision")
	}

	// same cells minus the overlap
	s.cells = s.cells[:4]
	if s.HitSelf() {
		t.Error("non-overlapping snake reported self collision")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSnake(rng)
	for i := 0; i < 10; i++ {
		s.Grow()
		s.Move()
	}
	s.SetPending(s.dir) // any non-reversal press

	s.Reset(rng)
	if s.Len() != 1 {
		t.Errorf("length after reset = %d, want 1", s.Len())
	}
	if s.Head() != centerCell() {
		t.Errorf("head after reset = %v, want %v", s.Head(), centerCell())
	}
	if s.targetLen != 1 {
		t.Errorf("target length after reset = %d, want 1", s.targetLen)
	}
	if s.hasPending {
		t.Error("pending direction survived reset")
	}
	if s.last != nil {
		t.Errorf("vacated tail %v survived reset", *s.last)
	}
	if s.dir > DirRight {
		t.Errorf("invalid direction after reset: %d", s.dir)
	}
}

func TestResetDirectionCoversAllFour(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[Direction]bool)
	s := NewSnake(rng)
	for i := 0; i < 200; i++ {
		s.Reset(rng)
		seen[s.dir] = true
	}
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if !seen[d] {
			t.Errorf("direction %v never chosen across 200 resets", d)
		}
	}
}
