package main

import "math/rand"

// Food is a single cell the snake eats to grow. It is relocated to a
// random free cell whenever the snake's head lands on it.
type Food struct {
	pos Cell
}

// Pos returns the cell the food currently occupies.
func (f *Food) Pos() Cell {
	return f.pos
}

// Relocate moves the food to a cell drawn uniformly from all cells not
// in occupied. Sampling from the precomputed free set rather than
// redrawing until an empty cell turns up keeps relocation bounded even
// on a nearly full board. Returns false, leaving the food where it is,
// if no free cell exists.
func (f *Food) Relocate(rng *rand.Rand, occupied []Cell) bool {
	taken := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	free := make([]Cell, 0, GridWidth*GridHeight-len(taken))
	for y := 0; y < ScreenHeight; y += GridSize {
		for x := 0; x < ScreenWidth; x += GridSize {
			c := Cell{X: x, Y: y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return false
	}
	f.pos = free[rng.Intn(len(free))]
	return true
}
