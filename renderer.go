package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawable is anything occupying board cells that knows how to paint
// itself onto the board canvas. Implemented by Snake and Food.
type drawable interface {
	Draw(board *ebiten.Image)
}

// fillCell paints one grid cell in the given color with a one pixel
// border.
func fillCell(dst *ebiten.Image, c Cell, clr color.Color) {
	vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), GridSize, GridSize, clr, false)
	vector.StrokeRect(dst, float32(c.X), float32(c.Y), GridSize, GridSize, 1, borderColor, false)
}

// eraseCell paints one grid cell back to the background color.
func eraseCell(dst *ebiten.Image, c Cell) {
	vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), GridSize, GridSize, backgroundColor, false)
}

// Draw paints every snake segment and erases the cell vacated by the
// last move, if any.
func (s *Snake) Draw(board *ebiten.Image) {
	for _, c := range s.cells {
		fillCell(board, c, snakeColor)
	}
	if s.last != nil {
		eraseCell(board, *s.last)
	}
}

// Draw paints the food cell.
func (f *Food) Draw(board *ebiten.Image) {
	fillCell(board, f.pos, foodColor)
}
