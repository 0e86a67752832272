package main

import "image/color"

// Board and grid sizing. The board is a fixed 640x480 canvas divided
// into 20x20 pixel cells, giving a 32x24 grid. Cell coordinates are
// pixel coordinates that are always a multiple of GridSize.
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	GridSize     = 20
	GridWidth    = ScreenWidth / GridSize
	GridHeight   = ScreenHeight / GridSize
)

// Snake movement speed in cells per second, adjustable in-game.
const (
	DefaultSpeed = 15
	MinSpeed     = 1
	MaxSpeed     = 31
)

// ebiten runs Update at a fixed 60 ticks per second
const tickRate = 60

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	borderColor     = color.RGBA{93, 216, 228, 255}
	snakeColor      = color.RGBA{0, 255, 0, 255}
	foodColor       = color.RGBA{255, 0, 0, 255}
)

// Cell is one grid-aligned square on the board, addressed by the pixel
// coordinates of its top-left corner. Both coordinates are multiples of
// GridSize and stay within [0, ScreenWidth) x [0, ScreenHeight).
type Cell struct {
	X, Y int
}

// Step returns the cell one grid square away in direction d, wrapping
// around the board edges (toroidal board).
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{
		X: wrap(c.X+dx*GridSize, ScreenWidth),
		Y: wrap(c.Y+dy*GridSize, ScreenHeight),
	}
}

// wrap maps v into [0, limit), treating negative values as coming in
// from the far edge.
func wrap(v, limit int) int {
	v %= limit
	if v < 0 {
		v += limit
	}
	return v
}

// centerCell returns the cell at the middle of the board.
func centerCell() Cell {
	return Cell{X: ScreenWidth / 2, Y: ScreenHeight / 2}
}

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit offset for moving one cell in this direction.
// Up decreases Y, down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the reverse of this direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}
