package main

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game ties the snake, the food and the board canvas together and
// implements ebiten.Game. ebiten calls Update 60 times per second; the
// snake advances on a subset of those ticks according to the current
// speed setting.
type Game struct {
	snake *Snake
	food  *Food
	rng   *rand.Rand

	// render order: food first so the head overdraws an eaten cell
	entities []drawable

	// persistent board canvas, created lazily on the first Draw so
	// game logic stays runnable without a graphics context
	board *ebiten.Image

	// snake moves per second, clamped to [MinSpeed, MaxSpeed]
	speed int

	// frames since the snake last moved
	frame int

	// food eaten since the last reset
	score int

	// repaint the whole board on the next Draw (set after a reset)
	clearBoard bool
}

// NewGame creates a game with a fresh snake at the board center and
// food placed off the snake.
func NewGame(rng *rand.Rand) *Game {
	g := &Game{
		snake: NewSnake(rng),
		food:  &Food{},
		rng:   rng,
		speed: DefaultSpeed,
	}
	g.food.Relocate(rng, g.snake.Cells())
	g.entities = []drawable{g.food, g.snake}
	return g
}

// Update handles input once per frame and advances the snake once per
// tick interval. ebiten calls this at tickRate frames per second.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.snake.SetPending(DirUp)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.snake.SetPending(DirDown)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.snake.SetPending(DirLeft)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.snake.SetPending(DirRight)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.adjustSpeed(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.adjustSpeed(-1)
	}

	g.frame++
	if g.frame >= g.ticksPerMove() {
		g.frame = 0
		g.step()
	}

	return nil
}

// step runs one movement tick: apply the pending turn, advance the
// snake, then handle eating or self-collision. Biting its own body
// resets the snake rather than ending the game.
func (g *Game) step() {
	g.snake.UpdateDirection()
	g.snake.Move()

	switch {
	case g.snake.Head() == g.food.Pos():
		g.snake.Grow()
		g.score++
		if !g.food.Relocate(g.rng, g.snake.Cells()) {
			// board fully occupied: the snake won, start over
			g.reset()
		}
	case g.snake.HitSelf():
		g.reset()
	}
}

// reset starts a new life: fresh snake, fresh food, zero score, full
// board repaint.
func (g *Game) reset() {
	g.snake.Reset(g.rng)
	g.food.Relocate(g.rng, g.snake.Cells())
	g.score = 0
	g.clearBoard = true
}

// adjustSpeed changes the movement speed by delta, clamped to
// [MinSpeed, MaxSpeed].
func (g *Game) adjustSpeed(delta int) {
	g.speed += delta
	if g.speed < MinSpeed {
		g.speed = MinSpeed
	}
	if g.speed > MaxSpeed {
		g.speed = MaxSpeed
	}
}

// ticksPerMove returns how many update frames pass between snake
// movements at the current speed.
func (g *Game) ticksPerMove() int {
	n := tickRate / g.speed
	if n < 1 {
		n = 1
	}
	return n
}

// Draw paints the current state onto the persistent board canvas and
// blits it to the screen. Only changed cells are repainted between
// resets; the cell vacated by the snake's tail is erased by the snake
// itself.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.board == nil {
		g.board = ebiten.NewImage(ScreenWidth, ScreenHeight)
		g.board.Fill(backgroundColor)
	}
	if g.clearBoard {
		g.board.Fill(backgroundColor)
		g.clearBoard = false
	}

	for _, e := range g.entities {
		e.Draw(g.board)
	}

	screen.DrawImage(g.board, nil)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Speed: %d", g.score, g.speed), 4, 4)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
