package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := NewGame(rng)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Snake")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
