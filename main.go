package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/VectorPanic/rune-sdk-sub000/config"
	"github.com/VectorPanic/rune-sdk-sub000/scenes"
	"github.com/VectorPanic/rune-sdk-sub000/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("rune-sdk collision demo")

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()

	if err := ebiten.RunGame(&Game{scene: scenes.NewDemoScene(saved)}); err != nil {
		log.Fatal(err)
	}
}
