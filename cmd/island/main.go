//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"islandgen/internal/app"
	_ "islandgen/internal/island"
	_ "islandgen/internal/preview"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	view, err := cfg.Build()
	if err != nil {
		log.Fatalf("build view: %v", err)
	}
	if err := view.Reset(cfg.Seed); err != nil {
		log.Fatalf("generate %s: %v", view.Name(), err)
	}

	game := app.New(view, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	size := view.Size()

	ebiten.SetWindowTitle("islandgen - " + view.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
