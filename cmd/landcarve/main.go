//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"landcarve/internal/app"
	"landcarve/internal/land"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.LoadFile(flag.CommandLine); err != nil {
		log.Fatalf("config file: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("landcarve")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(land.ScreenWidth*cfg.Scale, land.ScreenHeight*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
