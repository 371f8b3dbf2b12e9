//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tweakpanel/internal/app"
	_ "tweakpanel/internal/sections"
	_ "tweakpanel/internal/sims/scooter"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	session, err := app.Initialize(cfg, app.NewLogger(nil))
	if err != nil {
		log.Fatal(err)
	}
	defer session.Teardown()

	game := app.New(session, cfg.Scale)
	w, h := game.Size()

	ebiten.SetWindowTitle("tweakpanel — " + session.Sim().Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
