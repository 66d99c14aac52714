//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"infinite-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-view: ")

	cfg := app.NewConfig()
	cfg.FromEnv(os.LookupEnv)
	cfg.Bind(flag.CommandLine)
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, session.View, cfg.Scale, cfg.TPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("infinite-life: " + session.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
