package main

import (
	"flag"
	"log"
	"os"

	"infinite-life/internal/app"
	"infinite-life/internal/tui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life-tui: ")

	cfg := app.NewConfig()
	cfg.FromEnv(os.LookupEnv)
	cfg.Bind(flag.CommandLine)
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	session, err := app.NewSession(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	err = tui.Run(screen, tui.New(session, session.View.Min, cfg.TPS))
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
