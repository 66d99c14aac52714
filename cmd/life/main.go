package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"infinite-life/internal/app"
	"infinite-life/internal/diag"
	"infinite-life/internal/textio"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	cfg.FromEnv(os.LookupEnv)
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	in, err := readInput(cfg.Input)
	if err != nil {
		log.Fatal(err)
	}

	out, err := app.Simulate(cfg, in, diag.New(os.Stderr, cfg.Debug))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}

func readInput(path string) (textio.Input, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return textio.Input{}, err
		}
		defer f.Close()
		r = f
	}
	in, err := textio.Parse(r)
	if err != nil {
		return textio.Input{}, fmt.Errorf("reading input: %w", err)
	}
	return in, nil
}
