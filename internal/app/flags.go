package app

import (
	"errors"
	"flag"
	"strings"

	"infinite-life/pkg/sims/life"
)

// DebugEnv is the environment toggle for the diagnostic channel.
const DebugEnv = "LIFE_DEBUG"

// GridEnv overrides the default grid representation.
const GridEnv = "LIFE_GRID"

// ErrBadGeneration rejects a -generation override below -1.
var ErrBadGeneration = errors.New("generation must be -1 or non-negative")

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Input      string
	Grid       string
	Rule       string
	Generation int
	Alive      string
	Debug      bool

	Scale   int
	TPS     int
	Seed    int64
	Density float64
	Width   int
	Height  int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Grid:       life.KindInfinite,
		Generation: -1,
		Alive:      "x",
		Scale:      4,
		TPS:        10,
		Seed:       42,
		Density:    0.3,
		Width:      160,
		Height:     100,
	}
}

// Bind attaches the run options to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "in", c.Input, "input file (default stdin)")
	fs.StringVar(&c.Grid, "grid", c.Grid, "grid representation: "+strings.Join(life.GridKinds(), ", "))
	fs.StringVar(&c.Rule, "rule", c.Rule, "override the input rules, e.g. B3/S23")
	fs.IntVar(&c.Generation, "generation", c.Generation, "override the requested generation (-1 keeps the input value)")
	fs.StringVar(&c.Alive, "alive", c.Alive, "character drawn for live cells")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write diagnostics to stderr (also "+DebugEnv+")")
}

// BindViewer attaches the interactive viewer options to the provided FlagSet.
func (c *Config) BindViewer(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup used without -in")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability of the random soup")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width in cells without -in")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height in cells without -in")
}

// FromEnv applies environment overrides. Unparseable values are ignored.
func (c *Config) FromEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		return
	}
	if v, ok := lookup(DebugEnv); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "yes", "on":
			c.Debug = true
		case "0", "f", "false", "no", "off":
			c.Debug = false
		}
	}
	if v, ok := lookup(GridEnv); ok && strings.TrimSpace(v) != "" {
		c.Grid = strings.TrimSpace(v)
	}
}

// Glyphs returns the render characters selected by Alive.
func (c *Config) Glyphs() life.Glyphs {
	g := life.DefaultGlyphs
	if r := []rune(c.Alive); len(r) > 0 {
		g.Alive = r[0]
	}
	return g
}
