package app

import (
	"fmt"
	"os"

	icore "infinite-life/internal/core"
	"infinite-life/internal/textio"
	"infinite-life/pkg/core"
	"infinite-life/pkg/sims/life"
)

// Session is a simulation prepared for an interactive viewer.
type Session struct {
	*life.Simulator

	// View is the initial viewport.
	View   core.Rect
	params icore.ParameterSnapshot
}

// NewSession loads cfg.Input, or seeds a random soup filling the viewport
// when no input is given.
func NewSession(cfg *Config) (*Session, error) {
	if cfg.Input == "" {
		return newSoupSession(cfg)
	}

	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in, err := textio.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	return SessionFromInput(cfg, in)
}

// SessionFromInput builds a Session from parsed input.
func SessionFromInput(cfg *Config, in textio.Input) (*Session, error) {
	rules, err := cfg.rules(in.Rules)
	if err != nil {
		return nil, err
	}
	grid, err := in.Grid(cfg.Grid)
	if err != nil {
		return nil, err
	}
	return &Session{
		Simulator: life.NewSimulator(grid, rules),
		View:      focus(in.Wanted.Output, grid),
		params:    Describe(in, rules, in.Wanted, cfg.Grid),
	}, nil
}

// focus keeps view when it shows a live cell. Otherwise an infinite grid's
// view is moved, at the same size, to the centre of its live cells.
func focus(view core.Rect, g life.Grid) core.Rect {
	inf, ok := g.(*life.InfiniteGrid)
	if !ok {
		return view
	}
	for _, p := range inf.AlivePoints() {
		if view.Contains(p) {
			return view
		}
	}
	b, ok := inf.Bounds()
	if !ok {
		return view
	}
	centre := core.Pt(b.Min.X+b.W/2-view.W/2, b.Min.Y+b.H/2-view.H/2)
	return view.Translate(core.Pt(centre.X-view.Min.X, centre.Y-view.Min.Y))
}

func newSoupSession(cfg *Config) (*Session, error) {
	rules, err := cfg.rules(life.Conway())
	if err != nil {
		return nil, err
	}
	view := core.NewRect(core.Pt(-cfg.Width/2, -cfg.Height/2), cfg.Width, cfg.Height)
	grid, err := life.Soup(core.NewRNG(cfg.Seed), view, cfg.Density, cfg.Grid)
	if err != nil {
		return nil, err
	}
	return &Session{
		Simulator: life.NewSimulator(grid, rules),
		View:      view,
		params: icore.ParameterSnapshot{Groups: []icore.ParameterGroup{
			{
				Name: "Rules",
				Params: []icore.Parameter{
					icore.StringParam("rule", "Rule", rules.String()),
					icore.StringParam("grid", "Grid", cfg.Grid),
				},
			},
			{
				Name: "Soup",
				Params: []icore.Parameter{
					icore.StringParam("seed", "Seed", fmt.Sprint(cfg.Seed)),
					icore.StringParam("density", "Density", fmt.Sprint(cfg.Density)),
					icore.StringParam("area", "Area", view.String()),
				},
			},
		}},
	}, nil
}

// Parameters describes how the session was set up.
func (s *Session) Parameters() icore.ParameterSnapshot { return s.params }

var (
	_ icore.Sim               = (*Session)(nil)
	_ icore.ParameterProvider = (*Session)(nil)
)
