package app

import (
	"fmt"

	icore "infinite-life/internal/core"
	"infinite-life/internal/diag"
	"infinite-life/internal/textio"
	"infinite-life/pkg/sims/life"
)

// Simulate runs the parsed input to the requested generation and returns the
// rendered output window.
func Simulate(cfg *Config, in textio.Input, dbg *diag.Debugger) (string, error) {
	rules, err := cfg.rules(in.Rules)
	if err != nil {
		return "", err
	}
	wanted := in.Wanted
	switch {
	case cfg.Generation < -1:
		return "", fmt.Errorf("-generation %d: %w", cfg.Generation, ErrBadGeneration)
	case cfg.Generation >= 0:
		wanted.Generation = cfg.Generation
	}

	grid, err := in.Grid(cfg.Grid)
	if err != nil {
		return "", err
	}

	dbg.Parameters(Describe(in, rules, wanted, cfg.Grid))
	dbg.Generation(0, grid, life.Stats{}, wanted.Output)

	sim := life.NewSimulator(grid, rules)
	var observe life.Observer
	if dbg.Enabled() {
		observe = func(gen int, g life.Grid) {
			dbg.Generation(gen, g, sim.LastStats(), wanted.Output)
		}
	}
	sim.Advance(wanted.Generation, observe)

	return life.RenderWith(sim.Grid(), wanted.Output, cfg.Glyphs()), nil
}

func (c *Config) rules(parsed life.Rules) (life.Rules, error) {
	if c.Rule == "" {
		return parsed, nil
	}
	r, err := life.ParseRuleString(c.Rule)
	if err != nil {
		return life.Rules{}, fmt.Errorf("-rule: %w", err)
	}
	return r, nil
}

// Describe summarizes a run for the debug dump and the HUD.
func Describe(in textio.Input, rules life.Rules, wanted life.WantedResult, kind string) icore.ParameterSnapshot {
	return icore.ParameterSnapshot{Groups: []icore.ParameterGroup{
		{
			Name: "Rules",
			Params: []icore.Parameter{
				icore.StringParam("rule", "Rule", rules.String()),
				icore.StringParam("grid", "Grid", kind),
			},
		},
		{
			Name: "Input",
			Params: []icore.Parameter{
				icore.StringParam("offset", "Offset", in.Offset.String()),
				icore.StringParam("size", "Size", fmt.Sprintf("%dx%d", in.Width, in.Height)),
				icore.IntParam("live", "Live cells", len(in.Cells)),
			},
		},
		{
			Name: "Query",
			Params: []icore.Parameter{
				icore.IntParam("generation", "Generation", wanted.Generation),
				icore.StringParam("output", "Output", wanted.Output.String()),
			},
		},
	}}
}
