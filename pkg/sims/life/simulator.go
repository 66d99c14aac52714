package life

import "infinite-life/pkg/core"

// WantedResult names the generation to compute and the window to render.
type WantedResult struct {
	Generation int
	Output     core.Rect
}

// Observer is called with each generation a Simulator produces.
type Observer func(gen int, g Grid)

// Simulator advances a grid one generation at a time.
type Simulator struct {
	initial Grid
	grid    Grid
	rules   Rules
	gen     int
	last    Stats
}

// NewSimulator starts at generation 0 with initial. initial is never mutated.
func NewSimulator(initial Grid, rules Rules) *Simulator {
	return &Simulator{initial: initial, grid: initial, rules: rules}
}

// Name returns the simulation identifier.
func (s *Simulator) Name() string { return "life " + s.rules.String() }

// Generation returns the number of transitions applied so far.
func (s *Simulator) Generation() int { return s.gen }

// Grid returns the current generation.
func (s *Simulator) Grid() Grid { return s.grid }

// Rules returns the rule set in use.
func (s *Simulator) Rules() Rules { return s.rules }

// Population returns the number of live cells.
func (s *Simulator) Population() int { return s.grid.Len() }

// Alive reports whether p is alive in the current generation.
func (s *Simulator) Alive(p core.Point) bool { return s.grid.IsAlive(p) }

// LastStats describes the most recent transition.
func (s *Simulator) LastStats() Stats { return s.last }

// Step advances the simulation by one generation.
func (s *Simulator) Step() {
	s.grid, s.last = Transition(s.grid, s.rules)
	s.gen++
}

// Reset rewinds to generation 0.
func (s *Simulator) Reset() {
	s.grid = s.initial
	s.gen = 0
	s.last = Stats{}
}

// Advance applies n transitions, calling observe (if non-nil) after each.
func (s *Simulator) Advance(n int, observe Observer) {
	for i := 0; i < n; i++ {
		s.Step()
		if observe != nil {
			observe(s.gen, s.grid)
		}
	}
}

// Run returns the grid after exactly generations transitions of initial.
// observe, if non-nil, sees generation 0 (initial itself) and every later one
// in order.
func Run(initial Grid, rules Rules, generations int, observe Observer) Grid {
	sim := NewSimulator(initial, rules)
	if observe != nil {
		observe(0, initial)
	}
	sim.Advance(generations, observe)
	return sim.Grid()
}
