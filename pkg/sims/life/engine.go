package life

import "infinite-life/pkg/core"

// Stats describes one transition.
type Stats struct {
	Live       int // live cells before the transition
	Candidates int // cells evaluated, at most 9*Live
	Born       int
	Survived   int
	Died       int
}

// Population returns the live cell count after the transition.
func (s Stats) Population() int { return s.Born + s.Survived }

// ApplyRules computes the next generation of g. g is left untouched.
func ApplyRules(g Grid, rules Rules) Grid {
	next, _ := Transition(g, rules)
	return next
}

// Transition is ApplyRules that also reports what happened.
//
// Only live cells and their neighbors are evaluated. Dead cells with no live
// neighbor are never visited, so a birth count of 0 cannot fill the plane.
func Transition(g Grid, rules Rules) (Grid, Stats) {
	live := g.AlivePoints()
	stats := Stats{Live: len(live)}

	candidates := make(map[core.Point]struct{}, len(live)*9)
	for _, p := range live {
		candidates[p] = struct{}{}
		for _, off := range core.NeighborOffsets {
			candidates[p.Add(off)] = struct{}{}
		}
	}

	next := g.Empty()
	for p := range candidates {
		if !g.Contains(p) {
			continue
		}
		stats.Candidates++

		alive := g.IsAlive(p)
		if rules.Next(alive, LiveNeighbors(g, p)) {
			next.SetState(p, true)
			if alive {
				stats.Survived++
			} else {
				stats.Born++
			}
		} else if alive {
			stats.Died++
		}
	}
	return next, stats
}

// LiveNeighbors counts the live cells around p.
func LiveNeighbors(g CellReader, p core.Point) int {
	n := 0
	for _, off := range core.NeighborOffsets {
		if g.IsAlive(p.Add(off)) {
			n++
		}
	}
	return n
}
