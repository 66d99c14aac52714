package life

import "infinite-life/pkg/core"

// Soup returns a grid of the given kind with cells inside area set alive at
// random with probability density.
func Soup(rng *core.RNG, area core.Rect, density float64, kind string) (Grid, error) {
	g, err := NewGrid(kind, area)
	if err != nil {
		return nil, err
	}
	for ry := 0; ry < area.H; ry++ {
		for rx := 0; rx < area.W; rx++ {
			if rng.Chance(density) {
				g.SetState(area.At(rx, ry), true)
			}
		}
	}
	return g, nil
}
