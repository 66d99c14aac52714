package life

import "infinite-life/pkg/core"

// InfiniteGrid is a sparse grid over the whole plane that only stores live
// cells.
type InfiniteGrid struct {
	cells map[core.Point]struct{}
}

// NewInfiniteGrid returns an empty grid.
func NewInfiniteGrid() *InfiniteGrid {
	return &InfiniteGrid{cells: make(map[core.Point]struct{})}
}

// FromPoints returns a grid where exactly the given points are alive.
func FromPoints(pts ...core.Point) *InfiniteGrid {
	g := &InfiniteGrid{cells: make(map[core.Point]struct{}, len(pts))}
	for _, p := range pts {
		g.cells[p] = struct{}{}
	}
	return g
}

// SetState marks p alive or dead. Repeated calls are no-ops.
func (g *InfiniteGrid) SetState(p core.Point, alive bool) {
	if alive {
		g.cells[p] = struct{}{}
		return
	}
	delete(g.cells, p)
}

// IsAlive reports whether p is alive.
func (g *InfiniteGrid) IsAlive(p core.Point) bool {
	_, ok := g.cells[p]
	return ok
}

// AlivePoints returns a copy of the live cells in no particular order.
func (g *InfiniteGrid) AlivePoints() []core.Point {
	out := make([]core.Point, 0, len(g.cells))
	for p := range g.cells {
		out = append(out, p)
	}
	return out
}

// Len returns the number of live cells.
func (g *InfiniteGrid) Len() int { return len(g.cells) }

// Contains is always true: every coordinate is addressable.
func (g *InfiniteGrid) Contains(core.Point) bool { return true }

// Empty returns a fresh InfiniteGrid.
func (g *InfiniteGrid) Empty() Grid { return NewInfiniteGrid() }

// Bounds returns the smallest rectangle holding every live cell. ok is false
// for an empty grid.
func (g *InfiniteGrid) Bounds() (r core.Rect, ok bool) {
	first := true
	var lo, hi core.Point
	for p := range g.cells {
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	if first {
		return core.Rect{}, false
	}
	return core.RectFrom2Points(lo, hi), true
}

// Render draws the cells inside r as a framed text block.
func (g *InfiniteGrid) Render(r core.Rect) string { return Render(g, r) }

func init() {
	RegisterGrid(KindInfinite, func(core.Rect) Grid { return NewInfiniteGrid() })
}
