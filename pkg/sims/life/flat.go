package life

import (
	"errors"
	"fmt"

	"infinite-life/pkg/core"
)

// ErrOutOfBounds is returned when a FlatGrid is addressed outside its extent.
var ErrOutOfBounds = errors.New("cell out of bounds")

// FlatGrid is a fixed-size grid backed by a dense byte array. Its top-left
// cell sits at bounds.Min so it can mirror any window of the plane.
type FlatGrid struct {
	bounds core.Rect
	cells  *core.ByteGrid
}

// NewFlatGrid allocates an all-dead grid covering bounds.
func NewFlatGrid(bounds core.Rect) *FlatGrid {
	bounds = core.NewRect(bounds.Min, bounds.W, bounds.H)
	return &FlatGrid{bounds: bounds, cells: core.NewByteGrid(bounds.W, bounds.H)}
}

// Bounds returns the addressable area.
func (g *FlatGrid) Bounds() core.Rect { return g.bounds }

func (g *FlatGrid) local(p core.Point) (int, int, bool) {
	x, y := p.X-g.bounds.Min.X, p.Y-g.bounds.Min.Y
	return x, y, g.cells.InBounds(x, y)
}

// Cell returns the state at p, or ErrOutOfBounds outside the extent.
func (g *FlatGrid) Cell(p core.Point) (bool, error) {
	x, y, ok := g.local(p)
	if !ok {
		return false, fmt.Errorf("get %v: %w (grid %v)", p, ErrOutOfBounds, g.bounds)
	}
	return g.cells.At(x, y) != 0, nil
}

// Set stores the state at p, or returns ErrOutOfBounds outside the extent.
func (g *FlatGrid) Set(p core.Point, alive bool) error {
	x, y, ok := g.local(p)
	if !ok {
		return fmt.Errorf("set %v: %w (grid %v)", p, ErrOutOfBounds, g.bounds)
	}
	var v uint8
	if alive {
		v = 1
	}
	g.cells.Set(x, y, v)
	return nil
}

// SetState is Set with out-of-extent writes dropped.
func (g *FlatGrid) SetState(p core.Point, alive bool) { _ = g.Set(p, alive) }

// IsAlive treats everything outside the extent as dead.
func (g *FlatGrid) IsAlive(p core.Point) bool {
	alive, err := g.Cell(p)
	return err == nil && alive
}

// AlivePoints lists live cells in row-major order.
func (g *FlatGrid) AlivePoints() []core.Point {
	var out []core.Point
	for y := 0; y < g.cells.H; y++ {
		for x := 0; x < g.cells.W; x++ {
			if g.cells.At(x, y) != 0 {
				out = append(out, g.bounds.At(x, y))
			}
		}
	}
	return out
}

// Len returns the number of live cells.
func (g *FlatGrid) Len() int { return g.cells.Count() }

// Contains reports whether p is inside the extent.
func (g *FlatGrid) Contains(p core.Point) bool { return g.bounds.Contains(p) }

// Empty returns a dead grid with the same extent.
func (g *FlatGrid) Empty() Grid { return NewFlatGrid(g.bounds) }

// Render draws the cells inside r as a framed text block.
func (g *FlatGrid) Render(r core.Rect) string { return Render(g, r) }

func init() {
	RegisterGrid(KindFlat, func(extent core.Rect) Grid { return NewFlatGrid(extent) })
}
