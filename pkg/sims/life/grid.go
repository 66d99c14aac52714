package life

import (
	"errors"
	"fmt"
	"sort"

	"infinite-life/pkg/core"
)

// ErrUnsupportedGrid is returned by NewGrid for an unknown grid kind.
var ErrUnsupportedGrid = errors.New("unsupported grid kind")

// Names of the built-in grid representations.
const (
	KindInfinite = "infinite"
	KindFlat     = "flat"
)

// Grid is a boolean field over integer coordinates. Absent cells are dead.
type Grid interface {
	SetState(p core.Point, alive bool)
	IsAlive(p core.Point) bool
	// AlivePoints returns a snapshot that does not alias the grid.
	AlivePoints() []core.Point
	Len() int
	// Contains reports whether the representation can address p.
	Contains(p core.Point) bool
	// Empty returns a new, empty grid of the same representation and extent.
	Empty() Grid
	Render(r core.Rect) string
}

// GridFactory constructs an empty grid. Bounded representations use extent
// as their addressable area; unbounded ones ignore it.
type GridFactory func(extent core.Rect) Grid

var grids = map[string]GridFactory{}

// RegisterGrid adds a grid representation under the provided name.
func RegisterGrid(name string, f GridFactory) {
	if name == "" || f == nil {
		return
	}
	grids[name] = f
}

// GridKinds lists the registered representation names in sorted order.
func GridKinds() []string {
	kinds := make([]string, 0, len(grids))
	for k := range grids {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// NewGrid builds an empty grid of the named kind.
func NewGrid(kind string, extent core.Rect) (Grid, error) {
	f, ok := grids[kind]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnsupportedGrid, kind, GridKinds())
	}
	return f(extent), nil
}
