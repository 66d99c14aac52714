package core

import "strconv"

// Point is an integer coordinate on the unbounded plane. Points are
// comparable and can be used directly as map keys.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Shift moves p diagonally by n on both axes.
func (p Point) Shift(n int) Point { return Point{X: p.X + n, Y: p.Y + n} }

// Neighbors returns the eight points adjacent to p.
func (p Point) Neighbors() [8]Point {
	var out [8]Point
	for i, off := range NeighborOffsets {
		out[i] = p.Add(off)
	}
	return out
}

// String formats the point as "x,y", the same form the input reader accepts.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// NeighborOffsets lists the Moore neighborhood, row by row.
var NeighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
