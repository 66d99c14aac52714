package core

import "fmt"

// Rect is an axis-aligned window with inclusive bounds. Min is the top-left
// corner; W and H are always at least 1.
type Rect struct {
	Min  Point
	W, H int
}

// NewRect builds a Rect, clamping the dimensions to at least one cell.
func NewRect(topLeft Point, w, h int) Rect {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Rect{Min: topLeft, W: w, H: h}
}

// RectFrom2Points returns the smallest Rect containing both corners.
func RectFrom2Points(a, b Point) Rect {
	lo := Point{X: min(a.X, b.X), Y: min(a.Y, b.Y)}
	hi := Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
	return Rect{Min: lo, W: hi.X - lo.X + 1, H: hi.Y - lo.Y + 1}
}

// Max returns the bottom-right corner (inclusive).
func (r Rect) Max() Point { return Point{X: r.Min.X + r.W - 1, Y: r.Min.Y + r.H - 1} }

// Area returns the number of cells covered.
func (r Rect) Area() int { return r.W * r.H }

// At maps rectangle-relative coordinates to absolute ones.
func (r Rect) At(rx, ry int) Point { return Point{X: r.Min.X + rx, Y: r.Min.Y + ry} }

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Min.X+r.W && p.Y >= r.Min.Y && p.Y < r.Min.Y+r.H
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect { return Rect{Min: r.Min.Add(d), W: r.W, H: r.H} }

func (r Rect) String() string {
	return fmt.Sprintf("%s %dx%d", r.Min, r.W, r.H)
}
