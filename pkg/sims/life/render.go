package life

import (
	"strings"

	"infinite-life/pkg/core"
)

// CellReader is the read side of a Grid.
type CellReader interface {
	IsAlive(p core.Point) bool
}

// Glyphs selects the characters used for live and dead cells.
type Glyphs struct {
	Alive rune
	Dead  rune
}

// DefaultGlyphs matches the input format: 'x' for live, space for dead.
var DefaultGlyphs = Glyphs{Alive: 'x', Dead: ' '}

// Render draws the cells inside r with DefaultGlyphs.
func Render(g CellReader, r core.Rect) string { return RenderWith(g, r, DefaultGlyphs) }

// RenderWith draws the cells inside r framed by '+', '-' and '|':
//
//	+---+
//	| x |
//	+---+
//
// Lines are separated by '\n' without a trailing newline.
func RenderWith(g CellReader, r core.Rect, glyphs Glyphs) string {
	border := "+" + strings.Repeat("-", r.W) + "+"

	var b strings.Builder
	b.Grow((r.W + 3) * (r.H + 2))
	b.WriteString(border)
	for ry := 0; ry < r.H; ry++ {
		b.WriteString("\n|")
		for rx := 0; rx < r.W; rx++ {
			if g.IsAlive(r.At(rx, ry)) {
				b.WriteRune(glyphs.Alive)
			} else {
				b.WriteRune(glyphs.Dead)
			}
		}
		b.WriteByte('|')
	}
	b.WriteString("\n")
	b.WriteString(border)
	return b.String()
}
