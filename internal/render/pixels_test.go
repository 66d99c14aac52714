package render

import (
	"image/color"
	"slices"
	"testing"

	"infinite-life/pkg/core"
	"infinite-life/pkg/sims/life"
)

type gridReader struct{ g life.Grid }

func (r gridReader) Alive(p core.Point) bool { return r.g.IsAlive(p) }

func TestSampleWindow(t *testing.T) {
	g := life.FromPoints(core.Pt(-1, 0), core.Pt(0, 1), core.Pt(5, 5))
	view := core.NewRect(core.Pt(-1, 0), 2, 2)

	cells := SampleWindow(nil, gridReader{g}, view)
	if !slices.Equal(cells, []uint8{1, 0, 0, 1}) {
		t.Fatalf("cells = %v", cells)
	}

	reused := SampleWindow(cells, gridReader{life.NewInfiniteGrid()}, view)
	if &reused[0] != &cells[0] || !slices.Equal(reused, []uint8{0, 0, 0, 0}) {
		t.Fatalf("buffer not reused or not cleared: %v", reused)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := []byte{255, 255, 255, 255, 10, 20, 30, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}
