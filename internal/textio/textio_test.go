package textio

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"infinite-life/pkg/core"
	"infinite-life/pkg/sims/life"
)

const blinkerInput = `2,3
3
-1,-1
5x3
+-----+
|     |
| xxx |
|     |
+-----+
1
3,1
-1,-1
`

func TestParseBlinker(t *testing.T) {
	in, err := Parse(strings.NewReader(blinkerInput))
	if err != nil {
		t.Fatal(err)
	}
	if !in.Rules.Equal(life.Conway()) {
		t.Fatalf("rules = %v", in.Rules)
	}
	if in.Offset != core.Pt(-1, -1) || in.Width != 5 || in.Height != 3 {
		t.Fatalf("offset %v size %dx%d", in.Offset, in.Width, in.Height)
	}
	if !slices.Equal(in.Cells, []core.Point{{0, 0}, {1, 0}, {2, 0}}) {
		t.Fatalf("cells = %v", in.Cells)
	}
	want := life.WantedResult{Generation: 1, Output: core.NewRect(core.Pt(-1, -1), 5, 3)}
	if in.Wanted != want {
		t.Fatalf("wanted = %+v, expected %+v", in.Wanted, want)
	}
}

func TestParseToleratesWhitespaceAndCRLF(t *testing.T) {
	src := strings.ReplaceAll(blinkerInput, "\n", "\r\n")
	src = strings.Replace(src, "2,3", " 2, 3 ", 1)
	src = strings.Replace(src, "3,1", "3 1", 1)
	in, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if !in.Rules.Equal(life.Conway()) || len(in.Cells) != 3 {
		t.Fatalf("parsed %v with %d cells", in.Rules, len(in.Cells))
	}
}

func TestParseEmptyRuleLists(t *testing.T) {
	src := strings.Replace(blinkerInput, "2,3\n3\n", "\n\n", 1)
	in, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(in.Rules.Birth()) != 0 || len(in.Rules.Survive()) != 0 {
		t.Fatalf("expected empty rules, got %v", in.Rules)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		old   string
		new   string
		line  int
		field string
	}{
		{"bad count", "2,3\n", "2,three\n", 1, "surviving neighbor counts"},
		{"empty count", "2,3\n", "2,,3\n", 1, "surviving neighbor counts"},
		{"trailing comma", "2,3\n", "2,3,\n", 1, "surviving neighbor counts"},
		{"leading comma", "2,3\n3\n", "2,3\n,3\n", 2, "birth neighbor counts"},
		{"negative count", "2,3\n", "2,-1\n", 1, "surviving neighbor counts"},
		{"bad offset", "-1,-1\n5x3", "-1\n5x3", 3, "grid offset"},
		{"empty coordinate", "-1,-1\n5x3", "-1,,-1\n5x3", 3, "grid offset"},
		{"missing coordinate", "-1,-1\n5x3", "-1,\n5x3", 3, "grid offset"},
		{"bad extent", "5x3", "5by3", 4, "grid size"},
		{"zero extent", "5x3", "0x3", 4, "grid size"},
		{"bad border", "+-----+\n|     |\n| xxx", "+----+\n|     |\n| xxx", 5, "grid border"},
		{"short row", "| xxx |", "| xxx|", 7, "grid row"},
		{"unbracketed row", "| xxx |", ": xxx :", 7, "grid row"},
		{"negative generation", "+\n1\n", "+\n-4\n", 10, "generation"},
		{"bad corner", "3,1\n", "3,1,2\n", 11, "output corner"},
		{"leading comma corner", "\n3,1\n", "\n,3,1\n", 11, "output corner"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := strings.Replace(blinkerInput, c.old, c.new, 1)
			if src == blinkerInput {
				t.Fatalf("replacement %q did not apply", c.old)
			}
			_, err := Parse(strings.NewReader(src))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Line != c.line || perr.Field != c.field {
				t.Fatalf("error at line %d field %q, expected line %d field %q", perr.Line, perr.Field, c.line, c.field)
			}
		})
	}
}

func TestParseTruncated(t *testing.T) {
	lines := strings.SplitAfter(blinkerInput, "\n")
	_, err := Parse(strings.NewReader(strings.Join(lines[:6], "")))
	if !errors.Is(err, io.ErrUnexpectedEOF) || !errors.Is(err, ErrMalformed) {
		t.Fatalf("truncated input returned %v", err)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	rng := core.NewRNG(11)
	window := core.NewRect(core.Pt(-3, 2), 12, 7)
	g, err := life.Soup(rng, window, 0.4, life.KindInfinite)
	if err != nil {
		t.Fatal(err)
	}
	rendered := g.Render(window)

	cells, err := NewReader(strings.NewReader(rendered)).Frame(window.Min, window.W, window.H)
	if err != nil {
		t.Fatal(err)
	}
	again := life.FromPoints(cells...).Render(window)
	if again != rendered {
		t.Fatalf("round trip changed output:\n%s\n---\n%s", rendered, again)
	}
}

func TestInputGridKinds(t *testing.T) {
	in, err := Parse(strings.NewReader(blinkerInput))
	if err != nil {
		t.Fatal(err)
	}
	for _, kind := range []string{life.KindInfinite, life.KindFlat} {
		g, err := in.Grid(kind)
		if err != nil {
			t.Fatal(err)
		}
		if g.Len() != 3 || !g.IsAlive(core.Pt(1, 0)) {
			t.Fatalf("%s grid has %d cells", kind, g.Len())
		}
	}
	if _, err := in.Grid("sphere"); !errors.Is(err, life.ErrUnsupportedGrid) {
		t.Fatalf("unknown kind returned %v", err)
	}
}
