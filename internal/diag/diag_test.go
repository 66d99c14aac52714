package diag

import (
	"bytes"
	"strings"
	"testing"

	icore "infinite-life/internal/core"
	"infinite-life/pkg/core"
	"infinite-life/pkg/sims/life"
)

func TestDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	d := New(&buf, false)
	d.Parameters(icore.ParameterSnapshot{Groups: []icore.ParameterGroup{{Name: "Rules"}}})
	d.Generation(0, life.NewInfiniteGrid(), life.Stats{}, core.NewRect(core.Pt(0, 0), 1, 1))
	if buf.Len() != 0 {
		t.Fatalf("disabled debugger wrote %q", buf.String())
	}
	if New(nil, true).Enabled() {
		t.Fatal("nil writer should disable output")
	}
	var nilDebugger *Debugger
	nilDebugger.Generation(1, life.NewInfiniteGrid(), life.Stats{}, core.Rect{})
}

func TestParametersDump(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Parameters(icore.ParameterSnapshot{Groups: []icore.ParameterGroup{
		{Name: "Rules", Params: []icore.Parameter{icore.StringParam("rule", "Rule", "B3/S23")}},
		{Name: "Query", Params: []icore.Parameter{icore.IntParam("generation", "Generation", 2)}},
	}})
	want := "-- Rules --\nRule  B3/S23\n-- Query --\nGeneration  2\n"
	if buf.String() != want {
		t.Fatalf("dump = %q, want %q", buf.String(), want)
	}
}

func TestGenerationFrame(t *testing.T) {
	var buf bytes.Buffer
	g := life.FromPoints(core.Pt(0, 0))
	New(&buf, true).Generation(3, g, life.Stats{Candidates: 9, Born: 1, Died: 2}, core.NewRect(core.Pt(0, 0), 2, 1))
	out := buf.String()
	if !strings.HasPrefix(out, "-- generation 3: 1 alive (evaluated 9, born 1, died 2) --\n") {
		t.Fatalf("unexpected header in %q", out)
	}
	if !strings.HasSuffix(out, "+--+\n|x |\n+--+\n") {
		t.Fatalf("unexpected frame in %q", out)
	}
}
