// Package diag writes the optional debug channel: a dump of the parsed run
// parameters and a frame per generation.
package diag

import (
	"fmt"
	"io"
	"text/tabwriter"

	icore "infinite-life/internal/core"
	"infinite-life/pkg/core"
	"infinite-life/pkg/sims/life"
)

// Debugger writes diagnostics to out when enabled and does nothing otherwise.
type Debugger struct {
	out     io.Writer
	enabled bool
}

// New returns a Debugger. A nil out disables it.
func New(out io.Writer, enabled bool) *Debugger {
	return &Debugger{out: out, enabled: enabled && out != nil}
}

// Enabled reports whether output is produced.
func (d *Debugger) Enabled() bool { return d != nil && d.enabled }

// Parameters dumps a snapshot, one aligned key/value table per group.
func (d *Debugger) Parameters(snap icore.ParameterSnapshot) {
	if !d.Enabled() {
		return
	}
	for _, g := range snap.Groups {
		fmt.Fprintf(d.out, "-- %s --\n", g.Name)
		tw := tabwriter.NewWriter(d.out, 0, 4, 2, ' ', 0)
		for _, p := range g.Params {
			fmt.Fprintf(tw, "%s\t%s\n", p.Label, p.Value)
		}
		tw.Flush()
	}
}

// Generation writes one generation clipped to window, with the transition
// stats that produced it.
func (d *Debugger) Generation(gen int, g life.Grid, stats life.Stats, window core.Rect) {
	if !d.Enabled() {
		return
	}
	fmt.Fprintf(d.out, "-- generation %d: %d alive", gen, g.Len())
	if gen > 0 {
		fmt.Fprintf(d.out, " (evaluated %d, born %d, died %d)", stats.Candidates, stats.Born, stats.Died)
	}
	fmt.Fprintf(d.out, " --\n%s\n", g.Render(window))
}
