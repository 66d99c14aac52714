package ui

import (
	"fmt"

	"infinite-life/internal/core"
)

// StatusLines summarizes a running simulation for the HUD and the terminal
// status bar.
func StatusLines(sim core.Sim, paused bool, tps int) []string {
	state := fmt.Sprintf("running %d/s", tps)
	if paused {
		state = "paused"
	}
	return []string{
		sim.Name(),
		fmt.Sprintf("gen %d", sim.Generation()),
		fmt.Sprintf("pop %d", sim.Population()),
		state,
	}
}

// ParameterLines flattens a snapshot into "Label: value" lines under group
// headings.
func ParameterLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}
