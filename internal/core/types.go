package core

import geom "infinite-life/pkg/core"

// Sim is what the interactive viewers need from a running simulation.
type Sim interface {
	Name() string
	Generation() int
	Population() int
	Alive(p geom.Point) bool
	Step()
	Reset()
}

// ParameterProvider is implemented by sims that can describe their setup.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
