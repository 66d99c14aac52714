// Package tui shows a running simulation in the terminal.
package tui

import (
	"strings"
	"time"

	"infinite-life/internal/core"
	"infinite-life/internal/ui"
	geom "infinite-life/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const (
	aliveGlyph = '█'
	frameRate  = 30
	panStep    = 4
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Canvas is the part of tcell.Screen the viewer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Viewer holds the interactive state: viewport origin, pause and speed.
type Viewer struct {
	sim     core.Sim
	origin  geom.Point
	stepper *core.FixedStep
	paused  bool
}

// New returns a Viewer whose top-left cell is origin.
func New(sim core.Sim, origin geom.Point, tps int) *Viewer {
	return &Viewer{sim: sim, origin: origin, stepper: core.NewFixedStep(tps)}
}

// Origin returns the plane coordinate drawn in the top-left corner.
func (v *Viewer) Origin() geom.Point { return v.origin }

// Paused reports whether automatic stepping is off.
func (v *Viewer) Paused() bool { return v.paused }

// Tick advances the simulation when it is running and a step is due.
func (v *Viewer) Tick() {
	if !v.paused && v.stepper.ShouldStep() {
		v.sim.Step()
	}
}

// HandleKey applies a key press and reports whether the viewer should exit.
func (v *Viewer) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.pan(-panStep, 0)
	case tcell.KeyRight:
		v.pan(panStep, 0)
	case tcell.KeyUp:
		v.pan(0, -panStep)
	case tcell.KeyDown:
		v.pan(0, panStep)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.sim.Step()
		case 'r':
			v.sim.Reset()
		case '+', '=':
			v.stepper.SetTPS(v.stepper.TPS() * 2)
		case '-':
			v.stepper.SetTPS(max(1, v.stepper.TPS()/2))
		case 'h':
			v.pan(-panStep, 0)
		case 'l':
			v.pan(panStep, 0)
		case 'k':
			v.pan(0, -panStep)
		case 'j':
			v.pan(0, panStep)
		}
	}
	return false
}

func (v *Viewer) pan(dx, dy int) { v.origin = v.origin.Add(geom.Pt(dx, dy)) }

// Draw paints the viewport and a status line on the last row.
func (v *Viewer) Draw(c Canvas) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	view := geom.NewRect(v.Origin(), w, h-1)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			if v.sim.Alive(view.At(x, y)) {
				c.SetContent(x, y, aliveGlyph, nil, aliveStyle)
			} else {
				c.SetContent(x, y, ' ', nil, tcell.StyleDefault)
			}
		}
	}

	status := []rune(strings.Join(ui.StatusLines(v.sim, v.Paused(), v.stepper.TPS()), " | ") + " | at " + v.Origin().String())
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(status) {
			r = status[x]
		}
		c.SetContent(x, h-1, r, nil, statusStyle)
	}
}

// Run drives the viewer on s until the user quits or the screen is closed.
// The caller owns s and must Fini it afterwards.
func Run(s tcell.Screen, v *Viewer) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := time.NewTicker(time.Second / frameRate)
	defer frame.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-frame.C:
			v.Tick()
		}
		s.Clear()
		v.Draw(s)
		s.Show()
	}
}
