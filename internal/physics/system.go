package physics

import (
	"log"

	"rigid3d/internal/config"
	"rigid3d/internal/engine"
)

// System runs gravity, integration and the solver at most once per FixedDelta seconds of
// game time. The first call always ticks.
type System struct {
	Gravity    Gravity
	Solver     Solver
	FixedDelta float32
	Verbose    bool

	// OnTick fires after every tick with that tick's solver report.
	OnTick engine.Event[Report]

	ticked   bool
	lastTick float32
	ticks    int
	last     Report
}

func NewSystem(cfg config.Physics) *System {
	return &System{
		Gravity:    Gravity{G: cfg.Gravity},
		Solver:     Solver{Steps: cfg.SolverSteps},
		FixedDelta: cfg.FixedDelta,
		Verbose:    cfg.Verbose,
	}
}

// Run ticks the pipeline if enough time has passed since the last tick and reports
// whether it did. Gravity and integration use the frame's delta time.
func (s *System) Run(scene *engine.Scene, t engine.Time) bool {
	now := t.Time()
	if s.ticked && now-s.lastTick < s.FixedDelta {
		return false
	}
	s.ticked = true
	s.lastTick = now
	s.ticks++

	dt := t.DeltaTime()
	s.Gravity.Apply(scene, dt)
	Integrate(scene, dt)
	s.last = s.Solver.Run(scene)

	if !s.last.Converged && len(s.last.Passes) > 0 {
		log.Printf("Physics: solver did not converge in %d passes (tick %d, penetration %.4f)",
			len(s.last.Passes), s.ticks, s.last.Passes[len(s.last.Passes)-1].Penetration)
	} else if s.Verbose {
		log.Printf("Physics: tick %d at %.3fs, %d passes, penetration %.4f",
			s.ticks, now, len(s.last.Passes), s.last.Penetration())
	}
	s.OnTick.Invoke(s.last)
	return true
}

func (s *System) LastReport() Report {
	return s.last
}

// Ticks counts the ticks run so far.
func (s *System) Ticks() int {
	return s.ticks
}
