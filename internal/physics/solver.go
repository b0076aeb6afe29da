package physics

import (
	"rigid3d/internal/engine"
)

// PassStats summarizes one detection pass.
type PassStats struct {
	Tested      int     // pairs sent to the narrow phase
	Contacts    int     // pairs that collided
	Penetration float32 // summed over colliding pairs
}

type Report struct {
	Passes    []PassStats
	Converged bool // a pass found no contacts
}

// Penetration is the summed penetration of the first pass, before any correction.
func (r Report) Penetration() float32 {
	if len(r.Passes) == 0 {
		return 0
	}
	return r.Passes[0].Penetration
}

// CollisionPass is the single-pass resolver. It only joins objects that carry a
// Rigidbody and applies no friction.
type CollisionPass struct{}

func (CollisionPass) Run(scene *engine.Scene) PassStats {
	bodies := gather(scene, true)
	clearContacts(bodies)

	var stats PassStats
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			stats.Tested++
			if pen, ok := test(bodies, i, j); ok {
				stats.Contacts++
				stats.Penetration += pen
			}
		}
	}
	for i := range bodies {
		resolve(&bodies[i], false)
	}
	return stats
}

// Solver repeats detection and response up to Steps times per tick. An object that ends
// a pass with no contacts is solved and left out of the remaining passes of the tick.
type Solver struct {
	Steps int
}

func (s Solver) Run(scene *engine.Scene) Report {
	bodies := gather(scene, false)
	solved := make([]bool, len(bodies))

	var report Report
	for step := 0; step < s.Steps; step++ {
		clearContacts(bodies)

		var stats PassStats
		for i := 0; i < len(bodies)-1; i++ {
			if solved[i] {
				continue
			}
			for j := i + 1; j < len(bodies); j++ {
				if solved[j] || (bodies[i].rb == nil && bodies[j].rb == nil) {
					continue
				}
				stats.Tested++
				if pen, ok := test(bodies, i, j); ok {
					stats.Contacts++
					stats.Penetration += pen
				}
			}
		}
		report.Passes = append(report.Passes, stats)

		if stats.Contacts == 0 {
			report.Converged = true
			break
		}

		for i := range bodies {
			if solved[i] {
				continue
			}
			if len(bodies[i].collider.Collisions()) == 0 {
				solved[i] = true
				continue
			}
			resolve(&bodies[i], true)
		}
	}
	return report
}
