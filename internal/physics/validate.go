package physics

import (
	"rigid3d/internal/collision"
	"rigid3d/internal/engine"
)

// Validate checks every pair the solver could test and returns an
// *collision.UnsupportedPairError naming both objects for the first pair the narrow
// phase cannot handle. Run it after building a scene so the tick never panics.
func Validate(scene *engine.Scene) error {
	bodies := gather(scene, false)
	for i := 0; i < len(bodies)-1; i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := pair(bodies, i, j)
			if a.rb == nil && b.rb == nil {
				continue
			}
			ka, kb := a.collider.Shape().Kind(), b.collider.Shape().Kind()
			if !collision.Supported(ka, kb) {
				return &collision.UnsupportedPairError{A: ka, B: kb, LHS: a.obj.UID, RHS: b.obj.UID}
			}
		}
	}
	return nil
}
