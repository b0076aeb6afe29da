package physics

import (
	"rigid3d/internal/components"
	"rigid3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var down = rl.Vector3{Y: -1}

// Gravity accelerates every non-static rigidbody. The change of velocity is scaled by
// mass: v += down * m * G * dt.
type Gravity struct {
	G float32
}

func (g Gravity) Apply(scene *engine.Scene, dt float32) {
	for _, obj := range scene.GameObjects {
		if !obj.Active || engine.HasComponent[*components.Static](obj) {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}
		rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(down, rb.Mass*g.G*dt))
	}
}

// Integrate advances every non-static rigidbody by its velocity (semi-implicit Euler,
// so run it after Gravity).
func Integrate(scene *engine.Scene, dt float32) {
	for _, obj := range scene.GameObjects {
		if !obj.Active || engine.HasComponent[*components.Static](obj) {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}
		obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, rl.Vector3Scale(rb.Velocity, dt))
		rb.Sync(&obj.Transform)
	}
}
