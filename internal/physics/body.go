// Package physics runs the per-tick pipeline over a scene: gravity, integration and
// contact resolution.
package physics

import (
	"rigid3d/internal/components"
	"rigid3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// body is one row of the per-tick join over a GameObject and its physics components.
type body struct {
	obj      *engine.GameObject
	collider *components.Collider
	rb       *components.Rigidbody // nil for pure collision targets
	static   bool
}

func (b *body) movable() bool {
	return b.rb != nil && !b.static
}

// gather collects every active object with a Collider. With withRigidbody set, objects
// without a Rigidbody are left out.
func gather(scene *engine.Scene, withRigidbody bool) []body {
	bodies := make([]body, 0, len(scene.GameObjects))
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		c := engine.GetComponent[*components.Collider](g)
		if c == nil {
			continue
		}
		rb := engine.GetComponent[*components.Rigidbody](g)
		if withRigidbody && rb == nil {
			continue
		}
		bodies = append(bodies, body{
			obj:      g,
			collider: c,
			rb:       rb,
			static:   engine.HasComponent[*components.Static](g),
		})
	}
	return bodies
}

// pair returns bodies i and j (i < j) from the two halves of a split at i+1, so the two
// pointers never refer to the same element.
func pair(bodies []body, i, j int) (*body, *body) {
	head, tail := bodies[:i+1], bodies[i+1:]
	return &head[i], &tail[j-i-1]
}

func clearContacts(bodies []body) {
	for i := range bodies {
		bodies[i].collider.ClearCollisions()
	}
}

// test runs the narrow phase for bodies i and j and records the contact on both.
func test(bodies []body, i, j int) (float32, bool) {
	a, b := pair(bodies, i, j)
	info, ok := a.collider.AddCollision(a.obj.UID, &a.obj.Transform, b.obj.UID, b.collider, &b.obj.Transform)
	return info.Penetration, ok
}

// removeNormalVelocity projects the velocity onto the contact plane.
func removeNormalVelocity(v, normal rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(v, rl.Vector3Scale(normal, rl.Vector3DotProduct(v, normal)))
}

// resolve applies every recorded contact to b. Friction decay is applied only when
// withFriction is set.
func resolve(b *body, withFriction bool) {
	if !b.movable() {
		return
	}
	t := &b.obj.Transform
	for _, c := range b.collider.Collisions() {
		b.rb.Velocity = removeNormalVelocity(b.rb.Velocity, c.Normal)
		if withFriction {
			b.rb.Velocity = rl.Vector3Subtract(b.rb.Velocity, rl.Vector3Scale(b.rb.Velocity, b.rb.Friction))
		}
		t.Position = rl.Vector3Add(t.Position, rl.Vector3Scale(c.Normal, c.Penetration))
	}
	b.rb.Sync(t)
}
