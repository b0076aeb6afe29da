package components

import (
	"errors"
	"fmt"

	"rigid3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalidRigidbody reports mass or friction outside the accepted range.
var ErrInvalidRigidbody = errors.New("invalid rigidbody")

type Rigidbody struct {
	engine.BaseComponent
	Velocity rl.Vector3

	// Snapshot of the transform at creation, refreshed by integration.
	Position rl.Vector3
	Rotation rl.Vector3 // degrees

	Mass       float32
	Friction   float32 // 0 = no decay, 1 = stops on contact
	Bounciness float32 // stored, not read by the solver
}

// NewRigidbody captures the transform's position and rotation. Mass must be positive and
// friction within [0, 1].
func NewRigidbody(t *engine.Transform, mass, friction, bounciness float32) (*Rigidbody, error) {
	if !(mass > 0) {
		return nil, fmt.Errorf("%w: mass %v", ErrInvalidRigidbody, mass)
	}
	if !(friction >= 0 && friction <= 1) {
		return nil, fmt.Errorf("%w: friction %v", ErrInvalidRigidbody, friction)
	}
	return &Rigidbody{
		Position:   t.Position,
		Rotation:   t.Rotation(),
		Mass:       mass,
		Friction:   friction,
		Bounciness: bounciness,
	}, nil
}

func (r *Rigidbody) SetVelocity(v rl.Vector3) {
	r.Velocity = v
}

// AddForce applies an instantaneous change of velocity of force / mass.
func (r *Rigidbody) AddForce(force rl.Vector3) {
	r.Velocity = rl.Vector3Add(r.Velocity, rl.Vector3Scale(force, 1/r.Mass))
}

// Sync refreshes the cached snapshot from the owning transform.
func (r *Rigidbody) Sync(t *engine.Transform) {
	r.Position = t.Position
	r.Rotation = t.Rotation()
}
