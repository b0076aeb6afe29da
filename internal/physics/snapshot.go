package physics

import (
	"rigid3d/internal/collision"
	"rigid3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// BodyState is a read-only copy of one object's physics state after a tick.
type BodyState struct {
	UID      uint32
	Name     string
	Position rl.Vector3
	Velocity rl.Vector3
	Static   bool
	Contacts []collision.ObjectCollisionInfo
}

// Snapshot copies the state of every collider in the scene. Contact lists are deep
// copied, so the result stays valid after the next tick reuses the collider buffers.
func Snapshot(scene *engine.Scene) ([]BodyState, error) {
	bodies := gather(scene, false)
	live := make([]BodyState, len(bodies))
	for i, b := range bodies {
		live[i] = BodyState{
			UID:      b.obj.UID,
			Name:     b.obj.Name,
			Position: b.obj.Transform.Position,
			Static:   b.static,
			Contacts: b.collider.Collisions(),
		}
		if b.rb != nil {
			live[i].Velocity = b.rb.Velocity
		}
	}

	var out []BodyState
	if err := copier.CopyWithOption(&out, &live, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}
