package collision

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionInfo is the result of one narrow-phase test. NormalLHS is the direction
// applied to the first participant, NormalRHS to the second. They are not guaranteed
// to be opposite (triangle-triangle uses each other's face normals).
type CollisionInfo struct {
	LHS, RHS    uint32
	NormalLHS   rl.Vector3
	NormalRHS   rl.Vector3
	Penetration float32
}

func newInfo(normalLHS, normalRHS rl.Vector3, penetration float32) CollisionInfo {
	return CollisionInfo{NormalLHS: normalLHS, NormalRHS: normalRHS, Penetration: penetration}
}

// Swap exchanges the two participants.
func (c CollisionInfo) Swap() CollisionInfo {
	return CollisionInfo{
		LHS:         c.RHS,
		RHS:         c.LHS,
		NormalLHS:   c.NormalRHS,
		NormalRHS:   c.NormalLHS,
		Penetration: c.Penetration,
	}
}

// Split breaks the pair result into the half each participant keeps.
func (c CollisionInfo) Split() (lhs, rhs ObjectCollisionInfo) {
	lhs = ObjectCollisionInfo{Other: c.RHS, Normal: c.NormalLHS, Penetration: c.Penetration}
	rhs = ObjectCollisionInfo{Other: c.LHS, Normal: c.NormalRHS, Penetration: c.Penetration}
	return lhs, rhs
}

// ObjectCollisionInfo is one contact as seen by one participant.
type ObjectCollisionInfo struct {
	Other       uint32
	Normal      rl.Vector3
	Penetration float32
}
