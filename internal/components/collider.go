package components

import (
	"rigid3d/internal/collision"
	"rigid3d/internal/engine"
)

// Collider attaches a collision shape to a GameObject and holds the contacts found for
// it during the current tick.
type Collider struct {
	engine.BaseComponent
	shape    collision.Shape
	contacts []collision.ObjectCollisionInfo
}

func NewCollider(shape collision.Shape) *Collider {
	return &Collider{shape: shape}
}

func (c *Collider) Shape() collision.Shape {
	return c.shape
}

// Collisions returns this tick's contacts. The slice is reused after ClearCollisions.
func (c *Collider) Collisions() []collision.ObjectCollisionInfo {
	return c.contacts
}

func (c *Collider) ClearCollisions() {
	c.contacts = c.contacts[:0]
}

// Collides is the boolean form of the narrow phase and records nothing.
func (c *Collider) Collides(t *engine.Transform, other *Collider, otherT *engine.Transform) bool {
	c.mustSupport(0, other, 0)
	return collision.Collides(c.shape, t, other.shape, otherT)
}

// AddCollision tests c against rhs and on a hit appends one contact to each side, both
// stamped with the object ids. It panics with *collision.UnsupportedPairError when the
// shape pair has no test.
func (c *Collider) AddCollision(lhsID uint32, lhsT *engine.Transform, rhsID uint32, rhs *Collider, rhsT *engine.Transform) (collision.CollisionInfo, bool) {
	c.mustSupport(lhsID, rhs, rhsID)

	info, ok := collision.Collide(c.shape, lhsT, rhs.shape, rhsT)
	if !ok {
		return collision.CollisionInfo{}, false
	}
	info.LHS, info.RHS = lhsID, rhsID

	lhsHalf, rhsHalf := info.Split()
	c.contacts = append(c.contacts, lhsHalf)
	rhs.contacts = append(rhs.contacts, rhsHalf)
	return info, true
}

func (c *Collider) mustSupport(lhsID uint32, other *Collider, rhsID uint32) {
	a, b := c.shape.Kind(), other.shape.Kind()
	if !collision.Supported(a, b) {
		panic(&collision.UnsupportedPairError{A: a, B: b, LHS: lhsID, RHS: rhsID})
	}
}
