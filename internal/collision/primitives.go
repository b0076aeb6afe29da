package collision

import (
	"rigid3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func sphereWorld(s *Sphere, t *engine.Transform) (rl.Vector3, float32) {
	return t.TransformPoint(s.Center), t.ScaleLength(s.Radius)
}

// boxWorld returns the box's world AABB. Boxes stay axis aligned; the owning rotation
// moves the center offset but does not turn the box.
func boxWorld(b *Box, t *engine.Transform) AABB {
	return NewAABBFromCenter(t.TransformPoint(b.Center), rl.Vector3Scale(b.Size, t.ScaleLength(1)))
}

// SphereSphere reports overlap when the center distance is at most the radius sum.
// The lhs normal points from rhs toward lhs.
func SphereSphere(lhs *Sphere, lhsT *engine.Transform, rhs *Sphere, rhsT *engine.Transform) (CollisionInfo, bool) {
	ca, ra := sphereWorld(lhs, lhsT)
	cb, rb := sphereWorld(rhs, rhsT)

	delta := rl.Vector3Subtract(ca, cb)
	d2 := rl.Vector3LengthSqr(delta)
	sum := ra + rb
	if d2 > sum*sum {
		return CollisionInfo{}, false
	}

	dist := math32.Sqrt(d2)
	normal := up
	if dist > parallelEpsilon {
		normal = rl.Vector3Scale(delta, 1/dist)
	}
	return newInfo(normal, rl.Vector3Negate(normal), sum-dist), true
}

// BoxBox pushes along the axis of least overlap. Boxes that only touch do not collide.
func BoxBox(lhs *Box, lhsT *engine.Transform, rhs *Box, rhsT *engine.Transform) (CollisionInfo, bool) {
	a := boxWorld(lhs, lhsT)
	b := boxWorld(rhs, rhsT)

	normal, depth, ok := a.Penetration(b)
	if !ok {
		return CollisionInfo{}, false
	}
	return newInfo(normal, rl.Vector3Negate(normal), depth), true
}

// SphereBox clamps the sphere center into the box to find the closest point.
// The lhs (sphere) normal points from the box toward the sphere.
func SphereBox(lhs *Sphere, lhsT *engine.Transform, rhs *Box, rhsT *engine.Transform) (CollisionInfo, bool) {
	center, r := sphereWorld(lhs, lhsT)
	box := boxWorld(rhs, rhsT)

	diff := rl.Vector3Subtract(center, box.ClosestPoint(center))
	d2 := rl.Vector3LengthSqr(diff)
	if d2 >= r*r {
		return CollisionInfo{}, false
	}

	dist := math32.Sqrt(d2)
	if dist > parallelEpsilon {
		normal := rl.Vector3Scale(diff, 1/dist)
		return newInfo(normal, rl.Vector3Negate(normal), r-dist), true
	}

	// Center inside the box: leave through the nearest face.
	normal, depth := box.Exit(center)
	return newInfo(normal, rl.Vector3Negate(normal), r+depth), true
}
