package collision

import (
	"fmt"

	"rigid3d/internal/engine"
)

// UnsupportedPairError is raised for a shape pair the narrow phase has no test for.
// Ids are zero when the caller did not know them.
type UnsupportedPairError struct {
	A, B     Kind
	LHS, RHS uint32
}

func (e *UnsupportedPairError) Error() string {
	if e.LHS == 0 && e.RHS == 0 {
		return fmt.Sprintf("collision: unsupported shape pair %s vs %s", e.A, e.B)
	}
	return fmt.Sprintf("collision: unsupported shape pair %s vs %s (objects %d and %d)", e.A, e.B, e.LHS, e.RHS)
}

type testFunc func(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool)

var dispatch [kindCount][kindCount]testFunc

func init() {
	dispatch[KindMesh][KindMesh] = func(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool) {
		return MeshMesh(a.(*Mesh), ta, b.(*Mesh), tb)
	}
	dispatch[KindMesh][KindSphere] = func(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool) {
		return MeshSphere(a.(*Mesh), ta, b.(*Sphere), tb)
	}
	dispatch[KindSphere][KindSphere] = func(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool) {
		return SphereSphere(a.(*Sphere), ta, b.(*Sphere), tb)
	}
	dispatch[KindSphere][KindBox] = func(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool) {
		return SphereBox(a.(*Sphere), ta, b.(*Box), tb)
	}
	dispatch[KindBox][KindBox] = func(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool) {
		return BoxBox(a.(*Box), ta, b.(*Box), tb)
	}

	// Reversed mixed pairs run the forward test and hand the halves back.
	dispatch[KindSphere][KindMesh] = swapped(dispatch[KindMesh][KindSphere])
	dispatch[KindBox][KindSphere] = swapped(dispatch[KindSphere][KindBox])
}

func swapped(f testFunc) testFunc {
	return func(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool) {
		info, ok := f(b, tb, a, ta)
		if !ok {
			return CollisionInfo{}, false
		}
		return info.Swap(), true
	}
}

// Supported reports whether the narrow phase can test the pair in either order.
func Supported(a, b Kind) bool {
	if a >= kindCount || b >= kindCount {
		return false
	}
	return dispatch[a][b] != nil
}

// Collide tests a against b. NormalLHS always belongs to a. The returned ids are zero;
// callers stamp their own. Collide panics with *UnsupportedPairError when no test exists.
func Collide(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) (CollisionInfo, bool) {
	if !Supported(a.Kind(), b.Kind()) {
		panic(&UnsupportedPairError{A: a.Kind(), B: b.Kind()})
	}
	return dispatch[a.Kind()][b.Kind()](a, ta, b, tb)
}

func Collides(a Shape, ta *engine.Transform, b Shape, tb *engine.Transform) bool {
	_, ok := Collide(a, ta, b, tb)
	return ok
}
