package collision

import (
	"fmt"

	"rigid3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Triangle stores object-space vertices and a unit face normal. Queries transform both
// into world space each time; the world-space normal is never stored.
type Triangle struct {
	verts  [3]rl.Vector3
	normal rl.Vector3
}

// NewTriangle normalizes the given normal. A zero-length or non-finite normal is rejected.
func NewTriangle(verts [3]rl.Vector3, normal rl.Vector3) (Triangle, error) {
	l := rl.Vector3Length(normal)
	if !(l > 1e-12) || math32.IsInf(l, 0) {
		return Triangle{}, fmt.Errorf("%w: triangle %v has no area", ErrDegenerate, verts)
	}
	return Triangle{verts: verts, normal: rl.Vector3Scale(normal, 1/l)}, nil
}

func (t Triangle) Vertices() [3]rl.Vector3 {
	return t.verts
}

func (t Triangle) Normal() rl.Vector3 {
	return t.normal
}

// Transform returns the triangle in the space of the given transform.
func (t Triangle) Transform(by *engine.Transform) Triangle {
	m := by.Matrix()
	out := Triangle{}
	for i := range t.verts {
		out.verts[i] = rl.Vector3Transform(t.verts[i], m)
	}
	out.normal = rl.Vector3Normalize(by.TransformDirection(t.normal))
	return out
}

func (t Triangle) Midpoint() rl.Vector3 {
	sum := rl.Vector3Add(rl.Vector3Add(t.verts[0], t.verts[1]), t.verts[2])
	return rl.Vector3Scale(sum, 1.0/3.0)
}

// BoundingSphere returns the midpoint and the distance to the farthest vertex.
func (t Triangle) BoundingSphere() (rl.Vector3, float32) {
	center := t.Midpoint()
	var r2 float32
	for _, v := range t.verts {
		if d := distSqr(center, v); d > r2 {
			r2 = d
		}
	}
	return center, math32.Sqrt(r2)
}
