package collision

import (
	"rigid3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ClosestPointOnTriangle returns the point of triangle abc nearest to p, walking the
// vertex, edge and face Voronoi regions in turn.
func ClosestPointOnTriangle(p, a, b, c rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)
	ap := rl.Vector3Subtract(p, a)

	d1 := rl.Vector3DotProduct(ab, ap)
	d2 := rl.Vector3DotProduct(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := rl.Vector3Subtract(p, b)
	d3 := rl.Vector3DotProduct(ab, bp)
	d4 := rl.Vector3DotProduct(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return rl.Vector3Add(a, rl.Vector3Scale(ab, v))
	}

	cp := rl.Vector3Subtract(p, c)
	d5 := rl.Vector3DotProduct(ab, cp)
	d6 := rl.Vector3DotProduct(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return rl.Vector3Add(a, rl.Vector3Scale(ac, w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return rl.Vector3Add(b, rl.Vector3Scale(rl.Vector3Subtract(c, b), w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return rl.Vector3Add(a, rl.Vector3Add(rl.Vector3Scale(ab, v), rl.Vector3Scale(ac, w)))
}

// TriangleSphere collides when the closest point of the triangle lies within the radius.
// The lhs (triangle) normal points from the sphere center to the contact.
func TriangleSphere(lhs Triangle, lhsT *engine.Transform, rhs *Sphere, rhsT *engine.Transform) (CollisionInfo, bool) {
	tri := lhs.Transform(lhsT)
	center, r := sphereWorld(rhs, rhsT)

	closest := ClosestPointOnTriangle(center, tri.verts[0], tri.verts[1], tri.verts[2])
	diff := rl.Vector3Subtract(closest, center)
	d2 := rl.Vector3LengthSqr(diff)
	if d2 > r*r {
		return CollisionInfo{}, false
	}

	dist := math32.Sqrt(d2)
	if dist > parallelEpsilon {
		normal := rl.Vector3Scale(diff, 1/dist)
		return newInfo(normal, rl.Vector3Negate(normal), r-dist), true
	}
	// Center on the triangle: push the sphere out along the face.
	return newInfo(rl.Vector3Negate(tri.normal), tri.normal, r), true
}

// MeshMesh returns the first intersecting triangle pair.
func MeshMesh(lhs *Mesh, lhsT *engine.Transform, rhs *Mesh, rhsT *engine.Transform) (CollisionInfo, bool) {
	for _, a := range lhs.triangles {
		for _, b := range rhs.triangles {
			if info, ok := TriangleTriangle(a, lhsT, b, rhsT); ok {
				return info, true
			}
		}
	}
	return CollisionInfo{}, false
}

// MeshSphere returns the first triangle touching the sphere.
func MeshSphere(lhs *Mesh, lhsT *engine.Transform, rhs *Sphere, rhsT *engine.Transform) (CollisionInfo, bool) {
	for _, tri := range lhs.triangles {
		if info, ok := TriangleSphere(tri, lhsT, rhs, rhsT); ok {
			return info, true
		}
	}
	return CollisionInfo{}, false
}
