package collision

import (
	"rigid3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TriangleTriangle is the interval overlap test of Möller. On a hit each side gets the
// other triangle's face normal and the penetration is the smallest absolute vertex to
// plane distance over both triangles, which approximates the real overlap.
func TriangleTriangle(lhs Triangle, lhsT *engine.Transform, rhs Triangle, rhsT *engine.Transform) (CollisionInfo, bool) {
	a := lhs.Transform(lhsT)
	b := rhs.Transform(rhsT)

	ca, ra := a.BoundingSphere()
	cb, rb := b.BoundingSphere()
	if distSqr(ca, cb) > (ra+rb)*(ra+rb) {
		return CollisionInfo{}, false
	}

	db := planeDistances(a, b)
	if db[0]*db[1] > 0 && db[0]*db[2] > 0 {
		return CollisionInfo{}, false
	}
	da := planeDistances(b, a)
	if da[0]*da[1] > 0 && da[0]*da[2] > 0 {
		return CollisionInfo{}, false
	}

	dir := rl.Vector3CrossProduct(a.normal, b.normal)
	ax := dominantAxis(dir)

	var pa, pb [3]float32
	for i := 0; i < 3; i++ {
		pa[i] = axis(a.verts[i], ax)
		pb[i] = axis(b.verts[i], ax)
	}

	minA, maxA := interval(pa, da)
	minB, maxB := interval(pb, db)
	if maxA < minB || maxB < minA {
		return CollisionInfo{}, false
	}

	pen := math32.Min(minAbs(da), minAbs(db))
	return newInfo(b.normal, a.normal, pen), true
}

// planeDistances returns the signed distance of each vertex of t to the plane of p.
func planeDistances(p, t Triangle) [3]float32 {
	d := -rl.Vector3DotProduct(p.normal, p.verts[0])
	var out [3]float32
	for i, v := range t.verts {
		out[i] = rl.Vector3DotProduct(p.normal, v) + d
	}
	return out
}

func dominantAxis(v rl.Vector3) int {
	ax := 0
	best := math32.Abs(v.X)
	if y := math32.Abs(v.Y); y > best {
		ax, best = 1, y
	}
	if z := math32.Abs(v.Z); z > best {
		ax = 2
	}
	return ax
}

// interval returns the sorted span the triangle's cut through the other plane covers on
// the projection axis. The lone vertex on its side of the plane goes first to isect.
func interval(p, d [3]float32) (float32, float32) {
	var t0, t1 float32
	switch {
	case d[0]*d[1] > 0:
		t0, t1 = isect(p[2], p[0], p[1], d[2], d[0], d[1])
	case d[0]*d[2] > 0:
		t0, t1 = isect(p[1], p[0], p[2], d[1], d[0], d[2])
	case d[1]*d[2] > 0 || d[0] != 0:
		t0, t1 = isect(p[0], p[1], p[2], d[0], d[1], d[2])
	case d[1] != 0:
		t0, t1 = isect(p[1], p[0], p[2], d[1], d[0], d[2])
	case d[2] != 0:
		t0, t1 = isect(p[2], p[0], p[1], d[2], d[0], d[1])
	default:
		// coplanar
		return 0, 0
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1
}

// isect interpolates along the two edges leaving the lone vertex v0. Near-parallel
// planes collapse to the coplanar interval.
func isect(v0, v1, v2, d0, d1, d2 float32) (float32, float32) {
	if math32.Abs(d0-d1) < parallelEpsilon || math32.Abs(d0-d2) < parallelEpsilon {
		return 0, 0
	}
	return v0 + (v1-v0)*d0/(d0-d1), v0 + (v2-v0)*d0/(d0-d2)
}

func minAbs(d [3]float32) float32 {
	return math32.Min(math32.Abs(d[0]), math32.Min(math32.Abs(d[1]), math32.Abs(d[2])))
}
