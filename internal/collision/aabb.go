package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is a world-space axis-aligned box.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Overlaps is strict: boxes that only share a face do not overlap.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X &&
		a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y &&
		a.Min.Z < b.Max.Z && a.Max.Z > b.Min.Z
}

// Penetration returns the axis along which 'a' leaves 'b' soonest, as a unit normal
// pushing 'a' out, and the depth along it.
func (a AABB) Penetration(b AABB) (rl.Vector3, float32, bool) {
	if !a.Overlaps(b) {
		return rl.Vector3{}, 0, false
	}

	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	n, d := leastPush(dx1, dx2, dy1, dy2, dz1, dz2)
	return n, d, true
}

// ClosestPoint clamps p into the box.
func (a AABB) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, a.Min.X, a.Max.X),
		Y: clamp(p.Y, a.Min.Y, a.Max.Y),
		Z: clamp(p.Z, a.Min.Z, a.Max.Z),
	}
}

// Exit returns the face through which a point inside the box leaves soonest, as a unit
// normal, and the distance to it.
func (a AABB) Exit(p rl.Vector3) (rl.Vector3, float32) {
	return leastPush(
		a.Max.X-p.X, p.X-a.Min.X,
		a.Max.Y-p.Y, p.Y-a.Min.Y,
		a.Max.Z-p.Z, p.Z-a.Min.Z,
	)
}

// leastPush picks the smallest of six depths given in +X, -X, +Y, -Y, +Z, -Z order.
func leastPush(px, nx, py, ny, pz, nz float32) (rl.Vector3, float32) {
	min := px
	normal := rl.Vector3{X: 1}

	if nx < min {
		min = nx
		normal = rl.Vector3{X: -1}
	}
	if py < min {
		min = py
		normal = rl.Vector3{Y: 1}
	}
	if ny < min {
		min = ny
		normal = rl.Vector3{Y: -1}
	}
	if pz < min {
		min = pz
		normal = rl.Vector3{Z: 1}
	}
	if nz < min {
		min = nz
		normal = rl.Vector3{Z: -1}
	}
	return normal, min
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
