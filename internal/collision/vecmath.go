package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// parallelEpsilon guards divisions by near-zero lengths and plane distance differences.
const parallelEpsilon = 1e-6

// up is the fallback contact normal when no direction can be derived from the geometry.
var up = rl.Vector3{Y: 1}

func axis(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

func distSqr(a, b rl.Vector3) float32 {
	return rl.Vector3LengthSqr(rl.Vector3Subtract(a, b))
}
