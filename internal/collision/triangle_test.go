package collision

import (
	"testing"

	"rigid3d/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// tri builds a triangle with normal (v0-v1) x (v1-v2).
func tri(t *testing.T, v0, v1, v2 rl.Vector3) Triangle {
	t.Helper()
	n := rl.Vector3CrossProduct(rl.Vector3Subtract(v0, v1), rl.Vector3Subtract(v1, v2))
	out, err := NewTriangle([3]rl.Vector3{v0, v1, v2}, n)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	return out
}

func TestTriangleTriangleIntersecting(t *testing.T) {
	a := tri(t, vec(0, 0, 0), vec(2, 2, 1), vec(0, -1, 2))
	b := tri(t, vec(-2, -2, 1), vec(0.9, 1, 0), vec(2, 1, 2))
	id := engine.DefaultTransform()

	info, ok := TriangleTriangle(a, &id, b, &id)
	if !ok {
		t.Fatal("Expected triangles to intersect")
	}
	if !near(info.NormalLHS, b.Normal()) {
		t.Errorf("Expected lhs normal to be the rhs face normal %v, got %v", b.Normal(), info.NormalLHS)
	}
	if !near(info.NormalRHS, a.Normal()) {
		t.Errorf("Expected rhs normal to be the lhs face normal %v, got %v", a.Normal(), info.NormalRHS)
	}
	if info.Penetration < 0 {
		t.Errorf("Expected non-negative penetration, got %v", info.Penetration)
	}

	if _, ok := TriangleTriangle(b, &id, a, &id); !ok {
		t.Errorf("Expected the reversed test to intersect as well")
	}
}

func TestTriangleTriangleParallelPlanes(t *testing.T) {
	a := tri(t, vec(2, 0, 1), vec(1, 1, 0), vec(-2, 0, 1))
	id := engine.DefaultTransform()

	if _, ok := TriangleTriangle(a, &id, a, at(0, 1, 0)); ok {
		t.Errorf("Expected a triangle and its copy offset by (0,1,0) to be apart")
	}
}

func TestTriangleTriangleFarApart(t *testing.T) {
	a := tri(t, vec(0, 0, 0), vec(2, 2, 1), vec(0, -1, 2))
	b := tri(t, vec(-2, -2, 1), vec(0.9, 1, 0), vec(2, 1, 2))

	if _, ok := TriangleTriangle(a, at(0, 0, 0), b, at(50, 0, 0)); ok {
		t.Errorf("Expected bounding spheres to reject distant triangles")
	}
}

func TestTriangleTriangleCrossing(t *testing.T) {
	// Horizontal triangle pierced by a vertical one.
	flat := tri(t, vec(-1, 0, -1), vec(-1, 0, 1), vec(1, 0, 0))
	wall := tri(t, vec(0, -1, 0), vec(0, 1, 0), vec(0, 0, 0.5))
	id := engine.DefaultTransform()

	if _, ok := TriangleTriangle(flat, &id, wall, &id); !ok {
		t.Errorf("Expected crossing triangles to intersect")
	}
	if _, ok := TriangleTriangle(flat, &id, wall, at(5, 0, 0)); ok {
		t.Errorf("Expected the wall moved past the flat triangle to miss")
	}
}

func TestIsectGuardsParallelDenominator(t *testing.T) {
	t0, t1 := isect(1, 2, 3, 0.5, 0.5+1e-8, -1)
	if t0 != 0 || t1 != 0 {
		t.Errorf("Expected (0, 0) for a near-zero denominator, got (%v, %v)", t0, t1)
	}
	for _, v := range []float32{t0, t1} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Errorf("Expected finite interval, got %v", v)
		}
	}
}

func TestIntervalCoplanar(t *testing.T) {
	lo, hi := interval([3]float32{1, 2, 3}, [3]float32{0, 0, 0})
	if lo != 0 || hi != 0 {
		t.Errorf("Expected coplanar interval (0, 0), got (%v, %v)", lo, hi)
	}
}

func TestIntervalSingleVertexOnPlane(t *testing.T) {
	// d0 on the plane, the other two on opposite sides.
	lo, hi := interval([3]float32{0, 2, 4}, [3]float32{0, 1, -1})
	if math32.Abs(lo) > 1e-6 || math32.Abs(hi-3) > 1e-6 {
		t.Errorf("Expected interval (0, 3), got (%v, %v)", lo, hi)
	}
}

func TestClosestPointOnTriangleRegions(t *testing.T) {
	a, b, c := vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)

	tests := []struct {
		name string
		p    rl.Vector3
		want rl.Vector3
	}{
		{"vertex a", vec(-1, -1, 0), a},
		{"vertex b", vec(2, -0.5, 0), b},
		{"vertex c", vec(-0.5, 2, 0), c},
		{"edge ab", vec(0.5, -1, 0), vec(0.5, 0, 0)},
		{"edge ac", vec(-1, 0.5, 0), vec(0, 0.5, 0)},
		{"edge bc", vec(1, 1, 0), vec(0.5, 0.5, 0)},
		{"face", vec(0.25, 0.25, 3), vec(0.25, 0.25, 0)},
	}

	for _, tt := range tests {
		if got := ClosestPointOnTriangle(tt.p, a, b, c); !near(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestTriangleSphere(t *testing.T) {
	face, err := NewTriangle([3]rl.Vector3{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)}, vec(0, 0, 1))
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	id := engine.DefaultTransform()
	s := mustSphere(t, 1)

	info, ok := TriangleSphere(face, &id, s, at(0.25, 0.25, 0.5))
	if !ok {
		t.Fatal("Expected collision")
	}
	if !near(info.NormalRHS, vec(0, 0, 1)) {
		t.Errorf("Expected sphere normal (0,0,1), got %v", info.NormalRHS)
	}
	if !near(info.NormalLHS, vec(0, 0, -1)) {
		t.Errorf("Expected triangle normal (0,0,-1), got %v", info.NormalLHS)
	}
	if math32.Abs(info.Penetration-0.5) > 1e-5 {
		t.Errorf("Expected penetration 0.5, got %v", info.Penetration)
	}

	if _, ok := TriangleSphere(face, &id, s, at(0.25, 0.25, 1)); !ok {
		t.Errorf("Expected a sphere touching the face to collide")
	}
	if _, ok := TriangleSphere(face, &id, s, at(0.25, 0.25, 1.1)); ok {
		t.Errorf("Expected a sphere above the face to miss")
	}
}

func TestTriangleSphereCenterOnFace(t *testing.T) {
	face, err := NewTriangle([3]rl.Vector3{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)}, vec(0, 0, 1))
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	id := engine.DefaultTransform()

	info, ok := TriangleSphere(face, &id, mustSphere(t, 0.5), at(0.25, 0.25, 0))
	if !ok {
		t.Fatal("Expected collision")
	}
	if !near(info.NormalRHS, vec(0, 0, 1)) {
		t.Errorf("Expected face normal fallback (0,0,1), got %v", info.NormalRHS)
	}
	if math32.Abs(info.Penetration-0.5) > 1e-5 {
		t.Errorf("Expected penetration 0.5, got %v", info.Penetration)
	}
}

func TestTriangleTransform(t *testing.T) {
	face, err := NewTriangle([3]rl.Vector3{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)}, vec(0, 0, 1))
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	tr := engine.NewTransform(vec(1, 2, 3), rl.Vector3{}, 2)

	moved := face.Transform(&tr)
	if got := moved.Vertices()[1]; !near(got, vec(3, 2, 3)) {
		t.Errorf("Expected scaled and translated vertex (3,2,3), got %v", got)
	}
	if l := rl.Vector3Length(moved.Normal()); math32.Abs(l-1) > 1e-5 {
		t.Errorf("Expected unit normal after transform, got length %v", l)
	}
}

func TestTriangleBoundingSphere(t *testing.T) {
	face, err := NewTriangle([3]rl.Vector3{vec(10, 0, 0), vec(13, 0, 0), vec(10, 3, 0)}, vec(0, 0, 1))
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	center, r := face.BoundingSphere()
	if !near(center, vec(11, 1, 0)) {
		t.Errorf("Expected midpoint (11,1,0), got %v", center)
	}
	// Farthest vertex from the midpoint, not from the origin.
	want := math32.Sqrt(4 + 1)
	if math32.Abs(r-want) > 1e-5 {
		t.Errorf("Expected radius %v, got %v", want, r)
	}
}
