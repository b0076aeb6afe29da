package scenefile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rigid3d/internal/collision"
	"rigid3d/internal/components"
	"rigid3d/internal/engine"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

const dropScene = `name: drop
objects:
  - name: ground
    static: true
    shape:
      box: {size: [20, 1, 20]}
  - name: ball
    position: [0, 4, 0]
    rotation: [0, 45, 0]
    rigidbody: {mass: 2, friction: 0.1, bounciness: 0.3, velocity: [1, 0, 0]}
    shape:
      sphere: {radius: 0.5}
  - name: ramp
    position: [3, 0.5, 0]
    scale: 2
    static: true
    shape:
      mesh:
        vertices: [[0, 0, 0], [0, 0, 1], [1, 0, 0], [1, 0, 1]]
        indices: [0, 1, 2, 2, 1, 3]
`

func diff(t *testing.T, want, got string) string {
	t.Helper()
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	return out
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(dropScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Name != "drop" || len(f.Objects) != 3 {
		t.Fatalf("Expected scene drop with 3 objects, got %q with %d", f.Name, len(f.Objects))
	}

	ball := f.Objects[1]
	if ball.Position != (Vec3{0, 4, 0}) {
		t.Errorf("Expected ball position [0 4 0], got %v", ball.Position)
	}
	if ball.Rigidbody == nil || ball.Rigidbody.Mass != 2 || ball.Rigidbody.Velocity != (Vec3{1, 0, 0}) {
		t.Errorf("Expected ball rigidbody with mass 2 and velocity [1 0 0], got %+v", ball.Rigidbody)
	}
	if ball.Shape.Sphere == nil || ball.Shape.Sphere.Radius != 0.5 {
		t.Errorf("Expected sphere radius 0.5, got %+v", ball.Shape)
	}
	if ramp := f.Objects[2]; ramp.Shape.Mesh == nil || len(ramp.Shape.Mesh.Indices) != 6 {
		t.Errorf("Expected ramp mesh with 6 indices, got %+v", ramp.Shape)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := Parse([]byte(dropScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	first, err := Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	again, err := Parse(first)
	if err != nil {
		t.Fatalf("Parse of marshaled scene: %v\n%s", err, first)
	}
	second, err := Marshal(again)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("Expected stable output across a round trip:\n%s", diff(t, string(first), string(second)))
	}
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(dropScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	scene, err := Build(f, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if scene.Len() != 3 {
		t.Fatalf("Expected 3 objects, got %d", scene.Len())
	}

	ground := scene.FindByName("ground")
	if !engine.HasComponent[*components.Static](ground) {
		t.Errorf("Expected ground to be static")
	}
	if engine.HasComponent[*components.Rigidbody](ground) {
		t.Errorf("Expected ground without rigidbody")
	}

	ball := scene.FindByName("ball")
	rb := engine.GetComponent[*components.Rigidbody](ball)
	if rb == nil {
		t.Fatal("Expected ball rigidbody")
	}
	if rb.Mass != 2 || rb.Bounciness != 0.3 || rb.Velocity.X != 1 {
		t.Errorf("Expected mass 2, bounciness 0.3 and velocity x 1, got %+v", rb)
	}
	if ball.Transform.Rotation().Y != 45 {
		t.Errorf("Expected ball rotation y 45, got %v", ball.Transform.Rotation().Y)
	}

	ramp := scene.FindByName("ramp")
	c := engine.GetComponent[*components.Collider](ramp)
	if c == nil || c.Shape().Kind() != collision.KindMesh {
		t.Fatalf("Expected ramp mesh collider")
	}
	if ramp.Transform.Scale != 2 {
		t.Errorf("Expected ramp scale 2, got %v", ramp.Transform.Scale)
	}
}

func TestBuildRejectsInvalidShapes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"no shape", "objects:\n  - name: a\n    shape: {}\n", ErrInvalidScene},
		{"two shapes", "objects:\n  - name: a\n    shape: {sphere: {radius: 1}, box: {size: [1, 1, 1]}}\n", ErrInvalidScene},
		{"zero radius", "objects:\n  - name: a\n    shape: {sphere: {radius: 0}}\n", collision.ErrDegenerate},
		{"flat box", "objects:\n  - name: a\n    shape: {box: {size: [1, 0, 1]}}\n", collision.ErrDegenerate},
		{"partial triangle", "objects:\n  - name: a\n    shape: {mesh: {vertices: [[0, 0, 0], [1, 0, 0]]}}\n", collision.ErrInvalidMesh},
		{"bad mass", "objects:\n  - name: a\n    rigidbody: {mass: 0}\n    shape: {sphere: {radius: 1}}\n", components.ErrInvalidRigidbody},
	}

	for _, tt := range tests {
		f, err := Parse([]byte(tt.yaml))
		if err != nil {
			t.Fatalf("%s: Parse: %v", tt.name, err)
		}
		if _, err := Build(f, ""); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestBuildRejectsUnsupportedPair(t *testing.T) {
	data := `objects:
  - name: terrain
    static: true
    shape:
      mesh: {vertices: [[0, 0, 0], [0, 0, 1], [1, 0, 0]]}
  - name: crate
    position: [0, 2, 0]
    rigidbody: {mass: 1, friction: 0}
    shape:
      box: {size: [1, 1, 1]}
`
	f, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, err = Build(f, "")
	var pairErr *collision.UnsupportedPairError
	if !errors.As(err, &pairErr) {
		t.Fatalf("Expected *collision.UnsupportedPairError, got %v", err)
	}
	if pairErr.A != collision.KindMesh || pairErr.B != collision.KindBox {
		t.Errorf("Expected mesh vs box, got %s vs %s", pairErr.A, pairErr.B)
	}
}

func TestLoadWithGLTFMesh(t *testing.T) {
	dir := t.TempDir()

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{-5, 0, -5}, {-5, 0, 5}, {5, 0, 5}, {5, 0, -5}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "floor",
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(idx),
			Attributes: map[string]int{gltf.POSITION: pos},
		}},
	})
	if err := os.MkdirAll(filepath.Join(dir, "meshes"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := gltf.SaveBinary(doc, filepath.Join(dir, "meshes", "floor.glb")); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}

	data := `name: terrain
objects:
  - name: floor
    static: true
    shape:
      mesh: {gltf: meshes/floor.glb, mesh_name: floor}
  - name: ball
    position: [0, 0.5, 0]
    rigidbody: {mass: 1, friction: 0}
    shape:
      sphere: {radius: 1}
`
	path := filepath.Join(dir, "terrain.yaml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	scene, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	floor := engine.GetComponent[*components.Collider](scene.FindByName("floor"))
	mesh, ok := floor.Shape().(*collision.Mesh)
	if !ok {
		t.Fatalf("Expected a mesh shape, got %T", floor.Shape())
	}
	if n := len(mesh.Triangles()); n != 2 {
		t.Errorf("Expected 2 triangles from the glTF file, got %d", n)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadBundledScenes(t *testing.T) {
	for _, name := range []string{"drop.yaml", "terrain.yaml"} {
		scene, err := Load(filepath.Join("..", "..", "assets", "scenes", name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if scene.Len() == 0 {
			t.Errorf("%s: expected objects", name)
		}
	}
}
