// Package scenefile reads physics scenes from YAML.
//
//	name: drop
//	objects:
//	  - name: ground
//	    static: true
//	    shape:
//	      box: {size: [20, 1, 20]}
//	  - name: ball
//	    position: [0, 4, 0]
//	    rigidbody: {mass: 1, friction: 0.1}
//	    shape:
//	      sphere: {radius: 0.5}
//
// Mesh shapes either reference a glTF file relative to the scene file or list their
// vertices inline, with optional indices.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"rigid3d/internal/collision"
	"rigid3d/internal/components"
	"rigid3d/internal/engine"
	"rigid3d/internal/meshload"
	"rigid3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScene reports a scene file that parses but does not describe a usable scene.
var ErrInvalidScene = errors.New("invalid scene")

// Vec3 is written as a flow sequence, [x, y, z].
type Vec3 [3]float32

func (v Vec3) Vector() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (v Vec3) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range v {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(float64(c), 'g', -1, 32),
		})
	}
	return n, nil
}

type File struct {
	Name    string   `yaml:"name"`
	Objects []Object `yaml:"objects"`
}

type Object struct {
	Name      string     `yaml:"name"`
	Position  Vec3       `yaml:"position"`
	Rotation  Vec3       `yaml:"rotation"` // degrees
	Scale     float32    `yaml:"scale,omitempty"`
	Static    bool       `yaml:"static,omitempty"`
	Rigidbody *Rigidbody `yaml:"rigidbody,omitempty"`
	Shape     Shape      `yaml:"shape"`
}

type Rigidbody struct {
	Mass       float32 `yaml:"mass"`
	Friction   float32 `yaml:"friction"`
	Bounciness float32 `yaml:"bounciness,omitempty"`
	Velocity   Vec3    `yaml:"velocity"`
}

// Shape holds exactly one of its fields.
type Shape struct {
	Sphere *Sphere `yaml:"sphere,omitempty"`
	Box    *Box    `yaml:"box,omitempty"`
	Mesh   *Mesh   `yaml:"mesh,omitempty"`
}

type Sphere struct {
	Center Vec3    `yaml:"center"`
	Radius float32 `yaml:"radius"`
}

type Box struct {
	Center Vec3 `yaml:"center"`
	Size   Vec3 `yaml:"size"`
}

type Mesh struct {
	GLTF     string   `yaml:"gltf,omitempty"`
	MeshName string   `yaml:"mesh_name,omitempty"`
	Vertices []Vec3   `yaml:"vertices,omitempty"`
	Indices  []uint32 `yaml:"indices,omitempty"`
}

// Parse decodes a scene file without building it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func Marshal(f *File) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads and builds the scene at path. Mesh files resolve relative to its directory.
func Load(path string) (*engine.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	scene, err := Build(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return scene, nil
}

// Build creates the GameObjects and components described by f, then checks that every
// pair the solver can meet has a collision test.
func Build(f *File, baseDir string) (*engine.Scene, error) {
	scene := engine.NewScene(f.Name)
	for i := range f.Objects {
		o := &f.Objects[i]
		g, err := o.build(baseDir)
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, o.Name, err)
		}
		scene.AddGameObject(g)
	}
	if err := physics.Validate(scene); err != nil {
		return nil, err
	}
	return scene, nil
}

func (o *Object) build(baseDir string) (*engine.GameObject, error) {
	shape, err := o.Shape.build(baseDir)
	if err != nil {
		return nil, err
	}

	g := engine.NewGameObject(o.Name)
	scale := o.Scale
	if scale == 0 {
		scale = 1
	}
	g.Transform = engine.NewTransform(o.Position.Vector(), o.Rotation.Vector(), scale)
	g.AddComponent(components.NewCollider(shape))

	if o.Rigidbody != nil {
		rb, err := components.NewRigidbody(&g.Transform, o.Rigidbody.Mass, o.Rigidbody.Friction, o.Rigidbody.Bounciness)
		if err != nil {
			return nil, err
		}
		rb.SetVelocity(o.Rigidbody.Velocity.Vector())
		g.AddComponent(rb)
	}
	if o.Static {
		g.AddComponent(components.NewStatic())
	}
	return g, nil
}

func (s Shape) build(baseDir string) (collision.Shape, error) {
	set := 0
	for _, ok := range []bool{s.Sphere != nil, s.Box != nil, s.Mesh != nil} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: shape needs exactly one of sphere, box or mesh, got %d", ErrInvalidScene, set)
	}

	switch {
	case s.Sphere != nil:
		return collision.NewSphere(s.Sphere.Center.Vector(), s.Sphere.Radius)
	case s.Box != nil:
		return collision.NewBox(s.Box.Center.Vector(), s.Box.Size.Vector())
	}

	m := s.Mesh
	if m.GLTF != "" {
		path := m.GLTF
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return meshload.Load(path, m.MeshName)
	}
	positions := make([]rl.Vector3, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Vector()
	}
	if len(m.Indices) > 0 {
		return collision.MeshFromIndexed(positions, m.Indices)
	}
	return collision.MeshFromSoup(positions)
}
