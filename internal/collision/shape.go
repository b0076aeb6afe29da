// Package collision holds the collision shapes and the narrow phase that tests one pair of
// shapes at given transforms.
package collision

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrDegenerate reports geometry with zero area, radius or extent.
	ErrDegenerate = errors.New("degenerate geometry")
	// ErrInvalidMesh reports malformed vertex or index data.
	ErrInvalidMesh = errors.New("invalid mesh data")
)

type Kind uint8

const (
	KindMesh Kind = iota
	KindSphere
	KindBox
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Shape is a closed set of variants: *Mesh, *Sphere and *Box. New shapes extend the
// dispatch table in narrowphase.go.
type Shape interface {
	Kind() Kind
	shape()
}

// Mesh is an immutable triangle list in object space.
type Mesh struct {
	triangles []Triangle
}

func NewMesh(triangles []Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%w: mesh has no triangles", ErrInvalidMesh)
	}
	tris := make([]Triangle, len(triangles))
	copy(tris, triangles)
	return &Mesh{triangles: tris}, nil
}

// MeshFromIndexed builds a mesh from an index buffer, three indices per triangle.
func MeshFromIndexed(positions []rl.Vector3, indices []uint32) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMesh, len(indices))
	}
	tris := make([]Triangle, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		var verts [3]rl.Vector3
		for k := 0; k < 3; k++ {
			idx := indices[i+k]
			if int(idx) >= len(positions) {
				return nil, fmt.Errorf("%w: index %d out of range (%d vertices)", ErrInvalidMesh, idx, len(positions))
			}
			verts[k] = positions[idx]
		}
		tri, err := triangleFromWinding(verts)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i/3, err)
		}
		tris = append(tris, tri)
	}
	return NewMesh(tris)
}

// MeshFromSoup builds a mesh from an unindexed vertex list, every 3 vertices = 1 triangle.
func MeshFromSoup(positions []rl.Vector3) (*Mesh, error) {
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("%w: %d vertices is not a multiple of 3", ErrInvalidMesh, len(positions))
	}
	tris := make([]Triangle, 0, len(positions)/3)
	for i := 0; i < len(positions); i += 3 {
		tri, err := triangleFromWinding([3]rl.Vector3{positions[i], positions[i+1], positions[i+2]})
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i/3, err)
		}
		tris = append(tris, tri)
	}
	return NewMesh(tris)
}

func triangleFromWinding(v [3]rl.Vector3) (Triangle, error) {
	normal := rl.Vector3CrossProduct(rl.Vector3Subtract(v[1], v[0]), rl.Vector3Subtract(v[2], v[0]))
	return NewTriangle(v, normal)
}

func (m *Mesh) Kind() Kind { return KindMesh }
func (*Mesh) shape()       {}

// Triangles returns the object-space triangles. The slice must not be modified.
func (m *Mesh) Triangles() []Triangle {
	return m.triangles
}

// Sphere is a sphere offset from the owning object's origin.
type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func NewSphere(center rl.Vector3, radius float32) (*Sphere, error) {
	if !(radius > 0) || math32.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: sphere radius %v", ErrDegenerate, radius)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

func (s *Sphere) Kind() Kind { return KindSphere }
func (*Sphere) shape()       {}

// Box is an axis-aligned box offset from the owning object's origin. Size is the full extent.
type Box struct {
	Center rl.Vector3
	Size   rl.Vector3
}

func NewBox(center, size rl.Vector3) (*Box, error) {
	if !(size.X > 0 && size.Y > 0 && size.Z > 0) {
		return nil, fmt.Errorf("%w: box size %v", ErrDegenerate, size)
	}
	return &Box{Center: center, Size: size}, nil
}

func (b *Box) Kind() Kind { return KindBox }
func (*Box) shape()       {}

func (b *Box) HalfExtents() rl.Vector3 {
	return rl.Vector3Scale(b.Size, 0.5)
}
