// Package meshload builds collision meshes from glTF assets.
package meshload

import (
	"fmt"

	"rigid3d/internal/collision"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Load opens a .gltf or .glb file and builds a mesh from it. See FromDocument.
func Load(path, meshName string) (*collision.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshload: %s: %w", path, err)
	}
	m, err := FromDocument(doc, meshName)
	if err != nil {
		return nil, fmt.Errorf("meshload: %s: %w", path, err)
	}
	return m, nil
}

// FromDocument collects the triangles of every triangle-list primitive into one mesh, in
// mesh space (node transforms are ignored). An empty meshName takes all meshes. Primitives
// without indices are read as a triangle soup. Point, line and strip primitives are skipped.
func FromDocument(doc *gltf.Document, meshName string) (*collision.Mesh, error) {
	var tris []collision.Triangle
	found := meshName == ""

	for _, mesh := range doc.Meshes {
		if meshName != "" && mesh.Name != meshName {
			continue
		}
		found = true
		for i, p := range mesh.Primitives {
			if p.Mode != gltf.PrimitiveTriangles {
				continue
			}
			m, err := primitive(doc, p)
			if err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", mesh.Name, i, err)
			}
			tris = append(tris, m.Triangles()...)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no mesh named %q", collision.ErrInvalidMesh, meshName)
	}
	return collision.NewMesh(tris)
}

func primitive(doc *gltf.Document, p *gltf.Primitive) (*collision.Mesh, error) {
	posIdx, ok := p.Attributes[gltf.POSITION]
	if !ok {
		return nil, fmt.Errorf("%w: primitive has no POSITION attribute", collision.ErrInvalidMesh)
	}
	raw, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, err
	}
	positions := make([]rl.Vector3, len(raw))
	for i, v := range raw {
		positions[i] = rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
	}

	if p.Indices == nil {
		return collision.MeshFromSoup(positions)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
	if err != nil {
		return nil, err
	}
	return collision.MeshFromIndexed(positions, indices)
}
