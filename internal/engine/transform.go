package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Transform places an object in the world: position, Euler rotation in degrees and a
// uniform scale. Matrices are derived on demand from these three values.
type Transform struct {
	Position rl.Vector3
	Scale    float32
	rotation rl.Vector3 // Euler angles in degrees
}

func NewTransform(position, rotation rl.Vector3, scale float32) Transform {
	return Transform{
		Position: position,
		Scale:    scale,
		rotation: rotation,
	}
}

func TransformFromPosition(position rl.Vector3) Transform {
	return NewTransform(position, rl.Vector3{}, 1)
}

func DefaultTransform() Transform {
	return NewTransform(rl.Vector3{}, rl.Vector3{}, 1)
}

func (t *Transform) Rotation() rl.Vector3 {
	return t.rotation
}

func (t *Transform) SetRotation(rotation rl.Vector3) {
	t.rotation = rotation
}

// Rotate adds the given Euler angles (degrees) to the current rotation.
func (t *Transform) Rotate(rotation rl.Vector3) {
	t.rotation = rl.Vector3Add(t.rotation, rotation)
}

func (t *Transform) RotateX(degrees float32) { t.rotation.X += degrees }
func (t *Transform) RotateY(degrees float32) { t.rotation.Y += degrees }
func (t *Transform) RotateZ(degrees float32) { t.rotation.Z += degrees }

// uniformScale treats an unset scale as 1 so a zero-value Transform is usable.
func (t *Transform) uniformScale() float32 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

// RotationMatrix applies X, then Y, then Z (same convention as the renderer).
func (t *Transform) RotationMatrix() rl.Matrix {
	rotX := rl.MatrixRotateX(t.rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.rotation.Z * rl.Deg2rad)
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// Matrix is the model matrix: scale, then rotation, then translation.
func (t *Transform) Matrix() rl.Matrix {
	s := t.uniformScale()
	scaleMatrix := rl.MatrixScale(s, s, s)
	transMatrix := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)
	return rl.MatrixMultiply(rl.MatrixMultiply(scaleMatrix, t.RotationMatrix()), transMatrix)
}

// TransformPoint maps a point from object space to world space.
func (t *Transform) TransformPoint(p rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(p, t.Matrix())
}

// TransformDirection rotates a direction into world space without scaling or translating it.
func (t *Transform) TransformDirection(d rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(d, t.RotationMatrix())
}

// ScaleLength scales an object-space length (radius, extent) into world units.
func (t *Transform) ScaleLength(l float32) float32 {
	return l * t.uniformScale()
}

func (t *Transform) Right() rl.Vector3 {
	return t.TransformDirection(rl.Vector3{X: 1})
}

func (t *Transform) Up() rl.Vector3 {
	return t.TransformDirection(rl.Vector3{Y: 1})
}

func (t *Transform) Forward() rl.Vector3 {
	return t.TransformDirection(rl.Vector3{Z: 1})
}
