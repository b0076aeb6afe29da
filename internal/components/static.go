package components

import "rigid3d/internal/engine"

// Static marks an object the collision response never moves. It still takes part in
// collision tests as a target.
type Static struct {
	engine.BaseComponent
}

func NewStatic() *Static {
	return &Static{}
}
