package engine

import "sync/atomic"

var lastUID atomic.Uint32

type GameObject struct {
	UID        uint32 // stable for the object's lifetime, never 0
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        lastUID.Add(1),
		Name:       name,
		Active:     true,
		Transform:  DefaultTransform(),
		components: make([]Component, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value of T.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func HasComponent[T Component](g *GameObject) bool {
	for _, c := range g.components {
		if _, ok := c.(T); ok {
			return true
		}
	}
	return false
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
