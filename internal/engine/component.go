package engine

// Component is anything attached to a GameObject. Components are plain data records;
// the physics pipeline reads and writes them, nothing schedules them.
type Component interface {
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
