package engine

// Scene owns the object list. Order of GameObjects is stable; the physics pipeline
// addresses objects by index within a tick and by UID across ticks.
type Scene struct {
	Name        string
	GameObjects []*GameObject
	byUID       map[uint32]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		byUID:       make(map[uint32]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byUID[g.UID] = g
}

func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			delete(s.byUID, g.UID)
			g.Scene = nil
			return
		}
	}
}

func (s *Scene) FindByUID(uid uint32) *GameObject {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) Len() int {
	return len(s.GameObjects)
}
