package components

import (
	"slices"

	"github.com/yohamta/donburi"
)

// SceneLayer is one named draw layer.
type SceneLayer struct {
	Name     string
	Hashed   bool
	Visible  bool
	Opacity  float64
	Entities []donburi.Entity
}

// SceneData is the ordered draw list of the current level.
type SceneData struct {
	Layers []SceneLayer
}

// Layer returns the named layer, or nil.
func (s *SceneData) Layer(name string) *SceneLayer {
	for i := range s.Layers {
		if s.Layers[i].Name == name {
			return &s.Layers[i]
		}
	}
	return nil
}

// LayerNames lists layer names in draw order.
func (s *SceneData) LayerNames() []string {
	names := make([]string, len(s.Layers))
	for i, l := range s.Layers {
		names[i] = l.Name
	}
	return names
}

// Remove drops entity from every layer.
func (s *SceneData) Remove(entity donburi.Entity) {
	for i := range s.Layers {
		s.Layers[i].Entities = slices.DeleteFunc(s.Layers[i].Entities, func(e donburi.Entity) bool {
			return e == entity
		})
	}
}

var Scene = donburi.NewComponentType[SceneData]()
