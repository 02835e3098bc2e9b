package archetypes

import (
	"github.com/automoto/tilerush/components"
	"github.com/automoto/tilerush/tags"
	"github.com/yohamta/donburi"
)

var (
	Tile = newArchetype(
		tags.Tile,
		components.Tile,
		components.Object,
	)
	Session = newArchetype(
		tags.Session,
		components.Session,
	)
	Board = newArchetype(
		tags.Board,
		components.Board,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components[:len(a.components):len(a.components)], cs...)...))
}
