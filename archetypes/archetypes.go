package archetypes

import (
	"github.com/automoto/flapper/components"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
)

var (
	Game = newArchetype(
		components.Game,
		components.Input,
	)
	Space = newArchetype(
		components.Space,
	)
	Bird = newArchetype(
		tags.Bird,
		components.Bird,
		components.Body,
		components.Object,
		components.Tween,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Ground,
		components.Body,
		components.Object,
	)
	Ceil = newArchetype(
		tags.Ceil,
		components.Body,
		components.Object,
	)
	Pipe = newArchetype(
		tags.Pipe,
		components.Pipe,
		components.Body,
		components.Object,
	)
	Gate = newArchetype(
		tags.Gate,
		components.Gate,
		components.Body,
		components.Object,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
	Flash = newArchetype(
		tags.Flash,
		components.Flash,
		components.Tween,
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
	return w.Entry(w.Create(append(a.components, cs...)...))
}
