package archetypes

import (
	"github.com/automoto/glowswarm/components"
	"github.com/automoto/glowswarm/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Health,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Health,
		components.Object,
	)
	EndScreenBox = newArchetype(
		tags.EndScreen,
		components.Overlay,
		components.Fade,
	)
	EndScreenText = newArchetype(
		tags.EndScreen,
		components.Label,
		components.Fade,
	)
	Input = newArchetype(
		components.Input,
	)
	Menu = newArchetype(
		components.Menu,
	)
	Splash = newArchetype(
		components.Splash,
		components.Fade,
	)
	Settings = newArchetype(
		components.Settings,
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

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return world.Entry(world.Create(append(a.components, cs...)...))
}
