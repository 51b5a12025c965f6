package archetypes

import (
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Hero = newArchetype(
		tags.Hero,
		components.Hero,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Tile,
		components.Object,
	)
	Floor = newArchetype(
		tags.Floor,
		components.Tile,
	)
	Coin = newArchetype(
		tags.Coin,
		components.Coin,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Glow = newArchetype(
		tags.VFX,
		components.Glow,
		components.AutoDestroy,
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

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
