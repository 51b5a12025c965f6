package factory

import (
	"github.com/automoto/grubmaze/archetypes"
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/maze"
	"github.com/automoto/grubmaze/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHero spawns the hero with its body centred on pos.
func CreateHero(ecs *ecs.ECS, pos maze.Position) *donburi.Entry {
	hero := archetypes.Hero.Spawn(ecs)

	w, h := cfg.Hero.CollisionWidth, cfg.Hero.CollisionHeight
	obj := resolv.NewObject(pos.X-w/2, pos.Y-h/2, w, h, tags.ResolvHero)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = hero

	components.Object.SetValue(hero, components.ObjectData{Object: obj})
	components.Hero.SetValue(hero, components.HeroData{})

	addToSpace(ecs, obj)

	return hero
}

// PlaceHero moves an existing hero body so it is centred on pos.
func PlaceHero(hero *donburi.Entry, pos maze.Position) {
	obj := components.Object.Get(hero)
	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	if obj.Space != nil {
		obj.Update()
	}
}

// HeroCenter returns the world position at the centre of the hero body.
func HeroCenter(hero *donburi.Entry) maze.Position {
	obj := components.Object.Get(hero)
	return maze.Position{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}
