package factory

import (
	"log"

	"github.com/automoto/grubmaze/archetypes"
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/maze"
	"github.com/automoto/grubmaze/session"
	"github.com/automoto/grubmaze/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level singleton for sess and builds its entities.
func CreateLevel(ecs *ecs.ECS, sess *session.Session) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Session: sess})

	BuildLevel(ecs, sess)

	return level
}

// BuildLevel replaces the collision space, tiles and coins with the
// session's current level and puts the hero on its start. The hero entity
// is reused if it already exists.
func BuildLevel(ecs *ecs.ECS, sess *session.Session) *donburi.Entry {
	clearLevel(ecs)

	g := sess.Grid()
	tile := sess.Config().TileSize
	if cfg.Debug.Enabled {
		log.Printf("Level %d maze (generation %d):\n%s", sess.Stats().Level, sess.Generation(), g)
	}
	spaceEntry := CreateSpace(ecs,
		int(float64(g.Width())*tile),
		int(float64(g.Height())*tile),
		cfg.Maze.SpaceCellSize, cfg.Maze.SpaceCellSize,
	)
	space := components.Space.Get(spaceEntry)

	level := sess.Stats().Level
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := maze.Point{X: x, Y: y}
			variant := TileVariant(cell, level)
			if g.Get(x, y) == maze.Wall {
				CreateWall(ecs, cell, tile, variant)
			} else {
				CreateFloor(ecs, cell, variant)
			}
		}
	}

	for _, c := range sess.Coins() {
		CreateCoin(ecs, c)
	}

	hero, ok := tags.Hero.First(ecs.World)
	if !ok {
		hero = CreateHero(ecs, sess.Start())
	} else {
		space.Add(components.Object.Get(hero).Object)
		PlaceHero(hero, sess.Start())
	}
	sess.SetHero(session.Hero{Pos: sess.Start()})

	if entry, ok := components.Level.First(ecs.World); ok {
		components.Level.Get(entry).BuiltGeneration = sess.Generation()
	}

	return hero
}

// clearLevel removes everything BuildLevel creates except the hero.
func clearLevel(ecs *ecs.ECS) {
	var stale []*donburi.Entry
	collect := func(e *donburi.Entry) { stale = append(stale, e) }

	tags.Wall.Each(ecs.World, collect)
	tags.Floor.Each(ecs.World, collect)
	tags.Coin.Each(ecs.World, collect)
	components.Space.Each(ecs.World, collect)

	for _, e := range stale {
		e.Remove()
	}
}
