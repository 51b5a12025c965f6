package systems

import (
	"fmt"
	"log"

	"github.com/automoto/grubmaze/components"
	"github.com/automoto/grubmaze/systems/factory"
	"github.com/automoto/grubmaze/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession applies the overlaps reported this tick. When they finish
// the level the world is rebuilt from the new maze, the hero hops and the
// level banner goes up until a deferred task takes it down.
func UpdateSession(ecs *ecs.ECS) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	sess := level.Session

	res := sess.Update()
	if !res.Advanced() && level.BuiltGeneration == sess.Generation() {
		return
	}

	hero := factory.BuildLevel(ecs, sess)
	if !res.Advanced() {
		return
	}

	factory.StartHop(hero)

	gen := sess.Generation()
	ShowBanner(ecs, fmt.Sprintf("Level %d!", res.EnteredLevel), gen, func(e *ecs.ECS) {
		sess.FinishTransition(gen)
	})
}

// RestartLevel throws the run back to level 1 on a fresh maze.
func RestartLevel(ecs *ecs.ECS) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}

	level.Session.Restart()
	HideBanner(ecs)

	hero := factory.BuildLevel(ecs, level.Session)
	if hero.HasComponent(components.Hop) {
		hero.RemoveComponent(components.Hop)
	}
	components.Hero.Get(hero).Offset.Y = 0

	log.Printf("New maze, seed %d generation %d", level.Session.Seed(), level.Session.Generation())
}

func currentLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	if level.Session == nil {
		return nil, false
	}
	return level, true
}

// currentGeneration is the session generation, or 0 without a level.
func currentGeneration(ecs *ecs.ECS) uint64 {
	level, ok := currentLevel(ecs)
	if !ok {
		return 0
	}
	return level.Session.Generation()
}

// liveCoinCount counts coin entities still waiting to be picked up.
func liveCoinCount(ecs *ecs.ECS) int {
	n := 0
	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Coin.Get(e).Collected {
			n++
		}
	})
	return n
}
