package systems

import (
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/session"
	"github.com/automoto/grubmaze/shared/gamemath"
	"github.com/automoto/grubmaze/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHero turns this frame's direction keys into the hero's velocity.
// Nothing moves while the game does not have input focus.
func UpdateHero(ecs *ecs.ECS) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)

	var vx, vy float64
	if input.Focused {
		vx, vy = gamemath.DirectionalVelocity(
			GetAction(input, cfg.ActionMoveLeft).Pressed,
			GetAction(input, cfg.ActionMoveRight).Pressed,
			GetAction(input, cfg.ActionMoveUp).Pressed,
			GetAction(input, cfg.ActionMoveDown).Pressed,
			cfg.Hero.Speed,
		)
	}
	level.Session.SetVelocity(session.Velocity{X: vx, Y: vy})

	if hero, ok := tags.Hero.First(ecs.World); ok {
		components.Hero.Get(hero).Moving = vx != 0 || vy != 0
	}
}
