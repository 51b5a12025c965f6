package factory

import (
	"github.com/automoto/grubmaze/archetypes"
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnGlow creates the fading ring left where a coin was picked up. It has
// no collision body.
func SpawnGlow(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	glow := archetypes.Glow.Spawn(ecs)

	d := cfg.Coin.GlowDuration
	components.Glow.SetValue(glow, components.GlowData{
		X:            x,
		Y:            y,
		Scale:        gween.New(1, cfg.Coin.GlowScale, d, ease.OutQuad),
		Alpha:        gween.New(1, 0, d, ease.OutQuad),
		CurrentScale: 1,
		CurrentAlpha: 1,
	})
	// Safety net in case the tweens never report finished.
	components.AutoDestroy.SetValue(glow, components.AutoDestroyData{
		FramesRemaining: int(d*float32(ebiten.DefaultTPS)) + 10,
	})

	return glow
}

// StartHop attaches (or restarts) the celebration hop on the hero.
func StartHop(hero *donburi.Entry) {
	legs := cfg.Transition.HopLegs
	if legs <= 0 {
		return
	}

	hop := components.HopData{
		LegsLeft:  legs,
		Rising:    true,
		Height:    cfg.Transition.HopHeight,
		LegLength: cfg.Transition.HopDuration,
	}
	hop.Tween = gween.New(0, -hop.Height, hop.LegLength, ease.OutQuad)

	if hero.HasComponent(components.Hop) {
		components.Hop.SetValue(hero, hop)
		return
	}
	hero.AddComponent(components.Hop)
	components.Hop.SetValue(hero, hop)
}
