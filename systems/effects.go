package systems

import (
	"github.com/automoto/grubmaze/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the hop and glow tweens and removes expired effects
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(ebiten.DefaultTPS))
	updateHops(ecs, dt)
	updateGlows(ecs, dt)
	updateAutoDestroy(ecs)
}

// updateHops plays each hop leg in turn, flipping direction between legs.
func updateHops(ecs *ecs.ECS, dt float32) {
	var finished []*donburi.Entry

	components.Hop.Each(ecs.World, func(e *donburi.Entry) {
		hop := components.Hop.Get(e)
		hero := components.Hero.Get(e)

		offset, done := hop.Tween.Update(dt)
		hero.Offset.Y = float64(offset)
		if !done {
			return
		}

		hop.LegsLeft--
		if hop.LegsLeft <= 0 {
			hero.Offset.Y = 0
			finished = append(finished, e)
			return
		}

		hop.Rising = !hop.Rising
		if hop.Rising {
			hop.Tween = gween.New(0, -hop.Height, hop.LegLength, ease.OutQuad)
		} else {
			hop.Tween = gween.New(-hop.Height, 0, hop.LegLength, ease.InQuad)
		}
	})

	for _, e := range finished {
		e.RemoveComponent(components.Hop)
	}
}

func updateGlows(ecs *ecs.ECS, dt float32) {
	var toDestroy []*donburi.Entry

	components.Glow.Each(ecs.World, func(e *donburi.Entry) {
		glow := components.Glow.Get(e)

		scale, scaleDone := glow.Scale.Update(dt)
		alpha, alphaDone := glow.Alpha.Update(dt)
		glow.CurrentScale = scale
		glow.CurrentAlpha = alpha

		if scaleDone && alphaDone {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		if ad.FramesRemaining > 0 {
			ad.FramesRemaining--
			if ad.FramesRemaining <= 0 {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		// Remove from physics space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}
