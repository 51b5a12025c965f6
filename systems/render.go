package systems

import (
	"image/color"

	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/systems/factory"
	"github.com/automoto/grubmaze/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawCoins renders every coin that has not been picked up.
func DrawCoins(ecs *ecs.ECS, screen *ebiten.Image) {
	r := cfg.Coin.DrawRadius

	tags.Coin.Each(ecs.World, func(e *donburi.Entry) {
		if components.Coin.Get(e).Collected {
			return
		}
		obj := components.Object.Get(e)
		cx := float32(obj.X + obj.W/2)
		cy := float32(obj.Y + obj.H/2)

		vector.FillCircle(screen, cx, cy, r, cfg.Coin.RimColor, true)
		vector.FillCircle(screen, cx, cy, r-3, cfg.Coin.Color, true)
	})
}

// DrawGlows renders the fading rings left by collected coins.
func DrawGlows(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Glow.Each(ecs.World, func(e *donburi.Entry) {
		glow := components.Glow.Get(e)
		if glow.CurrentAlpha <= 0 {
			return
		}
		r := cfg.Coin.DrawRadius * glow.CurrentScale
		c := fade(cfg.Coin.Color, glow.CurrentAlpha)
		vector.FillCircle(screen, float32(glow.X), float32(glow.Y), r, c, true)
	})
}

// DrawHero renders the grub, shifted by any hop offset.
func DrawHero(ecs *ecs.ECS, screen *ebiten.Image) {
	hero, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}
	data := components.Hero.Get(hero)
	center := factory.HeroCenter(hero)

	size := float32(cfg.Hero.DrawSize)
	x := float32(center.X+data.Offset.X) - size/2
	y := float32(center.Y+data.Offset.Y) - size/2

	// Body segments
	seg := size / 3
	for i := 0; i < 3; i++ {
		sy := y + float32(i)*seg
		inset := float32(i) * 2
		vector.FillRect(screen, x+inset, sy+1, size-inset*2, seg-2, cfg.Hero.Color, true)
	}

	// Eyes
	eyeY := y + seg/2
	vector.FillCircle(screen, x+size*0.33, eyeY, 2.5, cfg.Hero.EyeColor, true)
	vector.FillCircle(screen, x+size*0.67, eyeY, 2.5, cfg.Hero.EyeColor, true)
}

// fade scales a colour by alpha. RGBA is premultiplied so every channel
// goes down together.
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
