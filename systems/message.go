package systems

import (
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// ShowBanner puts msg up in the middle of the screen and schedules it to
// come down after the configured time. then, if set, runs in the same task.
// A banner already showing is replaced and its task cancelled.
func ShowBanner(ecs *ecs.ECS, msg string, gen uint64, then func(*ecs.ECS)) {
	banner := getOrCreateBanner(ecs)
	if banner.TaskID != 0 {
		Cancel(ecs, banner.TaskID)
	}

	banner.Text = msg
	banner.Visible = true
	banner.TaskID = Schedule(ecs, cfg.Transition.BannerFrames, gen, func(e *ecs.ECS) {
		b := getOrCreateBanner(e)
		b.Visible = false
		b.TaskID = 0
		if then != nil {
			then(e)
		}
	})
}

// HideBanner takes the banner down now and cancels its pending task.
func HideBanner(ecs *ecs.ECS) {
	banner := getOrCreateBanner(ecs)
	if banner.TaskID != 0 {
		Cancel(ecs, banner.TaskID)
	}
	banner.Visible = false
	banner.TaskID = 0
}

// DrawBanner renders the level banner centred on the screen
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	banner := getOrCreateBanner(ecs)
	if !banner.Visible || banner.Text == "" {
		return
	}

	face := fonts.Banner.Get()
	bounds := text.BoundString(face, banner.Text) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := int(cfg.HUD.BannerY) + bounds.Dy()/2

	text.Draw(screen, banner.Text, face, x, y, cfg.HUD.TextColor)
}

func getOrCreateBanner(ecs *ecs.ECS) *components.BannerData {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Banner))
	}
	return components.Banner.Get(entry)
}
