package systems

import (
	"fmt"

	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/fonts"
	"github.com/automoto/grubmaze/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the title, the instructions and the score line.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	stats := level.Session.Stats()
	width := screen.Bounds().Dx()

	drawCentered(screen, TitleText(stats.Total), fonts.Title.Get(), width, cfg.HUD.TitleY)
	drawCentered(screen, cfg.HUD.Instructions, fonts.Regular.Get(), width, cfg.HUD.InstructionsY)

	// Score hangs from its top-right corner
	score := ScoreText(stats)
	face := fonts.Score.Get()
	bounds := text.BoundString(face, score) //nolint:staticcheck // TODO: migrate to text/v2
	x := int(cfg.HUD.ScoreRight) - bounds.Dx()
	y := int(cfg.HUD.ScoreY) - bounds.Min.Y
	text.Draw(screen, score, face, x, y, cfg.HUD.TextColor)
}

// TitleText is the headline naming how many coins this level needs.
func TitleText(total int) string {
	return fmt.Sprintf(cfg.HUD.TitleFormat, total)
}

// ScoreText formats the score line, e.g. "Level 2 | Score: 400 (0/5)".
func ScoreText(s session.Stats) string {
	return fmt.Sprintf("Level %d | Score: %d (%d/%d)", s.Level, s.Score, s.Collected, s.Total)
}

// drawCentered draws msg horizontally centred with its vertical middle at y.
func drawCentered(screen *ebiten.Image, msg string, face font.Face, width int, y float64) {
	bounds := text.BoundString(face, msg) //nolint:staticcheck // TODO: migrate to text/v2
	x := (width - bounds.Dx()) / 2
	baseline := int(y) - bounds.Min.Y - bounds.Dy()/2
	text.Draw(screen, msg, face, x, baseline, cfg.HUD.TextColor)
}
