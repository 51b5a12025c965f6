package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/grubmaze/session"
	"github.com/automoto/grubmaze/systems"
	"github.com/automoto/grubmaze/systems/factory"
	"github.com/automoto/grubmaze/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/grubmaze/config"
)

// MazeScene runs a session: the maze, the hero, the coins and the HUD.
type MazeScene struct {
	ecs     *ecs.ECS
	session *session.Session
	pauseUI *ui.PauseUI
	once    sync.Once

	shouldResume  bool
	shouldRestart bool
	titleTotal    int
}

func NewMazeScene(sess *session.Session) *MazeScene {
	return &MazeScene{session: sess}
}

func (ms *MazeScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()

	if systems.IsPaused(ms.ecs) {
		ms.pauseUI.Update()
		ms.handlePauseChoice()
	}

	ms.syncWindowTitle()
}

func (ms *MazeScene) handlePauseChoice() {
	switch {
	case ms.shouldRestart:
		systems.RestartLevel(ms.ecs)
		systems.SetPaused(ms.ecs, false)
	case ms.shouldResume:
		systems.SetPaused(ms.ecs, false)
	}
	ms.shouldRestart = false
	ms.shouldResume = false
}

// syncWindowTitle keeps the window title in step with the coin target.
func (ms *MazeScene) syncWindowTitle() {
	total := ms.session.Stats().Total
	if total == ms.titleTotal {
		return
	}
	ms.titleTotal = total
	ebiten.SetWindowTitle(systems.TitleText(total))
}

func (ms *MazeScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)

	if systems.IsPaused(ms.ecs) {
		ms.pauseUI.UI.Draw(screen)
	}
}

func (ms *MazeScene) configure() {
	pauseUI, err := ui.NewPauseUI(
		func() { ms.shouldResume = true },
		func() { ms.shouldRestart = true },
	)
	if err != nil {
		panic("failed to build pause menu: " + err.Error())
	}
	ms.pauseUI = pauseUI

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)

	// Gameplay systems freeze while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHero))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSession))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeferred))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))

	// Renderers, back to front
	ecs.AddRenderer(cfg.Default, systems.DrawFloors)
	ecs.AddRenderer(cfg.Default, systems.DrawDebugPaths)
	ecs.AddRenderer(cfg.Default, systems.DrawCoins)
	ecs.AddRenderer(cfg.Default, systems.DrawGlows)
	ecs.AddRenderer(cfg.Default, systems.DrawHero)
	ecs.AddRenderer(cfg.Default, systems.DrawWalls)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawBanner)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ms.ecs = ecs

	factory.CreateLevel(ms.ecs, ms.session)
	log.Printf("Maze scene ready: level %d, seed %d", ms.session.Stats().Level, ms.session.Seed())
}
