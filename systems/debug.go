package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/fonts"
	"github.com/automoto/grubmaze/maze"
	"github.com/automoto/grubmaze/shared/gamemath"
	"github.com/automoto/grubmaze/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug flips the debug overlay on F1.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(ecs)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebugPaths tints every walkable cell. It sits under the hero.
func DrawDebugPaths(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	size := float32(level.Session.Config().TileSize)

	tags.Floor.Each(ecs.World, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		x := float32(tile.Cell.X)*size + 1
		y := float32(tile.Cell.Y)*size + 1
		vector.FillRect(screen, x, y, size-2, size-2, cfg.Debug.PathColor, false)
	})
}

// DrawDebug outlines every collision body when the overlay is on, and
// always prints the hero readout.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateDebug(ecs).Enabled {
		drawCollisionOutlines(ecs, screen)
	}

	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	hero, ok := tags.Hero.First(ecs.World)
	if !ok {
		return
	}

	h := level.Session.Hero()
	data := components.Hero.Get(hero)
	cell := maze.CellAt(h.Pos, level.Session.Config().TileSize)
	line := DebugReadout(data.Moving, gamemath.DirectionName(h.Vel.X, h.Vel.Y), h.Pos, cell, data.InWall)

	face := fonts.Small.Get()
	baseline := int(cfg.HUD.DebugY) + face.Metrics().Ascent.Round()
	text.Draw(screen, line, face, int(cfg.HUD.DebugX), baseline, cfg.HUD.TextColor)

	if GetOrCreateDebug(ecs).Enabled {
		sess := level.Session
		extra := fmt.Sprintf("Seed %d | Phase %s | Generation %d | Coins left %d",
			sess.Seed(), sess.Phase(), sess.Generation(), liveCoinCount(ecs))
		text.Draw(screen, extra, face, int(cfg.HUD.DebugX), baseline+face.Metrics().Height.Round(), cfg.HUD.TextColor)
	}
}

func drawCollisionOutlines(ecs *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		var c color.RGBA
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = cfg.Debug.WallLineColor
		case obj.HasTags(tags.ResolvHero):
			c = cfg.Debug.HeroLineColor
		case obj.HasTags(tags.ResolvCoin):
			c = cfg.Debug.CoinLineColor
		default:
			c = cfg.Magenta
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}

// DebugReadout is the one-line hero status shown in the top-left corner.
func DebugReadout(moving bool, direction string, pos maze.Position, cell maze.Point, inWall bool) string {
	x, y := math.Round(pos.X), math.Round(pos.Y)
	if moving {
		return fmt.Sprintf("Debug: Moving %s - Hero at (%.0f, %.0f) - Grid: (%d, %d) - In Wall: %t",
			direction, x, y, cell.X, cell.Y, inWall)
	}
	return fmt.Sprintf("Debug: Idle - Hero at (%.0f, %.0f) - Grid: (%d, %d) - In Wall: %t - No keys pressed",
		x, y, cell.X, cell.Y, inWall)
}

// GetOrCreateDebug returns the singleton Debug component, creating it from
// the configured default if needed.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Enabled})
	}
	return components.Debug.Get(entry)
}
