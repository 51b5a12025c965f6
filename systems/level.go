package systems

import (
	"image/color"

	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawFloors paints the grass under everything else.
func DrawFloors(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTiles(ecs, screen, tags.Floor, cfg.Maze.FloorColors)
}

// DrawWalls paints the bushes. They go on top of the hero and coins.
func DrawWalls(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTiles(ecs, screen, tags.Wall, cfg.Maze.WallColors)
}

func drawTiles(ecs *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag], shades [2]color.RGBA) {
	level, ok := currentLevel(ecs)
	if !ok {
		return
	}
	size := float32(level.Session.Config().TileSize)

	tag.Each(ecs.World, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		x := float32(tile.Cell.X) * size
		y := float32(tile.Cell.Y) * size
		vector.FillRect(screen, x, y, size, size, shades[tile.Variant%2], false)
	})
}
