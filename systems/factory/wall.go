package factory

import (
	"github.com/automoto/grubmaze/archetypes"
	"github.com/automoto/grubmaze/components"
	"github.com/automoto/grubmaze/maze"
	"github.com/automoto/grubmaze/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid tile exactly one cell in size.
func CreateWall(ecs *ecs.ECS, cell maze.Point, tileSize float64, variant int) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	x, y := float64(cell.X)*tileSize, float64(cell.Y)*tileSize
	obj := resolv.NewObject(x, y, tileSize, tileSize, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, tileSize, tileSize))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	components.Tile.SetValue(wall, components.TileData{
		Cell:    cell,
		Variant: variant,
	})

	addToSpace(ecs, obj)

	return wall
}

// CreateFloor creates a walkable tile. Floors have no collision body.
func CreateFloor(ecs *ecs.ECS, cell maze.Point, variant int) *donburi.Entry {
	floor := archetypes.Floor.Spawn(ecs)
	components.Tile.SetValue(floor, components.TileData{
		Cell:    cell,
		Variant: variant,
	})
	return floor
}

// TileVariant picks a shade for a cell. It is a pure function of the cell
// and level so drawing never consumes the maze rng.
func TileVariant(cell maze.Point, level int) int {
	v := (cell.X*7 + cell.Y*13 + level) % 2
	if v < 0 {
		v = -v
	}
	return v
}
