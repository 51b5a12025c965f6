package components

import (
	"github.com/automoto/grubmaze/maze"
	"github.com/yohamta/donburi"
)

type TileData struct {
	Cell    maze.Point
	Variant int // picks one of the two shades
}

var Tile = donburi.NewComponentType[TileData]()
