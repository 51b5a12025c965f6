package components

import (
	"github.com/automoto/grubmaze/session"
	"github.com/yohamta/donburi"
)

// LevelData links the ECS world to the run it presents.
type LevelData struct {
	Session *session.Session

	// Generation of the session the tile, coin and hero entities were
	// built from. A mismatch means the level changed and must be rebuilt.
	BuiltGeneration uint64
}

var Level = donburi.NewComponentType[LevelData]()
