package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type HeroData struct {
	// Offset is a purely visual displacement from the body, used by the
	// celebration hop.
	Offset dmath.Vec2

	Moving bool
	InWall bool
}

var Hero = donburi.NewComponentType[HeroData]()
