package tags

import "github.com/yohamta/donburi"

var (
	Hero  = donburi.NewTag().SetName("Hero")
	Wall  = donburi.NewTag().SetName("Wall")
	Floor = donburi.NewTag().SetName("Floor")
	Coin  = donburi.NewTag().SetName("Coin")
	VFX   = donburi.NewTag().SetName("VFX")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvHero  = "Hero"
	ResolvCoin  = "coin"
)
