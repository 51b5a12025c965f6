package factory

import (
	"github.com/automoto/grubmaze/archetypes"
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/automoto/grubmaze/session"
	"github.com/automoto/grubmaze/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCoin spawns the overlap body for a session coin.
func CreateCoin(ecs *ecs.ECS, coin session.Coin) *donburi.Entry {
	entry := archetypes.Coin.Spawn(ecs)

	s := cfg.Coin.CollisionSize
	obj := resolv.NewObject(coin.Pos.X-s/2, coin.Pos.Y-s/2, s, s, tags.ResolvCoin)
	obj.SetShape(resolv.NewRectangle(0, 0, s, s))
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Coin.SetValue(entry, components.CoinData{ID: coin.ID})

	addToSpace(ecs, obj)

	return entry
}
