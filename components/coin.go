package components

import "github.com/yohamta/donburi"

type CoinData struct {
	ID        int
	Collected bool
}

var Coin = donburi.NewComponentType[CoinData]()
