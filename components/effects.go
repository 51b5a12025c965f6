package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HopData drives the hero's celebration hop. Each leg is a single tween,
// alternating up and down.
type HopData struct {
	Tween     *gween.Tween
	LegsLeft  int
	Rising    bool
	Height    float32
	LegLength float32 // seconds
}

var Hop = donburi.NewComponentType[HopData]()

// GlowData is the expanding fade left behind by a collected coin.
type GlowData struct {
	X, Y float64

	Scale *gween.Tween
	Alpha *gween.Tween

	CurrentScale float32
	CurrentAlpha float32
}

var Glow = donburi.NewComponentType[GlowData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
