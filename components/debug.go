package components

import "github.com/yohamta/donburi"

// DebugData is the singleton debug overlay switch.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
