package components

import (
	cfg "github.com/automoto/grubmaze/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Focused is set by a click inside the window and cleared when the
	// window loses focus. Movement keys are ignored while it is false.
	Focused bool
}

var Input = donburi.NewComponentType[InputData]()
