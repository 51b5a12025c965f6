package systems

import (
	"github.com/automoto/grubmaze/components"
	cfg "github.com/automoto/grubmaze/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable key snapshot to avoid allocations
var keyState = make(map[ebiten.Key]bool)

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdateHero in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	for _, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			keyState[key] = ebiten.IsKeyPressed(key)
		}
	}

	applyInput(input, keyState,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		ebiten.IsFocused(),
	)
}

// applyInput swaps the frame buffers and samples every binding from keys.
// A click grants focus, losing the window takes it away.
func applyInput(input *components.InputData, keys map[ebiten.Key]bool, clicked, windowFocused bool) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if clicked {
		input.Focused = true
	}
	if !windowFocused {
		input.Focused = false
	}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if keys[key] {
				input.Current[actionID] = true
			}
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Keyboard input starts enabled, like a freshly opened page.
		components.Input.Get(entry).Focused = true
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
