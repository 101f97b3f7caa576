package input

import (
	"github.com/automoto/flapper/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// Reusable slices to avoid allocations every frame
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Update swaps the input buffers and polls every binding into Current.
// Must run BEFORE the simulation systems in the step order.
func Update(in *components.InputData) {
	in.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])

	for actionID, binding := range Bindings {
		in.Current[actionID] = pressed(binding)
	}
}

func pressed(b Binding) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range b.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return b.Touch && len(touchIDs) > 0
}
