package input

import (
	cfg "github.com/automoto/flapper/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding maps an action to the physical inputs that trigger it.
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
	// Touch makes any active touch count as the action.
	Touch bool
}

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionFlap: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
		MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		Touch:                  true,
	},
	cfg.ActionRetry: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionToggleHitboxes: {
		Keys: []ebiten.Key{ebiten.KeyF1},
	},
	cfg.ActionQuit: {
		Keys: []ebiten.Key{ebiten.KeyEscape},
	},
}
