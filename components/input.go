package components

import (
	cfg "github.com/automoto/flapper/config"
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
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of action.
func (in *InputData) Action(action cfg.ActionID) ActionState {
	cur, prev := in.Current[action], in.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Advance starts a new frame: the current state becomes the previous one.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}
