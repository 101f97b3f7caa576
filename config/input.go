package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFlap
	ActionRetry
	ActionToggleHitboxes
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:           "none",
	ActionFlap:           "flap",
	ActionRetry:          "retry",
	ActionToggleHitboxes: "toggle-hitboxes",
	ActionQuit:           "quit",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
