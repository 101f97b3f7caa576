package components

import (
	"github.com/automoto/flapper/collision"
	"github.com/yohamta/donburi"
)

// GameState is the phase of a play session.
type GameState int

const (
	StateReady GameState = iota
	StatePlaying
	StateOver
)

func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	}
	return "unknown"
}

// GameData is the per-session state shared by every system. One entity holds
// it for the lifetime of a scene.
type GameData struct {
	State   GameState
	Score   int
	Best    int
	NewBest bool

	// Obstacles is the candidate list handed to the resolver each step,
	// in spawn order.
	Obstacles []*collision.Body

	Tick   uint64
	OverAt uint64 // tick at which the game ended

	// RetryRequested is raised once the game is over and the player asks for
	// a new run. The scene reloads on it.
	RetryRequested bool
}

var Game = donburi.NewComponentType[GameData]()
