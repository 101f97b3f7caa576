package systems

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// retryDelay is how long, in seconds, the game-over screen ignores retry
// input so a late flap does not skip it.
const retryDelay = 0.5

// UpdateGame advances the session clock and handles state transitions driven
// by input. It must run after input polling and before the bird.
func (s *Session) UpdateGame(w donburi.World) {
	game := GetOrCreateGame(w)
	input := GetOrCreateInput(w)
	game.Tick++

	switch game.State {
	case components.StateReady:
		if input.Action(cfg.ActionFlap).JustPressed {
			game.State = components.StatePlaying
			s.log.Info("game started", zap.Uint64("tick", game.Tick))
		}
	case components.StateOver:
		waited := float64(game.Tick-game.OverAt) * s.dt
		if waited >= retryDelay && input.Action(cfg.ActionRetry).JustPressed {
			game.RetryRequested = true
		}
	}
}

// UntilOver wraps a system so it stops once the game has ended.
func UntilOver(system System) System {
	return func(w donburi.World) {
		if GetOrCreateGame(w).State == components.StateOver {
			return
		}
		system(w)
	}
}

// Pipeline returns the simulation systems in the order they run each step.
// Input must be polled before the first one.
func (s *Session) Pipeline() []System {
	return []System{
		s.UpdateGame,
		UpdateBird,
		s.UpdateCollisions,
		UpdatePipes,
		s.UpdateSpawner,
		UntilOver(UpdateGround),
		UpdateTweens,
		UpdateObjects,
	}
}
