package systems

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateSpawner emits a pipe pair every Pipe.SpawnInterval seconds while the
// game is playing. The timer resets whenever it is not.
func (s *Session) UpdateSpawner(w donburi.World) {
	game := GetOrCreateGame(w)

	components.Spawner.Each(w, func(e *donburi.Entry) {
		sp := components.Spawner.Get(e)
		if game.State != components.StatePlaying {
			sp.Timer = 0
			return
		}

		if sp.Timer > cfg.Pipe.SpawnInterval {
			s.spawnPair(w, sp)
			sp.Timer = 0
		}
		sp.Timer += s.dt
	})
}

func (s *Session) spawnPair(w donburi.World, sp *components.SpawnerData) {
	offset := (s.rand.Float64()*2 - 1) * cfg.Pipe.HeightRange
	if _, _, _, err := factory.CreatePipePair(w, s, sp.X, sp.Y+offset); err != nil {
		s.log.Error("could not spawn pipes", zap.Error(err))
		return
	}
	s.log.Debug("pipes spawned",
		zap.Float64("gapY", sp.Y+offset),
		zap.Int("obstacles", len(GetOrCreateGame(w).Obstacles)))
}
