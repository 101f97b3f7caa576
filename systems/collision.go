package systems

import (
	"github.com/automoto/flapper/components"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateCollisions moves the bird through the session's obstacles. Obstacles
// are still at their start-of-step positions; their own motion is applied
// afterwards by UpdatePipes.
func (s *Session) UpdateCollisions(w donburi.World) {
	game := GetOrCreateGame(w)

	tags.Bird.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		out := s.resolver.Process(body.Body, game.Obstacles, s.dt)

		if ce := s.log.Check(zap.DebugLevel, "collision step"); ce != nil && s.traces.Allow() {
			ce.Write(
				zap.Uint64("tick", game.Tick),
				zap.Bool("free", out.Free),
				zap.Bool("blocked", out.Blocked()),
				zap.Int("contacts", out.Contacts),
				zap.Int("candidates", len(game.Obstacles)),
				zap.Float64("x", body.Position.X),
				zap.Float64("y", body.Position.Y),
				zap.Float64("vy", body.Velocity.Y),
			)
		}
	})
}
