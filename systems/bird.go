package systems

import (
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/gamemath"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
)

// UpdateBird applies gravity and flaps to the bird's velocity. Position is
// left to the collision step.
func UpdateBird(w donburi.World) {
	game := GetOrCreateGame(w)
	input := GetOrCreateInput(w)
	dt := cfg.Step()

	tags.Bird.Each(w, func(e *donburi.Entry) {
		bird := components.Bird.Get(e)
		body := components.Body.Get(e)

		if game.State == components.StateReady {
			// Hover until the first flap.
			body.Velocity = collision.Vec{}
		} else {
			body.Accumulate(0, cfg.World.Gravity*dt)
		}

		if game.State != components.StateOver && input.Action(cfg.ActionFlap).JustPressed {
			body.Velocity = collision.Vec{}
			body.Accumulate(0, cfg.Bird.JumpSpeed)
			bird.Grounded = false
		}

		body.IntegrateVelocity()
		body.Velocity.Y = gamemath.ClampFall(body.Velocity.Y, cfg.Bird.MaxFallSpeed)

		if !bird.Grounded {
			bird.Rotation = gamemath.Tilt(body.Velocity.Y, cfg.Bird.RotationSpeed, cfg.Bird.MinRotation, cfg.Bird.MaxRotation)
		}
	})
}
