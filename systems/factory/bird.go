package factory

import (
	"fmt"

	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/tags"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Listeners builds the contact listeners attached to new bodies.
type Listeners interface {
	BirdListener(e *donburi.Entry) collision.ContactListener
	GateListener(e *donburi.Entry) collision.ContactListener
}

func CreateBird(w donburi.World, l Listeners, x, y float64) (*donburi.Entry, error) {
	body, err := collision.NewBody(x, y,
		cfg.Bird.Width*cfg.Bird.HitBoxScale/2,
		cfg.Bird.Height*cfg.Bird.HitBoxScale/2,
	)
	if err != nil {
		return nil, fmt.Errorf("create bird: %w", err)
	}

	bird := archetypes.Bird.Spawn(w)
	body.Listener = l.BirdListener(bird)
	attachBody(w, bird, body, false, tags.ResolvBird)

	components.Bird.SetValue(bird, components.BirdData{})

	// Idle bob until the first flap.
	amp := float32(cfg.Bird.BobAmplitude)
	components.Tween.SetValue(bird, components.NewTween(-amp, amp, float32(cfg.Bird.BobDuration), ease.InOutSine, true))

	return bird, nil
}
