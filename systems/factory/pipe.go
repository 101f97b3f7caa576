package factory

import (
	"fmt"

	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
)

// CreatePipePair creates a top and a bottom pipe around a gap centered at
// (x, gapY), plus the score gate filling the gap. All three scroll with the
// world.
func CreatePipePair(w donburi.World, l Listeners, x, gapY float64) (top, bottom, gate *donburi.Entry, err error) {
	halfW, halfH := cfg.Pipe.Width/2, cfg.Pipe.Height/2
	velocity := collision.Vec{X: cfg.World.Speed}

	topBody, err := collision.NewBody(x, gapY+cfg.Pipe.PairOffset, halfW, halfH)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create pipe: %w", err)
	}
	bottomBody, err := collision.NewBody(x, gapY-cfg.Pipe.PairOffset, halfW, halfH)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create pipe: %w", err)
	}
	gateBody, err := collision.NewBody(x, gapY, cfg.Pipe.GateWidth/2, cfg.Pipe.PairOffset-halfH)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create score gate: %w", err)
	}

	topBody.Velocity = velocity
	bottomBody.Velocity = velocity
	gateBody.Velocity = velocity
	gateBody.Blocker = false

	top = archetypes.Pipe.Spawn(w)
	attachBody(w, top, topBody, true, tags.ResolvPipe)
	components.Pipe.SetValue(top, components.PipeData{Top: true})

	bottom = archetypes.Pipe.Spawn(w)
	attachBody(w, bottom, bottomBody, true, tags.ResolvPipe)
	components.Pipe.SetValue(bottom, components.PipeData{})

	gate = archetypes.Gate.Spawn(w)
	gateBody.Listener = l.GateListener(gate)
	attachBody(w, gate, gateBody, true, tags.ResolvGate)
	components.Gate.SetValue(gate, components.GateData{})

	return top, bottom, gate, nil
}
