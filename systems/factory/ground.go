package factory

import (
	"fmt"

	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/assets"
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
)

func CreateGround(w donburi.World, box assets.Box) (*donburi.Entry, error) {
	body, err := collision.NewBody(box.X, box.Y, box.HalfW, box.HalfH)
	if err != nil {
		return nil, fmt.Errorf("create ground: %w", err)
	}

	ground := archetypes.Ground.Spawn(w)
	attachBody(w, ground, body, true, tags.ResolvSolid)
	components.Ground.SetValue(ground, components.GroundData{})

	return ground, nil
}

// CreateCeil creates the invisible blocker above the view.
func CreateCeil(w donburi.World, box assets.Box) (*donburi.Entry, error) {
	body, err := collision.NewBody(box.X, box.Y, box.HalfW, box.HalfH)
	if err != nil {
		return nil, fmt.Errorf("create ceiling: %w", err)
	}

	ceil := archetypes.Ceil.Spawn(w)
	attachBody(w, ceil, body, true, tags.ResolvSolid)

	return ceil, nil
}
