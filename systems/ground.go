package systems

import (
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateGround scrolls the ground texture with the world. The ground body
// itself never moves.
func UpdateGround(w donburi.World) {
	dt := cfg.Step()
	components.Ground.Each(w, func(e *donburi.Entry) {
		g := components.Ground.Get(e)
		g.Offset = gamemath.Wrap(g.Offset-cfg.World.Speed*dt, cfg.Ground.TileWidth)
	})
}
