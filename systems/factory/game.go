package factory

import (
	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/assets"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateGame creates the session entity. It must exist before any obstacle
// is created so obstacles can register themselves.
func CreateGame(w donburi.World, best int) *donburi.Entry {
	game := archetypes.Game.Spawn(w)
	components.Game.SetValue(game, components.GameData{
		State: components.StateReady,
		Best:  best,
	})
	return game
}

func CreateSpawner(w donburi.World, at assets.Point) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(w)
	components.Spawner.SetValue(spawner, components.SpawnerData{X: at.X, Y: at.Y})
	return spawner
}

// CreateFlash creates the fading full-screen flash shown on game over.
func CreateFlash(w donburi.World) *donburi.Entry {
	flash := archetypes.Flash.Spawn(w)
	components.Flash.SetValue(flash, components.FlashData{Alpha: 1})
	components.Tween.SetValue(flash, components.NewTween(1, 0, float32(cfg.GameOver.FlashDuration), ease.OutQuad, false))
	return flash
}
