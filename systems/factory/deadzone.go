package factory

import (
	"github.com/automoto/flapper/assets"
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateDespawnZone creates an invisible zone left of the view. Obstacles
// touching it are removed.
func CreateDespawnZone(w donburi.World, box assets.Box) *resolv.Object {
	obj := newObject(collision.Rect{
		Left:   box.Left(),
		Bottom: box.Bottom(),
		Right:  box.Right(),
		Top:    box.Top(),
	}, tags.ResolvDespawn)
	addToSpace(w, obj)
	return obj
}
