package factory

import (
	"github.com/automoto/flapper/archetypes"
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceBounds is the world area indexed by the resolv mirror. It is larger
// than the view so bodies entering or leaving the screen stay indexed.
var SpaceBounds = collision.Rect{Left: -4, Bottom: -4, Right: 4, Top: 4}

func CreateSpace(w donburi.World) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	ppu := cfg.Screen.PixelsPerUnit
	width := int((SpaceBounds.Right - SpaceBounds.Left) * ppu)
	height := int((SpaceBounds.Top - SpaceBounds.Bottom) * ppu)
	spaceData := resolv.NewSpace(width, height, cfg.Collision.CellSize, cfg.Collision.CellSize)
	components.Space.Set(space, spaceData)
	return space
}

// SyncObject moves a mirror object onto r. The resolv space is in pixels with
// Y down and its origin at the top-left corner of SpaceBounds.
func SyncObject(obj *resolv.Object, r collision.Rect) {
	ppu := cfg.Screen.PixelsPerUnit
	obj.X = (r.Left - SpaceBounds.Left) * ppu
	obj.Y = (SpaceBounds.Top - r.Top) * ppu
	if obj.Space != nil {
		obj.Update()
	}
}

// ObjectRect is the inverse of SyncObject.
func ObjectRect(obj *resolv.Object) collision.Rect {
	ppu := cfg.Screen.PixelsPerUnit
	left := obj.X/ppu + SpaceBounds.Left
	top := SpaceBounds.Top - obj.Y/ppu
	return collision.Rect{
		Left:   left,
		Bottom: top - obj.H/ppu,
		Right:  left + obj.W/ppu,
		Top:    top,
	}
}

func newObject(r collision.Rect, tags ...string) *resolv.Object {
	ppu := cfg.Screen.PixelsPerUnit
	w := (r.Right - r.Left) * ppu
	h := (r.Top - r.Bottom) * ppu
	obj := resolv.NewObject(0, 0, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	SyncObject(obj, r)
	return obj
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// attachBody links b to e, mirrors it into the space and, for obstacles,
// appends it to the session's candidate list.
func attachBody(w donburi.World, e *donburi.Entry, b *collision.Body, obstacle bool, tags ...string) {
	b.Data = e
	components.Body.SetValue(e, components.BodyData{Body: b})

	obj := newObject(b.Rect(), tags...)
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	if !obstacle {
		return
	}
	if gameEntry, ok := components.Game.First(w); ok {
		game := components.Game.Get(gameEntry)
		game.Obstacles = append(game.Obstacles, b)
	}
}
