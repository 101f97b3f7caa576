package systems

import (
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/systems/factory"
	"github.com/automoto/flapper/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"golang.org/x/exp/slices"
)

var scrolling = donburi.NewQuery(filter.Or(
	filter.Contains(tags.Pipe),
	filter.Contains(tags.Gate),
))

// UpdatePipes moves pipes and gates by their velocity and removes those that
// reached the despawn zone. Once the game is over they freeze and stop
// colliding.
func UpdatePipes(w donburi.World) {
	game := GetOrCreateGame(w)
	dt := cfg.Step()

	var gone []*donburi.Entry
	scrolling.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e)

		if game.State == components.StateOver {
			body.Velocity = collision.Vec{}
			body.Collidable = false
		}
		body.Position = body.Position.Add(body.Velocity.Scale(dt))

		factory.SyncObject(obj.Object, body.Rect())
		if reachedDespawn(obj.Object, body.Rect()) {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		RemoveObstacle(w, e)
	}
}

// The space check is per cell, so candidates are confirmed against the
// zone's exact bounds.
func reachedDespawn(obj *resolv.Object, r collision.Rect) bool {
	check := obj.Check(0, 0, tags.ResolvDespawn)
	if check == nil {
		return false
	}
	for _, zone := range check.ObjectsByTags(tags.ResolvDespawn) {
		if factory.ObjectRect(zone).Overlaps(r) {
			return true
		}
	}
	return false
}

// RemoveObstacle deletes an obstacle entity: its body is flagged deleted,
// dropped from the candidate list and unlinked from the resolv space.
func RemoveObstacle(w donburi.World, e *donburi.Entry) {
	game := GetOrCreateGame(w)
	body := components.Body.Get(e).Body
	body.Deleted = true
	game.Obstacles = slices.DeleteFunc(game.Obstacles, func(b *collision.Body) bool {
		return b == body
	})

	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
