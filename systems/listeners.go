package systems

import (
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/tags"
	"github.com/yohamta/donburi"
)

// BirdListener reacts to the bird's own contacts.
func (s *Session) BirdListener(e *donburi.Entry) collision.ContactListener {
	return &birdListener{s: s, entry: e}
}

// GateListener scores once when the bird passes through a gate.
func (s *Session) GateListener(e *donburi.Entry) collision.ContactListener {
	return &gateListener{s: s, entry: e}
}

type birdListener struct {
	s     *Session
	entry *donburi.Entry
}

func (l *birdListener) OnContact(e *collision.Event) {
	if !l.entry.Valid() {
		return
	}
	body := components.Body.Get(l.entry).Body
	other, ok := owner(e.Other(body))
	if !ok {
		return
	}

	switch {
	case other.HasComponent(tags.Ground):
		// Keep pressing into the ground so the resting contact is reported
		// every step.
		components.Bird.Get(l.entry).Grounded = true
		body.Velocity.Y = -cfg.Bird.RestSpeed
		l.s.EndGame(l.entry.World, "ground")
	case other.HasComponent(tags.Pipe):
		l.s.EndGame(l.entry.World, "pipe")
	case other.HasComponent(tags.Ceil):
		if body.Velocity.Y > 0 {
			body.Velocity.Y = 0
		}
	}
}

func (l *birdListener) OnNoContact(float64) {
	if l.entry.Valid() {
		components.Bird.Get(l.entry).Grounded = false
	}
}

type gateListener struct {
	s     *Session
	entry *donburi.Entry
}

func (l *gateListener) OnContact(e *collision.Event) {
	if !l.entry.Valid() {
		return
	}
	body := components.Body.Get(l.entry).Body
	other, ok := owner(e.Other(body))
	if !ok || !other.HasComponent(tags.Bird) {
		return
	}

	gate := components.Gate.Get(l.entry)
	if gate.Passed {
		return
	}
	gate.Passed = true
	body.Collidable = false
	l.s.addScore(l.entry.World)
}

// owner returns the live entity a body belongs to.
func owner(b *collision.Body) (*donburi.Entry, bool) {
	if b == nil {
		return nil, false
	}
	e, ok := b.Data.(*donburi.Entry)
	if !ok || !e.Valid() {
		return nil, false
	}
	return e, true
}
