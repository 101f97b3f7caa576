package collision

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidHitBox is returned when a body is built with a hit box that is not
// strictly positive on both axes.
var ErrInvalidHitBox = errors.New("hit box half-extents must be positive and finite")

// Vec is a 2D vector in world units. Y grows upward.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Rect is an axis-aligned box. Top is the larger Y.
type Rect struct {
	Left, Bottom, Right, Top float64
}

// Overlaps reports whether r and o intersect. Touching edges count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left <= o.Right && r.Right >= o.Left && r.Top >= o.Bottom && r.Bottom <= o.Top
}

// Swept returns the box covering r moved by d, in the direction of travel.
func (r Rect) Swept(d Vec) Rect {
	out := r
	if d.X > 0 {
		out.Right += d.X
	} else {
		out.Left += d.X
	}
	if d.Y > 0 {
		out.Top += d.Y
	} else {
		out.Bottom += d.Y
	}
	return out
}

// Body is the physical record of one entity: where it is, how it moves and how
// it takes part in collision.
type Body struct {
	Position Vec
	Velocity Vec
	// Acceleration accumulates during a tick and is folded into Velocity by
	// IntegrateVelocity.
	Acceleration Vec
	HalfExtent   Vec

	// Collidable bodies are scanned as targets and may act as a scan source.
	Collidable bool
	// Blocker contacts are corrected; non-blocker contacts are only reported.
	Blocker bool
	// Deleted bodies are never selected as a target again.
	Deleted bool

	Listener ContactListener

	// Data links the body back to its owner, e.g. a *donburi.Entry.
	Data any
}

// NewBody returns a collidable blocker centered at (x, y).
func NewBody(x, y, halfW, halfH float64) (*Body, error) {
	if !validExtent(halfW) || !validExtent(halfH) {
		return nil, fmt.Errorf("new body (%g x %g): %w", halfW, halfH, ErrInvalidHitBox)
	}
	return &Body{
		Position:   Vec{x, y},
		HalfExtent: Vec{halfW, halfH},
		Collidable: true,
		Blocker:    true,
	}, nil
}

func validExtent(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Rect returns the body's current bounding box.
func (b *Body) Rect() Rect {
	return Rect{
		Left:   b.Position.X - b.HalfExtent.X,
		Bottom: b.Position.Y - b.HalfExtent.Y,
		Right:  b.Position.X + b.HalfExtent.X,
		Top:    b.Position.Y + b.HalfExtent.Y,
	}
}

func (b *Body) SetPosition(x, y float64) {
	b.Position = Vec{x, y}
}

// Accumulate adds to the pending acceleration. Calls compose additively until
// the next IntegrateVelocity.
func (b *Body) Accumulate(ax, ay float64) {
	b.Acceleration.X += ax
	b.Acceleration.Y += ay
}

// IntegrateVelocity folds the pending acceleration into the velocity and
// resets it. Call exactly once per tick, after all forces are accumulated.
func (b *Body) IntegrateVelocity() {
	b.Velocity = b.Velocity.Add(b.Acceleration)
	b.Acceleration = Vec{}
}

// OnNoCollision is called when a step found nothing to collide with. The
// listener is told first, then the body moves freely by velocity*dt.
func (b *Body) OnNoCollision(dt float64) {
	if l, ok := b.Listener.(NoContactListener); ok {
		l.OnNoContact(dt)
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// OnCollisionWith forwards a contact to the body's listener, if any.
func (b *Body) OnCollisionWith(e *Event) {
	if b.Listener != nil {
		b.Listener.OnContact(e)
	}
}
