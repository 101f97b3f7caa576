package collision

import "go.uber.org/zap"

// BlockPushFactor is the distance a corrected body is pushed away from the
// surface it hit, so rounding does not re-penetrate on the next step.
const BlockPushFactor = 0.004

type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) String() string {
	if a == axisX {
		return "x"
	}
	return "y"
}

func (v Vec) along(a axis) float64 {
	if a == axisX {
		return v.X
	}
	return v.Y
}

func (v *Vec) addAlong(a axis, f float64) {
	if a == axisX {
		v.X += f
	} else {
		v.Y += f
	}
}

func (a axis) only() FilterOptions {
	return FilterOptions{BlockersOnly: true, X: a == axisX, Y: a == axisY}
}

// Outcome summarizes one Process call.
type Outcome struct {
	// X and Y are the blocking events applied on each axis, if any.
	X, Y *Event
	// Contacts is the number of events delivered to the source listener.
	Contacts int
	// Free is set when nothing overlapped the source's path.
	Free bool
}

// Blocked reports whether any axis was corrected.
func (o Outcome) Blocked() bool {
	return o.X != nil || o.Y != nil
}

// Resolver moves one body per call through a set of obstacles, correcting its
// position against blockers and reporting every contact.
//
// A Resolver keeps a scratch event buffer between calls and must only be
// used from the simulation goroutine.
type Resolver struct {
	pushFactor float64
	log        *zap.Logger
	events     []*Event
}

type Option func(*Resolver)

// WithPushFactor overrides BlockPushFactor.
func WithPushFactor(f float64) Option {
	return func(r *Resolver) {
		r.pushFactor = f
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		pushFactor: BlockPushFactor,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Process runs one step for src against candidates. The candidate slice is
// read as a snapshot and never modified.
//
// When nothing overlaps, src.OnNoCollision advances it freely. Otherwise the
// earliest blocking contact is corrected first, src is swept again from the
// corrected position to find a second contact on the remaining axis, and the
// final position is committed once. Non-blocking contacts are reported last.
// When both axes are blocked at the same time the X axis is resolved first.
func (r *Resolver) Process(src *Body, candidates []*Body, dt float64) Outcome {
	events := r.events[:0]
	defer func() {
		clear(events)
		r.events = events[:0]
	}()

	if src.Collidable {
		events = appendScan(events, src, candidates, dt)
	}

	if len(events) == 0 {
		src.OnNoCollision(dt)
		return Outcome{Free: true}
	}

	var out Outcome
	colX, colY := Filter(events, DefaultFilter)

	pos := src.Position
	d := src.Velocity.Scale(dt)

	switch {
	case colX != nil && colY != nil:
		first, second := colX, colY
		firstAxis, secondAxis := axisX, axisY
		if colY.T < colX.T {
			first, second = colY, colX
			firstAxis, secondAxis = axisY, axisX
		}

		pos.addAlong(firstAxis, r.blockedStep(first, d, firstAxis))
		src.SetPosition(pos.X, pos.Y)
		out.set(firstAxis, first)
		r.notify(first, &out)

		// The second axis may no longer be blocked once the first one has
		// been corrected, e.g. when sliding past a corner.
		second.Invalidate()
		if again := SweptAABB(src, second.Target, dt); again.IsCollided() {
			events = append(events, again)
		}

		if next := nearest(events, secondAxis); next != nil {
			pos.addAlong(secondAxis, r.blockedStep(next, d, secondAxis))
			out.set(secondAxis, next)
			r.notify(next, &out)
		} else {
			pos.addAlong(secondAxis, d.along(secondAxis))
			r.log.Debug("second axis cleared after correction",
				zap.Stringer("resolved", firstAxis),
				zap.Stringer("cleared", secondAxis),
				zap.Float64("t", first.T))
		}

	case colX != nil:
		pos.X += r.blockedStep(colX, d, axisX)
		pos.Y += d.Y
		out.X = colX
		r.notify(colX, &out)

	case colY != nil:
		pos.X += d.X
		pos.Y += r.blockedStep(colY, d, axisY)
		out.Y = colY
		r.notify(colY, &out)

	default:
		pos = pos.Add(d)
	}

	src.SetPosition(pos.X, pos.Y)

	for _, e := range events {
		if !e.Valid() || e.Target.Blocker {
			continue
		}
		r.notify(e, &out)
	}

	return out
}

func nearest(events []*Event, a axis) *Event {
	x, y := Filter(events, a.only())
	if a == axisX {
		return x
	}
	return y
}

// blockedStep is the distance to travel along a before touching e's target,
// plus the push away from its surface.
func (r *Resolver) blockedStep(e *Event, d Vec, a axis) float64 {
	return e.T*d.along(a) + e.Normal.along(a)*r.pushFactor
}

func (o *Outcome) set(a axis, e *Event) {
	if a == axisX {
		o.X = e
	} else {
		o.Y = e
	}
}

func (r *Resolver) notify(e *Event, out *Outcome) {
	out.Contacts++
	e.Source.OnCollisionWith(e)
	e.Target.OnCollisionWith(e)
}
