package collision

import "math"

// SweptAABB computes when, during a step of length dt, src first touches
// dest. dest is treated as fixed and src moves by the relative velocity of the
// two bodies. A miss is reported with T == NoContact.
func SweptAABB(src, dest *Body, dt float64) *Event {
	if src == dest {
		return miss(src, dest)
	}

	m := src.Rect()
	s := dest.Rect()
	d := src.Velocity.Sub(dest.Velocity).Scale(dt)

	// Already intersecting: report an immediate contact so that resting
	// contacts are seen every step.
	if m.Overlaps(s) {
		return &Event{
			Source: src,
			Target: dest,
			T:      0,
			Normal: Vec{opposing(d.X), opposing(d.Y)},
			Delta:  d,
		}
	}

	// Broad phase
	if !m.Swept(d).Overlaps(s) {
		return miss(src, dest)
	}

	if d.X == 0 && d.Y == 0 {
		return miss(src, dest)
	}

	txEntry, txExit := axisTimes(m.Left, m.Right, s.Left, s.Right, d.X)
	tyEntry, tyExit := axisTimes(m.Bottom, m.Top, s.Bottom, s.Top, d.Y)

	if (txEntry < -1 && tyEntry < -1) || txEntry > 1 || tyEntry > 1 {
		return miss(src, dest)
	}

	// Both axes must be penetrating for the boxes to touch, and the contact
	// ends as soon as either axis separates.
	entry := math.Max(txEntry, tyEntry)
	exit := math.Min(txExit, tyExit)
	if entry > exit {
		return miss(src, dest)
	}

	var n Vec
	if txEntry > tyEntry {
		n.X = opposing(d.X)
	} else {
		n.Y = opposing(d.Y)
	}

	return &Event{Source: src, Target: dest, T: entry, Normal: n, Delta: d}
}

// axisTimes returns the entry and exit times, as fractions of the step, of a
// moving span [lo, hi] against a fixed span [targetLo, targetHi] when the
// moving span travels d along the axis. An axis without motion never
// constrains the result.
func axisTimes(lo, hi, targetLo, targetHi, d float64) (entry, exit float64) {
	switch {
	case d > 0:
		return (targetLo - hi) / d, (targetHi - lo) / d
	case d < 0:
		return (targetHi - lo) / d, (targetLo - hi) / d
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// opposing returns the unit normal component that pushes back against motion d.
func opposing(d float64) float64 {
	switch {
	case d > 0:
		return -1
	case d < 0:
		return 1
	default:
		return 0
	}
}
