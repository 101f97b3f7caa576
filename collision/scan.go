package collision

// Scan sweeps src against every collidable candidate and returns the events
// that collide within the step, in candidate order.
func Scan(src *Body, candidates []*Body, dt float64) []*Event {
	return appendScan(nil, src, candidates, dt)
}

func appendScan(events []*Event, src *Body, candidates []*Body, dt float64) []*Event {
	for _, target := range candidates {
		if !target.Collidable {
			continue
		}
		if e := SweptAABB(src, target, dt); e.IsCollided() {
			events = append(events, e)
		}
	}
	return events
}

// FilterOptions select which events Filter considers.
type FilterOptions struct {
	// BlockersOnly skips events whose target is not a blocker.
	BlockersOnly bool
	// X and Y enable the search on each axis.
	X, Y bool
}

// DefaultFilter looks for blocking contacts on both axes.
var DefaultFilter = FilterOptions{BlockersOnly: true, X: true, Y: true}

// Filter returns the earliest valid event per axis. An event counts for an
// axis when its normal has a non-zero component on it. On equal times the
// first event found wins. Either result may be nil.
func Filter(events []*Event, opts FilterOptions) (x, y *Event) {
	minX, minY := 1.0, 1.0

	for _, e := range events {
		if !e.Valid() {
			continue
		}
		if opts.BlockersOnly && !e.Target.Blocker {
			continue
		}

		if opts.X && e.Normal.X != 0 && e.T < minX {
			minX = e.T
			x = e
		}
		if opts.Y && e.Normal.Y != 0 && e.T < minY {
			minY = e.T
			y = e
		}
	}

	return x, y
}
