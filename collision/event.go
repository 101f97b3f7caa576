package collision

// NoContact is the time of impact of an event that does not collide this step.
const NoContact = -1.0

// Event describes a potential or actual contact between a moving source and a
// target during one step.
type Event struct {
	Source *Body
	Target *Body

	// T is the fraction of the step's displacement at which contact begins,
	// or NoContact.
	T float64
	// Normal points away from the contacted surface, against the motion.
	Normal Vec
	// Delta is the source displacement relative to the target over the step.
	Delta Vec

	invalidated bool
}

func miss(src, dest *Body) *Event {
	return &Event{Source: src, Target: dest, T: NoContact}
}

// IsCollided reports whether the contact happens within this step.
func (e *Event) IsCollided() bool {
	return e.T >= 0 && e.T <= 1
}

// Invalidate marks the event as consumed. Invalidated events are ignored by
// Filter and by contact notification.
func (e *Event) Invalidate() {
	e.invalidated = true
}

// Valid reports whether the event may still be selected: it has not been
// invalidated and its target has not been deleted.
func (e *Event) Valid() bool {
	return !e.invalidated && e.Target != nil && !e.Target.Deleted
}

// Other returns the body on the opposite side of the contact from b.
func (e *Event) Other(b *Body) *Body {
	if b == e.Source {
		return e.Target
	}
	return e.Source
}
