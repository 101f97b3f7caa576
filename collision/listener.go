package collision

// ContactListener receives the contacts a Resolver resolves or discovers.
// Both the moving source and the contacted target are notified with the same
// event, so implementations use Event.Other to find their counterpart.
type ContactListener interface {
	OnContact(e *Event)
}

// NoContactListener is implemented by actors that react to a step in which
// nothing overlapped their path.
type NoContactListener interface {
	OnNoContact(dt float64)
}

// ContactFunc adapts a function to a ContactListener.
type ContactFunc func(e *Event)

func (f ContactFunc) OnContact(e *Event) {
	f(e)
}
