package components

import (
	"github.com/automoto/flapper/collision"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its collision body. The body is the source of
// truth for position and velocity.
type BodyData struct {
	*collision.Body
}

var Body = donburi.NewComponentType[BodyData]()
