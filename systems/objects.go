package systems

import (
	"github.com/automoto/flapper/components"
	"github.com/automoto/flapper/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves every resolv mirror object onto its body. Run it last
// so the debug overlay shows the committed positions.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		if !e.HasComponent(components.Body) {
			continue
		}
		factory.SyncObject(components.Object.Get(e).Object, components.Body.Get(e).Rect())
	}
}
