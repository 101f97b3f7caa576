package components

import "github.com/yohamta/donburi"

type GroundData struct {
	Offset float64 // texture scroll, world units in [0, TileWidth)
}

var Ground = donburi.NewComponentType[GroundData]()
