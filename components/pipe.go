package components

import "github.com/yohamta/donburi"

type PipeData struct {
	Top bool // hangs from above the gap
}

var Pipe = donburi.NewComponentType[PipeData]()

// GateData is the scoring trigger filling the gap of a pipe pair.
type GateData struct {
	Passed bool
}

var Gate = donburi.NewComponentType[GateData]()

// SpawnerData emits pipe pairs at its position while the game is playing.
type SpawnerData struct {
	X, Y  float64
	Timer float64 // seconds since the last pair
}

var Spawner = donburi.NewComponentType[SpawnerData]()
