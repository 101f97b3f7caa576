package tags

import "github.com/yohamta/donburi"

var (
	Bird    = donburi.NewTag().SetName("Bird")
	Pipe    = donburi.NewTag().SetName("Pipe")
	Gate    = donburi.NewTag().SetName("Gate")
	Ground  = donburi.NewTag().SetName("Ground")
	Ceil    = donburi.NewTag().SetName("Ceil")
	Spawner = donburi.NewTag().SetName("Spawner")
	Flash   = donburi.NewTag().SetName("Flash")
)

// Resolv tags for the mirror space
const (
	ResolvBird    = "bird"
	ResolvSolid   = "solid"
	ResolvPipe    = "pipe"
	ResolvGate    = "gate"
	ResolvDespawn = "despawn"
)
