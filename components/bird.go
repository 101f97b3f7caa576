package components

import "github.com/yohamta/donburi"

type BirdData struct {
	Grounded bool    // resting on the ground
	Rotation float64 // degrees, positive is nose up
	Bob      float64 // drawn offset while waiting for the first flap
}

var Bird = donburi.NewComponentType[BirdData]()
