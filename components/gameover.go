package components

import "github.com/yohamta/donburi"

// FlashData marks the full-screen flash shown when the game ends. Its alpha
// comes from the entity's tween.
type FlashData struct {
	Alpha float64
}

var Flash = donburi.NewComponentType[FlashData]()
