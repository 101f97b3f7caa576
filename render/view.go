package render

import (
	"github.com/automoto/flapper/collision"
	cfg "github.com/automoto/flapper/config"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// toScreen maps a world point (y up) to screen pixels (y down).
func toScreen(x, y float64) (float32, float32) {
	ppu := cfg.Screen.PixelsPerUnit
	return float32((x - cfg.Screen.ViewLeft) * ppu), float32((cfg.Screen.ViewTop - y) * ppu)
}

// rectToScreen returns the top-left corner and size of r in screen pixels.
func rectToScreen(r collision.Rect) (x, y, w, h float32) {
	x, y = toScreen(r.Left, r.Top)
	ppu := cfg.Screen.PixelsPerUnit
	return x, y, float32((r.Right - r.Left) * ppu), float32((r.Top - r.Bottom) * ppu)
}
