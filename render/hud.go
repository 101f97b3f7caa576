package render

import (
	"image/color"
	"strconv"

	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/automoto/flapper/systems/factory"
	"github.com/automoto/flapper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the score, and the start hint until the first flap.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		return
	}
	game := components.Game.Get(entry)
	if game.State == components.StateOver {
		return
	}

	drawCentered(screen, strconv.Itoa(game.Score), fonts.Score.Get(), int(cfg.HUD.ScoreY))
	if game.State == components.StateReady {
		drawCentered(screen, cfg.HUD.Hint, fonts.Regular.Get(), int(cfg.HUD.HintY))
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, y int) {
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x+2, y+2, cfg.HUD.Shadow)
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
}

// DrawFlash whitens the screen briefly when the game ends.
func DrawFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Flash.Each(ecs.World, func(e *donburi.Entry) {
		alpha := components.Flash.Get(e).Alpha
		if alpha <= 0 {
			return
		}
		c := cfg.GameOver.FlashColor
		a := uint8(float64(c.A) * min(alpha, 1))
		// Premultiplied alpha
		fill := color.RGBA{
			R: uint8(uint16(c.R) * uint16(a) / 255),
			G: uint8(uint16(c.G) * uint16(a) / 255),
			B: uint8(uint16(c.B) * uint16(a) / 255),
			A: a,
		}
		vector.FillRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), fill, false)
	})
}

// DrawHitboxes outlines every object in the collision space.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Hitboxes {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := cfg.Debug.BlockerColor
		if obj.HasTags(tags.ResolvGate) || obj.HasTags(tags.ResolvDespawn) {
			c = cfg.Debug.TriggerColor
		}

		x, y, w, h := rectToScreen(factory.ObjectRect(obj))
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
