package render

import (
	"math"

	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/gamemath"
	"github.com/automoto/flapper/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Pipe caps overhang the pipe body on both sides.
const (
	capHeight   = 0.12
	capOverhang = 0.03
	grassHeight = 0.05
)

var (
	birdImage  *ebiten.Image
	birdDrawOp = &ebiten.DrawImageOptions{}
)

func DrawSky(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Screen.SkyColor)
}

func DrawPipes(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Pipe.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Body.Get(e).Rect()
		x, y, w, h := rectToScreen(r)
		vector.FillRect(screen, x, y, w, h, cfg.Pipe.Color, false)

		// The cap faces the gap.
		c := collision.Rect{Left: r.Left - capOverhang, Right: r.Right + capOverhang}
		if components.Pipe.Get(e).Top {
			c.Bottom, c.Top = r.Bottom, r.Bottom+capHeight
		} else {
			c.Bottom, c.Top = r.Top-capHeight, r.Top
		}
		x, y, w, h = rectToScreen(c)
		vector.FillRect(screen, x, y, w, h, cfg.Pipe.CapColor, false)
	})
}

func DrawGround(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Ground.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Body.Get(e).Rect()
		g := components.Ground.Get(e)

		x, y, w, h := rectToScreen(r)
		vector.FillRect(screen, x, y, w, h, cfg.Ground.Color, false)

		// Stripes scroll left by the ground offset and repeat every tile.
		stripe := cfg.Ground.TileWidth / 2
		for left := r.Left - g.Offset; left < r.Right; left += cfg.Ground.TileWidth {
			s := collision.Rect{
				Left:   math.Max(left, r.Left),
				Right:  math.Min(left+stripe, r.Right),
				Bottom: r.Top - grassHeight*3,
				Top:    r.Top - grassHeight,
			}
			if s.Right <= s.Left {
				continue
			}
			x, y, w, h = rectToScreen(s)
			vector.FillRect(screen, x, y, w, h, cfg.Ground.StripeColor, false)
		}

		x, y, w, h = rectToScreen(collision.Rect{Left: r.Left, Right: r.Right, Bottom: r.Top - grassHeight, Top: r.Top})
		vector.FillRect(screen, x, y, w, h, cfg.Ground.GrassColor, false)
	})
}

func DrawBird(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Bird.Each(ecs.World, func(e *donburi.Entry) {
		bird := components.Bird.Get(e)
		body := components.Body.Get(e)

		img := getBirdImage()
		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		x, y := toScreen(body.Position.X, body.Position.Y+bird.Bob)

		birdDrawOp.GeoM.Reset()
		birdDrawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		// Screen Y points down, so nose up is a negative angle.
		birdDrawOp.GeoM.Rotate(-gamemath.Radians(bird.Rotation))
		birdDrawOp.GeoM.Translate(float64(x), float64(y))
		birdDrawOp.Filter = ebiten.FilterLinear
		screen.DrawImage(img, birdDrawOp)
	})
}

// getBirdImage lazily draws the bird sprite at its configured size.
func getBirdImage() *ebiten.Image {
	if birdImage != nil {
		return birdImage
	}
	ppu := cfg.Screen.PixelsPerUnit
	w := float32(cfg.Bird.Width * ppu)
	h := float32(cfg.Bird.Height * ppu)

	birdImage = ebiten.NewImage(int(math.Ceil(float64(w))), int(math.Ceil(float64(h))))
	vector.DrawFilledCircle(birdImage, w/2, h/2, h/2, cfg.Bird.Color, true)
	vector.FillRect(birdImage, h/2, 0, w-h, h, cfg.Bird.Color, true)
	vector.DrawFilledCircle(birdImage, w*0.35, h*0.6, h*0.25, cfg.Bird.WingColor, true)
	vector.FillRect(birdImage, w*0.8, h*0.45, w*0.2, h*0.2, cfg.Bird.WingColor, true)
	vector.DrawFilledCircle(birdImage, w*0.7, h*0.3, h*0.12, cfg.White, true)
	vector.DrawFilledCircle(birdImage, w*0.73, h*0.3, h*0.06, cfg.Black, true)
	return birdImage
}
