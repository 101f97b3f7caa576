package main

import (
	"errors"
	"flag"

	"github.com/automoto/flapper/config"
	"github.com/automoto/flapper/fonts"
	"github.com/automoto/flapper/scenes"
	"github.com/automoto/flapper/storage"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "flapper.toml", "Path to an optional TOML config overlay")
	isDebug    = flag.Bool("debug", false, "Enable debug log output")
	hitboxes   = flag.Bool("hitboxes", false, "Draw collision boxes")
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(log *zap.Logger, scores *storage.Scores) *Game {
	g := &Game{}
	g.scene = scenes.NewPlayScene(g, log, scores)
	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	flag.Parse()

	var log *zap.Logger
	if *isDebug {
		log = unwrap(zap.NewDevelopment())
	} else {
		log = unwrap(zap.NewProduction())
	}
	defer func() { _ = log.Sync() }()

	if err := config.Load(*configPath); err != nil {
		log.Fatal("config", zap.Error(err))
	}
	if *hitboxes {
		config.Debug.Hitboxes = true
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("fonts", zap.Error(err))
	}

	scores := storage.Open("flapper", log.Named("storage"))

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	log.Info("start", zap.String("level", config.World.Level), zap.Int("best", scores.LoadBest()))
	if err := ebiten.RunGame(NewGame(log, scores)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("run", zap.Error(err))
	}
	log.Info("exit")
}

func unwrap[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
