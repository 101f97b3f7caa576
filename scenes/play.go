package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/flapper/assets"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/input"
	"github.com/automoto/flapper/render"
	"github.com/automoto/flapper/systems"
	"github.com/automoto/flapper/ui"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlayScene runs one play session, from the first flap to the retry.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	log          *zap.Logger
	scores       systems.ScoreStore
	gameOver     *ui.GameOverUI
	err          error
	once         sync.Once
}

func NewPlayScene(sc SceneChanger, log *zap.Logger, scores systems.ScoreStore) *PlayScene {
	return &PlayScene{sceneChanger: sc, log: log, scores: scores}
}

func (ps *PlayScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()

	game := systems.GetOrCreateGame(ps.ecs.World)
	if systems.GetOrCreateInput(ps.ecs.World).Action(cfg.ActionQuit).JustPressed {
		ps.log.Info("quit", zap.Int("score", game.Score), zap.Int("best", game.Best))
		return ebiten.Termination
	}

	if ps.showGameOver(game) {
		ps.gameOver.SetResult(game.Score, game.Best, game.NewBest)
		ps.gameOver.Update()
	}

	if game.RetryRequested {
		ps.log.Info("retry")
		ps.sceneChanger.ChangeScene(NewPlayScene(ps.sceneChanger, ps.log, ps.scores))
	}
	return nil
}

// showGameOver holds the panel back until the flash has faded.
func (ps *PlayScene) showGameOver(game *components.GameData) bool {
	if game.State != components.StateOver {
		return false
	}
	return float64(game.Tick-game.OverAt)*cfg.Step() >= cfg.GameOver.FlashDuration
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if game := systems.GetOrCreateGame(ps.ecs.World); ps.showGameOver(game) {
		ps.gameOver.Draw(screen)
	}
}

func (ps *PlayScene) configure() {
	log := ps.log.With(zap.String("session", uuid.NewString()))

	layout, err := assets.LoadLayout(cfg.World.Level)
	if err != nil {
		ps.err = err
		return
	}

	session := systems.NewSession(log, ps.scores)
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input is polled before any simulation system reads it.
	ecs.AddSystem(updateInput)
	ecs.AddSystem(toggleHitboxes)
	for _, sys := range session.Pipeline() {
		ecs.AddSystem(adapt(sys))
	}

	// Add renderers
	ecs.AddRenderer(render.Default, render.DrawSky)
	ecs.AddRenderer(render.Default, render.DrawPipes)
	ecs.AddRenderer(render.Default, render.DrawGround)
	ecs.AddRenderer(render.Default, render.DrawBird)
	ecs.AddRenderer(render.Default, render.DrawHUD)
	ecs.AddRenderer(render.Default, render.DrawHitboxes)
	ecs.AddRenderer(render.Default, render.DrawFlash)

	ps.ecs = ecs

	if err := session.Setup(ps.ecs.World, layout); err != nil {
		ps.err = err
		return
	}

	gameOver, err := ui.NewGameOverUI(func() {
		systems.GetOrCreateGame(ps.ecs.World).RetryRequested = true
	})
	if err != nil {
		ps.err = fmt.Errorf("game over panel: %w", err)
		return
	}
	ps.gameOver = gameOver
}

func adapt(sys systems.System) ecs.System {
	return func(ecs *ecs.ECS) {
		sys(ecs.World)
	}
}

func updateInput(ecs *ecs.ECS) {
	input.Update(systems.GetOrCreateInput(ecs.World))
}

func toggleHitboxes(ecs *ecs.ECS) {
	if systems.GetOrCreateInput(ecs.World).Action(cfg.ActionToggleHitboxes).JustPressed {
		cfg.Debug.Hitboxes = !cfg.Debug.Hitboxes
	}
}
