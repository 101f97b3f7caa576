package systems

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/automoto/flapper/assets"
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// System is one simulation step over the world.
type System func(w donburi.World)

// ScoreStore persists the best score between runs.
type ScoreStore interface {
	LoadBest() int
	SaveBest(best int)
}

// Session carries the collaborators shared by the systems of one play
// session: logging, persistence, randomness and the collision resolver.
type Session struct {
	log      *zap.Logger
	scores   ScoreStore
	resolver *collision.Resolver
	rand     *rand.Rand
	traces   *rate.Limiter
	dt       float64
}

type SessionOption func(*Session)

// WithRand replaces the random source used to place pipe gaps.
func WithRand(r *rand.Rand) SessionOption {
	return func(s *Session) {
		s.rand = r
	}
}

func NewSession(log *zap.Logger, scores ScoreStore, opts ...SessionOption) *Session {
	s := &Session{
		log:    log,
		scores: scores,
		resolver: collision.NewResolver(
			collision.WithPushFactor(cfg.Collision.PushFactor),
			collision.WithLogger(log.Named("collision")),
		),
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		traces: rate.NewLimiter(rate.Every(time.Duration(cfg.Collision.TraceInterval*float64(time.Second))), 1),
		dt:     cfg.Step(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Setup populates an empty world from a level layout: the session entity,
// the collision space, the static blockers, the bird and the pipe spawner.
func (s *Session) Setup(w donburi.World, layout *assets.Layout) error {
	factory.CreateGame(w, s.scores.LoadBest())
	factory.CreateSpace(w)

	// Obstacle order is the order the resolver scans them in.
	if _, err := factory.CreateGround(w, layout.Ground); err != nil {
		return fmt.Errorf("setup %s: %w", layout.Name, err)
	}
	if _, err := factory.CreateCeil(w, layout.Ceil); err != nil {
		return fmt.Errorf("setup %s: %w", layout.Name, err)
	}
	if _, err := factory.CreateBird(w, s, layout.Bird.X, layout.Bird.Y); err != nil {
		return fmt.Errorf("setup %s: %w", layout.Name, err)
	}
	factory.CreateSpawner(w, layout.Spawner)
	factory.CreateDespawnZone(w, layout.Despawn)

	s.log.Info("session ready",
		zap.String("level", layout.Name),
		zap.Int("best", GetOrCreateGame(w).Best))
	return nil
}

// EndGame moves the session to StateOver. Later calls are ignored.
func (s *Session) EndGame(w donburi.World, reason string) {
	game := GetOrCreateGame(w)
	if game.State == components.StateOver {
		return
	}

	game.State = components.StateOver
	game.OverAt = game.Tick
	factory.CreateFlash(w)

	s.log.Info("game over",
		zap.String("reason", reason),
		zap.Int("score", game.Score),
		zap.Int("best", game.Best),
		zap.Bool("newBest", game.NewBest),
		zap.Uint64("tick", game.Tick))
}

func (s *Session) addScore(w donburi.World) {
	game := GetOrCreateGame(w)
	if game.State != components.StatePlaying {
		return
	}
	game.Score++
	s.log.Info("score", zap.Int("score", game.Score))

	// The best score is saved as soon as it is beaten.
	if game.Score > game.Best {
		game.Best = game.Score
		game.NewBest = true
		s.scores.SaveBest(game.Best)
	}
}

// GetOrCreateGame returns the singleton Game component, creating if needed
func GetOrCreateGame(w donburi.World) *components.GameData {
	if _, ok := components.Game.First(w); !ok {
		factory.CreateGame(w, 0)
	}

	ent, _ := components.Game.First(w)
	return components.Game.Get(ent)
}

// GetOrCreateInput returns the input state stored on the session entity.
func GetOrCreateInput(w donburi.World) *components.InputData {
	if _, ok := components.Game.First(w); !ok {
		factory.CreateGame(w, 0)
	}

	ent, _ := components.Game.First(w)
	return components.Input.Get(ent)
}
