package systems_test

import (
	"math/rand"
	"testing"

	"github.com/automoto/flapper/assets"
	"github.com/automoto/flapper/collision"
	"github.com/automoto/flapper/components"
	cfg "github.com/automoto/flapper/config"
	"github.com/automoto/flapper/systems"
	"github.com/automoto/flapper/systems/factory"
	"github.com/automoto/flapper/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"go.uber.org/zap/zaptest"
)

type memScores struct {
	best  int
	saved []int
}

func (m *memScores) LoadBest() int { return m.best }

func (m *memScores) SaveBest(best int) {
	m.best = best
	m.saved = append(m.saved, best)
}

func newSession(t *testing.T, best int) (*systems.Session, donburi.World, *memScores) {
	t.Helper()
	layout, err := assets.LoadLayout(cfg.World.Level)
	require.NoError(t, err)

	scores := &memScores{best: best}
	s := systems.NewSession(zaptest.NewLogger(t), scores, systems.WithRand(rand.New(rand.NewSource(1))))
	w := donburi.NewWorld()
	require.NoError(t, s.Setup(w, layout))
	return s, w, scores
}

// tick runs one full step with the given actions held down for the first
// time.
func tick(s *systems.Session, w donburi.World, pressed ...cfg.ActionID) {
	in := systems.GetOrCreateInput(w)
	in.Advance()
	for _, a := range pressed {
		in.Current[a] = true
	}
	for _, sys := range s.Pipeline() {
		sys(w)
	}
}

func bird(t *testing.T, w donburi.World) (*components.BirdData, *collision.Body) {
	t.Helper()
	e, ok := tags.Bird.First(w)
	require.True(t, ok)
	return components.Bird.Get(e), components.Body.Get(e).Body
}

func bodyOf(t *testing.T, w donburi.World, tag donburi.IComponentType) *collision.Body {
	t.Helper()
	var found *collision.Body
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(e *donburi.Entry) {
		if found == nil {
			found = components.Body.Get(e).Body
		}
	})
	require.NotNil(t, found)
	return found
}

func count(w donburi.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}

func playing(w donburi.World) {
	systems.GetOrCreateGame(w).State = components.StatePlaying
}

func birdRestY() float64 {
	return -1.5 + cfg.Bird.Height*cfg.Bird.HitBoxScale/2 + cfg.Collision.PushFactor
}

func TestSetup(t *testing.T) {
	_, w, _ := newSession(t, 7)

	game := systems.GetOrCreateGame(w)
	require.Equal(t, components.StateReady, game.State)
	require.Equal(t, 7, game.Best)
	require.Zero(t, game.Score)

	require.Len(t, game.Obstacles, 2)
	require.Same(t, bodyOf(t, w, tags.Ground), game.Obstacles[0])
	require.Same(t, bodyOf(t, w, tags.Ceil), game.Obstacles[1])

	_, body := bird(t, w)
	require.InDelta(t, -0.5, body.Position.X, 1e-9)
	require.InDelta(t, 0.25, body.Position.Y, 1e-9)
	require.InDelta(t, cfg.Bird.Width*cfg.Bird.HitBoxScale/2, body.HalfExtent.X, 1e-12)
	require.NotNil(t, body.Listener)

	spaceEntry, ok := components.Space.First(w)
	require.True(t, ok)
	// ground, ceiling, bird, despawn zone
	require.Len(t, components.Space.Get(spaceEntry).Objects(), 4)
}

func TestSetupRejectsInvalidLayout(t *testing.T) {
	s := systems.NewSession(zaptest.NewLogger(t), &memScores{})
	layout := &assets.Layout{
		Name:   "broken",
		Ground: assets.Box{HalfW: 0, HalfH: 1},
		Ceil:   assets.Box{HalfW: 1, HalfH: 1},
	}

	err := s.Setup(donburi.NewWorld(), layout)
	require.ErrorIs(t, err, collision.ErrInvalidHitBox)
	require.Contains(t, err.Error(), "setup broken")
}

func TestReadyHovers(t *testing.T) {
	s, w, _ := newSession(t, 0)

	for i := 0; i < 30; i++ {
		tick(s, w)
	}

	game := systems.GetOrCreateGame(w)
	require.Equal(t, components.StateReady, game.State)
	require.EqualValues(t, 30, game.Tick)
	require.Len(t, game.Obstacles, 2, "no pipes before the first flap")

	b, body := bird(t, w)
	require.Equal(t, 0.25, body.Position.Y)
	require.Equal(t, collision.Vec{}, body.Velocity)
	require.LessOrEqual(t, b.Bob, cfg.Bird.BobAmplitude+1e-6)
	require.GreaterOrEqual(t, b.Bob, -cfg.Bird.BobAmplitude-1e-6)
}

func TestFlapStartsGame(t *testing.T) {
	s, w, _ := newSession(t, 0)

	tick(s, w, cfg.ActionFlap)

	require.Equal(t, components.StatePlaying, systems.GetOrCreateGame(w).State)
	b, body := bird(t, w)
	vy := cfg.Bird.JumpSpeed + cfg.World.Gravity*cfg.Step()
	require.InDelta(t, vy, body.Velocity.Y, 1e-9)
	require.InDelta(t, 0.25+vy*cfg.Step(), body.Position.Y, 1e-9)
	require.Equal(t, cfg.Bird.MaxRotation, b.Rotation)
	require.Zero(t, b.Bob)
}

func TestFallingOntoGroundEndsGame(t *testing.T) {
	s, w, scores := newSession(t, 0)
	game := systems.GetOrCreateGame(w)

	tick(s, w, cfg.ActionFlap)
	for i := 0; i < 300 && game.State != components.StateOver; i++ {
		tick(s, w)
	}
	require.Equal(t, components.StateOver, game.State)

	b, body := bird(t, w)
	require.True(t, b.Grounded)
	require.InDelta(t, birdRestY(), body.Position.Y, 1e-9)
	require.Negative(t, b.Rotation)
	require.Equal(t, 1, count(w, tags.Flash))
	require.Zero(t, game.Score)
	require.Empty(t, scores.saved)

	for i := 0; i < 30; i++ {
		tick(s, w)
	}
	b, body = bird(t, w)
	require.True(t, b.Grounded, "the bird keeps resting on the ground")
	require.InDelta(t, birdRestY(), body.Position.Y, 1e-9)
	require.Equal(t, 0, count(w, tags.Flash), "the flash fades out")
}

func TestGateScoresOnce(t *testing.T) {
	s, w, scores := newSession(t, 0)
	playing(w)
	_, body := bird(t, w)

	_, _, gate, err := factory.CreatePipePair(w, s, body.Position.X, body.Position.Y)
	require.NoError(t, err)

	s.UpdateCollisions(w)
	s.UpdateCollisions(w)

	game := systems.GetOrCreateGame(w)
	require.Equal(t, components.StatePlaying, game.State)
	require.Equal(t, 1, game.Score)
	require.Equal(t, 1, game.Best)
	require.True(t, game.NewBest)
	require.Equal(t, []int{1}, scores.saved)

	require.True(t, components.Gate.Get(gate).Passed)
	require.False(t, components.Body.Get(gate).Collidable)
	require.Equal(t, 0.25, body.Position.Y, "a trigger does not move the bird")
}

func TestGateKeepsBestWhenLower(t *testing.T) {
	s, w, scores := newSession(t, 5)
	playing(w)
	_, body := bird(t, w)

	_, _, _, err := factory.CreatePipePair(w, s, body.Position.X, body.Position.Y)
	require.NoError(t, err)
	s.UpdateCollisions(w)

	game := systems.GetOrCreateGame(w)
	require.Equal(t, 1, game.Score)
	require.Equal(t, 5, game.Best)
	require.False(t, game.NewBest)
	require.Empty(t, scores.saved)
}

func TestGateIgnoredBeforeStart(t *testing.T) {
	s, w, _ := newSession(t, 0)
	_, body := bird(t, w)

	_, _, _, err := factory.CreatePipePair(w, s, body.Position.X, body.Position.Y)
	require.NoError(t, err)
	s.UpdateCollisions(w)

	require.Zero(t, systems.GetOrCreateGame(w).Score)
}

func TestPipeEndsGame(t *testing.T) {
	s, w, _ := newSession(t, 0)
	playing(w)
	_, body := bird(t, w)

	// The bottom pipe sits on the bird.
	_, _, _, err := factory.CreatePipePair(w, s, body.Position.X, body.Position.Y+cfg.Pipe.PairOffset)
	require.NoError(t, err)
	s.UpdateCollisions(w)

	game := systems.GetOrCreateGame(w)
	require.Equal(t, components.StateOver, game.State)
	require.InDelta(t, -0.5-cfg.Collision.PushFactor, body.Position.X, 1e-9, "pushed away from the incoming pipe")
}

func TestCeilingStopsRise(t *testing.T) {
	s, w, _ := newSession(t, 0)
	playing(w)
	b, body := bird(t, w)

	halfH := body.HalfExtent.Y
	body.SetPosition(body.Position.X, 2-halfH-0.01)
	body.Velocity = collision.Vec{Y: 3}
	s.UpdateCollisions(w)

	require.Equal(t, 0.0, body.Velocity.Y)
	require.InDelta(t, 2-halfH-cfg.Collision.PushFactor, body.Position.Y, 1e-9)
	require.False(t, b.Grounded)
	require.Equal(t, components.StatePlaying, systems.GetOrCreateGame(w).State)
}

func TestUpdatePipesScrollsAndFreezes(t *testing.T) {
	s, w, _ := newSession(t, 0)
	playing(w)

	top, _, gate, err := factory.CreatePipePair(w, s, 1.0, 0.25)
	require.NoError(t, err)
	topBody := components.Body.Get(top).Body

	systems.UpdatePipes(w)
	require.InDelta(t, 1.0+cfg.World.Speed*cfg.Step(), topBody.Position.X, 1e-9)
	require.InDelta(t, topBody.Position.X, components.Body.Get(gate).Position.X, 1e-12)

	s.EndGame(w, "test")
	x := topBody.Position.X
	systems.UpdatePipes(w)

	require.Equal(t, x, topBody.Position.X)
	require.Equal(t, collision.Vec{}, topBody.Velocity)
	require.False(t, topBody.Collidable)
}

func TestUpdatePipesDespawns(t *testing.T) {
	s, w, _ := newSession(t, 0)
	playing(w)

	top, bottom, gate, err := factory.CreatePipePair(w, s, -2.2, 0.25)
	require.NoError(t, err)
	bodies := []*collision.Body{
		components.Body.Get(top).Body,
		components.Body.Get(bottom).Body,
		components.Body.Get(gate).Body,
	}
	_, _, keep, err := factory.CreatePipePair(w, s, 1.0, 0.25)
	require.NoError(t, err)
	require.Len(t, systems.GetOrCreateGame(w).Obstacles, 8)

	systems.UpdatePipes(w)

	game := systems.GetOrCreateGame(w)
	require.Len(t, game.Obstacles, 5)
	for _, b := range bodies {
		require.True(t, b.Deleted)
		require.NotContains(t, game.Obstacles, b)
	}
	require.Equal(t, 2, count(w, tags.Pipe))
	require.Equal(t, 1, count(w, tags.Gate))
	require.True(t, keep.Valid())

	spaceEntry, _ := components.Space.First(w)
	require.Len(t, components.Space.Get(spaceEntry).Objects(), 7)
}

func TestSpawner(t *testing.T) {
	s, w, _ := newSession(t, 0)

	for i := 0; i < 120; i++ {
		s.UpdateSpawner(w)
	}
	require.Len(t, systems.GetOrCreateGame(w).Obstacles, 2, "nothing spawns before the game starts")

	playing(w)
	for i := 0; i < 120; i++ {
		s.UpdateSpawner(w)
	}

	game := systems.GetOrCreateGame(w)
	require.Len(t, game.Obstacles, 5)
	require.Equal(t, 2, count(w, tags.Pipe))

	gate := bodyOf(t, w, tags.Gate)
	require.InDelta(t, 1.8, gate.Position.X, 1e-9)
	require.InDelta(t, 0.25, gate.Position.Y, cfg.Pipe.HeightRange)
	require.False(t, gate.Blocker)
}

func TestRetryAfterDelay(t *testing.T) {
	s, w, _ := newSession(t, 0)
	playing(w)
	s.EndGame(w, "test")
	game := systems.GetOrCreateGame(w)

	tick(s, w, cfg.ActionRetry)
	require.False(t, game.RetryRequested, "retry is ignored right after the game ends")

	for i := 0; i < 30; i++ {
		tick(s, w)
	}
	tick(s, w, cfg.ActionRetry)
	require.True(t, game.RetryRequested)
}

func TestEndGameOnce(t *testing.T) {
	s, w, _ := newSession(t, 0)
	playing(w)

	s.EndGame(w, "pipe")
	at := systems.GetOrCreateGame(w).OverAt
	tick(s, w)
	s.EndGame(w, "ground")

	require.Equal(t, at, systems.GetOrCreateGame(w).OverAt)
	require.Equal(t, 1, count(w, tags.Flash))
}

func TestFlapIgnoredWhenOver(t *testing.T) {
	s, w, _ := newSession(t, 0)
	playing(w)
	s.EndGame(w, "test")

	tick(s, w, cfg.ActionFlap)

	_, body := bird(t, w)
	require.Negative(t, body.Velocity.Y)
}

func TestGroundScrollStopsWhenOver(t *testing.T) {
	s, w, _ := newSession(t, 0)
	e, ok := components.Ground.First(w)
	require.True(t, ok)
	g := components.Ground.Get(e)

	tick(s, w)
	require.InDelta(t, -cfg.World.Speed*cfg.Step(), g.Offset, 1e-9)

	playing(w)
	s.EndGame(w, "test")
	offset := g.Offset
	tick(s, w)
	require.Equal(t, offset, g.Offset)
}
