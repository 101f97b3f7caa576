package storage

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const bestKey = "best"

// savedScores is the payload stored on disk
type savedScores struct {
	Best int `json:"best"`
}

// Scores persists the best score. A Scores without a backing manager keeps
// the value in memory only.
type Scores struct {
	m    *gdata.Manager
	log  *zap.Logger
	best int
}

// Open returns a store backed by the per-user data directory of appName. When
// the directory is unavailable the error is logged and an in-memory store is
// returned instead, so the game still runs.
func Open(appName string, log *zap.Logger) *Scores {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
		return Memory(log)
	}
	return &Scores{m: m, log: log}
}

// Memory returns a store that forgets everything on exit.
func Memory(log *zap.Logger) *Scores {
	return &Scores{log: log}
}

// LoadBest returns the saved best score, or 0 when none can be read.
func (s *Scores) LoadBest() int {
	if s.m == nil {
		return s.best
	}

	data, err := s.m.LoadItem(bestKey)
	if err != nil {
		s.log.Warn("could not load best score", zap.Error(err))
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var saved savedScores
	if err := json.Unmarshal(data, &saved); err != nil {
		s.log.Warn("could not parse saved best score", zap.Error(err))
		return 0
	}
	return saved.Best
}

// SaveBest stores best. Failures are logged and otherwise ignored.
func (s *Scores) SaveBest(best int) {
	if s.m == nil {
		s.best = best
		return
	}

	data, err := json.Marshal(savedScores{Best: best})
	if err != nil {
		s.log.Warn("could not serialize best score", zap.Error(err))
		return
	}
	if err := s.m.SaveItem(bestKey, data); err != nil {
		s.log.Warn("could not save best score", zap.Error(err))
	}
}
