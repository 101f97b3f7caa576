package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMemoryScores(t *testing.T) {
	s := Memory(zaptest.NewLogger(t))

	require.Equal(t, 0, s.LoadBest())
	s.SaveBest(12)
	require.Equal(t, 12, s.LoadBest())
}
