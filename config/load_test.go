package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flapper.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func snapshot(t *testing.T) {
	t.Helper()
	c, world, bird, pipe := *C, World, Bird, Pipe
	t.Cleanup(func() {
		*C, World, Bird, Pipe = c, world, bird, pipe
	})
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	snapshot(t)
	before := Bird

	require.NoError(t, Load(filepath.Join(t.TempDir(), "nope.toml")))
	require.Equal(t, before, Bird)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	snapshot(t)
	jump := Bird.JumpSpeed

	path := writeConfig(t, `
[window]
tps = 120

[world]
gravity = -12.5

[pipe]
spawninterval = 2.0
`)
	require.NoError(t, Load(path))

	require.Equal(t, 120, C.TPS)
	require.InDelta(t, 1.0/120, Step(), 1e-12)
	require.Equal(t, -12.5, World.Gravity)
	require.Equal(t, 2.0, Pipe.SpawnInterval)
	require.Equal(t, jump, Bird.JumpSpeed, "keys not in the file keep their default")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	snapshot(t)
	gravity := World.Gravity

	path := writeConfig(t, `
[world]
gravity = -1
gravitee = -2
`)
	err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "world.gravitee")
	require.Equal(t, gravity, World.Gravity, "nothing is applied on error")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	snapshot(t)

	path := writeConfig(t, `
[bird]
hitboxscale = 0
`)
	err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	snapshot(t)

	require.Error(t, Load(writeConfig(t, "[world\ngravity = ")))
}

func TestActionString(t *testing.T) {
	require.Equal(t, "flap", ActionFlap.String())
	require.Equal(t, "unknown", ActionCount.String())
}
