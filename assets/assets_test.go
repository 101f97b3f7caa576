package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout("sky.tmx")
	require.NoError(t, err)

	require.Equal(t, "sky.tmx", layout.Name)

	require.InDelta(t, 0, layout.Ground.X, 1e-9)
	require.InDelta(t, -1.75, layout.Ground.Y, 1e-9)
	require.InDelta(t, 2, layout.Ground.HalfW, 1e-9)
	require.InDelta(t, 0.25, layout.Ground.HalfH, 1e-9)
	require.InDelta(t, -1.5, layout.Ground.Top(), 1e-9)

	require.InDelta(t, 2, layout.Ceil.Bottom(), 1e-9)
	require.InDelta(t, -2, layout.Despawn.Right(), 1e-9)

	require.InDelta(t, -0.5, layout.Bird.X, 1e-9)
	require.InDelta(t, 0.25, layout.Bird.Y, 1e-9)
	require.InDelta(t, 1.8, layout.Spawner.X, 1e-9)
	require.InDelta(t, 0.25, layout.Spawner.Y, 1e-9)
}

func TestLoadLayoutMissingObject(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/broken.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="12" height="16" tilewidth="30" tileheight="30" infinite="0">
 <properties>
  <property name="pixelsPerUnit" type="int" value="120"/>
 </properties>
 <objectgroup id="1" name="Layout">
  <object id="1" name="Ground" x="0" y="420" width="360" height="60"/>
 </objectgroup>
</map>
`)},
	}

	_, err := LoadLayoutFS(fsys, "levels/broken.tmx")
	require.ErrorIs(t, err, ErrMissingObject)
	require.Contains(t, err.Error(), "Ceil")
}

func TestLoadLayoutUnknownFile(t *testing.T) {
	_, err := LoadLayout("nope.tmx")
	require.Error(t, err)
	require.Contains(t, err.Error(), "load TMX levels/nope.tmx")
}
