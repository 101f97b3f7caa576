package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const (
	levelsDir   = "levels"
	layoutGroup = "Layout"
)

// ErrMissingObject is returned when a level lacks an object the game needs.
var ErrMissingObject = errors.New("level object missing")

// Box is an axis-aligned area in world units, by center and half-extents.
type Box struct {
	X, Y         float64
	HalfW, HalfH float64
}

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Layout is a level converted to world units: the map center is the world
// origin and Y grows upward.
type Layout struct {
	Name    string
	Ground  Box
	Ceil    Box
	Despawn Box
	Bird    Point
	Spawner Point
}

// LoadLayout loads an embedded level by file name.
func LoadLayout(name string) (*Layout, error) {
	return LoadLayoutFS(assetFS, path.Join(levelsDir, name))
}

// LoadLayoutFS parses a TMX file from fsys. The map's pixelsPerUnit property
// sets the scale between Tiled pixels and world units.
func LoadLayoutFS(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := float64(levelMap.Properties.GetInt("pixelsPerUnit"))
	if ppu <= 0 {
		return nil, fmt.Errorf("load TMX %s: pixelsPerUnit must be positive, got %v", tmxPath, ppu)
	}

	conv := converter{
		ppu:     ppu,
		originX: float64(levelMap.Width*levelMap.TileWidth) / 2,
		originY: float64(levelMap.Height*levelMap.TileHeight) / 2,
	}

	objects := map[string]*tiled.Object{}
	for _, og := range levelMap.ObjectGroups {
		if og.Name != layoutGroup {
			continue
		}
		for _, o := range og.Objects {
			objects[o.Name] = o
		}
	}

	layout := &Layout{Name: path.Base(tmxPath)}
	boxes := []struct {
		name string
		dst  *Box
	}{
		{"Ground", &layout.Ground},
		{"Ceil", &layout.Ceil},
		{"Despawn", &layout.Despawn},
	}
	for _, b := range boxes {
		o, ok := objects[b.name]
		if !ok || o.Width <= 0 || o.Height <= 0 {
			return nil, fmt.Errorf("load TMX %s: %w: %s", tmxPath, ErrMissingObject, b.name)
		}
		*b.dst = conv.box(o)
	}

	points := []struct {
		name string
		dst  *Point
	}{
		{"Bird", &layout.Bird},
		{"Spawner", &layout.Spawner},
	}
	for _, p := range points {
		o, ok := objects[p.name]
		if !ok {
			return nil, fmt.Errorf("load TMX %s: %w: %s", tmxPath, ErrMissingObject, p.name)
		}
		*p.dst = conv.point(o.X, o.Y)
	}

	return layout, nil
}

type converter struct {
	ppu              float64
	originX, originY float64
}

func (c converter) point(px, py float64) Point {
	return Point{
		X: (px - c.originX) / c.ppu,
		Y: (c.originY - py) / c.ppu,
	}
}

// Tiled objects are anchored at their top-left corner.
func (c converter) box(o *tiled.Object) Box {
	center := c.point(o.X+o.Width/2, o.Y+o.Height/2)
	return Box{
		X:     center.X,
		Y:     center.Y,
		HalfW: o.Width / 2 / c.ppu,
		HalfH: o.Height / 2 / c.ppu,
	}
}

// Left returns the box's left edge.
func (b Box) Left() float64 { return b.X - b.HalfW }

// Right returns the box's right edge.
func (b Box) Right() float64 { return b.X + b.HalfW }

// Top returns the box's top edge.
func (b Box) Top() float64 { return b.Y + b.HalfH }

// Bottom returns the box's bottom edge.
func (b Box) Bottom() float64 { return b.Y - b.HalfH }
