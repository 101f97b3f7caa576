package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned when an override leaves a value the game
// cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// errUnknownConfig lists keys present in the file that match no setting.
type errUnknownConfig []string

func (e errUnknownConfig) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}

// file is the on-disk layout. Every table is optional and only the keys
// present override the defaults.
type file struct {
	Window    Config          `toml:"window"`
	Screen    ScreenConfig    `toml:"screen"`
	World     WorldConfig     `toml:"world"`
	Bird      BirdConfig      `toml:"bird"`
	Pipe      PipeConfig      `toml:"pipe"`
	Ground    GroundConfig    `toml:"ground"`
	Collision CollisionConfig `toml:"collision"`
	HUD       HUDConfig       `toml:"hud"`
	GameOver  GameOverConfig  `toml:"gameover"`
	Debug     DebugConfig     `toml:"debug"`
}

// Load overlays the TOML file at path onto the current configuration. A
// missing file leaves the defaults in place. Nothing is applied when the file
// has unknown keys or invalid values.
func Load(path string) error {
	f := file{
		Window:    *C,
		Screen:    Screen,
		World:     World,
		Bird:      Bird,
		Pipe:      Pipe,
		Ground:    Ground,
		Collision: Collision,
		HUD:       HUD,
		GameOver:  GameOver,
		Debug:     Debug,
	}

	meta, err := toml.DecodeFile(path, &f)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var unknown errUnknownConfig
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		return fmt.Errorf("load config %s: %w", path, unknown)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	*C = f.Window
	Screen = f.Screen
	World = f.World
	Bird = f.Bird
	Pipe = f.Pipe
	Ground = f.Ground
	Collision = f.Collision
	HUD = f.HUD
	GameOver = f.GameOver
	Debug = f.Debug
	return nil
}

func (f *file) validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{f.Window.Width > 0 && f.Window.Height > 0, "window size"},
		{f.Window.TPS > 0, "window.tps"},
		{f.Screen.PixelsPerUnit > 0, "screen.pixelsperunit"},
		{f.Bird.Width > 0 && f.Bird.Height > 0, "bird size"},
		{f.Bird.HitBoxScale > 0, "bird.hitboxscale"},
		{f.Bird.MinRotation <= f.Bird.MaxRotation, "bird rotation range"},
		{f.Bird.MaxFallSpeed > 0 && f.Bird.RestSpeed >= 0, "bird fall speeds"},
		{f.Pipe.Width > 0 && f.Pipe.Height > 0, "pipe size"},
		{f.Pipe.SpawnInterval > 0, "pipe.spawninterval"},
		{f.Pipe.HeightRange >= 0, "pipe.heightrange"},
		{f.Pipe.GateWidth > 0, "pipe.gatewidth"},
		{f.Ground.TileWidth > 0, "ground.tilewidth"},
		{f.Collision.PushFactor >= 0, "collision.pushfactor"},
		{f.Collision.CellSize > 0, "collision.cellsize"},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, c.name)
		}
	}
	return nil
}
