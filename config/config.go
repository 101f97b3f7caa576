package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // fixed simulation steps per second
	Title  string
}

// ScreenConfig maps world units onto the window. World Y grows upward,
// screen Y grows downward.
type ScreenConfig struct {
	PixelsPerUnit float64
	ViewLeft      float64 // world X at the left edge of the window
	ViewTop       float64 // world Y at the top edge of the window
	SkyColor      color.RGBA
}

// WorldConfig contains values shared by everything in the level
type WorldConfig struct {
	Gravity float64 // units/s^2, negative pulls down
	Speed   float64 // horizontal scroll speed of pipes and ground, units/s
	Level   string  // embedded level file
}

// BirdConfig contains all bird-related configuration values
type BirdConfig struct {
	// Dimensions, world units
	Width       float64
	Height      float64
	HitBoxScale float64 // hit box = size * scale

	// Movement
	JumpSpeed    float64 // vertical velocity set on flap, units/s
	MaxFallSpeed float64 // downward speed clamp, units/s
	RestSpeed    float64 // downward speed kept while resting on the ground

	// Rotation (degrees)
	RotationSpeed float64 // degrees per unit/s of vertical velocity
	MinRotation   float64
	MaxRotation   float64

	// Idle bob before the first flap
	BobAmplitude float64 // world units
	BobDuration  float64 // seconds for one half cycle

	Color     color.RGBA
	WingColor color.RGBA
}

// PipeConfig contains pipe and spawner configuration values
type PipeConfig struct {
	Width         float64
	Height        float64
	PairOffset    float64 // distance from the gap center to each pipe center
	HeightRange   float64 // gap center is picked uniformly in [-range, range]
	SpawnInterval float64 // seconds
	GateWidth     float64 // width of the scoring trigger in the gap

	Color    color.RGBA
	CapColor color.RGBA
}

// GroundConfig contains ground rendering configuration
type GroundConfig struct {
	TileWidth   float64 // texture offset wraps at this width
	Color       color.RGBA
	StripeColor color.RGBA
	GrassColor  color.RGBA
}

// CollisionConfig contains collision resolver configuration
type CollisionConfig struct {
	PushFactor    float64 // distance a blocked body is pushed off a surface
	TraceInterval float64 // minimum seconds between per-step debug traces
	CellSize      int     // resolv space cell size, pixels
}

// HUDConfig contains score and hint display configuration
type HUDConfig struct {
	ScoreY    float64
	HintY     float64
	Hint      string
	TextColor color.RGBA
	Shadow    color.RGBA
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	FlashDuration float64 // seconds
	FlashColor    color.RGBA
	PanelColor    color.RGBA
	TextColor     color.RGBA
	Title         string
	RetryLabel    string
	NewBestLabel  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes     bool // draw hit boxes
	BlockerColor color.RGBA
	TriggerColor color.RGBA
}

// Global configuration instances
var C *Config
var Screen ScreenConfig
var World WorldConfig
var Bird BirdConfig
var Pipe PipeConfig
var Ground GroundConfig
var Collision CollisionConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 40, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 90, G: 180, B: 50, A: 255}
	DarkGreen    = color.RGBA{R: 50, G: 120, B: 30, A: 255}
	LightGreen   = color.RGBA{R: 140, G: 220, B: 80, A: 255}
	Sand         = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	DarkSand     = color.RGBA{R: 200, G: 190, B: 120, A: 255}
	SkyBlue      = color.RGBA{R: 78, G: 192, B: 202, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  360,
		Height: 480,
		TPS:    60,
		Title:  "Flapper",
	}

	// 120 px per unit on a 360x480 window shows x in [-1.5, 1.5], y in [-2, 2]
	Screen = ScreenConfig{
		PixelsPerUnit: 120,
		ViewLeft:      -1.5,
		ViewTop:       2,
		SkyColor:      SkyBlue,
	}

	World = WorldConfig{
		Gravity: -9,
		Speed:   -1.2,
		Level:   "sky.tmx",
	}

	Bird = BirdConfig{
		Width:       0.34,
		Height:      0.24,
		HitBoxScale: 0.8,

		JumpSpeed:    3.2,
		MaxFallSpeed: 6,
		RestSpeed:    2,

		RotationSpeed: 12,
		MinRotation:   -90,
		MaxRotation:   30,

		BobAmplitude: 0.05,
		BobDuration:  0.4,

		Color:     Yellow,
		WingColor: Orange,
	}

	Pipe = PipeConfig{
		Width:         0.5,
		Height:        3.2,
		PairOffset:    2.0,
		HeightRange:   0.45,
		SpawnInterval: 1.6,
		GateWidth:     0.1,

		Color:    Green,
		CapColor: DarkGreen,
	}

	Ground = GroundConfig{
		TileWidth:   0.2,
		Color:       Sand,
		StripeColor: DarkSand,
		GrassColor:  LightGreen,
	}

	Collision = CollisionConfig{
		PushFactor:    0.004,
		TraceInterval: 0.5,
		CellSize:      16,
	}

	HUD = HUDConfig{
		ScoreY:    60,
		HintY:     300,
		Hint:      "Tap to start",
		TextColor: White,
		Shadow:    Black,
	}

	GameOver = GameOverConfig{
		FlashDuration: 0.3,
		FlashColor:    White,
		PanelColor:    BlackOverlay,
		TextColor:     White,
		Title:         "GAME OVER",
		RetryLabel:    "Retry",
		NewBestLabel:  "New best!",
	}

	Debug = DebugConfig{
		Hitboxes:     false,
		BlockerColor: Magenta,
		TriggerColor: Cyan,
	}
}

// Step returns the fixed simulation timestep in seconds.
func Step() float64 {
	return 1 / float64(C.TPS)
}
