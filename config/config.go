package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	// TPS is the fixed update rate; per-tick values below assume it.
	TPS int `toml:"tps"`
}

// ShapeConfig contains the cell geometry shared by bodies and caves
type ShapeConfig struct {
	CellSize     float64 `toml:"cell_size"`
	FillColor    color.RGBA
	OutlineColor color.RGBA
	OutlineWidth float32 `toml:"outline_width"`
}

// MorphConfig contains the transformer animation tuning. Rates are per tick.
type MorphConfig struct {
	CommitEpsilon float64 `toml:"commit_epsilon"` // distance at which a pull commits
	PullGain      float64 `toml:"pull_gain"`      // fraction of the gap closed per tick
	ShrinkRate    float64 `toml:"shrink_rate"`    // fraction of scale lost per tick while pulled
	GrowRate      float64 `toml:"grow_rate"`      // scale regained per tick afterwards
	// MatchTolerance is how far a body origin may be from a cave origin on
	// each axis and still count as inside it.
	MatchTolerance float64 `toml:"match_tolerance"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MoveSpeed float64 `toml:"move_speed"` // pixels per tick
	JumpSpeed float64 `toml:"jump_speed"` // upward impulse, pixels per tick
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `toml:"gravity"`
	MaxFallSpeed float64 `toml:"max_fall_speed"`
	MaxRiseSpeed float64 `toml:"max_rise_speed"`
	// SpaceCellSize is the resolv broadphase cell size in pixels.
	SpaceCellSize int `toml:"space_cell_size"`
}

// TransformerConfig contains how zones are drawn
type TransformerConfig struct {
	FillColor     color.RGBA
	StrokeColor   color.RGBA
	StrokeWidth   float32 `toml:"stroke_width"`
	PulseWidth    float32 `toml:"pulse_width"`    // extra stroke at the top of a pulse
	PulseDuration float32 `toml:"pulse_duration"` // seconds per half pulse
	KindColors    map[string]color.RGBA
}

// CaveConfig contains how cave silhouettes are drawn
type CaveConfig struct {
	FillColor    color.RGBA
	MatchedColor color.RGBA
}

// BlockConfig contains level block settings
type BlockConfig struct {
	Color color.RGBA
	// TravelDuration is seconds for one leg of a floating block's trip.
	TravelDuration float32 `toml:"travel_duration"`
}

// TransitionConfig contains the fade between levels
type TransitionConfig struct {
	FadeOut      float32 `toml:"fade_out"` // seconds
	FadeIn       float32 `toml:"fade_in"`  // seconds
	OverlayColor color.RGBA
}

// LevelCompleteConfig contains the final overlay shown after the last level
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	Message      string
	ContinueHint string
}

// HUDConfig contains the in-game text overlay
type HUDConfig struct {
	TextColor  color.RGBA
	Margin     float64
	DebugColor color.RGBA
}

// MenuConfig contains the level select screen colors
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	LockedColor     color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonDisabled  color.RGBA
	Title           string
}

// CameraConfig contains camera follow settings
type CameraConfig struct {
	FollowSmoothing float64 `toml:"follow_smoothing"`
}

// ScreenShakeConfig contains screen shake intensity settings
type ScreenShakeConfig struct {
	CommitIntensity float64
	CommitDuration  int // frames
	MatchIntensity  float64
	MatchDuration   int // frames
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	LerpSpeed  float64 // how fast to return to normal scale
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	Overlay    bool // Draw zone radii, distances and animator state
	StartLevel int
}

// Global configuration instances
var C *Config
var Shape ShapeConfig
var Morph MorphConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Transformer TransformerConfig
var Cave CaveConfig
var Block BlockConfig
var Transition TransitionConfig
var LevelComplete LevelCompleteConfig
var HUD HUDConfig
var Menu MenuConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 249, G: 240, B: 108, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Purple       = color.RGBA{R: 150, G: 80, B: 255, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "shapeshift",
		TPS:    60,
	}

	Shape = ShapeConfig{
		CellSize:     50,
		FillColor:    LightBlue,
		OutlineColor: DarkBlue,
		OutlineWidth: 2,
	}

	Morph = MorphConfig{
		CommitEpsilon:  0.01,
		PullGain:       0.15,
		ShrinkRate:     0.06,
		GrowRate:       0.03,
		MatchTolerance: 25, // half a cell
	}

	// 200 px/s movement at 60 TPS, as in the first prototype.
	Player = PlayerConfig{
		MoveSpeed: 3.4,
		JumpSpeed: 8.5,
	}

	Physics = PhysicsConfig{
		Gravity:       0.35,
		MaxFallSpeed:  12.0,
		MaxRiseSpeed:  -12.0,
		SpaceCellSize: 25,
	}

	Transformer = TransformerConfig{
		FillColor:     color.RGBA{R: 255, G: 255, B: 255, A: 40},
		StrokeColor:   White,
		StrokeWidth:   2,
		PulseWidth:    3,
		PulseDuration: 0.6,
		KindColors: map[string]color.RGBA{
			"add_right": BrightGreen,
			"add_top":   Orange,
			"rotate_cw": Purple,
		},
	}

	Cave = CaveConfig{
		FillColor:    Yellow,
		MatchedColor: BrightGreen,
	}

	Block = BlockConfig{
		Color:          Grey,
		TravelDuration: 2,
	}

	Transition = TransitionConfig{
		FadeOut:      0.6,
		FadeIn:       0.4,
		OverlayColor: Black,
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		TitleY:       240,
		MessageY:     320,
		HintY:        480,
		Title:        "All caves filled!",
		Message:      "Every shape found its home.",
		ContinueHint: "Press ENTER to return to the menu",
	}

	HUD = HUDConfig{
		TextColor:  White,
		Margin:     12,
		DebugColor: Red,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:      Yellow,
		TextColor:       White,
		LockedColor:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		ButtonDisabled:  color.RGBA{R: 40, G: 40, B: 40, A: 255},
		Title:           "SHAPESHIFT",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	ScreenShake = ScreenShakeConfig{
		CommitIntensity: 4.0,
		CommitDuration:  8,
		MatchIntensity:  6.0,
		MatchDuration:   12,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.85,
		JumpScaleY: 1.15,
		LandScaleX: 1.2,
		LandScaleY: 0.8,
		LerpSpeed:  0.15,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
