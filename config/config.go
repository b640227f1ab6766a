package config

import (
	"image/color"
	"time"
)

// Default is the single render layer every entity is drawn on.
const Default = 0

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// ChainConfig sizes the rig that trails the player
type ChainConfig struct {
	Links      int     `yaml:"links"`
	LinkLength float64 `yaml:"link_length"`
	LinkRadius float64 `yaml:"link_radius"`
	LinkMass   float64 `yaml:"link_mass"`
	StackStart float64 `yaml:"stack_start"` // Height of the first link above the spawn point
	StackGap   float64 `yaml:"stack_gap"`   // Gap between stacked links at spawn
	Group      uint    `yaml:"group"`       // Collision group shared by all links
}

// BreakawayConfig controls when links snap and what they leave behind
type BreakawayConfig struct {
	Threshold    float64       `yaml:"threshold"` // Relative speed a link must exceed
	DebrisTTL    time.Duration `yaml:"debris_ttl"`
	DebrisRadius float64       `yaml:"debris_radius"`
	DebrisMass   float64       `yaml:"debris_mass"`
	DebrisGroup  uint          `yaml:"debris_group"` // Matches the chain group so debris never pushes the rig
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	WalkSpeed    float64 `yaml:"walk_speed"`
	Acceleration float64 `yaml:"acceleration"`
	AirAccel     float64 `yaml:"air_acceleration"`
	JumpImpulse  float64 `yaml:"jump_impulse"`

	// Mouse driven impulses
	MouseImpulse       bool    `yaml:"mouse_impulse"`
	MouseImpulseFactor float64 `yaml:"mouse_impulse_factor"`

	// Body
	Mass     float64 `yaml:"mass"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"` // Negative is down
	Iterations uint    `yaml:"iterations"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // How fast camera follows player (0.0-1.0)
}

// DropConfig sizes the falling-ball scene
type DropConfig struct {
	BallRadius   float64 `yaml:"ball_radius"`
	GroundRadius float64 `yaml:"ground_radius"`
	BallX        float64 `yaml:"ball_x"`
	GroundY      float64 `yaml:"ground_y"`
}

// GridConfig sizes the generated tile grid level
type GridConfig struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	TileSize float64 `yaml:"tile_size"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay       bool `yaml:"overlay"`        // Draw the HUD and body outlines
	LogGamepad    bool `yaml:"log_gamepad"`    // Log gamepad button and axis events
	LogBreakaways bool `yaml:"log_breakaways"` // Log every snapped link
}

// TelemetryConfig controls the optional CSV run log
type TelemetryConfig struct {
	Dir           string  `yaml:"dir"`            // Output directory, empty disables telemetry
	WindowSeconds float64 `yaml:"window_seconds"` // Simulation time covered by each row
}

// Global configuration instances
var C *Config
var Chain ChainConfig
var Breakaway BreakawayConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Drop DropConfig
var Grid GridConfig
var Debug DebugConfig
var Telemetry TelemetryConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Sky       = color.RGBA{R: 24, G: 28, B: 40, A: 255}

	PauseOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 128}
)

func init() {
	SetDefaults()
}

// SetDefaults resets every configuration instance to its built-in value.
func SetDefaults() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Chain = ChainConfig{
		Links:      8,
		LinkLength: 24,
		LinkRadius: 4,
		LinkMass:   0.5,
		StackStart: 60,
		StackGap:   2,
		Group:      1,
	}

	Breakaway = BreakawayConfig{
		Threshold:    1000.0,
		DebrisTTL:    5 * time.Second,
		DebrisRadius: 3,
		DebrisMass:   0.1,
		DebrisGroup:  1,
	}

	Player = PlayerConfig{
		WalkSpeed:    4000.0,
		Acceleration: 600.0,
		AirAccel:     600.0,
		JumpImpulse:  400.0,

		MouseImpulse:       false,
		MouseImpulseFactor: 2.0,

		Mass:     1.0,
		Width:    20,
		Height:   34,
		Friction: 0.9,
	}

	Physics = PhysicsConfig{
		Gravity:    -980.0,
		Iterations: 20,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Drop = DropConfig{
		BallRadius:   10,
		GroundRadius: 100,
		BallX:        20,
		GroundY:      -300,
	}

	Grid = GridConfig{
		Columns:  32,
		Rows:     32,
		TileSize: 16,
	}

	Debug = DebugConfig{
		Overlay: true,
	}

	Telemetry = TelemetryConfig{
		WindowSeconds: 1,
	}
}

// FixedStep is the physics timestep in seconds.
func FixedStep() float64 {
	if C == nil || C.TPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(C.TPS)
}
