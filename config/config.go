package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = 0

// MazeConfig contains maze layout and tile drawing values
type MazeConfig struct {
	// Dimensions in cells
	Width  int
	Height int

	// World units per cell
	TileSize float64

	// Collision space bucket size in world units
	SpaceCellSize int

	// Two shades each so neighbouring tiles read as separate bushes/grass
	WallColors  [2]color.RGBA
	FloorColors [2]color.RGBA
}

// HeroConfig contains hero movement and body values
type HeroConfig struct {
	Speed float64 // world units per second

	CollisionWidth  float64
	CollisionHeight float64

	DrawSize float64
	Color    color.RGBA
	EyeColor color.RGBA
}

// CoinConfig contains collectible values
type CoinConfig struct {
	CollisionSize float64
	DrawRadius    float32
	Color         color.RGBA
	RimColor      color.RGBA

	// Glow effect played when a coin is picked up
	GlowDuration float32 // seconds
	GlowScale    float32
}

// SessionConfig contains scoring and level progression values
type SessionConfig struct {
	BaseCoins  int
	CoinReward int
	Seed       int64 // 0 = seed from the clock
}

// TransitionConfig contains level change presentation values
type TransitionConfig struct {
	BannerFrames int // frames the "Level N!" banner stays up

	HopHeight   float32 // pixels
	HopDuration float32 // seconds per leg
	HopLegs     int     // up and down count as one leg each
}

// HUDConfig contains text layout for the heads-up display
type HUDConfig struct {
	TextColor color.RGBA

	TitleFormat   string
	TitleY        float64
	Instructions  string
	InstructionsY float64

	ScoreRight float64 // right edge of the score text
	ScoreY     float64

	BannerY float64

	DebugX float64
	DebugY float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor       color.RGBA
	PanelColor         color.RGBA
	ButtonColorIdle    color.RGBA
	ButtonColorHover   color.RGBA
	ButtonColorPressed color.RGBA
	TextColor          color.RGBA
	TitleColor         color.RGBA
	ButtonWidth        int
	ButtonHeight       int
	MenuItemGap        int
	MenuOptions        []string
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled bool // start with the overlay visible

	PathColor     color.RGBA
	WallLineColor color.RGBA
	HeroLineColor color.RGBA
	CoinLineColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Maze MazeConfig
var Hero HeroConfig
var Coin CoinConfig
var Session SessionConfig
var Transition TransitionConfig
var HUD HUDConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 200, B: 40, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Grub Game",
	}

	// Maze Config
	Maze = MazeConfig{
		Width:    20,
		Height:   15,
		TileSize: 40,

		SpaceCellSize: 20,

		WallColors: [2]color.RGBA{
			{R: 34, G: 99, B: 40, A: 255},
			{R: 28, G: 86, B: 34, A: 255},
		},
		FloorColors: [2]color.RGBA{
			{R: 120, G: 170, B: 80, A: 255},
			{R: 110, G: 160, B: 72, A: 255},
		},
	}

	// Hero Config
	Hero = HeroConfig{
		Speed:           200,
		CollisionWidth:  35,
		CollisionHeight: 35,
		DrawSize:        36,
		Color:           color.RGBA{R: 230, G: 200, B: 150, A: 255},
		EyeColor:        Black,
	}

	// Coin Config
	Coin = CoinConfig{
		CollisionSize: 30,
		DrawRadius:    14,
		Color:         Gold,
		RimColor:      Orange,
		GlowDuration:  0.5,
		GlowScale:     1.5,
	}

	// Session Config
	Session = SessionConfig{
		BaseCoins:  4,
		CoinReward: 100,
		Seed:       0,
	}

	// Transition Config
	Transition = TransitionConfig{
		BannerFrames: 120, // 2 seconds at 60fps
		HopHeight:    50,
		HopDuration:  0.2,
		HopLegs:      4,
	}

	// HUD Config
	HUD = HUDConfig{
		TextColor:     White,
		TitleFormat:   "Grub Game - Navigate the Maze & Collect All %d Coins!",
		TitleY:        30,
		Instructions:  "Arrow Keys: Move Hero | Click to focus game",
		InstructionsY: 570,
		ScoreRight:    750,
		ScoreY:        10,
		BannerY:       250,
		DebugX:        10,
		DebugY:        10,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor:       BlackOverlay,
		PanelColor:         color.RGBA{R: 15, G: 25, B: 50, A: 230},
		ButtonColorIdle:    DarkBlue,
		ButtonColorHover:   LightBlue,
		ButtonColorPressed: BrightOrange,
		TextColor:          White,
		TitleColor:         Orange,
		ButtonWidth:        180,
		ButtonHeight:       32,
		MenuItemGap:        12,
		MenuOptions:        []string{"Resume", "New Maze"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:       false,
		PathColor:     color.RGBA{R: 0, G: 255, B: 0, A: 51},
		WallLineColor: Red,
		HeroLineColor: Blue,
		CoinLineColor: Yellow,
	}
}
