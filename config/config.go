package config

import "image/color"

// ArenaConfig is the playable rectangle in world units (y up, origin at the centre).
type ArenaConfig struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64

	WallColor  color.RGBA
	FloorColor color.RGBA
}

// Width returns the horizontal extent of the arena.
func (a ArenaConfig) Width() float64 { return a.Right - a.Left }

// Height returns the vertical extent of the arena.
func (a ArenaConfig) Height() float64 { return a.Top - a.Bottom }

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Size   float64 // radius; also the contact radius for enemies
	Speed  float64 // units per second per axis
	Health int

	// Spawn position in world units
	StartX float64
	StartY float64

	Color color.RGBA
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	Size   float64
	Speed  float64 // fraction of the remaining distance closed per second
	Health int
	Damage int // health removed from the player per contact

	Color color.RGBA
}

// WaveConfig controls the repeating enemy spawner
type WaveConfig struct {
	IntervalSeconds  float64
	SpawnPerWave     int
	MinSpawnDistance float64
}

// EndScreenConfig contains the win/lose overlay configuration
type EndScreenConfig struct {
	BoxWidth    float64
	BoxHeight   float64
	BoxLayer    float64
	TextLayer   float64
	LostColor   color.RGBA
	WonColor    color.RGBA
	TextColor   color.RGBA
	FontSize    float64
	LostText    string
	WonText     string
	FadeSeconds float64
}

// SplashConfig contains the title card configuration
type SplashConfig struct {
	Duration  float64 // seconds
	Title     string
	Subtitle  string
	TitleY    float64
	Color     color.RGBA
	SkipOnKey bool
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// HUDConfig contains the in-game overlay layout
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64
	BarBgColor      color.RGBA
	BarFgColor      color.RGBA
	TextColor       color.RGBA
}

// BloomConfig maps display quality to post-processing strength
type BloomConfig struct {
	Intensity map[DisplayQuality]float32
	Threshold float32
	Spread    float32 // sample spacing in pixels
	// Halo radius multiplier drawn under each glowing circle
	HaloScale float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipSplash bool
	Seed       int64 // 0 = time based
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Wave WaveConfig
var EndScreen EndScreenConfig
var Splash SplashConfig
var Menu MenuConfig
var Pause PauseConfig
var HUD HUDConfig
var Bloom BloomConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	TextGrey     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	EnemyRed     = color.RGBA{R: 255, G: 77, B: 77, A: 255}
	PlayerBlue   = color.RGBA{R: 77, G: 77, B: 255, A: 255}
	LostRed      = color.RGBA{R: 61, G: 7, B: 7, A: 255}
	WonGreen     = color.RGBA{R: 2, G: 97, B: 27, A: 255}
)

func init() {
	C = &Config{
		Width:  1000,
		Height: 700,
		Title:  "glowswarm",
		TPS:    60,
	}

	Arena = ArenaConfig{
		Left:       -450,
		Right:      450,
		Bottom:     -300,
		Top:        300,
		WallColor:  color.RGBA{R: 40, G: 40, B: 70, A: 255},
		FloorColor: color.RGBA{R: 8, G: 8, B: 16, A: 255},
	}

	Player = PlayerConfig{
		Size:   20,
		Speed:  500,
		Health: 100,
		StartX: -200,
		StartY: 0,
		Color:  PlayerBlue,
	}

	Enemy = EnemyConfig{
		Size:   10,
		Speed:  0.5,
		Health: 100,
		Damage: 10,
		Color:  EnemyRed,
	}

	Wave = WaveConfig{
		IntervalSeconds:  1,
		SpawnPerWave:     25,
		MinSpawnDistance: 100,
	}

	EndScreen = EndScreenConfig{
		BoxWidth:    600,
		BoxHeight:   600,
		BoxLayer:    6,
		TextLayer:   7,
		LostColor:   LostRed,
		WonColor:    WonGreen,
		TextColor:   White,
		FontSize:    60,
		LostText:    "Game Over! You lost.\nPress any key to return to the menu.",
		WonText:     "You win! \nPress any key to return to the menu.",
		FadeSeconds: 0.25,
	}

	Splash = SplashConfig{
		Duration:  1,
		Title:     "GLOWSWARM",
		Subtitle:  "survive the swarm",
		TitleY:    300,
		Color:     LightBlue,
		SkipOnKey: true,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "GLOWSWARM",
		TitleY:            180,
		MenuStartY:        280,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Esc/P: Resume   Backspace: Main Menu",
	}

	HUD = HUDConfig{
		HealthBarWidth:  200,
		HealthBarHeight: 14,
		Margin:          12,
		BarBgColor:      color.RGBA{R: 40, G: 40, B: 40, A: 255},
		BarFgColor:      color.RGBA{R: 40, G: 220, B: 40, A: 255},
		TextColor:       TextGrey,
	}

	Bloom = BloomConfig{
		Intensity: map[DisplayQuality]float32{
			QualityLow:    0,
			QualityMedium: 0.6,
			QualityHigh:   1.1,
		},
		Threshold: 0.35,
		Spread:    2.5,
		HaloScale: 1.8,
	}
}
