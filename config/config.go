package config

import (
	"image/color"
	"time"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// BoardConfig contains the tile board layout and colors
type BoardConfig struct {
	// Layout
	OriginX  float64 // Screen X of the board frame's top-left corner
	OriginY  float64 // Screen Y of the board frame's top-left corner
	Spread   float64 // Tile positions are drawn from [0, Spread) on both axes
	TileSize float64 // Tile diameter in pixels
	Border   float64 // Frame border width

	// Hit testing
	CellSize int // resolv space cell size in pixels

	// Colors
	FrameColor        color.RGBA
	FrameBorderColor  color.RGBA
	TileColor         color.RGBA
	TileBorderColor   color.RGBA
	TileTextColor     color.RGBA
	SelectedColor     color.RGBA
	SelectedTextColor color.RGBA
}

// FrameSize returns the edge length of the square board frame.
func (b BoardConfig) FrameSize() float64 {
	return b.Spread + b.TileSize
}

// TimingConfig contains the session clock values
type TimingConfig struct {
	TickInterval time.Duration // Wall-clock time between elapsed-time ticks
	TickQuantum  float64       // Seconds added to the elapsed time per tick
	RemovalDelay time.Duration // Delay between a correct selection and the tile's removal
	MaxFrameStep time.Duration // Upper bound on the clock delta applied in one frame
}

// TileCountConfig bounds the user-entered tile count
type TileCountConfig struct {
	Default int
	Min     int
	Max     int
}

// PanelConfig contains control panel configuration values
type PanelConfig struct {
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	InputColor      color.RGBA
	ButtonColor     color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	TextSize        float64
	TitleY          float64 // Baseline of the status title
	ContentTop      int     // Top inset of the widgets, below the title
	Padding         int
	Spacing         int
}

// FontConfig contains truetype font sizes for text drawn outside the panel
type FontConfig struct {
	TitleSize      float64
	TileNumberSize float64
	HintSize       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogSessions bool  // Log session transitions and outline tile hitboxes
	Seed        int64 // Tile placement seed (0 = time-based)
}

// Global configuration instances
var C *Config
var Board BoardConfig
var Timing TimingConfig
var TileCount TileCountConfig
var Panel PanelConfig
var Font FontConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	Green     = color.RGBA{R: 40, G: 190, B: 70, A: 255}
	Charcoal  = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	LightGray = color.RGBA{R: 210, G: 210, B: 215, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  360,
		Height: 480,
		TPS:    60,
		Title:  "TILE RUSH",
	}

	Board = BoardConfig{
		OriginX:  35,
		OriginY:  170,
		Spread:   250,
		TileSize: 40,
		Border:   2,

		CellSize: 10,

		FrameColor:        White,
		FrameBorderColor:  Charcoal,
		TileColor:         White,
		TileBorderColor:   Charcoal,
		TileTextColor:     Charcoal,
		SelectedColor:     Red,
		SelectedTextColor: White,
	}

	Timing = TimingConfig{
		TickInterval: 100 * time.Millisecond,
		TickQuantum:  0.1,
		RemovalDelay: 350 * time.Millisecond,
		MaxFrameStep: 250 * time.Millisecond, // Bounds catch-up after the window was suspended
	}

	TileCount = TileCountConfig{
		Default: 3,
		Min:     1,
		Max:     999, // Three digits fit inside a tile
	}

	Panel = PanelConfig{
		BackgroundColor: color.RGBA{R: 245, G: 245, B: 248, A: 255},
		TextColor:       Charcoal,
		InputColor:      White,
		ButtonColor:     DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 40, G: 70, B: 120, A: 255},
		TextSize:        14,
		TitleY:          38,
		ContentTop:      54,
		Padding:         12,
		Spacing:         8,
	}

	Font = FontConfig{
		TitleSize:      22,
		TileNumberSize: 14,
		HintSize:       10,
	}

	// Debug Config (defaults, can be overridden by env and CLI flags)
	Debug = DebugConfig{
		LogSessions: false,
		Seed:        0,
	}
}
