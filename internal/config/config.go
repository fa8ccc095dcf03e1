// Package config loads DungeonWalk settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonwalk/internal/gamedata"
)

// ErrInvalid is returned by Validate for any unusable setting.
var ErrInvalid = errors.New("invalid config")

// Config holds every runtime setting.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Map       MapConfig       `yaml:"map"`
	Colors    ColorsConfig    `yaml:"colors"`
	Player    PlayerConfig    `yaml:"player"`
	Input     InputConfig     `yaml:"input"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig sizes the console window.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"` // Upper bound on presented frames per second
}

// MapConfig sizes the map and picks its layout.
type MapConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Layout string `yaml:"layout"` // Layout ID from the embedded layouts
}

// ColorsConfig holds hex color strings.
type ColorsConfig struct {
	DarkWall   string `yaml:"dark_wall"`
	DarkGround string `yaml:"dark_ground"`
	Player     string `yaml:"player"`
}

// PlayerConfig describes how the player is drawn.
type PlayerConfig struct {
	Glyph string `yaml:"glyph"`
}

// InputConfig toggles optional key bindings.
type InputConfig struct {
	ViKeys bool `yaml:"vi_keys"` // h/j/k/l movement alongside the arrows
}

// LogConfig controls the file logger. An empty file discards log output.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// TelemetryConfig controls OpenTelemetry trace export.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Dataset  string `yaml:"dataset"`
	APIKey   string `yaml:"-"` // Only ever read from the environment
}

// Palette is the resolved set of drawing colors.
type Palette struct {
	DarkWall   tcell.Color
	DarkGround tcell.Color
	Player     tcell.Color
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{Width: 80, Height: 50, Title: "DungeonWalk", FPS: 30},
		Map:    MapConfig{Width: 80, Height: 45, Layout: "rooms"},
		Colors: ColorsConfig{
			DarkWall:   "#000064",
			DarkGround: "#323296",
			Player:     "#FFFFFF",
		},
		Player: PlayerConfig{Glyph: "@"},
		Input:  InputConfig{ViKeys: true},
		Log:    LogConfig{File: "dungeonwalk.log", Level: "info"},
		Telemetry: TelemetryConfig{
			Endpoint: "https://api.honeycomb.io",
			Dataset:  "dungeonwalk",
		},
	}
}

// Palette parses the configured colors.
func (c ColorsConfig) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.DarkWall, err = gamedata.ParseHexColor(c.DarkWall); err != nil {
		return p, fmt.Errorf("dark_wall: %w", err)
	}
	if p.DarkGround, err = gamedata.ParseHexColor(c.DarkGround); err != nil {
		return p, fmt.Errorf("dark_ground: %w", err)
	}
	if p.Player, err = gamedata.ParseHexColor(c.Player); err != nil {
		return p, fmt.Errorf("player: %w", err)
	}
	return p, nil
}

// GlyphRune returns the player glyph as a rune.
func (p PlayerConfig) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(p.Glyph)
	if r == utf8.RuneError {
		return '@'
	}
	return r
}

// LogLevel parses the configured log level.
func (l LogConfig) LogLevel() (log.Level, error) {
	return log.ParseLevel(l.Level)
}

// Validate checks that the configuration can start a game.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Screen.FPS)
	case c.Map.Width <= 0 || c.Map.Height <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalid, c.Map.Width, c.Map.Height)
	case c.Map.Width > c.Screen.Width || c.Map.Height > c.Screen.Height:
		return fmt.Errorf("%w: map %dx%d does not fit screen %dx%d",
			ErrInvalid, c.Map.Width, c.Map.Height, c.Screen.Width, c.Screen.Height)
	case c.Map.Layout == "":
		return fmt.Errorf("%w: no map layout", ErrInvalid)
	case utf8.RuneCountInString(c.Player.Glyph) != 1:
		return fmt.Errorf("%w: player glyph %q must be one character", ErrInvalid, c.Player.Glyph)
	}

	if _, err := c.Colors.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Log.LogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
