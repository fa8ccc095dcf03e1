package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	for _, key := range []string{EnvLayout, EnvLogLevel, EnvAPIKey, EnvDataset} {
		t.Setenv(key, "")
	}
	t.Setenv(EnvLogFile, "")
	os.Unsetenv(EnvLogFile)
	return dir
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	palette, err := cfg.Colors.Palette()
	require.NoError(t, err)
	r, g, b := palette.DarkWall.RGB()
	assert.Equal(t, [3]int32{0, 0, 100}, [3]int32{r, g, b})
	r, g, b = palette.DarkGround.RGB()
	assert.Equal(t, [3]int32{50, 50, 150}, [3]int32{r, g, b})

	assert.Equal(t, '@', cfg.Player.GlyphRune())
	level, err := cfg.Log.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, level)
}

func TestLoadWithoutFilesUsesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPathOverlaysDefault(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map:\n  layout: open\ninput:\n  vi_keys: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "open", cfg.Map.Layout)
	assert.False(t, cfg.Input.ViKeys)
	assert.Equal(t, 80, cfg.Map.Width, "unset keys keep their defaults")
	assert.Equal(t, 30, cfg.Screen.FPS)
}

func TestLoadLocalConfigsDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "config.yaml"), []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("screen: [not, a, map]\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLayout, "rooms-connected")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvDataset, "walks")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "rooms-connected", cfg.Map.Layout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "", cfg.Log.File, "an explicitly empty log file disables logging")
	assert.Equal(t, "secret", cfg.Telemetry.APIKey)
	assert.Equal(t, "walks", cfg.Telemetry.Dataset)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero screen", func(c *Config) { c.Screen.Width = 0 }},
		{"zero fps", func(c *Config) { c.Screen.FPS = 0 }},
		{"negative map", func(c *Config) { c.Map.Height = -1 }},
		{"map larger than screen", func(c *Config) { c.Map.Height = 51 }},
		{"no layout", func(c *Config) { c.Map.Layout = "" }},
		{"long glyph", func(c *Config) { c.Player.Glyph = "@@" }},
		{"empty glyph", func(c *Config) { c.Player.Glyph = "" }},
		{"bad color", func(c *Config) { c.Colors.DarkWall = "#12" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
