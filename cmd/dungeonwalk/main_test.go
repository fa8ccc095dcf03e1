package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonwalk/internal/config"
)

func TestLayoutsCommand(t *testing.T) {
	var out bytes.Buffer
	layoutsCmd.SetOut(&out)
	t.Cleanup(func() { layoutsCmd.SetOut(nil) })

	require.NoError(t, layoutsCmd.RunE(layoutsCmd, nil))

	assert.Contains(t, out.String(), "rooms")
	assert.Contains(t, out.String(), "open")
	assert.Contains(t, out.String(), "rooms-connected")
}

func TestConfigFlagIsRootOnly(t *testing.T) {
	assert.NotNil(t, rootCmd.Flags().Lookup("config"))
	assert.Nil(t, layoutsCmd.Flags().Lookup("config"))
	assert.Nil(t, layoutsCmd.InheritedFlags().Lookup("config"))
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	t.Setenv(config.EnvLayout, "")

	require.NoError(t, rootCmd.Flags().Set("layout", "open"))
	require.NoError(t, rootCmd.Flags().Set("log-level", "debug"))
	require.NoError(t, rootCmd.Flags().Set("no-vi", "true"))
	t.Cleanup(func() {
		flagLayout, flagLogLevel, flagNoVi = "", "", false
	})

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "open", cfg.Map.Layout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Input.ViKeys)
}

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walk.log")

	logger, closeLog, err := newLogger(config.LogConfig{File: path, Level: "info"})
	require.NoError(t, err)
	logger.Info("map built", "layout", "rooms")
	logger.Debug("hidden")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "map built")
	assert.Contains(t, string(data), "layout=rooms")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "chatty"})
	assert.Error(t, err)
}
