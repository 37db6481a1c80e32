package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func setFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() {
		flagConfig, flagDifficulty = oldCfg, oldDiff
	})
}

func TestLoadConfigAppliesPreset(t *testing.T) {
	setFlags(t, "", "hard")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Difficulty.StartLevel)
	assert.Equal(t, 8, cfg.Difficulty.Progression.LinesPerLevel)
}

func TestLoadConfigRejectsUnknownPreset(t *testing.T) {
	setFlags(t, "", "insane")

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestLoadConfigCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("playfield:\n  width: 12\n  height: 22\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	setFlags(t, path, "")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Playfield.Width)
	assert.Equal(t, 22, cfg.Playfield.Height)
	assert.Equal(t, config.MovementStrict, cfg.Rules.Movement)
}

func TestNewSessionRuntime(t *testing.T) {
	setFlags(t, "", "")
	oldSeed := flagSeed
	flagSeed = 42
	t.Cleanup(func() { flagSeed = oldSeed })

	s, err := newSession()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	assert.Positive(t, s.runtime.ScreenW)
	assert.Positive(t, s.runtime.ScreenH)
	assert.Equal(t, int64(42), s.runtime.Seed)
	assert.Nil(t, s.sound)
}

func TestVariantsAreRegistered(t *testing.T) {
	for _, id := range []string{"marathon", "classic", "wide"} {
		assert.True(t, registry.Exists(id), id)
	}
}
