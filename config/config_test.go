package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ninarow/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 3, cfg.BoardSize)
	require.Equal(t, 3, cfg.WinLength)
	require.Equal(t, KindHuman, cfg.PlayerX)
	require.Equal(t, KindMinimax, cfg.PlayerO)
	require.Zero(t, cfg.MaxDepth)

	gameCfg, err := cfg.Game()
	require.NoError(t, err)
	require.Equal(t, game.Config{Size: 3, WinLength: 3}, gameCfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := `log-level: debug
board-size: 9
win-length: 5
player-x: minimax
player-o: random
max-depth: 6
time-limit-ms: 500
random-seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 9, cfg.BoardSize)
	require.Equal(t, 5, cfg.WinLength)
	require.Equal(t, KindMinimax, cfg.PlayerX)
	require.Equal(t, KindRandom, cfg.PlayerO)
	require.Equal(t, 6, cfg.MaxDepth)
	require.Equal(t, 500, cfg.TimeLimitMs)
	require.Equal(t, uint64(42), cfg.RandomSeed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestGameValidation(t *testing.T) {
	cfg := &Config{BoardSize: 3, WinLength: 5}

	_, err := cfg.Game()

	require.ErrorIs(t, err, game.ErrInvalidConfig)
}
