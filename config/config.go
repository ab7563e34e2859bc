package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"ninarow/game"
)

// Player kinds accepted by the CLI driver.
const (
	KindHuman   = "human"
	KindRandom  = "random"
	KindMinimax = "minimax"
)

// Config is the CLI driver configuration: a yaml file overridden by
// environment variables. Board geometry validation lives in
// game.NewConfig; this struct only carries the raw values.
type Config struct {
	LogLevel    string `yaml:"log-level" env:"NINAROW_LOG_LEVEL" env-default:"info"`
	BoardSize   int    `yaml:"board-size" env:"NINAROW_BOARD_SIZE" env-default:"3"`
	WinLength   int    `yaml:"win-length" env:"NINAROW_WIN_LENGTH" env-default:"3"`
	PlayerX     string `yaml:"player-x" env:"NINAROW_PLAYER_X" env-default:"human"`
	PlayerO     string `yaml:"player-o" env:"NINAROW_PLAYER_O" env-default:"minimax"`
	MaxDepth    int    `yaml:"max-depth" env:"NINAROW_MAX_DEPTH" env-default:"0"`
	TimeLimitMs int    `yaml:"time-limit-ms" env:"NINAROW_TIME_LIMIT_MS" env-default:"0"`
	RandomSeed  uint64 `yaml:"random-seed" env:"NINAROW_RANDOM_SEED" env-default:"0"`
}

// Load reads the configuration from path, or from the environment alone
// when path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
	}
	return cfg, nil
}

// Game validates the board geometry and returns it as a game.Config.
func (c *Config) Game() (game.Config, error) {
	return game.NewConfig(c.BoardSize, c.WinLength)
}
