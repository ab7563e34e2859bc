package game

import "fmt"

// Config fixes the board geometry for one game session. A Config is
// immutable once built; all validation happens in NewConfig so every
// consumer can assume a Config it receives is playable.
type Config struct {
	Size      int
	WinLength int
}

func NewConfig(size, winLength int) (Config, error) {
	cfg := Config{Size: size, WinLength: winLength}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: board size %d must be positive", ErrInvalidConfig, c.Size)
	}
	if c.WinLength < 1 {
		return fmt.Errorf("%w: win length %d must be at least 1", ErrInvalidConfig, c.WinLength)
	}
	if c.WinLength > c.Size {
		return fmt.Errorf("%w: win length %d exceeds board size %d", ErrInvalidConfig, c.WinLength, c.Size)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("Config{size=%d, win=%d}", c.Size, c.WinLength)
}
