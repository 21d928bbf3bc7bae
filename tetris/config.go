package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config cannot describe a playable board.
var ErrInvalidConfig = errors.New("invalid board config")

// Config holds the fixed parameters of a Playfield.
type Config struct {
	Width         int
	Height        int
	ScorePerLine  int
	LinesPerLevel int
}

// DefaultConfig returns a 10x30 board scoring 100 per line.
func DefaultConfig() Config {
	return Config{
		Width:         10,
		Height:        30,
		ScorePerLine:  100,
		LinesPerLevel: 10,
	}
}

// Validate checks that every shape fits the board and the scoring values are
// usable.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("%w: width %d is narrower than a piece", ErrInvalidConfig, c.Width)
	case c.Height < 4:
		return fmt.Errorf("%w: height %d is shorter than a piece", ErrInvalidConfig, c.Height)
	case c.ScorePerLine < 0:
		return fmt.Errorf("%w: negative score per line %d", ErrInvalidConfig, c.ScorePerLine)
	case c.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalidConfig, c.LinesPerLevel)
	}
	return nil
}
