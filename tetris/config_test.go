package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow", func(c *Config) { c.Width = 3 }},
		{"short", func(c *Config) { c.Height = 2 }},
		{"negative score", func(c *Config) { c.ScorePerLine = -1 }},
		{"zero lines per level", func(c *Config) { c.LinesPerLevel = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			_, err := NewPlayfield(cfg, NewSource(1))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewPlayfieldRequiresSource(t *testing.T) {
	_, err := NewPlayfield(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
