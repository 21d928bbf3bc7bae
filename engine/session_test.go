package engine_test

import (
	"testing"

	"github.com/plus3/futris/engine"
	"github.com/plus3/futris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRestart(t *testing.T) {
	input := engine.NewChannelInput(64)
	session, err := engine.NewSession(tetris.DefaultConfig(), fixedSource(tetris.KindO),
		&engine.InputSystem{Source: input},
		&engine.GravitySystem{Curve: engine.DefaultCurve()},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, session.Games())

	first := session.Board()
	for first.InProgress() {
		input.Send(tetris.HardDrop)
		session.Update(1.0 / 60)
	}
	assert.Equal(t, 1, session.Stats().Finished())
	placed := session.Stats().Placed(tetris.KindO)

	require.NoError(t, session.Restart())
	second := session.Board()

	assert.NotSame(t, first, second)
	assert.True(t, second.InProgress())
	assert.Equal(t, 2, session.Games())
	assert.Same(t, second, session.Scheduler().Board())

	input.Send(tetris.HardDrop)
	session.Update(1.0 / 60)
	assert.Equal(t, placed+1, session.Stats().Placed(tetris.KindO))
	assert.Equal(t, 2, session.Scheduler().GetStats().SystemCount)
}

func TestSessionRejectsInvalidConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Width = 1

	_, err := engine.NewSession(cfg, fixedSource(tetris.KindO))
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}
