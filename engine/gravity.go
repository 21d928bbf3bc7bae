package engine

import "time"

// Curve maps a level to the gravity interval. Each level shortens the
// interval by Step until it reaches Min.
type Curve struct {
	Base time.Duration
	Step time.Duration
	Min  time.Duration
}

// DefaultCurve starts at one row every 500ms and bottoms out at 80ms.
func DefaultCurve() Curve {
	return Curve{
		Base: 500 * time.Millisecond,
		Step: 40 * time.Millisecond,
		Min:  80 * time.Millisecond,
	}
}

// Interval returns the time between gravity ticks at level.
func (c Curve) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := c.Base - time.Duration(level-1)*c.Step
	if d < c.Min {
		return c.Min
	}
	return d
}

// GravitySystem queues a Tick whenever the accumulated frame time reaches the
// interval for the board's current level.
type GravitySystem struct {
	Curve       Curve
	Accumulator float64
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	if !frame.Board.InProgress() {
		s.Accumulator = 0
		return
	}

	s.Accumulator += frame.DeltaTime
	if s.Accumulator >= s.Curve.Interval(frame.Board.Level()).Seconds() {
		s.Accumulator = 0
		frame.Commands.Tick()
	}
}
