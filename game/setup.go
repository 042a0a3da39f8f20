package game

import (
	"time"

	"github.com/mo-shahab/pong-sim/arena"
	"github.com/mo-shahab/pong-sim/ball"
	"github.com/mo-shahab/pong-sim/collision"
	"github.com/mo-shahab/pong-sim/paddle"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrInvalidSetup is returned when a Setup cannot produce a playable state.
var ErrInvalidSetup = errors.New("invalid game setup")

// Game constants
const (
	// Ball constants
	DefaultBallSpeed  = 500.0
	DefaultBallRadius = 10.0

	// Paddle constants
	DefaultPaddleWidth  = 20.0
	DefaultPaddleHeight = 100.0
	DefaultPaddleSpeed  = 400.0
	DefaultPaddleInset  = 30.0

	// Game loop
	DefaultTickRate = 64
	MaxTickRate     = 1000
)

// DefaultSetup returns a two-paddle game in the default arena with the ball
// served from the center towards the bottom right.
func DefaultSetup() Setup {
	cfg := arena.Default()
	return Setup{
		Arena: cfg,
		Ball: BallSetup{
			Position:  cfg.Center(),
			Direction: r2.Vec{X: 0.5, Y: -0.5},
			Speed:     DefaultBallSpeed,
			Radius:    DefaultBallRadius,
		},
		Paddle: PaddleSetup{
			Width:  DefaultPaddleWidth,
			Height: DefaultPaddleHeight,
			Speed:  DefaultPaddleSpeed,
			Inset:  DefaultPaddleInset,
		},
		Variant:  TwoPaddle,
		Opponent: paddle.PlayerControlled{},
		Policy:   collision.PerOverlap,
		TickRate: DefaultTickRate,
	}
}

// Dt is the fixed step length implied by the tick rate.
func (s Setup) Dt() float64 {
	if s.TickRate <= 0 {
		return 0
	}
	return 1 / float64(s.TickRate)
}

// Interval is the wall-clock time between engine ticks.
func (s Setup) Interval() time.Duration {
	if s.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.TickRate)
}

// Validate checks that the setup describes a playable field.
func (s Setup) Validate() error {
	if err := s.Arena.Validate(); err != nil {
		return err
	}
	if s.TickRate <= 0 || s.TickRate > MaxTickRate {
		return errors.Wrapf(ErrInvalidSetup, "tick rate must be in 1..%d, got %d", MaxTickRate, s.TickRate)
	}

	b := s.Ball
	if !finiteVec(b.Position) || !finiteVec(b.Direction) {
		return errors.Wrapf(ErrInvalidSetup, "ball position %v and direction %v must be finite", b.Position, b.Direction)
	}
	if !nonNegative(b.Radius) || !nonNegative(b.Speed) {
		return errors.Wrapf(ErrInvalidSetup, "ball radius and speed must be finite and not negative (radius=%g speed=%g)", b.Radius, b.Speed)
	}
	if b.Position.X < s.Arena.Left || b.Position.X > s.Arena.Right ||
		b.Position.Y < s.Arena.Bottom || b.Position.Y > s.Arena.Top {
		return errors.Wrapf(ErrInvalidSetup, "ball starts outside the arena at %v", b.Position)
	}

	p := s.Paddle
	if !(p.Width > 0) || !(p.Height > 0) || !arena.Finite(p.Width) || !arena.Finite(p.Height) {
		return errors.Wrapf(ErrInvalidSetup, "paddle size must be finite and positive (%gx%g)", p.Width, p.Height)
	}
	if !nonNegative(p.Speed) || !nonNegative(p.Inset) {
		return errors.Wrapf(ErrInvalidSetup, "paddle speed and inset must be finite and not negative (speed=%g inset=%g)", p.Speed, p.Inset)
	}
	if bottom, top := paddle.Bounds(s.Arena, p.Height/2); bottom > top {
		return errors.Wrapf(ErrInvalidSetup, "paddle of height %g does not fit the arena", p.Height)
	}
	if s.Arena.WallThickness/2+p.Inset+p.Width >= s.Arena.Width()/2 {
		return errors.Wrapf(ErrInvalidSetup, "paddle inset %g and width %g reach past the net", p.Inset, p.Width)
	}
	return nil
}

// nonNegative is false for NaN and infinities as well as negatives.
func nonNegative(v float64) bool {
	return v >= 0 && arena.Finite(v)
}

func finiteVec(v r2.Vec) bool {
	return arena.Finite(v.X) && arena.Finite(v.Y)
}

// NewState builds the entity set for a session. The left paddle is always
// player controlled; the right one only exists in the two-paddle variant and
// follows the opponent strategy.
func NewState(s Setup) (State, error) {
	if err := s.Validate(); err != nil {
		return State{}, err
	}

	size := r2.Vec{X: s.Paddle.Width, Y: s.Paddle.Height}
	paddles := []paddle.Paddle{
		paddle.New(paddle.Left, s.Arena, size, s.Paddle.Speed, s.Paddle.Inset, paddle.PlayerControlled{}),
	}
	if s.Variant == TwoPaddle {
		opponent := s.Opponent
		if opponent == nil {
			opponent = paddle.PlayerControlled{}
		}
		paddles = append(paddles,
			paddle.New(paddle.Right, s.Arena, size, s.Paddle.Speed, s.Paddle.Inset, opponent))
	}

	return State{
		Ball:    ball.New(s.Ball.Position, s.Ball.Direction, s.Ball.Speed, s.Ball.Radius),
		Paddles: paddles,
		Walls:   s.Arena.Walls(),
	}, nil
}
