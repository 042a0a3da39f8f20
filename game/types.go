package game

import (
	"github.com/mo-shahab/pong-sim/arena"
	"github.com/mo-shahab/pong-sim/ball"
	"github.com/mo-shahab/pong-sim/collision"
	"github.com/mo-shahab/pong-sim/paddle"
	"gonum.org/v1/gonum/spatial/r2"
)

// Variant selects how many paddles take part.
type Variant int

const (
	SinglePlayer Variant = iota
	TwoPaddle
)

func (v Variant) String() string {
	if v == TwoPaddle {
		return "two-paddle"
	}
	return "single"
}

// ParseVariant maps a config name onto a Variant.
func ParseVariant(name string) (Variant, bool) {
	switch name {
	case "single":
		return SinglePlayer, true
	case "two", "two-paddle", "":
		return TwoPaddle, true
	}
	return SinglePlayer, false
}

// BallSetup is the starting state of the ball
type BallSetup struct {
	Position  r2.Vec
	Direction r2.Vec
	Speed     float64
	Radius    float64
}

// PaddleSetup is shared by every paddle in a session.
type PaddleSetup struct {
	Width  float64
	Height float64
	Speed  float64
	Inset  float64
}

// Setup is everything needed to build the entity set of a session.
type Setup struct {
	Arena    arena.Config
	Ball     BallSetup
	Paddle   PaddleSetup
	Variant  Variant
	Opponent paddle.Strategy
	Policy   collision.Policy
	TickRate int
}

// Input carries the intent for each side for one tick.
type Input struct {
	Left  paddle.Intent
	Right paddle.Intent
}

// For returns the intent for the given side.
func (in Input) For(side paddle.Side) paddle.Intent {
	if side == paddle.Left {
		return in.Left
	}
	return in.Right
}

// With returns a copy of in with the intent for side replaced.
func (in Input) With(side paddle.Side, intent paddle.Intent) Input {
	if side == paddle.Left {
		in.Left = intent
	} else {
		in.Right = intent
	}
	return in
}

// State is the full entity set of a session. It is owned by exactly one
// loop; Walls is shared read-only between copies.
type State struct {
	Ball     ball.Ball
	Paddles  []paddle.Paddle
	Walls    []arena.Wall
	Contacts collision.Contacts
	Tick     uint64
}

// Clone returns a copy that shares nothing mutable with s.
func (s State) Clone() State {
	c := s
	c.Paddles = append([]paddle.Paddle(nil), s.Paddles...)
	return c
}

// Snapshot is the read-only geometry handed to renderers and recorders
// after each tick.
type Snapshot struct {
	Session string
	Tick    uint64
	Ball    ball.Ball
	Paddles []paddle.Paddle
	Walls   []arena.Wall
}

// Sink receives a snapshot after every engine tick.
type Sink interface {
	Publish(s Snapshot) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(s Snapshot) error

func (f SinkFunc) Publish(s Snapshot) error { return f(s) }
