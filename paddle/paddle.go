package paddle

import (
	"github.com/mo-shahab/pong-sim/arena"
	"gonum.org/v1/gonum/spatial/r2"
)

// Side is the half of the arena a paddle defends.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Paddle is a vertical bar whose x is fixed at spawn and whose y is driven
// by its controller every tick.
type Paddle struct {
	Side     Side
	Position r2.Vec
	HalfSize r2.Vec
	Speed    float64
	Strategy Strategy
}

// New places a paddle of the given full size on its side of the arena,
// inset from the wall, vertically centered.
func New(side Side, cfg arena.Config, size r2.Vec, speed, inset float64, strategy Strategy) Paddle {
	half := r2.Scale(0.5, size)
	offset := cfg.WallThickness/2 + inset + half.X

	x := cfg.Left + offset
	if side == Right {
		x = cfg.Right - offset
	}

	if strategy == nil {
		strategy = Stationary{}
	}

	return Paddle{
		Side:     side,
		Position: r2.Vec{X: x, Y: cfg.Center().Y},
		HalfSize: half,
		Speed:    speed,
		Strategy: strategy,
	}
}

// Box returns the paddle rectangle as min/max corners.
func (p Paddle) Box() r2.Box {
	return r2.Box{
		Min: r2.Sub(p.Position, p.HalfSize),
		Max: r2.Add(p.Position, p.HalfSize),
	}
}

// Bounds returns the lowest and highest y a paddle center may take so that
// it keeps padding units away from the top and bottom walls.
func Bounds(cfg arena.Config, halfHeight float64) (bottom, top float64) {
	margin := cfg.WallThickness/2 + halfHeight + cfg.Padding
	return cfg.Bottom + margin, cfg.Top - margin
}

// Move applies the intent for one tick and clamps the result to Bounds.
// The strategy decides whether the requested intent is honoured.
func (p *Paddle) Move(cfg arena.Config, requested Intent, dt float64) {
	intent := requested
	if p.Strategy != nil {
		intent = p.Strategy.Decide(requested)
	}

	y := p.Position.Y + intent.Direction()*p.Speed*dt

	bottom, top := Bounds(cfg, p.HalfSize.Y)
	p.Position.Y = clamp(y, bottom, top)
}

// floor first, so an over-tall paddle pins to the top bound
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
