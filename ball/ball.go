package ball

import "gonum.org/v1/gonum/spatial/r2"

type Ball struct {
	Position r2.Vec
	Velocity r2.Vec
	Radius   float64
}

// New creates a ball at pos heading along dir at the given speed.
// A zero direction gives a ball at rest.
func New(pos, dir r2.Vec, speed, radius float64) Ball {
	b := Ball{
		Position: pos,
		Radius:   radius,
	}
	b.Launch(dir, speed)
	return b
}

// Launch replaces the velocity with dir normalized and scaled to speed.
func (b *Ball) Launch(dir r2.Vec, speed float64) {
	if r2.Norm(dir) == 0 {
		b.Velocity = r2.Vec{}
		return
	}
	b.Velocity = r2.Scale(speed, r2.Unit(dir))
}

// Speed returns the magnitude of the velocity
func (b Ball) Speed() float64 {
	return r2.Norm(b.Velocity)
}

// Box returns the axis-aligned bounding box of the ball.
func (b Ball) Box() r2.Box {
	ext := r2.Vec{X: b.Radius, Y: b.Radius}
	return r2.Box{
		Min: r2.Sub(b.Position, ext),
		Max: r2.Add(b.Position, ext),
	}
}

func (b *Ball) Pos() r2.Vec     { return b.Position }
func (b *Ball) Vel() r2.Vec     { return b.Velocity }
func (b *Ball) MoveTo(p r2.Vec) { b.Position = p }

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.Velocity.X = -b.Velocity.X
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Velocity.Y = -b.Velocity.Y
}
