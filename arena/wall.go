package arena

import "gonum.org/v1/gonum/spatial/r2"

// Role identifies which edge of the arena a wall sits on.
type Role int

const (
	RoleLeft Role = iota
	RoleRight
	RoleTop
	RoleBottom
	RoleMiddle
)

func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "left"
	case RoleRight:
		return "right"
	case RoleTop:
		return "top"
	case RoleBottom:
		return "bottom"
	case RoleMiddle:
		return "middle"
	}
	return "unknown"
}

// Collides reports whether the ball can bounce off a wall with this role.
// The middle net is decorative.
func (r Role) Collides() bool {
	return r != RoleMiddle
}

// Wall is a static rectangle given by its center and half extents.
type Wall struct {
	Role     Role
	Position r2.Vec
	HalfSize r2.Vec
}

// Box returns the wall rectangle as min/max corners.
func (w Wall) Box() r2.Box {
	return r2.Box{
		Min: r2.Sub(w.Position, w.HalfSize),
		Max: r2.Add(w.Position, w.HalfSize),
	}
}

// Walls derives the five wall rectangles. The border walls are centered on
// the bound lines and extended by half a thickness so the corners close.
func (c Config) Walls() []Wall {
	center := c.Center()
	half := c.WallThickness / 2
	w, h := c.Width(), c.Height()

	return []Wall{
		{
			Role:     RoleLeft,
			Position: r2.Vec{X: c.Left, Y: center.Y},
			HalfSize: r2.Vec{X: half, Y: h/2 + half},
		},
		{
			Role:     RoleRight,
			Position: r2.Vec{X: c.Right, Y: center.Y},
			HalfSize: r2.Vec{X: half, Y: h/2 + half},
		},
		{
			Role:     RoleTop,
			Position: r2.Vec{X: center.X, Y: c.Top},
			HalfSize: r2.Vec{X: w/2 + half, Y: half},
		},
		{
			Role:     RoleBottom,
			Position: r2.Vec{X: center.X, Y: c.Bottom},
			HalfSize: r2.Vec{X: w/2 + half, Y: half},
		},
		{
			Role:     RoleMiddle,
			Position: center,
			HalfSize: r2.Vec{X: half, Y: h / 2},
		},
	}
}
