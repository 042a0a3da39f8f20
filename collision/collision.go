// Package collision reflects the ball off the arena walls and the paddles.
//
// Reflection only ever negates velocity components, so the ball's speed is
// unchanged by any resolver pass. The resolver never moves the ball: a fast
// ball on a slow tick can pass straight through a paddle or a wall.
package collision

import (
	"github.com/mo-shahab/pong-sim/arena"
	"github.com/mo-shahab/pong-sim/ball"
	"github.com/mo-shahab/pong-sim/paddle"
	"gonum.org/v1/gonum/spatial/r2"
)

// Policy controls when an overlap counts as a bounce.
type Policy int

const (
	// PerOverlap negates on every raw overlap, every tick. Two paddle
	// overlaps in the same tick cancel out, and a ball still inside a paddle
	// on the next tick is flipped back.
	PerOverlap Policy = iota

	// PerEntry negates only when a contact starts, and at most once per
	// axis per tick.
	PerEntry
)

func (p Policy) String() string {
	if p == PerEntry {
		return "entry"
	}
	return "overlap"
}

// ParsePolicy maps a config name onto a Policy.
func ParsePolicy(name string) (Policy, bool) {
	switch name {
	case "overlap", "":
		return PerOverlap, true
	case "entry":
		return PerEntry, true
	}
	return PerOverlap, false
}

// Result describes what the ball touched during one pass.
type Result struct {
	Walls    []arena.Role
	Paddles  []paddle.Side
	FlippedX bool
	FlippedY bool
}

// Resolver checks the ball against the arena bounds and a set of paddles.
type Resolver struct {
	Arena  arena.Config
	Policy Policy
}

// Overlaps is the strict AABB test between the ball's bounding square and a
// rectangle. Touching edges do not overlap.
func Overlaps(b ball.Ball, box r2.Box) bool {
	return b.Position.X-b.Radius < box.Max.X &&
		b.Position.X+b.Radius > box.Min.X &&
		b.Position.Y-b.Radius < box.Max.Y &&
		b.Position.Y+b.Radius > box.Min.Y
}

// Touches reports whether the ball has reached the bound guarded by a wall
// with the given role. The middle net never touches.
func (r Resolver) Touches(b ball.Ball, role arena.Role) bool {
	switch role {
	case arena.RoleLeft:
		return b.Position.X-b.Radius <= r.Arena.Left
	case arena.RoleRight:
		return b.Position.X+b.Radius >= r.Arena.Right
	case arena.RoleBottom:
		return b.Position.Y-b.Radius <= r.Arena.Bottom
	case arena.RoleTop:
		return b.Position.Y+b.Radius >= r.Arena.Top
	}
	return false
}

// Resolve inspects the ball's current position and negates its velocity
// components for every surface it has crossed. Flips are counted first and
// applied once per axis at the end.
//
// contacts carries the set of surfaces touched on the previous pass and is
// updated in place. It may be nil, in which case every contact is new.
func (r Resolver) Resolve(b *ball.Ball, paddles []paddle.Paddle, walls []arena.Wall, contacts *Contacts) Result {
	var (
		res            Result
		prev, now      Contacts
		hitX, hitY     bool
		flipsX, flipsY int
	)
	if contacts != nil {
		prev = *contacts
	}

	for _, w := range walls {
		if !w.Role.Collides() || !r.Touches(*b, w.Role) {
			continue
		}
		key := wallKey(w.Role)
		now = now.with(key)
		if r.Policy == PerEntry && prev.Has(key) {
			continue
		}

		res.Walls = append(res.Walls, w.Role)
		switch w.Role {
		case arena.RoleLeft, arena.RoleRight:
			hitX = true
		case arena.RoleTop, arena.RoleBottom:
			hitY = true
		}
	}
	if hitX {
		flipsX++
	}
	if hitY {
		flipsY++
	}

	for i, p := range paddles {
		if !Overlaps(*b, p.Box()) {
			continue
		}
		key := paddleKey(i)
		now = now.with(key)
		if r.Policy == PerEntry && prev.Has(key) {
			continue
		}

		res.Paddles = append(res.Paddles, p.Side)
		flipsX++
	}

	if r.Policy == PerEntry {
		flipsX = min(flipsX, 1)
		flipsY = min(flipsY, 1)
	}

	if flipsX%2 == 1 {
		b.BounceX()
		res.FlippedX = true
	}
	if flipsY%2 == 1 {
		b.BounceY()
		res.FlippedY = true
	}

	if contacts != nil {
		*contacts = now
	}
	return res
}
