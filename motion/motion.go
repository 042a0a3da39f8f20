// Package motion advances bodies along their velocity over a time step.
package motion

import "gonum.org/v1/gonum/spatial/r2"

// Body is anything with a position that moves by a velocity.
type Body interface {
	Pos() r2.Vec
	Vel() r2.Vec
	MoveTo(p r2.Vec)
}

// Advance returns pos + vel*dt.
func Advance(pos, vel r2.Vec, dt float64) r2.Vec {
	return r2.Add(pos, r2.Scale(dt, vel))
}

// Integrate moves b in place. A zero dt leaves it where it is.
func Integrate(b Body, dt float64) {
	b.MoveTo(Advance(b.Pos(), b.Vel(), dt))
}

func IntegrateAll(dt float64, bodies ...Body) {
	for _, b := range bodies {
		Integrate(b, dt)
	}
}
