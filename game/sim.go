package game

import (
	"github.com/mo-shahab/pong-sim/collision"
	"github.com/mo-shahab/pong-sim/motion"
)

// Simulator runs one tick of the game over a State. It holds no state of
// its own and is safe to share.
type Simulator struct {
	resolver collision.Resolver
}

// NewSimulator returns a Simulator for the arena and policy of s.
func NewSimulator(s Setup) Simulator {
	return Simulator{
		resolver: collision.Resolver{Arena: s.Arena, Policy: s.Policy},
	}
}

// Step returns the state one tick after st. st itself is left untouched.
func (sim Simulator) Step(st State, dt float64, in Input) State {
	next := st.Clone()
	sim.Advance(&next, dt, in)
	return next
}

// Advance moves st forward one tick in place. The order is fixed: paddles
// first, then the ball, then collisions against the moved ball and paddles.
// A negative dt is treated as zero.
func (sim Simulator) Advance(st *State, dt float64, in Input) collision.Result {
	if dt < 0 {
		dt = 0
	}

	for i := range st.Paddles {
		p := &st.Paddles[i]
		p.Move(sim.resolver.Arena, in.For(p.Side), dt)
	}

	motion.Integrate(&st.Ball, dt)

	res := sim.resolver.Resolve(&st.Ball, st.Paddles, st.Walls, &st.Contacts)
	st.Tick++
	return res
}
