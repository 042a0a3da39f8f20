package collision

import "github.com/mo-shahab/pong-sim/arena"

// Contacts is the set of surfaces the ball overlapped on the last pass.
// Walls take the low bits by role, paddles take bits from 8 up by index.
// It is a plain value so a copied game state carries its own copy.
type Contacts uint64

const paddleShift = 8

// MaxPaddles is the number of paddles Contacts can track.
const MaxPaddles = 64 - paddleShift

func wallKey(r arena.Role) Contacts { return 1 << uint(r) }

func paddleKey(i int) Contacts {
	if i < 0 || i >= MaxPaddles {
		return 0
	}
	return 1 << uint(paddleShift+i)
}

func (c Contacts) Has(key Contacts) bool { return key != 0 && c&key == key }

func (c Contacts) with(key Contacts) Contacts { return c | key }

// TouchingWall reports whether the ball was against the given wall.
func (c Contacts) TouchingWall(r arena.Role) bool { return c.Has(wallKey(r)) }

// TouchingPaddle reports whether the ball overlapped the i-th paddle.
func (c Contacts) TouchingPaddle(i int) bool { return c.Has(paddleKey(i)) }
