// Package input turns terminal key events into per-side paddle intents.
package input

import (
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/mo-shahab/pong-sim/paddle"
)

// Binding is what a key asks for: one side, one direction.
type Binding struct {
	Side   paddle.Side
	Intent paddle.Intent
}

// Keymap resolves special keys and runes to bindings. Runes are matched
// case-insensitively.
type Keymap struct {
	keys  map[tcell.Key]Binding
	runes map[rune]Binding
}

// DefaultKeymap binds W/S to the left paddle and the arrow keys to the right.
func DefaultKeymap() Keymap {
	k := NewKeymap()
	k.BindRune('w', paddle.Left, paddle.Up)
	k.BindRune('s', paddle.Left, paddle.Down)
	k.BindKey(tcell.KeyUp, paddle.Right, paddle.Up)
	k.BindKey(tcell.KeyDown, paddle.Right, paddle.Down)
	return k
}

func NewKeymap() Keymap {
	return Keymap{
		keys:  make(map[tcell.Key]Binding),
		runes: make(map[rune]Binding),
	}
}

func (k Keymap) BindKey(key tcell.Key, side paddle.Side, intent paddle.Intent) {
	k.keys[key] = Binding{Side: side, Intent: intent}
}

func (k Keymap) BindRune(r rune, side paddle.Side, intent paddle.Intent) {
	k.runes[unicode.ToLower(r)] = Binding{Side: side, Intent: intent}
}

// Lookup resolves a key code and rune as reported by tcell.
func (k Keymap) Lookup(key tcell.Key, r rune) (Binding, bool) {
	if key == tcell.KeyRune {
		b, ok := k.runes[unicode.ToLower(r)]
		return b, ok
	}
	b, ok := k.keys[key]
	return b, ok
}

// Event resolves a tcell key event.
func (k Keymap) Event(ev *tcell.EventKey) (Binding, bool) {
	return k.Lookup(ev.Key(), ev.Rune())
}

// Latch collects key presses between ticks. Terminals report presses
// rather than held keys, so a press counts for the next tick only.
type Latch struct {
	mu      sync.Mutex
	pressed [2][2]bool // [side][up, down]
}

// Press records a binding for the current tick.
func (l *Latch) Press(b Binding) {
	if b.Side != paddle.Left && b.Side != paddle.Right {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	switch b.Intent {
	case paddle.Up:
		l.pressed[b.Side][0] = true
	case paddle.Down:
		l.pressed[b.Side][1] = true
	}
}

// Resolve combines the presses since the last call into an Input and clears
// the latch. Up and down on the same side cancel.
func (l *Latch) Resolve() game.Input {
	l.mu.Lock()
	defer l.mu.Unlock()

	in := game.Input{
		Left:  paddle.Combine(l.pressed[paddle.Left][0], l.pressed[paddle.Left][1]),
		Right: paddle.Combine(l.pressed[paddle.Right][0], l.pressed[paddle.Right][1]),
	}
	l.pressed = [2][2]bool{}
	return in
}
