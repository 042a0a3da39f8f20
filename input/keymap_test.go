package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/mo-shahab/pong-sim/paddle"
)

func TestDefaultKeymap(t *testing.T) {
	k := DefaultKeymap()

	testCases := []struct {
		name string
		key  tcell.Key
		r    rune
		want Binding
		ok   bool
	}{
		{"W", tcell.KeyRune, 'w', Binding{paddle.Left, paddle.Up}, true},
		{"ShiftW", tcell.KeyRune, 'W', Binding{paddle.Left, paddle.Up}, true},
		{"S", tcell.KeyRune, 's', Binding{paddle.Left, paddle.Down}, true},
		{"ArrowUp", tcell.KeyUp, 0, Binding{paddle.Right, paddle.Up}, true},
		{"ArrowDown", tcell.KeyDown, 0, Binding{paddle.Right, paddle.Down}, true},
		{"Unbound", tcell.KeyRune, 'x', Binding{}, false},
		{"ArrowLeft", tcell.KeyLeft, 0, Binding{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := k.Lookup(tc.key, tc.r)
			if ok != tc.ok || got != tc.want {
				t.Errorf("Lookup(%v, %q) = %+v, %t; want %+v, %t", tc.key, tc.r, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestKeymap_Rebind(t *testing.T) {
	k := NewKeymap()
	k.BindRune('K', paddle.Right, paddle.Up)
	k.BindKey(tcell.KeyPgDn, paddle.Right, paddle.Down)

	if b, ok := k.Lookup(tcell.KeyRune, 'k'); !ok || b.Intent != paddle.Up {
		t.Errorf("expected k bound to up, got %+v %t", b, ok)
	}
	if b, ok := k.Lookup(tcell.KeyPgDn, 0); !ok || b.Intent != paddle.Down {
		t.Errorf("expected PgDn bound to down, got %+v %t", b, ok)
	}
	if _, ok := k.Lookup(tcell.KeyRune, 'w'); ok {
		t.Error("an empty keymap should not carry defaults")
	}
}

func TestLatch(t *testing.T) {
	var l Latch

	l.Press(Binding{paddle.Left, paddle.Up})
	l.Press(Binding{paddle.Right, paddle.Down})
	l.Press(Binding{paddle.Right, paddle.Down})

	got := l.Resolve()
	if got != (game.Input{Left: paddle.Up, Right: paddle.Down}) {
		t.Errorf("unexpected input %+v", got)
	}

	// the latch clears after each tick
	if got := l.Resolve(); got != (game.Input{}) {
		t.Errorf("expected a neutral input after resolve, got %+v", got)
	}
}

func TestLatch_OppositeKeysCancel(t *testing.T) {
	var l Latch

	l.Press(Binding{paddle.Left, paddle.Up})
	l.Press(Binding{paddle.Left, paddle.Down})
	l.Press(Binding{paddle.Right, paddle.Up})

	got := l.Resolve()
	if got.Left != paddle.Neutral {
		t.Errorf("up and down should cancel, got %s", got.Left)
	}
	if got.Right != paddle.Up {
		t.Errorf("right should be up, got %s", got.Right)
	}
}

func TestLatch_IgnoresNeutralAndUnknownSide(t *testing.T) {
	var l Latch

	l.Press(Binding{paddle.Left, paddle.Neutral})
	l.Press(Binding{paddle.Side(7), paddle.Up})

	if got := l.Resolve(); got != (game.Input{}) {
		t.Errorf("expected a neutral input, got %+v", got)
	}
}
