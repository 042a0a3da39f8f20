package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/pong-sim/arena"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/mo-shahab/pong-sim/input"
	"gonum.org/v1/gonum/spatial/r2"
)

// view maps arena coordinates onto a grid of terminal cells. y grows
// upward in the arena and downward on screen.
type view struct {
	bounds        arena.Config
	width, height int
}

func (v view) cell(p r2.Vec) (int, int) {
	fx := (p.X - v.bounds.Left) / v.bounds.Width()
	fy := (v.bounds.Top - p.Y) / v.bounds.Height()
	x := int(math.Round(fx * float64(v.width-1)))
	y := int(math.Round(fy * float64(v.height-1)))
	return clampInt(x, 0, v.width-1), clampInt(y, 0, v.height-1)
}

// cells returns the rectangle of cells covered by box, inclusive.
func (v view) cells(box r2.Box) (x0, y0, x1, y1 int) {
	x0, y1 = v.cell(box.Min)
	x1, y0 = v.cell(box.Max)
	return x0, y0, x1, y1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// outer returns the bounds including the wall thickness so the walls
// themselves land on screen.
func outer(c arena.Config) arena.Config {
	half := c.WallThickness / 2
	c.Left -= half
	c.Right += half
	c.Bottom -= half
	c.Top += half
	return c
}

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	netStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	paddleStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func fill(screen tcell.Screen, x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func draw(screen tcell.Screen, bounds arena.Config, s game.Snapshot) {
	w, h := screen.Size()
	screen.Clear()
	if w < 2 || h < 3 {
		screen.Show()
		return
	}

	// the last row is the status line
	v := view{bounds: outer(bounds), width: w, height: h - 1}

	for _, wall := range s.Walls {
		x0, y0, x1, y1 := v.cells(wall.Box())
		if wall.Role == arena.RoleMiddle {
			fill(screen, x0, y0, x1, y1, ':', netStyle)
			continue
		}
		fill(screen, x0, y0, x1, y1, '#', wallStyle)
	}
	for _, p := range s.Paddles {
		x0, y0, x1, y1 := v.cells(p.Box())
		fill(screen, x0, y0, x1, y1, '█', paddleStyle)
	}
	bx, by := v.cell(s.Ball.Position)
	screen.SetContent(bx, by, 'o', nil, ballStyle)

	status := fmt.Sprintf(" %s  tick %d  w/s left  arrows right  esc quit ", s.Session, s.Tick)
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, textStyle)
	}
	screen.Show()
}

func quits(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// pumpEvents forwards polled events to out until poll returns nil or quit is
// closed, then closes out.
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, quit <-chan struct{}) {
	defer close(out)
	for {
		ev := poll()
		if ev == nil {
			// screen finalized
			return
		}
		select {
		case out <- ev:
		case <-quit:
			return
		}
	}
}

// runTerminal drives the engine from the terminal until the player quits.
// Key presses are latched between ticks and applied on the next one.
func runTerminal(e *game.Engine, setup game.Setup) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	keys := input.DefaultKeymap()
	var latch input.Latch

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go pumpEvents(screen.PollEvent, eventChan, quit)

	ticker := time.NewTicker(setup.Interval())
	defer ticker.Stop()

	draw(screen, setup.Arena, e.Snapshot())
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quits(ev) {
					return nil
				}
				if b, ok := keys.Event(ev); ok {
					latch.Press(b)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			e.SetInput(latch.Resolve())
			draw(screen, setup.Arena, e.Tick())
		}
	}
}
