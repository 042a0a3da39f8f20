package ball

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestNew_NormalizesDirection(t *testing.T) {
	b := New(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0.5, Y: -0.5}, 500, 10)

	if math.Abs(b.Speed()-500) > 1e-9 {
		t.Errorf("expected speed 500, got %f", b.Speed())
	}

	want := 500 / math.Sqrt2
	if math.Abs(b.Velocity.X-want) > 1e-9 || math.Abs(b.Velocity.Y+want) > 1e-9 {
		t.Errorf("expected velocity (%f, %f), got %v", want, -want, b.Velocity)
	}
	if b.Radius != 10 {
		t.Errorf("expected radius 10, got %f", b.Radius)
	}
}

func TestNew_ZeroDirection(t *testing.T) {
	b := New(r2.Vec{X: 3, Y: 4}, r2.Vec{}, 500, 10)

	if b.Velocity != (r2.Vec{}) {
		t.Errorf("expected ball at rest, got velocity %v", b.Velocity)
	}
	if b.Position != (r2.Vec{X: 3, Y: 4}) {
		t.Errorf("position should be kept, got %v", b.Position)
	}
}

func TestBounce(t *testing.T) {
	b := Ball{Velocity: r2.Vec{X: 0.5, Y: 0.3}}

	b.BounceX()
	if b.Velocity.X != -0.5 || b.Velocity.Y != 0.3 {
		t.Errorf("BounceX: expected (-0.5, 0.3), got %v", b.Velocity)
	}

	b.BounceY()
	if b.Velocity.X != -0.5 || b.Velocity.Y != -0.3 {
		t.Errorf("BounceY: expected (-0.5, -0.3), got %v", b.Velocity)
	}
}

func TestSpeed(t *testing.T) {
	b := Ball{Velocity: r2.Vec{X: 3, Y: 4}}

	// 3-4-5 triangle
	if b.Speed() != 5 {
		t.Errorf("expected speed=5, got %f", b.Speed())
	}
}

func TestBox(t *testing.T) {
	b := Ball{Position: r2.Vec{X: 10, Y: -5}, Radius: 2}
	box := b.Box()

	if box.Min != (r2.Vec{X: 8, Y: -7}) || box.Max != (r2.Vec{X: 12, Y: -3}) {
		t.Errorf("unexpected box %+v", box)
	}
}
