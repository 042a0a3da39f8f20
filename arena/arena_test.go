package arena

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Default", func(c *Config) {}, false},
		{"ZeroWidth", func(c *Config) { c.Right = c.Left }, true},
		{"InvertedWidth", func(c *Config) { c.Left, c.Right = c.Right, c.Left }, true},
		{"ZeroHeight", func(c *Config) { c.Top = c.Bottom }, true},
		{"InvertedHeight", func(c *Config) { c.Top = -1000 }, true},
		{"NegativeThickness", func(c *Config) { c.WallThickness = -1 }, true},
		{"NegativePadding", func(c *Config) { c.Padding = -0.5 }, true},
		{"ZeroThickness", func(c *Config) { c.WallThickness = 0 }, false},
		{"NaNThickness", func(c *Config) { c.WallThickness = math.NaN() }, true},
		{"NaNPadding", func(c *Config) { c.Padding = math.NaN() }, true},
		{"InfiniteLeft", func(c *Config) { c.Left = math.Inf(-1) }, true},
		{"NaNTop", func(c *Config) { c.Top = math.NaN() }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %+v", cfg)
				}
				if !errors.Is(err, ErrDegenerate) {
					t.Errorf("expected ErrDegenerate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultDimensions(t *testing.T) {
	cfg := Default()
	if cfg.Width() != 900 {
		t.Errorf("expected width 900, got %f", cfg.Width())
	}
	if cfg.Height() != 600 {
		t.Errorf("expected height 600, got %f", cfg.Height())
	}
	if c := cfg.Center(); c.X != 0 || c.Y != 0 {
		t.Errorf("expected center at origin, got %v", c)
	}
}

func TestFromWindow(t *testing.T) {
	cfg := FromWindow(800, 600, 10, 2)

	if cfg.Left != -389 || cfg.Right != 389 {
		t.Errorf("expected horizontal bounds ±389, got [%f, %f]", cfg.Left, cfg.Right)
	}
	if cfg.Bottom != -289 || cfg.Top != 289 {
		t.Errorf("expected vertical bounds ±289, got [%f, %f]", cfg.Bottom, cfg.Top)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("window-derived arena should validate: %v", err)
	}

	// a window smaller than its own borders collapses
	if err := FromWindow(20, 600, 10, 2).Validate(); err == nil {
		t.Error("expected tiny window to be rejected")
	}
}

func TestWalls(t *testing.T) {
	cfg := Default()
	walls := cfg.Walls()

	if len(walls) != 5 {
		t.Fatalf("expected 5 walls, got %d", len(walls))
	}

	byRole := make(map[Role]Wall)
	for _, w := range walls {
		if _, dup := byRole[w.Role]; dup {
			t.Fatalf("duplicate wall role %s", w.Role)
		}
		byRole[w.Role] = w
	}

	left := byRole[RoleLeft]
	if left.Position.X != cfg.Left || left.HalfSize.X != 5 || left.HalfSize.Y != 305 {
		t.Errorf("unexpected left wall %+v", left)
	}

	top := byRole[RoleTop]
	if top.Position.Y != cfg.Top || top.HalfSize.X != 455 || top.HalfSize.Y != 5 {
		t.Errorf("unexpected top wall %+v", top)
	}

	box := byRole[RoleBottom].Box()
	if box.Min.Y != -305 || box.Max.Y != -295 {
		t.Errorf("unexpected bottom wall box %+v", box)
	}

	middle := byRole[RoleMiddle]
	if middle.Role.Collides() {
		t.Error("middle net must not collide")
	}
	if middle.Position.X != 0 || middle.HalfSize.Y != 300 {
		t.Errorf("unexpected middle wall %+v", middle)
	}

	for _, r := range []Role{RoleLeft, RoleRight, RoleTop, RoleBottom} {
		if !r.Collides() {
			t.Errorf("%s wall should collide", r)
		}
	}
}
