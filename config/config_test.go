package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mo-shahab/pong-sim/arena"
	"github.com/mo-shahab/pong-sim/collision"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/mo-shahab/pong-sim/paddle"
	"github.com/pkg/errors"
)

func TestDefault_Setup(t *testing.T) {
	s, err := Default().Setup()
	if err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	want := game.DefaultSetup()
	if s.Arena != want.Arena || s.Ball != want.Ball || s.Paddle != want.Paddle {
		t.Errorf("default config does not match the default setup:\n got %+v\nwant %+v", s, want)
	}
	if s.Variant != game.TwoPaddle || s.Policy != collision.PerOverlap || s.TickRate != 64 {
		t.Errorf("unexpected simulation settings %+v", s)
	}
}

const sample = `
[arena]
left = -400.0
right = 400.0

[ball]
speed = 250.0
radius = 6.0

[simulation]
tick_rate = 120
variant = "single"
collision_policy = "entry"
`

func TestDecode_OverlaysDefaults(t *testing.T) {
	c, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if c.Arena.Left != -400 || c.Arena.Right != 400 {
		t.Errorf("arena bounds not applied: %+v", c.Arena)
	}
	if c.Arena.Top != arena.DefaultTop || c.Arena.WallThickness != arena.DefaultWallThickness {
		t.Errorf("unset arena keys should keep defaults: %+v", c.Arena)
	}
	if c.Ball.Speed != 250 || c.Ball.DirectionX != 0.5 {
		t.Errorf("unexpected ball %+v", c.Ball)
	}

	s, err := c.Setup()
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if s.Variant != game.SinglePlayer || s.Policy != collision.PerEntry || s.TickRate != 120 {
		t.Errorf("unexpected setup %+v", s)
	}
}

func TestDecode_UnknownKey(t *testing.T) {
	_, err := Decode(strings.NewReader("[arena]\nleft = -1.0\nwidth = 4.0\n"))
	if err == nil || !strings.Contains(err.Error(), "arena.width") {
		t.Errorf("expected unknown key error naming arena.width, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("[arena\nleft = ")); err == nil {
		t.Error("expected a decode error")
	}
}

func TestSetup_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"Variant", func(c *Config) { c.Simulation.Variant = "four" }, game.ErrInvalidSetup},
		{"Opponent", func(c *Config) { c.Simulation.Opponent = "ai" }, game.ErrInvalidSetup},
		{"Policy", func(c *Config) { c.Simulation.Policy = "sticky" }, game.ErrInvalidSetup},
		{"Arena", func(c *Config) { c.Arena.Top = c.Arena.Bottom - 1 }, arena.ErrDegenerate},
		{"TickRate", func(c *Config) { c.Simulation.TickRate = 0 }, game.ErrInvalidSetup},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			if _, err := c.Setup(); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestDecode_RejectsUnplayableValues(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"NaNWallThickness", "[arena]\nwall_thickness = nan\n", arena.ErrDegenerate},
		{"InfinitePadding", "[arena]\npadding = inf\n", arena.ErrDegenerate},
		{"NaNBallSpeed", "[ball]\nspeed = nan\n", game.ErrInvalidSetup},
		{"HugeTickRate", "[simulation]\ntick_rate = 2000000000\n", game.ErrInvalidSetup},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Decode(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if _, err := c.Setup(); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSetup_Opponent(t *testing.T) {
	c := Default()
	c.Simulation.Opponent = "stationary"

	s, err := c.Setup()
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if _, ok := s.Opponent.(paddle.Stationary); !ok {
		t.Errorf("expected a stationary opponent, got %T", s.Opponent)
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")

	c := Default()
	c.Paddle.Height = 80
	c.Simulation.Policy = "entry"

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != c {
		t.Errorf("loaded config differs:\n got %+v\nwant %+v", got, c)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
