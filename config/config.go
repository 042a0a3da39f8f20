// Package config loads a game setup from a TOML file.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mo-shahab/pong-sim/arena"
	"github.com/mo-shahab/pong-sim/collision"
	"github.com/mo-shahab/pong-sim/game"
	"github.com/mo-shahab/pong-sim/paddle"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// Config mirrors the on-disk layout.
type Config struct {
	Arena      arena.Config `toml:"arena"`
	Ball       Ball         `toml:"ball"`
	Paddle     Paddle       `toml:"paddle"`
	Simulation Simulation   `toml:"simulation"`
}

type Ball struct {
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
	DirectionX float64 `toml:"direction_x"`
	DirectionY float64 `toml:"direction_y"`
	Speed      float64 `toml:"speed"`
	Radius     float64 `toml:"radius"`
}

type Paddle struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
	Inset  float64 `toml:"inset"`
}

type Simulation struct {
	TickRate int    `toml:"tick_rate"`
	Variant  string `toml:"variant"`
	Opponent string `toml:"opponent"`
	Policy   string `toml:"collision_policy"`
}

// Default returns the configuration matching game.DefaultSetup.
func Default() Config {
	s := game.DefaultSetup()
	return Config{
		Arena: s.Arena,
		Ball: Ball{
			X:          s.Ball.Position.X,
			Y:          s.Ball.Position.Y,
			DirectionX: s.Ball.Direction.X,
			DirectionY: s.Ball.Direction.Y,
			Speed:      s.Ball.Speed,
			Radius:     s.Ball.Radius,
		},
		Paddle: Paddle{
			Width:  s.Paddle.Width,
			Height: s.Paddle.Height,
			Speed:  s.Paddle.Speed,
			Inset:  s.Paddle.Inset,
		},
		Simulation: Simulation{
			TickRate: s.TickRate,
			Variant:  "two",
			Opponent: "player",
			Policy:   s.Policy.String(),
		},
	}
}

// Load reads path over the defaults. Keys the file sets that Config does not
// know about are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return c, nil
}

// Decode reads TOML from r over the defaults.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return c, nil
}

// Setup converts the configuration into a validated game.Setup.
func (c Config) Setup() (game.Setup, error) {
	variant, ok := game.ParseVariant(c.Simulation.Variant)
	if !ok {
		return game.Setup{}, errors.Wrapf(game.ErrInvalidSetup, "unknown variant %q", c.Simulation.Variant)
	}
	opponent, ok := paddle.ParseStrategy(c.Simulation.Opponent)
	if !ok {
		return game.Setup{}, errors.Wrapf(game.ErrInvalidSetup, "unknown opponent %q", c.Simulation.Opponent)
	}
	policy, ok := collision.ParsePolicy(c.Simulation.Policy)
	if !ok {
		return game.Setup{}, errors.Wrapf(game.ErrInvalidSetup, "unknown collision policy %q", c.Simulation.Policy)
	}

	s := game.Setup{
		Arena: c.Arena,
		Ball: game.BallSetup{
			Position:  r2.Vec{X: c.Ball.X, Y: c.Ball.Y},
			Direction: r2.Vec{X: c.Ball.DirectionX, Y: c.Ball.DirectionY},
			Speed:     c.Ball.Speed,
			Radius:    c.Ball.Radius,
		},
		Paddle: game.PaddleSetup{
			Width:  c.Paddle.Width,
			Height: c.Paddle.Height,
			Speed:  c.Paddle.Speed,
			Inset:  c.Paddle.Inset,
		},
		Variant:  variant,
		Opponent: opponent,
		Policy:   policy,
		TickRate: c.Simulation.TickRate,
	}
	if err := s.Validate(); err != nil {
		return game.Setup{}, err
	}
	return s, nil
}

// Save writes c as TOML.
func (c Config) Save(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(c), "encode config")
}
