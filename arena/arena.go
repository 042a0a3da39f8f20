package arena

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerate is returned when the arena bounds describe an empty or
// inverted playing field.
var ErrDegenerate = errors.New("degenerate arena geometry")

// Config holds the static bounds of the playing field in world units, y up.
// It is built once at startup and passed by value to every component.
type Config struct {
	Left          float64 `toml:"left"`
	Right         float64 `toml:"right"`
	Bottom        float64 `toml:"bottom"`
	Top           float64 `toml:"top"`
	WallThickness float64 `toml:"wall_thickness"`
	Padding       float64 `toml:"padding"`
}

// Default constants
const (
	DefaultLeft          = -450.0
	DefaultRight         = 450.0
	DefaultBottom        = -300.0
	DefaultTop           = 300.0
	DefaultWallThickness = 10.0
	DefaultPadding       = 10.0
)

// Default returns the reference 900x600 arena centered on the origin.
func Default() Config {
	return Config{
		Left:          DefaultLeft,
		Right:         DefaultRight,
		Bottom:        DefaultBottom,
		Top:           DefaultTop,
		WallThickness: DefaultWallThickness,
		Padding:       DefaultPadding,
	}
}

// FromWindow derives bounds from a window of the given size centered on the
// origin. The border walls sit offset units in from the window edge, and the
// bound lines run through the middle of each border.
func FromWindow(width, height, offset, thickness float64) Config {
	inset := offset + thickness/2
	return Config{
		Left:          -width/2 + inset,
		Right:         width/2 - inset,
		Bottom:        -height/2 + inset,
		Top:           height/2 - inset,
		WallThickness: thickness,
		Padding:       offset,
	}
}

func (c Config) Width() float64  { return c.Right - c.Left }
func (c Config) Height() float64 { return c.Top - c.Bottom }

// Center is the middle of the playing field.
func (c Config) Center() r2.Vec {
	return r2.Vec{X: (c.Left + c.Right) / 2, Y: (c.Bottom + c.Top) / 2}
}

// Validate checks the geometry invariants. A failure here is a static
// configuration bug and callers are expected to abort startup.
func (c Config) Validate() error {
	for _, v := range []float64{c.Left, c.Right, c.Bottom, c.Top, c.WallThickness, c.Padding} {
		if !Finite(v) {
			return errors.Wrapf(ErrDegenerate, "non-finite value in %+v", c)
		}
	}
	if !(c.Width() > 0) {
		return errors.Wrapf(ErrDegenerate, "width must be positive (left=%g right=%g)", c.Left, c.Right)
	}
	if !(c.Height() > 0) {
		return errors.Wrapf(ErrDegenerate, "height must be positive (bottom=%g top=%g)", c.Bottom, c.Top)
	}
	if !(c.WallThickness >= 0) {
		return errors.Wrapf(ErrDegenerate, "negative wall thickness %g", c.WallThickness)
	}
	if !(c.Padding >= 0) {
		return errors.Wrapf(ErrDegenerate, "negative padding %g", c.Padding)
	}
	return nil
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
